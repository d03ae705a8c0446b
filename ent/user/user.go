// Code generated by ent, DO NOT EDIT.

package user

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearningStyle holds the string denoting the learning_style field in the database.
	FieldLearningStyle = "learning_style"
	// FieldDifficultyPreference holds the string denoting the difficulty_preference field in the database.
	FieldDifficultyPreference = "difficulty_preference"
	// FieldInterests holds the string denoting the interests field in the database.
	FieldInterests = "interests"
	// Table holds the table name of the user in the database.
	Table = "users"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldLearningStyle,
	FieldDifficultyPreference,
	FieldInterests,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultLearningStyle holds the default value on creation for the "learning_style" field.
	DefaultLearningStyle string
	// DefaultDifficultyPreference holds the default value on creation for the "difficulty_preference" field.
	DefaultDifficultyPreference string
)

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearningStyle orders the results by the learning_style field.
func ByLearningStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearningStyle, opts...).ToFunc()
}

// ByDifficultyPreference orders the results by the difficulty_preference field.
func ByDifficultyPreference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyPreference, opts...).ToFunc()
}
