// Code generated by ent, DO NOT EDIT.

package user

import (
	"entgo.io/ent/dialect/sql"
	"github.com/Tekmindlabs/Aivy-Dojo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldID, id))
}

// LearningStyle applies equality check predicate on the "learning_style" field. It's identical to LearningStyleEQ.
func LearningStyle(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLearningStyle, v))
}

// DifficultyPreference applies equality check predicate on the "difficulty_preference" field. It's identical to DifficultyPreferenceEQ.
func DifficultyPreference(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDifficultyPreference, v))
}

// LearningStyleEQ applies the EQ predicate on the "learning_style" field.
func LearningStyleEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLearningStyle, v))
}

// LearningStyleNEQ applies the NEQ predicate on the "learning_style" field.
func LearningStyleNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLearningStyle, v))
}

// LearningStyleIn applies the In predicate on the "learning_style" field.
func LearningStyleIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldLearningStyle, vs...))
}

// LearningStyleNotIn applies the NotIn predicate on the "learning_style" field.
func LearningStyleNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLearningStyle, vs...))
}

// LearningStyleGT applies the GT predicate on the "learning_style" field.
func LearningStyleGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldLearningStyle, v))
}

// LearningStyleGTE applies the GTE predicate on the "learning_style" field.
func LearningStyleGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLearningStyle, v))
}

// LearningStyleLT applies the LT predicate on the "learning_style" field.
func LearningStyleLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldLearningStyle, v))
}

// LearningStyleLTE applies the LTE predicate on the "learning_style" field.
func LearningStyleLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLearningStyle, v))
}

// LearningStyleContains applies the Contains predicate on the "learning_style" field.
func LearningStyleContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldLearningStyle, v))
}

// LearningStyleHasPrefix applies the HasPrefix predicate on the "learning_style" field.
func LearningStyleHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldLearningStyle, v))
}

// LearningStyleHasSuffix applies the HasSuffix predicate on the "learning_style" field.
func LearningStyleHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldLearningStyle, v))
}

// LearningStyleEqualFold applies the EqualFold predicate on the "learning_style" field.
func LearningStyleEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldLearningStyle, v))
}

// LearningStyleContainsFold applies the ContainsFold predicate on the "learning_style" field.
func LearningStyleContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldLearningStyle, v))
}

// DifficultyPreferenceEQ applies the EQ predicate on the "difficulty_preference" field.
func DifficultyPreferenceEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDifficultyPreference, v))
}

// DifficultyPreferenceNEQ applies the NEQ predicate on the "difficulty_preference" field.
func DifficultyPreferenceNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldDifficultyPreference, v))
}

// DifficultyPreferenceIn applies the In predicate on the "difficulty_preference" field.
func DifficultyPreferenceIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldDifficultyPreference, vs...))
}

// DifficultyPreferenceNotIn applies the NotIn predicate on the "difficulty_preference" field.
func DifficultyPreferenceNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldDifficultyPreference, vs...))
}

// DifficultyPreferenceGT applies the GT predicate on the "difficulty_preference" field.
func DifficultyPreferenceGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldDifficultyPreference, v))
}

// DifficultyPreferenceGTE applies the GTE predicate on the "difficulty_preference" field.
func DifficultyPreferenceGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldDifficultyPreference, v))
}

// DifficultyPreferenceLT applies the LT predicate on the "difficulty_preference" field.
func DifficultyPreferenceLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldDifficultyPreference, v))
}

// DifficultyPreferenceLTE applies the LTE predicate on the "difficulty_preference" field.
func DifficultyPreferenceLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldDifficultyPreference, v))
}

// DifficultyPreferenceContains applies the Contains predicate on the "difficulty_preference" field.
func DifficultyPreferenceContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldDifficultyPreference, v))
}

// DifficultyPreferenceHasPrefix applies the HasPrefix predicate on the "difficulty_preference" field.
func DifficultyPreferenceHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldDifficultyPreference, v))
}

// DifficultyPreferenceHasSuffix applies the HasSuffix predicate on the "difficulty_preference" field.
func DifficultyPreferenceHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldDifficultyPreference, v))
}

// DifficultyPreferenceEqualFold applies the EqualFold predicate on the "difficulty_preference" field.
func DifficultyPreferenceEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldDifficultyPreference, v))
}

// DifficultyPreferenceContainsFold applies the ContainsFold predicate on the "difficulty_preference" field.
func DifficultyPreferenceContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldDifficultyPreference, v))
}

// InterestsIsNil applies the IsNil predicate on the "interests" field.
func InterestsIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldInterests))
}

// InterestsNotNil applies the NotNil predicate on the "interests" field.
func InterestsNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldInterests))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
