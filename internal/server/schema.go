package server

import (
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// chatRequestSchema constrains the POST /api/chat body: a non-empty
// messages array of {role, content} pairs.
const chatRequestSchema = `{
	"type": "object",
	"required": ["messages"],
	"properties": {
		"messages": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["role", "content"],
				"properties": {
					"role": {
						"type": "string",
						"enum": ["user", "assistant", "system"]
					},
					"content": {
						"type": "string"
					}
				}
			}
		}
	}
}`

// compiledChatSchema is compiled once at startup; a malformed schema is a
// programming error, hence the panic on failure.
var compiledChatSchema = mustCompileSchema("chat-request.json", chatRequestSchema)

func mustCompileSchema(name, raw string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		panic("server: parse schema " + name + ": " + err.Error())
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		panic("server: add schema resource " + name + ": " + err.Error())
	}

	compiled, err := c.Compile(name)
	if err != nil {
		panic("server: compile schema " + name + ": " + err.Error())
	}
	return compiled
}
