package aiquiz

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const candidateSchemaURL = "schema://candidate-question.json"

// candidateSchemaJSON is the acceptance rule for a single item of the
// model's "questions" array. Text fields take any truthy scalar; the model
// often answers numeric questions with bare numbers.
const candidateSchemaJSON = `{
  "type": "object",
  "required": ["question", "options", "answer", "explanation"],
  "properties": {
    "question":    {"$ref": "#/$defs/text"},
    "options": {
      "type": "array",
      "minItems": 4,
      "maxItems": 4,
      "items": {"$ref": "#/$defs/text"}
    },
    "answer":      {"type": "integer", "minimum": 0, "maximum": 3},
    "explanation": {"$ref": "#/$defs/text"}
  },
  "$defs": {
    "text": {
      "anyOf": [
        {"type": "string", "minLength": 1},
        {"type": "number"},
        {"const": true}
      ]
    }
  }
}`

var candidateSchema = mustCompileCandidateSchema()

func mustCompileCandidateSchema() *jsonschema.Schema {
	var doc any
	if err := json.Unmarshal([]byte(candidateSchemaJSON), &doc); err != nil {
		panic(fmt.Sprintf("parse candidate schema: %v", err))
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(candidateSchemaURL, doc); err != nil {
		panic(fmt.Sprintf("add candidate schema: %v", err))
	}
	return c.MustCompile(candidateSchemaURL)
}
