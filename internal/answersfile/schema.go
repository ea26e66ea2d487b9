package answersfile

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://answers.json"

// answersSchema is the JSON schema every answers document must satisfy.
// Values are checked against the answer scale after schema validation.
const answersSchema = `{
  "type": "object",
  "properties": {
    "answers": {
      "type": "object",
      "minProperties": 1,
      "propertyNames": {"pattern": "^Q[0-9]+$"},
      "additionalProperties": {"type": ["string", "boolean"]}
    },
    "note": {"type": "string"}
  },
  "required": ["answers"],
  "additionalProperties": false
}`

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(answersSchema)))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})
