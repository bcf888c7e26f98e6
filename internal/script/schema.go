package script

import (
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "tada://action-script.schema.json"

// Unknown action types are allowed through; the reducers ignore them.
const schemaDoc = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["type"],
    "properties": {
      "type":   {"type": "string", "minLength": 1},
      "id":     {"type": "integer"},
      "text":   {"type": "string"},
      "filter": {"type": "string"}
    },
    "allOf": [
      {
        "if":   {"required": ["type"], "properties": {"type": {"const": "ADD TODO"}}},
        "then": {"required": ["text"]}
      },
      {
        "if":   {"required": ["type"], "properties": {"type": {"const": "TOGGLE TODO"}}},
        "then": {"required": ["id"]}
      },
      {
        "if":   {"required": ["type"], "properties": {"type": {"const": "SET VISIBILITY FILTER"}}},
        "then": {"required": ["filter"]}
      }
    ]
  }
}`

var loadSchema = sync.OnceValues(compileSchema)

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaDoc)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// Issue is one schema violation, located by a slash-separated path into
// the document ("2/id").
type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

func collectIssues(err error) []Issue {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []Issue{{Message: err.Error()}}
	}
	var out []Issue
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			out = append(out, Issue{Path: pointerToPath(e.InstanceLocation), Message: e.Message})
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	return out
}

func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	return strings.TrimPrefix(ptr, "/")
}
