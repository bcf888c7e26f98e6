// Package script reads action scripts: JSON or YAML lists of actions that
// stand in for user gestures when driving a store from the command line.
//
//	- {type: ADD TODO, text: buy milk}
//	- {type: TOGGLE TODO, id: 1}
//	- {type: SET VISIBILITY FILTER, filter: SHOW DONE}
package script

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/tada/internal/action"
	"github.com/Makepad-fr/tada/internal/model"
)

var ErrInvalidScript = errors.New("invalid action script")

// ValidationError lists every schema violation found in a script.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		parts[i] = is.String()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidScript, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidScript }

// Format selects the script syntax.
type Format int

const (
	JSON Format = iota
	YAML
)

// FormatOf picks the format from the file extension; anything that is not
// .yaml or .yml is read as JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

type entry struct {
	Type   string `json:"type"`
	ID     *int   `json:"id"`
	Text   string `json:"text"`
	Filter string `json:"filter"`
}

// Load reads and decodes the script at path.
func Load(path string, ids action.IDSource) ([]action.Action, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Decode(b, FormatOf(path), ids)
}

// Decode validates b and turns it into actions. ADD TODO entries without
// an id take the next one from ids. Unrecognized types become
// action.Unknown.
func Decode(b []byte, f Format, ids action.IDSource) ([]action.Action, error) {
	doc, err := parse(b, f)
	if err != nil {
		return nil, err
	}
	if err := Validate(doc); err != nil {
		return nil, err
	}

	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	var entries []entry
	if err := json.Unmarshal(normalized, &entries); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}

	out := make([]action.Action, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.action(ids))
	}
	return out, nil
}

// Validate checks a decoded document (JSON data model) against the script
// schema. It returns a *ValidationError on violations.
func Validate(doc any) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		return &ValidationError{Issues: collectIssues(err)}
	}
	return nil
}

func parse(b []byte, f Format) (any, error) {
	var doc any
	switch f {
	case YAML:
		var y any
		if err := yaml.Unmarshal(b, &y); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
		// Round-trip through JSON so the validator sees float64 numbers and
		// string-keyed maps only.
		j, err := json.Marshal(y)
		if err != nil {
			return nil, fmt.Errorf("yaml to json: %w", err)
		}
		b = j
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return doc, nil
}

func (e entry) action(ids action.IDSource) action.Action {
	switch action.Type(e.Type) {
	case action.TypeAddTodo:
		if e.ID == nil {
			return action.NewAddTodo(ids, e.Text)
		}
		return action.AddTodo{ID: *e.ID, Text: e.Text}
	case action.TypeToggleTodo:
		return action.NewToggleTodo(*e.ID)
	case action.TypeSetVisibilityFilter:
		return action.NewSetVisibilityFilter(model.Filter(e.Filter))
	default:
		return action.Unknown{Name: e.Type}
	}
}
