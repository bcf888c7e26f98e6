// Package action defines the records dispatched to the store.
package action

import "github.com/Makepad-fr/tada/internal/model"

// Type tags an action. The values match the script wire format.
type Type string

const (
	TypeAddTodo             Type = "ADD TODO"
	TypeToggleTodo          Type = "TOGGLE TODO"
	TypeSetVisibilityFilter Type = "SET VISIBILITY FILTER"
)

// Action is an immutable description of an intended state change.
type Action interface {
	Type() Type
}

// AddTodo appends a new, open todo. The ID is assigned by the caller.
type AddTodo struct {
	ID   int
	Text string
}

// ToggleTodo flips Completed on the todo with the given ID.
type ToggleTodo struct {
	ID int
}

// SetVisibilityFilter replaces the active filter. The value is not validated.
type SetVisibilityFilter struct {
	Filter model.Filter
}

// Unknown carries a tag no reducer recognizes. Reducers treat it as a no-op.
type Unknown struct {
	Name string
}

func (AddTodo) Type() Type             { return TypeAddTodo }
func (ToggleTodo) Type() Type          { return TypeToggleTodo }
func (SetVisibilityFilter) Type() Type { return TypeSetVisibilityFilter }
func (u Unknown) Type() Type           { return Type(u.Name) }

// NewAddTodo builds an AddTodo whose ID is drawn from ids.
func NewAddTodo(ids IDSource, text string) AddTodo {
	return AddTodo{ID: ids.NextID(), Text: text}
}

func NewToggleTodo(id int) ToggleTodo {
	return ToggleTodo{ID: id}
}

func NewSetVisibilityFilter(f model.Filter) SetVisibilityFilter {
	return SetVisibilityFilter{Filter: f}
}
