// Package reducer implements the pure state transitions of the todo app.
//
// Every reducer is total: any action, known or not, yields a result, and
// actions a reducer does not handle return its input unchanged.
package reducer

import (
	"github.com/Makepad-fr/tada/internal/action"
	"github.com/Makepad-fr/tada/internal/model"
)

// Todo reduces a single todo. For AddTodo the incoming todo is ignored and
// may be nil. For ToggleTodo a todo with a different id is returned as is,
// so callers can detect changes by pointer comparison.
func Todo(t *model.Todo, a action.Action) *model.Todo {
	switch a := a.(type) {
	case action.AddTodo:
		return &model.Todo{ID: a.ID, Text: a.Text, Completed: false}
	case action.ToggleTodo:
		if t == nil || t.ID != a.ID {
			return t
		}
		next := *t
		next.Completed = !t.Completed
		return &next
	default:
		return t
	}
}

// Todos reduces the ordered todo collection.
func Todos(ts []*model.Todo, a action.Action) []*model.Todo {
	switch a.(type) {
	case action.AddTodo:
		out := make([]*model.Todo, len(ts), len(ts)+1)
		copy(out, ts)
		return append(out, Todo(nil, a))
	case action.ToggleTodo:
		out := make([]*model.Todo, len(ts))
		for i, t := range ts {
			out[i] = Todo(t, a)
		}
		return out
	default:
		return ts
	}
}
