// Package selector derives view data from state without modifying it.
package selector

import (
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/state"
)

// VisibleTodos returns the todos f lets through, in their original order.
// ShowAll, and any filter it does not recognize, returns ts itself.
func VisibleTodos(ts []*model.Todo, f model.Filter) []*model.Todo {
	switch f {
	case model.ShowOpen:
		return where(ts, func(t *model.Todo) bool { return !t.Completed })
	case model.ShowDone:
		return where(ts, func(t *model.Todo) bool { return t.Completed })
	default:
		return ts
	}
}

// Todos lists the todos of a normalized state in AllIDs order. Ids with no
// entry in ByID are skipped.
func Todos(n state.Normalized) []*model.Todo {
	out := make([]*model.Todo, 0, len(n.AllIDs))
	for _, id := range n.AllIDs {
		if t, ok := n.ByID[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Stats counts completed and open todos.
func Stats(ts []*model.Todo) (done, open int) {
	for _, t := range ts {
		if t.Completed {
			done++
		} else {
			open++
		}
	}
	return
}

func where(ts []*model.Todo, keep func(*model.Todo) bool) []*model.Todo {
	out := make([]*model.Todo, 0, len(ts))
	for _, t := range ts {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
