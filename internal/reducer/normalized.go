package reducer

import (
	"maps"

	"github.com/Makepad-fr/tada/internal/action"
	"github.com/Makepad-fr/tada/internal/model"
)

// ByID reduces the id -> todo index of the normalized state. The map is
// copied only when an entry changes. A duplicate AddTodo id replaces the
// earlier entry.
func ByID(byID map[int]*model.Todo, a action.Action) map[int]*model.Todo {
	switch a := a.(type) {
	case action.AddTodo:
		out := make(map[int]*model.Todo, len(byID)+1)
		maps.Copy(out, byID)
		out[a.ID] = Todo(nil, a)
		return out
	case action.ToggleTodo:
		prev, ok := byID[a.ID]
		if !ok {
			return byID
		}
		out := maps.Clone(byID)
		out[a.ID] = Todo(prev, a)
		return out
	default:
		return byID
	}
}

// AllIDs reduces the display order of the normalized state.
func AllIDs(ids []int, a action.Action) []int {
	add, ok := a.(action.AddTodo)
	if !ok {
		return ids
	}
	out := make([]int, len(ids), len(ids)+1)
	copy(out, ids)
	return append(out, add.ID)
}
