// Package state holds the application state shapes the reducers produce.
//
// States are values. A reducer never writes into a state it was given, and a
// *model.Todo is never modified after it is created, so successive states may
// share todos (and slices, and maps) freely. Pointer identity therefore tells
// whether a todo changed between two states.
package state

import "github.com/Makepad-fr/tada/internal/model"

// State is the flat application state: todos in insertion order plus the
// active visibility filter.
type State struct {
	Todos            []*model.Todo `json:"todos"`
	VisibilityFilter model.Filter  `json:"visibilityFilter"`
}

// Normalized keeps todos by id, with AllIDs fixing the display order.
type Normalized struct {
	ByID             map[int]*model.Todo `json:"byId"`
	AllIDs           []int               `json:"allIds"`
	VisibilityFilter model.Filter        `json:"visibilityFilter"`
}

// Initial returns an empty State showing all todos.
func Initial() State {
	return State{Todos: []*model.Todo{}, VisibilityFilter: model.ShowAll}
}

// InitialNormalized returns an empty Normalized state showing all todos.
func InitialNormalized() Normalized {
	return Normalized{
		ByID:             map[int]*model.Todo{},
		AllIDs:           []int{},
		VisibilityFilter: model.ShowAll,
	}
}
