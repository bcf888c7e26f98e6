package reducer

import (
	"github.com/Makepad-fr/tada/internal/action"
	"github.com/Makepad-fr/tada/internal/state"
)

// Root combines the todo and visibility reducers into the flat state.
func Root(s state.State, a action.Action) state.State {
	return state.State{
		Todos:            Todos(s.Todos, a),
		VisibilityFilter: Visibility(s.VisibilityFilter, a),
	}
}

// RootNormalized combines the reducers of the normalized state.
func RootNormalized(s state.Normalized, a action.Action) state.Normalized {
	return state.Normalized{
		ByID:             ByID(s.ByID, a),
		AllIDs:           AllIDs(s.AllIDs, a),
		VisibilityFilter: Visibility(s.VisibilityFilter, a),
	}
}
