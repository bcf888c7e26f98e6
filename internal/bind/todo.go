package bind

import (
	"github.com/Makepad-fr/tada/internal/action"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/selector"
	"github.com/Makepad-fr/tada/internal/state"
)

// TodoListProps is what a todo list view shows.
type TodoListProps struct {
	Todos  []*model.Todo
	Filter model.Filter
	Done   int
	Open   int
	Total  int
}

// TodoListCallbacks is what a todo list view can ask for.
type TodoListCallbacks struct {
	OnTodoClick func(id int)
}

// FilterLinkProps describes one filter link. The active one renders as
// plain text; the others are clickable.
type FilterLinkProps struct {
	Filter model.Filter
	Active bool
}

type FilterCallbacks struct {
	OnFilterClick func(model.Filter)
}

type AddTodoCallbacks struct {
	OnAdd func(text string)
}

// VisibleTodoList maps the flat state, filtered by its own filter.
func VisibleTodoList(s state.State) TodoListProps {
	return todoList(s.Todos, s.VisibilityFilter)
}

// VisibleTodoListNormalized maps the normalized state.
func VisibleTodoListNormalized(s state.Normalized) TodoListProps {
	return todoList(selector.Todos(s), s.VisibilityFilter)
}

// VisibleTodoListFor ignores the store's filter and uses f instead, for
// callers that take the filter from somewhere else (a URL, a flag).
func VisibleTodoListFor(f model.Filter) func(state.State) TodoListProps {
	return func(s state.State) TodoListProps {
		return todoList(s.Todos, f)
	}
}

// VisibleTodoListNormalizedFor is VisibleTodoListFor for the normalized state.
func VisibleTodoListNormalizedFor(f model.Filter) func(state.Normalized) TodoListProps {
	return func(s state.Normalized) TodoListProps {
		return todoList(selector.Todos(s), f)
	}
}

func todoList(ts []*model.Todo, f model.Filter) TodoListProps {
	done, open := selector.Stats(ts)
	return TodoListProps{
		Todos:  selector.VisibleTodos(ts, f),
		Filter: f,
		Done:   done,
		Open:   open,
		Total:  len(ts),
	}
}

func TodoListDispatch(dispatch Dispatch) TodoListCallbacks {
	return TodoListCallbacks{
		OnTodoClick: func(id int) { dispatch(action.NewToggleTodo(id)) },
	}
}

// FilterLinks lists every filter, marking the active one. An unknown filter
// in state marks ShowAll active, matching how the selector treats it.
func FilterLinks(s state.State) []FilterLinkProps {
	return filterLinks(s.VisibilityFilter)
}

func FilterLinksNormalized(s state.Normalized) []FilterLinkProps {
	return filterLinks(s.VisibilityFilter)
}

func filterLinks(active model.Filter) []FilterLinkProps {
	if !active.Valid() {
		active = model.ShowAll
	}
	fs := model.Filters()
	out := make([]FilterLinkProps, len(fs))
	for i, f := range fs {
		out[i] = FilterLinkProps{Filter: f, Active: f == active}
	}
	return out
}

func FilterDispatch(dispatch Dispatch) FilterCallbacks {
	return FilterCallbacks{
		OnFilterClick: func(f model.Filter) { dispatch(action.NewSetVisibilityFilter(f)) },
	}
}

// AddTodoDispatch returns a dispatch mapper drawing ids from ids.
func AddTodoDispatch(ids action.IDSource) func(Dispatch) AddTodoCallbacks {
	return func(dispatch Dispatch) AddTodoCallbacks {
		return AddTodoCallbacks{
			OnAdd: func(text string) { dispatch(action.NewAddTodo(ids, text)) },
		}
	}
}
