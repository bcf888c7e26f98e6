package selector

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/state"
)

func sample() []*model.Todo {
	return []*model.Todo{
		{ID: 1, Text: "buy milk", Completed: true},
		{ID: 2, Text: "walk dog"},
		{ID: 3, Text: "file taxes", Completed: true},
		{ID: 4, Text: "call mum"},
	}
}

func ids(ts []*model.Todo) []int {
	out := make([]int, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}

func TestVisibleTodos(t *testing.T) {
	tests := []struct {
		filter model.Filter
		want   []int
	}{
		{model.ShowAll, []int{1, 2, 3, 4}},
		{model.ShowOpen, []int{2, 4}},
		{model.ShowDone, []int{1, 3}},
		{model.Filter("SHOW SOME"), []int{1, 2, 3, 4}},
		{model.Filter(""), []int{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			got := ids(VisibleTodos(sample(), tt.filter))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ids (-want +got):\n%s", diff)
			}
		})
	}
}

func TestShowAllReturnsInput(t *testing.T) {
	ts := sample()
	got := VisibleTodos(ts, model.ShowAll)
	if &got[0] != &ts[0] || len(got) != len(ts) {
		t.Errorf("ShowAll did not return the input slice")
	}
}

func TestVisibleTodosDoesNotMutate(t *testing.T) {
	ts := sample()
	want := sample()
	VisibleTodos(ts, model.ShowOpen)
	VisibleTodos(ts, model.ShowDone)
	if diff := cmp.Diff(want, ts); diff != "" {
		t.Errorf("input changed (-want +got):\n%s", diff)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	once := VisibleTodos(sample(), model.ShowOpen)
	twice := VisibleTodos(once, model.ShowOpen)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second filter changed the list (-once +twice):\n%s", diff)
	}
}

func TestPartition(t *testing.T) {
	collections := [][]*model.Todo{
		nil,
		{},
		sample(),
		{{ID: 1, Completed: true}},
		{{ID: 1}, {ID: 2}},
	}
	for i, c := range collections {
		all := VisibleTodos(c, model.ShowAll)
		open := VisibleTodos(c, model.ShowOpen)
		done := VisibleTodos(c, model.ShowDone)
		if len(all) != len(c) {
			t.Errorf("#%d: len(ALL) = %d, want %d", i, len(all), len(c))
		}
		if len(open)+len(done) != len(c) {
			t.Errorf("#%d: OPEN+DONE = %d, want %d", i, len(open)+len(done), len(c))
		}
	}
}

func TestScenarioSelect(t *testing.T) {
	ts := []*model.Todo{{ID: 1, Text: "buy milk", Completed: true}}
	if got := VisibleTodos(ts, model.ShowDone); len(got) != 1 || got[0] != ts[0] {
		t.Errorf("DONE: got %v", got)
	}
	if got := VisibleTodos(ts, model.ShowOpen); len(got) != 0 {
		t.Errorf("OPEN: got %v, want empty", got)
	}
}

func TestTodosNormalized(t *testing.T) {
	n := state.Normalized{
		ByID: map[int]*model.Todo{
			3: {ID: 3, Text: "c"},
			1: {ID: 1, Text: "a"},
		},
		AllIDs: []int{3, 2, 1},
	}
	got := ids(Todos(n))
	if diff := cmp.Diff([]int{3, 1}, got); diff != "" {
		t.Errorf("ids (-want +got):\n%s", diff)
	}
	if got := Todos(state.InitialNormalized()); len(got) != 0 {
		t.Errorf("empty state: got %v", got)
	}
}

func TestStats(t *testing.T) {
	done, open := Stats(sample())
	if done != 2 || open != 2 {
		t.Errorf("Stats: got done=%d open=%d, want 2 and 2", done, open)
	}
	done, open = Stats(nil)
	if done != 0 || open != 0 {
		t.Errorf("Stats(nil): got done=%d open=%d", done, open)
	}
}
