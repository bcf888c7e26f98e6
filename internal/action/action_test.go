package action

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Makepad-fr/tada/internal/model"
)

func TestTypes(t *testing.T) {
	tests := []struct {
		a    Action
		want Type
	}{
		{AddTodo{ID: 1, Text: "a"}, TypeAddTodo},
		{ToggleTodo{ID: 1}, TypeToggleTodo},
		{SetVisibilityFilter{Filter: model.ShowDone}, TypeSetVisibilityFilter},
		{Unknown{Name: "REMOVE TODO"}, Type("REMOVE TODO")},
	}
	for _, tt := range tests {
		if got := tt.a.Type(); got != tt.want {
			t.Errorf("%T.Type(): got %q, want %q", tt.a, got, tt.want)
		}
	}
}

func TestCreators(t *testing.T) {
	ids := NewSequence(1)
	got := []Action{
		NewAddTodo(ids, "buy milk"),
		NewAddTodo(ids, "walk dog"),
		NewToggleTodo(2),
		NewSetVisibilityFilter(model.ShowOpen),
	}
	want := []Action{
		AddTodo{ID: 1, Text: "buy milk"},
		AddTodo{ID: 2, Text: "walk dog"},
		ToggleTodo{ID: 2},
		SetVisibilityFilter{Filter: model.ShowOpen},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("creators mismatch (-want +got):\n%s", diff)
	}
}

func TestIDSourceFunc(t *testing.T) {
	n := 40
	ids := IDSourceFunc(func() int { n += 2; return n })
	if a := NewAddTodo(ids, "x"); a.ID != 42 {
		t.Errorf("ID: got %d, want 42", a.ID)
	}
}

func TestSequence(t *testing.T) {
	s := NewSequence(7)
	if got := s.Peek(); got != 7 {
		t.Errorf("Peek: got %d, want 7", got)
	}
	for want := 7; want < 10; want++ {
		if got := s.NextID(); got != want {
			t.Errorf("NextID: got %d, want %d", got, want)
		}
	}
}

func TestSequenceConcurrentUnique(t *testing.T) {
	s := NewSequence(1)
	const workers, per = 8, 100

	var mu sync.Mutex
	seen := make(map[int]bool)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < per; j++ {
				id := s.NextID()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*per {
		t.Errorf("unique ids: got %d, want %d", len(seen), workers*per)
	}
	if got := s.Peek(); got != workers*per+1 {
		t.Errorf("Peek: got %d, want %d", got, workers*per+1)
	}
}
