// Package bind connects consumers to a store through two pure contracts:
// a state mapper (state -> props) and a dispatch mapper (dispatch ->
// callbacks). Neither knows how, or whether, anything gets drawn.
package bind

import "github.com/Makepad-fr/tada/internal/action"

// Dispatch is the handle dispatch mappers close over.
type Dispatch func(action.Action)

// Source is what a binding needs from a store. *store.Store satisfies it.
type Source[S any] interface {
	GetState() S
	Subscribe(func()) func()
	Dispatch(action.Action)
}

// Binding keeps props derived from a source's state up to date.
type Binding[S, P, C any] struct {
	src         Source[S]
	mapState    func(S) P
	props       P
	callbacks   C
	updates     int
	unsubscribe func()
}

// Connect derives props right away and again after every dispatch.
// Callbacks are built once and dispatch into src.
func Connect[S, P, C any](src Source[S], mapState func(S) P, mapDispatch func(Dispatch) C) *Binding[S, P, C] {
	b := &Binding[S, P, C]{
		src:       src,
		mapState:  mapState,
		props:     mapState(src.GetState()),
		callbacks: mapDispatch(src.Dispatch),
	}
	b.unsubscribe = src.Subscribe(b.update)
	return b
}

func (b *Binding[S, P, C]) update() {
	b.props = b.mapState(b.src.GetState())
	b.updates++
}

// Props returns the props derived from the latest state.
func (b *Binding[S, P, C]) Props() P { return b.props }

// Callbacks returns the dispatch callbacks.
func (b *Binding[S, P, C]) Callbacks() C { return b.callbacks }

// Updates counts how many times props were re-derived after Connect.
func (b *Binding[S, P, C]) Updates() int { return b.updates }

// Close stops following the source. Safe to call more than once.
func (b *Binding[S, P, C]) Close() {
	b.unsubscribe()
}

// NoCallbacks is a dispatch mapper for bindings that only read.
func NoCallbacks(Dispatch) struct{} { return struct{}{} }
