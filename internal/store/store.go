// Package store holds the current application state and mediates
// dispatch and subscription.
package store

import (
	"github.com/Makepad-fr/tada/internal/action"
)

// Reducer computes the next state. It must be pure and total.
type Reducer[S any] func(S, action.Action) S

// DispatchFunc sends an action towards the reducer.
type DispatchFunc func(action.Action)

// Middleware wraps dispatch. Calling next forwards the action; not calling it
// drops the action.
type Middleware func(next DispatchFunc) DispatchFunc

type Option func(*options)

type options struct {
	middleware []Middleware
}

// WithMiddleware installs middleware. The first one listed sees actions first.
func WithMiddleware(mw ...Middleware) Option {
	return func(o *options) { o.middleware = append(o.middleware, mw...) }
}

type subscription struct {
	fn     func()
	active bool
}

// Store owns the current state value.
//
// Dispatch runs the reducer, replaces the state and then calls every
// subscriber synchronously, in registration order. A Dispatch issued from a
// subscriber is queued and handled after the current round of notifications,
// before the outer Dispatch returns.
//
// A Store is not safe for concurrent use.
type Store[S any] struct {
	reducer  Reducer[S]
	state    S
	subs     []*subscription
	dispatch DispatchFunc

	dispatching bool
	queue       []action.Action
}

// New creates a store holding initial.
func New[S any](reducer Reducer[S], initial S, opts ...Option) *Store[S] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	s := &Store[S]{reducer: reducer, state: initial}
	s.dispatch = s.commit
	for i := len(o.middleware) - 1; i >= 0; i-- {
		s.dispatch = o.middleware[i](s.dispatch)
	}
	return s
}

// GetState returns the current state. Callers must treat it as read-only.
func (s *Store[S]) GetState() S {
	return s.state
}

// Dispatch sends a through the middleware chain to the reducer.
func (s *Store[S]) Dispatch(a action.Action) {
	s.dispatch(a)
}

// Subscribe registers fn to run after every dispatch. The returned function
// removes exactly this registration; calling it again does nothing.
func (s *Store[S]) Subscribe(fn func()) (unsubscribe func()) {
	sub := &subscription{fn: fn, active: true}
	s.subs = append(s.subs, sub)
	return func() {
		if !sub.active {
			return
		}
		sub.active = false
		for i, x := range s.subs {
			if x == sub {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				break
			}
		}
	}
}

// Subscribers returns the number of active subscriptions.
func (s *Store[S]) Subscribers() int {
	return len(s.subs)
}

func (s *Store[S]) commit(a action.Action) {
	if s.dispatching {
		s.queue = append(s.queue, a)
		return
	}
	s.dispatching = true
	defer func() {
		s.dispatching = false
		s.queue = nil
	}()

	for {
		s.state = s.reducer(s.state, a)
		s.notify()
		if len(s.queue) == 0 {
			return
		}
		a = s.queue[0]
		s.queue = s.queue[1:]
	}
}

func (s *Store[S]) notify() {
	// Subscribers added during this round wait for the next one; the
	// snapshot keeps them out and the active flag drops removed ones.
	round := s.subs
	for _, sub := range round {
		if sub.active {
			sub.fn()
		}
	}
}
