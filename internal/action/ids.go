package action

import "sync/atomic"

// IDSource hands out todo identifiers. Implementations must not repeat an ID
// for the lifetime of a store; the reducers do not check.
type IDSource interface {
	NextID() int
}

// IDSourceFunc adapts a plain function to IDSource.
type IDSourceFunc func() int

func (f IDSourceFunc) NextID() int { return f() }

// Sequence is a monotonically increasing IDSource. Safe for concurrent use.
type Sequence struct {
	next atomic.Int64
}

// NewSequence returns a Sequence whose first ID is first.
func NewSequence(first int) *Sequence {
	s := &Sequence{}
	s.next.Store(int64(first))
	return s
}

func (s *Sequence) NextID() int {
	return int(s.next.Add(1) - 1)
}

// Peek returns the ID the next call to NextID will return.
func (s *Sequence) Peek() int {
	return int(s.next.Load())
}
