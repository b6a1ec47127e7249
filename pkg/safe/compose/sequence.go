package compose

import "github.com/ib-77/safe/pkg/safe/step"

// sequence is an immutable, singly linked list of steps stored tail first.
// push never modifies its receiver, so compositions forked from a common
// prefix share that prefix and nothing else.
type sequence struct {
	step step.Step
	prev *sequence
	size int
}

func (s *sequence) push(st step.Step) *sequence {
	return &sequence{step: st, prev: s, size: s.len() + 1}
}

func (s *sequence) len() int {
	if s == nil {
		return 0
	}
	return s.size
}

// steps returns the steps in execution order.
func (s *sequence) steps() []step.Step {
	out := make([]step.Step, s.len())
	for n, i := s, s.len()-1; n != nil; n, i = n.prev, i-1 {
		out[i] = n.step
	}
	return out
}
