package machine

// StackDepth is the number of return addresses the call stack can hold.
const StackDepth = 16

// stack is the bounded subroutine return address stack.
type stack struct {
	entries [StackDepth]uint16
	sp      int // number of used entries
}

func (s *stack) push(address uint16) error {
	if s.sp == StackDepth {
		return ErrStackOverflow
	}
	s.entries[s.sp] = address
	s.sp++
	return nil
}

func (s *stack) pop() (uint16, error) {
	if s.sp == 0 {
		return 0, ErrStackUnderflow
	}
	s.sp--
	return s.entries[s.sp], nil
}

func (s *stack) reset() {
	*s = stack{}
}
