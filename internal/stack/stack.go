package stack

// Stack is a LIFO of T. The zero value is an empty stack.
type Stack[T any] []T

func (s *Stack[T]) Push(v T) {
	*s = append(*s, v)
}

// Pop removes the top n items, or fewer if the stack is shorter.
func (s *Stack[T]) Pop(n int) {
	if n <= 0 {
		return
	}
	for s.Len() > 0 && n > 0 {
		s.PopLast()
		n--
	}

	if c := cap(*s); c > 20 && c > s.Len()*2 {
		*s = append(Stack[T](nil), *s...)
	}
}

// PopLast removes the top item and returns it. ok is false if the stack
// was empty.
func (s *Stack[T]) PopLast() (v T, ok bool) {
	l := s.Len()
	if l == 0 {
		return v, false
	}
	v = (*s)[l-1]
	var zero T
	(*s)[l-1] = zero
	*s = (*s)[:l-1]
	return v, true
}

// Peek returns the top item without removing it.
func (s Stack[T]) Peek() (v T, ok bool) {
	if len(s) == 0 {
		return v, false
	}
	return s[len(s)-1], true
}

func (s Stack[T]) Len() int {
	return len(s)
}
