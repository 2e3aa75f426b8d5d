package automaton

import "strings"

// Stack is an ordered sequence of stack symbols; the top is the last
// element. Stacks are values: a search branch forks by copying, so
// sibling branches never observe each other's writes.
type Stack []Symbol

// NewStack returns a stack holding the given symbols, last one on top.
func NewStack(symbols ...Symbol) Stack {
	s := make(Stack, len(symbols))
	copy(s, symbols)
	return s
}

// Len returns the number of symbols on the stack.
func (s Stack) Len() int { return len(s) }

// Top returns the most recently pushed symbol.
// Returns ErrEmptyStack if the stack is empty; callers check Len first.
func (s Stack) Top() (Symbol, error) {
	if len(s) == 0 {
		return "", ErrEmptyStack
	}
	return s[len(s)-1], nil
}

// Pop removes and discards the top symbol. Pop on an empty stack is a
// no-op.
func (s *Stack) Pop() {
	if len(*s) > 0 {
		*s = (*s)[:len(*s)-1]
	}
}

// Replace removes the top symbol and appends seq in order, so the last
// element of seq becomes the new top. An empty seq is equivalent to Pop.
func (s *Stack) Replace(seq []Symbol) {
	s.Pop()
	*s = append(*s, seq...)
}

// Copy returns an independent stack with the same contents.
func (s Stack) Copy() Stack {
	c := make(Stack, len(s))
	copy(c, s)
	return c
}

// Equal reports whether both stacks hold the same symbols in the same
// order.
func (s Stack) Equal(other Stack) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// key returns a canonical encoding of the contents for visited-set
// deduplication. Symbols are joined with a separator that cannot appear
// between them ambiguously.
func (s Stack) key() string {
	var b strings.Builder
	for i, sym := range s {
		if i > 0 {
			b.WriteByte(0x1f)
		}
		b.WriteString(string(sym))
	}
	return b.String()
}
