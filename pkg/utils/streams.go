package utils

// Stream is a read cursor over a slice. The scanner walks a Stream[rune] and
// the parser a Stream[tokens.Token]; neither ever moves backwards.
type Stream[T any] struct {
	items []T
	pos   int
}

func NewStream[T any](items []T) *Stream[T] {
	return &Stream[T]{items: items}
}

// Pos is the index of the next unread item.
func (s *Stream[T]) Pos() int {
	return s.pos
}

func (s *Stream[T]) IsAtEnd() bool {
	return s.pos >= len(s.items)
}

// Peek returns the next unread item without consuming it.
func (s *Stream[T]) Peek() (T, bool) {
	return s.PeekAt(0)
}

// PeekAt looks offset items past the next unread one.
func (s *Stream[T]) PeekAt(offset int) (T, bool) {
	var zero T
	i := s.pos + offset
	if i < 0 || i >= len(s.items) {
		return zero, false
	}
	return s.items[i], true
}

// Advance consumes and returns the next item.
func (s *Stream[T]) Advance() (T, bool) {
	var zero T
	if s.IsAtEnd() {
		return zero, false
	}
	item := s.items[s.pos]
	s.pos++
	return item, true
}

// Previous returns the most recently consumed item.
func (s *Stream[T]) Previous() (T, bool) {
	return s.PeekAt(-1)
}

// Match consumes the next item if pred accepts it.
func (s *Stream[T]) Match(pred func(T) bool) bool {
	next, ok := s.Peek()
	if !ok || !pred(next) {
		return false
	}
	s.pos++
	return true
}

// Slice returns items[from:to], clamped to the stream bounds.
func (s *Stream[T]) Slice(from, to int) []T {
	if from < 0 {
		from = 0
	}
	if to > len(s.items) {
		to = len(s.items)
	}
	if from >= to {
		return nil
	}
	return s.items[from:to]
}
