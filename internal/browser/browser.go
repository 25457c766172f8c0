// Package browser implements the bounded previous/next cursor used by the
// browsing modules.
package browser

// State is passed to the render callback after every position change.
type State[T any] struct {
	Entry       T
	Position    int
	Len         int
	PrevEnabled bool
	NextEnabled bool
}

// RenderFunc is invoked with the new state whenever the position changes.
type RenderFunc[T any] func(State[T])

// Browser holds a fixed set of entries and a position clamped to
// [0, len-1]. Moving past either edge is a no-op.
type Browser[T any] struct {
	entries  []T
	pos      int
	onChange RenderFunc[T]
}

// New returns a browser positioned on the first entry. It panics on an
// empty set: every module ships a non-empty table.
func New[T any](entries []T, onChange RenderFunc[T]) *Browser[T] {
	if len(entries) == 0 {
		panic("browser: empty entry set")
	}
	return &Browser[T]{entries: entries, onChange: onChange}
}

// Previous steps back one entry unless already at the first one.
func (b *Browser[T]) Previous() bool {
	return b.moveTo(b.pos - 1)
}

// Next steps forward one entry unless already at the last one.
func (b *Browser[T]) Next() bool {
	return b.moveTo(b.pos + 1)
}

// First jumps to the first entry.
func (b *Browser[T]) First() bool {
	return b.moveTo(0)
}

// Last jumps to the last entry.
func (b *Browser[T]) Last() bool {
	return b.moveTo(len(b.entries) - 1)
}

// Position returns the current 0-based position.
func (b *Browser[T]) Position() int { return b.pos }

// Len returns the number of entries.
func (b *Browser[T]) Len() int { return len(b.entries) }

// Current returns the entry at the current position.
func (b *Browser[T]) Current() T { return b.entries[b.pos] }

// CanPrevious reports whether Previous would move.
func (b *Browser[T]) CanPrevious() bool { return b.pos > 0 }

// CanNext reports whether Next would move.
func (b *Browser[T]) CanNext() bool { return b.pos < len(b.entries)-1 }

// State returns the current render state.
func (b *Browser[T]) State() State[T] {
	return State[T]{
		Entry:       b.Current(),
		Position:    b.pos,
		Len:         len(b.entries),
		PrevEnabled: b.CanPrevious(),
		NextEnabled: b.CanNext(),
	}
}

func (b *Browser[T]) moveTo(pos int) bool {
	if pos < 0 || pos >= len(b.entries) || pos == b.pos {
		return false
	}
	b.pos = pos
	if b.onChange != nil {
		b.onChange(b.State())
	}
	return true
}
