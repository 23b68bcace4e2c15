// Package ring implements a bounded FIFO of buffered entries addressed by a
// monotonically increasing absolute index, the storage substrate for the
// Oppen-style pretty-printing engine in package pp.
package ring

import "fmt"

// Entry is the payload stored in a Buffer slot. T is left generic so the
// buffer can hold whatever the caller's BufEntry looks like.
type Entry[T any] struct {
	Value T
}

// Buffer is a slice-backed FIFO of Entry values, indexed by an absolute
// index that only ever grows: Push returns the index of the entry it just
// appended, and that index remains valid (and stable) for as long as the
// entry hasn't been popped, regardless of how many other entries are pushed
// or popped around it.
//
// Buffer is not safe for concurrent use; its only caller, pp.Printer, is
// itself single-owner and single-threaded (see package pp's doc comment).
type Buffer[T any] struct {
	data  []Entry[T]
	first int // absolute index of data[0], valid only when len(data) > 0
}

// Push appends entry at the back of the buffer, returning its absolute
// index.
func (b *Buffer[T]) Push(value T) int {
	idx := b.first + len(b.data)
	b.data = append(b.data, Entry[T]{Value: value})
	return idx
}

// Len returns the number of live entries.
func (b *Buffer[T]) Len() int { return len(b.data) }

// IsEmpty reports whether the buffer currently holds no live entries.
func (b *Buffer[T]) IsEmpty() bool { return len(b.data) == 0 }

// Clear discards all live entries and rebases the absolute index space back
// to 0. Callers that rebase their own counters alongside a Clear (as
// pp.Printer does on scan_stack-empty) keep both in sync.
func (b *Buffer[T]) Clear() {
	b.data = b.data[:0]
	b.first = 0
}

// IndexOfFirst returns the absolute index of the oldest live entry.
// Panics if the buffer is empty.
func (b *Buffer[T]) IndexOfFirst() int {
	b.mustNotBeEmpty("IndexOfFirst")
	return b.first
}

// PopFirst removes and returns the oldest live entry, advancing the live
// range's lower bound by one. Panics if the buffer is empty.
func (b *Buffer[T]) PopFirst() T {
	b.mustNotBeEmpty("PopFirst")
	value := b.data[0].Value
	b.data = b.data[1:]
	b.first++
	return value
}

// First returns a pointer to the oldest live entry's value, for in-place
// mutation (e.g. forcing a size to sizeInfinity). Panics if the buffer is
// empty.
func (b *Buffer[T]) First() *T {
	b.mustNotBeEmpty("First")
	return &b.data[0].Value
}

// Last returns a pointer to the most recently pushed entry's value. Panics
// if the buffer is empty.
func (b *Buffer[T]) Last() *T {
	b.mustNotBeEmpty("Last")
	return &b.data[len(b.data)-1].Value
}

// SecondLast returns a pointer to the entry pushed immediately before the
// most recent one. Panics if the buffer holds fewer than two entries.
func (b *Buffer[T]) SecondLast() *T {
	if len(b.data) < 2 {
		panic(fmt.Sprintf("ring: SecondLast called with %d live entries", len(b.data)))
	}
	return &b.data[len(b.data)-2].Value
}

// PopLast discards the most recently pushed entry without returning it.
// Panics if the buffer is empty.
func (b *Buffer[T]) PopLast() {
	b.mustNotBeEmpty("PopLast")
	b.data = b.data[:len(b.data)-1]
}

// At returns a pointer to the value stored at absolute index idx, allowing
// in-place mutation of an entry resolved earlier than the front of the
// buffer's own iteration. Panics if idx does not reference a live entry.
func (b *Buffer[T]) At(idx int) *T {
	off := idx - b.first
	if off < 0 || off >= len(b.data) {
		panic(fmt.Sprintf("ring: index %d out of live range [%d, %d)", idx, b.first, b.first+len(b.data)))
	}
	return &b.data[off].Value
}

func (b *Buffer[T]) mustNotBeEmpty(op string) {
	if len(b.data) == 0 {
		panic("ring: " + op + " called on empty buffer")
	}
}
