package chains

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"iter"

	"github.com/npillmayer/chains/chain"
)

// List is a singly-linked list keeping elements in insertion order.
//
// A list created by
//
//	List[int]{}
//
// is a valid object and behaves like the empty list. Push appends at the
// tail in O(1); front insertion and removal are O(1) as well.
//
// Lists are not safe for concurrent use.
type List[T any] struct {
	state chain.Chain[T]
}

// NewList creates an empty list.
func NewList[T any]() *List[T] {
	return &List[T]{}
}

// ListOf creates a list holding the given values in order.
func ListOf[T any](values ...T) *List[T] {
	l := NewList[T]()
	for _, v := range values {
		l.Push(v)
	}
	return l
}

// Len returns the number of elements, O(1).
func (l *List[T]) Len() int { return l.state.Len() }

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool { return l.state.IsEmpty() }

// First returns the first element, if any.
func (l *List[T]) First() (T, bool) { return l.state.First() }

// Last returns the last element, if any.
func (l *List[T]) Last() (T, bool) { return l.state.Last() }

// At returns the element at index, or a bounds error. O(n).
func (l *List[T]) At(index int) (T, error) { return l.state.At(index) }

// RefAt returns a pointer to the element at index for in-place update.
// The pointer is invalidated by any structural mutation of the list.
func (l *List[T]) RefAt(index int) (*T, error) { return l.state.RefAt(index) }

// SetAt replaces the element at index.
func (l *List[T]) SetAt(index int, value T) error { return l.state.SetAt(index, value) }

// Push appends a value at the tail, O(1).
func (l *List[T]) Push(value T) { l.state.PushBack(value) }

// PushFront prepends a value at the head, O(1).
func (l *List[T]) PushFront(value T) { l.state.PushFront(value) }

// Append pushes all values at the tail, preserving their order.
func (l *List[T]) Append(values ...T) { l.state.Append(values...) }

// Pop removes the last element and returns it, O(n).
// Popping an empty list returns ok=false.
func (l *List[T]) Pop() (T, bool) { return l.state.PopBack() }

// PopFront removes the first element and returns it, O(1).
// Popping an empty list returns ok=false.
func (l *List[T]) PopFront() (T, bool) { return l.state.PopFront() }

// InsertAt splices a value in front of position index; index == Len()
// appends. A failed call leaves the list untouched.
func (l *List[T]) InsertAt(index int, value T) error { return l.state.InsertAt(index, value) }

// RemoveAt unlinks the element at index and returns it.
// A failed call leaves the list untouched.
func (l *List[T]) RemoveAt(index int) (T, error) { return l.state.RemoveAt(index) }

// Clear removes all elements.
func (l *List[T]) Clear() { l.state.Clear() }

// IndexFunc returns the index of the first element satisfying pred, or -1.
func (l *List[T]) IndexFunc(pred func(T) bool) int { return l.state.IndexFunc(pred) }

// Values returns an iterator over all elements in list order. The sequence is
// restartable; it must not overlap with structural mutation of the list.
func (l *List[T]) Values() iter.Seq[T] { return l.state.Values() }

// Refs returns an iterator yielding a pointer to each element for in-place
// updates. At most one such iteration may be active at a time.
func (l *List[T]) Refs() iter.Seq[*T] { return l.state.Refs() }

// Drain returns a consuming iterator: each step removes the front element.
// After full consumption the list is empty.
func (l *List[T]) Drain() iter.Seq[T] { return l.state.Drain() }

// Each visits all elements in list order, stopping at the first callback
// error and returning it.
func (l *List[T]) Each(f func(index int, value T) error) error { return l.state.Each(f) }

// Slice materializes all elements into a newly allocated slice, preserving
// list order. The list is not mutated.
func (l *List[T]) Slice() []T { return l.state.Slice() }

// SortFunc sorts the list in the order given by less, using an in-place merge
// sort over the node links. Equal elements keep their relative order.
func (l *List[T]) SortFunc(less func(a, b T) bool) { l.state.SortFunc(less) }

// Sort sorts a list of ordered elements in ascending order.
func Sort[T cmp.Ordered](l *List[T]) {
	l.SortFunc(func(a, b T) bool { return a < b })
}

// Index returns the index of the first element equal to value, or -1.
func Index[T comparable](l *List[T], value T) int {
	return l.IndexFunc(func(x T) bool { return x == value })
}
