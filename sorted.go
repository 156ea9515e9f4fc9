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

// sortedBase carries the state and the read/remove surface shared by the two
// sorted flavors. The flavors differ only in their Push policy.
type sortedBase[T any] struct {
	state chain.Chain[T]
	less  func(a, b T) bool
}

// Len returns the number of elements, O(1).
func (l *sortedBase[T]) Len() int { return l.state.Len() }

// IsEmpty reports whether the list has no elements.
func (l *sortedBase[T]) IsEmpty() bool { return l.state.IsEmpty() }

// First returns the smallest element, if any.
func (l *sortedBase[T]) First() (T, bool) { return l.state.First() }

// Last returns the largest element, if any.
func (l *sortedBase[T]) Last() (T, bool) { return l.state.Last() }

// At returns the element at index, or a bounds error. O(n).
func (l *sortedBase[T]) At(index int) (T, error) { return l.state.At(index) }

// Pop removes the largest element and returns it, O(n).
// Popping an empty list returns ok=false.
func (l *sortedBase[T]) Pop() (T, bool) { return l.state.PopBack() }

// PopFront removes the smallest element and returns it, O(1).
// Popping an empty list returns ok=false.
func (l *sortedBase[T]) PopFront() (T, bool) { return l.state.PopFront() }

// RemoveAt unlinks the element at index and returns it.
// A failed call leaves the list untouched.
func (l *sortedBase[T]) RemoveAt(index int) (T, error) { return l.state.RemoveAt(index) }

// Clear removes all elements.
func (l *sortedBase[T]) Clear() { l.state.Clear() }

// IndexFunc returns the index of the first element satisfying pred, or -1.
func (l *sortedBase[T]) IndexFunc(pred func(T) bool) int { return l.state.IndexFunc(pred) }

// Values returns an iterator over all elements in ascending order. The
// sequence is restartable; it must not overlap with mutation of the list.
func (l *sortedBase[T]) Values() iter.Seq[T] { return l.state.Values() }

// Drain returns a consuming iterator: each step removes the smallest element.
func (l *sortedBase[T]) Drain() iter.Seq[T] { return l.state.Drain() }

// Each visits all elements in ascending order, stopping at the first callback
// error and returning it.
func (l *sortedBase[T]) Each(f func(index int, value T) error) error { return l.state.Each(f) }

// Slice materializes all elements into a newly allocated slice in ascending
// order. The list is not mutated.
func (l *sortedBase[T]) Slice() []T { return l.state.Slice() }

// Find returns the index of the first element ranking equal to value under
// the list's order, or -1.
//
// The scan stops as soon as it passes an element ranking above value, which
// is correct only because elements are stored in the order the list's less
// function defines. Clients constructing lists with NewSortedListFunc or
// NewOrderedListFunc must make sure the equality they care about coincides
// with rank equality under that function.
func (l *sortedBase[T]) Find(value T) int {
	index := 0
	for x := range l.state.Values() {
		if !l.less(x, value) {
			if !l.less(value, x) {
				return index
			}
			break // x ranks above value, nothing further can match
		}
		index++
	}
	return -1
}

// SortedList is a singly-linked list keeping its elements sorted.
//
// Every Push scans linearly from the head for the insertion point, O(n) in
// the worst case. Elements comparing equal keep their insertion order.
//
// Sorted lists are not safe for concurrent use.
type SortedList[T any] struct {
	sortedBase[T]
}

// NewSortedList creates an empty sorted list over the natural order of T.
func NewSortedList[T cmp.Ordered]() *SortedList[T] {
	return NewSortedListFunc[T](func(a, b T) bool { return a < b })
}

// NewSortedListFunc creates an empty sorted list ordered by less.
func NewSortedListFunc[T any](less func(a, b T) bool) *SortedList[T] {
	l := &SortedList[T]{}
	l.less = less
	return l
}

// SortedListOf creates a sorted list holding the given values.
func SortedListOf[T cmp.Ordered](values ...T) *SortedList[T] {
	l := NewSortedList[T]()
	for _, v := range values {
		l.Push(v)
	}
	return l
}

// Push inserts a value at its sort position, scanning linearly from the
// head. New elements go after existing equal ones.
func (l *SortedList[T]) Push(value T) {
	l.state.InsertSortedFunc(value, l.less)
}
