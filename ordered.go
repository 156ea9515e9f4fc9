package chains

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "cmp"

// OrderedList is a singly-linked list keeping its elements sorted, with a
// fast path for insertions at the extremes.
//
// Push checks the head and tail first: values ranking at or below the current
// minimum, or at or above the current maximum, are spliced in O(1). Middle
// insertions fall back to the same linear scan the SortedList uses.
//
// Ordered lists are not safe for concurrent use.
type OrderedList[T any] struct {
	sortedBase[T]
}

// NewOrderedList creates an empty ordered list over the natural order of T.
func NewOrderedList[T cmp.Ordered]() *OrderedList[T] {
	return NewOrderedListFunc[T](func(a, b T) bool { return a < b })
}

// NewOrderedListFunc creates an empty ordered list ordered by less.
func NewOrderedListFunc[T any](less func(a, b T) bool) *OrderedList[T] {
	l := &OrderedList[T]{}
	l.less = less
	return l
}

// OrderedListOf creates an ordered list holding the given values.
func OrderedListOf[T cmp.Ordered](values ...T) *OrderedList[T] {
	l := NewOrderedList[T]()
	for _, v := range values {
		l.Push(v)
	}
	return l
}

// Push inserts a value at its sort position, trying the head and tail
// extremes before scanning.
func (l *OrderedList[T]) Push(value T) {
	l.state.InsertOrderedFunc(value, l.less)
}
