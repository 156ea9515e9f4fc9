package chain

import "iter"

// Values returns an iterator over all elements in chain order.
//
// The sequence is restartable: every call starts at the head again. Any
// number of value iterations may be in flight at the same time, provided no
// structural mutation (push/pop/insert/remove/clear/sort) happens while one
// is active.
func (c *Chain[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := c.head; n != nil; n = n.next {
			if !yield(n.payload) {
				return
			}
		}
	}
}

// Refs returns an iterator yielding a pointer to each element in chain order,
// for in-place updates. At most one Refs iteration may be active, and it must
// not overlap with any other iteration or mutation of the chain.
func (c *Chain[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := c.head; n != nil; n = n.next {
			if !yield(&n.payload) {
				return
			}
		}
	}
}

// Drain returns a consuming iterator: each step pops the front element. When
// the sequence is exhausted the chain is empty; breaking out early leaves a
// consistent, partially drained chain.
func (c *Chain[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			payload, ok := c.PopFront()
			if !ok {
				return
			}
			if !yield(payload) {
				return
			}
		}
	}
}

// Each visits all elements in chain order.
//
// The callback receives each element and its index. Iteration stops at the
// first callback error and returns that error to the caller.
func (c *Chain[T]) Each(f func(index int, payload T) error) error {
	index := 0
	for n := c.head; n != nil; n = n.next {
		if err := f(index, n.payload); err != nil {
			return err
		}
		index++
	}
	return nil
}
