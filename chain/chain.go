package chain

// Chain is a singly-linked node sequence with head/tail tracking.
//
// A chain created by
//
//	Chain[int]{}
//
// is a valid object and behaves like the empty sequence.
//
// Performance characteristics differ from slices:
//
//	Operation     |   Chain         |  Slice
//	--------------+-----------------+--------
//	PushFront     |   O(1)          |   O(n)
//	PushBack      |   O(1)          |   O(1) amortized
//	PopFront      |   O(1)          |   O(n)
//	PopBack       |   O(n)          |   O(1)
//	At / InsertAt |   O(n)          |   O(1) / O(n)
//	SortFunc      |   O(n log n)    |   O(n log n)
//
// Chains are not safe for concurrent use; clients own the synchronization
// discipline, as they would with a slice.
type Chain[T any] struct {
	head *node[T]
	last *node[T]
	size int
}

// Len returns the number of elements in the chain.
func (c *Chain[T]) Len() int {
	if c == nil {
		return 0
	}
	return c.size
}

// IsEmpty reports whether the chain has no elements.
func (c *Chain[T]) IsEmpty() bool {
	return c.Len() == 0
}

// First returns the payload of the first node, if any.
func (c *Chain[T]) First() (T, bool) {
	var none T
	if c == nil || c.head == nil {
		return none, false
	}
	return c.head.payload, true
}

// Last returns the payload of the last node, if any.
func (c *Chain[T]) Last() (T, bool) {
	var none T
	if c == nil || c.last == nil {
		return none, false
	}
	return c.last.payload, true
}

// At returns the element at index. Walks the chain, O(n).
func (c *Chain[T]) At(index int) (T, error) {
	var none T
	ref, err := c.RefAt(index)
	if err != nil {
		return none, err
	}
	return *ref, nil
}

// RefAt returns a pointer to the element at index, allowing in-place update.
// The pointer is invalidated by any structural mutation of the chain.
func (c *Chain[T]) RefAt(index int) (*T, error) {
	if index < 0 || index >= c.Len() {
		return nil, boundsError(index, c.Len())
	}
	n := c.head
	for range index {
		n = n.next
	}
	return &n.payload, nil
}

// SetAt replaces the element at index.
func (c *Chain[T]) SetAt(index int, payload T) error {
	ref, err := c.RefAt(index)
	if err != nil {
		return err
	}
	*ref = payload
	return nil
}

// PushBack appends an element at the tail, O(1).
func (c *Chain[T]) PushBack(payload T) {
	n := newNode(payload)
	if c.size == 0 {
		c.head = n
	} else {
		c.last.next = n
	}
	c.last = n
	c.size++
}

// PushFront prepends an element at the head, O(1).
func (c *Chain[T]) PushFront(payload T) {
	n := newNode(payload)
	n.next = c.head
	c.head = n
	if c.size == 0 {
		c.last = n
	}
	c.size++
}

// PopFront unlinks the first node and returns its payload, O(1).
// Popping an empty chain is not an error: it returns ok=false.
func (c *Chain[T]) PopFront() (T, bool) {
	var none T
	if c.size == 0 {
		return none, false
	}
	n := c.head
	c.head = n.next
	n.next = nil
	if c.head == nil {
		c.last = nil
	}
	c.size--
	return n.payload, true
}

// PopBack unlinks the last node and returns its payload. Walks to the
// penultimate node, O(n). Popping an empty chain returns ok=false.
func (c *Chain[T]) PopBack() (T, bool) {
	var none T
	if c.size == 0 {
		return none, false
	}
	if c.head == c.last {
		payload := c.head.payload
		c.head = nil
		c.last = nil
		c.size = 0
		return payload, true
	}
	n := c.head
	for n.next != c.last {
		n = n.next
	}
	payload := c.last.payload
	n.next = nil
	c.last = n
	c.size--
	return payload, true
}

// InsertAt splices a new element in front of position index.
// index == Len() appends, index == 0 prepends. A failed call leaves the chain
// untouched.
func (c *Chain[T]) InsertAt(index int, payload T) error {
	if index < 0 || index > c.size {
		return boundsError(index, c.size)
	}
	switch index {
	case c.size:
		c.PushBack(payload)
	case 0:
		c.PushFront(payload)
	default:
		prev := c.head
		for range index - 1 {
			prev = prev.next
		}
		n := newNode(payload)
		n.next = prev.next
		prev.next = n
		c.size++
	}
	return nil
}

// RemoveAt unlinks the element at index and returns its payload.
// A failed call leaves the chain untouched.
func (c *Chain[T]) RemoveAt(index int) (T, error) {
	var none T
	if index < 0 || index >= c.size {
		return none, boundsError(index, c.size)
	}
	switch index {
	case 0:
		payload, ok := c.PopFront()
		assert(ok, "bounds-checked PopFront found an empty chain")
		return payload, nil
	case c.size - 1:
		payload, ok := c.PopBack()
		assert(ok, "bounds-checked PopBack found an empty chain")
		return payload, nil
	}
	prev := c.head
	for range index - 1 {
		prev = prev.next
	}
	n := prev.next
	prev.next = n.next
	n.next = nil
	c.size--
	return n.payload, nil
}

// Clear unlinks all nodes. The walk is iterative, so arbitrarily long chains
// do not exhaust the stack.
func (c *Chain[T]) Clear() {
	n := c.head
	c.head = nil
	c.last = nil
	c.size = 0
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}
}

// IndexFunc returns the index of the first element satisfying pred, or -1 if
// none does. The chain is not mutated.
func (c *Chain[T]) IndexFunc(pred func(T) bool) int {
	index := 0
	for n := c.head; n != nil; n = n.next {
		if pred(n.payload) {
			return index
		}
		index++
	}
	return -1
}

// Slice materializes all elements into a freshly allocated slice in traversal
// order. The chain is not mutated.
func (c *Chain[T]) Slice() []T {
	out := make([]T, 0, c.Len())
	for n := c.head; n != nil; n = n.next {
		out = append(out, n.payload)
	}
	return out
}

// Append pushes all values at the tail, preserving their order.
func (c *Chain[T]) Append(values ...T) {
	for _, payload := range values {
		c.PushBack(payload)
	}
}

// InsertSortedFunc splices a new element in front of the first element x with
// less(payload, x), scanning linearly from the head. Elements equal under
// less keep their insertion order: new ones go after existing ones.
//
// The chain must already be sorted consistently with less.
func (c *Chain[T]) InsertSortedFunc(payload T, less func(a, b T) bool) {
	n := newNode(payload)
	switch {
	case c.size == 0:
		c.head = n
		c.last = n
	case less(payload, c.head.payload):
		n.next = c.head
		c.head = n
	default:
		prev := c.head
		for prev.next != nil && !less(payload, prev.next.payload) {
			prev = prev.next
		}
		n.next = prev.next
		prev.next = n
		if n.next == nil {
			c.last = n
		}
	}
	c.size++
}

// InsertOrderedFunc splices like InsertSortedFunc, but checks the head and
// tail extremes first: elements that rank at or outside the current bounds
// are spliced in O(1). Middle insertions fall back to the same linear scan.
//
// The chain must already be sorted consistently with less.
func (c *Chain[T]) InsertOrderedFunc(payload T, less func(a, b T) bool) {
	n := newNode(payload)
	switch {
	case c.size == 0:
		c.head = n
		c.last = n
	case !less(c.head.payload, payload): // payload <= head
		n.next = c.head
		c.head = n
	case !less(payload, c.last.payload): // last <= payload
		c.last.next = n
		c.last = n
	default:
		prev := c.head
		for prev.next != nil && !less(payload, prev.next.payload) {
			prev = prev.next
		}
		n.next = prev.next
		prev.next = n
		assert(n.next != nil, "middle splice ran past the tail")
	}
	c.size++
}

// SortFunc sorts the chain in the order given by less. The node links are
// rewritten in place by a merge sort; payloads are never copied. Equal
// elements keep their relative order.
//
// After sorting, tail and size are re-derived by one traversal of the
// returned node sequence.
func (c *Chain[T]) SortFunc(less func(a, b T) bool) {
	if c.size <= 1 {
		return
	}
	head := c.head
	count := c.size
	c.head = nil
	c.last = nil
	c.size = 0
	c.relink(sortNodes(head, less))
	assert(c.size == count, "sort lost or duplicated nodes")
	tracer().Debugf("chain: sorted %d nodes", c.size)
}

// relink adopts a detached node sequence, recomputing last and size.
func (c *Chain[T]) relink(head *node[T]) {
	c.head = head
	c.last = nil
	c.size = 0
	for n := head; n != nil; n = n.next {
		c.last = n
		c.size++
	}
}
