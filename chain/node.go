package chain

// node is the atomic unit of storage: one payload plus the link to its
// successor. A node is owned by exactly one link slot at any time, either the
// chain's head or the next-field of its predecessor.
type node[T any] struct {
	next    *node[T]
	payload T
}

func newNode[T any](payload T) *node[T] {
	return &node[T]{payload: payload}
}
