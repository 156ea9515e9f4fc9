package chain

import "fmt"

// Check validates the structural chain invariants:
//
//   - size == 0 exactly when head and last are unset,
//   - following next-links from head visits exactly size nodes,
//   - the final visited node is last, whose next-link is unset,
//   - no node is reachable twice (the chain is a simple path).
//
// This checker is intentionally strict and meant for tests.
func (c *Chain[T]) Check() error {
	if c == nil {
		return nil
	}
	if c.size == 0 {
		if c.head != nil || c.last != nil {
			return fmt.Errorf("%w: empty chain with linked head or tail", ErrLinkage)
		}
		return nil
	}
	if c.head == nil || c.last == nil {
		return fmt.Errorf("%w: size %d with unset head or tail", ErrLinkage, c.size)
	}
	count := 0
	var final *node[T]
	for n := c.head; n != nil; n = n.next {
		count++
		if count > c.size {
			return fmt.Errorf("%w: more than %d nodes reachable (cycle?)", ErrLinkage, c.size)
		}
		final = n
	}
	if count != c.size {
		return fmt.Errorf("%w: %d nodes reachable, size says %d", ErrLinkage, count, c.size)
	}
	if final != c.last {
		return fmt.Errorf("%w: tail pointer does not terminate the chain", ErrLinkage)
	}
	if c.last.next != nil {
		return fmt.Errorf("%w: node reachable past the tail", ErrLinkage)
	}
	return nil
}
