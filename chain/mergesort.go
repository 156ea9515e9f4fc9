package chain

// Merge sort over raw node links. The functions below never touch a Chain's
// head/last/size bookkeeping; SortFunc detaches the node sequence, runs
// sortNodes, and re-derives the bookkeeping from the result.

// sortNodes sorts a detached node sequence and returns its new head.
// O(n log n) time, O(log n) stack for the recursion; only links are
// rewritten.
func sortNodes[T any](head *node[T], less func(a, b T) bool) *node[T] {
	if head == nil || head.next == nil {
		return head
	}
	left, right := splitNodes(head)
	return mergeNodes(sortNodes(left, less), sortNodes(right, less), less)
}

// splitNodes cuts a sequence of at least two nodes into two halves.
//
// Classic slow/fast technique: slow advances one step for every two steps of
// fast, so slow sits at the end of the first half when fast runs out. The
// first half is truncated to terminate there.
func splitNodes[T any](head *node[T]) (*node[T], *node[T]) {
	slow, fast := head, head.next
	for fast != nil {
		fast = fast.next
		if fast != nil {
			slow = slow.next
			fast = fast.next
		}
	}
	right := slow.next
	slow.next = nil
	return head, right
}

// mergeNodes interleaves two sorted sequences into one.
//
// Ties prefer the left sequence. Left-half nodes precede right-half nodes in
// the original order, so the overall sort is stable. The local scratch node
// anchors the result while it grows and is discarded before returning.
func mergeNodes[T any](left, right *node[T], less func(a, b T) bool) *node[T] {
	var scratch node[T]
	tail := &scratch
	for left != nil && right != nil {
		if !less(right.payload, left.payload) { // left <= right
			tail.next = left
			left = left.next
		} else {
			tail.next = right
			right = right.next
		}
		tail = tail.next
	}
	if left != nil {
		tail.next = left
	} else {
		tail.next = right
	}
	return scratch.next
}
