/*
Package chain implements the node-level engine shared by all list flavors of
module chains.

A Chain owns a singly-linked sequence of nodes, tracked by head and tail
pointers together with a size counter. It offers O(1) operations at the head
and at the tail, index-bounded mutation, three iteration modes and an in-place
merge sort over the raw node links. The public list types in the root package
are thin policies over this engine: they only decide where a new node gets
spliced in.

Nodes are never handed out to clients; ownership of a node rests either with
the chain's head slot or with the predecessor node's link slot.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the LICENSE file for details.
*/
package chain

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
