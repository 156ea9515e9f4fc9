/*
Package pathtree indexes filesystem paths in a hierarchical tree.

Every directory is a tree node holding two ordered lists: one of child
directory nodes and one of file names, both sorted by name. Inserting a path
walks the tree along the path's components, creating intermediate directory
nodes as needed. Listings per directory come out in sorted order for free.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the LICENSE file for details.
*/
package pathtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
