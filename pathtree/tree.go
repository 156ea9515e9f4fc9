package pathtree

import (
	"errors"
	"iter"
	"path/filepath"
	"strings"

	"github.com/npillmayer/chains"
)

var (
	// ErrNotAbsolute signals a relative path where an absolute one is required.
	ErrNotAbsolute = errors.New("pathtree: path is not absolute")
)

// Node is a directory in the tree. It keeps its child directories and its
// file names in sorted order.
type Node struct {
	name  string
	dirs  *chains.OrderedList[*Node]
	files *chains.OrderedList[string]
}

func newNode(name string) *Node {
	return &Node{
		name:  name,
		dirs:  chains.NewOrderedListFunc(func(a, b *Node) bool { return a.name < b.name }),
		files: chains.NewOrderedList[string](),
	}
}

// Name returns the directory's name; the root node's name is empty.
func (n *Node) Name() string { return n.name }

// Files lists the file names in this directory in sorted order.
func (n *Node) Files() []string { return n.files.Slice() }

// Dirs lists the child directory names in sorted order.
func (n *Node) Dirs() []string {
	out := make([]string, 0, n.dirs.Len())
	for d := range n.dirs.Values() {
		out = append(out, d.name)
	}
	return out
}

// dir returns the child directory with the given name, if present.
//
// Lookup goes through the ordered list's Find with a probe node; the list's
// order compares names only, so rank equality is name equality.
func (n *Node) dir(name string) (*Node, bool) {
	probe := &Node{name: name}
	index := n.dirs.Find(probe)
	if index < 0 {
		return nil, false
	}
	d, err := n.dirs.At(index)
	if err != nil {
		return nil, false
	}
	return d, true
}

func (n *Node) ensureDir(name string) *Node {
	if d, ok := n.dir(name); ok {
		return d
	}
	d := newNode(name)
	n.dirs.Push(d)
	return d
}

// Tree is a hierarchical index of filesystem paths.
//
// The zero Tree is not usable; create trees with New. Trees are not safe for
// concurrent use.
type Tree struct {
	root *Node
}

// New creates an empty tree whose root represents the filesystem root.
func New() *Tree {
	return &Tree{root: newNode("")}
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node { return t.root }

// Add indexes an absolute path. All intermediate components become directory
// nodes; the final component is registered as a file or a directory,
// depending on isFile. Adding a path twice is a no-op.
func (t *Tree) Add(path string, isFile bool) error {
	if !filepath.IsAbs(path) {
		return ErrNotAbsolute
	}
	parts := components(path)
	node := t.root
	final := len(parts) - 1
	for i, part := range parts {
		if i < final {
			node = node.ensureDir(part)
			continue
		}
		if isFile {
			if node.files.Find(part) < 0 {
				node.files.Push(part)
			}
		} else {
			node.ensureDir(part)
		}
	}
	tracer().Debugf("pathtree: added %q (file=%v)", path, isFile)
	return nil
}

// Lookup walks the tree along an absolute path and returns the directory node
// it ends at. Returns ok=false if the path is relative or if any component is
// not indexed as a directory.
func (t *Tree) Lookup(path string) (*Node, bool) {
	if !filepath.IsAbs(path) {
		return nil, false
	}
	node := t.root
	for _, part := range components(path) {
		next, ok := node.dir(part)
		if !ok {
			return nil, false
		}
		node = next
	}
	return node, true
}

// Contains reports whether an absolute path is indexed as a file.
func (t *Tree) Contains(path string) bool {
	if !filepath.IsAbs(path) {
		return false
	}
	dir, name := filepath.Split(filepath.Clean(path))
	node, ok := t.Lookup(filepath.Clean(dir))
	if !ok {
		return false
	}
	return node.files.Find(name) >= 0
}

// Walk returns a pre-order iterator over all directory nodes, keyed by their
// full path. Children are visited in sorted order.
func (t *Tree) Walk() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		walkNode(t.root, string(filepath.Separator), yield)
	}
}

func walkNode(n *Node, path string, yield func(string, *Node) bool) bool {
	if !yield(path, n) {
		return false
	}
	for d := range n.dirs.Values() {
		if !walkNode(d, filepath.Join(path, d.name), yield) {
			return false
		}
	}
	return true
}

// components splits a cleaned absolute path into its path components,
// omitting the root separator.
func components(path string) []string {
	clean := filepath.Clean(path)
	trimmed := strings.TrimPrefix(clean, string(filepath.Separator))
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, string(filepath.Separator))
}
