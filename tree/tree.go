/*
Package tree provides an ordered multi-way tree whose nodes live in an arena and
are addressed by generational handles.

Every node keeps links to its parent, first and last child and previous and
next sibling. The top level of the tree is a sibling chain bounded by two
payload-less sentinels, head and feet. Two iterator kinds walk the tree: Iter
visits nodes in pre-order and SiblingIter stays among the children of a single
parent. Both can move forwards and backwards.

Structural misuse, such as inserting before head or erasing a sentinel, is a
programming error and panics.
*/
package tree

import "iter"

// NodeID is a handle to a node of a Tree. The zero value is Nil.
//
// A handle becomes stale once its node is erased; passing a stale handle to
// the Tree panics instead of silently touching whatever node reuses the slot.
type NodeID struct {
	index uint32
	gen   uint32
}

// Nil is the absent node.
var Nil NodeID

// IsNil reports whether id refers to no node.
func (id NodeID) IsNil() bool { return id.index == 0 }

// node holds the payload and the links, stored as arena indices where 0 means none.
type node[T any] struct {
	value       T
	parent      uint32
	firstChild  uint32
	lastChild   uint32
	prevSibling uint32
	nextSibling uint32
	gen         uint32
	live        bool
}

// Tree is an ordered multi-way tree. It is not safe for concurrent use.
type Tree[T any] struct {
	// nodes[0] is never used so that index 0 can stand for "no node".
	nodes []node[T]
	free  []uint32
	head  uint32
	feet  uint32
	size  int
}

// New creates an empty tree, with head and feet linked as siblings.
func New[T any]() *Tree[T] {
	t := &Tree[T]{nodes: make([]node[T], 1, 64)}
	t.headInitialise()
	return t
}

func (t *Tree[T]) headInitialise() {
	var zero T
	t.head = t.alloc(zero)
	t.feet = t.alloc(zero)
	t.nodes[t.head].nextSibling = t.feet
	t.nodes[t.feet].prevSibling = t.head
}

func (t *Tree[T]) alloc(v T) uint32 {
	if n := len(t.free); n > 0 {
		i := t.free[n-1]
		t.free = t.free[:n-1]
		t.nodes[i] = node[T]{value: v, gen: t.nodes[i].gen, live: true}
		return i
	}
	t.nodes = append(t.nodes, node[T]{value: v, gen: 1, live: true})
	return uint32(len(t.nodes) - 1)
}

// release returns the slot to the free list and bumps its generation so
// that outstanding handles to it go stale.
func (t *Tree[T]) release(i uint32) {
	t.nodes[i] = node[T]{gen: t.nodes[i].gen + 1}
	t.free = append(t.free, i)
}

// id builds the current handle for an arena index.
func (t *Tree[T]) id(i uint32) NodeID {
	if i == 0 {
		return Nil
	}
	return NodeID{index: i, gen: t.nodes[i].gen}
}

// index resolves a handle to an arena index, panicking on stale handles.
func (t *Tree[T]) index(id NodeID) uint32 {
	if id.index == 0 {
		return 0
	}
	if !t.Valid(id) {
		panic("tree: stale or foreign node handle")
	}
	return id.index
}

// Valid reports whether id refers to a live node of t, sentinels included.
func (t *Tree[T]) Valid(id NodeID) bool {
	if id.index == 0 || int(id.index) >= len(t.nodes) {
		return false
	}
	n := &t.nodes[id.index]
	return n.live && n.gen == id.gen
}

// Head returns the sentinel that precedes the top-level siblings.
func (t *Tree[T]) Head() NodeID { return t.id(t.head) }

// Feet returns the sentinel that follows the top-level siblings.
func (t *Tree[T]) Feet() NodeID { return t.id(t.feet) }

// Len returns the number of nodes in the tree, not counting the sentinels.
func (t *Tree[T]) Len() int { return t.size }

// Value returns the payload of id.
func (t *Tree[T]) Value(id NodeID) T {
	i := t.index(id)
	if i == 0 {
		panic("tree: value of nil node")
	}
	return t.nodes[i].value
}

// SetValue replaces the payload of id.
func (t *Tree[T]) SetValue(id NodeID, v T) {
	i := t.index(id)
	if i == 0 || i == t.head || i == t.feet {
		panic("tree: cannot set value of nil or sentinel node")
	}
	t.nodes[i].value = v
}

// Parent returns the parent of id, or Nil for top-level nodes and sentinels.
func (t *Tree[T]) Parent(id NodeID) NodeID { return t.link(id, func(n *node[T]) uint32 { return n.parent }) }

// FirstChild returns the first child of id, or Nil.
func (t *Tree[T]) FirstChild(id NodeID) NodeID {
	return t.link(id, func(n *node[T]) uint32 { return n.firstChild })
}

// LastChild returns the last child of id, or Nil.
func (t *Tree[T]) LastChild(id NodeID) NodeID {
	return t.link(id, func(n *node[T]) uint32 { return n.lastChild })
}

// PrevSibling returns the previous sibling of id, or Nil.
func (t *Tree[T]) PrevSibling(id NodeID) NodeID {
	return t.link(id, func(n *node[T]) uint32 { return n.prevSibling })
}

// NextSibling returns the next sibling of id, or Nil.
func (t *Tree[T]) NextSibling(id NodeID) NodeID {
	return t.link(id, func(n *node[T]) uint32 { return n.nextSibling })
}

func (t *Tree[T]) link(id NodeID, get func(*node[T]) uint32) NodeID {
	i := t.index(id)
	if i == 0 {
		return Nil
	}
	return t.id(get(&t.nodes[i]))
}

// IsLeaf reports whether id has no children.
func (t *Tree[T]) IsLeaf(id NodeID) bool {
	i := t.index(id)
	if i == 0 {
		return true
	}
	n := &t.nodes[i]
	return n.firstChild == 0 && n.lastChild == 0
}

// NumChildren counts the direct children of id.
func (t *Tree[T]) NumChildren(id NodeID) int {
	i := t.index(id)
	if i == 0 {
		return 0
	}
	c := t.nodes[i].firstChild
	if c == 0 {
		return 0
	}
	count := 1
	for c != t.nodes[i].lastChild {
		count++
		c = t.nodes[c].nextSibling
	}
	return count
}

// InsertBefore inserts v as the previous sibling of pos and returns the new
// node. A Nil pos inserts before feet, that is, at the end of the top level.
func (t *Tree[T]) InsertBefore(pos NodeID, v T) NodeID {
	p := t.index(pos)
	if p == 0 {
		p = t.feet
	}
	if p == t.head {
		panic("tree: cannot insert before head")
	}

	n := t.alloc(v)
	tmp := &t.nodes[n]
	at := &t.nodes[p]
	tmp.parent = at.parent
	tmp.nextSibling = p
	tmp.prevSibling = at.prevSibling
	at.prevSibling = n

	if tmp.prevSibling == 0 {
		if tmp.parent != 0 {
			t.nodes[tmp.parent].firstChild = n
		}
	} else {
		t.nodes[tmp.prevSibling].nextSibling = n
	}
	t.size++
	return t.id(n)
}

// AppendChild adds v as the last child of pos and returns the new node.
func (t *Tree[T]) AppendChild(pos NodeID, v T) NodeID {
	p := t.index(pos)
	switch p {
	case 0:
		panic("tree: cannot append child to nil node")
	case t.head, t.feet:
		panic("tree: cannot append child to sentinel")
	}

	n := t.alloc(v)
	tmp := &t.nodes[n]
	at := &t.nodes[p]
	tmp.parent = p
	if at.lastChild != 0 {
		t.nodes[at.lastChild].nextSibling = n
	} else {
		at.firstChild = n
	}
	tmp.prevSibling = at.lastChild
	at.lastChild = n
	t.size++
	return t.id(n)
}

// Erase removes the node under it together with its whole subtree. The
// returned iterator is positioned where it would have gone next had the
// erased subtree been skipped.
func (t *Tree[T]) Erase(it Iter[T]) Iter[T] {
	cur := t.index(it.id)
	switch cur {
	case 0:
		panic("tree: cannot erase nil node")
	case t.head, t.feet:
		panic("tree: cannot erase sentinel")
	}

	ret := it
	ret.tree = t
	ret.SkipChildren()
	ret.Next()

	t.eraseChildren(cur)
	n := &t.nodes[cur]
	if n.prevSibling == 0 {
		t.nodes[n.parent].firstChild = n.nextSibling
	} else {
		t.nodes[n.prevSibling].nextSibling = n.nextSibling
	}
	if n.nextSibling == 0 {
		t.nodes[n.parent].lastChild = n.prevSibling
	} else {
		t.nodes[n.nextSibling].prevSibling = n.prevSibling
	}
	t.release(cur)
	t.size--
	return ret
}

// EraseChildren removes every descendant of id, leaving id as a leaf.
func (t *Tree[T]) EraseChildren(id NodeID) {
	i := t.index(id)
	if i == 0 {
		return
	}
	t.eraseChildren(i)
}

func (t *Tree[T]) eraseChildren(i uint32) {
	c := t.nodes[i].firstChild
	for c != 0 {
		next := t.nodes[c].nextSibling
		t.eraseChildren(c)
		t.release(c)
		t.size--
		c = next
	}
	t.nodes[i].firstChild = 0
	t.nodes[i].lastChild = 0
}

// Clear erases every node except the sentinels.
func (t *Tree[T]) Clear() {
	for t.nodes[t.head].nextSibling != t.feet {
		t.Erase(t.At(t.id(t.nodes[t.head].nextSibling)))
	}
}

// Begin returns a pre-order iterator at the first top-level node, or at feet
// when the tree is empty.
func (t *Tree[T]) Begin() Iter[T] {
	return Iter[T]{tree: t, id: t.id(t.nodes[t.head].nextSibling)}
}

// End returns the pre-order iterator at feet.
func (t *Tree[T]) End() Iter[T] {
	return Iter[T]{tree: t, id: t.id(t.feet)}
}

// At returns a pre-order iterator positioned at id.
func (t *Tree[T]) At(id NodeID) Iter[T] {
	t.index(id)
	return Iter[T]{tree: t, id: id}
}

// BeginChildren returns a sibling iterator at the first child of id, or the
// end iterator when id is a leaf.
func (t *Tree[T]) BeginChildren(id NodeID) SiblingIter[T] {
	i := t.index(id)
	if i == 0 {
		panic("tree: children of nil node")
	}
	if t.nodes[i].firstChild == 0 {
		return t.EndChildren(id)
	}
	return SiblingIter[T]{tree: t, id: t.id(t.nodes[i].firstChild), parent: id}
}

// EndChildren returns the sibling end iterator for the children of id.
func (t *Tree[T]) EndChildren(id NodeID) SiblingIter[T] {
	return SiblingIter[T]{tree: t, parent: id}
}

// All yields every non-sentinel node in pre-order.
func (t *Tree[T]) All() iter.Seq2[NodeID, T] {
	return func(yield func(NodeID, T) bool) {
		for it, end := t.Begin(), t.End(); !it.Equal(end); it.Next() {
			if !yield(it.id, t.nodes[it.id.index].value) {
				return
			}
		}
	}
}

// TopLevel yields the nodes between head and feet.
func (t *Tree[T]) TopLevel() iter.Seq2[NodeID, T] {
	return func(yield func(NodeID, T) bool) {
		for i := t.nodes[t.head].nextSibling; i != t.feet; i = t.nodes[i].nextSibling {
			if !yield(t.id(i), t.nodes[i].value) {
				return
			}
		}
	}
}

// Children yields the direct children of id, first to last.
func (t *Tree[T]) Children(id NodeID) iter.Seq2[NodeID, T] {
	return func(yield func(NodeID, T) bool) {
		for s, end := t.BeginChildren(id), t.EndChildren(id); !s.Equal(end); s.Next() {
			if !yield(s.id, t.nodes[s.id.index].value) {
				return
			}
		}
	}
}
