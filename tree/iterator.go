package tree

// Iter walks a Tree depth-first, visiting a node before its children.
// The zero Iter, and an Iter advanced past feet, is invalid.
type Iter[T any] struct {
	tree *Tree[T]
	id   NodeID
	skip bool
}

// Node returns the node the iterator points at.
func (it Iter[T]) Node() NodeID { return it.id }

// Valid reports whether the iterator points at a node.
func (it Iter[T]) Valid() bool { return it.tree != nil && !it.id.IsNil() }

// Value returns the payload at the iterator.
func (it Iter[T]) Value() T { return it.tree.Value(it.id) }

// Equal reports whether both iterators point at the same node.
func (it Iter[T]) Equal(other Iter[T]) bool { return it.id == other.id }

// NumChildren counts the children of the node at the iterator.
func (it Iter[T]) NumChildren() int { return it.tree.NumChildren(it.id) }

// SkipChildren makes the next advance step over the children of the current node.
func (it *Iter[T]) SkipChildren() { it.skip = true }

// Next advances to the pre-order successor.
func (it *Iter[T]) Next() {
	t := it.tree
	i := it.current()
	if !it.skip && t.nodes[i].firstChild != 0 {
		it.id = t.id(t.nodes[i].firstChild)
		return
	}
	it.skip = false
	for t.nodes[i].nextSibling == 0 {
		i = t.nodes[i].parent
		if i == 0 {
			it.id = Nil
			return
		}
	}
	it.id = t.id(t.nodes[i].nextSibling)
}

// Prev moves to the pre-order predecessor: the deepest last descendant of the
// previous sibling, or the parent when there is no previous sibling.
func (it *Iter[T]) Prev() {
	t := it.tree
	i := it.current()
	if p := t.nodes[i].prevSibling; p != 0 {
		i = p
		for t.nodes[i].lastChild != 0 {
			i = t.nodes[i].lastChild
		}
	} else {
		i = t.nodes[i].parent
	}
	it.id = t.id(i)
}

func (it *Iter[T]) current() uint32 {
	if it.tree == nil {
		panic("tree: use of zero iterator")
	}
	i := it.tree.index(it.id)
	if i == 0 {
		panic("tree: iterator moved past the end")
	}
	return i
}

// SiblingIter walks the children of one parent. The end position is Nil; it
// remembers the parent so that Prev from the end lands on the last child.
type SiblingIter[T any] struct {
	tree   *Tree[T]
	id     NodeID
	parent NodeID
}

// Siblings returns a sibling iterator positioned at id.
func (t *Tree[T]) Siblings(id NodeID) SiblingIter[T] {
	return SiblingIter[T]{tree: t, id: id, parent: t.Parent(id)}
}

// Node returns the node the iterator points at, Nil at the end.
func (s SiblingIter[T]) Node() NodeID { return s.id }

// Parent returns the parent whose children are being walked.
func (s SiblingIter[T]) Parent() NodeID { return s.parent }

// Valid reports whether the iterator points at a node.
func (s SiblingIter[T]) Valid() bool { return s.tree != nil && !s.id.IsNil() }

// Value returns the payload at the iterator.
func (s SiblingIter[T]) Value() T { return s.tree.Value(s.id) }

// Equal reports whether both iterators point at the same node.
func (s SiblingIter[T]) Equal(other SiblingIter[T]) bool { return s.id == other.id }

// Next moves to the next sibling. It is a no-op at the end.
func (s *SiblingIter[T]) Next() {
	if !s.id.IsNil() {
		s.id = s.tree.NextSibling(s.id)
	}
}

// Prev moves to the previous sibling, or to the last child of the parent when
// the iterator is at the end.
func (s *SiblingIter[T]) Prev() {
	if !s.id.IsNil() {
		s.id = s.tree.PrevSibling(s.id)
		return
	}
	if s.parent.IsNil() {
		panic("tree: sibling iterator has no parent")
	}
	s.id = s.tree.LastChild(s.parent)
}
