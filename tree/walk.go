package tree

import "errors"

// ErrEmptyTree is returned if a walk is started on an empty tree.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// SkipChildren may be returned by an Action to prevent descending into the
// children of the current node. It does not abort the walk.
var SkipChildren = errors.New("skip children")

// Predicate is a function type to match against nodes of a tree.
// test is the node under test, node is the input node of the search.
type Predicate[T comparable] func(test *Node[T], node *Node[T]) (match *Node[T], err error)

// Action is a function type to operate on tree nodes.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) error

// TopDown traverses a tree starting at (and including) node.
// The traversal guarantees that parents are always processed before
// their children, and children in sequence.
//
// If the action returns SkipChildren for a node, descending the branch below
// this node is skipped. Any other error aborts the walk and is returned.
func TopDown[T comparable](node *Node[T], action Action[T]) error {
	if node == nil {
		return ErrEmptyTree
	}
	parent := node.Parent()
	pos := 0
	if parent != nil {
		pos = parent.IndexOfChild(node)
	}
	return topDown(node, parent, pos, action)
}

func topDown[T comparable](node *Node[T], parent *Node[T], pos int, action Action[T]) error {
	if err := action(node, parent, pos); err != nil {
		if err == SkipChildren {
			return nil
		}
		return err
	}
	for i, ch := range node.Children() {
		if err := topDown(ch, node, i, action); err != nil {
			return err
		}
	}
	return nil
}

// BottomUp traverses a tree starting at node, processing all children
// before their parent. An error from action aborts the walk.
func BottomUp[T comparable](node *Node[T], action Action[T]) error {
	if node == nil {
		return ErrEmptyTree
	}
	parent := node.Parent()
	pos := 0
	if parent != nil {
		pos = parent.IndexOfChild(node)
	}
	return bottomUp(node, parent, pos, action)
}

func bottomUp[T comparable](node *Node[T], parent *Node[T], pos int, action Action[T]) error {
	for i, ch := range node.Children() {
		if err := bottomUp(ch, node, i, action); err != nil {
			return err
		}
	}
	return action(node, parent, pos)
}

// DescendentsWith collects all descendents of node matching a predicate,
// in document order. The search does not include the start node.
func DescendentsWith[T comparable](node *Node[T], predicate Predicate[T]) ([]*Node[T], error) {
	if node == nil {
		return nil, ErrEmptyTree
	}
	var selection []*Node[T]
	err := TopDown(node, func(n *Node[T], parent *Node[T], pos int) error {
		if n == node {
			return nil
		}
		match, err := predicate(n, node)
		if err != nil {
			return err
		}
		if match != nil {
			selection = append(selection, match)
		}
		return nil
	})
	tracer().Debugf("descendents search selected %d nodes", len(selection))
	return selection, err
}

// AncestorWith finds the nearest ancestor matching the given predicate.
// The search does not include the start node.
func AncestorWith[T comparable](node *Node[T], predicate Predicate[T]) (*Node[T], error) {
	if node == nil {
		return nil, ErrEmptyTree
	}
	for anc := node.Parent(); anc != nil; anc = anc.Parent() {
		match, err := predicate(anc, node)
		if err != nil || match != nil {
			return match, err
		}
	}
	return nil, nil
}

// Count returns the number of nodes in the (sub-)tree starting at node.
func Count[T comparable](node *Node[T]) int {
	if node == nil {
		return 0
	}
	n := 1
	for _, ch := range node.Children() {
		n += Count(ch)
	}
	return n
}
