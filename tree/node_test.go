package tree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNodeAddAndIsolate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.tree")
	defer teardown()
	//
	root := NewNode("root")
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	root.AddChild(a).AddChild(b).AddChild(c)
	if root.ChildCount() != 3 {
		t.Fatalf("expected root to have 3 children, has %d", root.ChildCount())
	}
	b.Isolate()
	if root.ChildCount() != 2 {
		t.Errorf("expected isolate to close the gap, child count is %d", root.ChildCount())
	}
	if b.Parent() != nil {
		t.Errorf("expected isolated node to have no parent")
	}
	if ch, _ := root.Child(1); ch != c {
		t.Errorf("expected c to move to position 1, is %v", ch)
	}
}

func TestNodeReparent(t *testing.T) {
	r1, r2 := NewNode(1), NewNode(2)
	x := NewNode(10)
	r1.AddChild(x)
	r2.AddChild(x)
	if r1.ChildCount() != 0 || r2.ChildCount() != 1 {
		t.Errorf("expected x to be moved from r1 to r2, counts are %d/%d", r1.ChildCount(), r2.ChildCount())
	}
	if x.Parent() != r2 {
		t.Errorf("expected parent of x to be r2")
	}
}

func TestNodeInsertAndReplace(t *testing.T) {
	root := NewNode("root")
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	root.AddChild(a).AddChild(c)
	root.InsertChildAt(1, b)
	if root.IndexOfChild(b) != 1 || root.IndexOfChild(c) != 2 {
		t.Errorf("expected b at 1 and c at 2, are %d and %d", root.IndexOfChild(b), root.IndexOfChild(c))
	}
	d := NewNode("d")
	if !root.ReplaceChild(b, d) {
		t.Fatalf("expected replace to succeed")
	}
	if b.Parent() != nil || d.Parent() != root || root.IndexOfChild(d) != 1 {
		t.Errorf("expected d to take the place of b")
	}
	if root.ReplaceChild(b, d) {
		t.Errorf("expected replace of a detached node to fail")
	}
}

func TestWalkTopDownOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.tree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	root := NewNode("r")
	a, b := NewNode("a"), NewNode("b")
	root.AddChild(a).AddChild(b)
	a.AddChild(NewNode("a1"))
	var seq []string
	err := TopDown(root, func(n *Node[string], parent *Node[string], pos int) error {
		seq = append(seq, n.Payload)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(seq) != 4 || seq[0] != "r" || seq[1] != "a" || seq[2] != "a1" || seq[3] != "b" {
		t.Errorf("expected top-down order r,a,a1,b; is %v", seq)
	}
	seq = seq[:0]
	_ = TopDown(root, func(n *Node[string], parent *Node[string], pos int) error {
		seq = append(seq, n.Payload)
		if n.Payload == "a" {
			return SkipChildren
		}
		return nil
	})
	if len(seq) != 3 {
		t.Errorf("expected a1 to be skipped, sequence is %v", seq)
	}
	seq = seq[:0]
	_ = BottomUp(root, func(n *Node[string], parent *Node[string], pos int) error {
		seq = append(seq, n.Payload)
		return nil
	})
	if seq[0] != "a1" || seq[3] != "r" {
		t.Errorf("expected bottom-up order a1,a,b,r; is %v", seq)
	}
	if Count(root) != 4 {
		t.Errorf("expected tree to have 4 nodes, has %d", Count(root))
	}
}

func isLeaf(test *Node[string], node *Node[string]) (*Node[string], error) {
	if test.ChildCount() == 0 {
		return test, nil
	}
	return nil, nil
}

func TestWalkDescendentsAndAncestors(t *testing.T) {
	root := NewNode("r")
	a := NewNode("a")
	a1 := NewNode("a1")
	root.AddChild(a)
	a.AddChild(a1)
	leafs, err := DescendentsWith(root, isLeaf)
	if err != nil || len(leafs) != 1 || leafs[0] != a1 {
		t.Errorf("expected exactly one leaf a1, have %v (err=%v)", leafs, err)
	}
	anc, _ := AncestorWith(a1, func(test, node *Node[string]) (*Node[string], error) {
		return test, nil
	})
	if anc != a {
		t.Errorf("expected nearest ancestor of a1 to be a, is %v", anc)
	}
	if anc, _ = AncestorWith(a1, isLeaf); anc != nil {
		t.Errorf("expected no leaf among the ancestors of a1, found %v", anc)
	}
	if a1.Root() != root {
		t.Errorf("expected root of a1 to be r")
	}
}
