package bst

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tp "github.com/xlab/treeprint"

	"github.com/npillmayer/pds"
)

func TestTreeShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pds.bst")
	defer teardown()
	//
	tree := Immutable(5, 3, 8, 1, 4, 7, 9)
	t.Logf("tree =\n%s", printTree(tree))
	if tree.root.value != 5 {
		t.Errorf("expected root value to be 5, is %v", tree.root.value)
	}
	if tree.root.left.value != 3 || tree.root.right.value != 8 {
		t.Error("expected children of root to be 3 and 8, aren't")
	}
}

func TestTreeSharedSubtreesShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pds.bst")
	defer teardown()
	//
	tree := Immutable(5, 3, 8)
	derived := tree.With(1)
	t.Logf("original =\n%s", printTree(tree))
	t.Logf("derived =\n%s", printTree(derived))
	if derived.root == tree.root {
		t.Fatal("expected derived tree to have a new root, hasn't")
	}
	if derived.root.left == tree.root.left {
		t.Error("expected left spine to be copied, is shared")
	}
	if derived.root.right != tree.root.right {
		t.Error("expected right subtree to be shared, is a copy")
	}
}

// ---------------------------------------------------------------------------

func printTree[T pds.Ordered](tree Tree[T]) string {
	header := fmt.Sprintf("\nTree(size=%d)\n", tree.Size())
	p := tp.New()
	ppt(p, tree.root)
	return header + p.String() + "\n"
}

func ppt[T pds.Ordered](p tp.Tree, n *node[T]) {
	if n == nil {
		return
	}
	if n.left == nil && n.right == nil {
		p.AddNode(fmt.Sprintf("%v", n.value))
		return
	}
	branch := p.AddBranch(fmt.Sprintf("%v", n.value))
	ppt(branch, n.left)
	ppt(branch, n.right)
}
