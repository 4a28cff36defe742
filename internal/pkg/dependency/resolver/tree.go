package resolver

import (
	"context"
	"io"

	"github.com/ddddddO/gtree"

	"github.com/atomic-component-engine/ace/internal/pkg/model"
)

// Node is a component in the explicit dependency tree.
type Node struct {
	Ref      string
	JS       []string
	Sass     []string
	Cycle    bool // the component is an ancestor, it is not expanded
	Missing  bool // the component directory doesn't exist
	Children []*Node
}

// Tree returns the explicit dependency tree of the component.
// Components shared by more branches are expanded in each branch, cycles are marked and not expanded.
func (r *Resolver) Tree(ctx context.Context, key model.ComponentKey) (*Node, error) {
	return r.tree(ctx, key, map[string]bool{})
}

func (r *Resolver) tree(ctx context.Context, key model.ComponentKey, onPath map[string]bool) (*Node, error) {
	node := &Node{Ref: key.String()}
	if onPath[node.Ref] {
		node.Cycle = true
		return node, nil
	}
	if !r.fs.IsDir(ctx, r.layout.ComponentDir(key)) {
		node.Missing = true
		return node, nil
	}

	onPath[node.Ref] = true
	defer delete(onPath, node.Ref)

	explicit, err := r.Explicit(ctx, key)
	if err != nil {
		return nil, err
	}
	node.JS = explicit.JS
	node.Sass = explicit.Sass

	for _, ref := range explicit.Components {
		depKey, err := model.ParseComponentRef(ref)
		if err != nil {
			node.Children = append(node.Children, &Node{Ref: ref, Missing: true})
			continue
		}
		child, err := r.tree(ctx, depKey, onPath)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}

	return node, nil
}

// Label returns text of the node in the printed tree.
func (n *Node) Label() string {
	switch {
	case n.Cycle:
		return n.Ref + " (cycle)"
	case n.Missing:
		return n.Ref + " (missing)"
	default:
		return n.Ref
	}
}

// PrintTree writes the tree, for example:
//
//	molecules/button
//	├── js: button-tasks.js
//	└── atoms/icon
func PrintTree(w io.Writer, root *Node) error {
	out := gtree.NewRoot(root.Label())
	addChildren(out, root)
	return gtree.OutputFromRoot(w, out)
}

func addChildren(out *gtree.Node, n *Node) {
	for _, v := range n.JS {
		out.Add("js: " + v)
	}
	for _, v := range n.Sass {
		out.Add("sass: " + v)
	}
	for _, child := range n.Children {
		addChildren(out.Add(child.Label()), child)
	}
}
