// Package wbs builds a work-breakdown-structure tree from dotted IDs.
//
// Rows are indexed before any parent linking happens, so input order never
// matters: a child row may appear before its parent. A child whose parent
// prefix has no row is an error rather than a silent guess.
package wbs

import (
	"fmt"
	"sort"

	"github.com/planviz/planviz/internal/domain"
	"github.com/planviz/planviz/pkg/dotid"
)

// Node is one entry in the hierarchy.
type Node struct {
	ID       string
	Title    string
	Depth    int
	ParentID string // empty for roots
	Children []*Node

	parsed dotid.ID
}

// Tree is the assembled hierarchy.
type Tree struct {
	Roots []*Node

	nodes map[string]*Node
}

// Build assembles the tree from WBS rows.
func Build(rows []domain.WBSRow) (*Tree, error) {
	nodes := make(map[string]*Node, len(rows))

	for _, row := range rows {
		id, err := dotid.Parse(row.ID)
		if err != nil {
			return nil, domain.NewBadIDError(row.ID, err)
		}
		if _, exists := nodes[id.Raw]; exists {
			return nil, domain.NewBadIDError(row.ID, fmt.Errorf("duplicate ID"))
		}
		nodes[id.Raw] = &Node{
			ID:     id.Raw,
			Title:  row.Title,
			Depth:  id.Depth(),
			parsed: id,
		}
	}

	tree := &Tree{nodes: nodes}
	for _, n := range nodes {
		parentID, ok := n.parsed.Parent()
		if !ok {
			tree.Roots = append(tree.Roots, n)
			continue
		}
		parent, exists := nodes[parentID]
		if !exists {
			return nil, domain.NewMissingParentError(n.ID, parentID)
		}
		n.ParentID = parentID
		parent.Children = append(parent.Children, n)
	}

	sortNodes(tree.Roots)
	for _, n := range nodes {
		sortNodes(n.Children)
	}

	return tree, nil
}

// Node looks up a node by its raw ID.
func (t *Tree) Node(id string) (*Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Walk visits every node depth-first, roots in ID order.
func (t *Tree) Walk(fn func(*Node)) {
	var visit func(*Node)
	visit = func(n *Node) {
		fn(n)
		for _, c := range n.Children {
			visit(c)
		}
	}
	for _, r := range t.Roots {
		visit(r)
	}
}

func sortNodes(ns []*Node) {
	sort.Slice(ns, func(i, j int) bool {
		return dotid.Less(ns[i].parsed, ns[j].parsed)
	})
}
