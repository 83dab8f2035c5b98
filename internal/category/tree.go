// Package category holds the static category hierarchy and resolves the set of
// names that fall under a category.
//
// The hierarchy is built once at startup from a declarative definition and is
// never mutated afterwards, so a *Tree is safe to share by reference.
package category

import (
	"fmt"
	"strings"

	"github.com/Veraticus/pennywise/internal/common"
)

// Node is a single category in the hierarchy. Leaves have no children.
type Node struct {
	Name     string
	Children []Node
}

// IsLeaf reports whether the node has no subcategories.
func (n Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Definition is the declarative form of a category and its subcategories.
type Definition struct {
	Name     string       `yaml:"name"`
	Children []Definition `yaml:"children,omitempty"`
}

// Tree is an immutable category hierarchy.
type Tree struct {
	index map[string]*Node
	roots []Node
	size  int
}

// New builds a tree from definitions. Names must be non-empty and unique
// across the whole hierarchy.
func New(defs []Definition) (*Tree, error) {
	seen := make(map[string]bool)
	roots, err := buildNodes(defs, seen, nil)
	if err != nil {
		return nil, err
	}

	t := &Tree{
		roots: roots,
		index: make(map[string]*Node, len(seen)),
	}
	t.indexNodes(t.roots)

	return t, nil
}

func buildNodes(defs []Definition, seen map[string]bool, path []string) ([]Node, error) {
	nodes := make([]Node, 0, len(defs))
	for _, def := range defs {
		name := strings.TrimSpace(def.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: empty category name under %q", common.ErrMalformedHierarchy, strings.Join(path, "/"))
		}
		if strings.ContainsAny(name, " \t\r\n,") {
			return nil, fmt.Errorf("%w: category name %q contains whitespace or a comma", common.ErrMalformedHierarchy, name)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate category %q", common.ErrMalformedHierarchy, name)
		}
		seen[name] = true

		children, err := buildNodes(def.Children, seen, append(path, name))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, Node{Name: name, Children: children})
	}
	return nodes, nil
}

// indexNodes records a pointer to every node. The backing slices are never
// appended to after construction, so the pointers stay valid.
func (t *Tree) indexNodes(nodes []Node) {
	for i := range nodes {
		t.index[nodes[i].Name] = &nodes[i]
		t.size++
		t.indexNodes(nodes[i].Children)
	}
}

// IsValid reports whether name is any node of the hierarchy, leaf or internal.
func (t *Tree) IsValid(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Subcategories returns name followed by every descendant, flattened in
// pre-order. A leaf yields just itself; an unknown name yields nil.
func (t *Tree) Subcategories(name string) []string {
	node, ok := t.index[name]
	if !ok {
		return nil
	}

	names := []string{node.Name}
	walkNodes(node.Children, 1, func(n Node, _ int) {
		names = append(names, n.Name)
	})
	return names
}

// Roots returns the top-level categories.
func (t *Tree) Roots() []Node {
	return t.roots
}

// Len returns the total number of categories.
func (t *Tree) Len() int {
	return t.size
}

// Names returns every category name in pre-order.
func (t *Tree) Names() []string {
	names := make([]string, 0, t.size)
	t.Walk(func(n Node, _ int) {
		names = append(names, n.Name)
	})
	return names
}

// Walk visits every node in pre-order. Top-level categories have depth 0.
func (t *Tree) Walk(fn func(n Node, depth int)) {
	walkNodes(t.roots, 0, fn)
}

func walkNodes(nodes []Node, depth int, fn func(n Node, depth int)) {
	for _, n := range nodes {
		fn(n, depth)
		walkNodes(n.Children, depth+1, fn)
	}
}
