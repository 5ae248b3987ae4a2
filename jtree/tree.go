// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jtree

import "fmt"

// A Tree is an arena holding the nodes of one compilation unit.
type Tree struct {
	Root  NodeID // *Unit
	nodes []Node
}

// New returns an empty tree with room for capHint nodes.
func New(capHint int) *Tree {
	return &Tree{nodes: make([]Node, 0, capHint)}
}

// Add stores n in the arena and returns its ID.
func (t *Tree) Add(n Node) NodeID {
	if n == nil {
		panic("jtree: Add(nil)")
	}
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes))
}

// Node returns the node with the given ID, or nil for NoNode.
func (t *Tree) Node(id NodeID) Node {
	if id == NoNode {
		return nil
	}
	return t.nodes[id-1]
}

// Set replaces the node stored at id.
// Every parent referring to id now refers to n.
func (t *Tree) Set(id NodeID, n Node) {
	if id == NoNode || int(id) > len(t.nodes) {
		panic(fmt.Sprintf("jtree: Set of invalid node %d", id))
	}
	t.nodes[id-1] = n
}

// Len returns the number of nodes in the arena,
// including nodes no longer reachable from Root.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Get returns the node at id if it has type T.
func Get[T Node](t *Tree, id NodeID) (T, bool) {
	n, ok := t.Node(id).(T)
	return n, ok
}

// Children returns the direct children of id in source order.
func (t *Tree) Children(id NodeID) []NodeID {
	var list []NodeID
	add := func(ids ...NodeID) {
		for _, id := range ids {
			if id != NoNode {
				list = append(list, id)
			}
		}
	}
	switch n := t.Node(id).(type) {
	case nil:
		// no children
	case *Unit:
		add(n.Classes...)
	case *ClassDecl:
		add(n.Annotations...)
		add(n.Members...)
	case *MethodDecl:
		add(n.Annotations...)
		add(n.Params...)
		add(n.Body)
	case *VarDecl:
		add(n.Annotations...)
		add(n.Vars...)
	case *NamedVar:
		add(n.Init)
	case *Annotation:
		add(n.Args...)
	case *Block:
		add(n.Stmts...)
	case *ExprStmt:
		add(n.X)
	case *Return:
		add(n.X)
	case *If:
		add(n.Cond, n.Then, n.Else)
	case *Assign:
		add(n.Target, n.Value)
	case *Literal, *Ident:
		// leaves
	case *FieldAccess:
		add(n.X)
	case *MethodCall:
		add(n.Recv)
		add(n.Args...)
	case *NewClass:
		add(n.Args...)
	case *Parens:
		add(n.X)
	case *Binary:
		add(n.X, n.Y)
	case *Unary:
		add(n.X)
	default:
		panic(fmt.Sprintf("jtree: unexpected node %T", n))
	}
	return list
}

// Unit returns the tree's compilation unit.
func (t *Tree) Unit() *Unit {
	u, _ := Get[*Unit](t, t.Root)
	return u
}

// Classes returns every class declaration under root in preorder,
// so that an enclosing class precedes the classes nested in it.
func (t *Tree) Classes(root NodeID) []NodeID {
	var list []NodeID
	Walk(t, root, func(stack []NodeID) bool {
		if _, ok := t.Node(stack[0]).(*ClassDecl); ok {
			list = append(list, stack[0])
		}
		return true
	})
	return list
}

// UsesType reports whether any node under root mentions a type
// for which match returns true.
func (t *Tree) UsesType(root NodeID, match func(typ string) bool) bool {
	found := false
	Walk(t, root, func(stack []NodeID) bool {
		if found {
			return false
		}
		var typ string
		switch n := t.Node(stack[0]).(type) {
		case *MethodDecl:
			typ = n.Result
		case *VarDecl:
			typ = n.Type
		case *Literal:
			typ = n.Type
		case *Ident:
			typ = n.Type
		case *FieldAccess:
			typ = n.Type
		case *MethodCall:
			typ = n.Type
		case *NewClass:
			typ = n.Class
		case *Binary:
			typ = n.Type
		}
		if typ != "" && match(typ) {
			found = true
		}
		return !found
	})
	return found
}
