// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jtree

// Walk traverses the tree rooted at root in depth-first order.
// For each node it calls f with the stack of nodes leading to it,
// innermost first: stack[0] is the node itself, stack[1] its parent,
// and stack[len(stack)-1] is root. If f returns false, Walk skips
// the node's children.
//
// The stack is reused between calls; f must not retain it.
func Walk(t *Tree, root NodeID, f func(stack []NodeID) bool) {
	var stack []NodeID
	var stackPos int

	var visit func(id NodeID)
	visit = func(id NodeID) {
		if stackPos == 0 {
			old := len(stack)
			stack = append(stack, NoNode)
			stack = stack[:cap(stack)]
			copy(stack[len(stack)-old:], stack[:old])
			stackPos = len(stack) - old
		}
		stackPos--
		stack[stackPos] = id
		if f(stack[stackPos:]) {
			for _, child := range t.Children(id) {
				visit(child)
			}
		}
		stackPos++
	}
	if root != NoNode {
		visit(root)
	}

	if stackPos != len(stack) {
		panic("internal stack error")
	}
}

// Nearest returns the first node in stack[1:] for which match returns true,
// along with its index in stack. It returns NoNode, -1 if there is none.
func Nearest(t *Tree, stack []NodeID, match func(Node) bool) (NodeID, int) {
	for i := 1; i < len(stack); i++ {
		if match(t.Node(stack[i])) {
			return stack[i], i
		}
	}
	return NoNode, -1
}
