// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"fmt"

	"rsc.io/dupconst/jtree"
)

// A Context classifies where a string literal is used, judged by its
// nearest enclosing class, annotation, variable declaration,
// constructor call or method call.
type Context int

const (
	ContextOther       Context = iota // none of the below: not a usage
	ContextInitializer                // initializer of a final variable that is not private static
	ContextConstructor                // constructor call argument
	ContextCall                       // method call argument or receiver
	ContextAnnotation                 // annotation argument
)

var contextNames = []string{"other", "initializer", "constructor", "call", "annotation"}

func (c Context) String() string {
	if 0 <= c && int(c) < len(contextNames) {
		return contextNames[c]
	}
	return fmt.Sprintf("Context(%d)", int(c))
}

// classify returns the usage context of the node at stack[0].
// Intervening wrappers (parentheses, operators, statements) are skipped.
func classify(t *jtree.Tree, stack []jtree.NodeID) Context {
	id, _ := jtree.Nearest(t, stack, isUsageScope)
	switch n := t.Node(id).(type) {
	case *jtree.Annotation:
		return ContextAnnotation
	case *jtree.VarDecl:
		// Private static finals are candidate constants, not usages.
		if n.Mods.Has(jtree.Final) && !n.Mods.Has(jtree.Private|jtree.Static) {
			return ContextInitializer
		}
	case *jtree.NewClass:
		return ContextConstructor
	case *jtree.MethodCall:
		return ContextCall
	}
	return ContextOther
}

func isUsageScope(n jtree.Node) bool {
	switch n.(type) {
	case *jtree.ClassDecl, *jtree.Annotation, *jtree.VarDecl, *jtree.NewClass, *jtree.MethodCall:
		return true
	}
	return false
}

// isStringLiteral reports whether n is a string-valued literal of type String.
// A null typed as String does not count.
func isStringLiteral(n jtree.Node) (*jtree.Literal, bool) {
	lit, ok := n.(*jtree.Literal)
	if !ok || lit.Lit != jtree.LitString || !jtree.IsString(lit.Type) {
		return nil, false
	}
	return lit, true
}

// Occurrences maps duplicated literal values to their sites.
type Occurrences struct {
	// Values lists the duplicated values in the order of their
	// first occurrence in the class.
	Values []string

	// Sites holds the literal nodes for each value, in source order.
	Sites map[string][]jtree.NodeID
}

func (o *Occurrences) Len() int { return len(o.Values) }

// CollectLiterals finds the string literals in class that are used in a
// qualifying context and returns those whose value occurs at least
// cfg.MinOccurrences times. Nested classes are not searched.
func CollectLiterals(t *jtree.Tree, class jtree.NodeID, cfg Config) *Occurrences {
	var order []string
	sites := make(map[string][]jtree.NodeID)

	jtree.Walk(t, class, func(stack []jtree.NodeID) bool {
		n := t.Node(stack[0])
		if _, ok := n.(*jtree.ClassDecl); ok {
			return stack[0] == class
		}
		lit, ok := isStringLiteral(n)
		if !ok {
			return true
		}
		switch classify(t, stack) {
		case ContextOther:
			return true
		case ContextAnnotation:
			if !cfg.CountAnnotations {
				return true
			}
		}
		if sites[lit.Value] == nil {
			order = append(order, lit.Value)
		}
		sites[lit.Value] = append(sites[lit.Value], stack[0])
		return true
	})

	min := cfg.MinOccurrences
	if min < 2 {
		min = 2
	}
	occ := &Occurrences{Sites: make(map[string][]jtree.NodeID)}
	for _, v := range order {
		if len(sites[v]) >= min {
			occ.Values = append(occ.Values, v)
			occ.Sites[v] = sites[v]
		}
	}
	return occ
}
