// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import "rsc.io/dupconst/jtree"

// A Constant is an existing private static final String field
// initialized with a string literal.
type Constant struct {
	Name  string
	Value string
	Var   jtree.NodeID // *jtree.NamedVar
}

// FindConstants returns the constants declared directly in class, keyed by
// value. When several constants share a value, the first one declared wins.
func FindConstants(t *jtree.Tree, class jtree.NodeID) map[string]Constant {
	consts := make(map[string]Constant)
	cd := t.Node(class).(*jtree.ClassDecl)
	for _, m := range cd.Members {
		decl, ok := t.Node(m).(*jtree.VarDecl)
		if !ok || !decl.Mods.Has(jtree.Private|jtree.Static|jtree.Final) || !jtree.IsString(decl.Type) {
			continue
		}
		for _, id := range decl.Vars {
			v := t.Node(id).(*jtree.NamedVar)
			lit, ok := isStringLiteral(t.Node(v.Init))
			if !ok {
				continue
			}
			if _, seen := consts[lit.Value]; !seen {
				consts[lit.Value] = Constant{Name: v.Name, Value: lit.Value, Var: id}
			}
		}
	}
	return consts
}
