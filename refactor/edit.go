// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"fmt"

	"rsc.io/dupconst/jtree"
)

// constFlags are the modifiers of every constant this package declares.
const constFlags = jtree.Private | jtree.Static | jtree.Final

// Stats counts the edits made by Apply.
type Stats struct {
	Inserted int // new constants
	Reused   int // existing constants used unchanged
	Renamed  int // existing constants renamed
	Refs     int // references updated by renames, declarations excluded
	Replaced int // literals replaced by constant references
}

// Add accumulates t into s.
func (s *Stats) Add(t Stats) {
	s.Inserted += t.Inserted
	s.Reused += t.Reused
	s.Renamed += t.Renamed
	s.Refs += t.Refs
	s.Replaced += t.Replaced
}

// Changed reports whether any edit was made.
func (s Stats) Changed() bool {
	return s.Replaced > 0 || s.Renamed > 0
}

// A rename is the full set of nodes to update for one renamed field.
type rename struct {
	newName string
	decl    jtree.NodeID   // *jtree.NamedVar
	refs    []jtree.NodeID // *jtree.Ident or *jtree.FieldAccess
}

// Apply carries out p on the tree. It runs in two phases: first every site
// of every renamed field is located, with the tree still unmodified; then
// fields are renamed, new constants are inserted at the top of the class
// body in plan order, and literal sites are replaced by references.
func Apply(t *jtree.Tree, p *Plan) Stats {
	var st Stats
	if p.Empty() {
		return st
	}
	cd := t.Node(p.Class).(*jtree.ClassDecl)

	// Phase 1.
	var renames []rename
	for _, g := range p.Groups {
		switch g.Action {
		case ActionRename:
			renames = append(renames, findRename(t, p, g))
		case ActionReuse, ActionInsert:
			// nothing to locate
		default:
			panic(fmt.Sprintf("refactor: unexpected action %v", g.Action))
		}
	}

	// Phase 2.
	for _, r := range renames {
		v := t.Node(r.decl).(*jtree.NamedVar)
		v.Name = r.newName
		for _, id := range r.refs {
			switch n := t.Node(id).(type) {
			case *jtree.Ident:
				n.Name = r.newName
				n.Field = renamedSym(n.Field, r.newName)
			case *jtree.FieldAccess:
				n.Name = r.newName
				n.Field = renamedSym(n.Field, r.newName)
			}
		}
		st.Renamed++
		st.Refs += len(r.refs)
	}

	var fields []jtree.NodeID
	for _, g := range p.Groups {
		var typ string
		switch g.Action {
		case ActionInsert:
			proto := t.Node(g.Sites[0]).(*jtree.Literal)
			typ = proto.Type
			init := t.Add(&jtree.Literal{Lit: proto.Lit, Value: proto.Value, Source: proto.Source, Type: proto.Type})
			v := t.Add(&jtree.NamedVar{Name: g.Name, Init: init})
			fields = append(fields, t.Add(&jtree.VarDecl{Mods: constFlags, Type: typ, Vars: []jtree.NodeID{v}}))
			st.Inserted++
		case ActionReuse:
			st.Reused++
		}
		for _, id := range g.Sites {
			lit := t.Node(id).(*jtree.Literal)
			if typ == "" {
				typ = lit.Type
			}
			t.Set(id, &jtree.Ident{
				Pos:   lit.Pos,
				Name:  g.Name,
				Type:  lit.Type,
				Field: &jtree.FieldSym{Owner: p.FQN, Name: g.Name, Flags: constFlags, Type: typ},
			})
			st.Replaced++
		}
	}
	if len(fields) > 0 {
		cd.Members = append(fields, cd.Members...)
	}
	return st
}

// findRename locates the declaration of the constant renamed by g and every
// reference to it in the class, nested classes included.
func findRename(t *jtree.Tree, p *Plan, g Group) rename {
	r := rename{newName: g.Name, decl: g.Var}
	refersTo := func(s *jtree.FieldSym) bool {
		return s != nil && s.Owner == p.FQN && s.Name == g.OldName
	}
	jtree.Walk(t, p.Class, func(stack []jtree.NodeID) bool {
		switch n := t.Node(stack[0]).(type) {
		case *jtree.Ident:
			if refersTo(n.Field) {
				r.refs = append(r.refs, stack[0])
			}
		case *jtree.FieldAccess:
			if refersTo(n.Field) {
				r.refs = append(r.refs, stack[0])
			}
		}
		return true
	})
	return r
}

func renamedSym(s *jtree.FieldSym, name string) *jtree.FieldSym {
	c := *s
	c.Name = name
	return &c
}
