// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"fmt"

	"rsc.io/dupconst/jtree"
)

// An Action says how a duplicate group gets its constant.
type Action int

const (
	ActionInsert Action = iota // declare a new constant
	ActionReuse                // use an existing constant as is
	ActionRename               // rename an existing constant, then use it
)

func (a Action) String() string {
	switch a {
	case ActionInsert:
		return "insert"
	case ActionReuse:
		return "reuse"
	case ActionRename:
		return "rename"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// A Group is the planned rewrite of one duplicated value.
type Group struct {
	Value  string
	Sites  []jtree.NodeID // literals to replace
	Action Action
	Name   string // constant name after the rewrite

	// For ActionReuse and ActionRename, the existing constant.
	OldName string
	Var     jtree.NodeID
}

// A Skip is a duplicated value left alone, and why.
type Skip struct {
	Value string
	Sites []jtree.NodeID
	Err   error
}

// A Plan is the complete set of decisions for one class.
type Plan struct {
	Class   jtree.NodeID
	FQN     string
	Groups  []Group
	Skipped []Skip
}

// Empty reports whether applying p would change nothing.
func (p *Plan) Empty() bool {
	return len(p.Groups) == 0
}

// PlanClass decides, for each duplicated string literal value in class,
// which constant will replace it. It does not modify the tree.
//
// Groups are planned in the order their values first occur in the class.
// The order matters: each committed name is unavailable to later groups.
func PlanClass(t *jtree.Tree, class jtree.NodeID, cfg Config) (*Plan, error) {
	cd, ok := jtree.Get[*jtree.ClassDecl](t, class)
	if !ok {
		panic(fmt.Sprintf("refactor: node %d is not a class", class))
	}
	if cd.FQN == "" {
		return nil, &PreconditionError{Pos: cd.Pos, Class: cd.Name}
	}

	p := &Plan{Class: class, FQN: cd.FQN}
	occ := CollectLiterals(t, class, cfg)
	if occ.Len() == 0 {
		return p, nil
	}
	consts := FindConstants(t, class)
	names := collectNames(t, class)

	for _, value := range occ.Values {
		sites := occ.Sites[value]
		g := Group{Value: value, Sites: sites, Action: ActionInsert}
		if c, ok := consts[value]; ok {
			g.OldName = c.Name
			g.Var = c.Var
			g.Name = Deconflict(c.Name, names.inUseExcept(c.Name), cfg.MaxSuffix)
			g.Action = ActionReuse
			if g.Name != c.Name {
				g.Action = ActionRename
			}
		} else {
			g.Name = Deconflict(value, names.inUse, cfg.MaxSuffix)
		}
		if g.Name == "" {
			p.Skipped = append(p.Skipped, Skip{Value: value, Sites: sites, Err: ErrUnsynthesizable})
			continue
		}
		names.commit(g.Name)
		p.Groups = append(p.Groups, g)
	}
	return p, nil
}
