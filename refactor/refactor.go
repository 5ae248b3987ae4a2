// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package refactor replaces duplicated string literals in a class with
// references to a single constant.
//
// For each class, PlanClass finds the string literals used two or more times
// as initializers of final variables, constructor or method call arguments,
// or annotation arguments; it reuses an existing private static final String
// constant with the same value where there is one, and otherwise derives a
// new constant name from the value. Apply then edits the tree in place.
package refactor

import (
	"errors"

	"go.uber.org/zap"

	"rsc.io/dupconst/jtree"
)

// A Refactor holds the configuration for consolidating literals.
// It has no per-class state and may be used from multiple goroutines,
// as long as each tree is handled by one goroutine at a time.
type Refactor struct {
	cfg Config
	log *zap.Logger
}

// New returns a new Refactor. A nil logger discards log output.
func New(cfg Config, log *zap.Logger) (*Refactor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Refactor{cfg: cfg, log: log}, nil
}

func (r *Refactor) Config() Config {
	return r.cfg
}

// Class plans and applies the rewrite of one class.
// It returns a *PreconditionError, leaving the tree untouched,
// if the class type was not resolved.
func (r *Refactor) Class(t *jtree.Tree, class jtree.NodeID) (*Plan, Stats, error) {
	p, err := PlanClass(t, class, r.cfg)
	if err != nil {
		return nil, Stats{}, err
	}
	log := r.log.With(zap.String("class", p.FQN))
	for _, s := range p.Skipped {
		log.Info("skipping duplicate literal",
			zap.String("value", s.Value),
			zap.Int("occurrences", len(s.Sites)),
			zap.NamedError("reason", s.Err))
	}
	for _, g := range p.Groups {
		fields := []zap.Field{
			zap.String("value", g.Value),
			zap.Stringer("action", g.Action),
			zap.String("name", g.Name),
			zap.Int("occurrences", len(g.Sites)),
		}
		if g.Action == ActionRename {
			fields = append(fields, zap.String("old", g.OldName))
		}
		log.Debug("consolidating literal", fields...)
	}
	return p, Apply(t, p), nil
}

// Unit rewrites every class in the tree's compilation unit, outer classes
// before the classes nested in them. A unit that never mentions the String
// type is left alone. Classes failing a precondition are skipped and
// reported together in an *ErrorList; the other classes are still rewritten.
func (r *Refactor) Unit(t *jtree.Tree) ([]*Plan, Stats, error) {
	var st Stats
	if !t.UsesType(t.Root, jtree.IsString) {
		return nil, st, nil
	}
	var file string
	if u := t.Unit(); u != nil {
		file = u.Name
	}
	var plans []*Plan
	var errs ErrorList
	for _, class := range t.Classes(t.Root) {
		p, cst, err := r.Class(t, class)
		if err != nil {
			var pe *PreconditionError
			if errors.As(err, &pe) {
				r.log.Warn("skipping class", zap.String("class", pe.Class), zap.Error(err))
			}
			errs.AddIn(file, err)
			continue
		}
		plans = append(plans, p)
		st.Add(cst)
	}
	return plans, st, errs.Err()
}
