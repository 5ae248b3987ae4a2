// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"rsc.io/dupconst/jtree"
)

func TestClassify(t *testing.T) {
	b := jtree.NewBuilder()
	lits := make(map[jtree.NodeID]string)
	lit := func(label string) jtree.NodeID {
		id := b.String(label)
		lits[id] = label
		return id
	}
	class := b.Class(0, "T", "T",
		b.Var(psf, "String", "K", lit("psf field")),
		b.Var(jtree.Final, "String", "f", lit("final field")),
		b.Var(jtree.Private|jtree.Static, "String", "s", lit("static field")),
		b.Annotate(
			b.Method(0, "void", "m", nil,
				b.Var(jtree.Final, "String", "local", b.Binary("+", lit("final local"), b.Ident("x"))),
				b.Var(0, "String", "plain", lit("plain local")),
				b.Expr(b.New("Thread", lit("constructor"))),
				b.Expr(b.Call(b.Parens(lit("receiver")), "trim")),
				b.Expr(call(b, "f", b.Unary("-", b.Binary("+", lit("nested arg"), b.Ident("y"))))),
				b.If(b.Call(b.Ident("a"), "equals", lit("condition")), b.Block(b.Return(lit("return"))), jtree.NoNode),
				b.Expr(b.Assign(b.Ident("z"), lit("assign"))),
				b.Expr(lit("bare")),
			),
			b.Annotation("Named", lit("annotation"))),
	)
	tr := b.Unit("T.java", class)

	have := make(map[string]string)
	jtree.Walk(tr, class, func(stack []jtree.NodeID) bool {
		if label, ok := lits[stack[0]]; ok {
			have[label] = classify(tr, stack).String()
		}
		return true
	})
	want := map[string]string{
		"psf field":    "other",
		"final field":  "initializer",
		"static field": "other",
		"final local":  "initializer",
		"plain local":  "other",
		"constructor":  "constructor",
		"receiver":     "call",
		"nested arg":   "call",
		"condition":    "call",
		"return":       "other",
		"assign":       "other",
		"bare":         "other",
		"annotation":   "annotation",
	}
	if diff := cmp.Diff(want, have); diff != "" {
		t.Errorf("contexts (-want +got):\n%s", diff)
	}
}

func TestCollectLiterals(t *testing.T) {
	b := jtree.NewBuilder()
	inner := b.Class(0, "Inner", "T.Inner",
		b.Method(0, "void", "n", nil, logStmt(b, b.String("b")), logStmt(b, b.String("b"))))
	class := b.Class(0, "T", "T",
		b.Method(0, "void", "m", nil,
			logStmt(b, b.String("b")),
			logStmt(b, b.String("a")),
			logStmt(b, b.String("a")),
			logStmt(b, b.String("b")),
			logStmt(b, b.String("c")),
			logStmt(b, b.Null("String"))),
		inner)
	tr := b.Unit("T.java", class)

	occ := CollectLiterals(tr, class, DefaultConfig())
	if want := []string{"b", "a"}; !cmp.Equal(occ.Values, want) {
		t.Errorf("values = %q, want %q", occ.Values, want)
	}
	if n := len(occ.Sites["b"]); n != 2 {
		t.Errorf("%d sites for b, want 2 (nested class excluded)", n)
	}

	// A zero Config still requires duplicates.
	if occ := CollectLiterals(tr, class, Config{}); occ.Len() != 2 {
		t.Errorf("zero Config found %d values, want 2", occ.Len())
	}
}

func TestFindConstants(t *testing.T) {
	b := jtree.NewBuilder()
	class := b.Class(0, "T", "T",
		b.Var(psf, "String", "FIRST", b.String("v")),
		b.Var(psf, "String", "SECOND", b.String("v")),
		b.Var(psf, "java.lang.String", "QUALIFIED", b.String("q")),
		b.Var(psf, "Object", "OBJ", b.String("o")),
		b.Var(jtree.Private|jtree.Final, "String", "INST", b.String("i")),
		b.Var(psf, "String", "CONCAT", b.Binary("+", b.String("a"), b.String("b"))),
		b.Var(psf, "String", "NOINIT", jtree.NoNode),
		b.Method(0, "void", "m", nil, b.Var(psf, "String", "LOCAL", b.String("l"))),
	)
	tr := b.Unit("T.java", class)

	have := make(map[string]string)
	for v, c := range FindConstants(tr, class) {
		have[v] = c.Name
	}
	want := map[string]string{"v": "FIRST", "q": "QUALIFIED"}
	if diff := cmp.Diff(want, have); diff != "" {
		t.Errorf("constants (-want +got):\n%s", diff)
	}
}
