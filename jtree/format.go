// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jtree

import (
	"bytes"
	"fmt"
	"strings"
)

// Format renders the subtree at id as Java-like source text,
// indenting with four spaces. Literals print their original Source.
//
// The output is meant for review and diffs; it is not a faithful
// reproduction of the parsed file, whose layout the tree does not keep.
func Format(t *Tree, id NodeID) []byte {
	p := &printer{t: t}
	switch n := t.Node(id).(type) {
	case *Unit:
		p.unit(n)
	case *ClassDecl:
		p.class(n)
	case *MethodDecl:
		p.method(n)
	case *NamedVar:
		p.namedVar(n)
	case *VarDecl, *Block, *ExprStmt, *Return, *If:
		p.stmt(id)
	default:
		p.expr(id)
	}
	return p.buf.Bytes()
}

type printer struct {
	t      *Tree
	buf    bytes.Buffer
	indent int
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(&p.buf, format, args...)
}

func (p *printer) tab() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("    ")
	}
}

func (p *printer) mods(f Flags) {
	if f != 0 {
		p.printf("%s ", f)
	}
}

func (p *printer) unit(n *Unit) {
	if n.Package != "" {
		p.printf("package %s;\n\n", n.Package)
	}
	for _, imp := range n.Imports {
		p.printf("import %s;\n", imp)
	}
	if len(n.Imports) > 0 {
		p.printf("\n")
	}
	for i, id := range n.Classes {
		if i > 0 {
			p.printf("\n")
		}
		p.class(p.t.Node(id).(*ClassDecl))
	}
}

// annotations prints each annotation on its own line.
func (p *printer) annotations(list []NodeID) {
	for _, id := range list {
		p.tab()
		p.expr(id)
		p.printf("\n")
	}
}

func (p *printer) class(n *ClassDecl) {
	p.annotations(n.Annotations)
	p.tab()
	p.mods(n.Mods)
	p.printf("class %s {\n", n.Name)
	p.indent++
	for _, id := range n.Members {
		switch m := p.t.Node(id).(type) {
		case *ClassDecl:
			p.class(m)
		case *MethodDecl:
			p.method(m)
		default:
			p.stmt(id)
		}
	}
	p.indent--
	p.tab()
	p.printf("}\n")
}

func (p *printer) method(n *MethodDecl) {
	p.annotations(n.Annotations)
	p.tab()
	p.mods(n.Mods)
	if n.Result != "" {
		p.printf("%s ", n.Result)
	}
	p.printf("%s(", n.Name)
	for i, id := range n.Params {
		if i > 0 {
			p.printf(", ")
		}
		d := p.t.Node(id).(*VarDecl)
		for _, a := range d.Annotations {
			p.expr(a)
			p.printf(" ")
		}
		p.varDecl(d)
	}
	p.printf(")")
	if n.Body == NoNode {
		p.printf(";\n")
		return
	}
	p.printf(" ")
	p.block(n.Body)
	p.printf("\n")
}

// varDecl prints a declaration without annotations or trailing semicolon.
func (p *printer) varDecl(n *VarDecl) {
	p.mods(n.Mods)
	p.printf("%s ", n.Type)
	for i, id := range n.Vars {
		if i > 0 {
			p.printf(", ")
		}
		p.namedVar(p.t.Node(id).(*NamedVar))
	}
}

func (p *printer) namedVar(n *NamedVar) {
	p.printf("%s", n.Name)
	if n.Init != NoNode {
		p.printf(" = ")
		p.expr(n.Init)
	}
}

// block prints a brace-enclosed block, leaving the cursor after the closing brace.
func (p *printer) block(id NodeID) {
	b := p.t.Node(id).(*Block)
	p.printf("{\n")
	p.indent++
	for _, s := range b.Stmts {
		p.stmt(s)
	}
	p.indent--
	p.tab()
	p.printf("}")
}

// stmt prints one indented statement followed by a newline.
func (p *printer) stmt(id NodeID) {
	switch n := p.t.Node(id).(type) {
	case *Block:
		p.tab()
		p.block(id)
		p.printf("\n")
	case *ExprStmt:
		p.tab()
		p.expr(n.X)
		p.printf(";\n")
	case *Return:
		p.tab()
		p.printf("return")
		if n.X != NoNode {
			p.printf(" ")
			p.expr(n.X)
		}
		p.printf(";\n")
	case *VarDecl:
		p.annotations(n.Annotations)
		p.tab()
		p.varDecl(n)
		p.printf(";\n")
	case *If:
		p.tab()
		p.ifStmt(n)
		p.printf("\n")
	case *ClassDecl:
		p.class(n)
	case *MethodDecl:
		p.method(n)
	default:
		p.tab()
		p.expr(id)
		p.printf(";\n")
	}
}

func (p *printer) ifStmt(n *If) {
	p.printf("if (")
	p.expr(n.Cond)
	p.printf(") ")
	p.branch(n.Then)
	if n.Else != NoNode {
		p.printf(" else ")
		if elif, ok := p.t.Node(n.Else).(*If); ok {
			p.ifStmt(elif)
		} else {
			p.branch(n.Else)
		}
	}
}

// branch prints the body of an if statement.
// A statement that is not a block gets braces.
func (p *printer) branch(id NodeID) {
	if _, ok := p.t.Node(id).(*Block); ok {
		p.block(id)
		return
	}
	p.printf("{\n")
	p.indent++
	p.stmt(id)
	p.indent--
	p.tab()
	p.printf("}")
}

func (p *printer) exprList(list []NodeID) {
	for i, id := range list {
		if i > 0 {
			p.printf(", ")
		}
		p.expr(id)
	}
}

func (p *printer) expr(id NodeID) {
	switch n := p.t.Node(id).(type) {
	case *Literal:
		p.buf.WriteString(LiteralText(n))
	case *Ident:
		p.buf.WriteString(n.Name)
	case *FieldAccess:
		p.expr(n.X)
		p.printf(".%s", n.Name)
	case *MethodCall:
		if n.Recv != NoNode {
			p.expr(n.Recv)
			p.printf(".")
		}
		p.printf("%s(", n.Name)
		p.exprList(n.Args)
		p.printf(")")
	case *NewClass:
		p.printf("new %s(", n.Class)
		p.exprList(n.Args)
		p.printf(")")
	case *Parens:
		p.printf("(")
		p.expr(n.X)
		p.printf(")")
	case *Binary:
		p.expr(n.X)
		p.printf(" %s ", n.Op)
		p.expr(n.Y)
	case *Unary:
		p.printf("%s", n.Op)
		p.expr(n.X)
	case *Assign:
		p.expr(n.Target)
		p.printf(" %s ", n.Op)
		p.expr(n.Value)
	case *Annotation:
		p.printf("@%s", n.Name)
		if len(n.Args) > 0 {
			p.printf("(")
			p.exprList(n.Args)
			p.printf(")")
		}
	case *Unit, *ClassDecl, *MethodDecl, *VarDecl, *NamedVar, *Block, *ExprStmt, *Return, *If:
		panic(fmt.Sprintf("jtree: %v in expression position", n.Kind()))
	default:
		panic(fmt.Sprintf("jtree: unexpected node %T", n))
	}
}

// LiteralText returns the source form of a literal.
func LiteralText(n *Literal) string {
	if n.Source != "" {
		return n.Source
	}
	switch n.Lit {
	case LitString:
		return Quote(n.Value)
	case LitChar:
		q := Quote(n.Value)
		return "'" + q[1:len(q)-1] + "'"
	case LitNull:
		return "null"
	}
	return n.Value
}

// Quote returns s as a double-quoted Java string literal.
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
