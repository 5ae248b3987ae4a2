// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jtree is a syntax tree for Java-like class declarations.
//
// Nodes live in a per-compilation-unit arena (a Tree) and refer to one
// another by NodeID. Replacing the node stored at an ID rewrites every
// reference to it at once, which is how the refactorings in this module
// substitute expressions without searching for structurally equal nodes.
//
// The set of node types is closed: every type implementing Node is declared
// in this package, and the switches in Children, the renderer and the codec
// list each of them.
package jtree

import (
	"fmt"
	"strings"
)

// A NodeID addresses a node in a Tree. IDs are 1-based; NoNode is the zero ID.
type NodeID uint32

const NoNode NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNode }

// A Pos is a line:column position in the original source, as reported by
// the parser that produced the tree. It is informational only.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) IsValid() bool { return p.Line > 0 }

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	if p.Col == 0 {
		return fmt.Sprint(p.Line)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Flags is a set of declaration modifiers.
type Flags uint16

const (
	Public Flags = 1 << iota
	Protected
	Private
	Abstract
	Static
	Final
)

var flagNames = []string{"public", "protected", "private", "abstract", "static", "final"}

// Has reports whether all modifiers in m are set in f.
func (f Flags) Has(m Flags) bool { return f&m == m }

func (f Flags) String() string {
	var words []string
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			words = append(words, name)
		}
	}
	return strings.Join(words, " ")
}

// Words returns the modifiers in f in canonical source order.
func (f Flags) Words() []string {
	if f == 0 {
		return nil
	}
	return strings.Fields(f.String())
}

// ParseFlags parses modifier keywords.
func ParseFlags(words []string) (Flags, error) {
	var f Flags
Words:
	for _, w := range words {
		for i, name := range flagNames {
			if w == name {
				f |= 1 << i
				continue Words
			}
		}
		return 0, fmt.Errorf("unknown modifier %q", w)
	}
	return f, nil
}

// A Kind identifies the concrete type of a Node.
type Kind uint8

const (
	KindBad Kind = iota
	KindUnit
	KindClass
	KindMethod
	KindVarDecl
	KindNamedVar
	KindAnnotation
	KindBlock
	KindExprStmt
	KindReturn
	KindIf
	KindAssign
	KindLiteral
	KindIdent
	KindFieldAccess
	KindMethodCall
	KindNewClass
	KindParens
	KindBinary
	KindUnary
	numKinds
)

var kindNames = [numKinds]string{
	KindBad:         "bad",
	KindUnit:        "unit",
	KindClass:       "class",
	KindMethod:      "method",
	KindVarDecl:     "vardecl",
	KindNamedVar:    "var",
	KindAnnotation:  "annotation",
	KindBlock:       "block",
	KindExprStmt:    "exprstmt",
	KindReturn:      "return",
	KindIf:          "if",
	KindAssign:      "assign",
	KindLiteral:     "literal",
	KindIdent:       "ident",
	KindFieldAccess: "fieldaccess",
	KindMethodCall:  "call",
	KindNewClass:    "new",
	KindParens:      "parens",
	KindBinary:      "binary",
	KindUnary:       "unary",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

func parseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s && Kind(k) != KindBad {
			return Kind(k), true
		}
	}
	return KindBad, false
}

// A Node is one syntax tree node.
type Node interface {
	Kind() Kind
	Position() Pos
	node()
}

// A Unit is a compilation unit: one source file.
type Unit struct {
	Pos     Pos
	Name    string // file name
	Package string
	Imports []string
	Classes []NodeID
}

// A ClassDecl is a class declaration.
// An empty FQN means the parser could not resolve the class type.
type ClassDecl struct {
	Pos         Pos
	Mods        Flags
	Annotations []NodeID
	Name        string
	FQN         string
	Members     []NodeID
}

// A MethodDecl is a method or constructor declaration.
// Constructors have an empty Result. Abstract methods have no Body.
type MethodDecl struct {
	Pos         Pos
	Mods        Flags
	Annotations []NodeID
	Result      string
	Name        string
	Params      []NodeID // *VarDecl
	Body        NodeID   // *Block
}

// A VarDecl declares one or more variables of the same type:
// a field, a local variable, or a parameter.
type VarDecl struct {
	Pos         Pos
	Mods        Flags
	Annotations []NodeID
	Type        string
	Vars        []NodeID // *NamedVar
}

// A NamedVar is one declared variable and its optional initializer.
type NamedVar struct {
	Pos  Pos
	Name string
	Init NodeID
}

type Annotation struct {
	Pos  Pos
	Name string
	Args []NodeID
}

type Block struct {
	Pos   Pos
	Stmts []NodeID
}

type ExprStmt struct {
	Pos Pos
	X   NodeID
}

type Return struct {
	Pos Pos
	X   NodeID // may be NoNode
}

type If struct {
	Pos  Pos
	Cond NodeID
	Then NodeID
	Else NodeID // may be NoNode
}

// An Assign is an assignment expression such as x = y or x += y.
type Assign struct {
	Pos    Pos
	Op     string
	Target NodeID
	Value  NodeID
}

// A LitKind is the lexical kind of a literal.
type LitKind uint8

const (
	LitString LitKind = iota
	LitChar
	LitInt
	LitFloat
	LitBool
	LitNull
)

var litNames = []string{"string", "char", "int", "float", "bool", "null"}

func (k LitKind) String() string {
	if int(k) < len(litNames) {
		return litNames[k]
	}
	return fmt.Sprintf("LitKind(%d)", k)
}

func parseLitKind(s string) (LitKind, bool) {
	for i, name := range litNames {
		if name == s {
			return LitKind(i), true
		}
	}
	return 0, false
}

// A Literal is a constant in expression position.
// Value holds the decoded value; Source holds the literal exactly as it
// was written, escapes included, and is what the renderer prints.
type Literal struct {
	Pos    Pos
	Lit    LitKind
	Value  string
	Source string
	Type   string
}

// A FieldSym is the resolved symbol of a field reference.
type FieldSym struct {
	Owner string // fully-qualified name of the declaring class
	Name  string
	Flags Flags
	Type  string
}

// An Ident is a simple name in expression position.
// Field is set when the name resolves to a field.
type Ident struct {
	Pos   Pos
	Name  string
	Type  string
	Field *FieldSym
}

// A FieldAccess is a qualified field reference X.Name.
type FieldAccess struct {
	Pos   Pos
	X     NodeID
	Name  string
	Type  string
	Field *FieldSym
}

// A MethodCall is a method invocation, with or without a receiver.
type MethodCall struct {
	Pos  Pos
	Recv NodeID // may be NoNode
	Name string
	Args []NodeID
	Type string
}

// A NewClass is a constructor call.
type NewClass struct {
	Pos   Pos
	Class string
	Args  []NodeID
}

type Parens struct {
	Pos Pos
	X   NodeID
}

type Binary struct {
	Pos  Pos
	Op   string
	X    NodeID
	Y    NodeID
	Type string
}

// A Unary is a prefix operator expression.
type Unary struct {
	Pos Pos
	Op  string
	X   NodeID
}

func (*Unit) Kind() Kind        { return KindUnit }
func (*ClassDecl) Kind() Kind   { return KindClass }
func (*MethodDecl) Kind() Kind  { return KindMethod }
func (*VarDecl) Kind() Kind     { return KindVarDecl }
func (*NamedVar) Kind() Kind    { return KindNamedVar }
func (*Annotation) Kind() Kind  { return KindAnnotation }
func (*Block) Kind() Kind       { return KindBlock }
func (*ExprStmt) Kind() Kind    { return KindExprStmt }
func (*Return) Kind() Kind      { return KindReturn }
func (*If) Kind() Kind          { return KindIf }
func (*Assign) Kind() Kind      { return KindAssign }
func (*Literal) Kind() Kind     { return KindLiteral }
func (*Ident) Kind() Kind       { return KindIdent }
func (*FieldAccess) Kind() Kind { return KindFieldAccess }
func (*MethodCall) Kind() Kind  { return KindMethodCall }
func (*NewClass) Kind() Kind    { return KindNewClass }
func (*Parens) Kind() Kind      { return KindParens }
func (*Binary) Kind() Kind      { return KindBinary }
func (*Unary) Kind() Kind       { return KindUnary }

func (n *Unit) Position() Pos        { return n.Pos }
func (n *ClassDecl) Position() Pos   { return n.Pos }
func (n *MethodDecl) Position() Pos  { return n.Pos }
func (n *VarDecl) Position() Pos     { return n.Pos }
func (n *NamedVar) Position() Pos    { return n.Pos }
func (n *Annotation) Position() Pos  { return n.Pos }
func (n *Block) Position() Pos       { return n.Pos }
func (n *ExprStmt) Position() Pos    { return n.Pos }
func (n *Return) Position() Pos      { return n.Pos }
func (n *If) Position() Pos          { return n.Pos }
func (n *Assign) Position() Pos      { return n.Pos }
func (n *Literal) Position() Pos     { return n.Pos }
func (n *Ident) Position() Pos       { return n.Pos }
func (n *FieldAccess) Position() Pos { return n.Pos }
func (n *MethodCall) Position() Pos  { return n.Pos }
func (n *NewClass) Position() Pos    { return n.Pos }
func (n *Parens) Position() Pos      { return n.Pos }
func (n *Binary) Position() Pos      { return n.Pos }
func (n *Unary) Position() Pos       { return n.Pos }

func (*Unit) node()        {}
func (*ClassDecl) node()   {}
func (*MethodDecl) node()  {}
func (*VarDecl) node()     {}
func (*NamedVar) node()    {}
func (*Annotation) node()  {}
func (*Block) node()       {}
func (*ExprStmt) node()    {}
func (*Return) node()      {}
func (*If) node()          {}
func (*Assign) node()      {}
func (*Literal) node()     {}
func (*Ident) node()       {}
func (*FieldAccess) node() {}
func (*MethodCall) node()  {}
func (*NewClass) node()    {}
func (*Parens) node()      {}
func (*Binary) node()      {}
func (*Unary) node()       {}

// IsString reports whether typ names the string type.
func IsString(typ string) bool {
	return typ == "String" || typ == "java.lang.String"
}
