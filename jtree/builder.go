// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jtree

// A Builder constructs a Tree bottom-up.
// Each method adds one node (plus any wrapper it implies) and returns its ID.
type Builder struct {
	T *Tree
}

func NewBuilder() *Builder {
	return &Builder{T: New(64)}
}

// Unit adds the compilation unit, makes it the tree's root and returns the tree.
func (b *Builder) Unit(name string, classes ...NodeID) *Tree {
	b.T.Root = b.T.Add(&Unit{Name: name, Classes: classes})
	return b.T
}

func (b *Builder) Class(mods Flags, name, fqn string, members ...NodeID) NodeID {
	return b.T.Add(&ClassDecl{Mods: mods, Name: name, FQN: fqn, Members: members})
}

// Var adds a declaration of a single variable.
// It serves for fields and for local variables; init may be NoNode.
func (b *Builder) Var(mods Flags, typ, name string, init NodeID) NodeID {
	v := b.T.Add(&NamedVar{Name: name, Init: init})
	return b.T.Add(&VarDecl{Mods: mods, Type: typ, Vars: []NodeID{v}})
}

func (b *Builder) Param(typ, name string) NodeID {
	return b.Var(0, typ, name, NoNode)
}

// Method adds a method whose body holds stmts.
func (b *Builder) Method(mods Flags, result, name string, params []NodeID, stmts ...NodeID) NodeID {
	body := b.Block(stmts...)
	return b.T.Add(&MethodDecl{Mods: mods, Result: result, Name: name, Params: params, Body: body})
}

func (b *Builder) Annotation(name string, args ...NodeID) NodeID {
	return b.T.Add(&Annotation{Name: name, Args: args})
}

// Annotate attaches annotations to a class, method or variable declaration.
func (b *Builder) Annotate(id NodeID, annotations ...NodeID) NodeID {
	switch n := b.T.Node(id).(type) {
	case *ClassDecl:
		n.Annotations = append(n.Annotations, annotations...)
	case *MethodDecl:
		n.Annotations = append(n.Annotations, annotations...)
	case *VarDecl:
		n.Annotations = append(n.Annotations, annotations...)
	default:
		panic("jtree: cannot annotate " + b.T.Node(id).Kind().String())
	}
	return id
}

func (b *Builder) Block(stmts ...NodeID) NodeID {
	return b.T.Add(&Block{Stmts: stmts})
}

func (b *Builder) Expr(x NodeID) NodeID {
	return b.T.Add(&ExprStmt{X: x})
}

func (b *Builder) Return(x NodeID) NodeID {
	return b.T.Add(&Return{X: x})
}

func (b *Builder) If(cond, then, els NodeID) NodeID {
	return b.T.Add(&If{Cond: cond, Then: then, Else: els})
}

func (b *Builder) Assign(target, value NodeID) NodeID {
	return b.T.Add(&Assign{Op: "=", Target: target, Value: value})
}

// String adds a string literal.
func (b *Builder) String(s string) NodeID {
	return b.T.Add(&Literal{Lit: LitString, Value: s, Source: Quote(s), Type: "String"})
}

func (b *Builder) Int(s string) NodeID {
	return b.T.Add(&Literal{Lit: LitInt, Value: s, Source: s, Type: "int"})
}

func (b *Builder) Bool(v bool) NodeID {
	s := "false"
	if v {
		s = "true"
	}
	return b.T.Add(&Literal{Lit: LitBool, Value: s, Source: s, Type: "boolean"})
}

// Null adds a null literal. The parser types a null by its target,
// so typ may well be "String".
func (b *Builder) Null(typ string) NodeID {
	return b.T.Add(&Literal{Lit: LitNull, Source: "null", Type: typ})
}

func (b *Builder) Ident(name string) NodeID {
	return b.T.Add(&Ident{Name: name})
}

// FieldRef adds an identifier resolved to a field of class owner.
func (b *Builder) FieldRef(owner, name string, flags Flags, typ string) NodeID {
	return b.T.Add(&Ident{Name: name, Type: typ, Field: &FieldSym{Owner: owner, Name: name, Flags: flags, Type: typ}})
}

// Select adds the qualified field reference x.name resolved to a field of class owner.
func (b *Builder) Select(x NodeID, owner, name string, flags Flags, typ string) NodeID {
	return b.T.Add(&FieldAccess{X: x, Name: name, Type: typ, Field: &FieldSym{Owner: owner, Name: name, Flags: flags, Type: typ}})
}

// Call adds a method call; recv may be NoNode.
func (b *Builder) Call(recv NodeID, name string, args ...NodeID) NodeID {
	return b.T.Add(&MethodCall{Recv: recv, Name: name, Args: args})
}

func (b *Builder) New(class string, args ...NodeID) NodeID {
	return b.T.Add(&NewClass{Class: class, Args: args})
}

func (b *Builder) Parens(x NodeID) NodeID {
	return b.T.Add(&Parens{X: x})
}

func (b *Builder) Binary(op string, x, y NodeID) NodeID {
	return b.T.Add(&Binary{Op: op, X: x, Y: y})
}

func (b *Builder) Unary(op string, x NodeID) NodeID {
	return b.T.Add(&Unary{Op: op, X: x})
}
