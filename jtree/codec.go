// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jtree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/mod/semver"
)

// Version is the tree document format version written by Marshal.
// Unmarshal accepts any version with the same major version.
const Version = "v1.0.0"

// A Document is the unit of exchange with the external parser and printer:
// a set of compilation units, each decoded into its own Tree.
type Document struct {
	Version string
	Trees   []*Tree
}

// A Codec is a serialization of documents.
type Codec int

const (
	JSON Codec = iota
	MsgPack
)

func (c Codec) String() string {
	switch c {
	case JSON:
		return "json"
	case MsgPack:
		return "msgpack"
	}
	return fmt.Sprintf("Codec(%d)", int(c))
}

// CodecFor returns the codec implied by a file name's extension.
func CodecFor(name string) (Codec, error) {
	switch filepath.Ext(name) {
	case ".json":
		return JSON, nil
	case ".msgpack", ".mpk":
		return MsgPack, nil
	}
	return 0, fmt.Errorf("unknown document type %q (want .json or .msgpack)", filepath.Ext(name))
}

// The wire form is a nested tree; both codecs share the json tags.
type wireDoc struct {
	Version string      `json:"version"`
	Units   []*wireNode `json:"units"`
}

type wireField struct {
	Owner string   `json:"owner"`
	Name  string   `json:"name"`
	Mods  []string `json:"mods,omitempty"`
	Type  string   `json:"type,omitempty"`
}

type wireNode struct {
	Kind    string     `json:"kind"`
	Line    int        `json:"line,omitempty"`
	Col     int        `json:"col,omitempty"`
	Name    string     `json:"name,omitempty"`
	FQN     string     `json:"fqn,omitempty"`
	Package string     `json:"package,omitempty"`
	Imports []string   `json:"imports,omitempty"`
	Mods    []string   `json:"mods,omitempty"`
	Type    string     `json:"type,omitempty"`
	Result  string     `json:"result,omitempty"`
	Op      string     `json:"op,omitempty"`
	Lit     string     `json:"lit,omitempty"`
	Value   string     `json:"value,omitempty"`
	Source  string     `json:"source,omitempty"`
	Class   string     `json:"class,omitempty"`
	Field   *wireField `json:"field,omitempty"`

	Annotations []*wireNode `json:"annotations,omitempty"`
	Classes     []*wireNode `json:"classes,omitempty"`
	Members     []*wireNode `json:"members,omitempty"`
	Params      []*wireNode `json:"params,omitempty"`
	Vars        []*wireNode `json:"vars,omitempty"`
	Args        []*wireNode `json:"args,omitempty"`
	Stmts       []*wireNode `json:"stmts,omitempty"`

	Body *wireNode `json:"body,omitempty"`
	Init *wireNode `json:"init,omitempty"`
	X    *wireNode `json:"x,omitempty"`
	Y    *wireNode `json:"y,omitempty"`
	Cond *wireNode `json:"cond,omitempty"`
	Then *wireNode `json:"then,omitempty"`
	Else *wireNode `json:"else,omitempty"`
	Recv *wireNode `json:"recv,omitempty"`
	LHS  *wireNode `json:"lhs,omitempty"`
	RHS  *wireNode `json:"rhs,omitempty"`
}

// Unmarshal decodes a document.
func Unmarshal(data []byte, c Codec) (*Document, error) {
	var w wireDoc
	switch c {
	case JSON:
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
	case MsgPack:
		dec := msgpack.NewDecoder(bytes.NewReader(data))
		dec.SetCustomStructTag("json")
		if err := dec.Decode(&w); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown codec %v", c)
	}

	if !semver.IsValid(w.Version) {
		return nil, fmt.Errorf("invalid document version %q", w.Version)
	}
	if semver.Major(w.Version) != semver.Major(Version) {
		return nil, fmt.Errorf("unsupported document version %s (want %s.x)", w.Version, semver.Major(Version))
	}

	doc := &Document{Version: w.Version}
	for i, u := range w.Units {
		d := &decoder{t: New(64)}
		root, err := d.node(u, KindUnit)
		if err != nil {
			name := fmt.Sprintf("unit %d", i)
			if u != nil && u.Name != "" {
				name = u.Name
			}
			return nil, fmt.Errorf("%s: %v", name, err)
		}
		d.t.Root = root
		doc.Trees = append(doc.Trees, d.t)
	}
	return doc, nil
}

// Marshal encodes a document.
func Marshal(doc *Document, c Codec) ([]byte, error) {
	w := wireDoc{Version: doc.Version}
	if w.Version == "" {
		w.Version = Version
	}
	for _, t := range doc.Trees {
		e := &encoder{t: t}
		w.Units = append(w.Units, e.node(t.Root))
	}

	switch c {
	case JSON:
		data, err := json.MarshalIndent(&w, "", "\t")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case MsgPack:
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		enc.SetCustomStructTag("json")
		if err := enc.Encode(&w); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unknown codec %v", c)
}

type decoder struct {
	t *Tree
}

// Kinds allowed in expression and statement positions.
var (
	exprKinds = []Kind{KindLiteral, KindIdent, KindFieldAccess, KindMethodCall, KindNewClass, KindParens, KindBinary, KindUnary, KindAssign}
	stmtKinds = []Kind{KindVarDecl, KindBlock, KindExprStmt, KindReturn, KindIf, KindClass}
	argKinds  = append([]Kind{KindAnnotation}, exprKinds...)
)

func (d *decoder) errorf(w *wireNode, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if pos := (Pos{w.Line, w.Col}); pos.IsValid() {
		return fmt.Errorf("%v: %s", pos, msg)
	}
	return fmt.Errorf("%s", msg)
}

// node decodes w, which must be of one of the kinds in want (any kind if want is empty).
// A nil w decodes to NoNode.
func (d *decoder) node(w *wireNode, want ...Kind) (NodeID, error) {
	if w == nil {
		return NoNode, nil
	}
	kind, ok := parseKind(w.Kind)
	if !ok {
		return NoNode, d.errorf(w, "unknown node kind %q", w.Kind)
	}
	if len(want) > 0 {
		found := false
		for _, k := range want {
			if k == kind {
				found = true
			}
		}
		if !found {
			return NoNode, d.errorf(w, "unexpected %v, want %v", kind, want)
		}
	}

	pos := Pos{w.Line, w.Col}
	mods, err := ParseFlags(w.Mods)
	if err != nil {
		return NoNode, d.errorf(w, "%v", err)
	}

	// Children first; the arena does not need parents before children.
	var firstErr error
	one := func(c *wireNode, want ...Kind) NodeID {
		id, err := d.node(c, want...)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return id
	}
	// must is one for a child the renderer cannot do without.
	must := func(c *wireNode, slot string, want ...Kind) NodeID {
		if c == nil {
			if firstErr == nil {
				firstErr = d.errorf(w, "%v without %s", kind, slot)
			}
			return NoNode
		}
		return one(c, want...)
	}
	list := func(cs []*wireNode, want ...Kind) []NodeID {
		var ids []NodeID
		for _, c := range cs {
			if c == nil {
				continue
			}
			ids = append(ids, one(c, want...))
		}
		return ids
	}

	var n Node
	switch kind {
	case KindUnit:
		n = &Unit{Pos: pos, Name: w.Name, Package: w.Package, Imports: w.Imports, Classes: list(w.Classes, KindClass)}
	case KindClass:
		n = &ClassDecl{Pos: pos, Mods: mods, Annotations: list(w.Annotations, KindAnnotation), Name: w.Name, FQN: w.FQN, Members: list(w.Members, KindVarDecl, KindMethod, KindClass)}
	case KindMethod:
		n = &MethodDecl{Pos: pos, Mods: mods, Annotations: list(w.Annotations, KindAnnotation), Result: w.Result, Name: w.Name, Params: list(w.Params, KindVarDecl), Body: one(w.Body, KindBlock)}
	case KindVarDecl:
		if len(w.Vars) == 0 {
			return NoNode, d.errorf(w, "declaration without variables")
		}
		n = &VarDecl{Pos: pos, Mods: mods, Annotations: list(w.Annotations, KindAnnotation), Type: w.Type, Vars: list(w.Vars, KindNamedVar)}
	case KindNamedVar:
		n = &NamedVar{Pos: pos, Name: w.Name, Init: one(w.Init, exprKinds...)}
	case KindAnnotation:
		n = &Annotation{Pos: pos, Name: w.Name, Args: list(w.Args, argKinds...)}
	case KindBlock:
		n = &Block{Pos: pos, Stmts: list(w.Stmts, stmtKinds...)}
	case KindExprStmt:
		n = &ExprStmt{Pos: pos, X: must(w.X, "x", exprKinds...)}
	case KindReturn:
		n = &Return{Pos: pos, X: one(w.X, exprKinds...)}
	case KindIf:
		n = &If{Pos: pos, Cond: must(w.Cond, "cond", exprKinds...), Then: must(w.Then, "then", stmtKinds...), Else: one(w.Else, stmtKinds...)}
	case KindAssign:
		op := w.Op
		if op == "" {
			op = "="
		}
		n = &Assign{Pos: pos, Op: op, Target: must(w.LHS, "lhs", exprKinds...), Value: must(w.RHS, "rhs", exprKinds...)}
	case KindLiteral:
		lit := LitString
		if w.Lit != "" {
			if lit, ok = parseLitKind(w.Lit); !ok {
				return NoNode, d.errorf(w, "unknown literal kind %q", w.Lit)
			}
		}
		n = &Literal{Pos: pos, Lit: lit, Value: w.Value, Source: w.Source, Type: w.Type}
	case KindIdent:
		sym, err := decodeField(w.Field)
		if err != nil {
			return NoNode, d.errorf(w, "%v", err)
		}
		n = &Ident{Pos: pos, Name: w.Name, Type: w.Type, Field: sym}
	case KindFieldAccess:
		sym, err := decodeField(w.Field)
		if err != nil {
			return NoNode, d.errorf(w, "%v", err)
		}
		n = &FieldAccess{Pos: pos, X: must(w.X, "x", exprKinds...), Name: w.Name, Type: w.Type, Field: sym}
	case KindMethodCall:
		n = &MethodCall{Pos: pos, Recv: one(w.Recv, exprKinds...), Name: w.Name, Args: list(w.Args, exprKinds...), Type: w.Type}
	case KindNewClass:
		n = &NewClass{Pos: pos, Class: w.Class, Args: list(w.Args, exprKinds...)}
	case KindParens:
		n = &Parens{Pos: pos, X: must(w.X, "x", exprKinds...)}
	case KindBinary:
		n = &Binary{Pos: pos, Op: w.Op, X: must(w.X, "x", exprKinds...), Y: must(w.Y, "y", exprKinds...), Type: w.Type}
	case KindUnary:
		n = &Unary{Pos: pos, Op: w.Op, X: must(w.X, "x", exprKinds...)}
	default:
		panic(fmt.Sprintf("jtree: unexpected kind %v", kind))
	}
	if firstErr != nil {
		return NoNode, firstErr
	}
	return d.t.Add(n), nil
}

func decodeField(w *wireField) (*FieldSym, error) {
	if w == nil {
		return nil, nil
	}
	flags, err := ParseFlags(w.Mods)
	if err != nil {
		return nil, err
	}
	return &FieldSym{Owner: w.Owner, Name: w.Name, Flags: flags, Type: w.Type}, nil
}

func encodeField(s *FieldSym) *wireField {
	if s == nil {
		return nil
	}
	return &wireField{Owner: s.Owner, Name: s.Name, Mods: s.Flags.Words(), Type: s.Type}
}

type encoder struct {
	t *Tree
}

func (e *encoder) list(ids []NodeID) []*wireNode {
	var ws []*wireNode
	for _, id := range ids {
		ws = append(ws, e.node(id))
	}
	return ws
}

func (e *encoder) node(id NodeID) *wireNode {
	if id == NoNode {
		return nil
	}
	n := e.t.Node(id)
	pos := n.Position()
	w := &wireNode{Kind: n.Kind().String(), Line: pos.Line, Col: pos.Col}
	switch n := n.(type) {
	case *Unit:
		w.Name = n.Name
		w.Package = n.Package
		w.Imports = n.Imports
		w.Classes = e.list(n.Classes)
	case *ClassDecl:
		w.Mods = n.Mods.Words()
		w.Annotations = e.list(n.Annotations)
		w.Name = n.Name
		w.FQN = n.FQN
		w.Members = e.list(n.Members)
	case *MethodDecl:
		w.Mods = n.Mods.Words()
		w.Annotations = e.list(n.Annotations)
		w.Result = n.Result
		w.Name = n.Name
		w.Params = e.list(n.Params)
		w.Body = e.node(n.Body)
	case *VarDecl:
		w.Mods = n.Mods.Words()
		w.Annotations = e.list(n.Annotations)
		w.Type = n.Type
		w.Vars = e.list(n.Vars)
	case *NamedVar:
		w.Name = n.Name
		w.Init = e.node(n.Init)
	case *Annotation:
		w.Name = n.Name
		w.Args = e.list(n.Args)
	case *Block:
		w.Stmts = e.list(n.Stmts)
	case *ExprStmt:
		w.X = e.node(n.X)
	case *Return:
		w.X = e.node(n.X)
	case *If:
		w.Cond = e.node(n.Cond)
		w.Then = e.node(n.Then)
		w.Else = e.node(n.Else)
	case *Assign:
		w.Op = n.Op
		w.LHS = e.node(n.Target)
		w.RHS = e.node(n.Value)
	case *Literal:
		w.Lit = n.Lit.String()
		w.Value = n.Value
		w.Source = n.Source
		w.Type = n.Type
	case *Ident:
		w.Name = n.Name
		w.Type = n.Type
		w.Field = encodeField(n.Field)
	case *FieldAccess:
		w.X = e.node(n.X)
		w.Name = n.Name
		w.Type = n.Type
		w.Field = encodeField(n.Field)
	case *MethodCall:
		w.Recv = e.node(n.Recv)
		w.Name = n.Name
		w.Args = e.list(n.Args)
		w.Type = n.Type
	case *NewClass:
		w.Class = n.Class
		w.Args = e.list(n.Args)
	case *Parens:
		w.X = e.node(n.X)
	case *Binary:
		w.Op = n.Op
		w.X = e.node(n.X)
		w.Y = e.node(n.Y)
		w.Type = n.Type
	case *Unary:
		w.Op = n.Op
		w.X = e.node(n.X)
	default:
		panic(fmt.Sprintf("jtree: unexpected node %T", n))
	}
	return w
}
