// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"strconv"
	"strings"

	"rsc.io/dupconst/jtree"
)

// Synthesize derives a constant name from an arbitrary string.
// The result is upper case with words separated by single underscores,
// matching ^[A-Z][A-Z0-9]*(_[A-Z0-9]+)*$, or empty if s has no ASCII
// letters or digits.
//
// A word starts at a letter or digit that follows a non-alphanumeric
// character, or at an upper case letter that follows a lower case one.
// Digits do not end a lower case run, so "v2Config" is V2_CONFIG.
// A name that would start with a digit gets the prefix A_.
func Synthesize(s string) string {
	var b strings.Builder
	prevAlnum := false
	prevLower := false
	for _, c := range s {
		if !isAlnum(c) {
			prevAlnum = false
			continue
		}
		if b.Len() > 0 && !strings.HasSuffix(b.String(), "_") && (!prevAlnum || isUpper(c) && prevLower) {
			b.WriteByte('_')
		}
		if b.Len() == 0 && isDigit(c) {
			b.WriteString("A_")
		}
		switch {
		case isLower(c):
			b.WriteRune(c - 'a' + 'A')
			prevLower = true
		case isUpper(c):
			b.WriteRune(c)
			prevLower = false
		default:
			b.WriteRune(c)
		}
		prevAlnum = true
	}
	return b.String()
}

func isLower(c rune) bool { return 'a' <= c && c <= 'z' }
func isUpper(c rune) bool { return 'A' <= c && c <= 'Z' }
func isDigit(c rune) bool { return '0' <= c && c <= '9' }
func isAlnum(c rune) bool { return isLower(c) || isUpper(c) || isDigit(c) }

// Deconflict returns Synthesize(seed), or the first of its variants
// seed_1, seed_2, ... for which inUse reports false.
// If limit is positive, at most limit suffixes are tried.
// It returns "" if seed yields no name or the limit is exhausted.
func Deconflict(seed string, inUse func(name string) bool, limit int) string {
	base := Synthesize(seed)
	if base == "" {
		return ""
	}
	name := base
	for i := 1; inUse(name); i++ {
		if limit > 0 && i > limit {
			return ""
		}
		name = base + "_" + strconv.Itoa(i)
	}
	return name
}

// A nameSet tracks the variable names visible in a class:
// how many declarations bind each name, and which names have been
// committed to constants during this rewrite.
type nameSet struct {
	bound     map[string]int
	committed map[string]bool
}

// collectNames returns the names declared anywhere in class (fields,
// parameters and locals, nested classes included) together with the names
// of fields of other classes referenced by simple name, which a new or
// renamed constant would shadow. References to the constant from nested
// classes must keep resolving to it.
func collectNames(t *jtree.Tree, class jtree.NodeID) *nameSet {
	s := &nameSet{bound: make(map[string]int), committed: make(map[string]bool)}
	fqn := t.Node(class).(*jtree.ClassDecl).FQN
	jtree.Walk(t, class, func(stack []jtree.NodeID) bool {
		switch n := t.Node(stack[0]).(type) {
		case *jtree.NamedVar:
			s.bound[n.Name]++
		case *jtree.Ident:
			if n.Field != nil && n.Field.Owner != fqn {
				s.bound[n.Name]++
			}
		}
		return true
	})
	return s
}

// inUse reports whether name is taken.
func (s *nameSet) inUse(name string) bool {
	return s.committed[name] || s.bound[name] > 0
}

// inUseExcept is like inUse but ignores one declaration of own,
// the name of the field about to be reused.
func (s *nameSet) inUseExcept(own string) func(string) bool {
	return func(name string) bool {
		if name == own {
			return s.committed[name] || s.bound[name] > 1
		}
		return s.inUse(name)
	}
}

func (s *nameSet) commit(name string) {
	s.committed[name] = true
}
