// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"rsc.io/dupconst/jtree"
)

// ErrUnsynthesizable reports that no constant name could be derived for a
// duplicated value, for example because it has no letters or digits.
// The group is left alone; other groups in the class are still rewritten.
var ErrUnsynthesizable = errors.New("no constant name can be derived from value")

// A PreconditionError reports a class that cannot be processed at all
// because the parser did not resolve its type.
type PreconditionError struct {
	Pos   jtree.Pos
	Class string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("class %s: type not resolved", e.Class)
}

// An Error is an error at a particular source position. It may have attached
// errors at other positions (but those must not have secondary errors).
type Error struct {
	File string
	Pos  jtree.Pos
	Msg  string

	Secondary []*Error
}

func (e *Error) Error() string {
	if loc := e.location(); loc != "" {
		return fmt.Sprintf("%s: %s", loc, e.Msg)
	}
	return e.Msg
}

func (e *Error) location() string {
	switch {
	case e.File != "" && e.Pos.IsValid():
		return e.File + ":" + e.Pos.String()
	case e.File != "":
		return e.File
	case e.Pos.IsValid():
		return e.Pos.String()
	}
	return ""
}

type errorKey struct {
	file string
	pos  jtree.Pos
	msg  string
}

// ErrorList is a set of Errors. It is also an error itself. The zero value is
// an empty list, ready to use.
type ErrorList struct {
	errs []*Error
	set  map[errorKey]bool
}

// Add adds an error to l. If the error is an Error or a PreconditionError,
// it uses the position information from the error. If the error is an
// ErrorList, it merges all errors from that list into this list. Otherwise,
// it adds the error with no position information. It suppresses duplicate
// errors (same position and message).
func (l *ErrorList) Add(err error) {
	l.AddIn("", err)
}

// AddIn is like Add but attributes errors without a file to file.
func (l *ErrorList) AddIn(file string, err error) {
	var e *Error

	switch err := err.(type) {
	case nil:
		return

	case *ErrorList:
		for _, e := range err.errs {
			l.AddIn(file, e)
		}
		return

	case *Error:
		e = err
		if e.File == "" && file != "" {
			e = &Error{file, err.Pos, err.Msg, err.Secondary}
		}

	case *PreconditionError:
		e = &Error{file, err.Pos, err.Error(), nil}

	default:
		e = &Error{file, jtree.Pos{}, err.Error(), nil}
	}

	k := errorKey{e.File, e.Pos, e.Msg}
	if !l.set[k] {
		if l.set == nil {
			l.set = make(map[errorKey]bool)
		}
		l.errs = append(l.errs, e)
		l.set[k] = true
	}
}

// Len returns the number of distinct errors in l.
func (l *ErrorList) Len() int {
	return len(l.errs)
}

// Error sorts, deduplicates, and returns a "\n" separated list of formatted
// errors. Note that the result does not end in "\n" because the caller is
// expected to add that.
func (l *ErrorList) Error() string {
	if len(l.errs) == 0 {
		return "no errors"
	}

	sort.SliceStable(l.errs, func(i, j int) bool {
		p1, p2 := l.errs[i], l.errs[j]
		if p1.File != p2.File {
			return p1.File < p2.File
		}
		if p1.Pos.Line != p2.Pos.Line {
			return p1.Pos.Line < p2.Pos.Line
		}
		return p1.Pos.Col < p2.Pos.Col
	})

	// Collapse duplicate messages that appear in many locations on the
	// assumption that one malformed input produced them all.
	count := make(map[string]int)
	for _, e := range l.errs {
		count[e.Msg]++
	}

	buf := new(strings.Builder)
	for _, e := range l.errs {
		msg := e.Msg
		switch {
		case count[msg] > 3:
			n := count[e.Msg]
			count[e.Msg] = -1
			msg += fmt.Sprintf(" [× %d]", n)

		case count[msg] < 0:
			continue
		}

		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}

		if loc := e.location(); loc != "" {
			fmt.Fprintf(buf, "%s: %s", loc, msg)
		} else {
			fmt.Fprintf(buf, "%s", msg)
		}
		for _, e2 := range e.Secondary {
			fmt.Fprintf(buf, "\n\t%s", e2)
		}
	}
	return buf.String()
}

// Err returns an error equivalent to this error list.
// If the list is empty, Err returns nil.
func (l *ErrorList) Err() error {
	if len(l.errs) == 0 {
		return nil
	}
	return l
}
