// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"rsc.io/dupconst/jtree"
	"rsc.io/dupconst/refactor"
)

// A result is the outcome of processing one document.
type result struct {
	name  string
	codec jtree.Codec
	doc   *jtree.Document // nil if the document could not be read

	// Per compilation unit, in document order.
	units  []string
	before [][]byte
	after  [][]byte

	stats refactor.Stats
	err   error
}

// process rewrites the named documents, at most jobs at a time,
// and returns their results in argument order.
// Each document is read, decoded and rewritten by a single goroutine.
func (d *driver) process(ctx context.Context, rf *refactor.Refactor, files []string, jobs int) []*result {
	if ctx == nil {
		ctx = context.Background()
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]*result, len(files))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = &result{name: name, err: err}
				return nil
			}
			results[i] = d.processFile(rf, name)
			return nil
		})
	}
	g.Wait()
	return results
}

func (d *driver) processFile(rf *refactor.Refactor, name string) *result {
	r := &result{name: name}
	codec, err := jtree.CodecFor(name)
	if err != nil {
		r.err = err
		return r
	}
	r.codec = codec
	data, err := os.ReadFile(d.path(name))
	if err != nil {
		r.err = err
		return r
	}
	doc, err := jtree.Unmarshal(data, codec)
	if err != nil {
		r.err = err
		return r
	}

	var errs refactor.ErrorList
	for i, t := range doc.Trees {
		unit := fmt.Sprintf("unit%d", i)
		if u := t.Unit(); u != nil && u.Name != "" {
			unit = u.Name
		}
		r.units = append(r.units, unit)
		r.before = append(r.before, jtree.Format(t, t.Root))
		_, st, err := rf.Unit(t)
		errs.AddIn(name, err)
		r.stats.Add(st)
		r.after = append(r.after, jtree.Format(t, t.Root))
	}
	r.doc = doc
	r.err = errs.Err()
	return r
}

func (d *driver) path(name string) string {
	if filepath.IsAbs(name) || d.Dir == "" {
		return name
	}
	return filepath.Join(d.Dir, name)
}

// writeBack replaces the document file with the rewritten trees,
// encoded with the document's own codec.
func (d *driver) writeBack(r *result) error {
	data, err := jtree.Marshal(r.doc, r.codec)
	if err != nil {
		return err
	}
	file := d.path(r.name)
	mode := os.FileMode(0666)
	if fi, err := os.Stat(file); err == nil {
		mode = fi.Mode().Perm()
	}
	return os.WriteFile(file, data, mode)
}
