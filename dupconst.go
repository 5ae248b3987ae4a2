// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"rsc.io/dupconst/diff"
	"rsc.io/dupconst/refactor"
)

const usageLine = "usage: dupconst [-w] [-l] [-d] [--config file] file..."

func main() {
	log.SetPrefix("dupconst: ")
	log.SetFlags(0)

	cmd := newCommand(&driver{Dir: ".", Stdout: os.Stdout, Stderr: os.Stderr})
	if err := cmd.Execute(); err != nil {
		var u *errUsage
		if errors.As(err, &u) {
			fmt.Fprintf(os.Stderr, "dupconst: %v\n%s\n", err, usageLine)
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// A driver holds the settings of one dupconst invocation.
type driver struct {
	Dir    string // directory relative file names are resolved against
	Stdout io.Writer
	Stderr io.Writer

	// Log, if set, replaces the logger built from the -v flag.
	Log *zap.Logger

	Write   bool
	List    bool
	Diff    bool
	Color   bool
	Verbose bool
	Config  string
	Jobs    int
	Min     int
}

func newCommand(d *driver) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dupconst [flags] file...",
		Short:         "Replace duplicated string literals with constants",
		Long:          "Dupconst rewrites tree documents so that string literals used more than once in a class refer to a single private static final constant.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return newErrUsage("no input files")
			}
			cfg, err := d.config(cmd)
			if err != nil {
				return err
			}
			return d.run(cmd, cfg, args)
		},
	}
	cmd.SetOut(d.Stdout)
	cmd.SetErr(d.Stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return newErrUsage("%v", err)
	})

	f := cmd.Flags()
	f.BoolVarP(&d.Write, "write", "w", false, "write result to the source file instead of stdout")
	f.BoolVarP(&d.List, "list", "l", false, "list files whose classes would change")
	f.BoolVarP(&d.Diff, "diff", "d", false, "display diffs instead of rewriting files")
	f.BoolVar(&d.Color, "color", false, "color diff output")
	f.BoolVarP(&d.Verbose, "verbose", "v", false, "log every planned change")
	f.StringVar(&d.Config, "config", "", "read settings from YAML `file`")
	f.IntVarP(&d.Jobs, "jobs", "j", 0, "process `n` files at a time (default GOMAXPROCS)")
	f.IntVar(&d.Min, "min", 0, "minimum occurrences of a value (default 2)")
	return cmd
}

// config loads the configuration file, if any, and applies flag overrides.
func (d *driver) config(cmd *cobra.Command) (refactor.Config, error) {
	cfg := refactor.DefaultConfig()
	if d.Config != "" {
		var err error
		if cfg, err = refactor.LoadConfig(d.path(d.Config)); err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = d.Jobs
	}
	if cmd.Flags().Changed("min") {
		cfg.MinOccurrences = d.Min
	}
	if err := cfg.Validate(); err != nil {
		return cfg, newErrUsage("%v", err)
	}
	return cfg, nil
}

// logger returns the logger for a run. Without -v only warnings are logged,
// so a clean run writes nothing to standard error.
func (d *driver) logger() *zap.Logger {
	if d.Log != nil {
		return d.Log
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if d.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(config.EncoderConfig), zapcore.AddSync(d.Stderr), config.Level)
	return zap.New(core)
}

func (d *driver) run(cmd *cobra.Command, cfg refactor.Config, files []string) error {
	logger := d.logger()
	defer logger.Sync()

	rf, err := refactor.New(cfg, logger)
	if err != nil {
		return err
	}

	results := d.process(cmd.Context(), rf, files, cfg.Jobs)

	var errs refactor.ErrorList
	printed := false
	for _, r := range results {
		if r.err != nil {
			errs.AddIn(r.name, r.err)
		}
		if r.doc == nil {
			continue
		}
		logger.Debug("processed file",
			zap.String("file", r.name),
			zap.Int("inserted", r.stats.Inserted),
			zap.Int("reused", r.stats.Reused),
			zap.Int("renamed", r.stats.Renamed),
			zap.Int("replaced", r.stats.Replaced))

		if d.List && r.stats.Changed() {
			if _, err := fmt.Fprintln(d.Stdout, r.name); err != nil {
				return err
			}
		}
		if d.Write && r.stats.Changed() {
			if err := d.writeBack(r); err != nil {
				errs.AddIn(r.name, err)
			}
		}
		if d.Diff {
			if err := d.showDiff(r); err != nil {
				return err
			}
		}
		if !d.List && !d.Write && !d.Diff {
			for _, text := range r.after {
				if printed {
					text = append([]byte("\n"), text...)
				}
				if _, err := d.Stdout.Write(text); err != nil {
					return err
				}
				printed = true
			}
		}
	}
	return errs.Err()
}

func (d *driver) showDiff(r *result) error {
	for i := range r.after {
		if bytes.Equal(r.before[i], r.after[i]) {
			continue
		}
		name := r.units[i]
		data, err := diff.Diff("a/"+name, r.before[i], "b/"+name, r.after[i])
		if err != nil {
			return fmt.Errorf("%s: computing diff: %v", r.name, err)
		}
		if d.Color {
			data = colorize(data)
		}
		if _, err := d.Stdout.Write(data); err != nil {
			return err
		}
	}
	return nil
}

var (
	diffHeaderColor = color.New(color.Bold)
	diffHunkColor   = color.New(color.FgCyan)
	diffDelColor    = color.New(color.FgRed)
	diffAddColor    = color.New(color.FgGreen)
)

// colorize colors the lines of a unified diff.
func colorize(data []byte) []byte {
	var buf bytes.Buffer
	for _, line := range bytes.SplitAfter(data, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var c *color.Color
		switch {
		case bytes.HasPrefix(line, []byte("diff ")),
			bytes.HasPrefix(line, []byte("--- ")),
			bytes.HasPrefix(line, []byte("+++ ")):
			c = diffHeaderColor
		case line[0] == '@':
			c = diffHunkColor
		case line[0] == '-':
			c = diffDelColor
		case line[0] == '+':
			c = diffAddColor
		}
		if c == nil {
			buf.Write(line)
			continue
		}
		c.EnableColor()
		text := bytes.TrimSuffix(line, []byte("\n"))
		buf.WriteString(c.Sprint(string(text)))
		if len(text) < len(line) {
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}
