// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Dupconst replaces duplicated string literals with constants.
//
// Usage:
//
//	dupconst [-w] [-l] [-d [--color]] [--config file] [-j n] [--min n] [-v] file...
//
// Each file is a tree document produced by a Java parser: a JSON (.json)
// or MessagePack (.msgpack) encoding of one or more compilation units
// with resolved types. For every class in every unit, dupconst finds the
// string literals that occur two or more times as
//
//   - arguments or receivers of method calls,
//   - arguments of constructor calls,
//   - arguments of annotations, or
//   - initializers of final variables that are not themselves
//     private static final fields,
//
// and replaces each occurrence with a reference to a private static final
// String constant holding the value. For example, in
//
//	class T {
//	    final String x = "A";
//	    void run() {
//	        log("A");
//	        log("A");
//	    }
//	}
//
// the three occurrences of "A" become references to a new constant:
//
//	class T {
//	    private static final String A = "A";
//	    final String x = A;
//	    void run() {
//	        log(A);
//	        log(A);
//	    }
//	}
//
// If the class already declares a private static final String constant
// with the value, that constant is used instead, renamed if its name
// does not follow the UPPER_SNAKE_CASE convention or is shadowed.
// New names are derived from the value (“fooBar” becomes FOO_BAR) and
// are given a numeric suffix (FOO_BAR_1, FOO_BAR_2, ...) when already
// taken in the class. Values with no ASCII letters or digits, such as
// "{} {}", are left alone. Nested classes are processed separately.
//
// By default, dupconst prints the rewritten units as Java-like text.
// The -w flag writes the rewritten document back to its file instead,
// in the same encoding. The -l flag lists the files that would change.
// The -d flag prints a unified diff of the text before and after,
// using the system diff command; --color colors it.
//
// # Configuration
//
// The --config flag names a YAML file with any of these settings:
//
//	min_occurrences: 2       # occurrences needed before a value becomes a constant
//	max_suffix: 0            # highest numeric suffix tried; 0 means no limit
//	count_annotations: true  # whether annotation arguments count as occurrences
//	jobs: 0                  # files processed concurrently; 0 means GOMAXPROCS
//
// The -j and --min flags override the file.
//
// # Diagnostics
//
// Classes whose type the parser did not resolve are skipped and reported.
// Dupconst logs its decisions with zap; -v enables debug logging of
// every planned change. The exit status is non-zero if any file failed.
package main
