// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"rsc.io/dupconst/jtree"
)

const psf = jtree.Private | jtree.Static | jtree.Final

// rewrite runs the refactoring over the whole unit and returns the result as text.
func rewrite(t *testing.T, tr *jtree.Tree, cfg Config) ([]*Plan, Stats, string) {
	t.Helper()
	r, err := New(cfg, nil)
	require.NoError(t, err)
	plans, st, err := r.Unit(tr)
	require.NoError(t, err)
	return plans, st, string(jtree.Format(tr, tr.Root))
}

func checkText(t *testing.T, want, have string) {
	t.Helper()
	if diff := cmp.Diff(want, have); diff != "" {
		t.Errorf("rewritten class mismatch (-want +got):\n%s", diff)
	}
}

func call(b *jtree.Builder, name string, args ...jtree.NodeID) jtree.NodeID {
	return b.Call(jtree.NoNode, name, args...)
}

func logStmt(b *jtree.Builder, arg jtree.NodeID) jtree.NodeID {
	return b.Expr(call(b, "log", arg))
}

func TestScenario(t *testing.T) {
	b := jtree.NewBuilder()
	x := b.Var(jtree.Final, "String", "x", b.String("A"))
	m := b.Method(0, "void", "run", nil, logStmt(b, b.String("A")), logStmt(b, b.String("A")))
	tr := b.Unit("T.java", b.Class(0, "T", "p.T", x, m))

	plans, st, text := rewrite(t, tr, DefaultConfig())
	checkText(t, `class T {
    private static final String A = "A";
    final String x = A;
    void run() {
        log(A);
        log(A);
    }
}
`, text)

	require.Len(t, plans, 1)
	require.Len(t, plans[0].Groups, 1)
	g := plans[0].Groups[0]
	if g.Action != ActionInsert || g.Name != "A" || len(g.Sites) != 3 {
		t.Errorf("group = %v %s with %d sites, want insert A with 3 sites", g.Action, g.Name, len(g.Sites))
	}
	if want := (Stats{Inserted: 1, Replaced: 3}); st != want {
		t.Errorf("stats = %+v, want %+v", st, want)
	}
}

// fooClass builds the class used by the shadowing tests:
//
//	class Test {
//	    [extra members]
//	    public static boolean f(String p) {
//	        if ("foo".equals(p)) {
//	            return true;
//	        } else if (!"fooBar".equals(p)) {
//	            return (p + "fooBar" + "foo" [+ ref]).equals(p);
//	        }
//	    }
//	}
func fooClass(b *jtree.Builder, ref jtree.NodeID, extra ...jtree.NodeID) jtree.NodeID {
	p := func() jtree.NodeID { return b.Ident("p") }
	sum := b.Binary("+", b.Binary("+", p(), b.String("fooBar")), b.String("foo"))
	if ref != jtree.NoNode {
		sum = b.Binary("+", sum, ref)
	}
	ifs := b.If(
		b.Call(b.String("foo"), "equals", p()),
		b.Block(b.Return(b.Bool(true))),
		b.If(b.Unary("!", b.Call(b.String("fooBar"), "equals", p())),
			b.Block(b.Return(b.Call(b.Parens(sum), "equals", p()))),
			jtree.NoNode),
	)
	f := b.Method(jtree.Public|jtree.Static, "boolean", "f", []jtree.NodeID{b.Param("String", "p")}, ifs)
	return b.Class(0, "Test", "Test", append(extra, f)...)
}

func TestReceiversAndOperands(t *testing.T) {
	b := jtree.NewBuilder()
	tr := b.Unit("Test.java", fooClass(b, jtree.NoNode))
	_, _, text := rewrite(t, tr, DefaultConfig())
	checkText(t, `class Test {
    private static final String FOO = "foo";
    private static final String FOO_BAR = "fooBar";
    public static boolean f(String p) {
        if (FOO.equals(p)) {
            return true;
        } else if (!FOO_BAR.equals(p)) {
            return (p + FOO_BAR + FOO).equals(p);
        }
    }
}
`, text)
}

func TestShadowExistingConstant(t *testing.T) {
	b := jtree.NewBuilder()
	predef := b.Var(psf, "String", "FOO", b.String("predef"))
	ref := b.FieldRef("Test", "FOO", psf, "String")
	tr := b.Unit("Test.java", fooClass(b, ref, predef))
	_, _, text := rewrite(t, tr, DefaultConfig())
	checkText(t, `class Test {
    private static final String FOO_1 = "foo";
    private static final String FOO_BAR = "fooBar";
    private static final String FOO = "predef";
    public static boolean f(String p) {
        if (FOO_1.equals(p)) {
            return true;
        } else if (!FOO_BAR.equals(p)) {
            return (p + FOO_BAR + FOO_1 + FOO).equals(p);
        }
    }
}
`, text)
}

func TestShadowInheritedField(t *testing.T) {
	b := jtree.NewBuilder()
	ref := b.FieldRef("Super", "FOO", jtree.Static|jtree.Final, "String")
	tr := b.Unit("Test.java", fooClass(b, ref))
	_, _, text := rewrite(t, tr, DefaultConfig())
	checkText(t, `class Test {
    private static final String FOO_1 = "foo";
    private static final String FOO_BAR = "fooBar";
    public static boolean f(String p) {
        if (FOO_1.equals(p)) {
            return true;
        } else if (!FOO_BAR.equals(p)) {
            return (p + FOO_BAR + FOO_1 + FOO).equals(p);
        }
    }
}
`, text)
}

func headerClass() *jtree.Tree {
	b := jtree.NewBuilder()
	out := b.Call(b.Select(b.Ident("System"), "java.lang.System", "out", jtree.Public|jtree.Static|jtree.Final, "PrintStream"),
		"println", b.Binary("+", b.Ident("m"), b.Ident("args")))
	info := b.Method(jtree.Private|jtree.Static, "void", "info",
		[]jtree.NodeID{b.Param("String", "m"), b.Param("String...", "args")},
		b.Expr(out))
	get := b.Method(jtree.Private|jtree.Static, "String", "get",
		[]jtree.NodeID{b.Param("String", "a"), b.Param("String", "b")},
		b.Return(b.Binary("+", b.Ident("a"), b.Ident("b"))))
	detIP := b.Method(jtree.Public|jtree.Static, "String", "detIP",
		[]jtree.NodeID{b.Param("String", "req")},
		b.Var(0, "String", "cip", call(b, "get", b.Ident("req"), b.String("X-CLIENT-IP"))),
		b.Expr(call(b, "info", b.String("{} {}"), b.String("X-CLIENT-IP"), b.Ident("cip"))),
		b.If(b.Call(b.Ident("cip"), "isEmpty"), b.Block(
			b.Expr(call(b, "info", b.String("no cip from {}, trying {}"), b.String("X-CLIENT-IP"), b.String("X-FORWARDED-FOR"))),
			b.Expr(b.Assign(b.Ident("cip"), call(b, "get", b.Ident("req"), b.String("X-FORWARDED-FOR")))),
			b.Expr(call(b, "info", b.String("{} {}"), b.String("X-FORWARDED-FOR"), b.Ident("cip"))),
		), jtree.NoNode),
		b.Expr(call(b, "info", b.String("cip: {}"), b.Ident("cip"))),
		b.Return(b.Ident("cip")))
	getXFW := b.Method(jtree.Public|jtree.Static, "String", "getXFW",
		[]jtree.NodeID{b.Param("String", "req")},
		b.Var(0, "String", "cip", b.String("")),
		b.If(b.Binary("!=", b.Ident("req"), b.Null("Object")), b.Block(
			b.Var(0, "String[]", "ipa", b.Call(b.Ident("req"), "split", b.String(","))),
			b.Expr(call(b, "info", b.String("{}: {}"), b.String("X-FORWARDED-FOR"), b.Call(b.Ident("Arrays"), "toString", b.Ident("ipa")))),
		), jtree.NoNode),
		b.Return(b.Ident("cip")))
	tr := b.Unit("TestUtil.java", b.Class(jtree.Public, "TestUtil", "TestUtil", info, get, detIP, getXFW))
	tr.Unit().Imports = []string{"java.util.Arrays"}
	return tr
}

const headerWant = `import java.util.Arrays;

public class TestUtil {
    private static final String X_CLIENT_IP = "X-CLIENT-IP";
    private static final String X_FORWARDED_FOR = "X-FORWARDED-FOR";
    private static void info(String m, String... args) {
        System.out.println(m + args);
    }
    private static String get(String a, String b) {
        return a + b;
    }
    public static String detIP(String req) {
        String cip = get(req, X_CLIENT_IP);
        info("{} {}", X_CLIENT_IP, cip);
        if (cip.isEmpty()) {
            info("no cip from {}, trying {}", X_CLIENT_IP, X_FORWARDED_FOR);
            cip = get(req, X_FORWARDED_FOR);
            info("{} {}", X_FORWARDED_FOR, cip);
        }
        info("cip: {}", cip);
        return cip;
    }
    public static String getXFW(String req) {
        String cip = "";
        if (req != null) {
            String[] ipa = req.split(",");
            info("{}: {}", X_FORWARDED_FOR, Arrays.toString(ipa));
        }
        return cip;
    }
}
`

func TestSkipUnsynthesizable(t *testing.T) {
	tr := headerClass()
	plans, st, text := rewrite(t, tr, DefaultConfig())
	checkText(t, headerWant, text)

	require.Len(t, plans, 1)
	p := plans[0]
	var names []string
	for _, g := range p.Groups {
		names = append(names, g.Name)
	}
	if !cmp.Equal(names, []string{"X_CLIENT_IP", "X_FORWARDED_FOR"}) {
		t.Errorf("committed names = %v", names)
	}
	require.Len(t, p.Skipped, 1)
	if s := p.Skipped[0]; s.Value != "{} {}" || len(s.Sites) != 2 || !errors.Is(s.Err, ErrUnsynthesizable) {
		t.Errorf("skipped = %q with %d sites, %v", s.Value, len(s.Sites), s.Err)
	}
	if st.Replaced != 7 || st.Inserted != 2 {
		t.Errorf("stats = %+v, want 7 replaced, 2 inserted", st)
	}
}

func TestReuseExistingConstant(t *testing.T) {
	b := jtree.NewBuilder()
	foo := b.Var(psf, "String", "FOO", b.String("x"))
	m := b.Method(0, "void", "m", nil, logStmt(b, b.String("x")), logStmt(b, b.String("x")))
	tr := b.Unit("T.java", b.Class(0, "T", "T", foo, m))

	plans, st, text := rewrite(t, tr, DefaultConfig())
	checkText(t, `class T {
    private static final String FOO = "x";
    void m() {
        log(FOO);
        log(FOO);
    }
}
`, text)
	g := plans[0].Groups[0]
	if g.Action != ActionReuse || g.Name != "FOO" || g.OldName != "FOO" {
		t.Errorf("group = %v %s (old %s), want reuse FOO", g.Action, g.Name, g.OldName)
	}
	if want := (Stats{Reused: 1, Replaced: 2}); st != want {
		t.Errorf("stats = %+v, want %+v", st, want)
	}
}

func TestRenameShadowedConstant(t *testing.T) {
	b := jtree.NewBuilder()
	foo := b.Var(psf, "String", "FOO", b.String("x"))
	m := b.Method(0, "void", "m", []jtree.NodeID{b.Param("String", "FOO")},
		logStmt(b, b.String("x")),
		logStmt(b, b.Ident("FOO")))
	n := b.Method(0, "void", "n", nil,
		logStmt(b, b.String("x")),
		logStmt(b, b.FieldRef("p.T", "FOO", psf, "String")),
		logStmt(b, b.Select(b.Ident("T"), "p.T", "FOO", psf, "String")))
	tr := b.Unit("T.java", b.Class(0, "T", "p.T", foo, m, n))

	plans, st, text := rewrite(t, tr, DefaultConfig())
	checkText(t, `class T {
    private static final String FOO_1 = "x";
    void m(String FOO) {
        log(FOO_1);
        log(FOO);
    }
    void n() {
        log(FOO_1);
        log(FOO_1);
        log(T.FOO_1);
    }
}
`, text)
	g := plans[0].Groups[0]
	if g.Action != ActionRename || g.OldName != "FOO" || g.Name != "FOO_1" {
		t.Errorf("group = %v %s -> %s, want rename FOO -> FOO_1", g.Action, g.OldName, g.Name)
	}
	if want := (Stats{Renamed: 1, Refs: 2, Replaced: 2}); st != want {
		t.Errorf("stats = %+v, want %+v", st, want)
	}
}

func TestRenameToConvention(t *testing.T) {
	b := jtree.NewBuilder()
	greeting := b.Var(psf, "String", "greeting", b.String("hi"))
	m := b.Method(0, "void", "m", nil,
		b.Expr(b.New("Label", b.String("hi"))),
		b.Expr(b.New("Label", b.String("hi"))),
		logStmt(b, b.FieldRef("T", "greeting", psf, "String")))
	tr := b.Unit("T.java", b.Class(0, "T", "T", greeting, m))

	_, _, text := rewrite(t, tr, DefaultConfig())
	checkText(t, `class T {
    private static final String GREETING = "hi";
    void m() {
        new Label(GREETING);
        new Label(GREETING);
        log(GREETING);
    }
}
`, text)
}

func TestUsageContexts(t *testing.T) {
	b := jtree.NewBuilder()
	members := []jtree.NodeID{
		b.Var(jtree.Public|jtree.Static|jtree.Final, "String", "PUB", b.String("v")), // usage: not private
		b.Var(jtree.Private|jtree.Final, "String", "priv", b.String("v")),            // usage: not static
		b.Var(jtree.Private|jtree.Static, "String", "mutable", b.String("v")),        // not final
		b.Method(0, "String", "m", nil,
			b.Expr(b.String("v")),
			b.Expr(b.Assign(b.Ident("s"), b.String("v"))),
			b.Return(b.String("v"))),
	}
	tr := b.Unit("T.java", b.Class(0, "T", "T", members...))
	_, _, text := rewrite(t, tr, DefaultConfig())
	checkText(t, `class T {
    private static final String V = "v";
    public static final String PUB = V;
    private final String priv = V;
    private static String mutable = "v";
    String m() {
        "v";
        s = "v";
        return "v";
    }
}
`, text)
}

func TestNonUsageLiteralsUntouched(t *testing.T) {
	b := jtree.NewBuilder()
	m := b.Method(0, "void", "m", nil,
		b.Expr(b.String("A")), b.Expr(b.String("A")), b.Expr(b.String("A")))
	tr := b.Unit("T.java", b.Class(0, "T", "T", m))
	before := string(jtree.Format(tr, tr.Root))
	plans, st, text := rewrite(t, tr, DefaultConfig())
	checkText(t, before, text)
	if len(plans) != 1 || !plans[0].Empty() || st != (Stats{}) {
		t.Errorf("plans = %v, stats = %+v, want one empty plan", plans, st)
	}
}

func TestThreshold(t *testing.T) {
	build := func() *jtree.Tree {
		b := jtree.NewBuilder()
		m := b.Method(0, "void", "m", nil,
			logStmt(b, b.String("once")),
			logStmt(b, b.String("twice")),
			logStmt(b, b.String("twice")))
		return b.Unit("T.java", b.Class(0, "T", "T", m))
	}

	_, _, text := rewrite(t, build(), DefaultConfig())
	checkText(t, `class T {
    private static final String TWICE = "twice";
    void m() {
        log("once");
        log(TWICE);
        log(TWICE);
    }
}
`, text)

	cfg := DefaultConfig()
	cfg.MinOccurrences = 3
	tr := build()
	before := string(jtree.Format(tr, tr.Root))
	_, _, text = rewrite(t, tr, cfg)
	checkText(t, before, text)
}

func TestAnnotations(t *testing.T) {
	build := func() *jtree.Tree {
		b := jtree.NewBuilder()
		m1 := b.Annotate(b.Method(0, "void", "a", nil), b.Annotation("SuppressWarnings", b.String("unchecked")))
		m2 := b.Annotate(b.Method(0, "void", "b", nil), b.Annotation("SuppressWarnings", b.String("unchecked")))
		return b.Unit("T.java", b.Class(0, "T", "T", m1, m2))
	}

	_, _, text := rewrite(t, build(), DefaultConfig())
	checkText(t, `class T {
    private static final String UNCHECKED = "unchecked";
    @SuppressWarnings(UNCHECKED)
    void a() {
    }
    @SuppressWarnings(UNCHECKED)
    void b() {
    }
}
`, text)

	cfg := DefaultConfig()
	cfg.CountAnnotations = false
	tr := build()
	before := string(jtree.Format(tr, tr.Root))
	_, _, text = rewrite(t, tr, cfg)
	checkText(t, before, text)
}

func TestNestedClasses(t *testing.T) {
	b := jtree.NewBuilder()
	inner := b.Class(jtree.Static, "Inner", "Outer.Inner",
		b.Method(0, "void", "n", nil, logStmt(b, b.String("a")), logStmt(b, b.String("a"))))
	m := b.Method(0, "void", "m", nil, logStmt(b, b.String("a")), logStmt(b, b.String("a")))
	tr := b.Unit("Outer.java", b.Class(0, "Outer", "Outer", m, inner))

	plans, st, text := rewrite(t, tr, DefaultConfig())
	checkText(t, `class Outer {
    private static final String A = "a";
    void m() {
        log(A);
        log(A);
    }
    static class Inner {
        private static final String A = "a";
        void n() {
            log(A);
            log(A);
        }
    }
}
`, text)
	if len(plans) != 2 || plans[0].FQN != "Outer" || plans[1].FQN != "Outer.Inner" {
		t.Errorf("plans = %v, want Outer then Outer.Inner", plans)
	}
	if st.Inserted != 2 || st.Replaced != 4 {
		t.Errorf("stats = %+v", st)
	}
}

func TestRenameAvoidsNestedNames(t *testing.T) {
	b := jtree.NewBuilder()
	inner := b.Class(jtree.Static, "Inner", "Outer.Inner",
		b.Var(0, "String", "FOO", b.String("inner")),
		b.Method(0, "void", "n", nil, logStmt(b, b.FieldRef("Outer", "foo", psf, "String"))))
	tr := b.Unit("Outer.java", b.Class(0, "Outer", "Outer",
		b.Var(psf, "String", "foo", b.String("x")),
		b.Method(0, "void", "m", nil, logStmt(b, b.String("x")), logStmt(b, b.String("x"))),
		inner))

	plans, st, text := rewrite(t, tr, DefaultConfig())
	checkText(t, `class Outer {
    private static final String FOO_1 = "x";
    void m() {
        log(FOO_1);
        log(FOO_1);
    }
    static class Inner {
        String FOO = "inner";
        void n() {
            log(FOO_1);
        }
    }
}
`, text)
	g := plans[0].Groups[0]
	if g.Action != ActionRename || g.OldName != "foo" || g.Name != "FOO_1" {
		t.Errorf("group = %v %s -> %s, want rename foo -> FOO_1", g.Action, g.OldName, g.Name)
	}
	if st.Refs != 1 {
		t.Errorf("updated %d references, want 1", st.Refs)
	}
}

func TestCollisionAvoidance(t *testing.T) {
	b := jtree.NewBuilder()
	var stmts []jtree.NodeID
	for _, v := range []string{"foo bar", "FooBar", "foo-bar", "x"} {
		stmts = append(stmts, logStmt(b, b.String(v)), logStmt(b, b.String(v)))
	}
	x := b.Var(0, "int", "X", b.Int("1"))
	m := b.Method(0, "void", "m", []jtree.NodeID{b.Param("String", "FOO_BAR_1")}, stmts...)
	tr := b.Unit("T.java", b.Class(0, "T", "T", x, m))
	class := tr.Classes(tr.Root)[0]
	existing := collectNames(tr, class).bound

	plans, _, _ := rewrite(t, tr, DefaultConfig())
	var names []string
	seen := make(map[string]bool)
	for _, g := range plans[0].Groups {
		if seen[g.Name] {
			t.Errorf("name %s committed twice", g.Name)
		}
		if existing[g.Name] > 0 {
			t.Errorf("name %s collides with an existing identifier", g.Name)
		}
		seen[g.Name] = true
		names = append(names, g.Name)
	}
	want := []string{"FOO_BAR", "FOO_BAR_2", "FOO_BAR_3", "X_1"}
	if !cmp.Equal(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
}

func TestMaxSuffix(t *testing.T) {
	b := jtree.NewBuilder()
	tr := b.Unit("T.java", b.Class(0, "T", "T",
		b.Var(0, "int", "FOO", b.Int("1")),
		b.Var(0, "int", "FOO_1", b.Int("2")),
		b.Method(0, "void", "m", nil, logStmt(b, b.String("foo")), logStmt(b, b.String("foo")))))

	cfg := DefaultConfig()
	cfg.MaxSuffix = 1
	plans, _, _ := rewrite(t, tr, cfg)
	p := plans[0]
	if len(p.Groups) != 0 || len(p.Skipped) != 1 || !errors.Is(p.Skipped[0].Err, ErrUnsynthesizable) {
		t.Errorf("plan = %+v, want the foo group skipped", p)
	}
}

func TestNullAndNonString(t *testing.T) {
	b := jtree.NewBuilder()
	m := b.Method(0, "void", "m", nil,
		logStmt(b, b.Null("String")), logStmt(b, b.Null("String")),
		logStmt(b, b.Int("7")), logStmt(b, b.Int("7")))
	tr := b.Unit("T.java", b.Class(0, "T", "T", m))
	before := string(jtree.Format(tr, tr.Root))
	_, _, text := rewrite(t, tr, DefaultConfig())
	checkText(t, before, text)
}

func TestIdempotent(t *testing.T) {
	trees := map[string]*jtree.Tree{
		"header": headerClass(),
	}
	b := jtree.NewBuilder()
	trees["shadow"] = b.Unit("Test.java", fooClass(b, b.FieldRef("Test", "FOO", psf, "String"), b.Var(psf, "String", "FOO", b.String("predef"))))
	b = jtree.NewBuilder()
	trees["rename"] = b.Unit("T.java", b.Class(0, "T", "T",
		b.Var(psf, "String", "greeting", b.String("hi")),
		b.Method(0, "void", "m", []jtree.NodeID{b.Param("String", "GREETING")}, logStmt(b, b.String("hi")), logStmt(b, b.String("hi")))))

	for name, tr := range trees {
		t.Run(name, func(t *testing.T) {
			_, _, once := rewrite(t, tr, DefaultConfig())
			plans, st, twice := rewrite(t, tr, DefaultConfig())
			checkText(t, once, twice)
			if st.Inserted+st.Renamed+st.Replaced != 0 {
				t.Errorf("second run edited the tree: %+v", st)
			}
			for _, p := range plans {
				if !p.Empty() {
					t.Errorf("second run planned %+v", p.Groups)
				}
			}
		})
	}
}

func TestPrecondition(t *testing.T) {
	b := jtree.NewBuilder()
	bad := b.Class(0, "Bad", "", b.Method(0, "void", "m", nil, logStmt(b, b.String("a")), logStmt(b, b.String("a"))))
	good := b.Class(0, "Good", "Good", b.Method(0, "void", "m", nil, logStmt(b, b.String("a")), logStmt(b, b.String("a"))))
	tr := b.Unit("T.java", bad, good)

	_, err := PlanClass(tr, bad, DefaultConfig())
	var pe *PreconditionError
	if !errors.As(err, &pe) || pe.Class != "Bad" {
		t.Fatalf("PlanClass(Bad) error = %v, want PreconditionError", err)
	}

	core, logs := observer.New(zap.InfoLevel)
	r, err := New(DefaultConfig(), zap.New(core))
	require.NoError(t, err)
	plans, st, err := r.Unit(tr)
	if err == nil || err.Error() != "T.java: class Bad: type not resolved" {
		t.Errorf("Unit error = %v", err)
	}
	if len(plans) != 1 || plans[0].FQN != "Good" || st.Replaced != 2 {
		t.Errorf("Unit rewrote %v (%+v), want Good only", plans, st)
	}
	if n := logs.FilterMessage("skipping class").Len(); n != 1 {
		t.Errorf("logged %d skipped classes, want 1", n)
	}
	if !strings.Contains(string(jtree.Format(tr, bad)), `log("a");`) {
		t.Errorf("class Bad was modified")
	}
}

func TestUnitWithoutStrings(t *testing.T) {
	b := jtree.NewBuilder()
	tr := b.Unit("T.java", b.Class(0, "T", "", b.Var(0, "int", "n", b.Int("1"))))
	r, err := New(DefaultConfig(), nil)
	require.NoError(t, err)
	plans, _, err := r.Unit(tr)
	if plans != nil || err != nil {
		t.Errorf("Unit = %v, %v, want nothing (the unresolved class is never looked at)", plans, err)
	}
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r, err := New(DefaultConfig(), zap.New(core))
	require.NoError(t, err)
	_, _, err = r.Unit(headerClass())
	require.NoError(t, err)

	skipped := logs.FilterMessage("skipping duplicate literal").All()
	require.Len(t, skipped, 1)
	fields := skipped[0].ContextMap()
	if fields["value"] != "{} {}" || fields["class"] != "TestUtil" {
		t.Errorf("skip log fields = %v", fields)
	}
	if n := logs.FilterMessage("consolidating literal").Len(); n != 2 {
		t.Errorf("logged %d consolidations, want 2", n)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(Config{MinOccurrences: 1}, nil); err == nil {
		t.Errorf("New accepted min_occurrences 1")
	}
}
