package render

import (
	"strings"
	"testing"
	"unicode"
)

// tree returns a node exercising every kind except Array, whose pretty form
// carries a trailing comma.
func tree() Node {
	c := NewClass("Greeter").Extends("Base").Implements("Stringable", "Countable")
	c.Use("Loggable")
	c.Const("PREFIX", "'hi'")
	c.Has("name", "private").BindDefault("world")
	c.Can("__toString", "public").Return("string").
		Append(NewBlock().Return(NewCall("sprintf").Arg("%s %s", Raw("self::PREFIX"), Raw("$this->name"))))

	greet := c.CanStatic("make", "public").Return("static")
	greet.Accept("name").Type("string").BindDefault("world")
	greet.Accept("opts").Type("array").RawDefault("[]")
	greet.Append(
		Assignment(Raw("$fn"), NewFunction("").Use("name").Arg("x", "", "").Line("return $x . $name;")),
		NewBlock().Return(NewCall("new static").Arg(1, 2, 3, 4, Raw("$fn"))),
	)

	return NewBlock().AsFile().Namespace(`App\Greeting`).Space().Use(`App\Base`, "").Append(c)
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}

func TestRender_Idempotent(t *testing.T) {
	n := tree()

	for _, pretty := range []bool{false, true} {
		for indent := range 3 {
			a, b := n.Render(pretty, indent), n.Render(pretty, indent)
			if a != b {
				t.Errorf("pretty=%v indent=%d: renderings differ\nfirst:  %q\nsecond: %q", pretty, indent, a, b)
			}
		}
	}
}

func TestRender_CompactIgnoresIndent(t *testing.T) {
	n := tree()
	want := n.Render(false, 0)

	for _, indent := range []int{-3, 1, 5} {
		if got := n.Render(false, indent); got != want {
			t.Errorf("indent %d\nwant: %q\ngot:  %q", indent, want, got)
		}
	}
}

func TestRender_NegativeIndent(t *testing.T) {
	nodes := map[string]Node{
		"value":    Raw("$a"),
		"call":     NewCall("f").Arg(1, 2, 3, 4, 5),
		"block":    NewBlock().Line("$a;"),
		"function": NewFunction("").Arg("a", "", ""),
		"method":   NewMethod("m", "public", false),
		"class":    NewAnonymousClass().BindArgs(1),
		"array":    NewArray().List(1),
		"argument": NewArgument("a"),
	}

	for name, n := range nodes {
		t.Run(name, func(t *testing.T) {
			if got, want := n.Render(true, -2), n.Render(true, 0); got != want {
				t.Errorf("\nwant: %q\ngot:  %q", want, got)
			}
		})
	}
}

func TestRender_WhitespaceEquivalent(t *testing.T) {
	n := tree()

	compact := stripSpace(n.Render(false, 0))
	pretty := stripSpace(n.Render(true, 0))

	if compact != pretty {
		t.Errorf("\ncompact: %q\npretty:  %q", compact, pretty)
	}
}

func TestRender_ArityThreshold(t *testing.T) {
	four := NewCall("f").Arg(1, 2, 3, 4).Render(true, 0)
	if strings.Contains(four, "\n") {
		t.Errorf("four arguments should stay inline, got %q", four)
	}

	five := NewCall("f").Arg(1, 2, 3, 4, 5).Render(true, 0)
	if got := strings.Count(five, "\n"); got != 6 {
		t.Errorf("five arguments should span 7 lines, got %q", five)
	}
}
