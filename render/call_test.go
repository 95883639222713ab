package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCall_Render(t *testing.T) {
	tests := []struct {
		name     string
		call     *Call
		compact  string
		pretty   string
		indented string
	}{
		{
			name:     "no arguments",
			call:     NewCall("a"),
			compact:  "a()",
			pretty:   "a()",
			indented: "    a()",
		},
		{
			name:     "one argument",
			call:     NewCall("a").Arg(1),
			compact:  "a(1)",
			pretty:   "a(1)",
			indented: "    a(1)",
		},
		{
			name:     "raw argument",
			call:     NewCall("a").Arg(1).RawArg(`"asd"`),
			compact:  `a(1, "asd")`,
			pretty:   `a(1, "asd")`,
			indented: `    a(1, "asd")`,
		},
		{
			name:     "bound arguments",
			call:     NewCall("a").Arg(1, "asd"),
			compact:  "a(1, 'asd')",
			pretty:   "a(1, 'asd')",
			indented: "    a(1, 'asd')",
		},
		{
			name:     "nested call",
			call:     NewCall("a").Arg(NewCall("var_export").RawArg("$a", "true")),
			compact:  "a(var_export($a, true))",
			pretty:   "a(var_export($a, true))",
			indented: "    a(var_export($a, true))",
		},
		{
			name:     "four arguments stay inline",
			call:     NewCall("a").Arg(1, 2, 3, 4),
			compact:  "a(1, 2, 3, 4)",
			pretty:   "a(1, 2, 3, 4)",
			indented: "    a(1, 2, 3, 4)",
		},
		{
			name:    "five arguments break",
			call:    NewCall("a").Arg(1).RawArg(`"asd"`).Arg(2, 3, 4),
			compact: `a(1, "asd", 2, 3, 4)`,
			pretty: `a(
    1,
    "asd",
    2,
    3,
    4
)`,
			indented: `    a(
        1,
        "asd",
        2,
        3,
        4
    )`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.compact, tt.call.Render(false, 0)); diff != "" {
				t.Errorf("compact mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tt.pretty, tt.call.Render(true, 0)); diff != "" {
				t.Errorf("pretty mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tt.indented, tt.call.Render(true, 1)); diff != "" {
				t.Errorf("indented mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCall_NestedMultiline(t *testing.T) {
	inner := NewCall("g").Arg(1, 2, 3, 4, 5)
	outer := NewCall("f").SetArg(inner).Arg(2, 3, 4, 5)

	want := `f(
    g(
        1,
        2,
        3,
        4,
        5
    ),
    2,
    3,
    4,
    5
)`

	if diff := cmp.Diff(want, outer.Render(true, 0)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCall_Accessors(t *testing.T) {
	c := NewCall("strlen").RawArg("$s")

	if c.Name() != "strlen" {
		t.Errorf("want name %q, got %q", "strlen", c.Name())
	}

	if c.Len() != 1 {
		t.Errorf("want 1 argument, got %d", c.Len())
	}
}
