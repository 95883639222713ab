package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBlock_Render(t *testing.T) {
	tests := []struct {
		name   string
		block  *Block
		pretty bool
		indent int
		want   string
	}{
		{
			name:  "empty compact",
			block: NewBlock(),
			want:  "",
		},
		{
			name:   "empty pretty",
			block:  NewBlock(),
			pretty: true,
			want:   "",
		},
		{
			name:  "simple",
			block: NewBlock().Line("$a=1;", "$b=$a;"),
			want:  "$a=1;$b=$a;",
		},
		{
			name:   "pretty",
			block:  NewBlock().Line("$a=1;", "$b=$a;"),
			pretty: true,
			want:   "$a=1;\n$b=$a;",
		},
		{
			name:   "pretty indent",
			block:  NewBlock().Line("$a=1;", "$b=$a;"),
			pretty: true,
			indent: 1,
			want:   "    $a=1;\n    $b=$a;",
		},
		{
			name:  "child compact",
			block: NewBlock().Line("$a=1;").Child(NewBlock().Line("$b=$a;")),
			want:  "$a=1;$b=$a;",
		},
		{
			name:   "child pretty",
			block:  NewBlock().Line("$a=1;").Child(NewBlock().Line("$b=$a;")),
			pretty: true,
			want:   "$a=1;\n    $b=$a;",
		},
		{
			name:   "child indent",
			block:  NewBlock().Line("$a=1;").Child(NewBlock().Line("$b=$a;")),
			pretty: true,
			indent: 1,
			want:   "    $a=1;\n        $b=$a;",
		},
		{
			name:   "append",
			block:  NewBlock().Line("$a=1;").Append(NewBlock().Line("$b=$a;")),
			pretty: true,
			indent: 1,
			want:   "    $a=1;\n    $b=$a;",
		},
		{
			name:   "blank lines carry no indent",
			block:  NewBlock().Line("a();").Space().Line("  ", "b();"),
			pretty: true,
			indent: 1,
			want:   "    a();\n\n\n    b();",
		},
		{
			name:  "namespace",
			block: NewBlock().Namespace(`A\B\C`),
			want:  `namespace A\B\C;`,
		},
		{
			name:  "use",
			block: NewBlock().Use(`A\B\C`, "").Use(`D\E\F`, "X"),
			want:  `use A\B\C;use D\E\F as X;`,
		},
		{
			name:  "return",
			block: NewBlock().Return(NewBlock().Line("1+1")),
			want:  "return 1+1;",
		},
		{
			name:   "return pretty",
			block:  NewBlock().Return(NewCall("f").Arg(1)),
			pretty: true,
			indent: 2,
			want:   "        return f(1);",
		},
		{
			name:   "assign",
			block:  NewBlock().Assign(Raw("$x"), Bind("y")),
			pretty: true,
			indent: 1,
			want:   "    $x = 'y';",
		},
		{
			name:  "stmt",
			block: NewBlock().Stmt(Raw("echo"), Bind(1)),
			want:  "echo 1;",
		},
		{
			name:  "require",
			block: NewBlock().Require("vendor/autoload.php"),
			want:  "require(__DIR__ . '/vendor/autoload.php');",
		},
		{
			name:  "require once",
			block: NewBlock().RequireOnce("vendor/autoload.php"),
			want:  "require_once(__DIR__ . '/vendor/autoload.php');",
		},
		{
			name:  "require absolute",
			block: NewBlock().RequireAbs("vendor/autoload.php"),
			want:  "require('vendor/autoload.php');",
		},
		{
			name:  "require once absolute",
			block: NewBlock().RequireOnceAbs("vendor/autoload.php"),
			want:  "require_once('vendor/autoload.php');",
		},
		{
			name:  "as file",
			block: NewBlock().RequireOnceAbs("vendor/autoload.php").AsFile(),
			want:  "<?php\nrequire_once('vendor/autoload.php');",
		},
		{
			name:  "as script",
			block: NewBlock().RequireOnceAbs("vendor/autoload.php").AsScript(),
			want:  "#!/usr/bin/env php\n<?php\nrequire_once('vendor/autoload.php');",
		},
		{
			name:  "script replaces file",
			block: NewBlock().Line("x();").AsFile().AsScript(),
			want:  "#!/usr/bin/env php\n<?php\nx();",
		},
		{
			name:   "file replaces script",
			block:  NewBlock().Line("x();").AsScript().AsFile(),
			pretty: true,
			indent: 1,
			want:   "<?php\n    x();",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.block.Render(tt.pretty, tt.indent)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBlock_IndentMonotonic(t *testing.T) {
	b := NewBlock().Line("$a = 1;", "", "if ($a) {", "    $a++;", "}")

	for level := range 4 {
		base := b.Render(true, level)
		next := b.Render(true, level+1)

		lines := strings.Split(base, "\n")
		for i, line := range lines {
			if strings.TrimSpace(line) != "" {
				lines[i] = unit + line
			}
		}

		if diff := cmp.Diff(strings.Join(lines, "\n"), next); diff != "" {
			t.Errorf("level %d (-want +got):\n%s", level+1, diff)
		}
	}
}

func TestBlock_Header(t *testing.T) {
	b := NewBlock()
	if b.Header() != HeaderNone {
		t.Errorf("want %v, got %v", HeaderNone, b.Header())
	}

	b.AsScript()

	if got := b.Header().String(); got != "script" {
		t.Errorf("want %q, got %q", "script", got)
	}

	if got := b.Render(false, 0); got != "#!/usr/bin/env php\n<?php\n" {
		t.Errorf("unexpected empty script rendering %q", got)
	}
}
