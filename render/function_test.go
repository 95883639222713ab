package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFunction_Render(t *testing.T) {
	tests := []struct {
		name   string
		fn     func() *Function
		pretty bool
		indent int
		want   string
	}{
		{
			name: "anonymous",
			fn:   func() *Function { return NewFunction("") },
			want: "function () {}",
		},
		{
			name: "named",
			fn:   func() *Function { return NewFunction("f") },
			want: "function f() {}",
		},
		{
			name: "arguments",
			fn: func() *Function {
				return NewFunction("").
					Arg("arg1", "", "").
					Arg("$arg2", "", "").
					Arg("arg3", "string", "").
					Arg("arg4", "", "null").
					Arg("arg5", "string", `"test"`)
			},
			want: `function ($arg1,$arg2,string $arg3,$arg4 = null,string $arg5 = "test") {}`,
		},
		{
			name: "return type",
			fn:   func() *Function { return NewFunction("").Return("string") },
			want: "function (): string {}",
		},
		{
			name: "body",
			fn: func() *Function {
				return NewFunction("").Line("$x = 1;", "return $x;")
			},
			want: "function () {$x = 1;return $x;}",
		},
		{
			name: "body pretty",
			fn: func() *Function {
				return NewFunction("").Line("$x = 1;", "return $x;")
			},
			pretty: true,
			want:   "function ()\n{\n    $x = 1;\n    return $x;\n}",
		},
		{
			name:   "empty body pretty",
			fn:     func() *Function { return NewFunction("f") },
			pretty: true,
			want:   "function f()\n{\n\n}",
		},
		{
			name: "captures",
			fn: func() *Function {
				return NewFunction("").Use("x", "$y").Line("return $x;")
			},
			want: "function () use ($x,$y) {return $x;}",
		},
		{
			name: "named function ignores captures",
			fn: func() *Function {
				return NewFunction("g").Use("x")
			},
			want: "function g() {}",
		},
		{
			name: "pretty nested",
			fn: func() *Function {
				f := NewFunction("").Use("x").Return("int")
				f.Accept("a").Type("int")
				f.Accept("b").BindDefault(2)

				return f.Line("return $a + $b + $x;")
			},
			pretty: true,
			indent: 1,
			want: `    function (
        int $a,
        $b = 2
    ) use (
        $x
    ): int
    {
        return $a + $b + $x;
    }`,
		},
		{
			name: "compact ignores indent",
			fn: func() *Function {
				return NewFunction("").Arg("a", "", "").Line("return $a;")
			},
			indent: 3,
			want:   "function ($a) {return $a;}",
		},
		{
			name: "nested node body",
			fn: func() *Function {
				return NewFunction("f").Append(NewBlock().Return(NewCall("g").Arg(1)))
			},
			pretty: true,
			want:   "function f()\n{\n    return g(1);\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn().Render(tt.pretty, tt.indent)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFunction_Accessors(t *testing.T) {
	f := NewFunction("")
	if !f.IsAnonymous() {
		t.Error("want anonymous function")
	}

	f.Accept("a").Type("int")

	if n := len(f.Params()); n != 1 {
		t.Fatalf("want 1 param, got %d", n)
	}

	if got := f.Params()[0].Name(); got != "$a" {
		t.Errorf("want: %q\ngot:  %q", "$a", got)
	}

	f.Body().Line("return $a;")

	if f.Body().Len() != 1 {
		t.Errorf("want 1 body entry, got %d", f.Body().Len())
	}
}
