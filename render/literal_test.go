package render

import (
	"math"
	"testing"
)

func TestLiteral(t *testing.T) {
	answer := 42

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "NULL"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"int", -3, "-3"},
		{"uint8", uint8(7), "7"},
		{"float", 1.5, "1.5"},
		{"integral float", 2.0, "2.0"},
		{"float32", float32(0.25), "0.25"},
		{"inf", math.Inf(1), "INF"},
		{"negative inf", math.Inf(-1), "-INF"},
		{"nan", math.NaN(), "NAN"},
		{"string", "plain", "'plain'"},
		{"escapes", `it's a \ test`, `'it\'s a \\ test'`},
		{"pointer", &answer, "42"},
		{"nil pointer", (*int)(nil), "NULL"},
		{"slice", []int{1, 2}, "[0 => 1, 1 => 2]"},
		{"nil slice", []string(nil), "NULL"},
		{"array", [2]string{"a", "b"}, "[0 => 'a', 1 => 'b']"},
		{"mixed slice", []any{nil, "a"}, "[0 => NULL, 1 => 'a']"},
		{"string map", map[string]int{"b": 2, "a": 1}, "['a' => 1, 'b' => 2]"},
		{"int map", map[int]string{10: "x", 2: "y"}, "[2 => 'y', 10 => 'x']"},
		{"nested", map[string]any{"k": []int{1}}, "['k' => [0 => 1]]"},
		{"fallback", struct{ A int }{1}, "'{1}'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Literal(tt.in); got != tt.want {
				t.Errorf("want %q, got %q", tt.want, got)
			}
		})
	}
}
