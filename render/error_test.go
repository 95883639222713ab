package render

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

func TestError_String(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"message", NewError("bad"), "bad"},
		{"cause", NewError("bad").Wrap(io.EOF), "bad: EOF"},
		{
			"context",
			NewError("bad").With(slog.String("class", "User"), slog.Int("n", 2)),
			"bad (class=User n=2)",
		},
		{
			"cause and context",
			NewError("bad").With(slog.String("path", "a.yaml")).Wrap(io.EOF),
			"bad: EOF (path=a.yaml)",
		},
		{"cause only", new(Error).Wrap(io.EOF), "EOF"},
		{"empty", new(Error), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("\nwant: %q\ngot:  %q", tt.want, got)
			}
		})
	}
}

func TestError_WithDoesNotAlias(t *testing.T) {
	base := NewError("bad").With(slog.String("a", "1"))
	x := base.With(slog.String("b", "2"))
	y := base.With(slog.String("c", "3"))

	if got, want := x.Error(), "bad (a=1 b=2)"; got != want {
		t.Errorf("\nwant: %q\ngot:  %q", want, got)
	}

	if got, want := y.Error(), "bad (a=1 c=3)"; got != want {
		t.Errorf("\nwant: %q\ngot:  %q", want, got)
	}

	if !errors.Is(y, NewError("bad")) || errors.Is(y, NewError("other")) {
		t.Error("want errors to match by message")
	}
}
