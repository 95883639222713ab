package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	streamsKey struct{}
	streams    struct {
		in  io.Reader
		out io.Writer
	}
)

// WithStreams returns a new context.Context whose commands read input from
// in and write output to out. A nil stream keeps the standard one.
func WithStreams(ctx context.Context, in io.Reader, out io.Writer) context.Context {
	return context.WithValue(ctx, streamsKey{}, streams{in: in, out: out})
}

func streamsFrom(ctx context.Context) streams {
	s, _ := ctx.Value(streamsKey{}).(streams)
	if s.in == nil {
		s.in = os.Stdin
	}

	if s.out == nil {
		s.out = os.Stdout
	}

	return s
}

// stdinSource names standard input in place of a file path.
const stdinSource = "-"

// readSource returns the content of path, or of the input stream if path is
// [stdinSource].
func readSource(ctx context.Context, path string) ([]byte, error) {
	if path == stdinSource {
		return io.ReadAll(streamsFrom(ctx).in)
	}

	return os.ReadFile(path)
}
