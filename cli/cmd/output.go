package cmd

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	godiffpatch "github.com/sourcegraph/go-diff-patch"
	"github.com/zeebo/xxh3"

	"github.com/ardnew/phpgen/log"
)

const (
	fileMode fs.FileMode = 0o644
	dirMode  fs.FileMode = 0o755
)

// Output selects where generated code goes.
type Output struct {
	Output string `help:"Write to FILE instead of stdout. The file is only rewritten when its content changes." placeholder:"FILE" short:"o" type:"path"`
	Diff   bool   `help:"Print a unified diff against the --output file instead of writing it."`
	Color  bool   `default:"true" help:"Colorize --diff output on terminals." negatable:""`
}

// emit delivers code to the configured destination.
func (o Output) emit(ctx context.Context, code string) error {
	out := streamsFrom(ctx).out

	if o.Output == "" {
		if o.Diff {
			return ErrDiffOutput
		}

		if _, err := io.WriteString(out, code); err != nil {
			return ErrWriteOutput.Wrap(err)
		}

		return nil
	}

	attr := slog.String("path", o.Output)

	if o.Diff {
		old, err := readExisting(o.Output)
		if err != nil {
			return ErrReadInput.Wrap(err).With(attr)
		}

		if old == code {
			log.DebugContext(ctx, "no differences", attr)

			return nil
		}

		patch := godiffpatch.GeneratePatch(o.Output, old, code)
		if err := writeDiff(out, patch, o.Color); err != nil {
			return ErrWriteOutput.Wrap(err).With(attr)
		}

		return nil
	}

	changed, err := writeChanged(o.Output, code)
	if err != nil {
		return ErrWriteOutput.Wrap(err).With(attr)
	}

	if changed {
		log.InfoContext(ctx, "wrote file", attr, slog.Int("bytes", len(code)))
	} else {
		log.DebugContext(ctx, "file unchanged", attr)
	}

	return nil
}

// readExisting returns the content of path, or "" if it does not exist.
func readExisting(path string) (string, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}

	return string(b), err
}

// writeChanged writes code to path unless the file already holds content
// with the same xxh3 digest. It reports whether the file was written.
func writeChanged(path, code string) (bool, error) {
	old, err := os.ReadFile(path)

	switch {
	case err == nil:
		if xxh3.Hash(old) == xxh3.HashString(code) {
			return false, nil
		}
	case !errors.Is(err, fs.ErrNotExist):
		return false, err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return false, err
	}

	if err := os.WriteFile(path, []byte(code), fileMode); err != nil {
		return false, err
	}

	return true, nil
}

// writeDiff copies a unified diff to w, styling each line by its prefix
// when color is enabled and w is a terminal.
func writeDiff(w io.Writer, patch string, color bool) error {
	if !color {
		_, err := io.WriteString(w, patch)

		return err
	}

	r := lipgloss.NewRenderer(w)
	var (
		header = r.NewStyle().Bold(true)
		hunk   = r.NewStyle().Foreground(lipgloss.Color("6"))
		added  = r.NewStyle().Foreground(lipgloss.Color("2"))
		erased = r.NewStyle().Foreground(lipgloss.Color("1"))
		plain  = r.NewStyle()
	)

	var sb strings.Builder

	for line := range strings.Lines(patch) {
		text := strings.TrimSuffix(line, "\n")

		style := plain

		switch {
		case strings.HasPrefix(text, "+++"), strings.HasPrefix(text, "---"),
			strings.HasPrefix(text, "diff "):
			style = header
		case strings.HasPrefix(text, "@@"):
			style = hunk
		case strings.HasPrefix(text, "+"):
			style = added
		case strings.HasPrefix(text, "-"):
			style = erased
		}

		sb.WriteString(style.Render(text))

		if len(text) < len(line) {
			sb.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, sb.String())

	return err
}
