package cmd

import (
	"context"
	"log/slog"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/phpgen/log"
	"github.com/ardnew/phpgen/manifest"
)

// Render generates PHP source from a YAML manifest.
type Render struct {
	Output `embed:""`

	Pretty bool              `default:"true" help:"Pretty-print the generated code." negatable:""`
	Indent int               `default:"0"    help:"Base indentation level."          short:"i"`
	Set    map[string]string `help:"Override a manifest variable. VALUE is parsed as YAML." placeholder:"KEY=VALUE" short:"D"`

	Manifest string `arg:"" default:"-" help:"Manifest file or '-' for stdin." name:"manifest"`
}

// Run executes the render command.
func (r *Render) Run(ctx context.Context) error {
	var (
		m   *manifest.Manifest
		err error
	)

	if r.Manifest == stdinSource {
		m, err = manifest.Parse(ctx, streamsFrom(ctx).in)
	} else {
		m, err = manifest.Load(ctx, r.Manifest)
	}

	if err != nil {
		return err
	}

	for key, text := range r.Set {
		var value any
		if err := yaml.Unmarshal([]byte(text), &value); err != nil {
			return ErrSetValue.Wrap(err).With(slog.String("key", key))
		}

		m.Set(key, value)
	}

	b, err := m.Build()
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "rendering manifest",
		slog.String("source", r.Manifest),
		slog.Bool("pretty", r.Pretty),
		slog.Int("indent", r.Indent),
	)

	return r.emit(ctx, b.Render(r.Pretty, r.Indent)+"\n")
}
