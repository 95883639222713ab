package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/phpgen/log"
	"github.com/ardnew/phpgen/openapi"
)

// OpenAPI generates PHP model classes from the schemas of an OpenAPI 3
// document.
type OpenAPI struct {
	Output `embed:""`

	Namespace  string   `help:"Namespace of the generated file."                    short:"n"`
	Extends    string   `help:"Parent class of every generated class."`
	Implements []string `help:"Interfaces implemented by every generated class."    sep:","`
	Pretty     bool     `default:"true" help:"Pretty-print the generated code." negatable:""`

	Spec string `arg:"" help:"OpenAPI document (JSON or YAML) or '-' for stdin." name:"spec"`
}

// Run executes the openapi command.
func (o *OpenAPI) Run(ctx context.Context) error {
	data, err := readSource(ctx, o.Spec)
	if err != nil {
		return ErrReadInput.Wrap(err).With(slog.String("path", o.Spec))
	}

	b, err := openapi.File(ctx, data,
		openapi.WithNamespace(o.Namespace),
		openapi.WithParent(o.Extends),
		openapi.WithInterfaces(o.Implements...),
	)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "rendering openapi document",
		slog.String("source", o.Spec),
		slog.String("namespace", o.Namespace),
	)

	return o.emit(ctx, b.Render(o.Pretty, 0)+"\n")
}
