package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/phpgen/log"
	"github.com/ardnew/phpgen/profile"
)

// Init writes the YAML configuration file with the current values of the
// global flags.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) error {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		panic("internal error: kong context undefined")
	}

	path, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	attr := slog.String("file", path)

	if _, err := os.Stat(path); err == nil && !i.Force {
		return ErrWriteConfig.With(attr, slog.Bool("exists", true)).Wrap(ErrFileExists)
	}

	doc, err := yaml.MarshalWithOptions(i.values(ctx), yaml.Indent(2))
	if err != nil {
		return ErrWriteConfig.With(attr).Wrap(err)
	}

	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return ErrWriteConfig.With(attr).Wrap(err)
	}

	if err := os.WriteFile(path, doc, fileMode); err != nil {
		return ErrWriteConfig.With(attr).Wrap(err)
	}

	log.DebugContext(ctx, "initialized configuration file", attr)

	return nil
}

// values collects the global flags in declaration order, skipping help,
// hidden and profiling flags and empty values.
func (*Init) values(ctx context.Context) yaml.MapSlice {
	ktx := kongContextFrom(ctx)

	ignore := []string{"help", profile.Tag}

	var values yaml.MapSlice

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(ignore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		var value any

		switch v := ktx.FlagValue(flag).(type) {
		case nil:
			continue
		case string:
			if v == "" {
				continue
			}

			value = v
		case bool, int, int64, uint, uint64, float64, []string:
			value = v
		case fmt.Stringer:
			value = v.String()
		default:
			value = fmt.Sprint(v)
		}

		values = append(values, yaml.MapItem{Key: flag.Name, Value: value})
	}

	return values
}
