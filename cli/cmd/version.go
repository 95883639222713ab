package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/phpgen/pkg"
)

// Version prints the program version.
type Version struct {
	Verbose bool `help:"Also print the authors." short:"v"`
}

// Run executes the version command.
func (v *Version) Run(ctx context.Context) error {
	out := streamsFrom(ctx).out

	if _, err := fmt.Fprintln(out, pkg.Name, pkg.Version); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	if !v.Verbose {
		return nil
	}

	for _, a := range pkg.Author {
		if _, err := fmt.Fprintln(out, a); err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	return nil
}
