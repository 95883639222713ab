package cmd

import "github.com/ardnew/phpgen/render"

// Error is the structured error returned by commands.
type Error = render.Error

var (
	ErrReadInput   = render.NewError("read input")
	ErrWriteOutput = render.NewError("write output")
	ErrDiffOutput  = render.NewError("--diff requires --output")
	ErrSetValue    = render.NewError("invalid --set value")
	ErrWriteConfig = render.NewError("write configuration file")
	ErrFileExists  = render.NewError("file exists (use --force to overwrite)")
)
