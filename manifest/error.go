package manifest

import "github.com/ardnew/phpgen/render"

var (
	ErrManifest = render.NewError("invalid manifest")
	ErrValue    = render.NewError("invalid value")
	ErrEval     = render.NewError("invalid expression")
	ErrRead     = render.NewError("read manifest")
)
