package manifest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/klauspost/readahead"

	"github.com/ardnew/phpgen/log"
	"github.com/ardnew/phpgen/render"
)

// Manifest is the decoded description of one PHP file.
type Manifest struct {
	Header     string         `yaml:"header"`
	Namespace  string         `yaml:"namespace"`
	Uses       []Use          `yaml:"uses"`
	Requires   []Require      `yaml:"requires"`
	Vars       map[string]any `yaml:"vars"`
	Functions  []Function     `yaml:"functions"`
	Classes    []Class        `yaml:"classes"`
	Statements []string       `yaml:"statements"`
}

// Use imports a class, optionally under an alias.
type Use struct {
	Class string `yaml:"class"`
	As    string `yaml:"as"`
}

// Require includes another PHP file. Relative paths are resolved against
// the generated file's directory unless Absolute is set.
type Require struct {
	Path     string `yaml:"path"`
	Once     bool   `yaml:"once"`
	Absolute bool   `yaml:"absolute"`
}

// Param is a function or method parameter.
type Param struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Default *Value `yaml:"default"`
}

// Function is a top-level function declaration.
type Function struct {
	Name    string   `yaml:"name"`
	Params  []Param  `yaml:"params"`
	Returns string   `yaml:"returns"`
	Body    []string `yaml:"body"`
}

// Class is a class declaration.
type Class struct {
	Name       string     `yaml:"name"`
	Extends    string     `yaml:"extends"`
	Implements []string   `yaml:"implements"`
	Traits     []string   `yaml:"traits"`
	Constants  []Constant `yaml:"constants"`
	Properties []Property `yaml:"properties"`
	Methods    []Method   `yaml:"methods"`
}

// Constant is a class constant.
type Constant struct {
	Name  string `yaml:"name"`
	Value Value  `yaml:"value"`
}

// Property is a class property. Visibility defaults to public.
type Property struct {
	Name       string `yaml:"name"`
	Visibility string `yaml:"visibility"`
	Static     bool   `yaml:"static"`
	Default    *Value `yaml:"default"`
}

// Method is a class method. Visibility defaults to public.
type Method struct {
	Name       string   `yaml:"name"`
	Visibility string   `yaml:"visibility"`
	Static     bool     `yaml:"static"`
	Params     []Param  `yaml:"params"`
	Returns    string   `yaml:"returns"`
	Body       []string `yaml:"body"`
}

// Parse decodes a manifest from r. Unknown fields are rejected. An empty
// document yields an empty manifest.
func Parse(ctx context.Context, r io.Reader) (*Manifest, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	dec := yaml.NewDecoder(ra, yaml.UseOrderedMap(), yaml.DisallowUnknownField())

	var m Manifest

	if err := dec.DecodeContext(ctx, &m); err != nil && !errors.Is(err, io.EOF) {
		return nil, ErrManifest.Wrap(err)
	}

	log.TraceContext(ctx, "parsed manifest",
		slog.String("namespace", m.Namespace),
		slog.Int("functions", len(m.Functions)),
		slog.Int("classes", len(m.Classes)),
	)

	return &m, nil
}

// Load parses the manifest file at path.
func Load(ctx context.Context, path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrRead.Wrap(err).With(slog.String("path", path))
	}
	defer f.Close()

	m, err := Parse(ctx, f)
	if err != nil {
		var e *render.Error
		if errors.As(err, &e) {
			return nil, e.With(slog.String("path", path))
		}

		return nil, err
	}

	return m, nil
}
