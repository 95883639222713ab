// Package openapi generates PHP data classes from the component schemas
// of an OpenAPI 3 document.
//
// Each schema becomes a class with one public property per schema
// property, in name order. Schema defaults become property defaults, and
// required properties become typed parameters of a constructor that
// assigns them.
package openapi

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/ardnew/phpgen/log"
	"github.com/ardnew/phpgen/render"
)

var (
	ErrDocument  = render.NewError("invalid OpenAPI document")
	ErrNoSchemas = render.NewError("no component schemas")
)

const refPrefix = "#/components/schemas/"

type config struct {
	namespace string
	parent    string
	faces     []string
}

// Option configures class generation.
type Option func(config) config

// WithNamespace sets the namespace declared by [File].
func WithNamespace(ns string) Option {
	return func(c config) config {
		c.namespace = ns

		return c
	}
}

// WithParent makes every generated class extend class.
func WithParent(class string) Option {
	return func(c config) config {
		c.parent = class

		return c
	}
}

// WithInterfaces makes every generated class implement faces.
func WithInterfaces(faces ...string) Option {
	return func(c config) config {
		c.faces = append(slices.Clip(c.faces), faces...)

		return c
	}
}

// Classes returns one class per component schema of the OpenAPI document
// in data, which may be JSON or YAML. Classes are ordered by schema name.
func Classes(ctx context.Context, data []byte, opts ...Option) ([]*render.Class, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var cfg config
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	loader := &openapi3.Loader{Context: ctx}

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, ErrDocument.Wrap(err)
	}

	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, ErrNoSchemas
	}

	schemas := doc.Components.Schemas
	classes := make([]*render.Class, 0, len(schemas))

	for _, name := range slices.Sorted(maps.Keys(schemas)) {
		ref := schemas[name]
		if ref == nil || ref.Value == nil {
			log.WarnContext(ctx, "skip unresolved schema", slog.String("schema", name))

			continue
		}

		c := class(className(name), ref.Value, cfg)

		log.DebugContext(ctx, "generated class",
			slog.String("schema", name),
			slog.String("class", c.Name()),
			slog.Int("properties", len(ref.Value.Properties)),
		)

		classes = append(classes, c)
	}

	return classes, nil
}

// File returns a PHP file declaring the classes generated by [Classes].
func File(ctx context.Context, data []byte, opts ...Option) (*render.Block, error) {
	classes, err := Classes(ctx, data, opts...)
	if err != nil {
		return nil, err
	}

	var cfg config
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	b := render.NewBlock().AsFile()

	if cfg.namespace != "" {
		b.Namespace(cfg.namespace)
	}

	for _, c := range classes {
		if b.Len() > 0 {
			b.Space()
		}

		b.Append(c)
	}

	return b, nil
}

func class(name string, s *openapi3.Schema, cfg config) *render.Class {
	c := render.NewClass(name).Extends(cfg.parent).Implements(cfg.faces...)

	props := slices.Sorted(maps.Keys(s.Properties))
	vars := varNames(props)

	for _, prop := range props {
		arg := c.Has(vars[prop], "public")

		if ref := s.Properties[prop]; ref != nil && ref.Value != nil && ref.Value.Default != nil {
			arg.BindDefault(ref.Value.Default)
		}
	}

	var required []string

	for _, prop := range props {
		if slices.Contains(s.Required, prop) {
			required = append(required, prop)
		}
	}

	if len(required) == 0 {
		return c
	}

	ctor := c.Can("__construct", "public")

	for _, prop := range required {
		v := vars[prop]
		ctor.Accept(v).Type(phpType(s.Properties[prop]))
		ctor.Line("$this->" + v + " = $" + v + ";")
	}

	return c
}

// phpType maps a schema to a PHP type declaration. Schemas that allow more
// than one type map to "" (no declaration). Nullable schemas map to
// nullable types.
func phpType(ref *openapi3.SchemaRef) string {
	if ref == nil || ref.Value == nil {
		return ""
	}

	nullable := ref.Value.Nullable

	var types []string

	if ref.Value.Type != nil {
		for _, t := range ref.Value.Type.Slice() {
			if t == openapi3.TypeNull {
				nullable = true
			} else {
				types = append(types, t)
			}
		}
	}

	var typ string

	switch {
	case strings.HasPrefix(ref.Ref, refPrefix):
		typ = className(strings.TrimPrefix(ref.Ref, refPrefix))
	case len(types) != 1:
		return ""
	default:
		switch types[0] {
		case openapi3.TypeString:
			typ = "string"
		case openapi3.TypeInteger:
			typ = "int"
		case openapi3.TypeNumber:
			typ = "float"
		case openapi3.TypeBoolean:
			typ = "bool"
		case openapi3.TypeArray, openapi3.TypeObject:
			typ = "array"
		default:
			return ""
		}
	}

	if nullable {
		return "?" + typ
	}

	return typ
}

// className converts a schema name to a PHP class name: words separated by
// anything but letters and digits are joined in PascalCase.
func className(name string) string {
	var sb strings.Builder

	for _, w := range strings.FieldsFunc(name, notIdent) {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		sb.WriteString(string(r))
	}

	s := sb.String()
	if s == "" || unicode.IsDigit([]rune(s)[0]) {
		s = "Schema" + s
	}

	return s
}

// varName converts a property name to a PHP variable name by replacing
// invalid characters with underscores.
func varName(name string) string {
	s := strings.Map(func(r rune) rune {
		if notIdent(r) {
			return '_'
		}

		return r
	}, name)

	if s == "" || unicode.IsDigit([]rune(s)[0]) {
		s = "_" + s
	}

	return s
}

// varNames maps each property name to a distinct variable name. When two
// properties map to the same name, the later one in props gets a numeric
// suffix.
func varNames(props []string) map[string]string {
	vars := make(map[string]string, len(props))
	taken := make(map[string]bool, len(props))

	for _, prop := range props {
		base := varName(prop)

		v := base
		for n := 2; taken[v]; n++ {
			v = base + "_" + strconv.Itoa(n)
		}

		taken[v] = true
		vars[prop] = v
	}

	return vars
}

func notIdent(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
