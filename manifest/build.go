package manifest

import (
	"cmp"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/phpgen/render"
)

const defaultVisibility = "public"

type builder struct {
	m *Manifest
}

// env returns the expression environment built from the current vars.
func (b *builder) env() map[string]any {
	env, _ := native(b.m.Vars).(map[string]any)
	if env == nil {
		env = map[string]any{}
	}

	return env
}

// Set assigns a variable available to eval values. Blocks built earlier
// see the new value the next time they render.
func (m *Manifest) Set(name string, value any) {
	if m.Vars == nil {
		m.Vars = map[string]any{}
	}

	m.Vars[name] = value
}

// Build returns the PHP file described by m.
//
// Sections are emitted in a fixed order: namespace, uses, requires,
// functions, classes, statements. In pretty mode they are separated by
// blank lines.
func (m *Manifest) Build() (*render.Block, error) {
	b := &builder{m: m}
	out := render.NewBlock()

	switch strings.ToLower(strings.TrimSpace(m.Header)) {
	case "", "file":
		out.AsFile()
	case "script":
		out.AsScript()
	case "none":
	default:
		return nil, ErrManifest.With(slog.String("header", m.Header))
	}

	section := func() {
		if out.Len() > 0 {
			out.Space()
		}
	}

	if m.Namespace != "" {
		out.Namespace(m.Namespace)
	}

	if len(m.Uses) > 0 {
		section()

		for _, u := range m.Uses {
			out.Use(u.Class, u.As)
		}
	}

	if len(m.Requires) > 0 {
		section()

		for _, r := range m.Requires {
			switch {
			case r.Once && r.Absolute:
				out.RequireOnceAbs(r.Path)
			case r.Once:
				out.RequireOnce(r.Path)
			case r.Absolute:
				out.RequireAbs(r.Path)
			default:
				out.Require(r.Path)
			}
		}
	}

	for i := range m.Functions {
		fn, err := b.function(&m.Functions[i], fmt.Sprintf("functions[%d]", i))
		if err != nil {
			return nil, err
		}

		section()
		out.Append(fn)
	}

	for i := range m.Classes {
		c, err := b.class(&m.Classes[i], fmt.Sprintf("classes[%d]", i))
		if err != nil {
			return nil, err
		}

		section()
		out.Append(c)
	}

	if len(m.Statements) > 0 {
		section()
		out.Line(m.Statements...)
	}

	return out, nil
}

func (b *builder) function(f *Function, at string) (*render.Function, error) {
	if f.Name == "" {
		return nil, ErrManifest.With(
			slog.String("at", at),
			slog.String("issue", "function without name"),
		)
	}

	fn := render.NewFunction(f.Name).Return(f.Returns).Line(f.Body...)

	if err := b.params(fn, f.Params, at); err != nil {
		return nil, err
	}

	return fn, nil
}

func (b *builder) params(fn *render.Function, params []Param, at string) error {
	for i, p := range params {
		arg := fn.Accept(p.Name).Type(p.Type)

		if p.Default != nil {
			n, err := b.node(p.Default, fmt.Sprintf("%s.params[%d].default", at, i))
			if err != nil {
				return err
			}

			arg.SetDefault(n)
		}
	}

	return nil
}

func (b *builder) class(c *Class, at string) (*render.Class, error) {
	if c.Name == "" {
		return nil, ErrManifest.With(
			slog.String("at", at),
			slog.String("issue", "class without name"),
		)
	}

	out := render.NewClass(c.Name).
		Extends(c.Extends).
		Implements(c.Implements...).
		Use(c.Traits...)

	for i := range c.Constants {
		k := &c.Constants[i]

		n, err := b.node(&k.Value, fmt.Sprintf("%s.constants[%d].value", at, i))
		if err != nil {
			return nil, err
		}

		// Constants are declarations, so their value is fixed here.
		out.Const(k.Name, n.Render(false, 0))
	}

	for i, p := range c.Properties {
		vis := cmp.Or(p.Visibility, defaultVisibility)

		var arg *render.Argument
		if p.Static {
			arg = out.HasStatic(p.Name, vis)
		} else {
			arg = out.Has(p.Name, vis)
		}

		if p.Default != nil {
			n, err := b.node(p.Default, fmt.Sprintf("%s.properties[%d].default", at, i))
			if err != nil {
				return nil, err
			}

			arg.SetDefault(n)
		}
	}

	for i, m := range c.Methods {
		vis := cmp.Or(m.Visibility, defaultVisibility)

		var meth *render.Method
		if m.Static {
			meth = out.CanStatic(m.Name, vis)
		} else {
			meth = out.Can(m.Name, vis)
		}

		meth.Return(m.Returns).Line(m.Body...)

		if err := b.params(meth.Function(), m.Params, fmt.Sprintf("%s.methods[%d]", at, i)); err != nil {
			return nil, err
		}
	}

	return out, nil
}
