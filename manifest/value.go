package manifest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/phpgen/log"
	"github.com/ardnew/phpgen/render"
)

// Value kinds, named by their YAML keys.
const (
	kindRaw  = "raw"
	kindBind = "bind"
	kindEval = "eval"
	kindCall = "call"
)

// Value is a PHP expression in a manifest. Exactly one kind must be set.
type Value struct {
	Raw  string `yaml:"raw"`
	Bind any    `yaml:"bind"`
	Eval string `yaml:"eval"`
	Call *Call  `yaml:"call"`

	keys []string // kinds present in the decoded mapping
}

// Call is a function call whose arguments are values.
type Call struct {
	Name string  `yaml:"name"`
	Args []Value `yaml:"args"`
}

// UnmarshalYAML decodes the mapping form of a value, or any other YAML value
// as a literal.
func (v *Value) UnmarshalYAML(_ context.Context, unmarshal func(any) error) error {
	var node any
	if err := unmarshal(&node); err != nil {
		return err
	}

	items, ok := node.(yaml.MapSlice)
	if !ok {
		*v = Value{Bind: node, keys: []string{kindBind}}

		return nil
	}

	var aux struct {
		Raw  string `yaml:"raw"`
		Bind any    `yaml:"bind"`
		Eval string `yaml:"eval"`
		Call *Call  `yaml:"call"`
	}

	if err := unmarshal(&aux); err != nil {
		return err
	}

	*v = Value{
		Raw:  aux.Raw,
		Bind: aux.Bind,
		Eval: aux.Eval,
		Call: aux.Call,
		keys: make([]string, 0, len(items)),
	}

	for _, item := range items {
		v.keys = append(v.keys, fmt.Sprint(item.Key))
	}

	return nil
}

// kinds returns the kinds that are set. Values built in Go rather than
// decoded report the non-zero fields.
func (v *Value) kinds() []string {
	if v.keys != nil {
		return v.keys
	}

	var k []string

	if v.Raw != "" {
		k = append(k, kindRaw)
	}

	if v.Bind != nil {
		k = append(k, kindBind)
	}

	if v.Eval != "" {
		k = append(k, kindEval)
	}

	if v.Call != nil {
		k = append(k, kindCall)
	}

	return k
}

// node converts v into a render node. at locates v in the manifest for
// error reporting.
func (b *builder) node(v *Value, at string) (render.Node, error) {
	kinds := v.kinds()
	if len(kinds) != 1 {
		return nil, ErrValue.With(
			slog.String("at", at),
			slog.Any("kinds", kinds),
		)
	}

	switch kinds[0] {
	case kindRaw:
		return render.Raw(v.Raw), nil

	case kindBind:
		return bindNode(v.Bind), nil

	case kindEval:
		return b.eval(v.Eval, at)

	case kindCall:
		if v.Call == nil || v.Call.Name == "" {
			return nil, ErrValue.With(
				slog.String("at", at),
				slog.String("issue", "call without name"),
			)
		}

		call := render.NewCall(v.Call.Name)

		for i := range v.Call.Args {
			arg, err := b.node(&v.Call.Args[i], fmt.Sprintf("%s.call.args[%d]", at, i))
			if err != nil {
				return nil, err
			}

			call.SetArg(arg)
		}

		return call, nil

	default:
		return nil, ErrValue.With(
			slog.String("at", at),
			slog.String("kind", kinds[0]),
		)
	}
}

// eval compiles source against the current vars and checks that it runs.
// The returned node evaluates it again each time it renders.
func (b *builder) eval(source, at string) (render.Node, error) {
	env := b.env()

	prog, err := expr.Compile(source, expr.Env(env))
	if err != nil {
		return nil, ErrEval.Wrap(err).With(
			slog.String("at", at),
			slog.String("source", source),
		)
	}

	if _, err := vm.Run(prog, env); err != nil {
		return nil, ErrEval.Wrap(err).With(
			slog.String("at", at),
			slog.String("source", source),
		)
	}

	return new(render.Value).Defer(&evaluation{
		source: source,
		prog:   prog,
		env:    b.env,
	}), nil
}

// evaluation is an expression resolved at render time.
type evaluation struct {
	source string
	prog   *vm.Program
	env    func() map[string]any
}

// Compile implements [render.Compilable]. A failing expression renders
// nothing and is logged.
func (e *evaluation) Compile() render.Node {
	out, err := vm.Run(e.prog, e.env())
	if err != nil {
		log.Warn("evaluate expression",
			slog.String("source", e.source),
			slog.Any("error", ErrEval.Wrap(err)),
		)

		return nil
	}

	return bindNode(out)
}

// bindNode encodes a decoded YAML value, or an expression result, as a PHP
// literal. Ordered mappings and sequences become arrays so that their
// elements are encoded the same way.
func bindNode(v any) render.Node {
	switch t := v.(type) {
	case yaml.MapSlice:
		a := render.NewArray()
		for _, item := range t {
			a.Set(item.Key, bindNode(item.Value))
		}

		return a

	case []any:
		a := render.NewArray()
		for _, e := range t {
			a.List(bindNode(e))
		}

		return a

	default:
		return render.Bind(v)
	}
}

// native converts ordered mappings to plain maps so that expressions can
// index them by key.
func native(v any) any {
	switch t := v.(type) {
	case yaml.MapSlice:
		m := make(map[string]any, len(t))
		for _, item := range t {
			m[fmt.Sprint(item.Key)] = native(item.Value)
		}

		return m

	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = native(e)
		}

		return m

	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = native(e)
		}

		return s

	default:
		return v
	}
}
