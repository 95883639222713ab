package render

import "strings"

// Argument is a variable declaration: a function parameter, a closure
// capture, or a class property.
type Argument struct {
	name     string
	typeHint string
	def      Value
}

// NewArgument returns an untyped Argument without a default value. The
// variable sigil "$" is prepended to name if missing.
func NewArgument(name string) *Argument {
	if !strings.HasPrefix(name, "$") {
		name = "$" + name
	}

	return &Argument{name: name}
}

// Name returns the variable name including its sigil.
func (a *Argument) Name() string { return a.name }

// Type sets the type hint. An empty string removes it.
func (a *Argument) Type(typ string) *Argument {
	a.typeHint = typ

	return a
}

// TypeHint returns the type hint, or "" if there is none.
func (a *Argument) TypeHint() string { return a.typeHint }

// Default returns the default value for direct manipulation.
func (a *Argument) Default() *Value { return &a.def }

// RawDefault sets the default value to raw PHP code.
func (a *Argument) RawDefault(code string) *Argument {
	a.def.Raw(code)

	return a
}

// BindDefault sets the default value to the PHP literal of v.
func (a *Argument) BindDefault(v any) *Argument {
	a.def.Bind(v)

	return a
}

// SetDefault sets the default value to a node.
func (a *Argument) SetDefault(n Node) *Argument {
	a.def.Set(n)

	return a
}

// Render implements [Node].
func (a *Argument) Render(pretty bool, indent int) string {
	return pad(pretty, clamp(indent)) + a.declare(true)
}

// declare renders the declaration without indentation. Class properties
// use typed=false since they are always emitted without a type hint.
func (a *Argument) declare(typed bool) string {
	var sb strings.Builder

	if typed && a.typeHint != "" {
		sb.WriteString(a.typeHint)
		sb.WriteByte(' ')
	}

	sb.WriteString(a.name)

	// The default follows other text on the same line, so it never carries
	// its own indentation.
	if d := a.def.Render(false, 0); d != "" {
		sb.WriteString(" = ")
		sb.WriteString(d)
	}

	return sb.String()
}
