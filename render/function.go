package render

import "strings"

// Function is a named or anonymous PHP function.
//
//	f := NewFunction("f")
//	f.Accept("a").Type("string")
//	f.Accept("b").Type("int").BindDefault(0)
//	f.Return("string").Line("$ret = $a . $b;", "return $ret;")
//
//	f.Render(false, 0)
//	// function f(string $a,int $b = 0): string {$ret = $a . $b;return $ret;}
type Function struct {
	body       *Block
	name       string
	returnType string
	args       []*Argument
	uses       []*Argument
}

// NewFunction returns a function with an empty body. An empty name makes
// the function anonymous (a closure).
func NewFunction(name string) *Function {
	return &Function{name: name, body: NewBlock()}
}

// Name returns the function name, or "" for anonymous functions.
func (f *Function) Name() string { return f.name }

// IsAnonymous reports whether the function has no name.
func (f *Function) IsAnonymous() bool { return f.name == "" }

// Accept adds a parameter and returns it for further configuration.
func (f *Function) Accept(name string) *Argument {
	a := NewArgument(name)
	f.args = append(f.args, a)

	return a
}

// Arg adds a parameter with an optional type hint and an optional default
// given as raw PHP code.
func (f *Function) Arg(name, typ, rawDefault string) *Function {
	f.Accept(name).Type(typ).RawDefault(rawDefault)

	return f
}

// Params returns the declared parameters.
func (f *Function) Params() []*Argument { return f.args }

// Use declares variables captured from the enclosing scope. Captures are
// only rendered for anonymous functions.
func (f *Function) Use(vars ...string) *Function {
	for _, v := range vars {
		f.uses = append(f.uses, NewArgument(v))
	}

	return f
}

// Return sets the return type. An empty string removes it.
func (f *Function) Return(typ string) *Function {
	f.returnType = typ

	return f
}

// Line appends lines of PHP code to the body.
func (f *Function) Line(lines ...string) *Function {
	f.body.Line(lines...)

	return f
}

// Append appends nodes to the body.
func (f *Function) Append(nodes ...Node) *Function {
	f.body.Append(nodes...)

	return f
}

// Body returns the function body.
func (f *Function) Body() *Block { return f.body }

// Render implements [Node].
func (f *Function) Render(pretty bool, indent int) string {
	indent = clamp(indent)
	lead := pad(pretty, indent)

	var sb strings.Builder

	sb.WriteString(lead)
	sb.WriteString("function ")
	sb.WriteString(f.name)
	sb.WriteString(paramList(f.args, pretty, indent))

	if f.IsAnonymous() && len(f.uses) > 0 {
		sb.WriteString(" use ")
		sb.WriteString(paramList(f.uses, pretty, indent))
	}

	if f.returnType != "" {
		sb.WriteString(": ")
		sb.WriteString(f.returnType)
	}

	if !pretty {
		sb.WriteString(" {")
		sb.WriteString(f.body.Render(false, 0))
		sb.WriteString("}")

		return sb.String()
	}

	sb.WriteString("\n")
	sb.WriteString(lead)
	sb.WriteString("{\n")
	sb.WriteString(f.body.Render(true, indent+1))
	sb.WriteString("\n")
	sb.WriteString(lead)
	sb.WriteString("}")

	return sb.String()
}

// paramList renders a parenthesized declaration list. Unlike call
// arguments, a non-empty list in pretty mode always puts one declaration
// per line.
func paramList(args []*Argument, pretty bool, indent int) string {
	if len(args) == 0 {
		return "()"
	}

	part := make([]string, len(args))
	for i, a := range args {
		part[i] = a.Render(pretty, indent+1)
	}

	if !pretty {
		return "(" + strings.Join(part, ",") + ")"
	}

	return "(\n" + strings.Join(part, ",\n") + "\n" + pad(pretty, indent) + ")"
}
