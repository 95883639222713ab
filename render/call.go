package render

import "strings"

// Call is a function-call expression. Append ";" (see [Statement]) to use
// it as a statement.
//
//	NewCall("a").Arg(1).RawArg(`"asd"`) // a(1, "asd")
type Call struct {
	name string
	args []entry
}

// NewCall returns a call to the named function without arguments.
func NewCall(name string) *Call {
	return &Call{name: name}
}

// Name returns the called function's name.
func (c *Call) Name() string { return c.name }

// Len returns the number of arguments.
func (c *Call) Len() int { return len(c.args) }

// RawArg appends arguments given as PHP code. They are emitted verbatim.
func (c *Call) RawArg(code ...string) *Call {
	for _, s := range code {
		c.args = append(c.args, lineEntry(s))
	}

	return c
}

// Arg appends arguments converted with [Of].
func (c *Call) Arg(values ...any) *Call {
	for _, v := range values {
		c.args = append(c.args, nodeEntry(Of(v)))
	}

	return c
}

// SetArg appends node arguments.
func (c *Call) SetArg(nodes ...Node) *Call {
	for _, n := range nodes {
		c.args = append(c.args, nodeEntry(n))
	}

	return c
}

// Render implements [Node].
func (c *Call) Render(pretty bool, indent int) string {
	indent = clamp(indent)

	return pad(pretty, indent) + c.name + argList(c.args, pretty, indent)
}

// argList renders a parenthesized argument list.
//
// In pretty mode, a list longer than maxInlineArgs puts each argument on its
// own line at indent+1 and the closing parenthesis on its own line at
// indent. Shorter lists, and every list in compact mode, stay on one line.
func argList(args []entry, pretty bool, indent int) string {
	if len(args) == 0 {
		return "()"
	}

	var (
		sb    strings.Builder
		multi = pretty && len(args) > maxInlineArgs
		sep   = ", "
		lead  string
	)

	sb.WriteByte('(')

	if multi {
		sep = ",\n"
		lead = pad(pretty, indent+1)

		sb.WriteByte('\n')
	}

	for i, a := range args {
		if i > 0 {
			sb.WriteString(sep)
		}

		sb.WriteString(lead)
		sb.WriteString(a.inline(pretty, indent+1))
	}

	if multi {
		sb.WriteByte('\n')
		sb.WriteString(pad(pretty, indent))
	}

	sb.WriteByte(')')

	return sb.String()
}
