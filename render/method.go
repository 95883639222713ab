package render

// Method is a function declared inside a class body.
type Method struct {
	fn         *Function
	visibility string
	static     bool
}

// NewMethod returns a method with an empty body. An empty visibility
// omits the modifier.
func NewMethod(name, visibility string, static bool) *Method {
	return &Method{
		fn:         NewFunction(name),
		visibility: visibility,
		static:     static,
	}
}

// Name returns the method name.
func (m *Method) Name() string { return m.fn.Name() }

// Visibility returns the visibility modifier.
func (m *Method) Visibility() string { return m.visibility }

// Static reports whether the method is static.
func (m *Method) Static() bool { return m.static }

// Function returns the underlying function.
func (m *Method) Function() *Function { return m.fn }

// Accept adds a parameter and returns it for further configuration.
func (m *Method) Accept(name string) *Argument { return m.fn.Accept(name) }

// Arg adds a parameter; see [Function.Arg].
func (m *Method) Arg(name, typ, rawDefault string) *Method {
	m.fn.Arg(name, typ, rawDefault)

	return m
}

// Return sets the return type.
func (m *Method) Return(typ string) *Method {
	m.fn.Return(typ)

	return m
}

// Line appends lines of PHP code to the body.
func (m *Method) Line(lines ...string) *Method {
	m.fn.Line(lines...)

	return m
}

// Append appends nodes to the body.
func (m *Method) Append(nodes ...Node) *Method {
	m.fn.Append(nodes...)

	return m
}

// Body returns the method body.
func (m *Method) Body() *Block { return m.fn.Body() }

// Render implements [Node].
func (m *Method) Render(pretty bool, indent int) string {
	indent = clamp(indent)

	prefix := ""
	if m.visibility != "" {
		prefix = m.visibility + " "
	}

	if m.static {
		prefix += "static "
	}

	// The function already indented its first line; replace that indent
	// with ours so the modifiers sit flush with it.
	return pad(pretty, indent) + prefix + trimLead(m.fn.Render(pretty, indent))
}
