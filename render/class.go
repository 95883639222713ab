package render

import (
	"log/slog"
	"strings"

	"github.com/sahilm/fuzzy"
)

type constant struct {
	name, code string
}

type property struct {
	arg        *Argument
	visibility string
	static     bool
}

// Class is a PHP class declaration.
//
// A class with a name renders as a declaration ("class Name ..."). A class
// without a name renders as an anonymous class expression
// ("new class(...) ...") and may carry constructor arguments.
//
// Members are emitted in a fixed order regardless of the order they were
// added: traits, constants, properties, methods.
type Class struct {
	name    string
	parent  string
	args    []entry
	faces   []string
	traits  []string
	consts  []constant
	props   []property
	methods []*Method
}

// NewClass returns an empty class declaration.
func NewClass(name string) *Class {
	return &Class{name: name}
}

// NewAnonymousClass returns an empty anonymous class expression.
func NewAnonymousClass() *Class {
	return NewClass("")
}

// Name returns the class name, or "" for anonymous classes.
func (c *Class) Name() string { return c.name }

// Parent returns the parent class, or "" if there is none.
func (c *Class) Parent() string { return c.parent }

// IsAnonymous reports whether the class has no name.
func (c *Class) IsAnonymous() bool { return c.name == "" }

// Extends sets the parent class. Namespaces are the caller's concern.
func (c *Class) Extends(class string) *Class {
	c.parent = class

	return c
}

// Implements adds interfaces.
func (c *Class) Implements(faces ...string) *Class {
	c.faces = append(c.faces, faces...)

	return c
}

// Use adds traits.
func (c *Class) Use(traits ...string) *Class {
	c.traits = append(c.traits, traits...)

	return c
}

// Const adds a class constant initialized with raw PHP code.
func (c *Class) Const(name, code string) *Class {
	c.consts = append(c.consts, constant{name: name, code: code})

	return c
}

// Has adds a property and returns it for further configuration. The
// property's type hint is not rendered.
func (c *Class) Has(name, visibility string) *Argument {
	return c.addProp(name, visibility, false)
}

// HasStatic adds a static property and returns it for further
// configuration.
func (c *Class) HasStatic(name, visibility string) *Argument {
	return c.addProp(name, visibility, true)
}

// Prop adds a property initialized with raw PHP code, or without a default
// if rawDefault is empty.
func (c *Class) Prop(name, visibility string, static bool, rawDefault string) *Class {
	c.addProp(name, visibility, static).RawDefault(rawDefault)

	return c
}

func (c *Class) addProp(name, visibility string, static bool) *Argument {
	a := NewArgument(name)
	c.props = append(c.props, property{
		arg:        a,
		visibility: visibility,
		static:     static,
	})

	return a
}

// Method adds existing methods.
func (c *Class) Method(methods ...*Method) *Class {
	c.methods = append(c.methods, methods...)

	return c
}

// Can adds a method and returns it for further configuration.
func (c *Class) Can(name, visibility string) *Method {
	return c.addMethod(name, visibility, false)
}

// CanStatic adds a static method and returns it for further configuration.
func (c *Class) CanStatic(name, visibility string) *Method {
	return c.addMethod(name, visibility, true)
}

func (c *Class) addMethod(name, visibility string, static bool) *Method {
	m := NewMethod(name, visibility, static)
	c.methods = append(c.methods, m)

	return m
}

// Methods returns the methods in declaration order.
func (c *Class) Methods() []*Method { return c.methods }

// GetMethod returns the first method with the given name.
//
// A missing method is a programming error: the returned error matches
// [ErrMethodNotFound] and lists similarly named methods.
func (c *Class) GetMethod(name string) (*Method, error) {
	for _, m := range c.methods {
		if m.Name() == name {
			return m, nil
		}
	}

	names := make([]string, len(c.methods))
	for i, m := range c.methods {
		names[i] = m.Name()
	}

	suggest := make([]string, 0, len(names))
	for _, match := range fuzzy.Find(name, names) {
		suggest = append(suggest, match.Str)
	}

	return nil, ErrMethodNotFound.With(
		slog.String("class", c.name),
		slog.String("method", name),
		slog.Any("suggest", suggest),
	)
}

// MustMethod is like [Class.GetMethod] but panics if the method does not
// exist.
func (c *Class) MustMethod(name string) *Method {
	m, err := c.GetMethod(name)
	if err != nil {
		panic(err)
	}

	return m
}

// RawArgs appends constructor arguments given as PHP code. Only anonymous
// classes render constructor arguments.
func (c *Class) RawArgs(code ...string) *Class {
	for _, s := range code {
		c.args = append(c.args, nodeEntry(Raw(s)))
	}

	return c
}

// BindArgs appends constructor arguments encoded with [Literal].
func (c *Class) BindArgs(values ...any) *Class {
	for _, v := range values {
		c.args = append(c.args, nodeEntry(Bind(v)))
	}

	return c
}

// SetArgs appends node constructor arguments.
func (c *Class) SetArgs(nodes ...Node) *Class {
	for _, n := range nodes {
		c.args = append(c.args, nodeEntry(n))
	}

	return c
}

// Render implements [Node].
//
// PHP has no nested class declarations, so a named class always renders at
// indent level 0. Anonymous classes are expressions and honor indent.
func (c *Class) Render(pretty bool, indent int) string {
	indent = clamp(indent)
	if !c.IsAnonymous() {
		indent = 0
	}

	return c.heading(pretty, indent) + c.members(pretty, indent)
}

// heading renders everything before the opening brace, including the line
// break that precedes it in pretty mode.
func (c *Class) heading(pretty bool, indent int) string {
	var sb strings.Builder

	sb.WriteString(pad(pretty, indent))

	if c.IsAnonymous() {
		sb.WriteString("new class")
		sb.WriteString(argList(c.args, pretty, indent))
	} else {
		sb.WriteString("class ")
		sb.WriteString(c.name)
	}

	if c.parent != "" {
		sb.WriteString(" extends ")
		sb.WriteString(c.parent)
	}

	if len(c.faces) > 0 {
		sb.WriteString(" implements")

		if pretty {
			lead := pad(pretty, indent+1)

			sb.WriteString("\n")
			sb.WriteString(lead)
			sb.WriteString(strings.Join(c.faces, ",\n"+lead))
		} else {
			sb.WriteString(" ")
			sb.WriteString(strings.Join(c.faces, ","))
		}
	}

	if pretty {
		sb.WriteString("\n")
	}

	return sb.String()
}

// members renders the braces and the class body.
func (c *Class) members(pretty bool, indent int) string {
	if !pretty {
		var sb strings.Builder

		sb.WriteString("{")

		for _, group := range c.groups(false, 0) {
			sb.WriteString(strings.Join(group, ""))
		}

		sb.WriteString("}")

		return sb.String()
	}

	lead := pad(pretty, indent)
	lines := []string{lead + "{"}

	for i, group := range c.groups(true, indent+1) {
		if i > 0 {
			lines = append(lines, "")
		}

		lines = append(lines, group...)
	}

	return strings.Join(lines, "\n") + "\n" + lead + "}"
}

// groups renders the non-empty member groups in their fixed order. In
// pretty mode consecutive methods are separated by a blank line.
func (c *Class) groups(pretty bool, indent int) [][]string {
	lead := pad(pretty, indent)

	var group [][]string

	if len(c.traits) > 0 {
		g := make([]string, len(c.traits))
		for i, t := range c.traits {
			g[i] = lead + "use " + t + ";"
		}

		group = append(group, g)
	}

	if len(c.consts) > 0 {
		g := make([]string, len(c.consts))
		for i, k := range c.consts {
			g[i] = lead + "const " + k.name + " = " + k.code + ";"
		}

		group = append(group, g)
	}

	if len(c.props) > 0 {
		g := make([]string, len(c.props))
		for i, p := range c.props {
			g[i] = lead + p.declare() + ";"
		}

		group = append(group, g)
	}

	if len(c.methods) > 0 {
		g := make([]string, 0, 2*len(c.methods))
		for i, m := range c.methods {
			if pretty && i > 0 {
				g = append(g, "")
			}

			g = append(g, m.Render(pretty, indent))
		}

		group = append(group, g)
	}

	return group
}

func (p property) declare() string {
	var sb strings.Builder

	if p.visibility != "" {
		sb.WriteString(p.visibility)
		sb.WriteByte(' ')
	}

	if p.static {
		sb.WriteString("static ")
	}

	sb.WriteString(p.arg.declare(false))

	return sb.String()
}
