package render

import "strings"

// Node is anything that can render itself as PHP source.
//
// When pretty is false, indent is ignored. When pretty is true, each
// physical line is prefixed with indent*4 spaces and structural children
// are rendered at indent+1.
type Node interface {
	Render(pretty bool, indent int) string
}

// Compilable is an object that produces its PHP representation on demand.
type Compilable interface {
	Compile() Node
}

// unit is one level of indentation.
const unit = "    "

// maxInlineArgs is the largest argument count a call keeps on one line in
// pretty mode.
const maxInlineArgs = 4

// nodeFunc adapts a function to the [Node] interface.
type nodeFunc func(pretty bool, indent int) string

func (f nodeFunc) Render(pretty bool, indent int) string {
	return f(pretty, clamp(indent))
}

func clamp(indent int) int {
	if indent < 0 {
		return 0
	}

	return indent
}

// pad returns the leading whitespace for a line at the given indent level.
func pad(pretty bool, indent int) string {
	if !pretty || indent <= 0 {
		return ""
	}

	return strings.Repeat(unit, indent)
}

// trimLead strips the leading whitespace of s so that a rendered node can
// continue a line that is already indented.
func trimLead(s string) string {
	return strings.TrimLeft(s, " \t\n\r\x00\x0b")
}

// entry is a single element of a [Block] body or an argument list. Exactly
// one of line or node is meaningful, selected by isNode.
type entry struct {
	node   Node
	line   string
	isNode bool
}

func lineEntry(s string) entry { return entry{line: s} }

func nodeEntry(n Node) entry { return entry{node: n, isNode: true} }

// inline renders e for placement after other text on the same line.
func (e entry) inline(pretty bool, indent int) string {
	if e.isNode {
		return trimLead(e.node.Render(pretty, indent))
	}

	return e.line
}

// Child returns a node that renders n one indent level deeper than
// requested.
func Child(n Node) Node {
	return nodeFunc(func(pretty bool, indent int) string {
		return n.Render(pretty, indent+1)
	})
}

// Compact returns a node that always renders n in compact mode. In pretty
// mode the result is still prefixed with the indent of the surrounding
// line.
func Compact(n Node) Node {
	return nodeFunc(func(pretty bool, indent int) string {
		return pad(pretty, indent) + n.Render(false, 0)
	})
}

// Statement joins the renderings of nodes with a single space and
// terminates the result with a semicolon, e.g. "return <expr>;".
//
// The first node carries the indent of the line; the others continue it.
func Statement(nodes ...Node) Node {
	return nodeFunc(func(pretty bool, indent int) string {
		part := make([]string, 0, len(nodes))

		for i, n := range nodes {
			s := n.Render(pretty, indent)
			if i > 0 {
				s = trimLead(s)
			}

			part = append(part, s)
		}

		return strings.Join(part, " ") + ";"
	})
}

// Assignment renders "left = right;".
func Assignment(left, right Node) Node {
	return nodeFunc(func(pretty bool, indent int) string {
		return left.Render(pretty, indent) +
			" = " +
			trimLead(right.Render(pretty, indent)) +
			";"
	})
}
