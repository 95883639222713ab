package render

import "strings"

// Header is the optional preamble emitted before a [Block]'s content.
type Header uint8

const (
	HeaderNone   Header = iota // none
	HeaderFile                 // file
	HeaderScript               // script
)

func (h Header) String() string {
	switch h {
	case HeaderFile:
		return "file"
	case HeaderScript:
		return "script"
	default:
		return "none"
	}
}

const (
	openTag = "<?php"
	shebang = "#!/usr/bin/env php"
)

// preamble returns the header lines, each terminated by a newline.
func (h Header) preamble() string {
	switch h {
	case HeaderFile:
		return openTag + "\n"
	case HeaderScript:
		return shebang + "\n" + openTag + "\n"
	default:
		return ""
	}
}

// Block is an ordered sequence of PHP code lines and nested nodes.
//
// In pretty mode each entry starts on a new line. Lines are indented to the
// block's level, blank lines are left empty, and nested nodes are
// responsible for their own indentation.
type Block struct {
	body   []entry
	header Header
}

// NewBlock returns an empty Block.
func NewBlock() *Block {
	return &Block{}
}

// Len returns the number of entries.
func (b *Block) Len() int { return len(b.body) }

// Line appends lines of PHP code.
func (b *Block) Line(lines ...string) *Block {
	for _, s := range lines {
		b.body = append(b.body, lineEntry(s))
	}

	return b
}

// Space appends an empty line.
func (b *Block) Space() *Block { return b.Line("") }

// Append appends nested nodes rendered at the block's indent level.
func (b *Block) Append(nodes ...Node) *Block {
	for _, n := range nodes {
		b.body = append(b.body, nodeEntry(n))
	}

	return b
}

// Child appends nested nodes rendered one level deeper than the block.
func (b *Block) Child(nodes ...Node) *Block {
	for _, n := range nodes {
		b.body = append(b.body, nodeEntry(Child(n)))
	}

	return b
}

// Assign appends the statement "left = right;".
func (b *Block) Assign(left, right Node) *Block {
	return b.Append(Assignment(left, right))
}

// Stmt appends the statement formed by joining nodes with spaces.
func (b *Block) Stmt(nodes ...Node) *Block {
	return b.Append(Statement(nodes...))
}

// Return appends "return <n>;".
func (b *Block) Return(n Node) *Block {
	return b.Stmt(Raw("return"), n)
}

// Namespace appends a namespace declaration.
func (b *Block) Namespace(ns string) *Block {
	return b.Line("namespace " + ns + ";")
}

// Use appends an import of class, aliased when alias is not empty.
func (b *Block) Use(class, alias string) *Block {
	s := "use " + class
	if alias != "" {
		s += " as " + alias
	}

	return b.Line(s + ";")
}

// Require appends a require of path relative to the current file.
func (b *Block) Require(path string) *Block {
	return b.include("require", path, true)
}

// RequireOnce appends a require_once of path relative to the current file.
func (b *Block) RequireOnce(path string) *Block {
	return b.include("require_once", path, true)
}

// RequireAbs appends a require of path as given.
func (b *Block) RequireAbs(path string) *Block {
	return b.include("require", path, false)
}

// RequireOnceAbs appends a require_once of path as given.
func (b *Block) RequireOnceAbs(path string) *Block {
	return b.include("require_once", path, false)
}

func (b *Block) include(fn, path string, relative bool) *Block {
	arg := Literal(path)
	if relative {
		arg = "__DIR__ . " + Literal("/"+strings.TrimPrefix(path, "/"))
	}

	return b.Line(fn + "(" + arg + ");")
}

// AsFile prefixes the rendered block with the PHP open tag, replacing any
// previous header.
func (b *Block) AsFile() *Block {
	b.header = HeaderFile

	return b
}

// AsScript prefixes the rendered block with a shebang line and the PHP open
// tag, replacing any previous header.
func (b *Block) AsScript() *Block {
	b.header = HeaderScript

	return b
}

// Header returns the current header.
func (b *Block) Header() Header { return b.header }

// Render implements [Node].
func (b *Block) Render(pretty bool, indent int) string {
	return b.header.preamble() + b.content(pretty, clamp(indent))
}

func (b *Block) content(pretty bool, indent int) string {
	var sb strings.Builder

	if !pretty {
		for _, e := range b.body {
			if e.isNode {
				sb.WriteString(e.node.Render(false, 0))
			} else {
				sb.WriteString(e.line)
			}
		}

		return sb.String()
	}

	lead := pad(pretty, indent)

	for i, e := range b.body {
		if i > 0 {
			sb.WriteByte('\n')
		}

		switch {
		case e.isNode:
			sb.WriteString(e.node.Render(true, indent))
		case strings.TrimSpace(e.line) != "":
			sb.WriteString(lead)
			sb.WriteString(e.line)
		}
	}

	return sb.String()
}
