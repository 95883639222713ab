package render

// Kind identifies which representation a [Value] currently holds.
type Kind uint8

const (
	KindEmpty      Kind = iota // empty
	KindRaw                    // raw
	KindLiteral                // literal
	KindNode                   // node
	KindCompilable             // compilable
)

var kindName = [...]string{
	KindEmpty:      "empty",
	KindRaw:        "raw",
	KindLiteral:    "literal",
	KindNode:       "node",
	KindCompilable: "compilable",
}

func (k Kind) String() string {
	if int(k) < len(kindName) {
		return kindName[k]
	}

	return "unknown"
}

// Value is a single PHP expression resolved at render time.
//
// It holds exactly one of raw code, an encoded literal, a nested [Node], or
// a [Compilable]. Each setter replaces whatever the value held before.
// The zero value is empty and renders as "".
type Value struct {
	code string
	node Node
	comp Compilable
	kind Kind
}

// Raw returns a Value holding raw PHP code.
func Raw(code string) *Value { return new(Value).Raw(code) }

// Bind returns a Value holding the PHP literal of v.
func Bind(v any) *Value { return new(Value).Bind(v) }

// Of converts v to a [Node].
//
// Nodes are returned unchanged, a [Compilable] becomes a deferred Value,
// and anything else is bound as a literal.
func Of(v any) Node {
	switch t := v.(type) {
	case Node:
		return t
	case Compilable:
		return new(Value).Defer(t)
	default:
		return Bind(v)
	}
}

// Raw sets the value to raw PHP code.
func (v *Value) Raw(code string) *Value {
	*v = Value{kind: KindRaw, code: code}

	return v
}

// Bind sets the value to the PHP literal of val, encoded with [Literal].
func (v *Value) Bind(val any) *Value {
	*v = Value{kind: KindLiteral, code: Literal(val)}

	return v
}

// Set sets the value to a nested node.
func (v *Value) Set(n Node) *Value {
	*v = Value{kind: KindNode, node: n}

	return v
}

// Defer sets the value to c, which is compiled every time the value
// renders. Changes made to c after Defer are visible in later renderings.
func (v *Value) Defer(c Compilable) *Value {
	*v = Value{kind: KindCompilable, comp: c}

	return v
}

// Kind returns the representation currently held.
func (v *Value) Kind() Kind { return v.kind }

// IsEmpty reports whether nothing has been set.
func (v *Value) IsEmpty() bool { return v.kind == KindEmpty }

// Render implements [Node].
func (v *Value) Render(pretty bool, indent int) string {
	switch v.kind {
	case KindRaw, KindLiteral:
		return pad(pretty, indent) + v.code

	case KindNode:
		if v.node == nil {
			return ""
		}

		return v.node.Render(pretty, indent)

	case KindCompilable:
		if v.comp == nil {
			return ""
		}

		if n := v.comp.Compile(); n != nil {
			return n.Render(pretty, indent)
		}

		return ""

	default:
		return ""
	}
}
