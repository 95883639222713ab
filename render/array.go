package render

import (
	"reflect"
	"strings"
)

type pair struct {
	key, value Node
}

// Array is an ordered PHP array literal with explicit keys.
//
//	NewArray().List(1, 2, 3).Render(false, 0) // [0 => 1,1 => 2,2 => 3]
type Array struct {
	pairs []pair
	next  int64 // key appended by List; deletes never lower it
}

// NewArray returns an empty Array.
func NewArray() *Array {
	return &Array{}
}

// List appends values with consecutive integer keys, starting one past the
// largest integer key the array has held, or at 0.
func (a *Array) List(values ...any) *Array {
	for _, v := range values {
		a.Set(a.next, v)
	}

	return a
}

// Set stores value under key. Both are converted with [Of]. An existing
// element with an equal key keeps its position and receives the new value.
func (a *Array) Set(key, value any) *Array {
	if n, ok := intKey(key); ok && n >= a.next {
		a.next = n + 1
	}

	k := Of(key)
	v := Of(value)

	if i := a.index(k); i >= 0 {
		a.pairs[i].value = v
	} else {
		a.pairs = append(a.pairs, pair{key: k, value: v})
	}

	return a
}

// Get returns the value stored under key.
func (a *Array) Get(key any) (Node, bool) {
	if i := a.index(Of(key)); i >= 0 {
		return a.pairs[i].value, true
	}

	return nil, false
}

// Has reports whether an element with the given key exists.
func (a *Array) Has(key any) bool {
	return a.index(Of(key)) >= 0
}

// Delete removes the element stored under key, if any.
func (a *Array) Delete(key any) *Array {
	if i := a.index(Of(key)); i >= 0 {
		a.pairs = append(a.pairs[:i], a.pairs[i+1:]...)
	}

	return a
}

// intKey reports the value of a Go integer key.
func intKey(key any) (int64, bool) {
	rv := reflect.ValueOf(key)

	switch {
	case rv.CanInt():
		return rv.Int(), true
	case rv.CanUint():
		return int64(rv.Uint()), true
	default:
		return 0, false
	}
}

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.pairs) }

// index returns the position of the element whose key renders the same as
// k in compact mode, or -1.
func (a *Array) index(k Node) int {
	want := k.Render(false, 0)

	for i, p := range a.pairs {
		if p.key.Render(false, 0) == want {
			return i
		}
	}

	return -1
}

// Render implements [Node].
//
// Keys are rendered at indent+1 in pretty mode. Values always render at
// indent 0 since they continue the key's line.
func (a *Array) Render(pretty bool, indent int) string {
	indent = clamp(indent)
	lead := pad(pretty, indent)

	if len(a.pairs) == 0 {
		return lead + "[]"
	}

	elem := make([]string, len(a.pairs))
	for i, p := range a.pairs {
		elem[i] = p.key.Render(pretty, indent+1) + " => " + p.value.Render(pretty, 0)
	}

	if !pretty {
		return "[" + strings.Join(elem, ",") + "]"
	}

	return lead + "[\n" + strings.Join(elem, ",\n") + ",\n" + lead + "]"
}
