package render

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Literal encodes v as a PHP literal that evaluates to an equal value.
//
//	Literal(nil)                        // NULL
//	Literal(1.5)                        // 1.5
//	Literal("it's")                     // 'it\'s'
//	Literal([]int{1, 2})                // [0 => 1, 1 => 2]
//	Literal(map[string]bool{"a": true}) // ['a' => true]
//
// Map keys are emitted in sorted order so the output is deterministic.
// Values without a PHP counterpart are encoded as the quoted form of their
// default formatting.
func Literal(v any) string {
	if v == nil {
		return "NULL"
	}

	return literal(reflect.ValueOf(v))
}

func literal(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Invalid:
		return "NULL"

	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "NULL"
		}

		return literal(rv.Elem())

	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)

	case reflect.Float32, reflect.Float64:
		return literalFloat(rv.Float(), rv.Type().Bits())

	case reflect.String:
		return quote(rv.String())

	case reflect.Slice:
		if rv.IsNil() {
			return "NULL"
		}

		fallthrough

	case reflect.Array:
		elem := make([]string, rv.Len())
		for i := range rv.Len() {
			elem[i] = strconv.Itoa(i) + " => " + literal(rv.Index(i))
		}

		return "[" + strings.Join(elem, ", ") + "]"

	case reflect.Map:
		if rv.IsNil() {
			return "NULL"
		}

		return literalMap(rv)

	default:
		return quote(fmt.Sprint(rv.Interface()))
	}
}

func literalFloat(f float64, bits int) string {
	switch {
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	case math.IsNaN(f):
		return "NAN"
	}

	s := strconv.FormatFloat(f, 'G', -1, bits)
	if !strings.ContainsAny(s, ".E") {
		s += ".0"
	}

	return s
}

func literalMap(rv reflect.Value) string {
	type pair struct {
		key, val string
		ord      reflect.Value
	}

	pairs := make([]pair, 0, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		pairs = append(pairs, pair{
			key: literal(iter.Key()),
			val: literal(iter.Value()),
			ord: iter.Key(),
		})
	}

	slices.SortFunc(pairs, func(a, b pair) int {
		return compareKeys(a.ord, b.ord, a.key, b.key)
	})

	elem := make([]string, len(pairs))
	for i, p := range pairs {
		elem[i] = p.key + " => " + p.val
	}

	return "[" + strings.Join(elem, ", ") + "]"
}

// compareKeys orders numeric keys numerically and everything else by its
// encoded form.
func compareKeys(a, b reflect.Value, ea, eb string) int {
	for a.Kind() == reflect.Interface && !a.IsNil() {
		a = a.Elem()
	}

	for b.Kind() == reflect.Interface && !b.IsNil() {
		b = b.Elem()
	}

	if a.CanInt() && b.CanInt() {
		return cmp.Compare(a.Int(), b.Int())
	}

	if a.CanUint() && b.CanUint() {
		return cmp.Compare(a.Uint(), b.Uint())
	}

	return strings.Compare(ea, eb)
}

// quote returns s as a single-quoted PHP string.
func quote(s string) string {
	var sb strings.Builder

	sb.Grow(len(s) + 2)
	sb.WriteByte('\'')

	for i := range len(s) {
		switch s[i] {
		case '\\', '\'':
			sb.WriteByte('\\')
		}

		sb.WriteByte(s[i])
	}

	sb.WriteByte('\'')

	return sb.String()
}
