package render

import (
	"log/slog"
	"strings"
)

var ErrMethodNotFound = NewError("method not found")

// Error is a sentinel-derived error carrying the node context it was raised
// in, such as the class and method names of a failed lookup.
//
// The context attributes appear both in the error string and, as a group,
// in structured logs.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

// NewError returns a sentinel Error with the given message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error formats the error as "msg: cause (key=value ...)", omitting the
// parts that are not set.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(e.msg)

	if e.err != nil {
		if sb.Len() > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(e.err.Error())
	}

	if len(e.attrs) > 0 {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteByte('(')

		for i, a := range e.attrs {
			if i > 0 {
				sb.WriteByte(' ')
			}

			sb.WriteString(a.String())
		}

		sb.WriteByte(')')
	}

	return sb.String()
}

func (e *Error) Unwrap() error { return e.err }

// Is matches any Error derived from the same sentinel with [Error.With] or
// [Error.Wrap].
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.msg != "" && t.msg == e.msg
}

// Attrs returns the context attributes.
func (e *Error) Attrs() []slog.Attr { return e.attrs }

// LogValue implements [slog.LogValuer].
func (e *Error) LogValue() slog.Value {
	group := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		group = append(group, slog.String("error", e.msg))
	}

	if e.err != nil {
		group = append(group, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(group, e.attrs...)...)
}

// Wrap returns a copy of e caused by err.
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.err = err

	return &c
}

// With returns a copy of e with attrs appended to its context.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := *e
	c.attrs = append(e.attrs[:len(e.attrs):len(e.attrs)], attrs...)

	return &c
}
