package querybuilder

import (
	"strconv"
	"strings"
)

// writer accumulates SQL text and positional arguments for one statement.
type writer struct {
	buf  strings.Builder
	args []any
}

func (w *writer) write(parts ...string) {
	for _, part := range parts {
		w.buf.WriteString(part)
	}
}

// bind appends value as the next positional argument and writes its placeholder.
func (w *writer) bind(value any) {
	w.args = append(w.args, value)
	w.buf.WriteString("$")
	w.buf.WriteString(strconv.Itoa(len(w.args)))
}

// expr writes raw SQL, binding each '?' to the next of values in order.
func (w *writer) expr(sql string, values []any) {
	next := 0
	for i := 0; i < len(sql); i++ {
		if sql[i] == '?' && next < len(values) {
			w.bind(values[next])
			next++
			continue
		}
		w.buf.WriteByte(sql[i])
	}
}

func (w *writer) where(conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	w.write(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			w.write(" AND ")
		}
		c.writeTo(w)
	}
}

func (w *writer) result() (string, []any, error) {
	return w.buf.String(), w.args, nil
}
