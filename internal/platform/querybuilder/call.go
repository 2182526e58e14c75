package querybuilder

import (
	"fmt"
	"strings"
)

type namedArg struct {
	name  string
	value any
	cast  string
}

// CallBuilder renders a stored function call with named arguments, for
// example SELECT * FROM get_lineup_positions(p_league_id => $1).
type CallBuilder struct {
	function string
	star     bool
	args     []namedArg
}

// Call selects every column of a set-returning function.
func Call(function string) *CallBuilder {
	return &CallBuilder{function: function, star: true}
}

// CallScalar selects the function result as a single value.
func CallScalar(function string) *CallBuilder {
	return &CallBuilder{function: function}
}

func (b *CallBuilder) Arg(name string, value any) *CallBuilder {
	b.args = append(b.args, namedArg{name: name, value: value})
	return b
}

// ArgCast binds value with an explicit cast such as jsonb.
func (b *CallBuilder) ArgCast(name string, value any, cast string) *CallBuilder {
	b.args = append(b.args, namedArg{name: name, value: value, cast: cast})
	return b
}

// OptionalArg binds value only when present; otherwise the function default applies.
func (b *CallBuilder) OptionalArg(name string, value any, present bool) *CallBuilder {
	if !present {
		return b
	}
	return b.Arg(name, value)
}

func (b *CallBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.function) == "" {
		return "", nil, fmt.Errorf("call function is required")
	}

	var w writer
	if b.star {
		w.write("SELECT * FROM ", b.function, "(")
	} else {
		w.write("SELECT ", b.function, "(")
	}
	for i, arg := range b.args {
		if strings.TrimSpace(arg.name) == "" {
			return "", nil, fmt.Errorf("call %s argument %d has no name", b.function, i)
		}
		if i > 0 {
			w.write(", ")
		}
		w.write(arg.name, " => ")
		w.bind(arg.value)
		if arg.cast != "" {
			w.write("::", arg.cast)
		}
	}
	w.write(")")
	return w.result()
}
