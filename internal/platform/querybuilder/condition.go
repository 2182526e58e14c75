package querybuilder

type Condition interface {
	writeTo(w *writer)
}

type compare struct {
	column string
	op     string
	value  any
}

func (c compare) writeTo(w *writer) {
	w.write(c.column, " ", c.op, " ")
	w.bind(c.value)
}

func Eq(column string, value any) Condition {
	return compare{column: column, op: "=", value: value}
}

func Gte(column string, value any) Condition {
	return compare{column: column, op: ">=", value: value}
}

func Lte(column string, value any) Condition {
	return compare{column: column, op: "<=", value: value}
}

type inCondition struct {
	column string
	values []any
}

// In matches any of values; an empty list matches nothing.
func In(column string, values []any) Condition {
	return inCondition{column: column, values: values}
}

func (c inCondition) writeTo(w *writer) {
	if len(c.values) == 0 {
		w.write("1=0")
		return
	}
	w.write(c.column, " IN (")
	for i, v := range c.values {
		if i > 0 {
			w.write(", ")
		}
		w.bind(v)
	}
	w.write(")")
}

type isNull struct {
	column string
}

func IsNull(column string) Condition {
	return isNull{column: column}
}

func (c isNull) writeTo(w *writer) {
	w.write(c.column, " IS NULL")
}

type exprCondition struct {
	sql  string
	args []any
}

// Expr embeds raw SQL; each '?' binds the next argument.
func Expr(sql string, args ...any) Condition {
	return exprCondition{sql: sql, args: args}
}

func (c exprCondition) writeTo(w *writer) {
	w.expr(c.sql, c.args)
}
