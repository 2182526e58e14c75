package nbastats

import (
	"math"
	"strconv"
	"strings"
)

// row reads one rowSet entry by header name. The provider mixes numbers and
// numeric strings in the same column across seasons.
type row struct {
	values  []any
	columns map[string]int
}

func (r row) value(column string) (any, bool) {
	idx, ok := r.columns[column]
	if !ok || idx < 0 || idx >= len(r.values) {
		return nil, false
	}
	v := r.values[idx]
	return v, v != nil
}

func (r row) String(column string) string {
	v, ok := r.value(column)
	if !ok {
		return ""
	}
	switch typed := v.(type) {
	case string:
		return strings.TrimSpace(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(typed)
	default:
		return ""
	}
}

// Int returns nil for missing, blank or non-numeric values such as "Undrafted".
func (r row) Int(column string) *int {
	v, ok := r.value(column)
	if !ok {
		return nil
	}
	switch typed := v.(type) {
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) {
			return nil
		}
		n := int(typed)
		return &n
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(typed))
		if err != nil {
			return nil
		}
		return &n
	default:
		return nil
	}
}

func (r row) IntOr(column string, fallback int) int {
	if n := r.Int(column); n != nil {
		return *n
	}
	return fallback
}
