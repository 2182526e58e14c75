package cache

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"
)

// keySeparator cannot appear in identifiers handed out by the gateway.
const keySeparator = '\x1f'

// Key is an ordered tuple of semantic identifiers, for example
// ["lineup-positions", leagueID, teamID, zone].
type Key []string

// NewKey formats each part as one segment.
func NewKey(parts ...any) Key {
	key := make(Key, 0, len(parts))
	for _, part := range parts {
		key = append(key, segment(part))
	}
	return key
}

// Append returns a new key with extra segments, leaving k untouched.
func (k Key) Append(parts ...any) Key {
	out := make(Key, 0, len(k)+len(parts))
	out = append(out, k...)
	return append(out, NewKey(parts...)...)
}

// HasPrefix matches whole segments, so ["a","t1"] is not a prefix of ["a","t10"].
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}
	return true
}

func (k Key) String() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for i, part := range k {
		if i > 0 {
			_ = buf.WriteByte(keySeparator)
		}
		_, _ = buf.WriteString(part)
	}
	return buf.String()
}

// Family is the first segment of the key.
func (k Key) Family() string {
	if len(k) == 0 {
		return ""
	}
	return k[0]
}

func parseKey(raw string) Key {
	if raw == "" {
		return Key{}
	}
	return Key(strings.Split(raw, string(keySeparator)))
}

func segment(part any) string {
	switch v := part.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case *int:
		if v == nil {
			return ""
		}
		return strconv.Itoa(*v)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
