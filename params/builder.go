// Package params builds the configuration payloads accepted by host
// processes.
//
// A payload is either the path of an INI file or an inline parameter string of
// comma separated Key=Value pairs. Booleans are encoded as yes/no, repeated
// values as comma separated lists. Payloads are only ever produced here; the
// host is the sole consumer and interprets them.
package params

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidValue is reported by Builder.Err when a formatter rejected a value.
var ErrInvalidValue = errors.New("params: invalid value")

type entry struct {
	key   string
	value string
}

// Builder accumulates ordered Key=Value pairs. Setting a key twice replaces its
// value in place. The zero value is ready to use.
type Builder struct {
	entries []entry
	index   map[string]int
	errs    []error
}

// New returns an empty builder.
func New() *Builder {
	return &Builder{}
}

// Set stores a raw string value.
func (b *Builder) Set(key, value string) *Builder {
	if b.index == nil {
		b.index = make(map[string]int)
	}
	if i, ok := b.index[key]; ok {
		b.entries[i].value = value
		return b
	}
	b.index[key] = len(b.entries)
	b.entries = append(b.entries, entry{key: key, value: value})
	return b
}

// Bool stores v as yes or no.
func (b *Builder) Bool(key string, v bool) *Builder {
	return b.Set(key, YesNo(v))
}

// Int stores an integer.
func (b *Builder) Int(key string, v int) *Builder {
	return b.Set(key, strconv.Itoa(v))
}

// IntMin stores v, raised to min when smaller.
func (b *Builder) IntMin(key string, v, min int) *Builder {
	return b.Int(key, max(v, min))
}

// Float stores a floating point number without exponent notation.
func (b *Builder) Float(key string, v float64) *Builder {
	return b.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
}

// Decimal stores an exact decimal number.
func (b *Builder) Decimal(key string, v decimal.Decimal) *Builder {
	return b.Set(key, v.String())
}

// Enum stores value when it is one of allowed (case-insensitive). Otherwise
// the value is skipped and the failure is reported by Err.
func (b *Builder) Enum(key, value string, allowed ...string) *Builder {
	for _, candidate := range allowed {
		if strings.EqualFold(candidate, value) {
			return b.Set(key, candidate)
		}
	}
	b.errs = append(b.errs, fmt.Errorf("%w: %s=%q, want one of %s", ErrInvalidValue, key, value, strings.Join(allowed, "|")))
	return b
}

// Log stores a log reference: a zero based index or a log title. The host
// decides how to resolve it.
func (b *Builder) Log(key string, ref any) *Builder {
	switch v := ref.(type) {
	case string:
		return b.Set(key, v)
	case int:
		return b.Int(key, v)
	default:
		return b.Set(key, fmt.Sprint(v))
	}
}

// List stores values as a comma separated list.
func (b *Builder) List(key string, values ...string) *Builder {
	return b.Set(key, List(values...))
}

// Len reports the number of keys.
func (b *Builder) Len() int {
	return len(b.entries)
}

// Lookup returns the encoded value of key.
func (b *Builder) Lookup(key string) (string, bool) {
	i, ok := b.index[key]
	if !ok {
		return "", false
	}
	return b.entries[i].value, true
}

// Err returns the formatter errors collected so far.
func (b *Builder) Err() error {
	return errors.Join(b.errs...)
}

// String renders the inline parameter string, e.g. "FilterType=Median, FilterWidth=5".
func (b *Builder) String() string {
	var sb strings.Builder
	for i, e := range b.entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.key)
		sb.WriteByte('=')
		sb.WriteString(e.value)
	}
	return sb.String()
}

// YesNo encodes a boolean as the host's yes/no token.
func YesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// List joins repeated values with commas.
func List(values ...string) string {
	return strings.Join(values, ",")
}
