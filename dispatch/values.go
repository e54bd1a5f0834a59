package dispatch

import (
	"fmt"
	"math"
)

// String reads member as a string.
func (h *Handle) String(member string) (string, error) {
	value, err := h.Get(member)
	if err != nil {
		return "", err
	}
	s, err := AsString(value)
	if err != nil {
		return "", fmt.Errorf("%s: %w", member, err)
	}
	return s, nil
}

// Int reads member as an integer.
func (h *Handle) Int(member string) (int, error) {
	value, err := h.Get(member)
	if err != nil {
		return 0, err
	}
	n, err := AsInt(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", member, err)
	}
	return n, nil
}

// Float reads member as a floating point number.
func (h *Handle) Float(member string) (float64, error) {
	value, err := h.Get(member)
	if err != nil {
		return 0, err
	}
	f, err := AsFloat(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", member, err)
	}
	return f, nil
}

// Bool reads member as a boolean.
func (h *Handle) Bool(member string) (bool, error) {
	value, err := h.Get(member)
	if err != nil {
		return false, err
	}
	b, err := AsBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", member, err)
	}
	return b, nil
}

// AsString returns value when it is a string.
func AsString(value any) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: want string, got %T", ErrUnexpectedType, value)
}

// AsInt converts the integer kinds returned by the host to int. Floating
// point values are accepted only when they carry no fraction.
func AsInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d overflows int", ErrUnexpectedType, v)
		}
		return int(v), nil
	case float32:
		if float32(int(v)) == v {
			return int(v), nil
		}
	case float64:
		if float64(int(v)) == v {
			return int(v), nil
		}
	}
	return 0, fmt.Errorf("%w: want integer, got %T", ErrUnexpectedType, value)
}

// AsFloat converts numeric host values to float64.
func AsFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	}
	n, err := AsInt(value)
	if err != nil {
		return 0, fmt.Errorf("%w: want number, got %T", ErrUnexpectedType, value)
	}
	return float64(n), nil
}

// AsBool converts a host boolean. Integer flags are treated as false when zero.
func AsBool(value any) (bool, error) {
	if b, ok := value.(bool); ok {
		return b, nil
	}
	if n, err := AsInt(value); err == nil {
		return n != 0, nil
	}
	return false, fmt.Errorf("%w: want bool, got %T", ErrUnexpectedType, value)
}
