package value

import (
	"encoding"
	"fmt"
	"strings"
)

// Delta marks a value as a relative change ("+10px", "-5%").
type Delta[T any] struct {
	Inner      T
	IsNegative bool
}

// LengthDelta is the delta form used by resize commands and configuration.
type LengthDelta = Delta[LengthValue]

// ParseDelta strips an optional leading sign and parses the remainder with
// parse. No sign means positive.
func ParseDelta[T any](unparsed string, parse func(string) (T, error)) (Delta[T], error) {
	trimmed := strings.TrimSpace(unparsed)

	raw, negative := trimmed, false
	switch {
	case strings.HasPrefix(trimmed, "+"):
		raw = trimmed[1:]
	case strings.HasPrefix(trimmed, "-"):
		raw, negative = trimmed[1:], true
	}

	if raw == "" {
		return Delta[T]{}, &ParseError{Input: unparsed, Reason: "empty value"}
	}

	inner, err := parse(raw)
	if err != nil {
		return Delta[T]{}, &ParseError{Input: unparsed, Reason: err.Error()}
	}

	return Delta[T]{Inner: inner, IsNegative: negative}, nil
}

// ParseLengthDelta parses a signed length such as "+5%" or "-20px".
func ParseLengthDelta(unparsed string) (LengthDelta, error) {
	return ParseDelta(unparsed, ParseLengthValue)
}

// Sign returns -1 for negative deltas and 1 otherwise.
func (d Delta[T]) Sign() float64 {
	if d.IsNegative {
		return -1
	}
	return 1
}

// String renders the delta with an explicit sign.
func (d Delta[T]) String() string {
	sign := "+"
	if d.IsNegative {
		sign = "-"
	}
	return fmt.Sprintf("%s%v", sign, d.Inner)
}

// MarshalText implements encoding.TextMarshaler.
func (d Delta[T]) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses the delta when T itself can be parsed from text.
func (d *Delta[T]) UnmarshalText(text []byte) error {
	parsed, err := ParseDelta(string(text), func(raw string) (T, error) {
		var inner T
		u, ok := any(&inner).(encoding.TextUnmarshaler)
		if !ok {
			return inner, fmt.Errorf("%T cannot be parsed from text", inner)
		}
		return inner, u.UnmarshalText([]byte(raw))
	})
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
