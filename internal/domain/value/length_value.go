// Package value contains the sizing primitives shared by tiling math and
// configuration: lengths with a unit and signed deltas.
package value

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrParse is the sentinel wrapped by every ParseError.
var ErrParse = errors.New("parse error")

// ParseError reports a malformed sizing string. Input echoes the offending value.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid value %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// LengthUnit is the unit a LengthValue amount is expressed in.
type LengthUnit string

const (
	UnitPixel      LengthUnit = "pixel"
	UnitPercentage LengthUnit = "percentage"
)

// LengthValue is an amount paired with a unit. Percentages are stored as a
// fraction of 1, so "50%" has an Amount of 0.5.
type LengthValue struct {
	Amount float64    `json:"amount" yaml:"amount" mapstructure:"amount"`
	Unit   LengthUnit `json:"unit" yaml:"unit" mapstructure:"unit"`
}

var lengthPattern = regexp.MustCompile(`^([+-]?\d+)(.*)$`)

const lengthFormatHint = "must be of format '10px' or '10%'"

// FromPx creates a pixel length.
func FromPx(px int) LengthValue {
	return LengthValue{Amount: float64(px), Unit: UnitPixel}
}

// FromPercent creates a percentage length from a whole percentage (50 -> 50%).
func FromPercent(percent float64) LengthValue {
	return LengthValue{Amount: percent / 100, Unit: UnitPercentage}
}

// ParseLengthValue parses "[sign]digits[unit]" where unit is "px" (default) or "%".
func ParseLengthValue(unparsed string) (LengthValue, error) {
	trimmed := strings.TrimSpace(unparsed)

	match := lengthPattern.FindStringSubmatch(trimmed)
	if match == nil {
		return LengthValue{}, &ParseError{Input: unparsed, Reason: lengthFormatHint}
	}

	var unit LengthUnit
	switch match[2] {
	case "", "px":
		unit = UnitPixel
	case "%":
		unit = UnitPercentage
	default:
		return LengthValue{}, &ParseError{
			Input:  unparsed,
			Reason: fmt.Sprintf("unrecognized unit %q, %s", match[2], lengthFormatHint),
		}
	}

	amount, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return LengthValue{}, &ParseError{Input: unparsed, Reason: lengthFormatHint}
	}
	if unit == UnitPercentage {
		amount /= 100
	}

	return LengthValue{Amount: amount, Unit: unit}, nil
}

// ToPx converts the length to pixels with a scale factor of 1.
func (l LengthValue) ToPx(totalPx int) int {
	return l.ToScaledPx(totalPx, 1.0)
}

// ToScaledPx converts the length to pixels. Percentages are taken of totalPx,
// pixel amounts are multiplied by scaleFactor. The result is truncated.
func (l LengthValue) ToScaledPx(totalPx int, scaleFactor float64) int {
	switch l.Unit {
	case UnitPercentage:
		return int(l.Amount * float64(totalPx))
	default:
		return int(l.Amount * scaleFactor)
	}
}

// ToPercentage returns the length as a fraction of totalPx.
func (l LengthValue) ToPercentage(totalPx int) float64 {
	switch l.Unit {
	case UnitPercentage:
		return l.Amount
	default:
		if totalPx == 0 {
			return 0
		}
		return l.Amount / float64(totalPx)
	}
}

// String formats the length back into its configuration form.
func (l LengthValue) String() string {
	if l.Unit == UnitPercentage {
		percent := math.Round(l.Amount*100*1e6) / 1e6
		return strconv.FormatFloat(percent, 'f', -1, 64) + "%"
	}
	return strconv.FormatFloat(l.Amount, 'f', -1, 64) + "px"
}

// MarshalText implements encoding.TextMarshaler.
func (l LengthValue) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for the string form.
func (l *LengthValue) UnmarshalText(text []byte) error {
	parsed, err := ParseLengthValue(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// UnmarshalJSON accepts either {"amount": 10, "unit": "pixel"} or "10px".
func (l *LengthValue) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		return l.UnmarshalText([]byte(raw))
	}

	var structured struct {
		Amount *float64   `json:"amount"`
		Unit   LengthUnit `json:"unit"`
	}
	if err := json.Unmarshal(data, &structured); err != nil {
		return &ParseError{Input: string(data), Reason: "expected a length string or {amount, unit}"}
	}
	if structured.Amount == nil {
		return &ParseError{Input: string(data), Reason: "missing amount"}
	}
	switch structured.Unit {
	case UnitPixel, UnitPercentage:
	default:
		return &ParseError{Input: string(data), Reason: fmt.Sprintf("unknown unit %q", structured.Unit)}
	}

	*l = LengthValue{Amount: *structured.Amount, Unit: structured.Unit}
	return nil
}
