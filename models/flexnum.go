package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexNumber wraps a numeric field that the stored document may hold either
// as a JSON number or as an empty string (forms submit "" for untouched
// inputs). The empty form round-trips as "" so existing documents rewrite
// unchanged.
type FlexNumber struct {
	Value float64
	Valid bool
}

// Num builds a set FlexNumber, mostly for tests and fixtures.
func Num(v float64) FlexNumber {
	return FlexNumber{Value: v, Valid: true}
}

// Float returns the numeric value; the empty form and anything non-numeric
// count as 0.
func (n FlexNumber) Float() float64 {
	if !n.Valid {
		return 0
	}
	return n.Value
}

// String renders the number without trailing zeros, or "" when unset.
func (n FlexNumber) String() string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// UnmarshalJSON accepts a JSON number, a numeric string, "" or null.
// Non-numeric strings are treated as unset rather than rejected, matching
// how the form layer has always coerced them.
func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		*n = FlexNumber{}
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = FlexNumber{}
		return nil
	}
	*n = FlexNumber{Value: v, Valid: true}
	return nil
}

// MarshalJSON emits the number, or "" when unset.
func (n FlexNumber) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte(`""`), nil
	}
	return json.Marshal(n.Value)
}
