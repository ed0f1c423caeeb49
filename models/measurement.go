package models

import (
	"bytes"
	"errors"
	"strconv"
)

// DegreeMark is appended to every rendered angle value.
const DegreeMark = "°"

// ErrNotNumberLike is returned when a measurement is neither a JSON number
// nor a JSON string.
var ErrNotNumberLike = errors.New("measurement is not number-like")

// Measurement is a number-like angle value as sent by the analysis server.
//
// It accepts a JSON number or a JSON string. Numbers are stored in their
// shortest decimal form (12.30 becomes "12.3"); strings are kept verbatim.
// A JSON null leaves the measurement empty.
type Measurement string

// UnmarshalJSON implements json.Unmarshaler.
func (m *Measurement) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*m = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := codec.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = Measurement(s)
		return nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return err
		}
		*m = Measurement(strconv.FormatFloat(f, 'f', -1, 64))
		return nil
	default:
		return ErrNotNumberLike
	}
}

// MarshalJSON emits the value as a JSON number when it parses as one and as
// a JSON string otherwise.
func (m Measurement) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseFloat(string(m), 64); err == nil {
		return []byte(m), nil
	}
	return codec.Marshal(string(m))
}

// String returns the raw value.
func (m Measurement) String() string {
	return string(m)
}

// Degrees returns the value suffixed with [DegreeMark].
func (m Measurement) Degrees() string {
	return string(m) + DegreeMark
}

// Float parses the value as a float64.
func (m Measurement) Float() (float64, error) {
	return strconv.ParseFloat(string(m), 64)
}
