package contracts

import (
	"encoding/json"
	"math"
	"strconv"
)

// Float is an optional float64 used for every fundamental and derived metric.
// A missing value stays missing through every calculation; it is never
// substituted with zero.
type Float struct {
	Value float64
	Valid bool
}

// FloatFrom wraps a float64. NaN and ±Inf collapse to missing so that an
// infinite value can never be retained in a record.
func FloatFrom(v float64) Float {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Float{}
	}
	return Float{Value: v, Valid: true}
}

// MissingFloat returns the explicit missing marker.
func MissingFloat() Float {
	return Float{}
}

// Float64 returns the wrapped value and whether it is present.
func (f Float) Float64() (float64, bool) {
	return f.Value, f.Valid
}

// String formats the value for tabular output; missing renders as empty.
func (f Float) String() string {
	if !f.Valid {
		return ""
	}
	return strconv.FormatFloat(f.Value, 'f', -1, 64)
}

// MarshalJSON renders missing as null.
func (f Float) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// UnmarshalJSON accepts a number or null.
func (f *Float) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Float{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = FloatFrom(v)
	return nil
}
