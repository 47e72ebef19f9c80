package gift

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Number is a coerced numeric answer value.
// It remembers whether the raw input was an integer token so that whole numbers
// render without a fractional part. Integers that do not fit in int64 are kept exactly.
type Number struct {
	integer int64
	large   *big.Int
	float   float64
	isFloat bool
}

// IntNumber returns an integer Number.
func IntNumber(i int64) Number {
	return Number{integer: i}
}

// BigIntNumber returns an integer Number of any size.
func BigIntNumber(i *big.Int) Number {
	if i.IsInt64() {
		return IntNumber(i.Int64())
	}
	return Number{large: new(big.Int).Set(i)}
}

// FloatNumber returns a float Number, rendered with a fractional part.
func FloatNumber(f float64) Number {
	return Number{float: f, isFloat: true}
}

// IsFloat reports whether the number came from a float token or value.
func (n Number) IsFloat() bool {
	return n.isFloat
}

// Float64 returns the nearest float64 value.
func (n Number) Float64() float64 {
	switch {
	case n.isFloat:
		return n.float
	case n.large != nil:
		f, _ := new(big.Float).SetInt(n.large).Float64()
		return f
	}
	return float64(n.integer)
}

// Int64 returns the integer value. For a float it is truncated toward zero,
// and integers beyond int64 are not representable.
func (n Number) Int64() int64 {
	switch {
	case n.isFloat:
		return int64(n.float)
	case n.large != nil:
		return n.large.Int64()
	}
	return n.integer
}

// IsZero reports whether the number equals zero.
func (n Number) IsZero() bool {
	switch {
	case n.isFloat:
		return n.float == 0
	case n.large != nil:
		return n.large.Sign() == 0
	}
	return n.integer == 0
}

// AsFloat converts the number into its float form, e.g. 2 becomes 2.0.
func (n Number) AsFloat() Number {
	return FloatNumber(n.Float64())
}

// greaterThan reports n > other, comparing integers and floats exactly.
// NaN never compares greater.
func (n Number) greaterThan(other Number) bool {
	if !n.isFloat && !other.isFloat && n.large == nil && other.large == nil {
		return n.integer > other.integer
	}
	if (n.isFloat && math.IsNaN(n.float)) || (other.isFloat && math.IsNaN(other.float)) {
		return false
	}
	return n.exact().Cmp(other.exact()) > 0
}

func (n Number) exact() *big.Float {
	switch {
	case n.isFloat:
		return new(big.Float).SetFloat64(n.float)
	case n.large != nil:
		return new(big.Float).SetInt(n.large)
	}
	return new(big.Float).SetInt64(n.integer)
}

func (n Number) String() string {
	switch {
	case n.isFloat:
		return formatFloat(n.float)
	case n.large != nil:
		return n.large.String()
	}
	return strconv.FormatInt(n.integer, 10)
}

// formatFloat prints the shortest representation that round-trips.
// Floats always keep a fractional part ("5.0"), and very small or very large
// magnitudes switch to exponent form ("1e-05", "1e+16").
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// CoerceNumeric converts a raw value into a Number.
// Strings are parsed as an integer token first and as a float token second.
// Underscores are accepted between digits, as in "1_000".
// Go integer and float values are taken as they are.
// Anything else, including booleans and nil, is not a number.
func CoerceNumeric(raw any) (Number, bool) {
	if s, ok := raw.(string); ok {
		return parseNumeric(s)
	}
	return numberFromValue(raw)
}

func parseNumeric(s string) (Number, bool) {
	s, ok := stripDigitSeparators(strings.TrimSpace(s))
	if !ok {
		return Number{}, false
	}
	if n, ok := parseInteger(s); ok {
		return n, true
	}
	// hexadecimal floats are not numeric tokens here
	if strings.ContainsAny(s, "xX") {
		return Number{}, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			return Number{}, false
		}
	}
	return FloatNumber(f), true
}

// parseInteger parses an optionally signed run of decimal digits of any length.
// Digit separators must already be stripped.
func parseInteger(s string) (Number, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return IntNumber(i), true
	}
	if !isIntegerToken(s) {
		return Number{}, false
	}
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Number{}, false
	}
	return BigIntNumber(i), true
}

func isIntegerToken(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// stripDigitSeparators removes underscores that sit between two digits.
// Any other underscore makes the token invalid.
func stripDigitSeparators(s string) (string, bool) {
	if !strings.Contains(s, "_") {
		return s, true
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return s, false
		}
	}
	return strings.ReplaceAll(s, "_", ""), true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func numberFromValue(raw any) (Number, bool) {
	switch v := raw.(type) {
	case Number:
		return v, true
	case *big.Int:
		if v == nil {
			return Number{}, false
		}
		return BigIntNumber(v), true
	case int:
		return IntNumber(int64(v)), true
	case int8:
		return IntNumber(int64(v)), true
	case int16:
		return IntNumber(int64(v)), true
	case int32:
		return IntNumber(int64(v)), true
	case int64:
		return IntNumber(v), true
	case uint:
		return uintNumber(uint64(v)), true
	case uint8:
		return IntNumber(int64(v)), true
	case uint16:
		return IntNumber(int64(v)), true
	case uint32:
		return IntNumber(int64(v)), true
	case uint64:
		return uintNumber(v), true
	case float32:
		return FloatNumber(float64(v)), true
	case float64:
		return FloatNumber(v), true
	}
	return Number{}, false
}

func uintNumber(u uint64) Number {
	if u > math.MaxInt64 {
		return BigIntNumber(new(big.Int).SetUint64(u))
	}
	return IntNumber(int64(u))
}
