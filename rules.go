package quickinput

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Signed is the set of signed integer types readable with [IntRule].
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types readable with [UintRule].
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating-point types readable with [FloatRule].
type Float interface {
	~float32 | ~float64
}

var (
	TrueTokens  = []string{"y", "yes", "true", "1", "on"}  // TrueTokens are the inputs accepted as "true" by [BoolRule], compared case-insensitively. May be replaced.
	FalseTokens = []string{"n", "no", "false", "0", "off"} // FalseTokens are the inputs accepted as "false" by [BoolRule], compared case-insensitively. May be replaced.

	errParse = errors.New("invalid input")
)

// Rule is one conversion strategy: a pure function from a raw line of text to a typed value,
// plus the error message shown when no custom one was given.
// A Rule never reports anything but success or failure; malformed text is a failure, not a panic.
type Rule[T any] struct {
	Parse        func(raw string) (T, error)
	DefaultError string
}

func bitsLabel(bits int) string {
	if bits == 0 {
		return "32/64"
	}
	return strconv.Itoa(bits)
}

// IntRule parses trimmed base-10 signed integers with the given bit size.
// A bit size of 0 means the native int size.
func IntRule[T Signed](bits int) Rule[T] {
	return Rule[T]{
		Parse: func(raw string) (T, error) {
			val, err := strconv.ParseInt(strings.TrimSpace(raw), 10, bits)
			if err != nil {
				var zero T
				return zero, errParse
			}
			return T(val), nil
		},
		DefaultError: fmt.Sprintf("Please enter a valid number (%s bits).", bitsLabel(bits)),
	}
}

// UintRule parses trimmed base-10 unsigned integers with the given bit size.
// A bit size of 0 means the native uint size.
func UintRule[T Unsigned](bits int) Rule[T] {
	return Rule[T]{
		Parse: func(raw string) (T, error) {
			val, err := strconv.ParseUint(strings.TrimSpace(raw), 10, bits)
			if err != nil {
				var zero T
				return zero, errParse
			}
			return T(val), nil
		},
		DefaultError: fmt.Sprintf("Please enter a valid positive number (%s bits).", bitsLabel(bits)),
	}
}

// FloatRule parses trimmed decimal numbers with the given bit size (32 or 64).
// Both '.' and ',' are accepted as the decimal separator, so "3.14" and "3,14" parse the same.
func FloatRule[T Float](bits int) Rule[T] {
	return Rule[T]{
		Parse: func(raw string) (T, error) {
			normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
			val, err := strconv.ParseFloat(normalized, bits)
			if err != nil {
				var zero T
				return zero, errParse
			}
			return T(val), nil
		},
		DefaultError: fmt.Sprintf("Please enter a valid real number (%d bits).", bits),
	}
}

// BoolRule matches trimmed input case-insensitively against [TrueTokens] and [FalseTokens].
// Input outside both sets is a failed attempt.
func BoolRule() Rule[bool] {
	return Rule[bool]{
		Parse: func(raw string) (bool, error) {
			val := strings.ToLower(strings.TrimSpace(raw))
			for _, token := range TrueTokens {
				if val == strings.ToLower(token) {
					return true, nil
				}
			}
			for _, token := range FalseTokens {
				if val == strings.ToLower(token) {
					return false, nil
				}
			}
			return false, errParse
		},
		DefaultError: "Please enter a valid boolean value (true / false).",
	}
}

// NonEmptyRule returns the trimmed input, failing when nothing is left after trimming.
func NonEmptyRule() Rule[string] {
	return Rule[string]{
		Parse: func(raw string) (string, error) {
			val := strings.TrimSpace(raw)
			if len(val) == 0 {
				return "", errParse
			}
			return val, nil
		},
		DefaultError: "Please enter a non-empty value.",
	}
}

// RawStringRule accepts any line as-is, including an empty one.
// Leading and trailing whitespace is preserved.
func RawStringRule() Rule[string] {
	return Rule[string]{
		Parse: func(raw string) (string, error) {
			return raw, nil
		},
		DefaultError: "Please enter a value.",
	}
}

// CharRule returns the first rune of the trimmed input, failing when the line is blank.
// Extra characters after the first are ignored.
func CharRule() Rule[rune] {
	return Rule[rune]{
		Parse: func(raw string) (rune, error) {
			for _, r := range strings.TrimSpace(raw) {
				return r, nil
			}
			return 0, errParse
		},
		DefaultError: "Please enter a character.",
	}
}
