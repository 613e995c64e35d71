package quickinput

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntRule(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
		fails    bool
	}{
		{
			name:     "Plain",
			raw:      "12",
			expected: 12,
		},
		{
			name:     "NegativeWithPadding",
			raw:      "\t -3 \n",
			expected: -3,
		},
		{
			name:     "ExplicitPositive",
			raw:      "+7",
			expected: 7,
		},
		{
			name:  "Letters",
			raw:   "abc",
			fails: true,
		},
		{
			name:  "Fractional",
			raw:   "1.5",
			fails: true,
		},
		{
			name:  "Empty",
			raw:   "",
			fails: true,
		},
	}

	rule := IntRule[int](0)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			val, err := rule.Parse(tc.raw)
			if tc.fails {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, val)
		})
	}
}

func TestIntRule_Width(t *testing.T) {
	rule := IntRule[int8](8)
	val, err := rule.Parse("127")
	assert.NoError(t, err)
	assert.Equal(t, int8(127), val)

	_, err = rule.Parse("128")
	assert.Error(t, err, "Out-of-range input should be a failed attempt")
	assert.Equal(t, "Please enter a valid number (8 bits).", rule.DefaultError)
}

func TestUintRule(t *testing.T) {
	rule := UintRule[uint16](16)
	val, err := rule.Parse(" 65535 ")
	assert.NoError(t, err)
	assert.Equal(t, uint16(65535), val)

	_, err = rule.Parse("-1")
	assert.Error(t, err, "Negative input should be a failed attempt")
	_, err = rule.Parse("65536")
	assert.Error(t, err)
	assert.Equal(t, "Please enter a valid positive number (16 bits).", rule.DefaultError)
}

func TestFloatRule(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
		fails    bool
	}{
		{
			name:     "DotSeparator",
			raw:      "3.14",
			expected: 3.14,
		},
		{
			name:     "CommaSeparator",
			raw:      "3,14",
			expected: 3.14,
		},
		{
			name:     "Exponent",
			raw:      "-1.5e3",
			expected: -1500,
		},
		{
			name:     "WholeNumber",
			raw:      " 42 ",
			expected: 42,
		},
		{
			name:  "Letters",
			raw:   "abc",
			fails: true,
		},
		{
			name:  "Empty",
			raw:   "",
			fails: true,
		},
	}

	rule := FloatRule[float64](64)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			val, err := rule.Parse(tc.raw)
			if tc.fails {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tc.expected, val, 0.0001)
		})
	}
}

func TestBoolRule(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected bool
		fails    bool
	}{
		{
			name:     "ShortYes",
			raw:      "y",
			expected: true,
		},
		{
			name:     "MixedCaseTrue",
			raw:      "TrUe",
			expected: true,
		},
		{
			name:     "NumericTrue",
			raw:      "1",
			expected: true,
		},
		{
			name:     "PaddedYes",
			raw:      "  YES  ",
			expected: true,
		},
		{
			name:     "ShortNo",
			raw:      "n",
			expected: false,
		},
		{
			name:     "Off",
			raw:      "off",
			expected: false,
		},
		{
			name:  "OutsideTokenSets",
			raw:   "maybe",
			fails: true,
		},
		{
			name:  "Empty",
			raw:   "",
			fails: true,
		},
	}

	rule := BoolRule()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			val, err := rule.Parse(tc.raw)
			if tc.fails {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, val)
		})
	}
}

func TestBoolRule_ReplacedTokens(t *testing.T) {
	oldTrue, oldFalse := TrueTokens, FalseTokens
	defer func() {
		TrueTokens, FalseTokens = oldTrue, oldFalse
	}()
	TrueTokens = []string{"ja"}
	FalseTokens = []string{"nein"}

	rule := BoolRule()
	val, err := rule.Parse("JA")
	assert.NoError(t, err)
	assert.True(t, val)

	_, err = rule.Parse("yes")
	assert.Error(t, err, "Replaced token tables should fully define the accepted set")
}

func TestNonEmptyRule(t *testing.T) {
	rule := NonEmptyRule()
	val, err := rule.Parse("  hello \t")
	assert.NoError(t, err)
	assert.Equal(t, "hello", val)

	_, err = rule.Parse("")
	assert.Error(t, err)
	_, err = rule.Parse("   ")
	assert.Error(t, err, "Whitespace-only input should be a failed attempt")
}

func TestRawStringRule(t *testing.T) {
	rule := RawStringRule()
	val, err := rule.Parse("  spaced out  ")
	assert.NoError(t, err)
	assert.Equal(t, "  spaced out  ", val)

	val, err = rule.Parse("")
	assert.NoError(t, err, "RawStringRule accepts empty lines")
	assert.Equal(t, "", val)
}

func TestCharRule(t *testing.T) {
	rule := CharRule()
	val, err := rule.Parse(" xyz ")
	assert.NoError(t, err)
	assert.Equal(t, 'x', val)

	val, err = rule.Parse("é")
	assert.NoError(t, err, "Multi-byte runes should parse whole")
	assert.Equal(t, 'é', val)

	_, err = rule.Parse("   ")
	assert.Error(t, err)
}
