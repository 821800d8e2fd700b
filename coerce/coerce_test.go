package coerce_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbln-org/gbln/coerce"
	"github.com/gbln-org/gbln/reporter"
	"github.com/gbln-org/gbln/value"
)

func TestIntegerBoundaryEdges(t *testing.T) {
	cases := []struct {
		tag   value.Tag
		lex   string
		valid bool
	}{
		{value.I8, "-128", true},
		{value.I8, "127", true},
		{value.I8, "-129", false},
		{value.I8, "128", false},
		{value.U8, "255", true},
		{value.U8, "256", false},
		{value.I64, "-9223372036854775808", true},
		{value.U64, "18446744073709551615", true},
	}
	for _, tc := range cases {
		v, err := coerce.Coerce(tc.tag, tc.lex, reporter.Position{})
		if tc.valid {
			require.NoErrorf(t, err, "%s(%s)", tc.tag, tc.lex)
			assert.Equal(t, tc.tag, v.TypeOf())
		} else {
			require.Errorf(t, err, "%s(%s)", tc.tag, tc.lex)
		}
	}
}

func TestIntOutOfRangeSurfacesAsTypeMismatch(t *testing.T) {
	_, err := coerce.Coerce(value.I8, "999", reporter.Position{})
	require.Error(t, err)
	var diag *reporter.Diagnostic
	require.ErrorAs(t, err, &diag)
	assert.Equal(t, reporter.TypeMismatch, diag.Kind)
}

func TestStringLengthBoundary(t *testing.T) {
	ok := make([]byte, 256)
	_, err := coerce.Coerce(value.S8, string(ok), reporter.Position{})
	assert.NoError(t, err)

	tooLong := make([]byte, 257)
	_, err = coerce.Coerce(value.S8, string(tooLong), reporter.Position{})
	require.Error(t, err)
	var diag *reporter.Diagnostic
	require.ErrorAs(t, err, &diag)
	assert.Equal(t, reporter.StringTooLong, diag.Kind)
}

func TestBoolLiterals(t *testing.T) {
	for _, lex := range []string{"t", "true"} {
		v, err := coerce.Coerce(value.Bool, lex, reporter.Position{})
		require.NoError(t, err)
		b, ok := v.AsBool()
		require.True(t, ok)
		assert.True(t, b)
	}
	for _, lex := range []string{"f", "false"} {
		v, err := coerce.Coerce(value.Bool, lex, reporter.Position{})
		require.NoError(t, err)
		b, ok := v.AsBool()
		require.True(t, ok)
		assert.False(t, b)
	}
	_, err := coerce.Coerce(value.Bool, "yes", reporter.Position{})
	assert.Error(t, err)
}

func TestNullPayloadMustBeEmpty(t *testing.T) {
	v, err := coerce.Coerce(value.Null, "", reporter.Position{})
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	_, err = coerce.Coerce(value.Null, "x", reporter.Position{})
	assert.Error(t, err)
}

func TestFloatParsing(t *testing.T) {
	v, err := coerce.Coerce(value.F64, "98.5", reporter.Position{})
	require.NoError(t, err)
	f, ok := v.AsF64()
	require.True(t, ok)
	assert.InDelta(t, 98.5, f, 1e-9)
}

func TestUnsignedRejectsNegative(t *testing.T) {
	_, err := coerce.Coerce(value.U32, "-1", reporter.Position{})
	assert.Error(t, err)
}
