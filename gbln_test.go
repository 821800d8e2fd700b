package gbln_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbln-org/gbln"
	"github.com/gbln-org/gbln/reporter"
)

func TestParseAndSerializeRoundTrip(t *testing.T) {
	v, err := gbln.Parse("{id<u32>(12345)name<s32>(Alice)}")
	require.NoError(t, err)

	text, err := gbln.SerializeCompact(v)
	require.NoError(t, err)
	assert.Equal(t, "{id<u32>(12345)name<s32>(Alice)}", text)
}

func TestParseRecordsLastErrorOnFailure(t *testing.T) {
	reporter.Clear()
	_, err := gbln.Parse("{age<i8>(999)}")
	require.Error(t, err)

	msg, ok := reporter.LastMessage()
	require.True(t, ok)
	assert.Contains(t, msg, "999")
}

func TestParseOptionsRejectsExcessiveDepth(t *testing.T) {
	src := ""
	for i := 0; i < 20; i++ {
		src += "a{"
	}
	for i := 0; i < 20; i++ {
		src += "}"
	}
	_, err := gbln.ParseOptions(src, gbln.Options{MaxDepth: 5})
	assert.Error(t, err)
}

func TestParseAllRunsConcurrently(t *testing.T) {
	texts := []string{
		"{id(1)}",
		"{id(2)}",
		"{id(3)}",
	}
	values, err := gbln.ParseAll(texts)
	require.NoError(t, err)
	require.Len(t, values, 3)

	for i, v := range values {
		id, ok := v.ObjectGet("id")
		require.True(t, ok)
		n, ok := id.AsI64()
		require.True(t, ok)
		assert.Equal(t, int64(i+1), n)
	}
}

func TestParseAllPropagatesFirstError(t *testing.T) {
	texts := []string{"{id(1)}", "{bad"}
	_, err := gbln.ParseAll(texts)
	assert.Error(t, err)
}
