package value_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbln-org/gbln/value"
)

func TestScalarConstructorsAndAccessors(t *testing.T) {
	v := value.NewI8(-5)
	assert.Equal(t, value.I8, v.TypeOf())
	i, ok := v.AsI8()
	require.True(t, ok)
	assert.Equal(t, int8(-5), i)

	_, ok = v.AsI16()
	assert.False(t, ok)
	_, ok = v.AsString()
	assert.False(t, ok)
}

func TestNullDistinctFromAbsence(t *testing.T) {
	obj := value.NewObject()
	require.NoError(t, value.ObjectInsert(obj, "optional", value.NewNull()))

	child, ok := obj.ObjectGet("optional")
	require.True(t, ok)
	assert.True(t, child.IsNull())

	_, ok = obj.ObjectGet("missing")
	assert.False(t, ok)
}

func TestObjectInsertRejectsDuplicateKey(t *testing.T) {
	obj := value.NewObject()
	require.NoError(t, value.ObjectInsert(obj, "id", value.NewU32(1)))
	err := value.ObjectInsert(obj, "id", value.NewU32(2))
	assert.Error(t, err)
	assert.Equal(t, 1, obj.ObjectLen())
}

func TestObjectInsertClonesChild(t *testing.T) {
	obj := value.NewObject()
	child := value.NewU32(7)
	require.NoError(t, value.ObjectInsert(obj, "n", child))

	got, ok := obj.ObjectGet("n")
	require.True(t, ok)
	assert.NotSame(t, child, got)
	assert.True(t, child.Equal(got))
}

func TestArrayPushAndTypedArrayRejectsMismatch(t *testing.T) {
	arr := value.NewTypedArray(value.S16)
	require.NoError(t, value.ArrayPush(arr, mustString(t, value.S16, "rust")))
	require.NoError(t, value.ArrayPush(arr, mustString(t, value.S16, "go")))
	assert.Equal(t, 2, arr.ArrayLen())

	err := value.ArrayPush(arr, value.NewI8(1))
	assert.Error(t, err)
	assert.Equal(t, 2, arr.ArrayLen())
}

func TestStringTooLongRejected(t *testing.T) {
	_, err := value.NewString(value.S8, string(make([]byte, 257)))
	assert.Error(t, err)

	_, err = value.NewString(value.S8, string(make([]byte, 256)))
	assert.NoError(t, err)
}

func TestEqualIsOrderIndependentForObjects(t *testing.T) {
	a := value.NewObject()
	require.NoError(t, value.ObjectInsert(a, "x", value.NewI32(1)))
	require.NoError(t, value.ObjectInsert(a, "y", value.NewI32(2)))

	b := value.NewObject()
	require.NoError(t, value.ObjectInsert(b, "y", value.NewI32(2)))
	require.NoError(t, value.ObjectInsert(b, "x", value.NewI32(1)))

	assert.Empty(t, cmp.Diff(a, b))
}

func mustString(t *testing.T, tag value.Tag, s string) *value.Value {
	t.Helper()
	v, err := value.NewString(tag, s)
	require.NoError(t, err)
	return v
}
