package validators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/norskhelsenett/hecevent/pkg/entity"
)

func TestIsInteger(t *testing.T) {
	assert.True(t, IsInteger(0))
	assert.True(t, IsInteger(-42))
	assert.True(t, IsInteger(1433188255))
	assert.False(t, IsInteger(1.5))
	assert.False(t, IsInteger(math.NaN()))
	assert.False(t, IsInteger(math.Inf(1)))
}

func TestIsFloat(t *testing.T) {
	assert.True(t, IsFloat(123.45))
	assert.True(t, IsFloat(7))
	assert.False(t, IsFloat(math.NaN()))
	assert.False(t, IsFloat(math.Inf(-1)))
}

func TestIsObject(t *testing.T) {
	obj, err := entity.ParseString(`{"a":1}`)
	require.NoError(t, err)
	arr, err := entity.ParseString(`[1]`)
	require.NoError(t, err)

	assert.True(t, IsObject(obj))
	assert.True(t, IsObject(entity.ObjectValue(nil)))
	assert.False(t, IsObject(arr))
	assert.False(t, IsObject(entity.NullValue()))
	assert.False(t, IsObject(entity.StringValue("{}")))
}

func TestIsDataElementToken(t *testing.T) {
	assert.True(t, IsDataElementToken("%pageName%"))
	assert.True(t, IsDataElementToken("%event.timestamp%"))
	assert.False(t, IsDataElementToken("%%"))
	assert.False(t, IsDataElementToken("%a%b%"))
	assert.False(t, IsDataElementToken("pageName"))
	assert.False(t, IsDataElementToken("%pageName"))
	assert.False(t, IsDataElementToken(" %pageName% "))
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1433188255", 1433188255, true},
		{"123.45", 123.45, true},
		{" 42 ", 42, true},
		{"-1.5e3", -1500, true},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"0x10", 16, true},
		{"0b101", 5, true},
		{"abc", 0, false},
		{"12abc", 0, false},
		{"", 0, false},
		{"   ", 0, false},
		{"Infinity", 0, false},
		{"NaN", 0, false},
		{"1e999", 0, false},
		{"1_000", 0, false},
		{"%time%", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseNumber(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
}
