package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) Value {
	t.Helper()
	v, err := ParseString(text)
	require.NoError(t, err)
	return v
}

func TestAddToVariablesFromEntity(t *testing.T) {
	v := mustParse(t, `{"a":"b","c":{"d":"e","f":{"g":1}},"h":true,"i":null,"j":[1,"x"]}`)

	got := AddToVariablesFromEntity(nil, v, "")

	assert.Equal(t, []Variable{
		{Key: "a", Value: "b"},
		{Key: "c.d", Value: "e"},
		{Key: "c.f.g", Value: "1"},
		{Key: "h", Value: "true"},
		{Key: "i", Value: "null"},
		{Key: "j", Value: `[1,"x"]`},
	}, got)
}

func TestAddToVariablesFromEntityKeepsBaseAndPrefix(t *testing.T) {
	base := []Variable{{Key: "existing", Value: "1"}}

	got := AddToVariablesFromEntity(base, mustParse(t, `{"b":"c"}`), "a")

	assert.Equal(t, []Variable{
		{Key: "existing", Value: "1"},
		{Key: "a.b", Value: "c"},
	}, got)
}

func TestAddToVariablesFromEntityIgnoresNonObjects(t *testing.T) {
	for _, text := range []string{`"abc"`, `12`, `true`, `null`, `[1,2]`} {
		assert.Empty(t, AddToVariablesFromEntity(nil, mustParse(t, text), ""), text)
	}
}

func TestAddToVariablesFromEntityIsStable(t *testing.T) {
	v := mustParse(t, `{"z":"1","a":{"y":"2","b":"3"},"m":"4"}`)

	first := AddToVariablesFromEntity(nil, v, "")
	second := AddToVariablesFromEntity(nil, v, "")

	assert.Equal(t, first, second)
	assert.Equal(t, "z", first[0].Key)
	assert.Equal(t, "a.y", first[1].Key)
	assert.Equal(t, "a.b", first[2].Key)
	assert.Equal(t, "m", first[3].Key)
}

func TestAddToEntityFromVariables(t *testing.T) {
	got := AddToEntityFromVariables(NewObject(), []Variable{
		{Key: "a", Value: "b"},
		{Key: "c.d", Value: "e"},
		{Key: "c.f", Value: "%dataElement%"},
		{Key: "", Value: ""},
		{Key: "n", Value: "12"},
	})

	assert.True(t, mustParse(t, `{"a":"b","c":{"d":"e","f":"%dataElement%"},"n":"12"}`).Equal(ObjectValue(got)))
	assert.Equal(t, []string{"a", "c", "n"}, got.Keys())
}

func TestAddToEntityFromVariablesEmpty(t *testing.T) {
	assert.Equal(t, 0, AddToEntityFromVariables(nil, nil).Len())
	assert.Equal(t, 0, AddToEntityFromVariables(NewObject(), []Variable{{}, {}}).Len())
}

func TestAddToEntityFromVariablesLastPairWins(t *testing.T) {
	got := AddToEntityFromVariables(nil, []Variable{
		{Key: "a", Value: "x"},
		{Key: "a.b", Value: "y"},
		{Key: "c.d", Value: "1"},
		{Key: "c", Value: "2"},
		{Key: "e", Value: "first"},
		{Key: "e", Value: "second"},
	})

	assert.True(t, mustParse(t, `{"a":{"b":"y"},"c":"2","e":"second"}`).Equal(ObjectValue(got)))
}

func TestAddToEntityFromVariablesReusesIntermediateObjects(t *testing.T) {
	got := AddToEntityFromVariables(nil, []Variable{
		{Key: "a.b", Value: "1"},
		{Key: "a.c", Value: "2"},
	})

	b, err := got.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"b":"1","c":"2"}}`, string(b))
}

func TestEntityVariablesRoundTrip(t *testing.T) {
	tests := []string{
		`{}`,
		`{"a":"b"}`,
		`{"a":"b","c":{"d":"e"}}`,
		`{"a":{"b":{"c":{"d":"deep"}}},"e":"f","g":{"h":"%token%"}}`,
		`{"first":"x","nested":{"second":"y","third":{"fourth":"z"}},"last":""}`,
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			original := mustParse(t, text)

			variables := AddToVariablesFromEntity(nil, original, "")
			rebuilt := AddToEntityFromVariables(NewObject(), variables)

			assert.True(t, original.Equal(ObjectValue(rebuilt)))
		})
	}
}

func TestEntityVariablesRoundTripStringifiesScalarLeaves(t *testing.T) {
	original := mustParse(t, `{"a":1,"b":{"c":true,"d":null,"e":1.50},"f":[1,"x"]}`)

	variables := AddToVariablesFromEntity(nil, original, "")
	rebuilt := AddToEntityFromVariables(NewObject(), variables)

	b, err := rebuilt.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"a":"1","b":{"c":"true","d":"null","e":"1.50"},"f":"[1,\"x\"]"}`, string(b))
	assert.False(t, original.Equal(ObjectValue(rebuilt)))
}
