package form

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/norskhelsenett/hecevent/pkg/entity"
	"github.com/norskhelsenett/hecevent/pkg/models/splunkmodels"
)

func actionSettings(t *testing.T, text string) splunkmodels.ActionSettings {
	t.Helper()
	var s splunkmodels.ActionSettings
	require.NoError(t, json.Unmarshal([]byte(text), &s))
	return s
}

func settingsJSON(t *testing.T, s splunkmodels.ActionSettings) string {
	t.Helper()
	b, err := json.Marshal(s)
	require.NoError(t, err)
	return string(b)
}

func TestInitValuesFromSettings(t *testing.T) {
	state := InitValues(actionSettings(t, `{"splunkEvent":{
		"host":"host","source":"source","sourcetype":"sourcetype","index":"index",
		"time":123456.6,"event":{"a":"b"},"fields":{"c":"d","e":"f"}}}`))

	assert.Equal(t, "host", state.Host)
	assert.Equal(t, "source", state.Source)
	assert.Equal(t, "sourcetype", state.Sourcetype)
	assert.Equal(t, "index", state.Index)
	assert.Equal(t, "123456.6", state.Time)
	assert.Equal(t, "{\n  \"a\": \"b\"\n}", state.EventRaw)
	assert.Equal(t, "{\n  \"c\": \"d\",\n  \"e\": \"f\"\n}", state.FieldsRaw)
	assert.Equal(t, splunkmodels.EditorRaw, state.EventType)
	assert.Equal(t, splunkmodels.EditorRaw, state.FieldsType)
	assert.Empty(t, state.EventJSONPairs)
	assert.NotNil(t, state.EventJSONPairs)
	assert.Empty(t, state.FieldsJSONPairs)
}

func TestInitValuesDefaults(t *testing.T) {
	for _, settings := range []splunkmodels.ActionSettings{
		{},
		actionSettings(t, `{"splunkEvent":{}}`),
		actionSettings(t, `{"splunkEvent":{"host":"","time":0,"event":null,"fields":false}}`),
	} {
		state := InitValues(settings)

		assert.Equal(t, "", state.Host)
		assert.Equal(t, "", state.Time)
		assert.Equal(t, "", state.EventRaw)
		assert.Equal(t, "", state.FieldsRaw)
		assert.Equal(t, splunkmodels.EditorRaw, state.EventType)
	}
}

func TestInitValuesKeepsStringEvent(t *testing.T) {
	state := InitValues(actionSettings(t, `{"splunkEvent":{"event":"raw event","time":"%time%"}}`))

	assert.Equal(t, "raw event", state.EventRaw)
	assert.Equal(t, "%time%", state.Time)
}

func TestSettingsFromFormValues(t *testing.T) {
	state := InitValues(actionSettings(t, `{"splunkEvent":{"host":"host","event":{"a":"b"},"fields":{"c":"d"}}}`))
	state.EventRaw = "event text"
	state.Host = "new host"
	state.Source = "new source"
	state.Sourcetype = "new source type"
	state.Index = "new index"
	state.Time = "4321"
	state.FieldsRaw = `{"a":"b"}`

	got := settingsJSON(t, Settings(state))

	assert.Equal(t, `{"splunkEvent":{"host":"new host","source":"new source","sourcetype":"new source type","index":"new index","time":4321,"event":"event text","fields":{"a":"b"}}}`, got)
}

func TestSettingsFromJSONEditors(t *testing.T) {
	state := InitValues(actionSettings(t, `{"splunkEvent":{"event":{"a":"b","c":{"d":"e"}},"fields":{"f":"g","h":"i"}}}`))

	state = SwitchEventType(state, splunkmodels.EditorJSON)
	state = SwitchFieldsType(state, splunkmodels.EditorJSON)

	require.Equal(t, []splunkmodels.Variable{{Key: "a", Value: "b"}, {Key: "c.d", Value: "e"}}, state.EventJSONPairs)
	require.Equal(t, []splunkmodels.Variable{{Key: "f", Value: "g"}, {Key: "h", Value: "i"}}, state.FieldsJSONPairs)

	// Delete the first rows and edit the remaining ones.
	state.EventJSONPairs = state.EventJSONPairs[1:]
	state.EventJSONPairs[0].Key = "a"
	state.FieldsJSONPairs = state.FieldsJSONPairs[1:]
	state.FieldsJSONPairs[0].Key = "a"
	state.FieldsJSONPairs[0].Value = "b"

	assert.JSONEq(t, `{"splunkEvent":{"event":{"a":"e"},"fields":{"a":"b"}}}`, settingsJSON(t, Settings(state)))
}

func TestSettingsTimeCoercion(t *testing.T) {
	tests := []struct {
		time string
		want string
	}{
		{"1433188255", `1433188255`},
		{"123.450", `123.45`},
		{" 12 ", `12`},
		{"%timestamp%", `"%timestamp%"`},
		{"abc", `"abc"`},
		{"0", `"0"`},
		{"   ", `"   "`},
		{"1e21", `1e+21`},
		{"0.0000001", `1e-7`},
	}

	for _, tt := range tests {
		got := settingsJSON(t, Settings(splunkmodels.FormState{Time: tt.time}))
		assert.Equal(t, `{"splunkEvent":{"time":`+tt.want+`}}`, got, tt.time)
	}
}

func TestSettingsRawFallsBackToText(t *testing.T) {
	state := splunkmodels.FormState{
		EventType:  splunkmodels.EditorRaw,
		EventRaw:   `{not json`,
		FieldsType: splunkmodels.EditorRaw,
		FieldsRaw:  `{"a":"b"}`,
	}

	assert.Equal(t, `{"splunkEvent":{"event":"{not json","fields":{"a":"b"}}}`, settingsJSON(t, Settings(state)))
}

func TestSettingsRawOmitsFalsyValues(t *testing.T) {
	for _, raw := range []string{"", "0", "false", "null"} {
		state := splunkmodels.FormState{EventRaw: raw, FieldsRaw: raw}
		assert.Equal(t, `{"splunkEvent":{}}`, settingsJSON(t, Settings(state)), raw)
	}

	state := splunkmodels.FormState{EventRaw: "12"}
	assert.Equal(t, `{"splunkEvent":{"event":12}}`, settingsJSON(t, Settings(state)))
}

func TestSettingsEmptyJSONFieldsKeepsEvent(t *testing.T) {
	state := splunkmodels.FormState{
		EventType:       splunkmodels.EditorJSON,
		EventJSONPairs:  []splunkmodels.Variable{{Key: "a", Value: "b"}},
		FieldsType:      splunkmodels.EditorJSON,
		FieldsJSONPairs: []splunkmodels.Variable{{}, {}},
	}

	assert.Equal(t, `{"splunkEvent":{"event":{"a":"b"}}}`, settingsJSON(t, Settings(state)))
}

func TestSettingsEmptyJSONEventIsOmitted(t *testing.T) {
	state := splunkmodels.FormState{
		EventType:       splunkmodels.EditorJSON,
		EventJSONPairs:  []splunkmodels.Variable{{}},
		FieldsType:      splunkmodels.EditorJSON,
		FieldsJSONPairs: []splunkmodels.Variable{{Key: "f", Value: "%field%"}},
	}

	assert.Equal(t, `{"splunkEvent":{"fields":{"f":"%field%"}}}`, settingsJSON(t, Settings(state)))
}

func TestInitSettingsRoundTrip(t *testing.T) {
	original := `{"splunkEvent":{"host":"abc.splunk.com","source":"test12","sourcetype":"extension","index":"main","time":1433188255,"event":{"a":"b","c":{"d":"e"}},"fields":{"firstname":"abc"}}}`

	got := settingsJSON(t, Settings(InitValues(actionSettings(t, original))))

	assert.Equal(t, original, got)
}

func TestSettingsValueTypes(t *testing.T) {
	s := Settings(splunkmodels.FormState{EventType: splunkmodels.EditorJSON, EventJSONPairs: []splunkmodels.Variable{{Key: "n", Value: "12"}}})

	event, ok := s.SplunkEvent.Get(splunkmodels.KeyEvent)
	require.True(t, ok)
	obj, ok := event.AsObject()
	require.True(t, ok)
	n, ok := obj.Get("n")
	require.True(t, ok)
	assert.Equal(t, entity.String, n.Kind())
}
