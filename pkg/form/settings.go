package form

import (
	"github.com/norskhelsenett/hecevent/pkg/entity"
	"github.com/norskhelsenett/hecevent/pkg/models/splunkmodels"
	"github.com/norskhelsenett/hecevent/pkg/validators"
)

// Settings collapses the form state into the settings the host persists.
// Empty scalars are left out, time becomes a number when it is one, and
// event and fields are built from their editors independently.
func Settings(state splunkmodels.FormState) splunkmodels.ActionSettings {
	ev := entity.NewObject()

	scalars := []struct {
		key   string
		value string
	}{
		{splunkmodels.KeyHost, state.Host},
		{splunkmodels.KeySource, state.Source},
		{splunkmodels.KeySourcetype, state.Sourcetype},
		{splunkmodels.KeyIndex, state.Index},
		{splunkmodels.KeyTime, state.Time},
	}

	for _, s := range scalars {
		if s.value == "" {
			continue
		}
		if s.key == splunkmodels.KeyTime {
			ev.Set(s.key, timeValue(s.value))
			continue
		}
		ev.Set(s.key, entity.StringValue(s.value))
	}

	if event, ok := payload(state.EventType, state.EventRaw, state.EventJSONPairs); ok {
		ev.Set(splunkmodels.KeyEvent, event)
	}

	if fields, ok := payload(state.FieldsType, state.FieldsRaw, state.FieldsJSONPairs); ok {
		ev.Set(splunkmodels.KeyFields, fields)
	}

	return splunkmodels.ActionSettings{SplunkEvent: ev}
}

// timeValue keeps data element tokens and other non numeric text as strings.
// A zero timestamp is kept as text as well.
func timeValue(text string) entity.Value {
	if n, ok := validators.ParseNumber(text); ok && n != 0 {
		return entity.FloatValue(n)
	}
	return entity.StringValue(text)
}

// payload resolves the event or fields editor. In json mode the non-empty
// rows are unflattened; in raw mode valid JSON is used as parsed and
// anything else is sent as the raw text.
func payload(mode splunkmodels.EditorType, raw string, pairs []splunkmodels.Variable) (entity.Value, bool) {
	if editorType(mode) == splunkmodels.EditorJSON {
		filtered := make([]splunkmodels.Variable, 0, len(pairs))
		for _, p := range pairs {
			if !p.IsEmpty() {
				filtered = append(filtered, p)
			}
		}

		obj := entity.AddToEntityFromVariables(entity.NewObject(), filtered)
		if obj.Len() == 0 {
			return entity.Value{}, false
		}
		return entity.ObjectValue(obj), true
	}

	v, err := entity.ParseString(raw)
	if err != nil {
		v = entity.StringValue(raw)
	}
	return v, v.Truthy()
}
