package form

import (
	"github.com/norskhelsenett/hecevent/pkg/entity"
	"github.com/norskhelsenett/hecevent/pkg/models/splunkmodels"
)

// InitValues builds the form state for persisted action settings. Missing
// or empty values become "", object events and fields are pretty printed
// and both editors start in raw mode.
func InitValues(settings splunkmodels.ActionSettings) splunkmodels.FormState {
	ev := settings.SplunkEvent

	return splunkmodels.FormState{
		Host:            scalarText(ev, splunkmodels.KeyHost),
		Source:          scalarText(ev, splunkmodels.KeySource),
		Sourcetype:      scalarText(ev, splunkmodels.KeySourcetype),
		Index:           scalarText(ev, splunkmodels.KeyIndex),
		Time:            scalarText(ev, splunkmodels.KeyTime),
		EventType:       splunkmodels.EditorRaw,
		EventRaw:        rawText(ev, splunkmodels.KeyEvent),
		EventJSONPairs:  []splunkmodels.Variable{},
		FieldsType:      splunkmodels.EditorRaw,
		FieldsRaw:       rawText(ev, splunkmodels.KeyFields),
		FieldsJSONPairs: []splunkmodels.Variable{},
	}
}

func scalarText(ev *entity.Object, key string) string {
	v, ok := ev.Get(key)
	if !ok || !v.Truthy() {
		return ""
	}
	return v.Text()
}

func rawText(ev *entity.Object, key string) string {
	v, ok := ev.Get(key)
	if !ok || !v.Truthy() {
		return ""
	}

	switch v.Kind() {
	case entity.ObjectKind, entity.Array:
		text, err := entity.Indent(v, jsonIndent)
		if err != nil {
			return v.Text()
		}
		return text
	}
	return v.Text()
}
