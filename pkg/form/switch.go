package form

import (
	"github.com/norskhelsenett/hecevent/pkg/entity"
	"github.com/norskhelsenett/hecevent/pkg/models/splunkmodels"
)

// SwitchEventType moves the event editor to mode, carrying its content over.
func SwitchEventType(state splunkmodels.FormState, mode splunkmodels.EditorType) splunkmodels.FormState {
	state.EventType = editorType(mode)
	state.EventRaw, state.EventJSONPairs = convertEditor(state.EventType, state.EventRaw, state.EventJSONPairs)
	return state
}

// SwitchFieldsType moves the fields editor to mode, carrying its content over.
func SwitchFieldsType(state splunkmodels.FormState, mode splunkmodels.EditorType) splunkmodels.FormState {
	state.FieldsType = editorType(mode)
	state.FieldsRaw, state.FieldsJSONPairs = convertEditor(state.FieldsType, state.FieldsRaw, state.FieldsJSONPairs)
	return state
}

// convertEditor fills the editor being switched to from the other one.
// Switching to json flattens the raw text and always leaves at least one
// row. Switching to raw only overwrites the text when a row carries a key.
func convertEditor(
	mode splunkmodels.EditorType,
	raw string,
	pairs []splunkmodels.Variable,
) (string, []splunkmodels.Variable) {
	if mode == splunkmodels.EditorJSON {
		var variables []splunkmodels.Variable
		if v, err := entity.ParseString(raw); err == nil {
			variables = entity.AddToVariablesFromEntity(variables, v, "")
		}
		if len(variables) == 0 {
			variables = append(variables, splunkmodels.Variable{})
		}
		return raw, variables
	}

	if len(pairs) > 1 || (len(pairs) == 1 && pairs[0].Key != "") {
		obj := entity.AddToEntityFromVariables(entity.NewObject(), pairs)
		text, err := entity.Indent(entity.ObjectValue(obj), jsonIndent)
		if err != nil {
			return raw, pairs
		}
		if text == "{}" {
			text = ""
		}
		return text, pairs
	}

	return raw, pairs
}
