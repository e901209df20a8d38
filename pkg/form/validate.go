package form

import (
	"fmt"
	"strings"

	"github.com/norskhelsenett/hecevent/pkg/entity"
	"github.com/norskhelsenett/hecevent/pkg/jsonparse"
	"github.com/norskhelsenett/hecevent/pkg/models/splunkmodels"
	"github.com/norskhelsenett/hecevent/pkg/validators"
)

// Validate checks the create event form. The returned keys are the field
// paths the host form marks invalid; an empty map means the form is valid.
func Validate(state splunkmodels.FormState) Errors {
	errs := Errors{}

	if editorType(state.EventType) == splunkmodels.EditorRaw {
		if state.EventRaw == "" {
			errs["eventRaw"] = MsgProvideEvent
		}
	} else if len(state.EventJSONPairs) == 1 && state.EventJSONPairs[0].Key == "" {
		errs["eventJsonPairs.0.key"] = MsgProvideKeyName
	} else {
		partialRows(errs, "eventJsonPairs", state.EventJSONPairs)
	}

	if state.Time != "" && !validTime(state.Time) {
		errs["time"] = MsgProvideTimestamp
	}

	if editorType(state.FieldsType) == splunkmodels.EditorRaw {
		if state.FieldsRaw != "" && !isFlatObject(state.FieldsRaw) {
			errs["fieldsRaw"] = MsgProvideFlatJSON
		}
	} else {
		partialRows(errs, "fieldsJsonPairs", state.FieldsJSONPairs)
	}

	return errs
}

// partialRows flags rows that have a value but no key.
func partialRows(errs Errors, field string, pairs []splunkmodels.Variable) {
	for i, p := range pairs {
		if p.Key == "" && p.Value != "" {
			errs[fmt.Sprintf("%s.%d.key", field, i)] = MsgProvideKeyName
		}
	}
}

// validTime accepts numbers, data element tokens and whitespace-only text,
// which the host converts to 0.
func validTime(text string) bool {
	if strings.TrimSpace(text) == "" {
		return true
	}
	if n, ok := validators.ParseNumber(text); ok && (validators.IsFloat(n) || validators.IsInteger(n)) {
		return true
	}
	return validators.IsDataElementToken(text)
}

// isFlatObject accepts a non-empty JSON object none of whose values is an
// object.
func isFlatObject(text string) bool {
	res := jsonparse.Parse(text)
	if !res.OK || !validators.IsObject(res.Parsed) {
		return false
	}

	obj, _ := res.Parsed.AsObject()
	if obj.Len() == 0 {
		return false
	}

	flat := true
	obj.Range(func(_ string, v entity.Value) bool {
		flat = !validators.IsObject(v)
		return flat
	})
	return flat
}
