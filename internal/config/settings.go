package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/norskhelsenett/hecevent/pkg/entity"
	"github.com/norskhelsenett/hecevent/pkg/models/splunkmodels"
)

// LoadActionSettings reads persisted action settings from a JSON or YAML
// file, keeping the order of the splunkEvent keys.
func LoadActionSettings(path string) (splunkmodels.ActionSettings, error) {
	v, err := readValue(path)
	if err != nil {
		return splunkmodels.ActionSettings{}, err
	}

	root, ok := v.AsObject()
	if !ok {
		return splunkmodels.ActionSettings{}, fmt.Errorf("%s: settings must be an object, got %s", path, v.Kind())
	}

	var settings splunkmodels.ActionSettings
	if ev, ok := root.Get("splunkEvent"); ok && !ev.IsNull() {
		obj, ok := ev.AsObject()
		if !ok {
			return settings, fmt.Errorf("%s: splunkEvent must be an object, got %s", path, ev.Kind())
		}
		settings.SplunkEvent = obj
	}

	return settings, nil
}

// LoadFormState reads an editor form state from a JSON or YAML file.
func LoadFormState(path string) (splunkmodels.FormState, error) {
	var state splunkmodels.FormState
	if err := decodeFile(path, &state); err != nil {
		return state, err
	}
	return state, nil
}

// LoadEntity reads any JSON or YAML document as an entity value.
func LoadEntity(path string) (entity.Value, error) {
	return readValue(path)
}

// LoadVariables reads a list of {"key","value"} rows.
func LoadVariables(path string) ([]splunkmodels.Variable, error) {
	var variables []splunkmodels.Variable
	if err := decodeFile(path, &variables); err != nil {
		return nil, err
	}
	return variables, nil
}

func readValue(path string) (entity.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entity.Value{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var v entity.Value
	if isYAML(path) {
		v, err = entity.ParseYAML(data)
	} else {
		v, err = entity.Parse(data)
	}
	if err != nil {
		return entity.Value{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return v, nil
}

// decodeFile normalises YAML to JSON first so one set of json tags serves
// both formats.
func decodeFile(path string, out any) error {
	v, err := readValue(path)
	if err != nil {
		return err
	}

	data, err := v.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return nil
}
