// Package form translates between the settings the host persists for the
// Splunk HEC actions and the form state their editors work on.
package form

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"

	"github.com/norskhelsenett/hecevent/pkg/models/splunkmodels"
)

// Validation messages shown next to the offending field.
const (
	MsgProvideEvent     = "Please provide an event"
	MsgProvideKeyName   = "Please provide a key name."
	MsgProvideTimestamp = "Please provide a Unix timestamp or a data element."
	MsgProvideFlatJSON  = "Please provide a JSON object that contains a flat (not nested) list of explicit custom fields."
	MsgProvideURL       = "Please specify a URL."
	MsgProvideToken     = "Please specify an access token."
)

const jsonIndent = "  "

// Errors maps a form field path (e.g. "eventJsonPairs.2.key") to its message.
type Errors map[string]string

func (e Errors) Valid() bool {
	return len(e) == 0
}

// Keys returns the failing field paths sorted.
func (e Errors) Keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Err combines the messages into one error, or nil when valid.
func (e Errors) Err() error {
	var err error
	for _, k := range e.Keys() {
		err = multierr.Append(err, fmt.Errorf("%s: %s", k, e[k]))
	}
	return err
}

// editorType treats anything but an explicit json mode as raw.
func editorType(t splunkmodels.EditorType) splunkmodels.EditorType {
	if t == splunkmodels.EditorJSON {
		return splunkmodels.EditorJSON
	}
	return splunkmodels.EditorRaw
}
