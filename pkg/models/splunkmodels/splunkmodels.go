package splunkmodels

import (
	"encoding/json"
	"net/http"

	"github.com/norskhelsenett/hecevent/pkg/entity"
)

// Keys of the splunkEvent object sent to HEC.
const (
	KeyHost       = "host"
	KeySource     = "source"
	KeySourcetype = "sourcetype"
	KeyIndex      = "index"
	KeyTime       = "time"
	KeyEvent      = "event"
	KeyFields     = "fields"
)

// EditorType selects how the event or fields are edited.
type EditorType string

const (
	EditorRaw  EditorType = "raw"  // Free text, parsed as JSON when possible
	EditorJSON EditorType = "json" // Key/value rows with dotted paths
)

type Variable = entity.Variable

// ExtensionSettings is the extension level configuration shared by all actions.
type ExtensionSettings struct {
	URL   string `json:"url"`   // HEC collector endpoint (e.g. https://host:443/services/collector/event)
	Token string `json:"token"` // HEC token, sent as "Authorization: Splunk <token>"
}

// ActionSettings is what the host persists for a "create event" action.
// SplunkEvent is kept as an ordered object so it reaches HEC unmodified.
type ActionSettings struct {
	SplunkEvent *entity.Object `json:"splunkEvent,omitempty"`
}

// FormState is the editable working copy of ActionSettings.
type FormState struct {
	Host            string     `json:"host"`
	Source          string     `json:"source"`
	Sourcetype      string     `json:"sourcetype"`
	Index           string     `json:"index"`
	Time            string     `json:"time"`
	EventType       EditorType `json:"eventType"`
	EventRaw        string     `json:"eventRaw"`
	EventJSONPairs  []Variable `json:"eventJsonPairs"`
	FieldsType      EditorType `json:"fieldsType"`
	FieldsRaw       string     `json:"fieldsRaw"`
	FieldsJSONPairs []Variable `json:"fieldsJsonPairs"`
}

// ConfigurationFormState is the editable copy of ExtensionSettings.
type ConfigurationFormState struct {
	URL   string `json:"url"`
	Token string `json:"token"`
}

// Response is what HEC answered. The body is left undecoded.
type Response struct {
	StatusCode int         `json:"status"` // HTTP status code
	Status     string      `json:"-"`      // HTTP status line
	Header     http.Header `json:"-"`      // Response headers
	Body       []byte      `json:"-"`      // Raw response body
}

// HECResponse is the acknowledgement body HEC returns.
type HECResponse struct {
	Text string `json:"text"` // Response text from Splunk HEC
	Code int    `json:"code"` // HEC status code, 0 on success
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// HEC decodes the body as a HEC acknowledgement.
func (r *Response) HEC() (HECResponse, error) {
	var ack HECResponse
	if err := json.Unmarshal(r.Body, &ack); err != nil {
		return HECResponse{}, err
	}
	return ack, nil
}
