package form

import "github.com/norskhelsenett/hecevent/pkg/models/splunkmodels"

func ConfigurationInitValues(settings splunkmodels.ExtensionSettings) splunkmodels.ConfigurationFormState {
	return splunkmodels.ConfigurationFormState{
		URL:   settings.URL,
		Token: settings.Token,
	}
}

func ConfigurationSettings(state splunkmodels.ConfigurationFormState) splunkmodels.ExtensionSettings {
	return splunkmodels.ExtensionSettings{
		URL:   state.URL,
		Token: state.Token,
	}
}

// ValidateConfiguration requires both the collector URL and the token.
// Either may be a data element, so their format is not checked.
func ValidateConfiguration(state splunkmodels.ConfigurationFormState) Errors {
	errs := Errors{}

	if state.URL == "" {
		errs["url"] = MsgProvideURL
	}
	if state.Token == "" {
		errs["token"] = MsgProvideToken
	}

	return errs
}
