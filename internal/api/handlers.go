package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/norskhelsenett/hecevent/pkg/form"
	"github.com/norskhelsenett/hecevent/pkg/models/splunkmodels"
)

// EventSender dispatches an event to HEC. *splunkclient.SplunkClient
// satisfies it.
type EventSender interface {
	CreateEvent(ctx context.Context, settings splunkmodels.ActionSettings, extensionSettings splunkmodels.ExtensionSettings) (*splunkmodels.Response, error)
}

type Handler struct {
	sender  EventSender
	logger  *zap.Logger
	version string
}

func NewHandler(sender EventSender, logger *zap.Logger, version string) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		sender:  sender,
		logger:  logger,
		version: version,
	}
}

type InitEventRequest struct {
	Settings splunkmodels.ActionSettings `json:"settings"`
}

type SwitchEditorRequest struct {
	Target string                  `json:"target"` // "event" or "fields"
	Type   splunkmodels.EditorType `json:"type"`   // Mode to switch to
	State  splunkmodels.FormState  `json:"state"`
}

type SendEventRequest struct {
	Settings          splunkmodels.ActionSettings    `json:"settings"`
	ExtensionSettings splunkmodels.ExtensionSettings `json:"extensionSettings"`
}

type SendEventResponse struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

type InitConfigurationRequest struct {
	Settings splunkmodels.ExtensionSettings `json:"settings"`
}

type ValidationResponse struct {
	Valid  bool        `json:"valid"`
	Errors form.Errors `json:"errors"`
}

// HandleHealth returns server health status
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": h.version,
	})
}

// HandleInitEvent turns persisted settings into the editor form state.
func (h *Handler) HandleInitEvent(c echo.Context) error {
	var req InitEventRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid request body", err)
	}
	return c.JSON(http.StatusOK, form.InitValues(req.Settings))
}

// HandleEventSettings turns the editor form state into persisted settings.
func (h *Handler) HandleEventSettings(c echo.Context) error {
	var state splunkmodels.FormState
	if err := c.Bind(&state); err != nil {
		return NewBadRequestError("invalid request body", err)
	}
	return c.JSON(http.StatusOK, form.Settings(state))
}

func (h *Handler) HandleValidateEvent(c echo.Context) error {
	var state splunkmodels.FormState
	if err := c.Bind(&state); err != nil {
		return NewBadRequestError("invalid request body", err)
	}
	return c.JSON(http.StatusOK, validationResponse(form.Validate(state)))
}

// HandleSwitchEditor converts the event or fields editor between raw text
// and key/value rows.
func (h *Handler) HandleSwitchEditor(c echo.Context) error {
	var req SwitchEditorRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid request body", err)
	}

	if req.Type != splunkmodels.EditorRaw && req.Type != splunkmodels.EditorJSON {
		return NewValidationError("type", `must be "raw" or "json"`)
	}

	switch req.Target {
	case "event":
		return c.JSON(http.StatusOK, form.SwitchEventType(req.State, req.Type))
	case "fields":
		return c.JSON(http.StatusOK, form.SwitchFieldsType(req.State, req.Type))
	}

	return NewValidationError("target", `must be "event" or "fields"`)
}

// HandleSendEvent posts the event to the collector and relays its answer.
func (h *Handler) HandleSendEvent(c echo.Context) error {
	var req SendEventRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid request body", err)
	}

	resp, err := h.sender.CreateEvent(c.Request().Context(), req.Settings, req.ExtensionSettings)
	if err != nil {
		h.logger.Warn("Failed to send event to Splunk HEC", zap.String("url", req.ExtensionSettings.URL), zap.Error(err))
		return NewUpstreamError("failed to send event", err)
	}

	h.logger.Info("Sent event to Splunk HEC", zap.String("url", req.ExtensionSettings.URL), zap.Int("status", resp.StatusCode))

	return c.JSON(http.StatusOK, SendEventResponse{
		Status: resp.StatusCode,
		Body:   string(resp.Body),
	})
}

func (h *Handler) HandleInitConfiguration(c echo.Context) error {
	var req InitConfigurationRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid request body", err)
	}
	return c.JSON(http.StatusOK, form.ConfigurationInitValues(req.Settings))
}

func (h *Handler) HandleConfigurationSettings(c echo.Context) error {
	var state splunkmodels.ConfigurationFormState
	if err := c.Bind(&state); err != nil {
		return NewBadRequestError("invalid request body", err)
	}
	return c.JSON(http.StatusOK, form.ConfigurationSettings(state))
}

func (h *Handler) HandleValidateConfiguration(c echo.Context) error {
	var state splunkmodels.ConfigurationFormState
	if err := c.Bind(&state); err != nil {
		return NewBadRequestError("invalid request body", err)
	}
	return c.JSON(http.StatusOK, validationResponse(form.ValidateConfiguration(state)))
}

func validationResponse(errs form.Errors) ValidationResponse {
	return ValidationResponse{
		Valid:  errs.Valid(),
		Errors: errs,
	}
}
