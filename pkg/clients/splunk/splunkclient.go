package splunkclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/norskhelsenett/hecevent/pkg/entity"
	"github.com/norskhelsenett/hecevent/pkg/models/splunkmodels"
)

const (
	HeaderAuthorization  = "Authorization"
	HeaderContentType    = "Content-Type"
	HeaderRequestChannel = "X-Splunk-Request-Channel"

	contentTypeJSON = "application/json"
)

// HTTPDoer is the transport the client posts through. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type SplunkClient struct {
	DisableKeepAlives bool   `json:"disable_keep_alives,omitempty"` // Disable HTTP keep-alives (optional)
	DisableTLS        bool   `json:"disable_tls,omitempty"`         // Disable TLS verification (optional)
	Timeout           int    `json:"timeout,omitempty"`             // Request timeout in seconds, 0 for none (optional)
	Channel           string `json:"channel,omitempty"`             // HEC request channel (optional)

	HttpClient HTTPDoer    `json:"-"`
	Logger     *zap.Logger `json:"-"`

	json jsoniter.API
	once sync.Once
}

func NewSplunkClient(opts ...Option) *SplunkClient {

	client := &SplunkClient{
		DisableTLS: false, // Default to TLS verification enabled
		Logger:     zap.NewNop(),
		json:       jsoniter.ConfigCompatibleWithStandardLibrary,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// CreateEvent posts the action's splunkEvent to the collector configured in
// extensionSettings. The payload is sent exactly as stored. Whatever the
// collector answers is returned as is; only transport failures are errors.
func (c *SplunkClient) CreateEvent(
	ctx context.Context,
	settings splunkmodels.ActionSettings,
	extensionSettings splunkmodels.ExtensionSettings,
) (*splunkmodels.Response, error) {

	// Build HTTP client if not already built
	c.once.Do(c.buildHTTPClient)

	payload := settings.SplunkEvent
	if payload == nil {
		payload = entity.NewObject()
	}

	body, err := c.json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal splunk event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, extensionSettings.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	req.Header.Set(HeaderAuthorization, "Splunk "+extensionSettings.Token)
	req.Header.Set(HeaderContentType, contentTypeJSON)
	if c.Channel != "" {
		req.Header.Set(HeaderRequestChannel, c.Channel)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.Logger.Debug("HEC responded",
		zap.String("url", extensionSettings.URL),
		zap.Int("status", resp.StatusCode),
		zap.Int("request_bytes", len(body)),
	)

	return &splunkmodels.Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

func (c *SplunkClient) buildHTTPClient() {

	if c.json == nil {
		c.json = jsoniter.ConfigCompatibleWithStandardLibrary
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}

	if c.HttpClient != nil {
		return
	}

	tlsCfg := &tls.Config{
		InsecureSkipVerify: c.DisableTLS,
	}

	c.HttpClient = &http.Client{
		Timeout: time.Duration(c.Timeout) * time.Second,
		Transport: &http.Transport{
			Proxy:             http.ProxyFromEnvironment,
			TLSClientConfig:   tlsCfg,
			DisableKeepAlives: c.DisableKeepAlives,
		},
	}

}
