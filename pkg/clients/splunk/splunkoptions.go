package splunkclient

import "go.uber.org/zap"

type Option func(*SplunkClient)

func WithDisableTLS(disable bool) Option {
	return func(c *SplunkClient) {
		c.DisableTLS = disable
	}
}

func WithDisableKeepAlives(disable bool) Option {
	return func(c *SplunkClient) {
		c.DisableKeepAlives = disable
	}
}

func WithTimeout(timeout int) Option {
	return func(c *SplunkClient) {
		c.Timeout = timeout
	}
}

// WithRequestChannel sets the X-Splunk-Request-Channel header, needed when
// the HEC token has indexer acknowledgement enabled.
func WithRequestChannel(channel string) Option {
	return func(c *SplunkClient) {
		c.Channel = channel
	}
}

// WithHTTPClient replaces the transport. Timeout, TLS and keep-alive options
// are then the caller's responsibility.
func WithHTTPClient(client HTTPDoer) Option {
	return func(c *SplunkClient) {
		c.HttpClient = client
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *SplunkClient) {
		if logger != nil {
			c.Logger = logger
		}
	}
}
