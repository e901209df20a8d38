package splunkclient

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/miekg/dns"
)

const (
	DefaultResolvConf     = "/etc/resolv.conf"
	DefaultLookupProtocol = "udp"
	DefaultLookupTimeout  = 1500 * time.Millisecond
)

// PreflightResult describes how the collector host resolved.
type PreflightResult struct {
	Host      string        `json:"host"`             // Host part of the collector URL
	Addresses []string      `json:"addresses"`        // Resolved IPv4 addresses
	Server    string        `json:"server,omitempty"` // Resolver that answered, empty for IP literals
	RTT       time.Duration `json:"rtt"`              // Round trip time of the answering query
}

type preflightConfig struct {
	servers    []string
	protocol   string
	timeout    time.Duration
	resolvConf string
}

type PreflightOption func(*preflightConfig)

// WithResolvers queries the given ip:port resolvers instead of resolv.conf.
func WithResolvers(servers ...string) PreflightOption {
	return func(c *preflightConfig) {
		c.servers = servers
	}
}

func WithLookupProtocol(protocol string) PreflightOption {
	return func(c *preflightConfig) {
		c.protocol = protocol
	}
}

func WithLookupTimeout(timeout time.Duration) PreflightOption {
	return func(c *preflightConfig) {
		c.timeout = timeout
	}
}

func WithResolvConf(path string) PreflightOption {
	return func(c *preflightConfig) {
		c.resolvConf = path
	}
}

// Preflight checks that the collector URL is usable and that its host
// resolves, trying each resolver in turn. It sends nothing to the collector.
func Preflight(ctx context.Context, endpointURL string, opts ...PreflightOption) (PreflightResult, error) {
	cfg := preflightConfig{
		protocol:   DefaultLookupProtocol,
		timeout:    DefaultLookupTimeout,
		resolvConf: DefaultResolvConf,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	u, err := url.Parse(endpointURL)
	if err != nil {
		return PreflightResult{}, fmt.Errorf("invalid collector URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return PreflightResult{}, fmt.Errorf("collector URL must use http or https, got %q", u.Scheme)
	}

	host := u.Hostname()
	if host == "" {
		return PreflightResult{}, fmt.Errorf("collector URL %q has no host", endpointURL)
	}

	if ip := net.ParseIP(host); ip != nil {
		return PreflightResult{Host: host, Addresses: []string{ip.String()}}, nil
	}

	servers := cfg.servers
	if len(servers) == 0 {
		servers, err = SystemResolversFromResolvConf(cfg.resolvConf)
		if err != nil {
			return PreflightResult{}, err
		}
	}

	var lastErr error
	for _, server := range servers {
		if err := ctx.Err(); err != nil {
			return PreflightResult{}, err
		}

		addrs, rtt, err := lookupA(ctx, server, host, cfg)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", server, err)
			continue
		}

		return PreflightResult{Host: host, Addresses: addrs, Server: server, RTT: rtt}, nil
	}

	return PreflightResult{}, fmt.Errorf("failed to resolve %s: %w", host, lastErr)
}

func lookupA(ctx context.Context, server, host string, cfg preflightConfig) ([]string, time.Duration, error) {
	client := &dns.Client{
		Net:     cfg.protocol,
		Timeout: cfg.timeout,
	}

	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(host), dns.TypeA)

	resp, rtt, err := client.ExchangeContext(ctx, m, server)
	if err != nil {
		return nil, 0, err
	}

	if resp == nil {
		return nil, 0, fmt.Errorf("empty response")
	}
	if resp.Rcode != dns.RcodeSuccess {
		return nil, 0, fmt.Errorf("rcode=%v", dns.RcodeToString[resp.Rcode])
	}

	var addrs []string
	for _, rr := range resp.Answer {
		if a, ok := rr.(*dns.A); ok {
			addrs = append(addrs, a.A.String())
		}
	}
	if len(addrs) == 0 {
		return nil, 0, fmt.Errorf("no A records for %s", host)
	}

	return addrs, rtt, nil
}

func SystemResolversFromResolvConf(path string) ([]string, error) {
	cfg, err := dns.ClientConfigFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(cfg.Servers) == 0 {
		return nil, fmt.Errorf("no nameservers in %s", path)
	}
	out := make([]string, 0, len(cfg.Servers))
	for _, s := range cfg.Servers {
		out = append(out, net.JoinHostPort(s, cfg.Port)) // usually port "53"
	}
	return out, nil
}
