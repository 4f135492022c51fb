// Package fetch retrieves the AWS status page text through an ordered list
// of mirror endpoints. The mirrors are alternate proxy paths for one logical
// resource: ordering encodes preference, but any endpoint returning a usable
// body is acceptable.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// maxBodyRead bounds how much of a response body is read per endpoint.
const maxBodyRead = 1 << 20 // 1MB

// DefaultEndpoints are the CORS-friendly mirrors of the AWS health page,
// fastest and most reliable first.
var DefaultEndpoints = []Endpoint{
	{URL: "https://r.jina.ai/http://health.aws.amazon.com/health/status"},
	{URL: "https://r.jina.ai/https://health.aws.amazon.com/health/status"},
	{URL: "https://api.allorigins.win/raw?url=https%3A%2F%2Fhealth.aws.amazon.com%2Fhealth%2Fstatus"},
}

// Payload is a successfully fetched status text and the endpoint URL that
// produced it.
type Payload struct {
	Source string `json:"source"`
	Text   string `json:"text"`
}

// Fetcher is implemented by anything that can produce the raw status text.
type Fetcher interface {
	FetchStatusText(ctx context.Context) (*Payload, error)
}

// Endpoint is one fetch target.
type Endpoint struct {
	URL string
}

// bustURL appends a cache-busting t=<epoch-millis> query parameter so
// intermediate caches never serve a stale page.
func (e Endpoint) bustURL(now time.Time) string {
	sep := "?"
	if strings.Contains(e.URL, "?") {
		sep = "&"
	}
	return e.URL + sep + "t=" + strconv.FormatInt(now.UnixMilli(), 10)
}

// ExhaustedError means every configured endpoint failed or returned an
// empty body. It carries the last endpoint error observed.
type ExhaustedError struct {
	Last error
}

func (e *ExhaustedError) Error() string {
	if e.Last != nil {
		return "all endpoints failed: " + e.Last.Error()
	}
	return "all endpoints failed"
}

func (e *ExhaustedError) Unwrap() error { return e.Last }

// MultiFetcher tries each endpoint in order and returns the first non-empty
// body. There is no retry at the individual-endpoint level.
type MultiFetcher struct {
	Logger    *zap.Logger
	Client    *http.Client
	Endpoints []Endpoint
	Now       func() time.Time
}

// NewMultiFetcher builds a fetcher over the given endpoints with a
// per-request timeout. Nil or empty endpoints fall back to the defaults.
func NewMultiFetcher(logger *zap.Logger, timeout time.Duration, endpoints []Endpoint) *MultiFetcher {
	if len(endpoints) == 0 {
		endpoints = DefaultEndpoints
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &MultiFetcher{
		Logger:    logger,
		Client:    &http.Client{Timeout: timeout},
		Endpoints: endpoints,
		Now:       time.Now,
	}
}

// FetchStatusText iterates the endpoints in priority order. A non-2xx
// status or an empty/whitespace-only body fails that endpoint and the loop
// advances; the first usable body short-circuits. When the loop exhausts
// all endpoints it returns *ExhaustedError and logs a DNS diagnosis of the
// first endpoint's host so resolver trouble can be told from proxy trouble.
func (m *MultiFetcher) FetchStatusText(ctx context.Context) (*Payload, error) {
	var lastErr error

	for _, ep := range m.Endpoints {
		text, err := m.fetchOne(ctx, ep)
		if err != nil {
			lastErr = err
			m.Logger.Debug("endpoint_failed",
				zap.String("url", ep.URL),
				zap.Error(err),
			)
			continue
		}
		return &Payload{Source: ep.URL, Text: text}, nil
	}

	m.diagnoseDNS(ctx)
	return nil, &ExhaustedError{Last: lastErr}
}

func (m *MultiFetcher) fetchOne(ctx context.Context, ep Endpoint) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ep.bustURL(m.Now()), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := m.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyRead))
	if err != nil {
		return "", err
	}
	text := string(body)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty body")
	}
	return text, nil
}

func (m *MultiFetcher) diagnoseDNS(ctx context.Context) {
	if len(m.Endpoints) == 0 {
		return
	}
	host := extractHost(m.Endpoints[0].URL)
	dns := CheckDNS(ctx, host)
	m.Logger.Warn("fetch_exhausted_dns",
		zap.String("domain", dns.Domain),
		zap.String("class", dns.Class),
		zap.String("resolver_error", dns.ResolverError),
	)
}
