package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/observability/metrics"
)

type HttpClient interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() time.Duration
	GetHttpClient() *http.Client
}

type HttpClientOptions struct {
	Path string
	// TemplatePath is the path with params replaced by placeholders,
	// used as the metrics label to keep cardinality low.
	TemplatePath string
	Headers      map[string]string
}

// SendRequest performs a JSON request against the client's base URL and
// decodes the response body into O. A nil input sends an empty body.
func SendRequest[I any, O any](
	ctx context.Context, c HttpClient, method string, opts *HttpClientOptions, input *I,
) (*O, error) {
	ctx, cancel := context.WithTimeout(ctx, c.GetDefaultRequestTimeout())
	defer cancel()

	var body io.Reader
	if input != nil {
		payload, err := json.Marshal(input)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	url := c.GetBaseURL() + opts.Path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request to %s: %w", method, url, err)
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	timer := metrics.StartClientRequestDurationTimer(c.GetBaseURL(), method, opts.TemplatePath)

	resp, err := c.GetHttpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	timer(resp.StatusCode)

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("rate limit exceeded when calling %s", opts.TemplatePath)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("unexpected status %d when calling %s", resp.StatusCode, opts.TemplatePath)
	}

	var output O
	if err := json.NewDecoder(resp.Body).Decode(&output); err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", opts.TemplatePath, err)
	}

	return &output, nil
}
