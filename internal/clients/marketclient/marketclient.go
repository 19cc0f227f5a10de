package marketclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/clients/client"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/config"
)

const providersEndpoint = "/v1/providers"
const filRateEndpoint = "/v1/rates/fil"

type Client struct {
	httpClient *http.Client
	cfg        *config.MarketConfig
}

func (c *Client) GetBaseURL() string {
	return c.cfg.Endpoint
}

func (c *Client) GetDefaultRequestTimeout() time.Duration {
	return c.cfg.Timeout
}

func (c *Client) GetHttpClient() *http.Client {
	return c.httpClient
}

func NewClient(cfg *config.MarketConfig) *Client {
	if cfg == nil {
		return nil
	}

	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
	}
}

func (c *Client) GetStorageProviders(ctx context.Context) ([]ProviderListing, error) {
	type empty struct{}

	callForProviders := func() ([]ProviderListing, error) {
		opts := &client.HttpClientOptions{
			Path:         providersEndpoint,
			TemplatePath: providersEndpoint,
		}

		resp, err := client.SendRequest[empty, providersResponse](ctx, c, http.MethodGet, opts, nil)
		if err != nil {
			return nil, err
		}

		return resp.Providers, nil
	}

	providers, err := clientCallWithRetry(ctx, callForProviders, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch storage providers: %w", err)
	}

	return providers, nil
}

func (c *Client) GetFILUSDRate(ctx context.Context) (string, error) {
	type empty struct{}
	type rateResponse struct {
		Pair string `json:"pair"`
		Rate string `json:"rate"`
	}

	callForRate := func() (string, error) {
		opts := &client.HttpClientOptions{
			Path:         filRateEndpoint,
			TemplatePath: filRateEndpoint,
		}

		resp, err := client.SendRequest[empty, rateResponse](ctx, c, http.MethodGet, opts, nil)
		if err != nil {
			return "", err
		}

		if resp.Rate == "" {
			return "", fmt.Errorf("empty FIL/USD rate in response")
		}

		return resp.Rate, nil
	}

	rate, err := clientCallWithRetry(ctx, callForRate, c.cfg)
	if err != nil {
		return "", fmt.Errorf("failed to fetch FIL/USD rate: %w", err)
	}

	return rate, nil
}

func clientCallWithRetry[T any](
	ctx context.Context,
	call retry.RetryableFuncWithData[T],
	cfg *config.MarketConfig,
) (T, error) {
	result, err := retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(cfg.MaxRetryTimes),
		retry.Delay(cfg.RetryInterval),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", cfg.MaxRetryTimes).
				Err(err).
				Msg("failed to call the market API")
		}))
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
