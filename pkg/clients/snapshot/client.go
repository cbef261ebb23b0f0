package snapshot

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mamadbah2/cropstats/internal/config"
	"github.com/mamadbah2/cropstats/internal/registry"
)

// APIClient fetches a published dataset document over HTTP. It satisfies
// registry.Loader.
type APIClient struct {
	httpClient *resty.Client
	url        string
}

// NewClient builds a snapshot client using the provided configuration values.
func NewClient(cfg config.SnapshotConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Accept", "application/json").
		SetTimeout(15 * time.Second)
	if cfg.Token != "" {
		restyClient.SetAuthToken(cfg.Token)
	}

	return &APIClient{
		httpClient: restyClient,
		url:        cfg.URL,
	}
}

// apiError represents an error payload returned by the snapshot host.
type apiError struct {
	Error string `json:"error"`
}

func (c *APIClient) Name() string { return "http" }

// Load downloads and decodes the dataset.
func (c *APIClient) Load(ctx context.Context) (*registry.Dataset, error) {
	result := new(registry.Dataset)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr).
		Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := apiErr.Error
		if message == "" {
			message = http.StatusText(resp.StatusCode())
		}
		return nil, fmt.Errorf("snapshot api error: code=%d, message=%s", resp.StatusCode(), message)
	}

	return result, nil
}
