package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	constants "github.com/highcard-dev/companion/internal"
	"github.com/highcard-dev/companion/internal/core/domain"
	"github.com/highcard-dev/companion/internal/utils/logger"
	"go.uber.org/zap"
	"oras.land/oras-go/v2/registry/remote/retry"
)

const DefaultBaseURL = "https://registry.npmjs.org/the-companion"

// dist-tag queried per release channel
var distTags = map[domain.UpdateChannel]string{
	domain.UpdateChannelStable:     "latest",
	domain.UpdateChannelPrerelease: "next",
}

const maxManifestSize = 1 << 20

var (
	ErrUnexpectedStatus = fmt.Errorf("registry returned unexpected status")
	ErrMissingVersion   = fmt.Errorf("registry response has no version")
)

type distTagManifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type NpmClient struct {
	baseURL string
	client  *http.Client
}

type NpmClientOption func(*NpmClient)

// WithHTTPClient replaces the retrying default client.
func WithHTTPClient(client *http.Client) NpmClientOption {
	return func(c *NpmClient) {
		c.client = client
	}
}

// WithRetryPolicy keeps the retrying transport but swaps its backoff policy.
func WithRetryPolicy(policy retry.Policy) NpmClientOption {
	return func(c *NpmClient) {
		transport := retry.NewTransport(nil)
		transport.Policy = func() retry.Policy { return policy }
		c.client.Transport = transport
	}
}

func NewNpmClient(baseURL string, timeout time.Duration, opts ...NpmClientOption) *NpmClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &NpmClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout:   timeout,
			Transport: retry.NewTransport(nil),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func DistTag(channel domain.UpdateChannel) (string, error) {
	tag, ok := distTags[channel]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownUpdateChannel, channel)
	}
	return tag, nil
}

func (c *NpmClient) URL(channel domain.UpdateChannel) (string, error) {
	tag, err := DistTag(channel)
	if err != nil {
		return "", err
	}
	return c.baseURL + "/" + tag, nil
}

// FetchLatest returns the version published under the channel's dist-tag.
// The returned string always parses as a version.
func (c *NpmClient) FetchLatest(ctx context.Context, channel domain.UpdateChannel) (string, error) {
	url, err := c.URL(channel)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constants.UserAgent+"/"+constants.Version)

	logger.Log().Debug("Fetching latest version",
		zap.String(logger.LogKeyContext, logger.LogContextReg),
		zap.String("url", url),
		zap.String("channel", string(channel)),
	)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var manifest distTagManifest
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxManifestSize)).Decode(&manifest); err != nil {
		return "", fmt.Errorf("failed to decode registry response: %w", err)
	}

	if manifest.Version == "" {
		return "", ErrMissingVersion
	}

	if _, err := domain.ParseVersion(manifest.Version); err != nil {
		return "", err
	}

	return manifest.Version, nil
}
