// Package psm fetches point sets from the point set manager service.
package psm

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const DefaultTimeout = 5 * time.Second

var (
	ErrPointSetNotFound = errors.New("point set not found")
	ErrUnavailable      = errors.New("point set manager unavailable")
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for the point set manager at baseURL. Each fetch
// gives up after timeout; zero means DefaultTimeout. There are no retries.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch returns the PointSet payload stored under id. A missing point set is
// ErrPointSetNotFound; every other failure is ErrUnavailable.
func (c *Client) Fetch(ctx context.Context, id string) ([]byte, error) {
	endpoint := c.baseURL + "/pointset/" + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrapf(ErrUnavailable, "building request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(ErrUnavailable, "connecting: %v", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.Wrapf(ErrPointSetNotFound, "point set %s", id)
	case resp.StatusCode != http.StatusOK:
		return nil, errors.Wrapf(ErrUnavailable, "status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(ErrUnavailable, "reading body: %v", err)
	}
	return body, nil
}
