package skips

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"skiphire/internal/domain/entities"
	"skiphire/internal/usecase/interfaces"
)

const DefaultBaseURL = "https://app.wewantwaste.co.uk/api/skips/by-location"

var ErrUnexpectedStatus = errors.New("unexpected status from skips api")

// SkipsAPIClient reads skip options from the by-location pricing endpoint.
//
// One GET per call, no auth, no retries. A zero timeout leaves the request
// bounded only by the caller's context.
type SkipsAPIClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.ISkipSource = (*SkipsAPIClient)(nil)

func NewSkipsAPIClient(baseURL string, timeout time.Duration) *SkipsAPIClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &SkipsAPIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *SkipsAPIClient) ListByLocation(ctx context.Context, postcode, area string) ([]entities.Skip, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse skips api url: %w", err)
	}
	q := u.Query()
	q.Set("postcode", postcode)
	q.Set("area", area)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build skips api request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log.Printf("[skips][client] GET start postcode=%q area=%q", postcode, area)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("skips api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var skips []entities.Skip
	if err := json.NewDecoder(resp.Body).Decode(&skips); err != nil {
		return nil, fmt.Errorf("decode skips api response: %w", err)
	}
	if skips == nil {
		skips = []entities.Skip{}
	}
	log.Printf("[skips][client] GET success postcode=%q area=%q skips=%d", postcode, area, len(skips))
	return skips, nil
}
