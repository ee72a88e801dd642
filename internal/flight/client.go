package flight

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const httpTimeout = 10 * time.Second

// fetchOutcome tags the result of one upstream request. Callers currently
// treat every non-ok outcome as "no data", but the distinction is preserved
// for logging and for callers that may want to handle HTTP errors specially.
type fetchOutcome int

const (
	fetchOK fetchOutcome = iota
	fetchTransportError
	fetchHTTPError
)

// fetchResult is the outcome of one upstream request plus the HTTP status
// when one was received.
type fetchResult struct {
	outcome fetchOutcome
	status  int
}

func (r fetchResult) ok() bool { return r.outcome == fetchOK }

// apiClient issues authenticated GET requests against the flight data
// provider. Both the location-lookup and flight-search endpoints share the
// same key and header set.
type apiClient struct {
	apiKey    string
	userAgent string
	client    *http.Client
	log       *slog.Logger
}

func newAPIClient(apiKey, userAgent string, log *slog.Logger) *apiClient {
	return &apiClient{
		apiKey:    apiKey,
		userAgent: userAgent,
		client:    &http.Client{Timeout: httpTimeout},
		log:       log,
	}
}

// fetch performs a GET request with the given query parameters and decodes
// the JSON response into dst. Transport failures and non-2xx statuses are
// logged and reported through the returned fetchResult rather than an error:
// the caller decides what an absent result means for its operation.
func (c *apiClient) fetch(ctx context.Context, rawURL string, params url.Values, dst any) fetchResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		c.log.Error("building upstream request failed", "url", rawURL, "err", err)
		return fetchResult{outcome: fetchTransportError}
	}
	req.URL.RawQuery = params.Encode()
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error("upstream request failed", "url", rawURL, "err", err)
		return fetchResult{outcome: fetchTransportError}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("upstream returned error status", "url", rawURL, "status", resp.StatusCode)
		return fetchResult{outcome: fetchHTTPError, status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		c.log.Error("decoding upstream response failed", "url", rawURL, "err", err)
		return fetchResult{outcome: fetchTransportError, status: resp.StatusCode}
	}

	c.log.Info("upstream request succeeded", "url", rawURL, "status", resp.StatusCode)
	return fetchResult{outcome: fetchOK, status: resp.StatusCode}
}
