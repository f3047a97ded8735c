package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/smileynet/contacts/internal/contact"
)

// DefaultEndpoint is the public placeholder user directory.
const DefaultEndpoint = "https://jsonplaceholder.typicode.com/users"

var validate = validator.New(validator.WithRequiredStructEnabled())

// HTTPFetcher reads a JSON array of contacts with a single GET request.
type HTTPFetcher struct {
	endpoint  string
	client    *http.Client
	userAgent string
}

// HTTPOption configures an HTTPFetcher.
type HTTPOption func(*HTTPFetcher)

// WithHTTPClient sets the client used for requests. The default is
// http.DefaultClient, so no timeout applies beyond the transport's own.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(f *HTTPFetcher) { f.client = c }
}

// WithUserAgent sets the User-Agent header sent with the request.
func WithUserAgent(ua string) HTTPOption {
	return func(f *HTTPFetcher) { f.userAgent = ua }
}

// NewHTTPFetcher creates a fetcher for endpoint.
func NewHTTPFetcher(endpoint string, opts ...HTTPOption) *HTTPFetcher {
	f := &HTTPFetcher{endpoint: endpoint}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = http.DefaultClient
	}
	return f
}

// Client returns the HTTP client requests are sent with.
func (f *HTTPFetcher) Client() *http.Client { return f.client }

// Fetch issues the GET and decodes the body. Every failure wraps ErrUnavailable.
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]contact.Contact, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %w", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrUnavailable, resp.Status)
	}

	var contacts []contact.Contact
	if err := json.NewDecoder(resp.Body).Decode(&contacts); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %w", ErrUnavailable, err)
	}
	if contacts == nil {
		return nil, fmt.Errorf("%w: response is not an array", ErrUnavailable)
	}

	for i := range contacts {
		if err := validate.Struct(contacts[i]); err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrUnavailable, i, err)
		}
	}
	return contacts, nil
}
