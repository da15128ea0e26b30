package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
)

// Fetcher downloads remote images. It is safe for concurrent use.
type Fetcher struct {
	client      *http.Client
	userAgent   string
	maxBodySize int64
}

// Option configures the Fetcher.
type Option func(*Fetcher)

// WithHTTPClient sets the client used for requests.
// Timeouts and redirect policy are taken from it as is.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// WithMaxBodySize caps the number of bytes read from a response.
// Zero or a negative value means no limit.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) { f.maxBodySize = n }
}

// New returns a Fetcher backed by a pooled client with no timeout.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{client: cleanhttp.DefaultPooledClient()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads rawURL with a single GET and returns the full body.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := validateURL(rawURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: statusLine(resp)}
	}

	return f.readBody(resp.Body)
}

func (f *Fetcher) readBody(body io.Reader) ([]byte, error) {
	if f.maxBodySize <= 0 {
		data, err := io.ReadAll(body)
		if err != nil {
			return nil, errors.Join(ErrFetchFailed, err)
		}
		return data, nil
	}

	data, err := io.ReadAll(io.LimitReader(body, f.maxBodySize+1))
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}
	if int64(len(data)) > f.maxBodySize {
		return nil, errors.Join(ErrFetchFailed, fmt.Errorf("%w (max %d bytes)", ErrBodyTooLarge, f.maxBodySize))
	}
	return data, nil
}

func validateURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Join(ErrUnsupportedScheme, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return nil, fmt.Errorf("%w: got scheme %q", ErrUnsupportedScheme, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host", ErrUnsupportedScheme)
	}
	return u, nil
}

// statusLine renders "404 Not Found" regardless of whether the transport
// filled in resp.Status.
func statusLine(resp *http.Response) string {
	if resp.Status != "" {
		return resp.Status
	}
	return strconv.Itoa(resp.StatusCode) + " " + http.StatusText(resp.StatusCode)
}
