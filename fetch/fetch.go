// Package fetch provides the HTTP client used by every scraping phase. It
// fetches pages sequentially with a fixed pre-request delay so the source
// sites are never hit with overlapping requests.
package fetch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// userAgent identifies requests as a regular browser; some wikis serve
// reduced markup to unknown agents.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36"

// maxRedirects caps manual redirect following so a misconfigured redirect
// loop fails instead of recursing forever.
const maxRedirects = 5

// ErrTooManyRedirects is returned (wrapped in a *FetchError) when a redirect
// chain exceeds maxRedirects hops.
var ErrTooManyRedirects = errors.New("too many redirects")

// FetchError describes a failed page fetch. StatusCode is zero for
// transport-level failures.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Recorder receives the outcome of every completed fetch attempt. The fetch
// log store implements this; a nil recorder disables recording.
type Recorder interface {
	Record(url string, status int, fetchErr error)
}

// Client fetches pages one at a time. Delay is slept by Wait before each
// request issued through the batch drivers; phases adjust it to their own
// politeness interval.
type Client struct {
	httpClient *http.Client
	recorder   Recorder

	Delay time.Duration
}

// NewClient creates a client with the given pre-request delay. Automatic
// redirect following is disabled so redirects can be counted and capped.
func NewClient(delay time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		Delay: delay,
	}
}

// SetRecorder installs a fetch-outcome recorder.
func (c *Client) SetRecorder(r Recorder) {
	c.recorder = r
}

// Wait sleeps for the client's configured delay. Callers invoke it before
// each request in a batch loop.
func (c *Client) Wait() {
	if c.Delay > 0 {
		time.Sleep(c.Delay)
	}
}

// Get fetches a URL and returns the full response body. Redirects are
// re-issued against the Location header, up to maxRedirects hops. Any
// non-2xx, non-redirect status fails immediately with a *FetchError; there
// are no retries.
func (c *Client) Get(url string) ([]byte, error) {
	return c.get(url, 0)
}

func (c *Client) get(url string, hops int) ([]byte, error) {
	if hops > maxRedirects {
		err := &FetchError{URL: url, Err: ErrTooManyRedirects}
		c.record(url, 0, err)
		return nil, err
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		ferr := &FetchError{URL: url, Err: err}
		c.record(url, 0, ferr)
		return nil, ferr
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 && resp.StatusCode < 400 {
		if loc := resp.Header.Get("Location"); loc != "" {
			next, err := resp.Request.URL.Parse(loc)
			if err != nil {
				ferr := &FetchError{URL: url, StatusCode: resp.StatusCode, Err: err}
				c.record(url, resp.StatusCode, ferr)
				return nil, ferr
			}
			return c.get(next.String(), hops+1)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		ferr := &FetchError{URL: url, StatusCode: resp.StatusCode}
		c.record(url, resp.StatusCode, ferr)
		return nil, ferr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		ferr := &FetchError{URL: url, StatusCode: resp.StatusCode, Err: err}
		c.record(url, resp.StatusCode, ferr)
		return nil, ferr
	}

	c.record(url, resp.StatusCode, nil)
	return body, nil
}

// Document fetches a URL and parses the body as HTML.
func (c *Client) Document(url string) (*goquery.Document, error) {
	body, err := c.Get(url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML from %s: %w", url, err)
	}
	return doc, nil
}

func (c *Client) record(url string, status int, fetchErr error) {
	if c.recorder != nil {
		c.recorder.Record(url, status, fetchErr)
	}
}
