// Package gviz fetches a single sheet from the Google Visualization query
// endpoint and decodes it into a table.
package gviz

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dradle/my-bike-rent/internal/metrics"
	"github.com/dradle/my-bike-rent/internal/sheet"
)

var (
	ErrTransport           = errors.New("transport error")
	ErrUpstreamUnavailable = errors.New("upstream temporarily unavailable")
)

const maxBodyBytes = 8 << 20

// Options configure the client. BaseURL and SpreadsheetID are required.
type Options struct {
	BaseURL          string // e.g. https://docs.google.com/spreadsheets/d
	SpreadsheetID    string
	Timeout          time.Duration
	UserAgent        string
	BreakerThreshold int           // 0 disables the breaker
	BreakerOpenFor   time.Duration // cool-down before a trial request
	HTTPClient       *http.Client  // optional; Timeout is ignored when set
}

type Client struct {
	baseURL       string
	spreadsheetID string
	userAgent     string
	http          *http.Client
	br            *Breaker
}

func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.BaseURL) == "" {
		return nil, fmt.Errorf("gviz: empty base url")
	}
	if strings.TrimSpace(opts.SpreadsheetID) == "" {
		return nil, fmt.Errorf("gviz: empty spreadsheet id")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		baseURL:       strings.TrimRight(opts.BaseURL, "/"),
		spreadsheetID: opts.SpreadsheetID,
		userAgent:     opts.UserAgent,
		http:          hc,
		br:            NewBreaker(opts.BreakerThreshold, opts.BreakerOpenFor),
	}, nil
}

// SheetURL is the query URL for one sub-sheet, requesting JSON output.
func (c *Client) SheetURL(sheetName string) string {
	q := url.Values{}
	q.Set("tqx", "out:json")
	q.Set("sheet", sheetName)
	return c.baseURL + "/" + url.PathEscape(c.spreadsheetID) + "/gviz/tq?" + q.Encode()
}

// Fetch issues exactly one GET for sheetName and decodes the response.
func (c *Client) Fetch(ctx context.Context, sheetName string) (*sheet.Table, error) {
	if !c.br.Allow() {
		return nil, ErrUpstreamUnavailable
	}

	body, err := c.get(ctx, c.SheetURL(sheetName))
	if err != nil {
		// a caller giving up says nothing about upstream health
		if ctx.Err() != nil {
			c.br.OnCancel()
		} else {
			c.br.OnFailure()
		}
		return nil, err
	}
	c.br.OnSuccess()

	return sheet.Decode(body)
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	res, err := c.http.Do(req)
	metrics.SheetFetchSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer res.Body.Close()

	if res.StatusCode/100 != 2 {
		return nil, fmt.Errorf("%w: status=%d", ErrTransport, res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}
	return body, nil
}
