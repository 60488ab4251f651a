// Package directory is the HTTP client for the user directory service.
//
// It implements engine.ListFetcher against the list endpoint and
// engine.DetailFetcher against the detail endpoint. Failures are reported as
// *engine.FetchError (transport or decode) or engine.ErrUserAbsent.
package directory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rshade/topfive/internal/engine"
)

const (
	// DefaultTimeout bounds each HTTP request.
	DefaultTimeout = 30 * time.Second

	// maxResponseBytes caps the body read from either endpoint.
	maxResponseBytes = 1 << 20

	acceptHeader = "application/json; charset=UTF-8"

	opList   = "list"
	opDetail = "detail"
)

// Client talks to the list and detail endpoints.
type Client struct {
	ListEndpoint   string
	DetailEndpoint string
	HTTPClient     *http.Client
	UserAgent      string
}

// NewClient creates a Client with a bounded per-request timeout.
// A non-positive timeout uses DefaultTimeout.
func NewClient(listEndpoint, detailEndpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		ListEndpoint:   listEndpoint,
		DetailEndpoint: detailEndpoint,
		HTTPClient:     &http.Client{Timeout: timeout},
		UserAgent:      "topfive",
	}
}

// FetchPage retrieves one page of user ids. The token query parameter is
// only sent when token is non-empty.
func (c *Client) FetchPage(ctx context.Context, token string) (engine.ListPage, error) {
	endpoint, err := listURL(c.ListEndpoint, token)
	if err != nil {
		return engine.ListPage{}, &engine.FetchError{
			Kind: engine.TransportFailure, Op: opList, URL: c.ListEndpoint, Err: err,
		}
	}

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return engine.ListPage{}, &engine.FetchError{
			Kind: engine.TransportFailure, Op: opList, URL: endpoint, StatusCode: status, Err: err,
		}
	}

	page, err := decodeListPage(body)
	if err != nil {
		return engine.ListPage{}, &engine.FetchError{
			Kind: engine.DecodeFailure, Op: opList, URL: endpoint, StatusCode: status, Err: err,
		}
	}
	return page, nil
}

// FetchDetail retrieves the user with the given id.
// A 404 or an empty/null body is reported as engine.ErrUserAbsent.
func (c *Client) FetchDetail(ctx context.Context, id int) (engine.User, error) {
	endpoint := detailURL(c.DetailEndpoint, id)

	body, status, err := c.get(ctx, endpoint)
	if status == http.StatusNotFound {
		return engine.User{}, fmt.Errorf("user %d: %w", id, engine.ErrUserAbsent)
	}
	if err != nil {
		return engine.User{}, &engine.FetchError{
			Kind: engine.TransportFailure, Op: opDetail, URL: endpoint, StatusCode: status, Err: err,
		}
	}

	user, err := decodeUser(body)
	if errors.Is(err, engine.ErrUserAbsent) {
		return engine.User{}, fmt.Errorf("user %d: %w", id, err)
	}
	if err != nil {
		return engine.User{}, &engine.FetchError{
			Kind: engine.DecodeFailure, Op: opDetail, URL: endpoint, StatusCode: status, Err: err,
		}
	}
	return user, nil
}

// get performs a GET and returns the body of a 2xx response.
// The status is returned whenever a response was received.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, resp.StatusCode, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading response body: %w", err)
	}
	if len(body) > maxResponseBytes {
		return nil, resp.StatusCode, fmt.Errorf("response body exceeds %d bytes", maxResponseBytes)
	}
	return body, resp.StatusCode, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: DefaultTimeout}
}

// listURL adds the token query parameter to endpoint when token is non-empty.
func listURL(endpoint, token string) (string, error) {
	if token == "" {
		return endpoint, nil
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parsing list endpoint: %w", err)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// detailURL appends "/<id>" to endpoint.
func detailURL(endpoint string, id int) string {
	return strings.TrimRight(endpoint, "/") + "/" + strconv.Itoa(id)
}
