package engine

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

var (
	// ErrTransport covers everything that prevents a response from arriving:
	// DNS, refused connections, TLS errors and timeouts.
	ErrTransport = errors.New("transport failure")
	// ErrHTTPStatus marks a response whose status code is 400 or above.
	ErrHTTPStatus = errors.New("unsuccessful status")
)

// Requester issues the GET requests of a run with a fixed user agent.
type Requester struct {
	client    *http.Client
	userAgent string
}

func NewRequester(client *http.Client, userAgent string) *Requester {
	if client == nil {
		client = http.DefaultClient
	}
	return &Requester{client: client, userAgent: userAgent}
}

// Get fetches target with params appended to its existing query and returns
// the decoded body. Every failure is reported through ErrTransport or
// ErrHTTPStatus; nothing is retried.
func (r *Requester) Get(ctx context.Context, target string, params url.Values) (string, error) {
	reqURL, err := withParams(target, params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := DecodeResponseBody(resp)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("%w: %s returned %d", ErrHTTPStatus, reqURL, resp.StatusCode)
	}
	return string(body), nil
}

// Stats reports the request metrics when the client was built by
// NewHTTPClient.
func (r *Requester) Stats() (Stats, bool) {
	mt, ok := r.client.Transport.(*MetricsTransport)
	if !ok {
		return Stats{}, false
	}
	return mt.Snapshot(), true
}

func withParams(target string, params url.Values) (string, error) {
	u, err := url.Parse(target)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid target URL: %s", target)
	}
	if len(params) == 0 {
		return u.String(), nil
	}
	encoded := params.Encode()
	if u.RawQuery == "" {
		u.RawQuery = encoded
	} else {
		u.RawQuery += "&" + encoded
	}
	return u.String(), nil
}
