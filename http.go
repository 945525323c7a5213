package jsonrpc2

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const httpContentType = "application/json"

// DefaultMaxContentLength caps request and response bodies at 10 MB unless
// overridden.
const DefaultMaxContentLength = 10 * 1024 * 1024

var _ Transport = &HTTPTransport{}

// HTTPTransport performs one POST per logical round trip.
type HTTPTransport struct {
	// Endpoint is the HTTP URL to dial for RPC calls.
	Endpoint string
	// HTTPClient is used for requests; the zero value behaves like
	// http.DefaultClient.
	HTTPClient http.Client
	// MaxContentLength is the request and response size limit. Zero means
	// DefaultMaxContentLength; negative disables the limit.
	MaxContentLength int64
}

func (t *HTTPTransport) maxContentLength() int64 {
	if t.MaxContentLength == 0 {
		return DefaultMaxContentLength
	}
	if t.MaxContentLength < 0 {
		return 0
	}
	return t.MaxContentLength
}

func (t *HTTPTransport) post(ctx context.Context, env *Envelope) (*http.Response, error) {
	body, err := json.Marshal(env)
	if err != nil {
		return nil, err
	}
	if max := t.maxContentLength(); max > 0 && int64(len(body)) > max {
		return nil, HTTPRequestError{Reason: "request too large"}
	}

	req, err := http.NewRequest(http.MethodPost, t.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", httpContentType)
	req.Header.Set("Accept", httpContentType)
	req = req.WithContext(ctx)

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, HTTPRequestError{
			Response: resp,
			Reason:   fmt.Sprintf("bad status code: %d", resp.StatusCode),
		}
	}
	return resp, nil
}

// SendNotification posts the envelope and discards whatever comes back.
func (t *HTTPTransport) SendNotification(ctx context.Context, env *Envelope) error {
	resp, err := t.post(ctx, env)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// SendRequestAndWait posts the envelope and decodes the response body.
func (t *HTTPTransport) SendRequestAndWait(ctx context.Context, env *Envelope) (*Envelope, error) {
	resp, err := t.post(ctx, env)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	max := t.maxContentLength()
	if max > 0 && resp.ContentLength > max {
		return nil, HTTPRequestError{
			Response: resp,
			Reason:   "response too large",
		}
	}
	var r io.Reader = resp.Body
	if max > 0 {
		r = io.LimitReader(resp.Body, max)
	}

	var respEnv Envelope
	if err := json.NewDecoder(r).Decode(&respEnv); err != nil {
		return nil, err
	}
	return &respEnv, nil
}

// HTTPRequestError is used when RPC over HTTP encounters an error during
// transport.
type HTTPRequestError struct {
	Response *http.Response
	Reason   string
}

func (err HTTPRequestError) Error() string {
	return fmt.Sprintf("http rpc request error: %s", err.Reason)
}
