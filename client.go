package jsonrpc2

import (
	"context"
	"encoding/json"
	"sync/atomic"
)

// Client issues JSONRPC calls over a Transport and guarantees that every
// response is matched to the request that produced it. The zero value is
// usable once Transport is set; one ID counter per Client instance.
type Client struct {
	Transport Transport

	id uint64
}

// NextID returns a correlation ID that no concurrent caller on this Client
// receives before the counter wraps. Wraparound is silent: IDs only need to
// be unique among outstanding calls, and the range far exceeds realistic
// concurrency.
func (c *Client) NextID() uint64 {
	return atomic.AddUint64(&c.id, 1) - 1
}

// marshalParams encodes params for the wire: nil is omitted, a slice or
// array becomes positional params, a map or struct becomes named params.
func marshalParams(params interface{}) (json.RawMessage, error) {
	if params == nil {
		return nil, nil
	}
	return json.Marshal(params)
}

// newNotification builds a request message with no ID.
func newNotification(method string, params interface{}) (*Message, error) {
	raw, err := marshalParams(params)
	if err != nil {
		return nil, err
	}
	return &Message{
		Version: Version,
		Request: &Request{
			Method: method,
			Params: raw,
		},
	}, nil
}

// newCall builds a request message carrying the given correlation ID. ID
// allocation is the caller's job, which keeps it single-sourced on the
// Client counter.
func newCall(method string, params interface{}, id uint64) (*Message, error) {
	msg, err := newNotification(method, params)
	if err != nil {
		return nil, err
	}
	if msg.ID, err = json.Marshal(id); err != nil {
		return nil, err
	}
	return msg, nil
}

// Notify sends a fire-and-forget notification. No ID is assigned and no
// response is awaited; whatever the server does with it is ignored.
func (c *Client) Notify(ctx context.Context, method string, params interface{}) error {
	msg, err := newNotification(method, params)
	if err != nil {
		return err
	}
	if err := c.Transport.SendNotification(ctx, &Envelope{Single: msg}); err != nil {
		return TransportError{cause: err}
	}
	return nil
}

// CallRaw performs a single method call and returns the raw result payload
// after validating the response's shape and ID.
func (c *Client) CallRaw(ctx context.Context, method string, params interface{}) (json.RawMessage, error) {
	id := c.NextID()
	msg, err := newCall(method, params, id)
	if err != nil {
		return nil, err
	}
	resp, err := c.Transport.SendRequestAndWait(ctx, &Envelope{Single: msg})
	if err != nil {
		return nil, TransportError{cause: err}
	}
	return validateSingle(resp, id)
}

// Call performs a single method call and unmarshals the result payload into
// result. A nil result discards the payload.
func (c *Client) Call(ctx context.Context, result interface{}, method string, params interface{}) error {
	raw, err := c.CallRaw(ctx, method, params)
	if err != nil {
		return err
	}
	if result == nil || len(raw) == 0 || string(raw) == "null" {
		// No result
		return nil
	}
	return json.Unmarshal(raw, result)
}

// BatchItem is one method invocation within a batch call.
type BatchItem struct {
	Method string
	Params interface{}
}

// BatchCall performs the given calls as one wire-level batch and returns
// the raw result payloads in the order the server answered, which is not
// necessarily the order of items. Each item gets a fresh ID, allocated in
// item order. A single mismatched or failed member fails the whole call.
func (c *Client) BatchCall(ctx context.Context, items []BatchItem) ([]json.RawMessage, error) {
	batch := make(Batch, 0, len(items))
	expected := make(map[uint64]bool, len(items))
	for _, item := range items {
		id := c.NextID()
		msg, err := newCall(item.Method, item.Params, id)
		if err != nil {
			return nil, err
		}
		batch = append(batch, *msg)
		expected[id] = true
	}
	resp, err := c.Transport.SendRequestAndWait(ctx, &Envelope{Batch: batch})
	if err != nil {
		return nil, TransportError{cause: err}
	}
	return validateBatch(resp, expected)
}
