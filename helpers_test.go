package jsonrpc2

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

// stubTransport answers with canned functions. Nil functions mean the path
// is not expected to be exercised.
type stubTransport struct {
	notifyFn  func(env *Envelope) error
	requestFn func(env *Envelope) (*Envelope, error)
}

func (t *stubTransport) SendNotification(ctx context.Context, env *Envelope) error {
	if t.notifyFn == nil {
		return nil
	}
	return t.notifyFn(env)
}

func (t *stubTransport) SendRequestAndWait(ctx context.Context, env *Envelope) (*Envelope, error) {
	if t.requestFn == nil {
		return nil, errors.New("unexpected request")
	}
	return t.requestFn(env)
}

// echoResponse answers every call with its own params as the result,
// preserving IDs and member order.
func echoResponse(env *Envelope) (*Envelope, error) {
	if env.Batch != nil {
		batch := make(Batch, 0, len(env.Batch))
		for _, req := range env.Batch {
			batch = append(batch, *echoMessage(&req))
		}
		return &Envelope{Batch: batch}, nil
	}
	return &Envelope{Single: echoMessage(env.Single)}, nil
}

func echoMessage(req *Message) *Message {
	result := req.Request.Params
	if len(result) == 0 {
		result = json.RawMessage(`null`)
	}
	return &Message{
		ID:      req.ID,
		Version: Version,
		Response: &Response{
			Result: result,
		},
	}
}

func assertEqualJSON(t *testing.T, a, b interface{}, format string, args ...interface{}) {
	t.Helper()

	aa, err := json.Marshal(a)
	if err != nil {
		t.Fatal(err)
	}
	bb, err := json.Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Compare(aa, bb) != 0 {
		prefix := fmt.Sprintf(format, args...)
		t.Errorf(prefix+"\n   got: %q\n  want: %q", aa, bb)
	}
}

type BatchByID []Message

func (b BatchByID) Len() int {
	return len(b)
}

func (b BatchByID) Less(i, j int) bool {
	return bytes.Compare(b[i].ID, b[j].ID) < 0
}

func (b BatchByID) Swap(i, j int) {
	b[i], b[j] = b[j], b[i]
}
