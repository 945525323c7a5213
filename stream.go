package jsonrpc2

import (
	"context"
	"sync"
	"time"
)

var _ Transport = &StreamTransport{}

// StreamTransport multiplexes calls over a persistent Codec, such as a
// websocket or a pipe. A serve loop reads envelopes off the codec and
// routes responses back to waiting callers by correlation ID; inbound
// messages that do not match an outstanding call are logged and dropped.
type StreamTransport struct {
	Codec Codec

	// PendingLimit is the number of outstanding calls to hold before the
	// oldest get discarded.
	PendingLimit int
	// PendingDiscard is the number of oldest calls that get discarded when
	// PendingLimit is reached.
	PendingDiscard int

	wmu sync.Mutex // guards codec writes

	mu      sync.Mutex
	pending map[string]*pendingCall
}

// Serve reads envelopes off the codec until it fails, routing responses to
// their callers. It should be running for the whole life of the transport.
func (t *StreamTransport) Serve() error {
	for {
		env, err := t.Codec.ReadEnvelope()
		if err != nil {
			return err
		}
		t.route(env)
	}
}

// Close closes the underlying codec, which also aborts Serve.
func (t *StreamTransport) Close() error {
	return t.Codec.Close()
}

func (t *StreamTransport) write(env *Envelope) error {
	t.wmu.Lock()
	defer t.wmu.Unlock()
	return t.Codec.WriteEnvelope(env)
}

// requestKeys returns the pending-map keys for every correlation ID carried
// by a request envelope.
func requestKeys(env *Envelope) []string {
	if env.Batch != nil {
		keys := make([]string, 0, len(env.Batch))
		for _, msg := range env.Batch {
			if len(msg.ID) > 0 {
				keys = append(keys, string(msg.ID))
			}
		}
		return keys
	}
	if env.Single != nil && len(env.Single.ID) > 0 {
		return []string{string(env.Single.ID)}
	}
	return nil
}

// responseKey returns the pending-map key a response envelope routes by. A
// batch routes by its first member, which is registered with the rest.
func responseKey(env *Envelope) (string, bool) {
	if len(env.Batch) > 0 {
		return string(env.Batch[0].ID), true
	}
	if env.Single != nil && env.Single.Response != nil && len(env.Single.ID) > 0 {
		return string(env.Single.ID), true
	}
	return "", false
}

// removePending deletes every key of a pending call, must hold the t.mu lock.
func (t *StreamTransport) removePending(p *pendingCall) {
	for _, key := range p.keys {
		if t.pending[key] == p {
			delete(t.pending, key)
		}
	}
}

// cleanPending discards the num oldest pending calls, must hold the t.mu
// lock. Discarded callers observe a closed channel.
func (t *StreamTransport) cleanPending(num int) {
	for _, item := range pendingOldest(t.pending, num) {
		p, ok := t.pending[item.key]
		if !ok {
			// Already removed via another key of the same call.
			continue
		}
		t.removePending(p)
		close(p.envChan)
	}
}

func (t *StreamTransport) register(keys []string) *pendingCall {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pending == nil {
		t.pending = map[string]*pendingCall{}
	}
	if t.PendingLimit > 0 && len(t.pending) >= t.PendingLimit && t.PendingDiscard > 0 {
		t.cleanPending(t.PendingDiscard)
	}
	p := &pendingCall{
		envChan:   make(chan *Envelope, 1),
		keys:      keys,
		timestamp: time.Now(),
	}
	for _, key := range keys {
		t.pending[key] = p
	}
	return p
}

func (t *StreamTransport) cancel(p *pendingCall) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.removePending(p)
}

func (t *StreamTransport) route(env *Envelope) {
	key, ok := responseKey(env)
	if !ok {
		logger.Printf("StreamTransport.Serve(): dropping invalid message: %s", env)
		return
	}
	t.mu.Lock()
	p, ok := t.pending[key]
	if ok {
		t.removePending(p)
	}
	t.mu.Unlock()
	if !ok {
		logger.Printf("StreamTransport.Serve(): dropping unmatched response: %s", env)
		return
	}
	p.envChan <- env
}

// SendNotification writes the envelope without registering any pending call.
func (t *StreamTransport) SendNotification(ctx context.Context, env *Envelope) error {
	return t.write(env)
}

// SendRequestAndWait registers the envelope's IDs, writes it, and blocks
// until the matching response envelope is routed back or ctx is done. An
// abandoned call leaves its IDs unmatched; a late response for them is
// dropped by the serve loop.
func (t *StreamTransport) SendRequestAndWait(ctx context.Context, env *Envelope) (*Envelope, error) {
	keys := requestKeys(env)
	if len(keys) == 0 {
		return nil, ProtocolError{Reason: "request envelope carries no correlation IDs"}
	}
	p := t.register(keys)
	defer t.cancel(p)

	if err := t.write(env); err != nil {
		return nil, err
	}

	select {
	case resp, ok := <-p.envChan:
		if !ok {
			return nil, ProtocolError{Reason: "call discarded: too many pending requests"}
		}
		return resp, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
