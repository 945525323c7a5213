package jsonrpc2

import (
	"context"

	"golang.org/x/time/rate"
)

var _ Transport = &RateLimitedTransport{}

// RateLimitedTransport paces outbound envelopes with a token bucket. It
// waits for a token before delegating; it never retries or drops.
type RateLimitedTransport struct {
	Transport Transport
	Limiter   *rate.Limiter
}

func (t *RateLimitedTransport) SendNotification(ctx context.Context, env *Envelope) error {
	if err := t.Limiter.Wait(ctx); err != nil {
		return err
	}
	return t.Transport.SendNotification(ctx, env)
}

func (t *RateLimitedTransport) SendRequestAndWait(ctx context.Context, env *Envelope) (*Envelope, error) {
	if err := t.Limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return t.Transport.SendRequestAndWait(ctx, env)
}
