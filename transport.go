package jsonrpc2

import "context"

// Transport moves request envelopes to a server. Implementations must be
// safe for concurrent use; retries, pooling and timeouts are the
// transport's business (or nobody's), never the Client's.
type Transport interface {
	// SendNotification writes an envelope without waiting for a response.
	SendNotification(ctx context.Context, env *Envelope) error
	// SendRequestAndWait writes an envelope and blocks until the
	// corresponding response envelope arrives or ctx is done. One logical
	// round trip per call.
	SendRequestAndWait(ctx context.Context, env *Envelope) (*Envelope, error)
}
