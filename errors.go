package jsonrpc2

import (
	"encoding/json"
	"fmt"
)

// TransportError is used when the underlying transport fails. The cause is
// opaque to this layer and passed through.
type TransportError struct {
	cause error
}

func (err TransportError) Error() string {
	return fmt.Sprintf("transport error: %s", err.cause)
}

func (err TransportError) Cause() error {
	return err.cause
}

// ShapeMismatchError is used when the structural kind of a response
// (single, batch, notification) does not match what the request demanded.
type ShapeMismatchError struct {
	Got  string
	Want string
}

func (err ShapeMismatchError) Error() string {
	return fmt.Sprintf("server replied with a %s response to a %s request", err.Got, err.Want)
}

// InvalidIDError is used when a response carries an ID that is missing,
// non-numeric, or not among the IDs of the outstanding request. For batches
// this also covers duplicated member IDs.
type InvalidIDError struct {
	ID json.RawMessage
}

func (err InvalidIDError) Error() string {
	if len(err.ID) == 0 {
		return "response is missing a request ID"
	}
	return fmt.Sprintf("response ID does not match any outstanding request: %s", err.ID)
}

// ProtocolError is used for protocol violations not covered by a more
// specific type, such as a malformed batch member.
type ProtocolError struct {
	Reason string
}

func (err ProtocolError) Error() string {
	return fmt.Sprintf("protocol error: %s", err.Reason)
}
