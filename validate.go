package jsonrpc2

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// parseID returns the numeric value of a raw message ID, if it has one.
func parseID(raw json.RawMessage) (uint64, bool) {
	id, err := strconv.ParseUint(string(bytes.TrimSpace(raw)), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// shapeOf names the structural kind of a response envelope for error
// reporting.
func shapeOf(env *Envelope) string {
	switch {
	case env.Batch != nil:
		return "batch"
	case env.Single != nil && env.Single.Response != nil:
		return "single"
	default:
		return "notification"
	}
}

// validateSingle checks a response envelope against the ID of a single
// method call and extracts the result payload.
func validateSingle(env *Envelope, expectedID uint64) (json.RawMessage, error) {
	if env == nil {
		return nil, ProtocolError{Reason: "empty response"}
	}
	if shape := shapeOf(env); shape != "single" {
		return nil, ShapeMismatchError{Got: shape, Want: "single"}
	}
	msg := env.Single
	if id, ok := parseID(msg.ID); !ok || id != expectedID {
		return nil, InvalidIDError{ID: msg.ID}
	}
	if msg.Response.Error != nil {
		return nil, msg.Response.Error
	}
	return msg.Response.Result, nil
}

// validateBatch checks a response envelope against the set of IDs sent in a
// batch and extracts the result payloads in received order. Each member's
// ID is consumed from expected, so an unknown and a duplicated ID fail the
// same way. A response with fewer members than sent is accepted as-is.
func validateBatch(env *Envelope, expected map[uint64]bool) ([]json.RawMessage, error) {
	if env == nil {
		return nil, ProtocolError{Reason: "empty response"}
	}
	if shape := shapeOf(env); shape != "batch" {
		return nil, ShapeMismatchError{Got: shape, Want: "batch"}
	}
	results := make([]json.RawMessage, 0, len(expected))
	for i := range env.Batch {
		msg := &env.Batch[i]
		if msg.Response == nil {
			return nil, ProtocolError{Reason: fmt.Sprintf("malformed batch member: %s", msg)}
		}
		id, ok := parseID(msg.ID)
		if !ok || !expected[id] {
			return nil, InvalidIDError{ID: msg.ID}
		}
		delete(expected, id)
		if msg.Response.Error != nil {
			return nil, msg.Response.Error
		}
		results = append(results, msg.Response.Result)
	}
	return results, nil
}
