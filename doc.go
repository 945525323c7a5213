/*
	Package jsonrpc2 implements the client side of JSONRPC 2.0: building
	method calls, notifications and batches, assigning correlation IDs, and
	validating that responses match the shape and IDs of what was sent.

	Client is the facade. It owns the ID counter and composes a Transport,
	which moves envelopes to a server and back. A Client is safe for
	concurrent use; the only shared mutable state is the atomic counter.

	Transport is the boundary to the wire. HTTPTransport does one POST per
	round trip. StreamTransport multiplexes calls over a persistent Codec
	(such as a websocket, see the ws subpackages) and routes responses back
	to waiting callers by ID.

	This package does not serve incoming requests. Responses that do not
	correspond to an outstanding call are dropped.
*/
package jsonrpc2
