// Package ws defines the seam between websocket implementations and the
// jsonrpc2 codec model. The gorilla and gobwas subpackages provide the
// implementations.
package ws

import (
	"net/http"

	"github.com/corewire/jsonrpc2"
)

// Upgrader takes an HTTP request, upgrades it to a websocket server and
// returns a codec interface. This allows switching between different
// websocket implementations.
type Upgrader interface {
	Upgrade(*http.Request, http.ResponseWriter, http.Header) (jsonrpc2.Codec, error)
}
