// Websocket implementation using Gorilla's Websocket library
package gorilla

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/corewire/jsonrpc2"
	"github.com/corewire/jsonrpc2/ws"
)

var _ ws.Upgrader = &Upgrader{}

// WebSocketDial returns a Codec that wraps a client-side connection with
// JSON encoding and decoding.
func WebSocketDial(ctx context.Context, url string) (jsonrpc2.Codec, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}

	return &wsCodec{conn: conn}, nil
}

var _ jsonrpc2.Codec = &wsCodec{}

type wsCodec struct {
	muWrite sync.Mutex
	muRead  sync.Mutex
	conn    *websocket.Conn
}

func (codec *wsCodec) ReadEnvelope() (*jsonrpc2.Envelope, error) {
	codec.muRead.Lock()
	defer codec.muRead.Unlock()
	var env jsonrpc2.Envelope
	if err := codec.conn.ReadJSON(&env); err != nil {
		return nil, err
	}
	return &env, nil
}

func (codec *wsCodec) WriteEnvelope(env *jsonrpc2.Envelope) error {
	codec.muWrite.Lock()
	defer codec.muWrite.Unlock()
	return codec.conn.WriteJSON(env)
}

func (codec *wsCodec) Close() error {
	return codec.conn.Close()
}

// Upgrader upgrades an HTTP request to a websocket connection and returns
// the appropriate jsonrpc2 codec.
type Upgrader struct {
	Upgrader websocket.Upgrader
}

func (u *Upgrader) Upgrade(r *http.Request, w http.ResponseWriter, h http.Header) (jsonrpc2.Codec, error) {
	conn, err := u.Upgrader.Upgrade(w, r, h)
	if err != nil {
		return nil, err
	}
	return &wsCodec{conn: conn}, nil
}
