package jsonrpc2

import "encoding/json"

// Message is one wire-level JSONRPC object. The ID and version are shared
// fields; exactly one of the Request or Response halves should be set. A
// Message holding a Request but no ID is a notification.
type Message struct {
	ID      json.RawMessage
	Version string
	*Request
	*Response
}

// wireMessage is the flattened JSON layout of a Message.
type wireMessage struct {
	ID      json.RawMessage `json:"id,omitempty"`
	Version string          `json:"jsonrpc"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *ErrResponse    `json:"error,omitempty"`
}

func (msg *Message) MarshalJSON() ([]byte, error) {
	wire := wireMessage{
		ID:      msg.ID,
		Version: msg.Version,
	}
	if msg.Request != nil {
		wire.Method = msg.Request.Method
		wire.Params = msg.Request.Params
	}
	if msg.Response != nil {
		wire.Result = msg.Response.Result
		wire.Error = msg.Response.Error
	}
	return json.Marshal(wire)
}

func (msg *Message) UnmarshalJSON(data []byte) error {
	var wire wireMessage
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	msg.ID = wire.ID
	msg.Version = wire.Version
	msg.Request = nil
	msg.Response = nil
	if wire.Method != "" {
		msg.Request = &Request{
			Method: wire.Method,
			Params: wire.Params,
		}
	}
	// A "result":null key still counts as a response half.
	if wire.Error != nil || len(wire.Result) > 0 {
		msg.Response = &Response{
			Result: wire.Result,
			Error:  wire.Error,
		}
	}
	return nil
}

func (msg *Message) String() string {
	out, err := json.Marshal(msg)
	if err != nil {
		return "<invalid message>"
	}
	return string(out)
}
