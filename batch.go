package jsonrpc2

import "encoding/json"

// Batch is an ordered collection of messages framed as one wire-level array.
type Batch []Message

// Envelope is the unit a Transport moves: either a single message or a
// batch. Batch takes precedence when both are set.
type Envelope struct {
	Single *Message
	Batch  Batch
}

func (env *Envelope) MarshalJSON() ([]byte, error) {
	if env.Batch != nil {
		return json.Marshal(env.Batch)
	}
	return json.Marshal(env.Single)
}

func (env *Envelope) UnmarshalJSON(data []byte) error {
	env.Single = nil
	env.Batch = nil
	if isArray(data) {
		return json.Unmarshal(data, &env.Batch)
	}
	env.Single = &Message{}
	return json.Unmarshal(data, env.Single)
}

func (env *Envelope) String() string {
	out, err := json.Marshal(env)
	if err != nil {
		return "<invalid envelope>"
	}
	return string(out)
}

// isArray returns true if the message is a JSON array (starts
// with '[', spaces skipped).
func isArray(raw json.RawMessage) bool {
	for _, b := range raw {
		if isSpace(b) {
			continue
		}
		return b == '['
	}
	return false
}

// isSpace returns true if the byte is considered a space in JSON syntax.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
