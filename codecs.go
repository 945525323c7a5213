package jsonrpc2

import (
	"encoding/json"
	"io"
)

// Codec is an abstraction for receiving and sending JSONRPC envelopes over
// a persistent connection.
type Codec interface {
	ReadEnvelope() (*Envelope, error)
	WriteEnvelope(*Envelope) error
	Close() error
}

var _ Codec = jsonCodec{}

// IOCodec returns a Codec that wraps JSON encoding and decoding over IO.
func IOCodec(rwc io.ReadWriteCloser) Codec {
	return jsonCodec{
		dec:    json.NewDecoder(rwc),
		enc:    json.NewEncoder(rwc),
		closer: rwc,
	}
}

type jsonCodec struct {
	dec    *json.Decoder
	enc    *json.Encoder
	closer io.Closer
}

func (codec jsonCodec) ReadEnvelope() (*Envelope, error) {
	var env Envelope
	if err := codec.dec.Decode(&env); err != nil {
		return nil, err
	}
	return &env, nil
}

func (codec jsonCodec) WriteEnvelope(env *Envelope) error {
	return codec.enc.Encode(env)
}

func (codec jsonCodec) Close() error {
	return codec.closer.Close()
}
