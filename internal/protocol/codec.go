package protocol

import (
	"encoding/json"
	"errors"
	"fmt"

	"go-invaders/internal/component"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	ErrEmptyType    = errors.New("empty envelope type")
	ErrEmptyMessage = errors.New("empty message")
)

// Encode wraps payload into a JSON envelope. A nil payload gives an envelope
// without "p", which is how bodiless commands like retry travel.
func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, ErrEmptyType
	}
	e := Envelope{T: t}
	if payload != nil {
		pb, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s payload: %w", t, err)
		}
		e.P = pb
	}
	return json.Marshal(e)
}

func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, ErrEmptyMessage
	}
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	if e.T == "" {
		return Envelope{}, ErrEmptyType
	}
	return e, nil
}

func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 {
		return out, fmt.Errorf("empty payload for type %q", env.T)
	}
	err := json.Unmarshal(env.P, &out)
	return out, err
}

// EncodeSnapshot packs a snapshot for a binary frame.
func EncodeSnapshot(s component.Snapshot) ([]byte, error) {
	b, err := msgpack.Marshal(&s)
	if err != nil {
		return nil, fmt.Errorf("msgpack snapshot: %w", err)
	}
	return b, nil
}

func DecodeSnapshot(b []byte) (component.Snapshot, error) {
	var s component.Snapshot
	if err := msgpack.Unmarshal(b, &s); err != nil {
		return component.Snapshot{}, fmt.Errorf("msgpack snapshot: %w", err)
	}
	return s, nil
}
