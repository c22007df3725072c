package protocol

import (
	"encoding/json"
)

// client -> server
const (
	MsgFire     = "fire"
	MsgMove     = "move"
	MsgPosition = "position"
	MsgRemove   = "remove"
	MsgClear    = "clear"
	MsgRetry    = "retry"
	MsgExit     = "exit"
)

// server -> client
const (
	MsgState   = "state"
	MsgOutcome = "outcome"
)

// Codecs a client may ask for with ?codec=
const (
	CodecJSON    = "json"
	CodecMsgpack = "msgpack"
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p,omitempty"` // raw payload bytes
}
