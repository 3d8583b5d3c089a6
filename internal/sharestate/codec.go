// Package sharestate turns calculator inputs into URL-safe tokens and back.
//
// There are two mechanisms. A share link carries the whole input set in a
// single "data" query parameter as a versioned, base64url JSON envelope
// (Encode and Decode). Single-field pages instead mirror each input into its
// own short query parameter (Sync).
package sharestate

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// Version is the only envelope version Decode accepts.
const Version = 1

// DataParam is the query parameter that carries an encoded envelope.
const DataParam = "data"

type envelope struct {
	V int             `json:"v"`
	T int64           `json:"t"`
	S json.RawMessage `json:"s"`
}

// Snapshot is what the calculator pages put inside an envelope.
type Snapshot[T any] struct {
	V      int `json:"v"`
	Inputs T   `json:"inputs"`
}

var now = time.Now

// Encode wraps state in a {v, t, s} envelope, serialises it as JSON and
// returns it base64url encoded without padding.
func Encode[T any](state T) (string, error) {
	s, err := json.Marshal(state)
	if err != nil {
		return "", err
	}
	raw, err := json.Marshal(envelope{V: Version, T: now().UnixMilli(), S: s})
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Decode reverses Encode. It reports false for anything it cannot read:
// bad base64, bad JSON, an unknown version or a missing payload.
func Decode[T any](encoded string) (T, bool) {
	var zero T
	raw, err := base64.RawURLEncoding.DecodeString(normalize(encoded))
	if err != nil {
		return zero, false
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, false
	}
	if env.V != Version || len(env.S) == 0 || string(env.S) == "null" {
		return zero, false
	}
	var state T
	if err := json.Unmarshal(env.S, &state); err != nil {
		return zero, false
	}
	return state, true
}

// EncodeInputs encodes inputs as a page snapshot.
func EncodeInputs[T any](inputs T) (string, error) {
	return Encode(Snapshot[T]{V: Version, Inputs: inputs})
}

// DecodeInputs decodes a page snapshot and returns its inputs. A snapshot
// without an inputs object is rejected.
func DecodeInputs[T any](encoded string) (T, bool) {
	var zero T
	snap, ok := Decode[Snapshot[json.RawMessage]](encoded)
	if !ok || len(snap.Inputs) == 0 || string(snap.Inputs) == "null" {
		return zero, false
	}
	var inputs T
	if err := json.Unmarshal(snap.Inputs, &inputs); err != nil {
		return zero, false
	}
	return inputs, true
}

// normalize maps the standard base64 alphabet onto the URL one and drops
// padding.
func normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "=")
	return strings.NewReplacer("+", "-", "/", "_").Replace(s)
}
