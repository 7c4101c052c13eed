package domain

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// NonceSize is the number of random bytes in a payload nonce (16 hex characters).
const NonceSize = 8

// Payload is the record sealed inside an API key.
//
// The nonce only makes every issued key unique; it is not tracked for replay.
// A Payload is built once by NewPayload and never mutated.
type Payload struct {
	Nonce string `json:"nonce"`
	Scope string `json:"scope"`
	Level Level  `json:"level"`
}

// wirePayload detects missing fields, which plain string fields cannot.
type wirePayload struct {
	Nonce *string `json:"nonce"`
	Scope *string `json:"scope"`
	Level *Level  `json:"level"`
}

// NewPayload builds a payload with a fresh nonce read from crypto/rand.
func NewPayload(scope string, level Level) (*Payload, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return &Payload{
		Nonce: hex.EncodeToString(nonce),
		Scope: scope,
		Level: level,
	}, nil
}

// Marshal serializes the payload as compact JSON with the nonce, scope and level keys.
func (p *Payload) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

// MatchScope returns ErrScopeMismatch unless the payload was issued for exactly scope.
// The comparison is byte for byte with no normalization.
func (p *Payload) MatchScope(scope string) error {
	if p.Scope != scope {
		return ErrScopeMismatch
	}
	return nil
}

// ParsePayload decodes a serialized payload.
//
// Key order does not matter and unknown keys are ignored. All three keys must be present
// with string values, the level must be known and the nonce must be lowercase hex of at
// least 16 characters. Any violation returns ErrMalformedPayload.
func ParsePayload(data []byte) (*Payload, error) {
	var w wirePayload
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	switch {
	case w.Nonce == nil:
		return nil, fmt.Errorf("%w: missing nonce", ErrMalformedPayload)
	case w.Scope == nil:
		return nil, fmt.Errorf("%w: missing scope", ErrMalformedPayload)
	case w.Level == nil:
		return nil, fmt.Errorf("%w: missing level", ErrMalformedPayload)
	}

	if !isNonce(*w.Nonce) {
		return nil, fmt.Errorf("%w: nonce must be lowercase hex", ErrMalformedPayload)
	}

	return &Payload{
		Nonce: *w.Nonce,
		Scope: *w.Scope,
		Level: *w.Level,
	}, nil
}

func isNonce(s string) bool {
	if len(s) < 2*NonceSize || len(s)%2 != 0 {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
