package session

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/zenspace/zenspace/internal/api"
)

// DecodeAuthPayload decodes the base64url JSON blob delivered at the end of
// a federated-login round trip. The payload carries the same user+tokens
// shape as a login response and is consumed exactly once.
func DecodeAuthPayload(raw string) (*api.AuthResult, error) {
	decoded, err := decodeBase64URL(raw)
	if err != nil {
		return nil, fmt.Errorf("decode auth payload: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(decoded, &parsed); err != nil {
		return nil, fmt.Errorf("parse auth payload: %w", err)
	}
	if err := payloadSchema().Validate(parsed); err != nil {
		return nil, fmt.Errorf("validate auth payload: %w", err)
	}

	var out api.AuthResult
	if err := json.Unmarshal(decoded, &out); err != nil {
		return nil, fmt.Errorf("parse auth payload: %w", err)
	}
	return &out, nil
}

// decodeBase64URL accepts both padded and unpadded base64url, since the
// backend strips padding from query parameters.
func decodeBase64URL(raw string) ([]byte, error) {
	if decoded, err := base64.RawURLEncoding.DecodeString(raw); err == nil {
		return decoded, nil
	}
	return base64.URLEncoding.DecodeString(raw)
}
