package cart

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

const payloadVersion = 1

// envelope is the persisted form of a cart. Totals are never stored; they
// are recomputed from the items on load.
type envelope struct {
	Version  int             `json:"version"`
	Checksum string          `json:"checksum"`
	Items    json.RawMessage `json:"items"`
}

// Encode serializes items for a Store.
func Encode(items []LineItem) ([]byte, error) {
	if items == nil {
		items = []LineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cart items: %w", err)
	}
	return json.Marshal(envelope{
		Version:  payloadVersion,
		Checksum: checksum(raw),
		Items:    raw,
	})
}

// Decode parses a payload written by Encode. A bare JSON array of items, as
// kept by the browser storefront, is accepted too. An empty payload decodes
// to no items.
func Decode(data []byte) ([]LineItem, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	if data[0] == '[' {
		var items []LineItem
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
		}
		return items, nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}
	if env.Version != payloadVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptPayload, env.Version)
	}
	if env.Checksum != checksum(env.Items) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorruptPayload)
	}

	var items []LineItem
	if err := json.Unmarshal(env.Items, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}
	return items, nil
}

func checksum(raw []byte) string {
	sum := blake2b.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
