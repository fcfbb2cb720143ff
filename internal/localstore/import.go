package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
)

// Import copies a legacy local storage export, a JSON object mapping keys
// to their stored values, into store. Keys other than LegacyKeys are
// ignored. It returns the number of keys written.
func Import(ctx context.Context, store Store, r io.Reader) (int, error) {
	var export map[string]json.RawMessage
	if err := gojson.NewDecoder(r).Decode(&export); err != nil {
		return 0, fmt.Errorf("failed to decode export: %w", err)
	}

	n := 0
	for _, key := range LegacyKeys {
		raw, ok := export[key]
		if !ok {
			continue
		}
		value := string(raw)
		// Values saved as JSON strings hold the serialized collection.
		var encoded string
		if err := gojson.Unmarshal(raw, &encoded); err == nil {
			value = encoded
		}
		if err := store.Set(ctx, key, value); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
