// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// PreferenceBlob is the opaque player-preference document returned by the
// remote preference service. It is stored and sent back byte-for-byte and
// never interpreted.
type PreferenceBlob json.RawMessage

// MarshalJSON returns the blob verbatim. An empty blob encodes as null.
func (b PreferenceBlob) MarshalJSON() ([]byte, error) {
	if len(b) == 0 {
		return []byte("null"), nil
	}
	return b, nil
}

// UnmarshalJSON stores a copy of data.
func (b *PreferenceBlob) UnmarshalJSON(data []byte) error {
	*b = append((*b)[0:0], data...)
	return nil
}

// Valid reports whether the blob is a syntactically valid JSON document.
func (b PreferenceBlob) Valid() bool {
	return len(b) > 0 && json.Valid(b)
}

// PreferenceProfile is a named, locally saved copy of a [PreferenceBlob].
type PreferenceProfile struct {
	Name    string         `json:"name"`
	Blob    PreferenceBlob `json:"blob"`
	SavedAt time.Time      `json:"saved_at"`
}
