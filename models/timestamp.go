// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"fmt"
	"time"
)

// TimestampLayout is the wire layout of user timestamps: UTC wall-clock time
// without a zone offset, with up to nanosecond precision.
const TimestampLayout = "2006-01-02T15:04:05.999999999"

// Timestamp is a naive UTC timestamp.
//
// It marshals without a zone offset and keeps full nanosecond precision, so a
// value survives an encode/decode round trip unchanged. When decoding, values
// that do carry an offset (e.g. "+00:00" from a timestamptz column) are
// accepted and normalised to UTC.
type Timestamp struct {
	time.Time
}

// NewTimestamp returns t converted to UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

// Now returns the current time as a [Timestamp].
func Now() Timestamp {
	return NewTimestamp(time.Now())
}

// String implements [fmt.Stringer].
func (t Timestamp) String() string {
	return t.UTC().Format(TimestampLayout)
}

// MarshalJSON implements [json.Marshaler].
func (t Timestamp) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, len(TimestampLayout)+2)
	buf = append(buf, '"')
	buf = t.UTC().AppendFormat(buf, TimestampLayout)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON implements [json.Unmarshaler].
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("timestamp must be a JSON string, got %s", data)
	}

	parsed, err := ParseTimestamp(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

// ParseTimestamp parses a naive UTC timestamp. RFC 3339 values with an
// explicit offset are accepted as well and converted to UTC.
func ParseTimestamp(value string) (Timestamp, error) {
	if parsed, err := time.Parse(TimestampLayout, value); err == nil {
		return NewTimestamp(parsed), nil
	}

	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q: %w", value, err)
	}

	return NewTimestamp(parsed), nil
}
