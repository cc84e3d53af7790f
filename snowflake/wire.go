package snowflake

// When we serialise snowflakes for propagation outside the subsystem we
// exchange the 8 byte big endian word, or the hex encoding of it, rather
// than the decimal string. This file contains utilities for dealing safely
// with that.

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// IDBytes returns the serialization of a snowflake as a big endian 64 bit
// value.
//
// Returns:
//
// An 8 byte slice.
func IDBytes(s string) ([]byte, error) {
	id, err := parseID(s)
	if err != nil {
		return nil, err
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, id)
	return b, nil
}

// IDFromBytes accepts a serialized snowflake.
//
// Returns:
//
//	The decimal string form, or a non nil error
func IDFromBytes(b []byte) (string, error) {
	if len(b) < 8 {
		return "", ErrSnowflakeBytesShort
	}
	if len(b) > 8 {
		return "", fmt.Errorf("%d bytes where 8 were expected: %w", len(b), ErrInvalidSnowflake)
	}
	return strconv.FormatUint(binary.BigEndian.Uint64(b), 10), nil
}

// IDToHex returns the hex encoding of a snowflake.
//
// Returns:
//
// A 16 character string, the big endian 64 bit value converted to hex.
func IDToHex(s string) (string, error) {
	b, err := IDBytes(s)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// IDFromHex accepts a hex encoded snowflake, with or without a 0x prefix.
//
// Returns:
//
//	The decimal string form, or a non nil error
func IDFromHex(h string) (string, error) {
	h = strings.TrimPrefix(h, "0x")

	b, err := hex.DecodeString(h)
	if err != nil {
		return "", fmt.Errorf("%q: %w", h, ErrInvalidSnowflake)
	}
	return IDFromBytes(b)
}
