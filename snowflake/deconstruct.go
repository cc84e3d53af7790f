package snowflake

import (
	"fmt"
	"strconv"
	"time"
)

// DeconstructedSnowflake is the fully decomposed form of a snowflake. It is
// pure derived data, recomputed on every Deconstruct call.
type DeconstructedSnowflake struct {
	// Timestamp is the embedded time in milliseconds since the unix epoch,
	// the codec epoch offset has been added back.
	Timestamp int64

	// Date is Timestamp as a UTC time value.
	Date time.Time

	WorkerID  uint8
	ProcessID uint8
	Increment uint16

	// Binary is the base 2 rendering of the raw 64 bit word, left padded
	// with zeros to exactly 64 characters.
	Binary string
}

// parseID parses the decimal string surface form. All decode paths come
// through here so they share one failure mode.
func parseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidSnowflake)
	}
	return id, nil
}

// Deconstruct splits a snowflake into its component fields.
func (c *Codec) Deconstruct(s string) (DeconstructedSnowflake, error) {
	id, err := parseID(s)
	if err != nil {
		return DeconstructedSnowflake{}, err
	}

	ms := int64(id>>TimeShift) + c.epochMS

	return DeconstructedSnowflake{
		Timestamp: ms,
		Date:      time.UnixMilli(ms).UTC(),
		WorkerID:  uint8((id & WorkerMask) >> WorkerShift),
		ProcessID: uint8((id & ProcessMask) >> ProcessShift),
		Increment: uint16(id & IncrementMask),
		Binary:    fmt.Sprintf("%064b", id),
	}, nil
}

// Timestamp recovers the embedded unix millisecond timestamp without paying
// for the full field decomposition.
func (c *Codec) Timestamp(s string) (int64, error) {
	id, err := parseID(s)
	if err != nil {
		return 0, err
	}
	return int64(id>>TimeShift) + c.epochMS, nil
}

// Time recovers the embedded timestamp as a UTC time value.
func (c *Codec) Time(s string) (time.Time, error) {
	ms, err := c.Timestamp(s)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).UTC(), nil
}

// Duration returns the absolute difference, in milliseconds, between the
// timestamps embedded in two snowflakes.
func (c *Codec) Duration(a, b string) (int64, error) {
	ta, err := c.Timestamp(a)
	if err != nil {
		return 0, err
	}
	tb, err := c.Timestamp(b)
	if err != nil {
		return 0, err
	}
	if ta < tb {
		return tb - ta, nil
	}
	return ta - tb, nil
}
