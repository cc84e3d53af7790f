package snowflake

import (
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"
)

// Codec mints and decodes snowflakes. It owns the only mutable state in the
// package, the increment counter, so independent instances never share
// state and tests can construct as many as they like.
type Codec struct {
	epochMS int64

	// maskedWorkerID and maskedProcessID are the configured slot ids shifted
	// into their final bit positions, ready to or into the encoded word.
	maskedWorkerID  uint64
	maskedProcessID uint64

	log logger.Logger

	// increment is a free running counter, only the low IncrementBits of
	// which are encoded, so the encoded value wraps at 4096. The wrap does
	// *not* stall the generator waiting for the next millisecond. Uniqueness
	// is promised for bursts below 4096 ids per millisecond, which is the
	// contract for the single process deployment.
	//
	// ***********************************************************************
	// The read-modify-write is a single atomic Add, so concurrent callers
	// can never observe the same increment.
	// ***********************************************************************
	increment atomic.Uint32
}

// New creates a codec for the configured worker and process slots. The slot
// ids are validated here, once, so the generate path never needs to mask
// them.
func New(cfg Config, log logger.Logger) (*Codec, error) {
	if cfg.WorkerID > MaxWorkerID {
		return nil, fmt.Errorf("worker id %d: %w", cfg.WorkerID, ErrWorkerIDRange)
	}
	if cfg.ProcessID > MaxProcessID {
		return nil, fmt.Errorf("process id %d: %w", cfg.ProcessID, ErrProcessIDRange)
	}

	epochMS := cfg.EpochMS
	if epochMS == 0 {
		epochMS = DefaultEpochMS
	}

	c := &Codec{
		epochMS:         epochMS,
		maskedWorkerID:  uint64(cfg.WorkerID) << WorkerShift,
		maskedProcessID: uint64(cfg.ProcessID) << ProcessShift,
		log:             log,
	}
	c.log.Debugf(
		"snowflake codec: worker %d, process %d, epoch %s",
		cfg.WorkerID, cfg.ProcessID, c.EpochTime().Format(time.RFC3339))
	return c, nil
}

// Generate mints a snowflake for the current wall clock time.
func (c *Codec) Generate() (string, error) {
	return c.GenerateAt(time.Now())
}

// GenerateAt mints a snowflake for the supplied time. The zero time is
// rejected with ErrInvalidTimestamp, as are times the encoding can not
// represent (see GenerateUnixMilli).
func (c *Codec) GenerateAt(t time.Time) (string, error) {
	if t.IsZero() {
		return "", fmt.Errorf("zero time: %w", ErrInvalidTimestamp)
	}
	return c.GenerateUnixMilli(t.UnixMilli())
}

// GenerateUnixMilli mints a snowflake for a unix millisecond timestamp.
//
// Times before the codec epoch are rejected: the encoded word is unsigned
// end to end and we do not support a signed timestamp field. Times whose
// offset from the epoch overflows the TimeBits reserved for it are also
// rejected, so an encoded word never exceeds 64 bits.
//
// Validation precedes the counter mutation, a failed call never consumes an
// increment.
func (c *Codec) GenerateUnixMilli(ms int64) (string, error) {
	relative := ms - c.epochMS
	if relative < 0 {
		return "", fmt.Errorf("%d is before the codec epoch %d: %w", ms, c.epochMS, ErrInvalidTimestamp)
	}
	if relative > int64(TimeMask>>TimeShift) {
		return "", fmt.Errorf("%d overflows the %d bits reserved for time: %w", ms, TimeBits, ErrInvalidTimestamp)
	}

	seq := uint64(c.increment.Add(1)-1) & IncrementMask

	id := uint64(relative)<<TimeShift | c.maskedWorkerID | c.maskedProcessID | seq
	return strconv.FormatUint(id, 10), nil
}

// EpochMS returns the codec reference zero time in unix milliseconds.
// Immutable for the life of the codec.
func (c *Codec) EpochMS() int64 {
	return c.epochMS
}

// EpochTime returns the codec reference zero time as a UTC time value.
func (c *Codec) EpochTime() time.Time {
	return time.UnixMilli(c.epochMS).UTC()
}
