package snowflake

type Config struct {
	// WorkerID selects the worker slot encoded in every generated id. The
	// field is 5 bits wide, New rejects values outside [0, MaxWorkerID].
	WorkerID uint8

	// ProcessID selects the process slot, with the same 5 bit range as
	// WorkerID. The current single process deployment uses worker 1,
	// process 0.
	ProcessID uint8

	// EpochMS overrides the codec reference zero time, in milliseconds since
	// the unix epoch. Zero selects DefaultEpochMS. Tests use this to pin the
	// epoch; service code should leave it at zero.
	EpochMS int64
}

const (
	// DefaultEpochMS is the codec reference zero time with respect to unix
	// time: 2015-01-01T00:00:00.000Z. Every encoded timestamp is the
	// millisecond offset from this instant.
	DefaultEpochMS int64 = 1420070400000

	IncrementBits = 12
	ProcessBits   = 5
	WorkerBits    = 5

	// TimeBits is the number of bits reserved for time. Our timestamp has
	// millisecond precision, so measured from the default epoch this setting
	// gives the codec headroom of ~139 years.
	//
	// Notice that this setting is not configurable, the field boundaries are
	// the wire format.
	TimeBits = 64 - WorkerBits - ProcessBits - IncrementBits

	ProcessShift = IncrementBits
	WorkerShift  = IncrementBits + ProcessBits
	TimeShift    = IncrementBits + ProcessBits + WorkerBits

	MaxIncrement = (1 << IncrementBits) - 1
	MaxProcessID = (1 << ProcessBits) - 1
	MaxWorkerID  = (1 << WorkerBits) - 1

	IncrementMask uint64 = (1 << IncrementBits) - 1
	ProcessMask   uint64 = MaxProcessID << ProcessShift
	WorkerMask    uint64 = MaxWorkerID << WorkerShift
	TimeMask      uint64 = ((1 << TimeBits) - 1) << TimeShift
)
