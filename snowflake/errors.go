package snowflake

import "errors"

var (
	ErrInvalidTimestamp    = errors.New("the supplied time can not be encoded as a snowflake timestamp")
	ErrInvalidSnowflake    = errors.New("the supplied string is not the decimal form of a 64 bit snowflake")
	ErrWorkerIDRange       = errors.New("the worker id does not fit the 5 bits reserved for it")
	ErrProcessIDRange      = errors.New("the process id does not fit the 5 bits reserved for it")
	ErrSnowflakeBytesShort = errors.New("not enough bytes to represent a snowflake")
)
