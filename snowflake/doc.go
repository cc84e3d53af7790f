package snowflake

// This package implements the scheme for generating and decoding playerberry
// ids as time ordered 64 bit snowflakes.
//
// The following properties hold for the generated id's:
//
// * The id maps the millisecond it was minted in to the total ordering of all ids created by one process.
// * Ids are exchanged as base 10 decimal strings, so consumers whose numeric type is only safe to 53 bits never lose precision.
// * The high 42 bits carry the millisecond offset from the codec epoch, so lexical order of equal length ids matches time order.
// * 5 bit worker and process slots disambiguate generating units. The single process deployment fixes these at worker 1, process 0, but the layout supports 0-31 for future multi worker use.
// * A 12 bit increment distinguishes ids minted within the same millisecond. It wraps at 4096 rather than stalling the generator, so uniqueness is only promised for bursts below 4096 ids per millisecond.
//
// Decoding recovers every field, including the wall clock time the id was
// minted at, without reference to the generator state.
