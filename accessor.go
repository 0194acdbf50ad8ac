package keysort

// Accessor maps a row index to its key bytes. Implementations must be pure
// functions of the index for the duration of a sort: the engine assumes
// GetKey's result doesn't change across calls that don't mutate the
// accessor, and that nothing mutates the accessor while a sort is running.
type Accessor interface {
	// Len returns the number of rows. Constant for the duration of a sort.
	Len() int

	// GetKey returns a borrow of row i's key bytes. O(1).
	GetKey(i int) []byte

	// GetU64Prefix returns the big-endian uint64 formed from up to eight
	// key bytes starting at offset, zero-padded past end-of-key. Returns
	// 0 when offset is at or past the end of the key. Accessors backed by
	// contiguous storage (flat buffers, columnar arrays) should override
	// this for a zero-copy fast path; DefaultU64Prefix gives the
	// GetKey-derived fallback for everyone else.
	GetU64Prefix(i, offset int) uint64
}

// DefaultU64Prefix implements the Accessor.GetU64Prefix contract purely in
// terms of GetKey, for accessors with no faster path of their own.
func DefaultU64Prefix(acc Accessor, i, offset int) uint64 {
	return loadU64BE(acc.GetKey(i), offset)
}

// loadU64BE returns the big-endian eight-byte integer starting at offset in
// key, zero-padding past the end of key and returning 0 if offset is at or
// beyond len(key).
func loadU64BE(key []byte, offset int) uint64 {
	if offset >= len(key) {
		return 0
	}
	remaining := len(key) - offset
	if remaining >= 8 {
		k := key[offset : offset+8]
		return uint64(k[0])<<56 | uint64(k[1])<<48 | uint64(k[2])<<40 | uint64(k[3])<<32 |
			uint64(k[4])<<24 | uint64(k[5])<<16 | uint64(k[6])<<8 | uint64(k[7])
	}
	var buf [8]byte
	copy(buf[:], key[offset:])
	return uint64(buf[0])<<56 | uint64(buf[1])<<48 | uint64(buf[2])<<40 | uint64(buf[3])<<32 |
		uint64(buf[4])<<24 | uint64(buf[5])<<16 | uint64(buf[6])<<8 | uint64(buf[7])
}
