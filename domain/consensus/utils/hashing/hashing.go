// Package hashing provides the deterministic 64-bit digest used to identify
// consensus objects.
//
// Digests are computed by serializing values little endian into a blake2b-256
// hash and truncating the sum to its first eight bytes. The serialization is
// fixed and keyless, so digests are stable across processes, platforms and
// versions.
package hashing

// Uint64s returns the digest of the given sequence of integers. The sequence
// is length-prefixed, so sequences that are prefixes of one another hash
// differently.
func Uint64s(values ...uint64) uint64 {
	writer := NewHashWriter()
	writer.InfallibleWriteElement(uint64(len(values)))
	for _, value := range values {
		writer.InfallibleWriteElement(value)
	}
	return writer.Finalize()
}

// Bytes returns the digest of the given byte slice.
func Bytes(data []byte) uint64 {
	writer := NewHashWriter()
	writer.InfallibleWrite(data)
	return writer.Finalize()
}
