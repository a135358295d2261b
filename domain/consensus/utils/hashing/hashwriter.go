package hashing

import (
	"encoding/binary"
	"hash"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

// HashWriter is used to incrementally hash data without concatenating all of
// the data to a single buffer. It exposes an io.Writer api and a Finalize
// function to get the resulting digest. The used hash function is blake2b.
type HashWriter struct {
	hash.Hash
}

// NewHashWriter returns a new HashWriter.
func NewHashWriter() HashWriter {
	blake, err := blake2b.New256(nil)
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. blake2b.New256 with no key never returns an error."))
	}
	return HashWriter{blake}
}

// InfallibleWrite is just like write but doesn't return anything
func (h HashWriter) InfallibleWrite(p []byte) {
	// This write can never return an error, this is part of the hash.Hash interface contract.
	_, err := h.Write(p)
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. hash.Hash interface promises to not return errors."))
	}
}

// InfallibleWriteElement writes the little endian representation of element
// to the hash. It panics on unsupported element types, since the set of
// hashed types is closed and known at compile time.
func (h HashWriter) InfallibleWriteElement(element interface{}) {
	err := WriteElement(h, element)
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. Writes to a hash never fail."))
	}
}

// Finalize returns the resulting digest truncated to 64 bits. The first
// eight bytes of the blake2b sum are interpreted as a little endian uint64.
func (h HashWriter) Finalize() uint64 {
	var sum [32]byte
	// This should prevent `Sum` from allocating an output buffer, by using the sum buffer. we still copy because we don't want to rely on that.
	copy(sum[:], h.Sum(sum[:0]))
	return binary.LittleEndian.Uint64(sum[:8])
}
