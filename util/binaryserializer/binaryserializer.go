// Package binaryserializer provides functions for serializing primitive
// integer values to io.Writers in their binary encoding.
package binaryserializer

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// PutUint8 writes the provided uint8 to the given writer.
func PutUint8(w io.Writer, val uint8) error {
	var buf [1]byte
	buf[0] = val
	_, err := w.Write(buf[:])
	return errors.WithStack(err)
}

// PutUint32 serializes the provided uint32 using the given byte order and
// writes the resulting four bytes to the given writer.
func PutUint32(w io.Writer, byteOrder binary.ByteOrder, val uint32) error {
	var buf [4]byte
	byteOrder.PutUint32(buf[:], val)
	_, err := w.Write(buf[:])
	return errors.WithStack(err)
}

// PutUint64 serializes the provided uint64 using the given byte order and
// writes the resulting eight bytes to the given writer.
func PutUint64(w io.Writer, byteOrder binary.ByteOrder, val uint64) error {
	var buf [8]byte
	byteOrder.PutUint64(buf[:], val)
	_, err := w.Write(buf[:])
	return errors.WithStack(err)
}
