package model

import (
	"fmt"

	"github.com/minichain/minichain/domain/consensus/utils/hashing"
	"github.com/pkg/errors"
)

// Header represents a block header. A header commits to its parent through
// the parent's digest, to the batch of extrinsics it carries through the
// extrinsics root, and holds an arbitrary consensus digest miners may grind
// to satisfy a difficulty threshold.
type Header struct {
	ParentDigest    uint64
	Height          uint64
	ExtrinsicsRoot  uint64
	ConsensusDigest uint64
}

// Genesis returns the genesis header. The genesis header is the all-zero
// header: it has no parent, so its parent digest is zero by convention.
func Genesis() *Header {
	return &Header{}
}

// Child returns a new header whose parent is this header, carrying the given
// extrinsics root and consensus digest.
func (h *Header) Child(extrinsicsRoot, consensusDigest uint64) *Header {
	return &Header{
		ParentDigest:    h.Digest(),
		Height:          h.Height + 1,
		ExtrinsicsRoot:  extrinsicsRoot,
		ConsensusDigest: consensusDigest,
	}
}

// Digest returns the canonical 64-bit digest of the header. The digest is
// the header's identity: children reference their parent by it, and it is
// the value measured against difficulty and work thresholds.
func (h *Header) Digest() uint64 {
	writer := hashing.NewHashWriter()
	err := hashing.WriteElements(writer, h.ParentDigest, h.Height, h.ExtrinsicsRoot, h.ConsensusDigest)
	if err != nil {
		// The only error path of WriteElements is an element type that has
		// no encoding, and all header fields are uint64.
		panic(errors.Wrap(err, "this should never happen. Hash digest should never return an error"))
	}
	return writer.Finalize()
}

// Clone returns a clone of Header
func (h *Header) Clone() *Header {
	return &Header{
		ParentDigest:    h.ParentDigest,
		Height:          h.Height,
		ExtrinsicsRoot:  h.ExtrinsicsRoot,
		ConsensusDigest: h.ConsensusDigest,
	}
}

// If this doesn't compile, it means the type definition has been changed, so it's
// an indication to update Equal and Clone accordingly.
var _ = &Header{0, 0, 0, 0}

// Equal returns whether header equals to other
func (h *Header) Equal(other *Header) bool {
	if h == nil || other == nil {
		return h == other
	}

	if h.ParentDigest != other.ParentDigest {
		return false
	}

	if h.Height != other.Height {
		return false
	}

	if h.ExtrinsicsRoot != other.ExtrinsicsRoot {
		return false
	}

	if h.ConsensusDigest != other.ConsensusDigest {
		return false
	}

	return true
}

func (h *Header) String() string {
	return fmt.Sprintf("Header{ParentDigest: %016x, Height: %d, ExtrinsicsRoot: %016x, ConsensusDigest: %d}",
		h.ParentDigest, h.Height, h.ExtrinsicsRoot, h.ConsensusDigest)
}

// CloneHeaders returns a clone of the given header slice.
func CloneHeaders(headers []*Header) []*Header {
	clone := make([]*Header, len(headers))
	for i, header := range headers {
		clone[i] = header.Clone()
	}
	return clone
}

// HeadersEqual returns whether the given header slices are equal element
// by element.
func HeadersEqual(headers, other []*Header) bool {
	if len(headers) != len(other) {
		return false
	}

	for i, header := range headers {
		if !header.Equal(other[i]) {
			return false
		}
	}
	return true
}
