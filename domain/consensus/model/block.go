package model

// Block is a header along with the batch of extrinsics the header commits
// to. The fork choice rules never look at extrinsics, only at headers, so
// blocks exist for block building and for hosts that execute extrinsics.
type Block struct {
	Header     *Header
	Extrinsics []uint64
}

// GenesisBlock returns the genesis block. It carries the genesis header and
// no extrinsics.
func GenesisBlock() *Block {
	return &Block{Header: Genesis()}
}

// Clone returns a clone of Block
func (b *Block) Clone() *Block {
	extrinsicsClone := make([]uint64, len(b.Extrinsics))
	copy(extrinsicsClone, b.Extrinsics)

	return &Block{
		Header:     b.Header.Clone(),
		Extrinsics: extrinsicsClone,
	}
}

// If this doesn't compile, it means the type definition has been changed, so it's
// an indication to update Equal and Clone accordingly.
var _ = &Block{&Header{}, []uint64{}}

// Equal returns whether block equals to other
func (b *Block) Equal(other *Block) bool {
	if b == nil || other == nil {
		return b == other
	}

	if !b.Header.Equal(other.Header) {
		return false
	}

	if len(b.Extrinsics) != len(other.Extrinsics) {
		return false
	}

	for i, extrinsic := range b.Extrinsics {
		if extrinsic != other.Extrinsics[i] {
			return false
		}
	}

	return true
}
