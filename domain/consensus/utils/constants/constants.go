package constants

import "math"

const (
	// WorkThreshold is the threshold a header digest is measured against
	// when accounting chain work. A header whose digest is at or above the
	// threshold carries no work. The threshold is fixed and is independent
	// of any difficulty a miner may solve for.
	WorkThreshold uint64 = math.MaxUint64 / 100

	// MaxConsensusDigest is the maximum value the consensus digest field
	// of a header can hold.
	MaxConsensusDigest uint64 = math.MaxUint64
)
