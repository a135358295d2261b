// Package mining provides the brute force difficulty search used to produce
// headers whose digests satisfy a threshold.
package mining

import (
	"github.com/minichain/minichain/domain/consensus/model"
	"github.com/minichain/minichain/domain/consensus/utils/constants"
	"github.com/minichain/minichain/domain/consensus/utils/hashing"
)

// SolveHeader perturbs the given header's consensus digest until the
// header's digest falls strictly below the given threshold.
//
// The walk is monotone rather than random: on the n'th attempt the consensus
// digest is set to its original value plus n, wrapping around on overflow.
// The header is rehashed after every perturbation, so the unperturbed header
// is never tested. Only the consensus digest field is mutated.
//
// The search is an unbounded linear scan. It terminates for any reachable
// threshold but loops forever on an unreachable one (e.g. zero), mirroring
// the open-endedness of proof of work. Callers are responsible for choosing
// thresholds they know are reachable.
func SolveHeader(header *model.Header, threshold uint64) {
	originalDigest := header.ConsensusDigest
	for i := uint64(1); ; i++ {
		header.ConsensusDigest = originalDigest + i
		if header.Digest() < threshold {
			return
		}
	}
}

// MineChildBlock assembles a child block of parent carrying the given
// extrinsics and solves its header against the standard work threshold, so
// ordinarily built blocks always hold some work.
func MineChildBlock(parent *model.Block, extrinsics []uint64) *model.Block {
	extrinsicsRoot := hashing.Uint64s(extrinsics...)
	header := parent.Header.Child(extrinsicsRoot, 0)
	SolveHeader(header, constants.WorkThreshold)
	return &model.Block{Header: header, Extrinsics: extrinsics}
}
