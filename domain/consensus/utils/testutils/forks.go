// Package testutils provides deterministic chain fixtures for fork choice
// tests.
package testutils

import (
	"math"

	"github.com/minichain/minichain/domain/consensus/model"
	"github.com/minichain/minichain/domain/consensus/utils/hashing"
	"github.com/minichain/minichain/domain/consensus/utils/mining"
)

// TightThreshold is the difficulty threshold fixture chains mine their heavy
// suffix against. It is ten times tighter than the work threshold, so every
// header solved against it holds substantial work.
const TightThreshold uint64 = math.MaxUint64 / 1000

// BuildCompetingForks builds two chains branching off a shared prefix of
// prefixLength headers on top of genesis.
//
// The longer fork extends the prefix with longSuffixLength plain headers.
// Their digests are uniform over the 64-bit space, so the suffix holds
// little to no work. The heavier fork extends the prefix with
// shortSuffixLength headers each solved against TightThreshold, holding a
// lot of work. Callers pick lengths with longSuffixLength bigger, so the
// two forks disagree under the longest chain and heaviest chain rules.
//
// Both returned chains include the shared prefix. The construction involves
// no randomness: the same arguments always build the same forks.
func BuildCompetingForks(prefixLength, longSuffixLength, shortSuffixLength int) (longerFork, heavierFork []*model.Header) {
	prefix := []*model.Header{model.Genesis()}
	for i := 0; i < prefixLength; i++ {
		extrinsic := uint64(i)
		prefix = append(prefix, tipOf(prefix).Child(hashing.Uint64s(extrinsic), extrinsic))
	}

	longerFork = append([]*model.Header{}, prefix...)
	for i := 0; i < longSuffixLength; i++ {
		extrinsic := uint64(100 + i)
		longerFork = append(longerFork, tipOf(longerFork).Child(hashing.Uint64s(extrinsic), extrinsic))
	}

	heavierFork = append([]*model.Header{}, prefix...)
	for i := 0; i < shortSuffixLength; i++ {
		extrinsic := uint64(200 + i)
		header := tipOf(heavierFork).Child(hashing.Uint64s(extrinsic), extrinsic)
		mining.SolveHeader(header, TightThreshold)
		heavierFork = append(heavierFork, header)
	}

	return longerFork, heavierFork
}

func tipOf(chain []*model.Header) *model.Header {
	return chain[len(chain)-1]
}
