package forkchoice

import (
	"math/big"

	"github.com/minichain/minichain/domain/consensus/model"
	"github.com/minichain/minichain/domain/consensus/utils/constants"
)

// HeaviestChainRule prefers the chain whose headers hold more accumulated
// work. A header's work is how far its digest falls below the fixed work
// threshold, so chains of lucky, low digests outweigh longer chains of
// ordinary ones.
//
// The comparison is strict: on an exact work tie the candidate loses and a
// BestChain reduction retains the earlier winner. This is the opposite tie
// direction from LongestChainRule and must stay that way.
type HeaviestChainRule struct{}

// FirstChainIsBetter reports whether chain1 holds strictly more work than
// chain2.
func (HeaviestChainRule) FirstChainIsBetter(chain1, chain2 []*model.Header) (bool, error) {
	err := validateChainsNotEmpty(chain1, chain2)
	if err != nil {
		return false, err
	}
	return ChainWork(chain1).Cmp(ChainWork(chain2)) > 0, nil
}

// bestChain reduces the candidates in a single pass, hashing every header
// once instead of re-deriving the running winner's work per comparison.
// The comparison is the same strict one FirstChainIsBetter uses, so the
// first of equally heavy candidates is retained, exactly like the generic
// reduction.
func (HeaviestChainRule) bestChain(candidateChains [][]*model.Header) ([]*model.Header, error) {
	bestChain := candidateChains[0]
	bestWork := ChainWork(bestChain)
	for _, candidateChain := range candidateChains[1:] {
		candidateWork := ChainWork(candidateChain)
		if candidateWork.Cmp(bestWork) > 0 {
			bestChain = candidateChain
			bestWork = candidateWork
		}
	}
	return bestChain, nil
}

// HeaderWork returns the work held by a single header: the distance of the
// header's digest below the work threshold, or zero for digests at or above
// it. Most digests are uniform over the 64-bit space, so most headers hold
// no work at all.
func HeaderWork(header *model.Header) uint64 {
	digest := header.Digest()
	if digest > constants.WorkThreshold {
		return 0
	}
	return constants.WorkThreshold - digest
}

// ChainWork returns the total work held by the given chain. The sum is
// accumulated in a big.Int: a single header's work fits in 64 bits because
// it is bounded by the work threshold, but a sum over many headers may not,
// and wrapping around would corrupt the ordering the heaviest chain rule
// relies on.
func ChainWork(chain []*model.Header) *big.Int {
	chainWork := big.NewInt(0)
	headerWork := new(big.Int)
	for _, header := range chain {
		headerWork.SetUint64(HeaderWork(header))
		chainWork.Add(chainWork, headerWork)
	}
	return chainWork
}
