package forkchoice

import (
	"github.com/minichain/minichain/domain/consensus/model"
)

// LongestChainRule prefers the chain with more blocks, the classic Nakamoto
// fork choice.
//
// The comparison is non strict: a chain exactly as long as the other is
// still reported better. In a BestChain reduction this means the last of
// equally long candidates wins. The direction is deliberate and differs
// from the strict rules in this package.
type LongestChainRule struct{}

// FirstChainIsBetter reports whether chain1 is at least as long as chain2.
func (LongestChainRule) FirstChainIsBetter(chain1, chain2 []*model.Header) (bool, error) {
	err := validateChainsNotEmpty(chain1, chain2)
	if err != nil {
		return false, err
	}
	return len(chain1) >= len(chain2), nil
}
