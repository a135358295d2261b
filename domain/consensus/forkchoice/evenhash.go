package forkchoice

import (
	"github.com/minichain/minichain/domain/consensus/model"
)

// MostBlocksWithEvenHashRule prefers the chain carrying more headers whose
// digest is even. It exists to demonstrate that fork choice is pluggable:
// any deterministic judgment over header content works, sensible or not.
//
// The comparison is strict, with the same tie direction as
// HeaviestChainRule: an equal count retains the reduction's earlier winner.
type MostBlocksWithEvenHashRule struct{}

// FirstChainIsBetter reports whether chain1 carries strictly more
// even-digest headers than chain2.
func (MostBlocksWithEvenHashRule) FirstChainIsBetter(chain1, chain2 []*model.Header) (bool, error) {
	err := validateChainsNotEmpty(chain1, chain2)
	if err != nil {
		return false, err
	}
	return EvenDigestCount(chain1) > EvenDigestCount(chain2), nil
}

// EvenDigestCount returns the number of headers in the chain whose digest
// is even.
func EvenDigestCount(chain []*model.Header) int {
	count := 0
	for _, header := range chain {
		if header.Digest()%2 == 0 {
			count++
		}
	}
	return count
}
