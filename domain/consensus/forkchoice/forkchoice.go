// Package forkchoice decides which of several candidate chains a node
// should adopt.
//
// A chain is a read-only slice of headers ordered oldest first. Candidate
// chains may share a common ancestry prefix or be entirely disjoint: the
// rules judge chains purely on their content and never inspect linkage, so
// callers are responsible for passing internally valid chains.
package forkchoice

import (
	"github.com/minichain/minichain/domain/consensus/model"
	"github.com/pkg/errors"
)

// Rule decides between two candidate chains. Implementations are stateless
// and side effect free, so a host may reorder or parallelize comparisons.
type Rule interface {
	// FirstChainIsBetter reports whether chain1 is to be preferred over
	// chain2 under this rule. Rules differ in how they treat ties: a non
	// strict rule reports an equally good chain1 as better, a strict rule
	// does not. The tie direction is observable through BestChain, so each
	// rule documents and keeps its own.
	FirstChainIsBetter(chain1, chain2 []*model.Header) (bool, error)
}

// ErrEmptyChain is returned when a chain with no headers is passed where a
// non-empty chain is required. Chains in this domain always carry at least
// a genesis header, and silently judging an empty chain could pick a
// "winner" that is semantically meaningless.
var ErrEmptyChain = errors.New("chain has no headers")

// ErrNoCandidates is returned when BestChain is given an empty candidate
// list.
var ErrNoCandidates = errors.New("no candidate chains")

// BestChain reduces the given candidate chains to the single best one under
// the given rule.
//
// Candidates are visited left to right: the running winner starts as the
// first candidate, and each subsequent candidate replaces it only when
// rule.FirstChainIsBetter(candidate, winner) reports true. The reduction
// never assumes the rule induces a total order, and the rule's tie
// direction decides whether the first or the last of equally good
// candidates ends up winning.
//
// The returned slice is one of the given candidates, not a copy.
func BestChain(rule Rule, candidateChains [][]*model.Header) ([]*model.Header, error) {
	if len(candidateChains) == 0 {
		return nil, errors.Wrap(ErrNoCandidates, "cannot reduce an empty candidate list")
	}
	for i, candidateChain := range candidateChains {
		if len(candidateChain) == 0 {
			return nil, errors.Wrapf(ErrEmptyChain, "candidate chain %d", i)
		}
	}

	if picker, ok := rule.(bestChainPicker); ok {
		return picker.bestChain(candidateChains)
	}

	bestChain := candidateChains[0]
	for _, candidateChain := range candidateChains[1:] {
		candidateIsBetter, err := rule.FirstChainIsBetter(candidateChain, bestChain)
		if err != nil {
			return nil, err
		}
		if candidateIsBetter {
			bestChain = candidateChain
		}
	}
	return bestChain, nil
}

// bestChainPicker is implemented by rules that can reduce all candidates in
// a single pass, typically by computing each chain's key once instead of
// re-deriving the running winner's key on every comparison. A picker must
// behave exactly like the generic pairwise reduction for any input.
type bestChainPicker interface {
	bestChain(candidateChains [][]*model.Header) ([]*model.Header, error)
}

func validateChainsNotEmpty(chain1, chain2 []*model.Header) error {
	if len(chain1) == 0 {
		return errors.Wrap(ErrEmptyChain, "first chain")
	}
	if len(chain2) == 0 {
		return errors.Wrap(ErrEmptyChain, "second chain")
	}
	return nil
}
