package forkchoice_test

import (
	"testing"

	"github.com/minichain/minichain/domain/consensus/forkchoice"
	"github.com/minichain/minichain/domain/consensus/model"
	"github.com/minichain/minichain/domain/consensus/utils/constants"
	"github.com/minichain/minichain/domain/consensus/utils/hashing"
	"github.com/minichain/minichain/domain/consensus/utils/testutils"
	"github.com/pkg/errors"
)

// childWithDigestParity grinds child headers of parent until one's digest
// has the requested parity. The grind is deterministic, so tests stay
// reproducible.
func childWithDigestParity(parent *model.Header, even bool) *model.Header {
	for i := uint64(0); ; i++ {
		child := parent.Child(hashing.Uint64s(i), i)
		if (child.Digest()%2 == 0) == even {
			return child
		}
	}
}

// childWithNoWork grinds child headers of parent until one's digest lands at
// or above the work threshold, so the child holds exactly zero work. Nearly
// every digest qualifies, so the grind is short. Distinct seeds produce
// distinct children of the same parent.
func childWithNoWork(parent *model.Header, seed uint64) *model.Header {
	for i := seed; ; i++ {
		child := parent.Child(hashing.Uint64s(i), i)
		if child.Digest() >= constants.WorkThreshold {
			return child
		}
	}
}

// chainOfLength builds a plain chain of the given total length starting at
// genesis, using seed to diversify content between calls.
func chainOfLength(length int, seed uint64) []*model.Header {
	chain := []*model.Header{model.Genesis()}
	for uint64(len(chain)) < uint64(length) {
		tip := chain[len(chain)-1]
		chain = append(chain, tip.Child(hashing.Uint64s(seed, uint64(len(chain))), seed))
	}
	return chain[:length]
}

func TestBestChainErrors(t *testing.T) {
	rules := []struct {
		name string
		rule forkchoice.Rule
	}{
		{"longest", forkchoice.LongestChainRule{}},
		{"heaviest", forkchoice.HeaviestChainRule{}},
		{"most even hashes", forkchoice.MostBlocksWithEvenHashRule{}},
	}

	for _, test := range rules {
		_, err := forkchoice.BestChain(test.rule, nil)
		if !errors.Is(err, forkchoice.ErrNoCandidates) {
			t.Fatalf("%s: Expected ErrNoCandidates for an empty candidate list, instead found: %+v", test.name, err)
		}

		_, err = forkchoice.BestChain(test.rule, [][]*model.Header{chainOfLength(2, 1), {}})
		if !errors.Is(err, forkchoice.ErrEmptyChain) {
			t.Fatalf("%s: Expected ErrEmptyChain for an empty candidate chain, instead found: %+v", test.name, err)
		}

		_, err = test.rule.FirstChainIsBetter(nil, chainOfLength(1, 1))
		if !errors.Is(err, forkchoice.ErrEmptyChain) {
			t.Fatalf("%s: Expected ErrEmptyChain for an empty first chain, instead found: %+v", test.name, err)
		}

		_, err = test.rule.FirstChainIsBetter(chainOfLength(1, 1), nil)
		if !errors.Is(err, forkchoice.ErrEmptyChain) {
			t.Fatalf("%s: Expected ErrEmptyChain for an empty second chain, instead found: %+v", test.name, err)
		}
	}
}

func TestBestChainSingleCandidate(t *testing.T) {
	chain := chainOfLength(3, 1)
	best, err := forkchoice.BestChain(forkchoice.LongestChainRule{}, [][]*model.Header{chain})
	if err != nil {
		t.Fatalf("BestChain: %+v", err)
	}
	if !model.HeadersEqual(best, chain) {
		t.Fatalf("Expected the single candidate to win")
	}
}

// TestPolicyIndependence feeds the same two forks to the longest chain rule
// and the heaviest chain rule and expects opposite verdicts: one fork is
// longer, the other was mined against a tight threshold and holds far more
// work.
func TestPolicyIndependence(t *testing.T) {
	longerFork, heavierFork := testutils.BuildCompetingForks(2, 5, 3)
	candidates := [][]*model.Header{longerFork, heavierFork}

	longest, err := forkchoice.BestChain(forkchoice.LongestChainRule{}, candidates)
	if err != nil {
		t.Fatalf("BestChain(longest): %+v", err)
	}
	if !model.HeadersEqual(longest, longerFork) {
		t.Fatalf("Expected the longest chain rule to pick the longer fork")
	}

	heaviest, err := forkchoice.BestChain(forkchoice.HeaviestChainRule{}, candidates)
	if err != nil {
		t.Fatalf("BestChain(heaviest): %+v", err)
	}
	if !model.HeadersEqual(heaviest, heavierFork) {
		t.Fatalf("Expected the heaviest chain rule to pick the heavier fork")
	}
}
