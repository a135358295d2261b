package mining_test

import (
	"math"
	"testing"

	"github.com/minichain/minichain/domain/consensus/model"
	"github.com/minichain/minichain/domain/consensus/utils/constants"
	"github.com/minichain/minichain/domain/consensus/utils/hashing"
	"github.com/minichain/minichain/domain/consensus/utils/mining"
)

func TestSolveHeader(t *testing.T) {
	tests := []struct {
		name      string
		threshold uint64
	}{
		{"work threshold", constants.WorkThreshold},
		{"tighter threshold", math.MaxUint64 / 1000},
		{"loose threshold", math.MaxUint64 / 4},
	}

	for _, test := range tests {
		header := model.Genesis().Child(hashing.Uint64s(1), 1)
		before := header.Clone()

		mining.SolveHeader(header, test.threshold)

		if header.Digest() >= test.threshold {
			t.Fatalf("%s: Expected the solved digest to be below %016x, instead found: %016x",
				test.name, test.threshold, header.Digest())
		}
		if header.ParentDigest != before.ParentDigest {
			t.Fatalf("%s: Expected the parent digest to be untouched", test.name)
		}
		if header.Height != before.Height {
			t.Fatalf("%s: Expected the height to be untouched", test.name)
		}
		if header.ExtrinsicsRoot != before.ExtrinsicsRoot {
			t.Fatalf("%s: Expected the extrinsics root to be untouched", test.name)
		}
		if header.ConsensusDigest == before.ConsensusDigest {
			t.Fatalf("%s: Expected the consensus digest to be perturbed at least once", test.name)
		}
	}
}

func TestSolveHeaderIsDeterministic(t *testing.T) {
	first := model.Genesis().Child(hashing.Uint64s(42), 42)
	second := first.Clone()

	mining.SolveHeader(first, math.MaxUint64/1000)
	mining.SolveHeader(second, math.MaxUint64/1000)

	if !first.Equal(second) {
		t.Fatalf("Expected the monotone search to find the same solution twice, instead found: %s and %s",
			first, second)
	}
}

func TestMineChildBlock(t *testing.T) {
	parent := model.GenesisBlock()
	extrinsics := []uint64{7, 8, 9}

	child := mining.MineChildBlock(parent, extrinsics)

	if child.Header.ParentDigest != parent.Header.Digest() {
		t.Fatalf("Expected the child block to reference its parent header")
	}
	if child.Header.ExtrinsicsRoot != hashing.Uint64s(extrinsics...) {
		t.Fatalf("Expected the extrinsics root to commit to the extrinsics batch")
	}
	if child.Header.Digest() >= constants.WorkThreshold {
		t.Fatalf("Expected a mined block to hold work, instead found digest %016x", child.Header.Digest())
	}
	if len(child.Extrinsics) != len(extrinsics) {
		t.Fatalf("Expected the block to carry its extrinsics")
	}

	grandchild := mining.MineChildBlock(child, nil)
	if grandchild.Header.Height != 2 {
		t.Fatalf("Expected the grandchild block height to be 2, instead found: %d", grandchild.Header.Height)
	}
}
