package model_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/minichain/minichain/domain/consensus/model"
	"github.com/minichain/minichain/domain/consensus/utils/hashing"
)

func TestGenesis(t *testing.T) {
	genesis := model.Genesis()
	expected := &model.Header{ParentDigest: 0, Height: 0, ExtrinsicsRoot: 0, ConsensusDigest: 0}
	if !genesis.Equal(expected) {
		t.Fatalf("Expected the genesis header to be all zero, instead found: %s", spew.Sdump(genesis))
	}

	if model.Genesis().Digest() != genesis.Digest() {
		t.Fatalf("Expected the genesis digest to be fixed, instead found two different digests")
	}
}

func TestChild(t *testing.T) {
	genesis := model.Genesis()
	child := genesis.Child(hashing.Uint64s(1), 7)

	if child.ParentDigest != genesis.Digest() {
		t.Fatalf("Expected the child to reference its parent digest %016x, instead found: %016x",
			genesis.Digest(), child.ParentDigest)
	}
	if child.Height != genesis.Height+1 {
		t.Fatalf("Expected the child height to be %d, instead found: %d", genesis.Height+1, child.Height)
	}
	if child.ExtrinsicsRoot != hashing.Uint64s(1) {
		t.Fatalf("Expected the extrinsics root to be carried through, instead found: %016x", child.ExtrinsicsRoot)
	}
	if child.ConsensusDigest != 7 {
		t.Fatalf("Expected the consensus digest to be carried through, instead found: %d", child.ConsensusDigest)
	}

	grandchild := child.Child(hashing.Uint64s(2), 0)
	if grandchild.ParentDigest != child.Digest() {
		t.Fatalf("Expected the grandchild to reference the child's digest %016x, instead found: %016x",
			child.Digest(), grandchild.ParentDigest)
	}
	if grandchild.Height != 2 {
		t.Fatalf("Expected the grandchild height to be 2, instead found: %d", grandchild.Height)
	}
}

func TestDigestCoversEveryField(t *testing.T) {
	base := model.Header{ParentDigest: 1, Height: 2, ExtrinsicsRoot: 3, ConsensusDigest: 4}

	tests := []struct {
		name   string
		mutate func(header *model.Header)
	}{
		{"ParentDigest", func(header *model.Header) { header.ParentDigest++ }},
		{"Height", func(header *model.Header) { header.Height++ }},
		{"ExtrinsicsRoot", func(header *model.Header) { header.ExtrinsicsRoot++ }},
		{"ConsensusDigest", func(header *model.Header) { header.ConsensusDigest++ }},
	}

	baseDigest := base.Digest()
	for _, test := range tests {
		mutated := base
		test.mutate(&mutated)
		if mutated.Digest() == baseDigest {
			t.Fatalf("Expected mutating %s to change the digest, instead it stayed %016x",
				test.name, baseDigest)
		}
	}

	same := base
	if same.Digest() != baseDigest {
		t.Fatalf("Expected equal headers to share a digest, instead found: %016x != %016x",
			same.Digest(), baseDigest)
	}
}

func TestHeaderEqualAndClone(t *testing.T) {
	header := &model.Header{ParentDigest: 1, Height: 2, ExtrinsicsRoot: 3, ConsensusDigest: 4}

	tests := []struct {
		name           string
		other          *model.Header
		expectedResult bool
	}{
		{"equal header", &model.Header{ParentDigest: 1, Height: 2, ExtrinsicsRoot: 3, ConsensusDigest: 4}, true},
		{"different parent digest", &model.Header{ParentDigest: 9, Height: 2, ExtrinsicsRoot: 3, ConsensusDigest: 4}, false},
		{"different height", &model.Header{ParentDigest: 1, Height: 9, ExtrinsicsRoot: 3, ConsensusDigest: 4}, false},
		{"different extrinsics root", &model.Header{ParentDigest: 1, Height: 2, ExtrinsicsRoot: 9, ConsensusDigest: 4}, false},
		{"different consensus digest", &model.Header{ParentDigest: 1, Height: 2, ExtrinsicsRoot: 3, ConsensusDigest: 9}, false},
		{"nil header", nil, false},
	}

	for _, test := range tests {
		result := header.Equal(test.other)
		if result != test.expectedResult {
			t.Fatalf("Expected Equal to return %t for %s, instead found: %t", test.expectedResult, test.name, result)
		}
	}

	var nilHeader *model.Header
	if !nilHeader.Equal(nil) {
		t.Fatalf("Expected two nil headers to be equal")
	}

	clone := header.Clone()
	if !clone.Equal(header) {
		t.Fatalf("Expected the clone to equal the original, instead found: %s", spew.Sdump(clone))
	}
	if clone == header {
		t.Fatalf("Expected the clone to be a new object, instead found the original")
	}
}

func TestHeadersEqual(t *testing.T) {
	genesis := model.Genesis()
	chain := []*model.Header{genesis, genesis.Child(1, 1)}

	if !model.HeadersEqual(chain, model.CloneHeaders(chain)) {
		t.Fatalf("Expected a cloned chain to be equal to the original")
	}
	if model.HeadersEqual(chain, chain[:1]) {
		t.Fatalf("Expected chains of different lengths to not be equal")
	}
	if model.HeadersEqual(chain, []*model.Header{genesis, genesis.Child(2, 2)}) {
		t.Fatalf("Expected chains with different headers to not be equal")
	}
}
