package model_test

import (
	"testing"

	"github.com/minichain/minichain/domain/consensus/model"
)

func TestGenesisBlock(t *testing.T) {
	genesisBlock := model.GenesisBlock()
	if !genesisBlock.Header.Equal(model.Genesis()) {
		t.Fatalf("Expected the genesis block to carry the genesis header")
	}
	if len(genesisBlock.Extrinsics) != 0 {
		t.Fatalf("Expected the genesis block to carry no extrinsics, instead found: %d", len(genesisBlock.Extrinsics))
	}
}

func TestBlockEqualAndClone(t *testing.T) {
	block := &model.Block{
		Header:     model.Genesis().Child(1, 2),
		Extrinsics: []uint64{10, 20, 30},
	}

	clone := block.Clone()
	if !clone.Equal(block) {
		t.Fatalf("Expected the clone to equal the original")
	}
	if clone == block || clone.Header == block.Header {
		t.Fatalf("Expected the clone to not share objects with the original")
	}

	clone.Extrinsics[0] = 99
	if clone.Equal(block) {
		t.Fatalf("Expected blocks with different extrinsics to not be equal")
	}

	var nilBlock *model.Block
	if nilBlock.Equal(block) {
		t.Fatalf("Expected a nil block to not equal a non-nil block")
	}
	if !nilBlock.Equal(nil) {
		t.Fatalf("Expected two nil blocks to be equal")
	}
}
