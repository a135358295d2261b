package hashing_test

import (
	"testing"

	"github.com/minichain/minichain/domain/consensus/utils/hashing"
)

func TestUint64sIsDeterministic(t *testing.T) {
	tests := [][]uint64{
		{},
		{0},
		{1},
		{1, 2, 3},
		{18446744073709551615},
	}

	for i, test := range tests {
		first := hashing.Uint64s(test...)
		second := hashing.Uint64s(test...)
		if first != second {
			t.Fatalf("%d: Expected the same digest on repeated hashing, instead found: %016x != %016x",
				i, first, second)
		}
	}
}

func TestUint64sDistinguishesSequences(t *testing.T) {
	tests := []struct {
		first  []uint64
		second []uint64
	}{
		{[]uint64{}, []uint64{0}},
		{[]uint64{1}, []uint64{2}},
		{[]uint64{1, 2}, []uint64{2, 1}},
		{[]uint64{1, 2}, []uint64{1, 2, 0}},
	}

	for i, test := range tests {
		firstDigest := hashing.Uint64s(test.first...)
		secondDigest := hashing.Uint64s(test.second...)
		if firstDigest == secondDigest {
			t.Fatalf("%d: Expected %v and %v to hash differently, instead both returned %016x",
				i, test.first, test.second, firstDigest)
		}
	}
}

func TestBytes(t *testing.T) {
	first := hashing.Bytes([]byte{1, 2, 3, 4})
	second := hashing.Bytes([]byte{1, 2, 3, 4})
	if first != second {
		t.Fatalf("Expected the same digest on repeated hashing, instead found: %016x != %016x", first, second)
	}

	other := hashing.Bytes([]byte{4, 3, 2, 1})
	if first == other {
		t.Fatalf("Expected different byte slices to hash differently, instead both returned %016x", first)
	}
}

func TestHashWriterMatchesOneShotHashing(t *testing.T) {
	incremental := hashing.NewHashWriter()
	incremental.InfallibleWriteElement(uint64(1))
	incremental.InfallibleWriteElement(uint64(2))

	oneShot := hashing.NewHashWriter()
	err := hashing.WriteElements(oneShot, uint64(1), uint64(2))
	if err != nil {
		t.Fatalf("WriteElements: %+v", err)
	}

	if incremental.Finalize() != oneShot.Finalize() {
		t.Fatalf("Expected incremental and one-shot hashing to produce the same digest")
	}
}

func TestWriteElementRejectsUnknownTypes(t *testing.T) {
	writer := hashing.NewHashWriter()
	err := hashing.WriteElement(writer, "not a supported type")
	if err == nil {
		t.Fatalf("Expected an error for an element type with no encoding, instead found none")
	}
}
