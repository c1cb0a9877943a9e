package hasher

import (
	"github.com/pkg/errors"
	"github.com/wealdtech/go-merkletree/v2/keccak256"
)

// HashType is the hash interface used by github.com/wealdtech/go-merkletree.
type HashType interface {
	Hash(data ...[]byte) []byte
	HashLength() int
}

type hashTypeAdapter struct {
	ht HashType
}

// FromHashType wraps a go-merkletree hash type as a Hasher.
// Only hash types producing DigestSize-byte output are accepted.
func FromHashType(ht HashType) (Hasher, error) {
	if ht == nil {
		return nil, errors.New("hash type cannot be nil")
	}
	if ht.HashLength() != DigestSize {
		return nil, errors.Errorf("hash type produces %d-byte digests, need %d", ht.HashLength(), DigestSize)
	}
	return hashTypeAdapter{ht: ht}, nil
}

func (a hashTypeAdapter) Hash(data []byte) Digest {
	var d Digest
	copy(d[:], a.ht.Hash(data))
	return d
}

// WealdtechKeccak256 returns the go-merkletree Keccak-256 hash type as a Hasher.
// It produces the same digests as Keccak256.
func WealdtechKeccak256() Hasher {
	h, err := FromHashType(keccak256.New())
	if err != nil {
		panic(errors.Wrap(err, "BUG: keccak256 hash type rejected"))
	}
	return h
}
