// Package hasher provides the digest functions a Merkle tree is built with.
//
// Every Hasher maps an arbitrary byte sequence to a fixed 32-byte Digest.
// Implementations must be deterministic, free of side effects,
// and safe to call concurrently.
package hasher

import (
	"crypto/sha256"

	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Hasher is the digest function consumed by the tree.
type Hasher interface {
	Hash(data []byte) Digest
}

// Combine hashes the raw concatenation left || right.
func Combine(h Hasher, left, right Digest) Digest {
	data := make([]byte, 2*DigestSize)
	copy(data[:DigestSize], left[:])
	copy(data[DigestSize:], right[:])
	return h.Hash(data)
}

// SHA256 is the default Hasher.
type SHA256 struct{}

func (SHA256) Hash(data []byte) Digest {
	return sha256.Sum256(data)
}

// Keccak256 hashes with legacy Keccak-256, matching Solidity's keccak256.
type Keccak256 struct{}

func (Keccak256) Hash(data []byte) Digest {
	return Digest(crypto.Keccak256Hash(data))
}

// SHA3_256 hashes with FIPS 202 SHA3-256.
type SHA3_256 struct{}

func (SHA3_256) Hash(data []byte) Digest {
	return sha3.Sum256(data)
}

// Blake2b256 hashes with unkeyed BLAKE2b-256.
type Blake2b256 struct{}

func (Blake2b256) Hash(data []byte) Digest {
	return blake2b.Sum256(data)
}

// Func adapts an ordinary function to the Hasher interface.
type Func func(data []byte) Digest

func (f Func) Hash(data []byte) Digest {
	return f(data)
}
