package hasher

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// DigestSize is the length in bytes of every Digest.
const DigestSize = 32

// Digest is the fixed-size output of a Hasher.
type Digest [DigestSize]byte

// Hex returns the 0x-prefixed hex encoding of the digest.
func (d Digest) Hex() string {
	return hexutil.Encode(d[:])
}

func (d Digest) String() string {
	return d.Hex()
}

// IsZero reports whether every byte of the digest is zero.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// DigestFromHex decodes a 0x-prefixed hex string into a Digest.
func DigestFromHex(s string) (Digest, error) {
	var d Digest
	b, err := hexutil.Decode(s)
	if err != nil {
		return d, errors.Wrapf(err, "failed to decode digest %q", s)
	}
	if len(b) != DigestSize {
		return d, errors.Errorf("digest must be %d bytes, got %d", DigestSize, len(b))
	}
	copy(d[:], b)
	return d, nil
}
