package merkle

import (
	"go.uber.org/zap"

	"github.com/Layr-Labs/merkletree-go/pkg/hasher"
)

type Option func(*Tree)

// WithHasher sets the digest function. The default is SHA-256.
func WithHasher(h hasher.Hasher) Option {
	return func(t *Tree) {
		if h != nil {
			t.hasher = h
		}
	}
}

// WithLogger sets the logger used for debug events. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(t *Tree) {
		if l != nil {
			t.logger = l
		}
	}
}
