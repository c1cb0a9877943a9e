package hashertest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Layr-Labs/merkletree-go/pkg/hasher"
)

type HasherFactory func() hasher.Hasher

// TestHasherCompliance checks the properties the tree relies on
// for any Hasher implementation.
func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("hash is deterministic", func(t *testing.T) {
		t.Parallel()

		h := f()
		require.Equal(t, h.Hash([]byte("deterministic_data")), h.Hash([]byte("deterministic_data")))
	})

	t.Run("separate instances agree", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, f().Hash([]byte("same")), f().Hash([]byte("same")))
	})

	t.Run("hash respects input", func(t *testing.T) {
		t.Parallel()

		h := f()
		require.NotEqual(t, h.Hash([]byte("hello")), h.Hash([]byte("hellp")))
		require.NotEqual(t, h.Hash(nil), h.Hash([]byte{0}))
	})

	t.Run("hash does not modify input", func(t *testing.T) {
		t.Parallel()

		in := []byte("untouched")
		_ = f().Hash(in)
		require.Equal(t, []byte("untouched"), in)
	})

	t.Run("combine is order sensitive", func(t *testing.T) {
		t.Parallel()

		h := f()
		a := h.Hash([]byte("a"))
		b := h.Hash([]byte("b"))
		require.NotEqual(t, hasher.Combine(h, a, b), hasher.Combine(h, b, a))
	})

	t.Run("combine hashes raw concatenation", func(t *testing.T) {
		t.Parallel()

		h := f()
		a := h.Hash([]byte("a"))
		b := h.Hash([]byte("b"))
		concat := append(append([]byte{}, a[:]...), b[:]...)
		require.Equal(t, h.Hash(concat), hasher.Combine(h, a, b))
	})
}
