package merkle

import (
	"fmt"
	"testing"
)

// BenchmarkMerkleTreeBuild benchmarks tree construction with various sizes
func BenchmarkMerkleTreeBuild(b *testing.B) {
	sizes := []int{10, 50, 100, 200}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Values_%d", size), func(b *testing.B) {
			values := createTestValues(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = New(values)
			}
		})
	}
}

// BenchmarkMerkleTreeAppend benchmarks growing a tree one value at a time
func BenchmarkMerkleTreeAppend(b *testing.B) {
	sizes := []int{10, 50, 100}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Values_%d", size), func(b *testing.B) {
			values := createTestValues(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				tree := New(nil)
				for _, v := range values {
					tree.Append(v)
				}
			}
		})
	}
}

// BenchmarkMerkleProofGeneration benchmarks proof generation
func BenchmarkMerkleProofGeneration(b *testing.B) {
	sizes := []int{10, 50, 100, 200}

	for _, size := range sizes {
		values := createTestValues(size)
		tree := New(values)
		leaves := tree.Leaves()

		b.Run(fmt.Sprintf("Values_%d", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = tree.GenerateProof(leaves[i%size])
			}
		})
	}
}

// BenchmarkMerkleProofVerification benchmarks proof verification
func BenchmarkMerkleProofVerification(b *testing.B) {
	sizes := []int{10, 50, 100, 200}

	for _, size := range sizes {
		tree := New(createTestValues(size))
		leaf := tree.Leaves()[0]
		proof, _ := tree.GenerateProof(leaf)
		root, _ := tree.RootDigest()

		b.Run(fmt.Sprintf("Values_%d", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = VerifyProofSHA256(leaf, proof, root)
			}
		})
	}
}
