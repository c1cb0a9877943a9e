package merkle

import (
	"go.uber.org/zap"

	"github.com/Layr-Labs/merkletree-go/pkg/hasher"
)

// GenerateProof returns the inclusion proof for the first leaf, in left-to-right order,
// whose digest equals target. It returns false if the tree is empty or no leaf matches.
//
// Matching is by digest only: when several leaves share a digest,
// the proof always points at the leftmost one.
func (t *Tree) GenerateProof(target hasher.Digest) (Proof, bool) {
	if t.root == nil {
		return nil, false
	}

	proof := Proof{}
	if !findPath(t.root, target, &proof) {
		t.logger.Debug("No leaf matches proof target", zap.Stringer("target", target))
		return nil, false
	}

	t.logger.Debug("Generated merkle proof",
		zap.Stringer("target", target),
		zap.Int("length", len(proof)),
	)
	return proof, true
}

// findPath searches depth first, left subtree before right.
// Siblings are appended while unwinding, so the leaf's sibling comes first.
func findPath(n *Node, target hasher.Digest, proof *Proof) bool {
	if n.IsLeaf() {
		return n.Digest == target
	}

	if findPath(n.Left, target, proof) {
		*proof = append(*proof, ProofStep{Sibling: n.Right.Digest, Direction: Right})
		return true
	}
	if findPath(n.Right, target, proof) {
		*proof = append(*proof, ProofStep{Sibling: n.Left.Digest, Direction: Left})
		return true
	}
	return false
}

// Verify checks proof for leaf against the tree's current root.
// It always fails on an empty tree.
func (t *Tree) Verify(leaf hasher.Digest, proof Proof) bool {
	root, ok := t.RootDigest()
	if !ok {
		return false
	}
	return VerifyProof(t.hasher, leaf, proof, root)
}

// VerifyProof recomputes a root from leaf and proof and compares it with root.
// It needs no tree and is safe for concurrent use.
func VerifyProof(h hasher.Hasher, leaf hasher.Digest, proof Proof, root hasher.Digest) bool {
	current := leaf
	for _, step := range proof {
		switch step.Direction {
		case Left:
			current = hasher.Combine(h, step.Sibling, current)
		case Right:
			current = hasher.Combine(h, current, step.Sibling)
		default:
			return false
		}
	}
	return current == root
}

// VerifyProofSHA256 is VerifyProof with the default SHA-256 hasher.
func VerifyProofSHA256(leaf hasher.Digest, proof Proof, root hasher.Digest) bool {
	return VerifyProof(hasher.SHA256{}, leaf, proof, root)
}
