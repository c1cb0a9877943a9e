package merkle

import (
	"github.com/Layr-Labs/merkletree-go/pkg/hasher"
)

// Node is one node of a binary merkle tree.
// A node with no children is a leaf; otherwise it has exactly two children,
// each exclusively owned by this node.
type Node struct {
	Digest hasher.Digest
	Left   *Node
	Right  *Node
}

func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// clone returns a deep copy of the subtree rooted at n.
func (n *Node) clone() *Node {
	if n == nil {
		return nil
	}
	return &Node{
		Digest: n.Digest,
		Left:   n.Left.clone(),
		Right:  n.Right.clone(),
	}
}

// Direction records which side of a hash combination a sibling digest belongs on.
type Direction uint8

const (
	// Left means the sibling is hashed before the running digest: H(sibling || current)
	Left Direction = iota
	// Right means the sibling is hashed after the running digest: H(current || sibling)
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ProofStep is a single sibling on the path from a leaf to the root.
type ProofStep struct {
	Sibling   hasher.Digest
	Direction Direction
}

// Proof is an inclusion proof.
// proof[0] is the sibling of the leaf, proof[len-1] is the sibling of the root's child.
// A single-leaf tree has an empty proof.
type Proof []ProofStep

func (p Proof) Clone() Proof {
	if p == nil {
		return nil
	}
	c := make(Proof, len(p))
	copy(c, p)
	return c
}
