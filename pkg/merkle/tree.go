package merkle

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Layr-Labs/merkletree-go/pkg/config"
	"github.com/Layr-Labs/merkletree-go/pkg/hasher"
	"github.com/Layr-Labs/merkletree-go/pkg/logger"
)

// Tree is a binary merkle tree over an ordered list of values.
//
// The zero value is not usable; create trees with New, NewFromStrings or NewFromConfig.
// Read methods may be called concurrently with each other, but Append replaces
// the root and extends the leaves as one step: callers must hold exclusive access
// to the tree for the duration of any Append.
type Tree struct {
	hasher hasher.Hasher
	logger *zap.Logger

	// root is nil iff leaves is empty
	root *Node

	// leaves holds the leaf digests in insertion order
	leaves []hasher.Digest
}

// New builds a tree over values, in order. An empty values slice yields an empty tree.
func New(values [][]byte, opts ...Option) *Tree {
	t := &Tree{
		hasher: hasher.SHA256{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}

	leafNodes := BuildLeaves(t.hasher, values)
	if len(leafNodes) == 0 {
		t.logger.Debug("Built empty merkle tree")
		return t
	}

	t.leaves = make([]hasher.Digest, len(leafNodes))
	for i, leaf := range leafNodes {
		t.leaves[i] = leaf.Digest
	}
	t.root = BuildTree(t.hasher, leafNodes)

	t.logger.Debug("Built merkle tree",
		zap.Int("leaves", len(t.leaves)),
		zap.Int("depth", t.Depth()),
		zap.Stringer("root", t.root.Digest),
	)
	return t
}

// NewFromStrings builds a tree over the bytes of each string.
func NewFromStrings(values []string, opts ...Option) *Tree {
	raw := make([][]byte, len(values))
	for i, v := range values {
		raw[i] = []byte(v)
	}
	return New(raw, opts...)
}

// NewFromConfig validates cfg, then builds a tree using its hash function and logging settings.
func NewFromConfig(cfg *config.TreeConfig, values [][]byte) (*Tree, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid tree config")
	}
	h, err := cfg.Hasher()
	if err != nil {
		return nil, err
	}
	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Debug})
	if err != nil {
		return nil, err
	}
	return New(values, WithHasher(h), WithLogger(l)), nil
}

// BuildLeaves hashes each value into a leaf node, preserving order.
func BuildLeaves(h hasher.Hasher, values [][]byte) []*Node {
	leaves := make([]*Node, len(values))
	for i, v := range values {
		leaves[i] = &Node{Digest: h.Hash(v)}
	}
	return leaves
}

// BuildTree reduces a level of nodes to a single root, pairing nodes left to right.
// When a level has an odd number of nodes, the last node is paired with a copy of itself.
// The nodes in level become owned by the returned tree.
//
// A single-node level is returned unchanged. BuildTree panics on an empty level.
func BuildTree(h hasher.Hasher, level []*Node) *Node {
	if len(level) == 0 {
		panic(fmt.Errorf("BUG: cannot build merkle tree from an empty level"))
	}

	for len(level) > 1 {
		next := make([]*Node, 0, (len(level)+1)/2)

		for i := 0; i < len(level); i += 2 {
			left := level[i]

			var right *Node
			if i+1 < len(level) {
				right = level[i+1]
			} else {
				right = left.clone()
			}

			next = append(next, &Node{
				Digest: hasher.Combine(h, left.Digest, right.Digest),
				Left:   left,
				Right:  right,
			})
		}

		level = next
	}

	return level[0]
}

// RootDigest returns the root digest, or false for an empty tree.
func (t *Tree) RootDigest() (hasher.Digest, bool) {
	if t.root == nil {
		return hasher.Digest{}, false
	}
	return t.root.Digest, true
}

// Append adds value as the last leaf and rebuilds the whole tree.
// Each call costs work proportional to the number of leaves.
func (t *Tree) Append(value []byte) {
	t.leaves = append(t.leaves, t.hasher.Hash(value))

	leafNodes := make([]*Node, len(t.leaves))
	for i, d := range t.leaves {
		leafNodes[i] = &Node{Digest: d}
	}
	t.root = BuildTree(t.hasher, leafNodes)

	t.logger.Debug("Appended leaf to merkle tree",
		zap.Int("leaves", len(t.leaves)),
		zap.Stringer("root", t.root.Digest),
	)
}

// Len returns the number of leaves.
func (t *Tree) Len() int {
	return len(t.leaves)
}

// Leaves returns a copy of the leaf digests in insertion order.
func (t *Tree) Leaves() []hasher.Digest {
	out := make([]hasher.Digest, len(t.leaves))
	copy(out, t.leaves)
	return out
}

// Depth returns the number of edges from the root to any leaf.
// Every leaf sits at the same depth because odd levels are padded by duplication.
func (t *Tree) Depth() int {
	depth := 0
	for n := t.root; n != nil && !n.IsLeaf(); n = n.Left {
		depth++
	}
	return depth
}

// Root returns the root node, or nil for an empty tree.
// The returned node is owned by the tree and must not be modified.
func (t *Tree) Root() *Node {
	return t.root
}

func (t *Tree) Hasher() hasher.Hasher {
	return t.hasher
}
