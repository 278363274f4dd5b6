package autocomplete

import (
	"math"

	"go.uber.org/zap"

	"github.com/pavanmanishd/autocomplete/arena"
	"github.com/pavanmanishd/autocomplete/internal/logutil"
)

// Trie is a weighted prefix tree whose nodes are allocated from one arena.
type Trie struct {
	arena      *arena.Arena
	root       *Node
	maxMatches int
	nodes      int
	words      int
}

// New allocates an empty tree from a. All nodes inserted later are carved
// from the same arena, so the tree lives exactly as long as a.
func New(a *arena.Arena, opts ...Option) *Trie {
	t := &Trie{arena: a, maxMatches: DefaultMaxMatches}
	for _, opt := range opts {
		opt(t)
	}
	t.root = arena.Alloc[Node](a)
	return t
}

// Root returns the root node. The root never represents a stored string.
func (t *Trie) Root() *Node {
	return t.root
}

// MaxMatches returns the cap applied to Matches.
func (t *Trie) MaxMatches() int {
	return t.maxMatches
}

// Nodes returns the number of nodes below the root.
func (t *Trie) Nodes() int {
	return t.nodes
}

// Words returns the number of distinct strings stored.
func (t *Trie) Words() int {
	return t.words
}

// Insert stores s, creating one node per unseen transition and bumping the
// weight of every node on the path. Empty strings and strings longer than
// MaxInput are ignored. Characters outside the alphabet are skipped and do
// not produce a transition.
func (t *Trie) Insert(s string) {
	if t == nil || len(s) == 0 || len(s) > MaxInput {
		return
	}

	n := t.root
	skipped := 0
	for i := 0; i < len(s); i++ {
		index, ok := CharToIndex(s[i])
		if !ok {
			skipped++
			continue
		}

		child := n.children[index]
		if child == nil {
			child = arena.Alloc[Node](t.arena)
			child.weight = 1
			n.children[index] = child
			t.nodes++
		} else if child.weight < math.MaxUint32 {
			child.weight++
		}
		n = child
	}

	if skipped > 0 {
		logutil.Debug("skipped characters outside the completion alphabet",
			zap.Int("skipped", skipped), zap.Int("length", len(s)))
	}
	// Nothing but skipped characters: the root stays non-terminal.
	if n == t.root {
		return
	}
	if !n.terminal {
		n.terminal = true
		t.words++
	}
}

// InsertMany inserts every string in ss.
func (t *Trie) InsertMany(ss []string) {
	for _, s := range ss {
		t.Insert(s)
	}
}

// Search returns the node reached by consuming prefix. ok is false for an
// empty prefix, a character outside the alphabet, or a missing edge.
// Search never allocates.
func (t *Trie) Search(prefix string) (*Node, bool) {
	if t == nil {
		return nil, false
	}
	return search(t.root, prefix)
}

// SearchBytes is Search for a byte slice.
func (t *Trie) SearchBytes(prefix []byte) (*Node, bool) {
	if t == nil {
		return nil, false
	}
	return search(t.root, prefix)
}

func search[S ~string | ~[]byte](n *Node, prefix S) (*Node, bool) {
	if len(prefix) == 0 || len(prefix) > MaxInput {
		return nil, false
	}
	for i := 0; i < len(prefix); i++ {
		index, ok := CharToIndex(prefix[i])
		if !ok {
			return nil, false
		}
		n = n.children[index]
		if n == nil {
			return nil, false
		}
	}
	return n, true
}
