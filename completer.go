package autocomplete

import (
	"bufio"
	"io"
	"strings"
	"unsafe"

	"github.com/pingcap/errors"
	"go.uber.org/zap"

	"github.com/pavanmanishd/autocomplete/arena"
	"github.com/pavanmanishd/autocomplete/internal/logutil"
)

// Completer owns a tree, the arena backing it and a scratch arena reused by
// every query. Results are copied to the heap and the scratch arena is reset
// before each call returns, so callers never hold arena memory.
type Completer struct {
	tree    *arena.Arena
	scratch *arena.Arena
	trie    *Trie
}

// Stats describes the memory held by a Completer.
type Stats struct {
	Nodes   int
	Words   int
	Tree    arena.ArenaMetrics
	Scratch arena.ArenaMetrics
}

// NewCompleter reserves a tree arena of treeSize bytes and a scratch arena of
// scratchSize bytes. Sizes <= 0 fall back to arena.DefaultCapacity.
func NewCompleter(treeSize, scratchSize int, opts ...Option) *Completer {
	tree := arena.NewArena(treeSize)
	return &Completer{
		tree:    tree,
		scratch: arena.NewArena(scratchSize),
		trie:    New(tree, opts...),
	}
}

// Trie returns the underlying tree.
func (c *Completer) Trie() *Trie {
	return c.trie
}

// Add inserts s.
func (c *Completer) Add(s string) {
	c.trie.Insert(s)
}

// AddMany inserts every string in ss.
func (c *Completer) AddMany(ss []string) {
	c.trie.InsertMany(ss)
}

// Load inserts one entry per line of r and returns how many lines were
// inserted. Blank lines and lines longer than MaxInput are ignored. Loading
// stops with an error whose cause is arena.ErrExhausted when the tree arena
// cannot be guaranteed to hold the next entry. The bound is conservative: it
// reserves one node per character, so an entry sharing a long prefix with the
// vocabulary may be refused although it would have fit.
func (c *Completer) Load(r io.Reader) (int, error) {
	var (
		nodeSize  = int(unsafe.Sizeof(Node{}))
		nodeAlign = int(unsafe.Alignof(Node{}))
		loaded    int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(line) > MaxInput {
			logutil.Debug("vocabulary entry too long", zap.Int("length", len(line)))
			continue
		}
		// Worst case every character opens a new node.
		if !c.tree.Fits(len(line), nodeSize, nodeAlign) {
			logutil.Warn("tree arena full, vocabulary truncated",
				zap.Int("loaded", loaded),
				zap.Int("capacity", c.tree.Capacity()))
			return loaded, errors.Annotatef(arena.ErrExhausted, "tree arena full after %d entries", loaded)
		}
		c.trie.Insert(line)
		loaded++
	}
	if err := scanner.Err(); err != nil {
		return loaded, errors.Trace(err)
	}

	logutil.Info("vocabulary loaded",
		zap.Int("entries", loaded),
		zap.Int("words", c.trie.Words()),
		zap.Int("nodes", c.trie.Nodes()),
		zap.Float64("tree-utilization", c.tree.Utilization()))
	return loaded, nil
}

// Complete returns the completions of prefix, in traversal order.
func (c *Completer) Complete(prefix string) []Match {
	defer c.scratch.Reset()

	matches := c.trie.Matches(prefix, c.scratch)
	if len(matches) == 0 {
		return nil
	}
	out := make([]Match, len(matches))
	for i, m := range matches {
		m.Value = strings.Clone(m.Value)
		out[i] = m
	}
	return out
}

// Best returns the highest weighted completion of prefix.
func (c *Completer) Best(prefix string) (string, bool) {
	defer c.scratch.Reset()

	best, ok := c.trie.BestMatch(prefix, c.scratch)
	if !ok {
		return "", false
	}
	return strings.Clone(best), true
}

// Stats returns a snapshot of the tree size and arena usage.
func (c *Completer) Stats() Stats {
	return Stats{
		Nodes:   c.trie.Nodes(),
		Words:   c.trie.Words(),
		Tree:    c.tree.Metrics(),
		Scratch: c.scratch.Metrics(),
	}
}

// Release drops both arenas. The Completer must not be used afterwards.
func (c *Completer) Release() {
	c.scratch.Release()
	c.tree.Release()
}
