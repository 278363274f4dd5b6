// Package autocomplete implements an in-memory completion engine: a 96-ary
// prefix tree over printable ASCII whose nodes are carved from an arena.
//
// # Overview
//
// Every inserted string bumps a weight on each node it passes through, so a
// node's weight counts how many insertions share its prefix. A query walks
// the tree to the node for the typed prefix and enumerates the terminal nodes
// below it depth-first in ascending character order, stopping after a fixed
// number of matches. The best completion is the match with the greatest
// weight, the first one found winning ties.
//
// # Basic Usage
//
//	tree := arena.NewArena(32 << 20)
//	scratch := arena.NewArena(0)
//
//	t := autocomplete.New(tree)
//	t.InsertMany([]string{"git status", "git stash", "go test ./..."})
//
//	for _, m := range t.Matches("git st", scratch) {
//		fmt.Println(m.Weight, m.Value)
//	}
//	best, ok := t.BestMatch("g", scratch)
//	scratch.Reset() // matches and best are invalid from here on
//
// Completer bundles both arenas and returns heap copies, for callers that do
// not want to manage scratch lifetimes themselves.
//
// # Ownership
//
// Nodes live exactly as long as the tree arena. Match values are allocated
// from the scratch arena passed to the query and become invalid when that
// arena is reset or released. Neither a Trie nor a Completer is safe for
// concurrent use.
package autocomplete
