package autocomplete

import (
	"strconv"
	"unsafe"

	"github.com/pavanmanishd/autocomplete/arena"
)

// Match is one completion candidate. Value is backed by the scratch arena of
// the query that produced it.
type Match struct {
	Weight uint32
	// Value is the query prefix followed by the completed suffix.
	Value     string
	prefixLen int
}

// Suffix returns the part of Value after the query prefix.
func (m Match) Suffix() string {
	return m.Value[m.prefixLen:]
}

func (m Match) String() string {
	return m.Value + " (" + strconv.FormatUint(uint64(m.Weight), 10) + ")"
}

// Matches returns up to MaxMatches completions of prefix in depth-first,
// ascending character order. The result is empty when prefix is not stored.
// Matches and their values are allocated from scratch.
func (t *Trie) Matches(prefix string, scratch *arena.Arena) []Match {
	n, ok := t.Search(prefix)
	if !ok {
		return nil
	}
	return enumerate(n, prefix, scratch, t.maxMatches)
}

// BestMatch returns the completion of prefix with the greatest weight; the
// first one in traversal order wins a tie. The returned string is backed by
// scratch.
func (t *Trie) BestMatch(prefix string, scratch *arena.Arena) (string, bool) {
	m, ok := BestOf(t.Matches(prefix, scratch))
	if !ok {
		return "", false
	}
	return m.Value, true
}

// BestOf returns the match with the strictly greatest weight, keeping the
// earliest one on ties.
func BestOf(matches []Match) (Match, bool) {
	if len(matches) == 0 {
		return Match{}, false
	}
	best := matches[0]
	for _, m := range matches[1:] {
		if m.Weight > best.Weight {
			best = m
		}
	}
	return best, true
}

// Enumerate lists up to max terminal nodes below n, not counting n itself.
// Values hold only the path below n. The slice and the values are allocated
// from scratch.
func Enumerate(n *Node, scratch *arena.Arena, max int) []Match {
	if n == nil {
		return nil
	}
	return enumerate(n, "", scratch, max)
}

func enumerate(n *Node, prefix string, scratch *arena.Arena, max int) []Match {
	if max <= 0 || !n.hasChildren() {
		return nil
	}
	w := newWalker(scratch, prefix, max)
	w.walk(n)
	return w.matches[:w.count]
}

// frame is one level of the depth-first walk.
type frame struct {
	node *Node
	next int // next child slot to visit
}

const initialFrames = 16

// walker holds the state of one enumeration. path is shared by every level:
// it grows by one character on descent and shrinks by one on return.
type walker struct {
	scratch *arena.Arena
	path    []byte
	frames  []frame
	depth   int
	matches []Match
	count   int
	prefix  int
}

func newWalker(scratch *arena.Arena, prefix string, max int) *walker {
	w := &walker{
		scratch: scratch,
		matches: arena.AllocSlice[Match](scratch, max),
		frames:  arena.AllocSlice[frame](scratch, initialFrames),
		prefix:  len(prefix),
	}
	// Every stored string fits in MaxInput, and so does every path to it.
	w.path = arena.AllocSlice[byte](scratch, MaxInput)[:0]
	w.path = append(w.path, prefix...)
	return w
}

func (w *walker) walk(root *Node) {
	w.push(root)
	for w.depth > 0 {
		f := &w.frames[w.depth-1]
		index, child := f.advance()
		if child == nil {
			w.pop()
			continue
		}

		w.path = append(w.path, IndexToChar(index))
		if child.terminal {
			w.record(child.weight)
			if w.count == len(w.matches) {
				return
			}
		}
		w.push(child)
	}
}

// advance returns the next populated child slot of f and moves past it.
func (f *frame) advance() (int, *Node) {
	for f.next < Letters {
		i := f.next
		f.next++
		if child := f.node.children[i]; child != nil {
			return i, child
		}
	}
	return 0, nil
}

func (w *walker) push(n *Node) {
	if w.depth == len(w.frames) {
		w.frames = arena.ReallocSlice(w.scratch, 2*len(w.frames), w.frames)
	}
	w.frames[w.depth] = frame{node: n}
	w.depth++
}

// pop leaves the current level. Leaving a child also drops its character
// from the path; the outermost frame has none.
func (w *walker) pop() {
	w.depth--
	if w.depth > 0 {
		w.path = w.path[:len(w.path)-1]
	}
}

func (w *walker) record(weight uint32) {
	w.matches[w.count] = Match{
		Weight:    weight,
		Value:     arena.AllocString(w.scratch, w.path),
		prefixLen: w.prefix,
	}
	w.count++
}

// ScratchSize returns the scratch capacity a single query needs in the worst
// case when at most maxMatches matches are returned.
func ScratchSize(maxMatches int) int {
	const align = 8
	frames := 0
	for n := initialFrames; ; n *= 2 {
		frames += n
		if n > MaxInput {
			break
		}
	}
	size := maxMatches*int(unsafe.Sizeof(Match{})) + align
	size += frames*int(unsafe.Sizeof(frame{})) + 8*align
	size += MaxInput + maxMatches*MaxInput
	return size
}
