package autocomplete

// Option configures a Trie.
type Option func(*Trie)

// WithMaxMatches caps the number of matches a query returns.
// Values <= 0 keep DefaultMaxMatches.
func WithMaxMatches(n int) Option {
	return func(t *Trie) {
		if n > 0 {
			t.maxMatches = n
		}
	}
}
