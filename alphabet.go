package autocomplete

const (
	// Letters is the number of child slots per node, one per character in
	// the printable ASCII range starting at ' '.
	Letters = 96

	// MaxInput is the longest string, in bytes, that can be inserted or
	// searched for.
	MaxInput = 255

	// DefaultMaxMatches caps the matches returned by a single query.
	DefaultMaxMatches = 32

	firstChar = ' '
)

// CharToIndex maps c to its child slot. ok is false for characters outside
// the supported alphabet.
func CharToIndex(c byte) (index int, ok bool) {
	index = int(c) - firstChar
	return index, index >= 0 && index < Letters
}

// IndexToChar is the inverse of CharToIndex.
func IndexToChar(index int) byte {
	return byte(index + firstChar)
}
