package autocomplete

// Node is a prefix tree node. Nodes are allocated from the tree's arena and
// are never freed individually.
type Node struct {
	terminal bool
	weight   uint32
	children [Letters]*Node
}

// Terminal reports whether an inserted string ends at this node.
func (n *Node) Terminal() bool {
	return n.terminal
}

// Weight returns the number of insertions that passed through this node.
func (n *Node) Weight() uint32 {
	return n.weight
}

// Child returns the node reached from n by c, or nil.
func (n *Node) Child(c byte) *Node {
	index, ok := CharToIndex(c)
	if !ok {
		return nil
	}
	return n.children[index]
}

func (n *Node) hasChildren() bool {
	for _, child := range n.children {
		if child != nil {
			return true
		}
	}
	return false
}
