package screendown

// Chain is a fixed, linear sequence of nodes, one per palette entry. Nodes
// link to their neighbours by index; the first node has no previous and the
// last has no next.
type Chain struct {
	nodes []Node
}

// Node is one palette entry in a Chain together with its animation state.
type Node struct {
	// Index is the node's position in the chain and its palette color index.
	Index int

	chain *Chain
	state State
}

// NewChain builds a chain of n nodes with indexes 0..n-1.
func NewChain(n int) *Chain {
	c := &Chain{nodes: make([]Node, n)}
	for i := range c.nodes {
		c.nodes[i] = Node{Index: i, chain: c}
	}
	return c
}

// Len returns the number of nodes.
func (c *Chain) Len() int {
	return len(c.nodes)
}

// Node returns the node at index i, or nil when i is out of range.
func (c *Chain) Node(i int) *Node {
	if i < 0 || i >= len(c.nodes) {
		return nil
	}
	return &c.nodes[i]
}

// Root returns the first node.
func (c *Chain) Root() *Node {
	return c.Node(0)
}

// State returns the node's animation state.
func (n *Node) State() *State {
	return &n.state
}

// Next returns the following node, or nil for the last node.
func (n *Node) Next() *Node {
	return n.chain.Node(n.Index + 1)
}

// Prev returns the preceding node, or nil for the first node.
func (n *Node) Prev() *Node {
	return n.chain.Node(n.Index - 1)
}

// Adjacent returns the neighbour in dir (1 for next, anything else for
// previous). At either end of the chain it calls onBoundary and returns n
// itself, so traversal stays in place for one settle and the caller can
// reverse.
func (n *Node) Adjacent(dir int, onBoundary func()) *Node {
	var cur *Node
	if dir == 1 {
		cur = n.Next()
	} else {
		cur = n.Prev()
	}
	if cur != nil {
		return cur
	}
	if onBoundary != nil {
		onBoundary()
	}
	return n
}

// Draw renders the node's shape at its current scale.
func (n *Node) Draw(s Surface, cfg *Config, p *Paint) {
	DrawShape(s, cfg, n.state.scale, n.Index, p)
}
