package screendown

// ScreenDownToBallUp drives the node chain: it animates the current node and,
// each time that node settles, steps to the adjacent node. The walk bounces
// between the ends of the chain instead of wrapping.
type ScreenDownToBallUp struct {
	cfg   *Config
	chain *Chain
	curr  *Node
	dir   int

	// OnSettle, if set, is called after each settle once traversal has moved.
	OnSettle func(Event)
}

// NewScreenDownToBallUp builds a chain with one node per palette entry and
// starts at the first node walking forward.
func NewScreenDownToBallUp(cfg *Config) *ScreenDownToBallUp {
	chain := NewChain(len(cfg.Palette))
	return &ScreenDownToBallUp{
		cfg:   cfg,
		chain: chain,
		curr:  chain.Root(),
		dir:   1,
	}
}

// Chain returns the node chain.
func (sd *ScreenDownToBallUp) Chain() *Chain {
	return sd.chain
}

// Current returns the node being displayed.
func (sd *ScreenDownToBallUp) Current() *Node {
	return sd.curr
}

// Direction returns 1 while walking forward and -1 while walking back.
func (sd *ScreenDownToBallUp) Direction() int {
	return sd.dir
}

// Draw renders the current node.
func (sd *ScreenDownToBallUp) Draw(s Surface, p *Paint) {
	sd.curr.Draw(s, sd.cfg, p)
}

// Update advances the current node by one tick. When the node settles the
// composite moves to the adjacent node, reversing at either end, and then
// calls onTick with the settled scale.
func (sd *ScreenDownToBallUp) Update(onTick func(float64)) {
	sd.curr.state.Advance(sd.cfg.Gap, func(scl float64) {
		sd.curr = sd.curr.Adjacent(sd.dir, func() {
			sd.dir *= -1
		})
		if sd.OnSettle != nil {
			sd.OnSettle(Event{Type: EventSettle, Index: sd.curr.Index, Direction: sd.dir, Scale: scl})
		}
		if onTick != nil {
			onTick(scl)
		}
	})
}

// StartUpdating starts the current node if it is idle.
func (sd *ScreenDownToBallUp) StartUpdating(started func()) {
	sd.curr.state.StartAdvancing(started)
}
