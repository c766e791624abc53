package screendown

import "testing"

func TestNewChainLinks(t *testing.T) {
	c := NewChain(5)
	if c.Len() != 5 {
		t.Fatalf("Len = %d, want 5", c.Len())
	}
	for i := 0; i < 5; i++ {
		n := c.Node(i)
		if n.Index != i {
			t.Errorf("node %d has Index %d", i, n.Index)
		}
		if i < 4 && n.Next().Index != i+1 {
			t.Errorf("node %d Next = %d", i, n.Next().Index)
		}
		if i > 0 && n.Prev().Index != i-1 {
			t.Errorf("node %d Prev = %d", i, n.Prev().Index)
		}
	}
	if c.Root().Prev() != nil {
		t.Error("root should have no previous node")
	}
	if c.Node(4).Next() != nil {
		t.Error("last node should have no next node")
	}
	if c.Node(-1) != nil || c.Node(5) != nil {
		t.Error("out of range lookups should return nil")
	}
}

func TestNodeAdjacent(t *testing.T) {
	c := NewChain(5)

	tests := []struct {
		name     string
		from     int
		dir      int
		want     int
		boundary bool
	}{
		{"forward", 1, 1, 2, false},
		{"backward", 3, -1, 2, false},
		{"forward at end", 4, 1, 4, true},
		{"backward at start", 0, -1, 0, true},
		{"zero direction walks back", 2, 0, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := false
			got := c.Node(tt.from).Adjacent(tt.dir, func() { hit = true })
			if got.Index != tt.want {
				t.Errorf("Adjacent = %d, want %d", got.Index, tt.want)
			}
			if hit != tt.boundary {
				t.Errorf("boundary called = %v, want %v", hit, tt.boundary)
			}
		})
	}
}

func TestNodeStatesAreIndependent(t *testing.T) {
	c := NewChain(3)
	c.Node(1).State().StartAdvancing(nil)
	if !c.Node(0).State().Idle() || !c.Node(2).State().Idle() {
		t.Error("starting one node changed another")
	}
	if c.Node(1).State().Idle() {
		t.Error("node 1 should be advancing")
	}
}
