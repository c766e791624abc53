package screendown

import (
	"reflect"
	"testing"
)

// settleOnce starts the current node and ticks until it settles.
func settleOnce(t *testing.T, sd *ScreenDownToBallUp) {
	t.Helper()
	sd.StartUpdating(nil)
	settled := false
	for i := 0; i < 1000 && !settled; i++ {
		sd.Update(func(float64) { settled = true })
	}
	if !settled {
		t.Fatal("node did not settle")
	}
}

func TestCompositeBounces(t *testing.T) {
	sd := NewScreenDownToBallUp(DefaultConfig())

	visited := []int{sd.Current().Index}
	for i := 0; i < 11; i++ {
		settleOnce(t, sd)
		idx := sd.Current().Index
		if idx < 0 || idx >= sd.Chain().Len() {
			t.Fatalf("index %d out of range", idx)
		}
		if visited[len(visited)-1] != idx {
			visited = append(visited, idx)
		}
	}

	want := []int{0, 1, 2, 3, 4, 3, 2, 1, 0, 1}
	if !reflect.DeepEqual(visited, want) {
		t.Errorf("visited %v, want %v", visited, want)
	}
}

func TestCompositeStaysInPlaceAtBoundary(t *testing.T) {
	sd := NewScreenDownToBallUp(DefaultConfig())
	for i := 0; i < 4; i++ {
		settleOnce(t, sd)
	}
	if sd.Current().Index != 4 || sd.Direction() != 1 {
		t.Fatalf("at %d dir %d, want 4 dir 1", sd.Current().Index, sd.Direction())
	}

	// Node 4 plays forward, hits the end, and the walk reverses in place.
	settleOnce(t, sd)
	if sd.Current().Index != 4 || sd.Direction() != -1 {
		t.Fatalf("at %d dir %d, want 4 dir -1", sd.Current().Index, sd.Direction())
	}

	// Node 4 now plays backward from 1 and the walk continues to 3.
	if sd.Current().State().PrevScale() != 1 {
		t.Fatalf("node 4 prevScale = %v, want 1", sd.Current().State().PrevScale())
	}
	settleOnce(t, sd)
	if sd.Current().Index != 3 {
		t.Fatalf("at %d, want 3", sd.Current().Index)
	}
}

func TestCompositeOnSettle(t *testing.T) {
	sd := NewScreenDownToBallUp(DefaultConfig())
	var got []Event
	sd.OnSettle = func(e Event) { got = append(got, e) }

	settleOnce(t, sd)

	if len(got) != 1 {
		t.Fatalf("got %d settle events, want 1", len(got))
	}
	want := Event{Type: EventSettle, Index: 1, Direction: 1, Scale: 1}
	if got[0] != want {
		t.Errorf("event = %+v, want %+v", got[0], want)
	}
}

func TestCompositeUpdateWhileIdle(t *testing.T) {
	sd := NewScreenDownToBallUp(DefaultConfig())
	for i := 0; i < 300; i++ {
		sd.Update(func(float64) { t.Fatal("idle composite settled") })
	}
	if sd.Current().Index != 0 {
		t.Errorf("current = %d, want 0", sd.Current().Index)
	}
}
