package screendown

import "testing"

func TestBuildFanRect(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0.25, A: 1}
	verts, inds := buildFan(nil, nil, RectFan(0, 0, 10, 20), Vec2{X: 5, Y: 7}, c)

	if len(verts) != 4 {
		t.Fatalf("got %d vertices, want 4", len(verts))
	}
	wantInds := []uint16{0, 1, 2, 0, 2, 3}
	if len(inds) != len(wantInds) {
		t.Fatalf("got %d indices, want %d", len(inds), len(wantInds))
	}
	for i := range wantInds {
		if inds[i] != wantInds[i] {
			t.Errorf("inds = %v, want %v", inds, wantInds)
			break
		}
	}

	if verts[0].DstX != 5 || verts[0].DstY != 7 {
		t.Errorf("vertex 0 = (%v, %v), want (5, 7)", verts[0].DstX, verts[0].DstY)
	}
	if verts[2].DstX != 15 || verts[2].DstY != 27 {
		t.Errorf("vertex 2 = (%v, %v), want (15, 27)", verts[2].DstX, verts[2].DstY)
	}
	for i, v := range verts {
		if v.SrcX != 0.5 || v.SrcY != 0.5 {
			t.Errorf("vertex %d src = (%v, %v), want white pixel center", i, v.SrcX, v.SrcY)
		}
		if v.ColorR != 1 || v.ColorG != 0.5 || v.ColorB != 0.25 || v.ColorA != 1 {
			t.Errorf("vertex %d color = %v %v %v %v", i, v.ColorR, v.ColorG, v.ColorB, v.ColorA)
		}
	}
}

func TestBuildFanReusesBuffers(t *testing.T) {
	verts, inds := buildFan(nil, nil, ArcFan(0, 0, 10, 0, 360), Vec2{}, Color{A: 1})
	n := len(verts)
	verts, inds = buildFan(verts[:0], inds[:0], RectFan(0, 0, 1, 1), Vec2{}, Color{A: 1})
	if len(verts) != 4 || len(inds) != 6 {
		t.Errorf("got %d vertices and %d indices, want 4 and 6", len(verts), len(inds))
	}
	if cap(verts) < n {
		t.Errorf("buffer shrank: cap %d < %d", cap(verts), n)
	}
}
