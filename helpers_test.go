package bernstein

import "testing"

func TestCrossProduct(t *testing.T) {
	got := CrossProduct([]float64{1, 0}, []float64{0, 1})
	if got != 1 {
		t.Errorf("got %v, want 1", got)
	}
	got = CrossProduct([]float64{2, 3}, []float64{4, 5})
	if want := 2.0*5 - 3.0*4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestBBox2D(t *testing.T) {
	nodes := Nodes{{0, 0}, {1, 2}, {-1, 3}}
	xmin, xmax, ymin, ymax := BBox2D(nodes)
	if xmin != -1 || xmax != 1 || ymin != 0 || ymax != 3 {
		t.Errorf("got (%v,%v,%v,%v)", xmin, xmax, ymin, ymax)
	}
}

func TestWiggleInterval(t *testing.T) {
	tests := []struct {
		x      float64
		wantY  float64
		wantOK bool
	}{
		{0.5, 0.5, true},
		{0, 0, true},
		{1, 1, true},
		{-1e-20, 0, true},
		{1 + 1e-20, 1, true},
		{-0.5, 0, false},
		{1.5, 0, false},
	}
	for _, tt := range tests {
		y, ok := WiggleInterval(tt.x)
		if ok != tt.wantOK {
			t.Errorf("WiggleInterval(%v) ok = %v, want %v", tt.x, ok, tt.wantOK)
			continue
		}
		if ok && y != tt.wantY {
			t.Errorf("WiggleInterval(%v) = %v, want %v", tt.x, y, tt.wantY)
		}
	}
}

func TestContainsND(t *testing.T) {
	nodes := Nodes{{0, 0}, {1, 1}}
	if !ContainsND(nodes, []float64{0.5, 0.5}) {
		t.Error("want point inside bbox to be contained")
	}
	if ContainsND(nodes, []float64{2, 0.5}) {
		t.Error("want point outside bbox to not be contained")
	}
}
