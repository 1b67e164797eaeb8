package geometry

import "testing"

func Test_NewRect_normalizes_reversed_corners(t *testing.T) {
	r, ok := NewRect(10, 10, 0, 0)
	if !ok {
		t.Fatal("expected a valid rect")
	}
	if r.Left != 0 || r.Top != 0 || r.Right() != 10 || r.Bottom() != 10 {
		t.Errorf("got %+v", r)
	}
}

func Test_NewRect_rejects_degenerate_box(t *testing.T) {
	if _, ok := NewRect(5, 5, 5, 9); ok {
		t.Error("zero width rect should be rejected")
	}
	if _, ok := NewRect(5, 5, 9, 5); ok {
		t.Error("zero height rect should be rejected")
	}
}

func Test_anchor_center_top(t *testing.T) {
	size, _ := NewSize(10, 4)
	r := At(size, TopCenter, Point{100, 50})
	if r.Left != 95 || r.Top != 50 {
		t.Errorf("got %+v", r)
	}
}

func Test_anchor_bottom_right(t *testing.T) {
	size, _ := NewSize(10, 4)
	r := At(size, BottomRight, Point{100, 50})
	if r.Left != 90 || r.Top != 46 {
		t.Errorf("got %+v", r)
	}
}

func Test_Rect_At_is_inverse_of_package_At(t *testing.T) {
	size, _ := NewSize(20, 6)
	p := Point{200, 80}
	r := At(size, Center, p)
	if got := r.At(Center); got != p {
		t.Errorf("round trip failed: got %+v want %+v", got, p)
	}
}

func Test_Intersect_disjoint_rects(t *testing.T) {
	a, _ := NewRect(0, 0, 10, 10)
	b, _ := NewRect(20, 20, 30, 30)
	if _, ok := a.Intersect(b); ok {
		t.Error("disjoint rects should not intersect")
	}
}

func Test_Intersect_overlap(t *testing.T) {
	a, _ := NewRect(0, 0, 10, 10)
	b, _ := NewRect(5, 5, 15, 15)
	got, ok := a.Intersect(b)
	if !ok {
		t.Fatal("expected an overlap")
	}
	if got.Left != 5 || got.Top != 5 || got.Right() != 10 || got.Bottom() != 10 {
		t.Errorf("got %+v", got)
	}
}

func Test_Side_Mul(t *testing.T) {
	if Right.Mul(7) != 7 {
		t.Error("Right*7 should be 7")
	}
	if Left.Mul(7) != -7 {
		t.Error("Left*7 should be -7")
	}
}

func Test_Side_Opposite(t *testing.T) {
	if Left.Opposite() != Right || Right.Opposite() != Left {
		t.Error("opposite should flip")
	}
}

func Test_saturating_add_does_not_overflow(t *testing.T) {
	p := Point{X: 32760}
	got := p.Add(Displacement{X: 100})
	if got.X != 32767 {
		t.Errorf("expected clamp to int16 max, got %d", got.X)
	}
}

func Test_Shift(t *testing.T) {
	r, _ := NewRect(0, 0, 10, 10)
	shifted := r.Shift(Displacement{5, -3})
	if shifted.Left != 5 || shifted.Top != -3 {
		t.Errorf("got %+v", shifted)
	}
}
