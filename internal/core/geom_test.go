package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", NewBox(0, 0, 10, 10), NewBox(5, 5, 10, 10), true},
		{"touching edges", NewBox(0, 0, 10, 10), NewBox(10, 0, 10, 10), false},
		{"separate vertically", NewBox(0, 0, 10, 10), NewBox(0, 20, 10, 10), false},
		{"fractional overlap", NewBox(0, 0, 10.5, 10), NewBox(10.25, 0, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxShrink(t *testing.T) {
	b := NewBox(0, 0, 100, 50).Shrink(0.1)
	if b.X != 10 || b.Y != 5 || b.W != 80 || b.H != 40 {
		t.Errorf("Shrink(0.1) = %+v, expected {10 5 80 40}", b)
	}

	same := NewBox(1, 2, 3, 4).Shrink(0)
	if same != NewBox(1, 2, 3, 4) {
		t.Errorf("Shrink(0) should be a no-op, got %+v", same)
	}

	// Over-shrinking collapses to zero size rather than going negative
	tiny := NewBox(0, 0, 10, 10).Shrink(0.75)
	if tiny.W != 0 || tiny.H != 0 {
		t.Errorf("Shrink(0.75) should collapse, got %+v", tiny)
	}
}

func TestBoxCircleIntersects(t *testing.T) {
	b := NewBox(10, 10, 20, 20)

	tests := []struct {
		name      string
		cx, cy, r float64
		expected  bool
	}{
		{"center inside", 15, 15, 1, true},
		{"touching left edge", 5, 20, 5, true},
		{"just outside left", 4.9, 20, 5, false},
		{"near corner outside", 5, 5, 5, false},
		{"near corner inside", 7, 7, 5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.CircleIntersects(tc.cx, tc.cy, tc.r); got != tc.expected {
				t.Errorf("CircleIntersects(%v, %v, %v) = %v, expected %v", tc.cx, tc.cy, tc.r, got, tc.expected)
			}
		})
	}
}

func TestBoxCells(t *testing.T) {
	r := NewBox(12, 30, 20, 10).Cells(8, 16)
	// x: 12/8=1.5 -> 1, right 32/8=4 -> 4; y: 30/16=1.875 -> 1, bottom 40/16=2.5 -> 3
	if r != NewRect(1, 1, 3, 2) {
		t.Errorf("Cells() = %+v, expected {1 1 3 2}", r)
	}

	// Degenerate boxes still occupy one cell
	dot := NewBox(0, 0, 0, 0).Cells(8, 16)
	if dot.W != 1 || dot.H != 1 {
		t.Errorf("Cells() of empty box should be 1x1, got %+v", dot)
	}
}

func TestSpansOverlap(t *testing.T) {
	if !SpansOverlap(0, 10, 9, 5) {
		t.Error("[0,10) and [9,14) should overlap")
	}
	if SpansOverlap(0, 10, 10, 5) {
		t.Error("[0,10) and [10,15) should not overlap")
	}
}
