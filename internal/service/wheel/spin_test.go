package wheel

import (
	"math"
	"testing"
)

func TestLandingDelta_FromZero(t *testing.T) {
	for _, n := range []int{2, 5, 8, 50} {
		sweep := 360 / float64(n)
		for index := 0; index < n; index++ {
			for extra := minExtraRotations; extra <= maxExtraRotations; extra++ {
				want := float64(extra)*360 + (360 - float64(index)*sweep) - sweep/2
				if got := landingDelta(0, extra, index, n); math.Abs(got-want) > 1e-9 {
					t.Errorf("n=%d index=%d extra=%d: expected %v, got %v", n, index, extra, want, got)
				}
			}
		}
	}
}

func TestLandingDelta_FromRestingAngle(t *testing.T) {
	rotation := 2002.5 // Сегмент 3 из 8 под указателем
	delta := landingDelta(rotation, 5, 6, 8)

	if delta < 5*360 || delta >= 6*360 {
		t.Fatalf("delta %v outside one extra turn", delta)
	}
	if got := SegmentAt(rotation+delta, 8); got != 6 {
		t.Errorf("expected segment 6 under pointer, got %d", got)
	}
}

func TestSegmentAt(t *testing.T) {
	cases := []struct {
		rotation float64
		n        int
		want     int
	}{
		{0, 4, 0},
		{2002.5, 8, 3},
		{-10, 4, 0},
		{10, 4, 3},
		{360 - 22.5, 8, 0},
		{22.5, 8, 7},
	}
	for _, c := range cases {
		if got := SegmentAt(c.rotation, c.n); got != c.want {
			t.Errorf("rotation=%v n=%d: expected %d, got %d", c.rotation, c.n, c.want, got)
		}
	}
}
