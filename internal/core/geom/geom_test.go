package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"disjoint", Rect{X: 20, Y: 20, W: 1, H: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestRectOverlapsX(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 40, H: 60}
	assert.True(t, a.OverlapsX(Rect{X: 39, Y: 500, W: 40, H: 60}))
	assert.False(t, a.OverlapsX(Rect{X: 40, Y: 0, W: 40, H: 60}))
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 40, H: 60}
	assert.Equal(t, 50.0, r.Right())
	assert.Equal(t, 80.0, r.Bottom())
	assert.Equal(t, Point{X: 30, Y: 50}, r.Center())
	assert.Equal(t, Rect{X: 15, Y: 15, W: 40, H: 60}, r.Translate(5, -5))
}

func TestDistanceAndSign(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(Point{0, 0}, Point{3, 4}), 1e-9)
	assert.Equal(t, 1, Sign(0.2))
	assert.Equal(t, -1, Sign(-3))
	assert.Equal(t, 0, Sign(0))
}
