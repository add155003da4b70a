package geometry_test

import (
	"testing"

	"github.com/aretw0/drills/pkg/domain"
	"github.com/aretw0/drills/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seg(x1, y1, x2, y2 float64) geometry.Segment {
	return geometry.Segment{A: geometry.Point{X: x1, Y: y1}, B: geometry.Point{X: x2, Y: y2}}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name   string
		l1, l2 geometry.Segment
		ok     bool
		at     geometry.Point
	}{
		{name: "Cross", l1: seg(0, 0, 10, 10), l2: seg(0, 10, 10, 0), ok: true, at: geometry.Point{X: 5, Y: 5}},
		{name: "Parallel", l1: seg(0, 0, 10, 0), l2: seg(0, 1, 10, 1), ok: false},
		{name: "Coincident", l1: seg(0, 0, 10, 0), l2: seg(2, 0, 8, 0), ok: false},
		{name: "Lines Cross Outside Segment", l1: seg(0, 0, 1, 1), l2: seg(0, 10, 10, 0), ok: false},
		{name: "Touching Endpoint", l1: seg(0, 0, 5, 5), l2: seg(5, 5, 10, 0), ok: true, at: geometry.Point{X: 5, Y: 5}},
		{name: "Vertical And Horizontal", l1: seg(3, -1, 3, 9), l2: seg(-2, 4, 8, 4), ok: true, at: geometry.Point{X: 3, Y: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt, ok := geometry.Intersect(tt.l1, tt.l2)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.InDelta(t, tt.at.X, pt.X, 1e-9)
				assert.InDelta(t, tt.at.Y, pt.Y, 1e-9)
			}
		})
	}
}

func TestSplit_DefaultPolygon(t *testing.T) {
	a, b, err := geometry.Split(geometry.DefaultPolygon(), seg(250, 0, 250, 400))
	require.NoError(t, err)

	require.Len(t, a, 6)
	require.Len(t, b, 5)

	assert.Equal(t, geometry.Point{X: 100, Y: 100}, a[0])
	assert.Equal(t, geometry.Point{X: 200, Y: 50}, a[1])
	assert.InDelta(t, 250, a[2].X, 1e-9)
	assert.InDelta(t, 50, a[2].Y, 1e-9)
	assert.InDelta(t, 250, a[3].X, 1e-9)
	assert.InDelta(t, 850.0/3, a[3].Y, 1e-9)
	assert.Equal(t, geometry.Point{X: 150, Y: 300}, a[5])

	// Crossing points are shared by both halves.
	assert.Equal(t, a[2], b[0])
	assert.Equal(t, a[3], b[4])
	assert.Equal(t, []geometry.Point{{X: 300, Y: 50}, {X: 400, Y: 200}, {X: 350, Y: 250}}, b[1:4])
}

func TestSplit_NoCrossing(t *testing.T) {
	_, _, err := geometry.Split(geometry.DefaultPolygon(), seg(0, 0, 10, 10))
	assert.ErrorIs(t, err, domain.ErrNoSplit)
}

func TestSplit_SingleCrossing(t *testing.T) {
	// Starts inside the polygon, so the boundary is crossed only once.
	_, _, err := geometry.Split(geometry.DefaultPolygon(), seg(250, 150, 250, 400))
	assert.ErrorIs(t, err, domain.ErrNoSplit)
}

func TestSplit_DegenerateCut(t *testing.T) {
	_, _, err := geometry.Split(geometry.DefaultPolygon(), seg(250, 150, 250, 150))
	assert.ErrorIs(t, err, domain.ErrNoSplit)
}

func TestSplit_TooFewPoints(t *testing.T) {
	_, _, err := geometry.Split([]geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, seg(0, 1, 1, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestSplit_Square(t *testing.T) {
	square := []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	a, b, err := geometry.Split(square, seg(-5, 5, 15, 5))
	require.NoError(t, err)

	assert.Equal(t, []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}, {X: 0, Y: 5}}, a)
	assert.Equal(t, []geometry.Point{{X: 10, Y: 5}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 5}}, b)
}
