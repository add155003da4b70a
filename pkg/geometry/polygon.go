package geometry

import (
	"fmt"

	"github.com/aretw0/drills/pkg/domain"
)

// DefaultPolygon returns the sample seven-vertex polygon.
func DefaultPolygon() []Point {
	return []Point{
		{X: 100, Y: 100},
		{X: 200, Y: 50},
		{X: 300, Y: 50},
		{X: 400, Y: 200},
		{X: 350, Y: 250},
		{X: 200, Y: 300},
		{X: 150, Y: 300},
	}
}

// Split divides polygon into two halves along cut.
// The cut must cross the boundary an even, non-zero number of times and both
// halves must keep at least two points; otherwise ErrNoSplit is returned.
func Split(polygon []Point, cut Segment) ([]Point, []Point, error) {
	if len(polygon) < 3 {
		return nil, nil, fmt.Errorf("%w: polygon needs at least 3 points, got %d", domain.ErrInvalidArgument, len(polygon))
	}

	var first, second []Point
	crossed := false

	for i, pt := range polygon {
		if crossed {
			second = append(second, pt)
		} else {
			first = append(first, pt)
		}

		edge := Segment{A: pt, B: polygon[(i+1)%len(polygon)]}
		if x, ok := Intersect(edge, cut); ok {
			crossed = !crossed
			first = append(first, x)
			second = append(second, x)
		}
	}

	if crossed || len(first) < 2 || len(second) < 2 {
		return nil, nil, domain.ErrNoSplit
	}
	return first, second, nil
}
