package geometry

import "math"

// Epsilon is the tolerance used when checking that an intersection lies on both segments.
const Epsilon = 1e-9

// Point is a location in the plane.
type Point struct {
	X float64 `json:"x" yaml:"x" mapstructure:"x"`
	Y float64 `json:"y" yaml:"y" mapstructure:"y"`
}

// Segment is the closed line segment between A and B.
type Segment struct {
	A Point `json:"a" yaml:"a" mapstructure:"a"`
	B Point `json:"b" yaml:"b" mapstructure:"b"`
}

// Intersect returns the point where l1 and l2 cross.
// Parallel or coincident segments, and lines that cross outside either
// segment, report false.
// See https://en.wikipedia.org/wiki/Line%E2%80%93line_intersection
func Intersect(l1, l2 Segment) (Point, bool) {
	p1, p2 := l1.A, l1.B
	p3, p4 := l2.A, l2.B

	den := (p1.X-p2.X)*(p3.Y-p4.Y) - (p1.Y-p2.Y)*(p3.X-p4.X)
	if den == 0 {
		return Point{}, false
	}

	c1 := p1.X*p2.Y - p1.Y*p2.X
	c2 := p3.X*p4.Y - p3.Y*p4.X
	pt := Point{
		X: (c1*(p3.X-p4.X) - (p1.X-p2.X)*c2) / den,
		Y: (c1*(p3.Y-p4.Y) - (p1.Y-p2.Y)*c2) / den,
	}

	if within(pt, l1) && within(pt, l2) {
		return pt, true
	}
	return Point{}, false
}

func within(p Point, s Segment) bool {
	return between(p.X, s.A.X, s.B.X) && between(p.Y, s.A.Y, s.B.Y)
}

func between(v, b1, b2 float64) bool {
	lo, hi := math.Min(b1, b2), math.Max(b1, b2)
	return v >= lo-Epsilon && v <= hi+Epsilon
}
