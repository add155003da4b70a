/*
Package geometry splits simple polygons along a cut line.

A polygon is an ordered list of vertices with an implicit closing edge from the
last vertex back to the first. Split walks every edge, assigns vertices to the
current half and switches halves each time the cut crosses an edge. Crossing
points belong to both halves.

	a, b, err := geometry.Split(geometry.DefaultPolygon(), geometry.Segment{
		A: geometry.Point{X: 250, Y: 0},
		B: geometry.Point{X: 250, Y: 400},
	})
*/
package geometry
