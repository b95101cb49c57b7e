package cubed

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

// RoundingPlaces is the number of decimal places intermediate products are
// rounded to during intersection tests.
//
// Rounding snaps near-zero edge tests to exactly zero, so that axis-aligned
// probes which land on a triangle edge count as hits on both triangles
// sharing that edge.
const RoundingPlaces = 8

var roundingScale = math.Pow(10, RoundingPlaces)

// An Intersection describes where a segment crosses a triangle.
type Intersection struct {
	Point model3d.Coord3D

	// Scale is the fraction of the way along the segment where the
	// intersection occurs, in [0, 1].
	Scale float64

	// Side is 1 if the segment approaches from the side of the triangle that
	// its normal points to, or -1 if it approaches from behind.
	Side int
}

// IntersectSegment checks if a segment crosses a triangle, including its
// edges and the segment's endpoints.
//
// Degenerate triangles and segments parallel to the triangle's plane never
// intersect.
func IntersectSegment(t *model3d.Triangle, s *model3d.Segment) (Intersection, bool) {
	normal := roundCoord(t[1].Sub(t[0]).Cross(t[2].Sub(t[0])))
	if normal == (model3d.Coord3D{}) {
		return Intersection{}, false
	}
	direction := s[1].Sub(s[0])
	denom := roundValue(normal.Dot(direction))
	if denom == 0 {
		return Intersection{}, false
	}

	// x = o + t*d (segment)
	// n*x = n*p0  (plane)
	// => t = n*(p0 - o) / (n*d)
	scale := roundValue(roundValue(normal.Dot(t[0].Sub(s[0]))) / denom)
	if !(scale >= 0 && scale <= 1) {
		return Intersection{}, false
	}
	point := s[0].Add(direction.Scale(scale))

	for i := 0; i < 3; i++ {
		p1 := t[i]
		p2 := t[(i+1)%3]
		if roundValue(p2.Sub(p1).Cross(point.Sub(p1)).Dot(normal)) < 0 {
			return Intersection{}, false
		}
	}

	side := 1
	if denom > 0 {
		side = -1
	}
	return Intersection{Point: point, Scale: scale, Side: side}, true
}

// IntersectSegmentEither is like IntersectSegment, but retries with the
// segment reversed if the forward probe misses.
//
// The returned intersection is relative to whichever direction hit.
func IntersectSegmentEither(t *model3d.Triangle, s *model3d.Segment) (Intersection, bool) {
	if res, ok := IntersectSegment(t, s); ok {
		return res, true
	}
	return IntersectSegment(t, &model3d.Segment{s[1], s[0]})
}

// IntersectSegments tests a batch of segments against one triangle, storing
// whether each segment hit in hits.
//
// The number of hits is returned. The hits slice must be the same length as
// segs.
func IntersectSegments(t *model3d.Triangle, segs []model3d.Segment, hits []bool) int {
	if len(segs) != len(hits) {
		panic("mismatched segment and result lengths")
	}
	var count int
	for i := range segs {
		_, hits[i] = IntersectSegmentEither(t, &segs[i])
		if hits[i] {
			count++
		}
	}
	return count
}

// Degenerate checks if a triangle has no usable normal.
func Degenerate(t *model3d.Triangle) bool {
	return roundCoord(t[1].Sub(t[0]).Cross(t[2].Sub(t[0]))) == model3d.Coord3D{}
}

func roundValue(x float64) float64 {
	return math.Round(x*roundingScale) / roundingScale
}

func roundCoord(c model3d.Coord3D) model3d.Coord3D {
	return model3d.XYZ(roundValue(c.X), roundValue(c.Y), roundValue(c.Z))
}
