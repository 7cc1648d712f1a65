package universe

import (
	"github.com/katalvlaran/cdt2d/bag"
	"github.com/katalvlaran/cdt2d/pool"
	"github.com/katalvlaran/cdt2d/simplex"
)

// Capacity sizes the three pool.Pool slabs a Universe preallocates.
// Unlike the fixed 10^7/2*10^7 figures the original implementation
// hardcodes, capacities here are derived from the run's expected
// target volume (see DefaultCapacity) so that small tests do not pay
// for a multi-hundred-megabyte slab they will never fill.
type Capacity struct {
	Vertices  int
	Triangles int
	Links     int
}

// DefaultCapacity sizes a Capacity from an expected target triangle
// volume, leaving headroom for the volume-fixing random walk to
// overshoot before the soft potential pulls it back. Triangle count
// runs at roughly 2x vertex count in a 2D CDT lattice. With a weak
// volume-fixing strength (epsilon 0.01) and lambda = ln 2 the walk can
// climb to more than 10x a small target volume, hence the 16x
// multiplier; a run that still outgrows it panics in pool.Create.
func DefaultCapacity(targetVolume int) Capacity {
	triangles := targetVolume * 16
	if triangles < 64 {
		triangles = 64
	}
	return Capacity{
		Vertices:  triangles/2 + 8,
		Triangles: triangles,
		Links:     triangles * 2,
	}
}

// Universe is one mutable CDT triangulation: a fixed-topology simplex
// complex with a time foliation, maintained under the three local
// ergodic moves. It owns every pool and candidate bag; package
// simulation holds exactly one Universe and is the sole caller of its
// moves.
type Universe struct {
	sphere  bool
	nSlices int

	vertices  *pool.Pool[simplex.Vertex]
	triangles *pool.Pool[simplex.Triangle]
	links     *pool.Pool[simplex.Link] // transient: rebuilt wholesale on each Rebuild

	sliceSizes []int

	trianglesAll  *bag.Bag[pool.Label] // every live triangle
	verticesFour  *bag.Bag[pool.Label] // vertices eligible for delete
	trianglesFlip *bag.Bag[pool.Label] // triangles eligible for flip
}

// NSlices returns the fixed number of time slices (with periodic
// wraparound for torus, or the two spherical caps included as slices
// 0 and NSlices-1 for sphere).
func (u *Universe) NSlices() int { return u.nSlices }

// Sphere reports whether the Universe has spherical (capped) rather
// than toroidal (periodic) spatial topology.
func (u *Universe) Sphere() bool { return u.sphere }

// Volume returns the total number of live triangles.
func (u *Universe) Volume() int { return u.trianglesAll.Size() }

// VertexCount returns the total number of live vertices.
func (u *Universe) VertexCount() int { return u.vertices.Size() }

// SliceSize returns the number of vertices on time slice t.
func (u *Universe) SliceSize(t int) int { return u.sliceSizes[t] }

// FourVertexCount returns the number of vertices currently eligible
// for a delete move (order exactly 4).
func (u *Universe) FourVertexCount() int { return u.verticesFour.Size() }

// FlippableCount returns the number of triangles currently eligible
// for a flip move.
func (u *Universe) FlippableCount() int { return u.trianglesFlip.Size() }

// IsOrderFour reports whether v is currently a delete-move candidate.
func (u *Universe) IsOrderFour(v pool.Label) bool { return u.verticesFour.Contains(v) }

// IsFlippable reports whether t is currently a flip-move candidate.
func (u *Universe) IsFlippable(t pool.Label) bool { return u.trianglesFlip.Contains(t) }

// VertexTime returns the time slice of vertex v.
func (u *Universe) VertexTime(v pool.Label) int { return u.vertex(v).Time }

// TriangleTime returns the base time of triangle t.
func (u *Universe) TriangleTime(t pool.Label) int { return u.triangle(t).Time }

// TriangleType returns the orientation of triangle t.
func (u *Universe) TriangleType(t pool.Label) simplex.Orientation { return u.triangle(t).Type }

// AllTriangles returns the labels of every live triangle, in no
// particular order.
func (u *Universe) AllTriangles() []pool.Label { return u.trianglesAll.Elements() }

// TriangleLeft returns t's left neighbor.
func (u *Universe) TriangleLeft(t pool.Label) pool.Label { return u.triangle(t).TL }

// TriangleRight returns t's right neighbor.
func (u *Universe) TriangleRight(t pool.Label) pool.Label { return u.triangle(t).TR }

// TriangleCenter returns t's center neighbor.
func (u *Universe) TriangleCenter(t pool.Label) pool.Label { return u.triangle(t).TC }

// vertex is a convenience accessor for the live vertex named by l.
func (u *Universe) vertex(l pool.Label) *simplex.Vertex { return u.vertices.At(l) }

// triangle is a convenience accessor for the live triangle named by l.
func (u *Universe) triangle(l pool.Label) *simplex.Triangle { return u.triangles.At(l) }
