package adjacency

import (
	"github.com/katalvlaran/cdt2d/pool"
	"github.com/katalvlaran/cdt2d/simplex"
)

// VertexInfo is the read-only view of one vertex: its time slice, its
// order (vertex degree, i.e. number of incident links), and the
// labels of its neighboring vertices.
type VertexInfo struct {
	Time      int
	Order     int
	Neighbors []pool.Label
}

// TriangleInfo is the read-only view of one triangle, a flattened copy
// of simplex.Triangle at rebuild time.
type TriangleInfo struct {
	Type       simplex.Orientation
	Time       int
	VL, VR, VC pool.Label
	TL, TR, TC pool.Label
}

// LinkInfo is the read-only view of one link, a flattened copy of
// simplex.Link at rebuild time.
type LinkInfo struct {
	VI, VF pool.Label
	TP, TM pool.Label
}

// Snapshot is the frozen triangulation state handed to Observables. It
// is rebuilt wholesale once per sweep, not after individual moves;
// an Observable must not retain a Snapshot across rebuilds and must
// not mutate it.
type Snapshot struct {
	Vertices   map[pool.Label]VertexInfo
	Triangles  map[pool.Label]TriangleInfo
	Links      []LinkInfo
	NSlices    int
	SliceSizes []int
}

// VolumeProfile returns the number of vertices per time slice, indexed
// by slice number — the discrete analogue of the spatial-volume
// profile N1(t) used by Hausdorff-dimension and volume observables.
func (s *Snapshot) VolumeProfile() []int {
	out := make([]int, len(s.SliceSizes))
	copy(out, s.SliceSizes)
	return out
}

// TotalVertices returns the total vertex count across all slices.
func (s *Snapshot) TotalVertices() int { return len(s.Vertices) }

// TotalTriangles returns the total triangle count.
func (s *Snapshot) TotalTriangles() int { return len(s.Triangles) }
