package universe

import (
	"github.com/katalvlaran/cdt2d/bag"
	"github.com/katalvlaran/cdt2d/pool"
	"github.com/katalvlaran/cdt2d/simplex"
)

// stripWidth is the spatial width of every time slice in the initial
// triangulation. It is fixed at 3: the minimal width for which every
// vertex already has left/right spatial neighbors, so the lattice is
// a valid starting point for the Monte Carlo walk regardless of how
// far targetVolume will later grow it.
const stripWidth = 3

// New builds the minimal initial triangulation: a periodic strip of
// stripWidth vertices per time slice, repeated across nSlices slices
// with full periodic wraparound in both space and (for torus) time.
//
// sphere and torus share this exact construction — the underlying
// pool storage is periodic in time either way. Spherical topology is
// realized entirely by treating the wraparound between slice
// nSlices-1 and slice 0 as not real: move-legality checks (CanAdd)
// and the adjacency rebuild (Rebuild) special-case the two boundary
// slices so they present as fixed 3-vertex caps, while add/delete/flip
// never observe a difference in how the Universe itself is built.
func New(nSlices int, sphere bool, capacity Capacity) (*Universe, error) {
	if nSlices < 3 {
		return nil, errNSlicesTooSmall(nSlices)
	}

	u := &Universe{
		sphere:        sphere,
		nSlices:       nSlices,
		vertices:      pool.New[simplex.Vertex](capacity.Vertices),
		triangles:     pool.New[simplex.Triangle](capacity.Triangles),
		links:         pool.New[simplex.Link](capacity.Links),
		sliceSizes:    make([]int, nSlices),
		trianglesAll:  bag.New[pool.Label](capacity.Triangles),
		verticesFour:  bag.New[pool.Label](capacity.Vertices),
		trianglesFlip: bag.New[pool.Label](capacity.Triangles),
	}

	w, t := stripWidth, nSlices
	v := make([][]pool.Label, t)
	for i := 0; i < t; i++ {
		v[i] = make([]pool.Label, w)
		for j := 0; j < w; j++ {
			lbl := u.vertices.Create()
			u.vertex(lbl).Time = i
			v[i][j] = lbl
		}
		u.sliceSizes[i] = w
	}

	up := make([][]pool.Label, t)
	down := make([][]pool.Label, t)
	for i := 0; i < t; i++ {
		up[i] = make([]pool.Label, w)
		down[i] = make([]pool.Label, w)
		for j := 0; j < w; j++ {
			iNext := (i + 1) % t

			tUp := u.triangles.Create()
			u.setVertices(tUp, v[i][j], v[i][(j+1)%w], v[iNext][j])
			up[i][j] = tUp

			tDown := u.triangles.Create()
			u.setVertices(tDown, v[iNext][j], v[iNext][(j+1)%w], v[i][(j+1)%w])
			down[i][j] = tDown

			u.trianglesAll.Add(tUp)
			u.trianglesAll.Add(tDown)
			u.trianglesFlip.Add(tUp)
			u.trianglesFlip.Add(tDown)
		}
	}

	for i := 0; i < t; i++ {
		iPrev := (i - 1 + t) % t
		iNext := (i + 1) % t
		for j := 0; j < w; j++ {
			jPrev := (j - 1 + w) % w
			jNext := (j + 1) % w

			u.setTriangles(up[i][j], down[i][jPrev], down[i][j], down[iPrev][j])
			u.setTriangles(down[i][j], up[i][j], up[i][jNext], up[iNext][j])
		}
	}

	return u, nil
}
