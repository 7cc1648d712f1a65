package universe

import (
	"math/rand"

	"github.com/katalvlaran/cdt2d/pool"
)

// PickAddCandidate uniformly selects a triangle from the full triangle
// bag, the candidate pool for an add move.
func (u *Universe) PickAddCandidate(rng *rand.Rand) pool.Label {
	return u.trianglesAll.UniformPick(rng)
}

// CanAdd reports whether inserting a vertex into t is structurally
// legal. The only structural rejection is the spherical cap guard: a
// triangle based at either boundary slice (time 0 or nSlices-1) would
// grow that cap past its fixed 3 vertices. A non-nil error
// (ErrSphereCapBoundary) means the move must be rejected.
func (u *Universe) CanAdd(t pool.Label) error {
	if !u.sphere {
		return nil
	}
	time := u.triangle(t).Time
	if time == 0 || time == u.nSlices-1 {
		return ErrSphereCapBoundary
	}
	return nil
}

// AddMove performs the (2,4) move: splits t and its center neighbor tc
// into two triangles each by inserting a new vertex on their shared
// spacelike base edge (so the vertex lands on t's base slice), and
// returns the label of the inserted vertex.
// The caller (package simulation) must have already confirmed CanAdd(t)
// and won the Metropolis draw; AddMove itself performs the mutation
// unconditionally.
func (u *Universe) AddMove(t pool.Label) pool.Label {
	tc := u.triangle(t).TC
	vr := u.triangle(t).VR
	vc := u.triangle(t).VC
	tcVC := u.triangle(tc).VC
	time := u.triangle(t).Time

	tOldTR := u.triangle(t).TR
	tcOldTR := u.triangle(tc).TR

	v := u.vertices.Create()
	u.vertex(v).Time = time
	u.verticesFour.Add(v)
	u.sliceSizes[time]++

	u.setVertexRight(t, v)
	u.setVertexRight(tc, v)

	t1 := u.triangles.Create()
	t2 := u.triangles.Create()
	u.trianglesAll.Add(t1)
	u.trianglesAll.Add(t2)

	u.setVertices(t1, v, vr, vc)
	u.setVertices(t2, v, vr, tcVC)

	u.setTriangles(t1, t, tOldTR, t2)
	u.setTriangles(t2, tc, tcOldTR, t1)

	if u.triangle(t1).Type != u.triangle(u.triangle(t1).TR).Type {
		u.trianglesFlip.Remove(t)
		u.trianglesFlip.Add(t1)
	}
	if u.triangle(t2).Type != u.triangle(u.triangle(t2).TR).Type {
		u.trianglesFlip.Remove(tc)
		u.trianglesFlip.Add(t2)
	}

	return v
}
