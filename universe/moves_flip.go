package universe

import (
	"math/rand"

	"github.com/katalvlaran/cdt2d/pool"
	"github.com/katalvlaran/cdt2d/simplex"
)

// PickFlipCandidate uniformly selects a triangle from the flippable
// triangle bag, the candidate pool for a flip move.
func (u *Universe) PickFlipCandidate(rng *rand.Rand) pool.Label {
	return u.trianglesFlip.UniformPick(rng)
}

// CanFlip reports whether t is currently flippable. The flip bag is
// kept exactly in sync with this predicate by every move, so this is
// mostly a defensive re-check rather than a real gate. A non-nil error
// (ErrNotFlippable) means the move must be rejected.
func (u *Universe) CanFlip(t pool.Label) error {
	if !u.isFlippable(t) {
		return ErrNotFlippable
	}
	return nil
}

// FlipMove performs the (2,2) move: swaps the timelike link between t
// and its right neighbor tr, exchanging which pair of triangles shares
// which apex. The caller must have already confirmed CanFlip(t) and
// won the Metropolis draw.
func (u *Universe) FlipMove(t pool.Label) {
	tr := u.triangle(t).TR
	tc := u.triangle(t).TC
	trc := u.triangle(tr).TC

	if u.triangle(t).Type == simplex.Up {
		u.vertex(u.triangle(t).VL).AnchorRight = tr
		u.vertex(u.triangle(t).VR).AnchorLeft = tr
	} else {
		u.vertex(u.triangle(tr).VL).AnchorRight = t
		u.vertex(u.triangle(tr).VR).AnchorLeft = t
	}

	u.setTriangleCenter(t, trc)
	u.setTriangleCenter(tr, tc)

	vl := u.triangle(t).VL
	vr := u.triangle(t).VR
	vc := u.triangle(t).VC
	vrr := u.triangle(tr).VR

	u.setVertices(t, vc, vrr, vl)
	u.setVertices(tr, vl, vr, vrr)

	if u.verticesFour.Contains(vl) {
		u.verticesFour.Remove(vl)
	}
	if u.isFourVertex(vr) {
		u.verticesFour.Add(vr)
	}
	if u.isFourVertex(vc) {
		u.verticesFour.Add(vc)
	}
	if u.verticesFour.Contains(vrr) {
		u.verticesFour.Remove(vrr)
	}

	tLeft := u.triangle(t).TL
	if u.trianglesFlip.Contains(tLeft) && u.triangle(t).Type == u.triangle(tLeft).Type {
		u.trianglesFlip.Remove(tLeft)
	}
	if u.trianglesFlip.Contains(tr) && u.triangle(tr).Type == u.triangle(u.triangle(tr).TR).Type {
		u.trianglesFlip.Remove(tr)
	}
	if !u.trianglesFlip.Contains(tLeft) && u.triangle(t).Type != u.triangle(tLeft).Type {
		u.trianglesFlip.Add(tLeft)
	}
	if !u.trianglesFlip.Contains(tr) && u.triangle(tr).Type != u.triangle(u.triangle(tr).TR).Type {
		u.trianglesFlip.Add(tr)
	}
}
