package universe

import (
	"github.com/katalvlaran/cdt2d/pool"
	"github.com/katalvlaran/cdt2d/simplex"
)

// setTriangleLeft makes neighbor t's left neighbor, bidirectionally:
// t.TL = neighbor and neighbor.TR = t.
func (u *Universe) setTriangleLeft(t, neighbor pool.Label) {
	u.triangle(t).TL = neighbor
	u.triangle(neighbor).TR = t
}

// setTriangleRight makes neighbor t's right neighbor, bidirectionally.
func (u *Universe) setTriangleRight(t, neighbor pool.Label) {
	u.triangle(t).TR = neighbor
	u.triangle(neighbor).TL = t
}

// setTriangleCenter makes neighbor t's center (base-edge) neighbor,
// bidirectionally. The center neighbor always has the opposite Type.
func (u *Universe) setTriangleCenter(t, neighbor pool.Label) {
	u.triangle(t).TC = neighbor
	u.triangle(neighbor).TC = t
}

// setTriangles wires all three of t's neighbors at once.
func (u *Universe) setTriangles(t, tl, tr, tc pool.Label) {
	u.setTriangleLeft(t, tl)
	u.setTriangleRight(t, tr)
	u.setTriangleCenter(t, tc)
}

// setVertexLeft sets t's left (VL) vertex and, when t is an Up
// triangle, records t as v's right anchor.
func (u *Universe) setVertexLeft(t, v pool.Label) {
	tri := u.triangle(t)
	tri.VL = v
	tri.Time = u.vertex(v).Time
	if tri.Type == simplex.Up {
		u.vertex(v).AnchorRight = t
	}
}

// setVertexRight sets t's right (VR) vertex and, when t is an Up
// triangle, records t as v's left anchor.
func (u *Universe) setVertexRight(t, v pool.Label) {
	tri := u.triangle(t)
	tri.VR = v
	if tri.Type == simplex.Up {
		u.vertex(v).AnchorLeft = t
	}
}

// setVertices sets all three of t's vertices, recomputes t's
// orientation from vl/vc's time, and (for an Up result) records t on
// vl's and vr's anchors.
func (u *Universe) setVertices(t, vl, vr, vc pool.Label) {
	tri := u.triangle(t)
	tri.VL, tri.VR, tri.VC = vl, vr, vc
	tri.Time = u.vertex(vl).Time
	tri.Type = simplex.RecomputeOrientation(u.vertex(vl).Time, u.vertex(vc).Time)
	if tri.Type == simplex.Up {
		u.vertex(vl).AnchorRight = t
		u.vertex(vr).AnchorLeft = t
	}
}

// isFourVertex reports whether v has order exactly 4: its two anchor
// triangles' right/left neighbors close into a diamond of 4 triangles
// around v (spec §4.D.2's order predicate).
func (u *Universe) isFourVertex(v pool.Label) bool {
	vv := u.vertex(v)
	al, ar := vv.AnchorLeft, vv.AnchorRight
	if al == pool.NoLabel || ar == pool.NoLabel {
		return false
	}
	alTri := u.triangle(al)
	if alTri.TR != ar {
		return false
	}
	return u.triangle(alTri.TC).TR == u.triangle(ar).TC
}

// isFlippable reports whether t's right neighbor has the opposite
// orientation, the precondition for a (2,2) flip move.
func (u *Universe) isFlippable(t pool.Label) bool {
	tri := u.triangle(t)
	return tri.Type != u.triangle(tri.TR).Type
}
