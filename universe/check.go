package universe

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/cdt2d/pool"
	"github.com/katalvlaran/cdt2d/simplex"
)

// Check validates the triangulation's structural invariants: every
// triangle has three live neighbors and three live vertices, the
// trianglesFlip bag agrees with the actual left/right-type comparison
// for every triangle, and verticesFour agrees with the actual
// coordination number of every vertex. It returns the first violation
// found, wrapped with ErrCheckFailed, or nil if the triangulation is
// consistent.
//
// Check is intended for tests and debug builds, not the hot move
// loop: it walks every live triangle and vertex, an O(volume)
// operation per call.
func (u *Universe) Check() error {
	for _, t := range u.trianglesAll.Elements() {
		tri := u.triangle(t)
		if tri.TL == pool.NoLabel || !u.triangles.Live(tri.TL) {
			return errors.Wrapf(ErrCheckFailed, "triangle %d has no live left neighbor", t)
		}
		if tri.TR == pool.NoLabel || !u.triangles.Live(tri.TR) {
			return errors.Wrapf(ErrCheckFailed, "triangle %d has no live right neighbor", t)
		}
		if tri.TC == pool.NoLabel || !u.triangles.Live(tri.TC) {
			return errors.Wrapf(ErrCheckFailed, "triangle %d has no live center neighbor", t)
		}
		if !u.vertices.Live(tri.VL) || !u.vertices.Live(tri.VR) || !u.vertices.Live(tri.VC) {
			return errors.Wrapf(ErrCheckFailed, "triangle %d has a dead vertex", t)
		}

		flippable := tri.Type != u.triangle(tri.TR).Type
		if u.trianglesFlip.Contains(t) != flippable {
			return errors.Wrapf(ErrCheckFailed, "triangle %d flip-bag membership disagrees with its type comparison", t)
		}
	}

	for _, t := range u.trianglesAll.Elements() {
		tri := u.triangle(t)
		if tri.Type != simplex.Up {
			continue
		}
		v := tri.VL
		if u.isFourVertex(v) != u.verticesFour.Contains(v) {
			return errors.Wrapf(ErrCheckFailed, "vertex %d four-vertex-bag membership disagrees with its coordination number", v)
		}
	}

	for _, v := range u.verticesFour.Elements() {
		vv := u.vertex(v)
		if u.triangle(vv.AnchorLeft).TR != vv.AnchorRight {
			return errors.Wrapf(ErrCheckFailed, "order-4 vertex %d has misaligned anchors", v)
		}
	}

	return nil
}
