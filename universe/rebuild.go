package universe

import (
	"github.com/katalvlaran/cdt2d/adjacency"
	"github.com/katalvlaran/cdt2d/pool"
	"github.com/katalvlaran/cdt2d/simplex"
)

// Rebuild walks the live triangulation and produces a frozen
// adjacency.Snapshot: vertex neighbor lists (with order), triangle
// neighbor lists, and the full link set. It destroys and recreates
// the internal transient link pool every call, so a Snapshot must be
// treated as valid only until the next mutating move.
//
// For sphere topology the two boundary slices (time 0 and
// nSlices-1) get a shorter, one-directional neighbor walk: the
// wraparound edge the periodic construction still holds in storage is
// treated as not existing, which is what turns the stored torus into
// a sphere from every external observer's point of view.
func (u *Universe) Rebuild() *adjacency.Snapshot {
	for _, l := range u.links.Items() {
		u.links.Destroy(l)
	}

	triAll := u.trianglesAll.Elements()

	vertices := make(map[pool.Label]adjacency.VertexInfo, u.vertices.Size())
	for _, t := range triAll {
		if u.triangle(t).Type != simplex.Up {
			continue
		}
		vl := u.triangle(t).VL
		if _, seen := vertices[vl]; seen {
			continue
		}
		neighbors := u.vertexNeighbors(vl)
		vertices[vl] = adjacency.VertexInfo{
			Time:      u.vertex(vl).Time,
			Order:     len(neighbors),
			Neighbors: neighbors,
		}
	}

	triangles := make(map[pool.Label]adjacency.TriangleInfo, len(triAll))
	for _, t := range triAll {
		tri := u.triangle(t)
		tc := tri.TC
		if u.sphere && ((tri.Type == simplex.Up && tri.Time == 0) || (tri.Type == simplex.Down && tri.Time == u.nSlices-1)) {
			tc = pool.NoLabel
		}
		triangles[t] = adjacency.TriangleInfo{
			Type: tri.Type,
			Time: tri.Time,
			VL:   tri.VL, VR: tri.VR, VC: tri.VC,
			TL: tri.TL, TR: tri.TR, TC: tc,
		}
	}

	var links []adjacency.LinkInfo
	for _, t := range triAll {
		tri := u.triangle(t)
		var vi, vf pool.Label
		if tri.Type == simplex.Up {
			vi, vf = tri.VL, tri.VC
		} else {
			vi, vf = tri.VC, tri.VL
		}
		ll := u.links.Create()
		*u.links.At(ll) = simplex.Link{VI: vi, VF: vf, TP: tri.TL, TM: t}
		links = append(links, adjacency.LinkInfo{VI: vi, VF: vf, TP: tri.TL, TM: t})

		if tri.Type == simplex.Up {
			lh := u.links.Create()
			*u.links.At(lh) = simplex.Link{VI: tri.VL, VF: tri.VR, TP: t, TM: tri.TC}
			links = append(links, adjacency.LinkInfo{VI: tri.VL, VF: tri.VR, TP: t, TM: tri.TC})
		}
	}

	return &adjacency.Snapshot{
		Vertices:   vertices,
		Triangles:  triangles,
		Links:      links,
		NSlices:    u.nSlices,
		SliceSizes: append([]int(nil), u.sliceSizes...),
	}
}

// vertexNeighbors walks the star of v, returning its neighboring
// vertices in cyclic order starting from its left anchor.
func (u *Universe) vertexNeighbors(v pool.Label) []pool.Label {
	vv := u.vertex(v)

	if u.sphere && vv.Time == 0 {
		var out []pool.Label
		tn := vv.AnchorLeft
		for {
			out = append(out, u.triangle(tn).VL)
			tn = u.triangle(tn).TR
			if u.triangle(tn).Type != simplex.Down {
				break
			}
		}
		out = append(out, u.triangle(tn).VC, u.triangle(tn).VR)
		return out
	}
	if u.sphere && vv.Time == u.nSlices-1 {
		var out []pool.Label
		tn := u.triangle(vv.AnchorLeft).TC
		for {
			out = append(out, u.triangle(tn).VL)
			tn = u.triangle(tn).TR
			if u.triangle(tn).Type != simplex.Up {
				break
			}
		}
		out = append(out, u.triangle(tn).VC, u.triangle(tn).VR)
		return out
	}

	var out []pool.Label
	tn := vv.AnchorLeft
	for {
		out = append(out, u.triangle(tn).VL)
		tn = u.triangle(tn).TR
		if u.triangle(tn).Type != simplex.Down {
			break
		}
	}
	out = append(out, u.triangle(tn).VC, u.triangle(tn).VR)

	tn = u.triangle(u.triangle(tn).TC).TL
	for u.triangle(tn).Type == simplex.Up {
		out = append(out, u.triangle(tn).VR)
		tn = u.triangle(tn).TL
	}
	out = append(out, u.triangle(tn).VC)

	return out
}
