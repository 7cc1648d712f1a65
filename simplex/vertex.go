package simplex

import "github.com/katalvlaran/cdt2d/pool"

// Vertex is a 0-simplex living on integer time slice Time.
//
// AnchorLeft and AnchorRight name the two upward (2,1)-triangles based
// on this vertex's slice that touch it: AnchorLeft has the vertex as
// its right base vertex (VR), AnchorRight as its left base vertex
// (VL). AnchorLeft's right neighbor is AnchorRight only when the
// vertex has a single upward link, as an order-4 vertex does; otherwise
// downward triangles sit between them. The anchors exist only to let
// Universe walk the star of the vertex; they carry no geometric
// meaning beyond that.
type Vertex struct {
	Time       int
	AnchorLeft pool.Label
	AnchorRight pool.Label
}
