package universe

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/katalvlaran/cdt2d/bag"
	"github.com/katalvlaran/cdt2d/pool"
	"github.com/katalvlaran/cdt2d/simplex"
)

// Export writes the current triangulation to w in the line-delimited
// decimal geometry format: a vertex count and per-vertex time, then a
// triangle count and per-triangle vertex/neighbor indices, each block
// closed by a repeated count as a delimiter. Indices reference the
// 0-based emission order, not pool.Label values, so the file is
// self-contained and independent of allocation history.
func (u *Universe) Export(w io.Writer) error {
	bw := bufio.NewWriter(w)

	verts := u.vertices.Items()
	index := make(map[pool.Label]int, len(verts))
	for i, v := range verts {
		index[v] = i
	}

	if _, err := fmt.Fprintln(bw, len(verts)); err != nil {
		return errors.Wrap(err, "universe: writing vertex count")
	}
	for _, v := range verts {
		if _, err := fmt.Fprintln(bw, u.vertex(v).Time); err != nil {
			return errors.Wrap(err, "universe: writing vertex time")
		}
	}
	if _, err := fmt.Fprintln(bw, len(verts)); err != nil {
		return errors.Wrap(err, "universe: writing vertex delimiter")
	}

	tris := u.trianglesAll.Elements()
	triIndex := make(map[pool.Label]int, len(tris))
	for i, t := range tris {
		triIndex[t] = i
	}

	if _, err := fmt.Fprintln(bw, len(tris)); err != nil {
		return errors.Wrap(err, "universe: writing triangle count")
	}
	for _, t := range tris {
		tri := u.triangle(t)
		_, err := fmt.Fprintf(bw, "%d %d %d\n%d %d %d\n",
			index[tri.VL], index[tri.VR], index[tri.VC],
			triIndex[tri.TL], triIndex[tri.TR], triIndex[tri.TC])
		if err != nil {
			return errors.Wrap(err, "universe: writing triangle")
		}
	}
	if _, err := fmt.Fprintln(bw, len(tris)); err != nil {
		return errors.Wrap(err, "universe: writing triangle delimiter")
	}

	return errors.Wrap(bw.Flush(), "universe: flushing geometry file")
}

// Import parses a geometry file written by Export and rebuilds a
// Universe from it: every derived field (triangle Type/Time, vertex
// anchors, sliceSizes, and the three candidate bags) is recomputed
// from the raw vertex times and triangle index table, since the file
// format stores only the minimal topology, not the caches moves keep
// warm incrementally.
func Import(r io.Reader, sphere bool, capacity Capacity) (*Universe, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords) // triangle lines hold three integers each

	readInt := func() (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, errors.Wrap(err, "universe: reading geometry file")
			}
			return 0, errors.Wrap(ErrMalformedGeometry, "unexpected end of file")
		}
		var n int
		if _, err := fmt.Sscanf(sc.Text(), "%d", &n); err != nil {
			return 0, errors.Wrapf(ErrMalformedGeometry, "expected integer, got %q", sc.Text())
		}
		return n, nil
	}

	nV, err := readInt()
	if err != nil {
		return nil, err
	}

	u := &Universe{
		sphere:        sphere,
		vertices:      pool.New[simplex.Vertex](capacity.Vertices),
		triangles:     pool.New[simplex.Triangle](capacity.Triangles),
		links:         pool.New[simplex.Link](capacity.Links),
		trianglesAll:  bag.New[pool.Label](capacity.Triangles),
		verticesFour:  bag.New[pool.Label](capacity.Vertices),
		trianglesFlip: bag.New[pool.Label](capacity.Triangles),
	}

	vertexByIndex := make([]pool.Label, nV)
	maxTime := 0
	for i := 0; i < nV; i++ {
		t, err := readInt()
		if err != nil {
			return nil, err
		}
		lbl := u.vertices.Create()
		u.vertex(lbl).Time = t
		vertexByIndex[i] = lbl
		if t > maxTime {
			maxTime = t
		}
	}
	if _, err := readInt(); err != nil { // vertex-count delimiter
		return nil, err
	}

	u.nSlices = maxTime + 1
	u.sliceSizes = make([]int, u.nSlices)
	for _, v := range vertexByIndex {
		u.sliceSizes[u.vertex(v).Time]++
	}

	nT, err := readInt()
	if err != nil {
		return nil, err
	}

	triByIndex := make([]pool.Label, nT)
	type rawNeighbors struct{ tl, tr, tc int }
	neighbors := make([]rawNeighbors, nT)

	for i := 0; i < nT; i++ {
		vl, err := readInt()
		if err != nil {
			return nil, err
		}
		vr, err := readInt()
		if err != nil {
			return nil, err
		}
		vc, err := readInt()
		if err != nil {
			return nil, err
		}
		tl, err := readInt()
		if err != nil {
			return nil, err
		}
		tr, err := readInt()
		if err != nil {
			return nil, err
		}
		tc, err := readInt()
		if err != nil {
			return nil, err
		}
		if vl < 0 || vl >= nV || vr < 0 || vr >= nV || vc < 0 || vc >= nV {
			return nil, errors.Wrapf(ErrMalformedGeometry, "triangle %d references out-of-range vertex", i)
		}

		lbl := u.triangles.Create()
		tri := u.triangle(lbl)
		tri.VL, tri.VR, tri.VC = vertexByIndex[vl], vertexByIndex[vr], vertexByIndex[vc]
		tri.Time = u.vertex(tri.VL).Time
		tri.Type = simplex.RecomputeOrientation(u.vertex(tri.VL).Time, u.vertex(tri.VC).Time)

		triByIndex[i] = lbl
		neighbors[i] = rawNeighbors{tl, tr, tc}
		u.trianglesAll.Add(lbl)
	}
	if _, err := readInt(); err != nil { // triangle-count delimiter
		return nil, err
	}

	for i, lbl := range triByIndex {
		n := neighbors[i]
		if n.tl < 0 || n.tl >= nT || n.tr < 0 || n.tr >= nT || n.tc < 0 || n.tc >= nT {
			return nil, errors.Wrapf(ErrMalformedGeometry, "triangle %d references out-of-range neighbor", i)
		}
		tri := u.triangle(lbl)
		tri.TL, tri.TR, tri.TC = triByIndex[n.tl], triByIndex[n.tr], triByIndex[n.tc]

		if tri.Type == simplex.Up {
			u.vertex(tri.VL).AnchorRight = lbl
			u.vertex(tri.VR).AnchorLeft = lbl
		}
	}

	for _, lbl := range triByIndex {
		if u.isFlippable(lbl) {
			u.trianglesFlip.Add(lbl)
		}
	}
	for _, lbl := range triByIndex {
		tri := u.triangle(lbl)
		if tri.Type != simplex.Up {
			continue
		}
		if u.isFourVertex(tri.VL) && !u.verticesFour.Contains(tri.VL) {
			u.verticesFour.Add(tri.VL)
		}
	}

	if sphere && (u.sliceSizes[0] != 3 || u.sliceSizes[u.nSlices-1] != 3) {
		return nil, errors.Wrap(ErrMalformedGeometry, "sphere geometry must have 3-vertex caps at both boundaries")
	}

	return u, nil
}
