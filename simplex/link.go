package simplex

import "github.com/katalvlaran/cdt2d/pool"

// Link is an undirected edge between two vertices, remembered with
// the two triangles adjacent to it (TP, TM — "plus"/"minus" sides).
// Links carry no identity across rebuilds: package universe destroys
// and recreates every Link from scratch on each adjacency rebuild, so
// a Link's pool.Label is meaningful only within one rebuild's
// lifetime.
type Link struct {
	VI, VF pool.Label // endpoint vertices
	TP, TM pool.Label // adjacent triangles
}

// IsTimelike reports whether a link between vertices at viTime and
// vfTime is timelike (the two times differ).
func IsTimelike(viTime, vfTime int) bool { return viTime != vfTime }

// IsSpacelike reports whether a link between vertices at viTime and
// vfTime is spacelike (the two times are equal).
func IsSpacelike(viTime, vfTime int) bool { return viTime == vfTime }
