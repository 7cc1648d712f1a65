package simplex

import "github.com/katalvlaran/cdt2d/pool"

// Orientation distinguishes a triangle's two possible apex directions.
type Orientation uint8

const (
	// Up is a (2,1)-triangle: its base (VL, VR) sits at Time, its apex
	// VC at Time+1.
	Up Orientation = iota
	// Down is a (1,2)-triangle: its base (VL, VR) sits at Time, its
	// apex VC at Time-1.
	Down
)

func (o Orientation) String() string {
	if o == Up {
		return "UP"
	}
	return "DOWN"
}

// Opposite returns the other orientation.
func (o Orientation) Opposite() Orientation {
	if o == Up {
		return Down
	}
	return Up
}

// Triangle is a 2-simplex: an oriented pair of base vertices plus an
// apex, and the three neighboring triangles across its three edges.
//
//   - TL (left neighbor) shares the left timelike edge.
//   - TR (right neighbor) shares the right timelike edge.
//   - TC (center neighbor) shares the spacelike base edge, and always
//     has the opposite Type (UP's center is DOWN and vice versa).
//
// Time is always the time of the base (VL's time): for an Up triangle,
// VL and VR sit at Time, VC at Time+1; for Down, VL and VR sit at
// Time, VC at Time-1 (times taken modulo the slice count).
type Triangle struct {
	Type Orientation
	Time int

	VL, VR, VC pool.Label
	TL, TR, TC pool.Label
}

// RecomputeOrientation derives a triangle's orientation from its base
// (vl) and apex (vc) vertex times, including the two periodic-seam
// special cases called out by the spec: at the time-0/time-(T-1) seam,
// the naive "earlier base is UP" rule is inverted so that orientation
// stays consistent with the direction of increasing time rather than
// the raw integer comparison.
func RecomputeOrientation(vlTime, vcTime int) Orientation {
	o := Up
	if vlTime >= vcTime {
		o = Down
	}

	// Seam special cases (spec §3): wrap-around makes vc.time==0 look
	// smaller than vl.time even though it is "later" in the cycle, and
	// symmetrically for vl.time==0.
	if vcTime == 0 && vlTime > 1 {
		o = Up
	}
	if vlTime == 0 && vcTime > 1 {
		o = Down
	}

	return o
}
