package simulation

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/katalvlaran/cdt2d/adjacency"
	"github.com/katalvlaran/cdt2d/pool"
)

// NewVolumeProfileObservable records the per-slice vertex count
// N1(t), space-separated, one line per sweep — the discrete spatial
// volume profile used to estimate the Hausdorff dimension and compare
// against the semiclassical "blob" shape expected of 2D CDT.
func NewVolumeProfileObservable(dir, fileID string) *FileObservable {
	return NewFileObservable("volume_profile", dir, fileID, func(snap *adjacency.Snapshot) (string, error) {
		fields := make([]string, len(snap.SliceSizes))
		for i, n := range snap.SliceSizes {
			fields[i] = strconv.Itoa(n)
		}
		return strings.Join(fields, " "), nil
	})
}

// NewHausdorffObservable records geodesic ball sizes |B(v, r)| for r
// in [1, maxRadius] around a freshly sampled random vertex each
// sweep, space-separated. Fitting log|B(v,r)| against log r across
// many sweeps is the standard estimator for the Hausdorff dimension of
// the quantum geometry.
func NewHausdorffObservable(dir, fileID string, rng *rand.Rand, maxRadius int) *FileObservable {
	return NewFileObservable("hausdorff", dir, fileID, func(snap *adjacency.Snapshot) (string, error) {
		origin := randomVertex(snap, rng)
		fields := make([]string, maxRadius)
		for r := 1; r <= maxRadius; r++ {
			fields[r-1] = strconv.Itoa(len(snap.Ball(origin, r)))
		}
		return strings.Join(fields, " "), nil
	})
}

// NewRicciObservable records a per-slice average discrete curvature
// proxy: the mean deficit (6 - order) over the vertices of each time
// slice. A flat triangulated plane has every vertex at order 6, so
// this is zero in the continuum limit of a flat geometry and nonzero
// where the quantum geometry develops curvature.
func NewRicciObservable(dir, fileID string) *FileObservable {
	return NewFileObservable("ricci", dir, fileID, func(snap *adjacency.Snapshot) (string, error) {
		sums := make([]float64, snap.NSlices)
		counts := make([]int, snap.NSlices)
		for _, info := range snap.Vertices {
			sums[info.Time] += float64(6 - info.Order)
			counts[info.Time]++
		}
		fields := make([]string, snap.NSlices)
		for i := range fields {
			avg := 0.0
			if counts[i] > 0 {
				avg = sums[i] / float64(counts[i])
			}
			fields[i] = fmt.Sprintf("%.4f", avg)
		}
		return strings.Join(fields, " "), nil
	})
}

// randomVertex uniformly samples a live vertex label from snap.
func randomVertex(snap *adjacency.Snapshot, rng *rand.Rand) pool.Label {
	n := len(snap.Vertices)
	target := rng.Intn(n)
	i := 0
	for v := range snap.Vertices {
		if i == target {
			return v
		}
		i++
	}
	panic("simulation: unreachable, target < len(snap.Vertices)")
}
