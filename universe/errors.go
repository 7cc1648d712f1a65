package universe

import "github.com/pkg/errors"

// Sentinel errors surfaced by Universe operations. Move-precondition
// failures (ErrSphereCapBoundary, ErrSliceTooSmall, ErrNotFlippable)
// are expected, driver-level rejections, not programming errors: the
// simulation driver checks CanAdd/CanDelete/CanFlip before spending a
// random draw on Metropolis acceptance, and treats these as "reject,
// try another sweep step" rather than panics.
var (
	// ErrSphereCapBoundary indicates an add move was attempted on a
	// triangle whose base sits at a spherical cap (time 0 or time
	// NSlices-1), which would grow the cap beyond its fixed 3 vertices.
	ErrSphereCapBoundary = errors.New("universe: add move would grow a spherical cap")

	// ErrSliceTooSmall indicates a delete move was attempted on a
	// vertex whose time slice has fewer than 4 vertices (already at
	// the minimum of 3).
	ErrSliceTooSmall = errors.New("universe: delete move would shrink a slice below 3 vertices")

	// ErrNotFlippable indicates a flip move was attempted on a triangle
	// whose right neighbor shares its orientation.
	ErrNotFlippable = errors.New("universe: triangle is not flippable")

	// ErrCheckFailed indicates Check found a broken structural invariant.
	ErrCheckFailed = errors.New("universe: invariant check failed")

	// ErrMalformedGeometry indicates a checkpoint file did not parse.
	ErrMalformedGeometry = errors.New("universe: malformed geometry file")
)

// errNSlicesTooSmall reports that nSlices is below the minimum of 3
// needed for a valid periodic strip.
func errNSlicesTooSmall(nSlices int) error {
	return errors.Errorf("universe: nSlices must be >= 3, got %d", nSlices)
}
