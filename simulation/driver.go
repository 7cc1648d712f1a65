package simulation

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/cdt2d/universe"
)

// checkpointEvery is how many measurement sweeps elapse between
// automatic checkpoint exports, in addition to the one taken right
// after grow/thermalize.
const checkpointEvery = 10

// moveKind identifies which of the three ergodic moves attemptMove
// executed, or none if the attempt was rejected.
type moveKind int

const (
	moveNone moveKind = iota
	moveKindAdd
	moveKindDelete
	moveKindFlip
)

// Config holds the run parameters a Simulation needs beyond the
// Universe itself.
type Config struct {
	Lambda       float64 // cosmological constant; ln(2) is the standard 2D CDT value
	Epsilon      float64 // volume-fixing potential strength; 0 disables soft fixing
	TargetVolume int     // 0 disables volume fixing and the grow phase
	Seed         int64
	// CheckpointPath, when non-empty, is overwritten with the current
	// geometry (in the §6 checkpoint format) right after grow/thermalize
	// and every checkpointEvery measurement sweeps thereafter. Empty
	// disables automatic checkpointing.
	CheckpointPath string
	// MoveFreqs weights {add-or-delete, flip} move-type selection. The
	// zero value is treated as {1, 1}, matching the original's fixed
	// 50/50 split between the two move families.
	MoveFreqs [2]int
}

func (c Config) moveFreqs() [2]int {
	if c.MoveFreqs == [2]int{} {
		return [2]int{1, 1}
	}
	return c.MoveFreqs
}

// Simulation drives the Metropolis Markov chain over one
// universe.Universe. It owns two independent RNG streams (its own
// move/accept draws, and the stream handed to Universe for candidate
// selection) and any registered Observables.
type Simulation struct {
	u   *universe.Universe
	cfg Config

	driverRNG   *rand.Rand
	universeRNG *rand.Rand

	observables []Observable
	metrics     *metrics
}

// New returns a Simulation over u, seeded per cfg.Seed.
func New(u *universe.Universe, cfg Config, reg prometheus.Registerer) *Simulation {
	s := &Simulation{
		u:           u,
		cfg:         cfg,
		driverRNG:   DeriveRNG(cfg.Seed, StreamDriver),
		universeRNG: DeriveRNG(cfg.Seed, StreamUniverse),
	}
	if reg != nil {
		s.metrics = newMetrics(reg)
	}
	return s
}

// Register adds an Observable to the set measured at every sweep.
func (s *Simulation) Register(o Observable) {
	s.observables = append(s.observables, o)
}

// Run clears every registered observable's output, grows and
// thermalizes the triangulation if it was not imported, then performs
// measurements sweeps, measuring every registered Observable after
// each.
func (s *Simulation) Run(measurements int, imported bool) error {
	for _, o := range s.observables {
		if err := o.Clear(); err != nil {
			return err
		}
	}
	if measurements > 0 && len(s.observables) == 0 {
		return ErrNoObservables
	}

	if !imported {
		s.grow()
		s.thermalize()
		if err := s.writeCheckpoint(); err != nil {
			return err
		}
	}

	for i := 0; i < measurements; i++ {
		s.sweep()
		klog.V(1).Infof("measurement sweep %d/%d, volume=%d", i+1, measurements, s.u.Volume())

		snap := s.u.Rebuild()
		for _, o := range s.observables {
			if err := o.Measure(snap); err != nil {
				return err
			}
		}

		if (i+1)%checkpointEvery == 0 {
			if err := s.writeCheckpoint(); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeCheckpoint overwrites cfg.CheckpointPath with the current
// geometry in the §6 checkpoint format. A no-op when CheckpointPath is
// empty.
func (s *Simulation) writeCheckpoint() error {
	if s.cfg.CheckpointPath == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.cfg.CheckpointPath), 0o755); err != nil {
		return errors.Wrapf(err, "simulation: creating checkpoint directory for %s", s.cfg.CheckpointPath)
	}
	f, err := os.Create(s.cfg.CheckpointPath)
	if err != nil {
		return errors.Wrapf(err, "simulation: creating checkpoint %s", s.cfg.CheckpointPath)
	}
	defer f.Close()
	if err := s.u.Export(f); err != nil {
		return errors.Wrapf(err, "simulation: exporting checkpoint %s", s.cfg.CheckpointPath)
	}
	klog.Infof("wrote checkpoint to %s", s.cfg.CheckpointPath)
	return nil
}

// attemptMove picks a move family by MoveFreqs, then an add/delete
// coin flip within the first family, and executes it.
func (s *Simulation) attemptMove() moveKind {
	freqs := s.cfg.moveFreqs()
	total := freqs[0] + freqs[1]
	pick := s.driverRNG.Intn(total)

	if pick < freqs[0] {
		if s.driverRNG.Intn(2) == 0 {
			if s.moveAdd() {
				return moveKindAdd
			}
		} else {
			if s.moveDelete() {
				return moveKindDelete
			}
		}
	} else if s.moveFlip() {
		return moveKindFlip
	}
	return moveNone
}

// moveAdd attempts one (2,4) move via bookkeeping Metropolis
// acceptance (2D CDT action, Eq. 19 of the standard reference).
func (s *Simulation) moveAdd() bool {
	n0 := float64(s.u.VertexCount())
	n0Four := float64(s.u.FourVertexCount())

	ar := n0 / (n0Four + 1.0) * math.Exp(-2*s.cfg.Lambda)
	if s.cfg.TargetVolume > 0 {
		expEps := math.Exp(2 * s.cfg.Epsilon)
		if s.u.Volume() < s.cfg.TargetVolume {
			ar *= expEps
		} else {
			ar *= 1 / expEps
		}
	}

	t := s.u.PickAddCandidate(s.universeRNG)
	accepted := s.u.CanAdd(t) == nil && s.acceptMetropolis(ar)
	s.metrics.recordMove("add", accepted)
	if !accepted {
		return false
	}

	s.u.AddMove(t)
	s.recordGauges()
	return true
}

// moveDelete attempts one (4,2) move (Eq. 20).
func (s *Simulation) moveDelete() bool {
	if s.u.FourVertexCount() == 0 {
		s.metrics.recordMove("delete", false)
		return false
	}

	n0 := float64(s.u.VertexCount())
	n0Four := float64(s.u.FourVertexCount())

	ar := n0Four / (n0 - 1.0) * math.Exp(2*s.cfg.Lambda)
	if s.cfg.TargetVolume > 0 {
		expEps := math.Exp(2 * s.cfg.Epsilon)
		if s.u.Volume() < s.cfg.TargetVolume {
			ar *= 1 / expEps
		} else {
			ar *= expEps
		}
	}

	v := s.u.PickDeleteCandidate(s.universeRNG)
	accepted := s.u.CanDelete(v) == nil && s.acceptMetropolis(ar)
	s.metrics.recordMove("delete", accepted)
	if !accepted {
		return false
	}

	s.u.DeleteMove(v)
	s.recordGauges()
	return true
}

// moveFlip attempts one (2,2) move (Eq. 22): the acceptance ratio
// depends only on how the flippable-triangle count changes, not on
// lambda or volume.
func (s *Simulation) moveFlip() bool {
	if s.u.FlippableCount() == 0 {
		s.metrics.recordMove("flip", false)
		return false
	}

	t := s.u.PickFlipCandidate(s.universeRNG)

	wa := float64(s.u.FlippableCount())
	wb := wa
	left := s.u.TriangleLeft(t)
	if s.u.TriangleType(t) == s.u.TriangleType(left) {
		wb++
	} else {
		wb--
	}
	right := s.u.TriangleRight(t)
	rightRight := s.u.TriangleRight(right)
	if s.u.TriangleType(right) == s.u.TriangleType(rightRight) {
		wb++
	} else {
		wb--
	}

	accepted := s.u.CanFlip(t) == nil && s.acceptMetropolis(wa/wb)
	s.metrics.recordMove("flip", accepted)
	if !accepted {
		return false
	}

	s.u.FlipMove(t)
	s.recordGauges()
	return true
}

// acceptMetropolis draws once against ar when ar < 1, accepting
// unconditionally when ar >= 1.
func (s *Simulation) acceptMetropolis(ar float64) bool {
	if ar >= 1.0 {
		return true
	}
	return s.driverRNG.Float64() <= ar
}

func (s *Simulation) recordGauges() {
	s.metrics.recordGauges(s.u.Volume(), s.u.FourVertexCount(), s.u.FlippableCount())
}

// sweep runs 100*targetVolume move attempts (or targetVolume*100 with
// targetVolume defaulted to the current volume when fixing is
// disabled), the standard "one sweep decorrelates the chain" batch
// size for 2D CDT, then — when volume fixing is enabled — a
// deterministic tail of further attempts until the volume snaps back
// to exactly targetVolume, so every sweep boundary leaves the
// triangulation at a known, reproducible size.
func (s *Simulation) sweep() {
	n := s.sweepSize()
	for i := 0; i < n; i++ {
		s.attemptMove()
	}

	if s.cfg.TargetVolume > 0 {
		for s.u.Volume() != s.cfg.TargetVolume {
			s.attemptMove()
		}
	}
}

func (s *Simulation) sweepSize() int {
	target := s.cfg.TargetVolume
	if target == 0 {
		target = s.u.Volume()
	}
	return 100 * target
}

// grow runs move-attempt batches of size targetVolume until the
// triangulation's volume reaches targetVolume. A no-op when
// TargetVolume is 0.
func (s *Simulation) grow() {
	if s.cfg.TargetVolume == 0 {
		return
	}
	klog.Info("growing triangulation")
	steps := 0
	for s.u.Volume() < s.cfg.TargetVolume {
		for i := 0; i < s.cfg.TargetVolume; i++ {
			s.attemptMove()
		}
		steps++
	}
	klog.Infof("grown to volume %d in %d steps", s.u.Volume(), steps)
}

// thermalize runs full sweeps until every vertex's up/down
// coordination number is at most log2(2*targetVolume) (the current
// volume stands in for targetVolume when fixing is disabled),
// removing the initial lattice's artificial regularity before
// measurement begins.
func (s *Simulation) thermalize() {
	klog.Info("thermalizing triangulation")
	target := s.cfg.TargetVolume
	if target == 0 {
		target = s.u.Volume()
	}
	coordBound := math.Log(2*float64(target)) / math.Log(2)

	steps := 0
	for {
		s.sweep()
		steps++

		maxUp, maxDown := s.maxCoordination()
		if float64(maxUp) <= coordBound && float64(maxDown) <= coordBound {
			break
		}
	}
	klog.Infof("thermalized in %d sweeps", steps)
}

// maxCoordination returns the largest up- and down-coordination
// numbers over all vertices: how many neighbors sit strictly later,
// and strictly earlier, in time (torus wraparound counted both ways).
func (s *Simulation) maxCoordination() (maxUp, maxDown int) {
	snap := s.u.Rebuild()
	for _, info := range snap.Vertices {
		var up, down int
		for _, n := range info.Neighbors {
			nTime := snap.Vertices[n].Time
			if nTime > info.Time || (info.Time == snap.NSlices-1 && nTime == 0) {
				up++
			}
			if nTime < info.Time || (info.Time == 0 && nTime == snap.NSlices-1) {
				down++
			}
		}
		if up > maxUp {
			maxUp = up
		}
		if down > maxDown {
			maxDown = down
		}
	}
	return maxUp, maxDown
}
