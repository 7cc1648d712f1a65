// Command cdtmc runs a 2D Causal Dynamical Triangulations Monte Carlo
// simulation: construct or import a triangulation, grow and thermalize
// it under the Metropolis move set, then take measurement sweeps,
// writing each registered observable's output under --output-dir.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/plan-systems/klog"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/cdt2d/config"
	"github.com/katalvlaran/cdt2d/simulation"
	"github.com/katalvlaran/cdt2d/universe"
)

// geometryFilename implements the spec's checkpoint naming convention:
// geom/geometry-v<targetVolume>-t<slices>-s<seed>[-sphere].dat.
func geometryFilename(dir string, cfg config.Config) string {
	suffix := ""
	if cfg.Sphere {
		suffix = "-sphere"
	}
	return fmt.Sprintf("%s/geometry-v%d-t%d-s%d%s.dat", dir, cfg.TargetVolume, cfg.Slices, cfg.Seed, suffix)
}

func main() {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "1")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	defer klog.Flush()

	if err := run(os.Args[1:]); err != nil {
		klog.Errorf("cdtmc: %v", err)
		klog.Flush()
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	capacity := universe.DefaultCapacity(cfg.TargetVolume)

	var u *universe.Universe
	imported := cfg.ImportGeom != ""
	if imported {
		f, openErr := os.Open(cfg.ImportGeom)
		switch {
		case os.IsNotExist(openErr):
			klog.Infof("import file %s not found, constructing fresh triangulation instead", cfg.ImportGeom)
			imported = false
			u, err = universe.New(cfg.Slices, cfg.Sphere, capacity)
			if err != nil {
				return err
			}
		case openErr != nil:
			return openErr
		default:
			defer f.Close()
			u, err = universe.Import(f, cfg.Sphere, capacity)
			if err != nil {
				return err
			}
			klog.Infof("imported geometry from %s: %d vertices, %d triangles", cfg.ImportGeom, u.VertexCount(), u.Volume())
		}
	} else {
		u, err = universe.New(cfg.Slices, cfg.Sphere, capacity)
		if err != nil {
			return err
		}
		klog.Infof("constructed fresh triangulation: %d slices, sphere=%v", cfg.Slices, cfg.Sphere)
	}

	geomDir := cfg.OutputDir + "/geom"
	reg := prometheus.NewRegistry()
	sim := simulation.New(u, simulation.Config{
		Lambda:         cfg.Lambda,
		Epsilon:        cfg.Epsilon,
		TargetVolume:   cfg.TargetVolume,
		Seed:           cfg.Seed,
		CheckpointPath: geometryFilename(geomDir, cfg),
	}, reg)

	observableRNG := simulation.DeriveRNG(cfg.Seed, simulation.StreamObservables)
	sim.Register(simulation.NewVolumeProfileObservable(cfg.OutputDir, cfg.FileID))
	sim.Register(simulation.NewHausdorffObservable(cfg.OutputDir, cfg.FileID, observableRNG, cfg.HausdorffMax))
	sim.Register(simulation.NewRicciObservable(cfg.OutputDir, cfg.FileID))

	return sim.Run(cfg.Measurements, imported)
}
