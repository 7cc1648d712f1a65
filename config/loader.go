package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Load builds a Config by layering, lowest precedence first: built-in
// defaults, an optional --config YAML file, then explicit flags in
// args. Flags not explicitly passed never override the file or the
// defaults, so a YAML file can set a field and still be overridden
// selectively from the command line.
func Load(args []string) (Config, error) {
	cfg := Default()

	flags := pflag.NewFlagSet("cdtmc", pflag.ContinueOnError)
	configPath := flags.String("config", "", "path to a YAML config file")
	sphere := flags.Bool("sphere", cfg.Sphere, "use spherical rather than toroidal spatial topology")
	slices := flags.Int("slices", cfg.Slices, "number of time slices")
	lambda := flags.Float64("lambda", cfg.Lambda, "cosmological constant")
	epsilon := flags.Float64("epsilon", cfg.Epsilon, "volume-fixing potential strength")
	targetVolume := flags.Int("target-volume", cfg.TargetVolume, "target number of triangles; 0 disables volume fixing")
	seed := flags.Int64("seed", cfg.Seed, "RNG seed")
	measurements := flags.Int("measurements", cfg.Measurements, "number of measurement sweeps")
	hausdorffMax := flags.Int("hausdorff-max", cfg.HausdorffMax, "largest geodesic ball radius sampled by the Hausdorff observable")
	fileID := flags.String("file-id", cfg.FileID, "identifier embedded in observable output filenames")
	outputDir := flags.String("output-dir", cfg.OutputDir, "directory for observable output files and checkpoints")
	importGeom := flags.String("import", cfg.ImportGeom, "path to a checkpoint file to resume from; empty builds a fresh triangulation")

	if err := flags.Parse(args); err != nil {
		return Config{}, errors.Wrap(err, "config: parsing flags")
	}

	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return Config{}, errors.Wrapf(err, "config: reading %s", *configPath)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "config: parsing %s", *configPath)
		}
	}

	if flags.Changed("sphere") {
		cfg.Sphere = *sphere
	}
	if flags.Changed("slices") {
		cfg.Slices = *slices
	}
	if flags.Changed("lambda") {
		cfg.Lambda = *lambda
	}
	if flags.Changed("epsilon") {
		cfg.Epsilon = *epsilon
	}
	if flags.Changed("target-volume") {
		cfg.TargetVolume = *targetVolume
	}
	if flags.Changed("seed") {
		cfg.Seed = *seed
	}
	if flags.Changed("measurements") {
		cfg.Measurements = *measurements
	}
	if flags.Changed("hausdorff-max") {
		cfg.HausdorffMax = *hausdorffMax
	}
	if flags.Changed("file-id") {
		cfg.FileID = *fileID
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = *outputDir
	}
	if flags.Changed("import") {
		cfg.ImportGeom = *importGeom
	}

	return cfg, cfg.Validate()
}

// Validate checks the fields Load cannot fully sanity-check via
// pflag's own type coercion.
func (c Config) Validate() error {
	if c.Slices < 3 {
		return errors.Errorf("config: slices must be >= 3, got %d", c.Slices)
	}
	if c.Measurements < 0 {
		return errors.Errorf("config: measurements must be >= 0, got %d", c.Measurements)
	}
	if c.TargetVolume < 0 {
		return errors.Errorf("config: targetVolume must be >= 0, got %d", c.TargetVolume)
	}
	return nil
}
