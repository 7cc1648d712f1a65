package config

// Config is the complete set of parameters a cdtmc run needs, whether
// they arrived from a YAML file, command-line flags, or defaults.
type Config struct {
	// Geometry.
	Sphere bool `yaml:"sphere"`
	Slices int  `yaml:"slices"`

	// Markov chain.
	Lambda       float64 `yaml:"lambda"`
	Epsilon      float64 `yaml:"epsilon"`
	TargetVolume int     `yaml:"targetVolume"`
	Seed         int64   `yaml:"seed"`

	// Run.
	Measurements int    `yaml:"measurements"`
	HausdorffMax int    `yaml:"hausdorffMax"`
	FileID       string `yaml:"fileID"`
	OutputDir    string `yaml:"outputDir"`
	ImportGeom   string `yaml:"importGeom"` // path to a checkpoint to resume from; empty builds fresh
}

// Default returns the built-in baseline a run starts from before any
// file or flag override is applied.
func Default() Config {
	return Config{
		Sphere:       false,
		Slices:       8,
		Lambda:       0.6931471805599453, // ln(2), the standard 2D CDT cosmological constant
		Epsilon:      0.01,
		TargetVolume: 1000,
		Seed:         1,
		Measurements: 100,
		HausdorffMax: 10,
		FileID:       "run",
		OutputDir:    "./output",
	}
}
