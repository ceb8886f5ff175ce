package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kilnforge/meshrepair/repair"
)

// fileConfig is the YAML shape of the --config tunables file. Every
// field is optional; a zero value leaves the driver's default in
// place (repair.Option already treats <=0 as "use the default").
type fileConfig struct {
	QuantizePrecision       int `yaml:"quantize_precision"`
	NonManifoldIterationCap int `yaml:"nonmanifold_iteration_cap"`
	HoleFillIterationCap    int `yaml:"hole_fill_iteration_cap"`
	StuckThreshold          int `yaml:"stuck_threshold"`
	LoopPathCap             int `yaml:"loop_path_cap"`
	ProgressEvery           int `yaml:"progress_every"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// options turns the decoded tunables into repair.Option values.
func (c fileConfig) options() []repair.Option {
	return []repair.Option{
		repair.WithQuantizePrecision(c.QuantizePrecision),
		repair.WithNonManifoldIterationCap(c.NonManifoldIterationCap),
		repair.WithHoleFillIterationCap(c.HoleFillIterationCap),
		repair.WithStuckThreshold(c.StuckThreshold),
		repair.WithLoopPathCap(c.LoopPathCap),
		repair.WithProgressEvery(c.ProgressEvery),
	}
}
