package app

import (
	"flag"
	"path/filepath"

	"treetop/internal/input"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim    string
	Input  string
	Random bool
	Width  int
	Height int
	Seed   int64
	Scale  int
	TPS    int
	SPS    int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:    "visibility",
		Input:  filepath.Join(input.Dir, "day08"),
		Width:  99,
		Height: 99,
		Seed:   42,
		Scale:  6,
		TPS:    60,
		SPS:    10,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.BindForest(fs)
	fs.StringVar(&c.Sim, "sim", c.Sim, "scan to animate")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.SPS, "sps", c.SPS, "scan steps per second")
}

// BindForest attaches only the flags that choose the forest.
func (c *Config) BindForest(fs *flag.FlagSet) {
	fs.StringVar(&c.Input, "input", c.Input, "forest input file")
	fs.BoolVar(&c.Random, "random", c.Random, "grow a random forest instead of reading -input")
	fs.IntVar(&c.Width, "w", c.Width, "random forest width")
	fs.IntVar(&c.Height, "h", c.Height, "random forest height")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random forest")
}
