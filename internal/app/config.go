package app

import (
	"flag"
	"strconv"
	"strings"
	"time"

	"gh-life/internal/core"
	"gh-life/internal/seed"
	"gh-life/internal/sim"
)

// Config represents the command-line parameters shared by the binaries.
type Config struct {
	Seed        string
	File        string
	Width       int
	RNG         int64
	Density     float64
	Scale       int
	TPS         int
	Interval    time.Duration
	StopOnClear bool
	Overrides   KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := seed.DefaultConfig()
	return &Config{
		Seed:     "random",
		Width:    def.Width,
		RNG:      def.Seed,
		Density:  def.Density,
		Scale:    12,
		TPS:      60,
		Interval: sim.DefaultInterval,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Seed, "seed-pattern", c.Seed, "initial pattern: "+strings.Join(seed.Names(), ", "))
	fs.StringVar(&c.File, "file", c.File, "contribution calendar SVG for the calendar pattern")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in columns (height is fixed at 7)")
	fs.Int64Var(&c.RNG, "rng", c.RNG, "seed for random patterns and cell hues")
	fs.Float64Var(&c.Density, "density", c.Density, "alive fraction for random and noise patterns")
	fs.IntVar(&c.Scale, "scale", c.Scale, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "delay between automatic generations")
	fs.BoolVar(&c.StopOnClear, "stop-on-clear", c.StopOnClear, "pause the simulation when the grid is cleared")
	fs.Var(&c.Overrides, "set", "seed option override in key=value form (repeatable)")
}

// SeedOptions converts the configuration into seed factory options.
// Explicit -set overrides win over the dedicated flags, except for the
// height, which is always the calendar depth.
func (c *Config) SeedOptions() map[string]string {
	opts := map[string]string{
		"w":       strconv.Itoa(c.Width),
		"seed":    strconv.FormatInt(c.RNG, 10),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
	}
	if c.File != "" {
		opts["file"] = c.File
	}
	for k, v := range c.Overrides.Map() {
		opts[k] = v
	}
	opts["h"] = strconv.Itoa(core.CalendarDepth)
	return opts
}

// Snapshot builds the initial grid. A calendar file implies the calendar
// pattern.
func (c *Config) Snapshot() (core.Snapshot, error) {
	name := c.Seed
	if c.File != "" && name == NewConfig().Seed {
		name = "calendar"
	}
	return seed.Build(name, c.SeedOptions())
}

// SessionConfig returns the session settings; callers fill in Scheduler and
// Sink.
func (c *Config) SessionConfig() sim.Config {
	cfg := sim.DefaultConfig()
	if c.Interval > 0 {
		cfg.Interval = c.Interval
	}
	if c.StopOnClear {
		cfg.ClearPolicy = sim.StopOnClear
	}
	return cfg
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map parses the collected pairs; entries without '=' are skipped.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}
