/*package config reads and validates WarpX configuration files. Files use
the gcfg (git-config style) format with [geometry], [buffers], [numerics],
and [output] sections; Read returns the resolved form the rest of the code
consumes.*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/gcfg.v1"
	"gopkg.in/yaml.v3"

	"github.com/GivenChen/WarpX/lib/geom"
)

// DefaultSpeedOfLight is the speed of light in vacuum in SI units, used
// when the config file doesn't override it.
const DefaultSpeedOfLight = 2.99792458e8

// GeometryConfig is the raw [geometry] section.
type GeometryConfig struct {
	Mode                         string
	XLo, XHi, YLo, YHi, ZLo, ZHi float64
	NX, NY, NZ                   int
}

// CheckInit validates the section after parsing.
func (g *GeometryConfig) CheckInit() error {
	if g.NX <= 0 || g.NY <= 0 || g.NZ <= 0 {
		return fmt.Errorf("The [geometry] cell counts (%d, %d, %d) must all be positive.",
			g.NX, g.NY, g.NZ)
	}
	if g.XHi <= g.XLo || g.YHi <= g.YLo || g.ZHi <= g.ZLo {
		return fmt.Errorf("The [geometry] domain [%g, %g] x [%g, %g] x [%g, %g] is empty on at least one axis.",
			g.XLo, g.XHi, g.YLo, g.YHi, g.ZLo, g.ZHi)
	}
	if g.Mode == "" {
		g.Mode = "3d"
	}
	if _, err := geom.ParseMode(g.Mode); err != nil {
		return err
	}
	return nil
}

// BuffersConfig is the raw [buffers] section.
type BuffersConfig struct {
	CurrentDepositionWidth int
	FieldGatherWidth       int
	DepositOnMainGrid      bool
	GatherFromMainGrid     bool
}

func (b *BuffersConfig) CheckInit() error {
	if b.CurrentDepositionWidth < 0 || b.FieldGatherWidth < 0 {
		return fmt.Errorf("The [buffers] widths (%d, %d) cannot be negative. Use 0 to disable a buffer.",
			b.CurrentDepositionWidth, b.FieldGatherWidth)
	}
	return nil
}

// NumericsConfig is the raw [numerics] section.
type NumericsConfig struct {
	Precision    string
	SpeedOfLight float64
	Dt           float64
	Threads      int
}

func (n *NumericsConfig) CheckInit() error {
	if n.Precision == "" {
		n.Precision = "double"
	}
	if n.Precision != "single" && n.Precision != "double" {
		return fmt.Errorf("The [numerics] precision '%s' is not valid: use 'single' or 'double'.", n.Precision)
	}
	if n.SpeedOfLight == 0 {
		n.SpeedOfLight = DefaultSpeedOfLight
	} else if n.SpeedOfLight < 0 {
		return fmt.Errorf("The [numerics] speed of light, %g, cannot be negative.", n.SpeedOfLight)
	}
	if n.Dt < 0 {
		return fmt.Errorf("The [numerics] timestep, %g, cannot be negative.", n.Dt)
	}
	if n.Threads == 0 {
		n.Threads = -1
	}
	return nil
}

// OutputConfig is the raw [output] section.
type OutputConfig struct {
	Dir       string
	Snapshots bool
}

type file struct {
	Geometry GeometryConfig
	Buffers  BuffersConfig
	Numerics NumericsConfig
	Output   OutputConfig
}

// Config is the validated, resolved configuration.
type Config struct {
	Mode  geom.Mode  `yaml:"mode"`
	Lo    [3]float64 `yaml:"lo"`
	Hi    [3]float64 `yaml:"hi"`
	Cells [3]int     `yaml:"cells"`

	CurrentBufferWidth int  `yaml:"current_buffer_width"`
	GatherBufferWidth  int  `yaml:"gather_buffer_width"`
	DepositOnMainGrid  bool `yaml:"deposit_on_main_grid"`
	GatherFromMainGrid bool `yaml:"gather_from_main_grid"`

	Precision    string  `yaml:"precision"`
	SpeedOfLight float64 `yaml:"speed_of_light"`
	Dt           float64 `yaml:"dt"`
	Threads      int     `yaml:"threads"`

	OutputDir      string `yaml:"output_dir"`
	WriteSnapshots bool   `yaml:"write_snapshots"`
}

// Read parses and validates the config file at fname.
func Read(fname string) (*Config, error) {
	f := &file{}
	if err := gcfg.ReadFileInto(f, fname); err != nil {
		return nil, err
	}

	if err := f.Geometry.CheckInit(); err != nil {
		return nil, err
	}
	if err := f.Buffers.CheckInit(); err != nil {
		return nil, err
	}
	if err := f.Numerics.CheckInit(); err != nil {
		return nil, err
	}

	mode, _ := geom.ParseMode(f.Geometry.Mode)
	return &Config{
		Mode:  mode,
		Lo:    [3]float64{ f.Geometry.XLo, f.Geometry.YLo, f.Geometry.ZLo },
		Hi:    [3]float64{ f.Geometry.XHi, f.Geometry.YHi, f.Geometry.ZHi },
		Cells: [3]int{ f.Geometry.NX, f.Geometry.NY, f.Geometry.NZ },

		CurrentBufferWidth: f.Buffers.CurrentDepositionWidth,
		GatherBufferWidth:  f.Buffers.FieldGatherWidth,
		DepositOnMainGrid:  f.Buffers.DepositOnMainGrid,
		GatherFromMainGrid: f.Buffers.GatherFromMainGrid,

		Precision:    f.Numerics.Precision,
		SpeedOfLight: f.Numerics.SpeedOfLight,
		Dt:           f.Numerics.Dt,
		Threads:      f.Numerics.Threads,

		OutputDir:      f.Output.Dir,
		WriteSnapshots: f.Output.Snapshots,
	}, nil
}

// Write saves the resolved configuration as YAML inside dir, so a run's
// output records exactly the parameters that produced it.
func (c *Config) Write(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "config.yaml"), b, 0644)
}
