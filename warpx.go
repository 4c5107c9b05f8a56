package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/GivenChen/WarpX/lib/config"
	"github.com/GivenChen/WarpX/lib/error"
	"github.com/GivenChen/WarpX/lib/geom"
	"github.com/GivenChen/WarpX/lib/injector"
	"github.com/GivenChen/WarpX/lib/particles"
	"github.com/GivenChen/WarpX/lib/partition"
	"github.com/GivenChen/WarpX/lib/pusher"
	"github.com/GivenChen/WarpX/lib/snapshot"
	"github.com/GivenChen/WarpX/lib/telemetry"
	"github.com/GivenChen/WarpX/lib/thread"
)

func main() {
	if len(os.Args) != 3 {
		error.External("Usage:\n    $ warpx <mode> <config file>\nwhere <mode> is 'check' or 'step'.")
	}
	mode, configFile := os.Args[1], os.Args[2]

	cfg, err := config.Read(configFile)
	if err != nil {
		error.External("%s", err.Error())
	}

	switch mode {
	case "check":
		fmt.Println("No errors detected.")
	case "step":
		Step(cfg)
	default:
		error.External("You attempted to run WarpX in the mode '%s', but the only valid modes are 'check' and 'step'.", mode)
	}
}

// Step runs one demonstration timestep at the configured precision:
// inject a tile of particles, push them, partition them into the buffer
// regions, and write telemetry and an optional snapshot.
func Step(cfg *config.Config) {
	thread.Set(cfg.Threads)
	if cfg.Precision == "single" {
		step[float32](cfg)
	} else {
		step[float64](cfg)
	}
}

func step[T particles.Real](cfg *config.Config) {
	pool := thread.NewPool(0)
	g := geom.NewGeometry(cfg.Lo, cfg.Hi, cfg.Cells)
	bounds := geom.NewRegionBounds(
		cfg.Lo[0], cfg.Hi[0], cfg.Lo[1], cfg.Hi[1], cfg.Lo[2], cfg.Hi[2],
	)
	inj := injector.NewRegularInjector(cfg.Mode, bounds, [3]int{ 2, 2, 2 })
	rng := injector.NewRNG(uint64(time.Now().UnixNano()))

	tile := particles.NewTile[T](0)
	fillTile(tile, inj, g, rng, cfg.SpeedOfLight)

	pusher.PushTile(tile, cfg.Dt, cfg.SpeedOfLight, cfg.Mode, pool)

	currentMasks := geom.NewEdgeMask(cfg.Cells, cfg.CurrentBufferWidth)
	gatherMasks := geom.NewEdgeMask(cfg.Cells, cfg.GatherBufferWidth)
	pcfg := &partition.Config{
		CurrentBufferWidth: cfg.CurrentBufferWidth,
		GatherBufferWidth:  cfg.GatherBufferWidth,
		DepositOnMainGrid:  cfg.DepositOnMainGrid,
		GatherFromMainGrid: cfg.GatherFromMainGrid,
	}

	col, err := telemetry.NewCollector(cfg.OutputDir)
	if err != nil {
		error.External("%s", err.Error())
	}

	start := time.Now()
	counts := partition.InBuffers(tile, 1, g, currentMasks, gatherMasks, pcfg, pool)
	col.Add(telemetry.Record{
		Step: 0, Level: 1, NP: tile.Len(),
		NFineCurrent: counts.NFineCurrent, NFineGather: counts.NFineGather,
		Micros: time.Since(start).Microseconds(),
	})

	fmt.Printf("np = %d, nfine_current = %d, nfine_gather = %d\n",
		tile.Len(), counts.NFineCurrent, counts.NFineGather)

	if err := col.Close(); err != nil {
		error.External("%s", err.Error())
	}
	if err := cfg.Write(cfg.OutputDir); err != nil {
		error.External("%s", err.Error())
	}
	if cfg.WriteSnapshots && cfg.OutputDir != "" {
		fname := filepath.Join(cfg.OutputDir, "tile.wxs")
		if err := snapshot.Write(fname, tile); err != nil {
			error.External("%s", err.Error())
		}
	}
}

// fillTile injects particles cell by cell with the injector's lattice,
// skipping lattice points that land outside the plasma region, and gives
// each particle a small random momentum.
func fillTile[T particles.Real](
	tile *particles.Tile[T], inj *injector.PositionInjector, g *geom.Geometry,
	rng *injector.RNG, c float64,
) {
	refFac := [3]int{ 1, 1, 1 }
	npc := inj.NumParticlesPerCell(refFac)

	id := uint64(0)
	for k := 0; k < g.Cells[2]; k++ {
		for j := 0; j < g.Cells[1]; j++ {
			for i := 0; i < g.Cells[0]; i++ {
				for iPart := 0; iPart < npc; iPart++ {
					u, v, w := inj.UnitBox(iPart, refFac, rng)
					x := g.Lo[0] + (float64(i)+u)*g.CellSize[0]
					y := g.Lo[1] + (float64(j)+v)*g.CellSize[1]
					z := g.Lo[2] + (float64(k)+w)*g.CellSize[2]
					if !inj.InsideBounds(x, y, z) {
						continue
					}
					tile.Append(id, T(x), T(y), T(z),
						T((rng.Uniform()-0.5)*0.1*c),
						T((rng.Uniform()-0.5)*0.1*c),
						T((rng.Uniform()-0.5)*0.1*c), 1)
					id++
				}
			}
		}
	}
}
