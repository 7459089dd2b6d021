// Package game wires the field simulation, contour extraction, telemetry and
// rendering into a per-frame loop.
package game

import (
	"fmt"
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/isofield/components"
	"github.com/pthm-cable/isofield/config"
	"github.com/pthm-cable/isofield/field"
	"github.com/pthm-cable/isofield/isoline"
	"github.com/pthm-cable/isofield/renderer"
	"github.com/pthm-cable/isofield/systems"
	"github.com/pthm-cable/isofield/telemetry"
	"github.com/pthm-cable/isofield/ui"
)

// Options configures game construction.
type Options struct {
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
	StepsPerUpdate int

	// Overrides for config values (0 = use config)
	GridWidth  int
	GridHeight int
	Isolines   int // -1 = use config
}

// Game holds the complete visualizer state.
type Game struct {
	world *ecs.World

	ballMapper *ecs.Map3[components.Position, components.Velocity, components.Ball]
	ballFilter *ecs.Filter3[components.Position, components.Velocity, components.Ball]
	motion     *systems.MotionSystem

	grid     *field.Grid
	fld      *field.Field
	sampled  *field.SampledField
	contours *isoline.ContourSet

	isolines int
	speed    float32

	// Telemetry
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager
	logStats  bool

	// Rendering
	mesh    *renderer.MeshRenderer
	contour *renderer.ContourRenderer
	panel   *ui.Panel

	// State
	tick           int32
	simTime        float64
	paused         bool
	stepsPerUpdate int
	headless       bool

	screenWidth, screenHeight float32
}

// NewGame creates a game with default options.
func NewGame() (*Game, error) {
	return NewGameWithOptions(Options{StepsPerUpdate: 1, Isolines: -1})
}

// NewGameWithOptions creates a game instance from the global config and the
// given options.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	gridW := cfg.Grid.Width
	if opts.GridWidth > 0 {
		gridW = opts.GridWidth
	}
	gridH := cfg.Grid.Height
	if opts.GridHeight > 0 {
		gridH = opts.GridHeight
	}
	isolines := cfg.Isolines.Count
	if opts.Isolines >= 0 {
		isolines = opts.Isolines
	}
	if isolines < 0 {
		return nil, fmt.Errorf("game: isoline count must be non-negative, got %d", isolines)
	}

	grid, err := field.NewGrid(gridW, gridH)
	if err != nil {
		return nil, err
	}

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	world := ecs.NewWorld()

	g := &Game{
		world:          world,
		ballMapper:     ecs.NewMap3[components.Position, components.Velocity, components.Ball](world),
		ballFilter:     ecs.NewFilter3[components.Position, components.Velocity, components.Ball](world),
		grid:           grid,
		fld:            field.New(nil, float32(cfg.Field.Scale), float32(cfg.Field.Bound)),
		isolines:       isolines,
		speed:          float32(cfg.Field.Speed),
		logStats:       opts.LogStats,
		stepsPerUpdate: steps,
		headless:       opts.Headless,
		screenWidth:    cfg.Derived.ScreenW32,
		screenHeight:   cfg.Derived.ScreenH32,
	}

	g.motion = systems.NewMotionSystem(world, float32(cfg.Field.Bound))

	// Spawn one entity per configured source
	for _, s := range cfg.Field.Sources {
		pos := components.Position{X: float32(s.X), Y: float32(s.Y)}
		vel := components.Velocity{X: float32(s.VX), Y: float32(s.VY)}
		ball := components.Ball{R: float32(s.R), C: float32(s.C)}
		g.ballMapper.NewEntity(&pos, &vel, &ball)
	}

	// Telemetry
	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	g.collector = telemetry.NewCollector(statsWindow)
	g.perf = telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)

	g.output, err = telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := g.output.WriteConfig(cfg); err != nil {
		slog.Warn("failed to write config snapshot", "error", err)
	}

	if !opts.Headless {
		g.mesh = renderer.NewMeshRenderer()
		g.contour = renderer.NewContourRenderer()
		g.panel = ui.NewPanel(ui.Limits{
			MinGridW:    float32(cfg.Grid.MinWidth),
			MaxGridW:    float32(cfg.Grid.MaxWidth),
			MinGridH:    float32(cfg.Grid.MinHeight),
			MaxGridH:    float32(cfg.Grid.MaxHeight),
			MaxIsolines: float32(cfg.Isolines.Max),
			MaxSpeed:    float32(cfg.Field.MaxSpeed),
		})
	}

	// First sample so the initial frame has buffers to draw
	g.syncSources()
	g.sampled = field.Sample(g.grid, g.fld)
	g.contours = &isoline.ContourSet{}

	return g, nil
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Grid returns the current sample grid.
func (g *Game) Grid() *field.Grid {
	return g.grid
}

// Contours returns the contour set extracted on the last tick.
func (g *Game) Contours() *isoline.ContourSet {
	return g.contours
}

// UpdateHeadless runs simulation steps without any input or rendering.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// Update handles input and runs the configured number of simulation steps.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}

	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// simulationStep runs a single tick: source motion, grid sampling, contour
// extraction, telemetry.
func (g *Game) simulationStep() {
	cfg := config.Cfg()
	dt := cfg.Derived.DT32 * g.speed

	g.perf.StartTick()

	g.perf.StartPhase(telemetry.PhaseMotion)
	g.motion.Update(dt)
	g.syncSources()

	g.perf.StartPhase(telemetry.PhaseSample)
	g.sampled = field.Sample(g.grid, g.fld)

	g.perf.StartPhase(telemetry.PhaseExtract)
	contours, err := isoline.Extract(g.grid, g.sampled, g.isolines)
	if err != nil {
		// Count is clamped at every entry point; failing here is a bug.
		slog.Error("contour extraction failed", "error", err)
	} else {
		g.contours = contours
	}

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.tick++
	g.simTime += float64(cfg.Physics.DT)
	g.recordTelemetry()

	g.perf.EndTick()
}

// syncSources snapshots the ECS source entities into the field for
// evaluation. Query order is stable, so the snapshot is deterministic.
func (g *Game) syncSources() {
	g.fld.Sources = g.fld.Sources[:0]

	query := g.ballFilter.Query()
	for query.Next() {
		pos, vel, ball := query.Get()
		g.fld.Sources = append(g.fld.Sources, field.Source{
			Pos: field.Vec2{X: pos.X, Y: pos.Y},
			Vel: field.Vec2{X: vel.X, Y: vel.Y},
			R:   ball.R,
			C:   ball.C,
		})
	}
}

// recordTelemetry records the tick and flushes window stats when due.
func (g *Game) recordTelemetry() {
	g.collector.Record(telemetry.FrameStats{
		Tick:            g.tick,
		SimTime:         g.simTime,
		GridWidth:       g.grid.Width,
		GridHeight:      g.grid.Height,
		Isolines:        g.isolines,
		MinValue:        float64(g.sampled.Min),
		MaxValue:        float64(g.sampled.Max),
		ContourVertices: len(g.contours.Positions),
		ContourSegments: g.contours.Segments(),
	})

	if !g.collector.WindowElapsed(g.simTime) {
		return
	}

	ws := g.collector.Flush(g.tick, g.simTime)
	if g.logStats {
		ws.LogStats()
	}
	if err := g.output.WriteTelemetry(ws); err != nil {
		slog.Warn("telemetry write failed", "error", err)
	}

	perfStats := g.perf.Stats()
	if g.logStats {
		perfStats.LogStats()
	}
	if err := g.output.WritePerf(perfStats, g.tick); err != nil {
		slog.Warn("perf write failed", "error", err)
	}
}

// SetGridSize rebuilds the sample grid at the given resolution, clamped to
// the configured bounds. Resizing is always a full reconstruction.
func (g *Game) SetGridSize(w, h int) {
	cfg := config.Cfg()
	w = clamp(w, cfg.Grid.MinWidth, cfg.Grid.MaxWidth)
	h = clamp(h, cfg.Grid.MinHeight, cfg.Grid.MaxHeight)
	if w == g.grid.Width && h == g.grid.Height {
		return
	}

	grid, err := field.NewGrid(w, h)
	if err != nil {
		// Clamp bounds are validated positive at config load.
		slog.Error("grid rebuild failed", "error", err)
		return
	}
	g.grid = grid
	g.sampled = field.Sample(g.grid, g.fld)

	slog.Debug("grid resized", "width", w, "height", h)
}

// SetIsolines sets the number of contour levels, clamped to [0, max].
func (g *Game) SetIsolines(n int) {
	g.isolines = clamp(n, 0, config.Cfg().Isolines.Max)
}

// Isolines returns the current contour level count.
func (g *Game) Isolines() int {
	return g.isolines
}

// Unload releases run resources.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Warn("closing output failed", "error", err)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
