package game

import (
	"fmt"
	"time"

	"survivors-lab/internal/assets"
	"survivors-lab/internal/commons/logger_config"
	"survivors-lab/internal/shared/input"
	"survivors-lab/internal/telemetry"
	"survivors-lab/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// maxFrameDt caps one frame's simulated time after a stall.
const maxFrameDt = 250 * time.Millisecond

type Options struct {
	// AssetDirs are searched in order for sprite sheets.
	AssetDirs []string
	// ShowHUD prints the HUD numbers over the frame.
	ShowHUD bool
}

type Game struct {
	w     *world.World
	frame world.Frame

	// fixed tick
	accum     time.Duration
	last      time.Time
	fixedStep time.Duration

	keys input.Source

	// asset loader
	loader   *assets.Loader
	assets   *AssetManager
	renderer *Renderer

	// telemetry sink
	telemetry *telemetry.Sink

	showHUD bool
}

func New(cfg world.Config, opts Options) *Game {
	g := &Game{
		w:         world.NewWorld(cfg),
		last:      time.Now(),
		fixedStep: time.Second / 60,
		keys:      Keyboard{},
		showHUD:   opts.ShowHUD,
	}
	g.frame = g.w.Frame()

	g.loader = assets.NewLoader()
	g.assets = NewAssetManager(g.loader)
	g.renderer = NewRenderer(g.assets)
	g.telemetry = telemetry.NewSink()

	// schedule loads early
	g.assets.RequestSheets(opts.AssetDirs...)
	return g
}

func (g *Game) Update() error {
	now := time.Now()
	g.assets.Poll()

	frameDt := now.Sub(g.last)
	g.last = now

	// avoid spiral of death on long pauses
	if frameDt > maxFrameDt {
		frameDt = maxFrameDt
	}
	g.accum += frameDt

	if ReadRestart() {
		logger_config.Logger.Info("restart", "elapsed", g.w.Elapsed, "level", g.w.Player.Level)
		g.w.Reset()
		g.telemetry.ResetBaseline()
		g.accum = 0
		g.frame = g.w.Frame()
		return nil
	}

	in := input.Poll(g.keys)

	// fixed-step simulation
	for g.accum >= g.fixedStep {
		g.frame = g.w.Step(float32(g.fixedStep.Seconds()), in)
		g.accum -= g.fixedStep
	}
	g.telemetry.ReportFrame(g.w.Stats, float32(frameDt.Seconds()))

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Target(screen)
	if err := world.Present(g.renderer, g.frame); err != nil {
		logger_config.Errorf("[render] %v", err)
		return
	}

	if !g.showHUD {
		return
	}
	h := g.frame.HUD
	hud := fmt.Sprintf(
		"HP: %.0f/%.0f\nLV: %d  EXP: %.0f/%.0f\nKills: %d\nTime: %.1fs",
		h.HP, h.MaxHP,
		h.Level, h.Exp, h.MaxExp,
		g.w.Stats.EnemiesKilled,
		g.w.Elapsed,
	)
	ebitenutil.DebugPrintAt(screen, hud, 8, 24)
}

func (g *Game) Layout(outsideW, outsideH int) (int, int) {
	return outsideW, outsideH
}

// Stats returns the running totals, e.g. for a final log line.
func (g *Game) Stats() world.Stats {
	return g.w.Stats
}

func (g *Game) Close() {
	if g.loader != nil {
		g.loader.Close()
		g.loader = nil
	}
	if g.telemetry != nil {
		g.telemetry.Close()
		g.telemetry = nil
	}
}
