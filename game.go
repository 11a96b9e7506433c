package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ageofpanda/levels"
	"github.com/milk9111/ageofpanda/prefabs"
	"github.com/milk9111/ageofpanda/system"
	"github.com/milk9111/ageofpanda/world"
)

const (
	screenWidth  = 320
	screenHeight = 240
)

type GameOptions struct {
	Maps       []*world.Map
	Tuning     world.Tuning
	TuningName string
	StartLevel string
	Debug      bool
	Sink       system.SoundSink
}

type Game struct {
	frames int
	debug  bool

	state     *world.GameState
	scheduler *system.Scheduler
	sink      system.SoundSink
	input     *Input
	camera    *Camera
	renderer  *Renderer

	tuningName string
	watcher    *prefabs.Watcher
	lastMap    int
}

func NewGame(opts GameOptions) (*Game, error) {
	if len(opts.Maps) == 0 {
		return nil, fmt.Errorf("no maps to play")
	}
	state := world.NewGameState(opts.Maps, opts.Tuning)
	if opts.StartLevel != "" {
		idx := levels.Index(opts.Maps, opts.StartLevel)
		if idx < 0 {
			return nil, fmt.Errorf("unknown level %q", opts.StartLevel)
		}
		m := opts.Maps[idx]
		y := m.StartY
		if y == 0 {
			y = opts.Tuning.Ground
		}
		state.CurrentMap = idx
		state.Player = world.NewPlayer(m.StartX, y, opts.Tuning)
	}

	sink := opts.Sink
	if sink == nil {
		sink = system.NopSink{}
	}

	g := &Game{
		debug:      opts.Debug,
		state:      state,
		scheduler:  system.DefaultScheduler(),
		sink:       sink,
		input:      NewInput(),
		camera:     NewCamera(screenWidth, 0.25),
		renderer:   NewRenderer(),
		tuningName: opts.TuningName,
		lastMap:    state.CurrentMap,
	}
	g.camera.SnapTo(state.Player.X)

	if opts.Debug {
		if _, err := os.Stat("prefabs"); err == nil {
			w, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
			if err != nil {
				log.Printf("tuning hot reload disabled: %v", err)
			} else {
				g.watcher = w
			}
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("close watcher: %v", err)
		}
	}
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()

	g.input.Update()
	if g.input.Quit {
		return ebiten.Termination
	}
	if g.input.Debug {
		g.debug = !g.debug
	}

	return g.advance(g.input.Commands())
}

// advance runs one tick and moves the camera. A failed tick leaves the state
// half-applied, so the error ends the game instead of being retried.
func (g *Game) advance(cmds []system.Command) error {
	if err := g.scheduler.Tick(g.state, cmds, g.sink); err != nil {
		return fmt.Errorf("tick %d: %w", g.state.Tick, err)
	}

	p := &g.state.Player
	if g.state.CurrentMap != g.lastMap || g.state.GameOverTicks > 0 {
		g.lastMap = g.state.CurrentMap
		g.camera.SnapTo(p.X)
	} else {
		g.camera.Update(p.X)
	}
	return nil
}

// pollWatcher applies changed tuning between ticks. Scripts and level files
// are only read when maps are built, so changes to them are just reported.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if !prefabs.IsTuningFile(name, g.tuningName) {
				log.Printf("changed %s; restart to rebuild maps", name)
				continue
			}
			t, err := prefabs.LoadTuning(g.tuningName)
			if err != nil {
				log.Printf("reload tuning: %v", err)
				continue
			}
			g.state.SetTuning(t)
			ebiten.SetTPS(ticksPerSecond(t.FrameDuration))
			log.Printf("reloaded %s", name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.state, g.camera)
	if g.debug {
		g.renderer.DrawDebug(screen, g.state, g.camera, ebiten.ActualFPS())
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return screenWidth, screenHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
