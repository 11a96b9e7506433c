// Command replay runs a scripted input sequence through the simulation
// without a window and reports where the player ended up.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/milk9111/ageofpanda/levels"
	"github.com/milk9111/ageofpanda/prefabs"
	"github.com/milk9111/ageofpanda/system"
	"github.com/milk9111/ageofpanda/world"
)

type Options struct {
	Script   string
	Tuning   string
	Level    string
	Realtime bool
	Verbose  bool
}

type Summary struct {
	Name    string
	Ticks   int
	Map     string
	X, Y    float64
	Health  int
	Resets  int
	Elapsed time.Duration
	Sounds  map[system.SoundID]int
}

func main() {
	var opts Options
	flag.StringVar(&opts.Script, "script", "demo_replay.yaml", "replay script in prefabs/")
	flag.StringVar(&opts.Tuning, "tuning", prefabs.TuningFile, "tuning prefab in prefabs/")
	flag.StringVar(&opts.Level, "level", "", "level to start on")
	flag.BoolVar(&opts.Realtime, "realtime", false, "pace ticks at the tuned frame rate")
	flag.BoolVar(&opts.Verbose, "v", false, "log every step")
	flag.Parse()

	sum, err := run(opts)
	if err != nil {
		log.Fatalf("replay: %v", err)
	}
	log.Printf("%s: %d ticks, map %s, x %.1f y %.1f, health %d, resets %d, took %v",
		sum.Name, sum.Ticks, sum.Map, sum.X, sum.Y, sum.Health, sum.Resets, sum.Elapsed)
	for _, id := range system.SoundIDs() {
		if n := sum.Sounds[id]; n > 0 {
			log.Printf("  %-10s x%d", id, n)
		}
	}
}

func run(opts Options) (Summary, error) {
	tuning, err := prefabs.LoadTuning(opts.Tuning)
	if err != nil {
		return Summary{}, err
	}
	spec, err := prefabs.LoadReplaySpec(opts.Script)
	if err != nil {
		return Summary{}, err
	}
	maps, err := levels.LoadAll(tuning)
	if err != nil {
		return Summary{}, err
	}
	state, err := newState(maps, tuning, opts.Level)
	if err != nil {
		return Summary{}, err
	}

	loop := system.NewLoop(tuning.FrameDuration)
	if !opts.Realtime {
		loop.Sleep = func(time.Duration) {}
	}
	return replay(state, spec, loop, opts.Verbose)
}

func newState(maps []*world.Map, t world.Tuning, level string) (*world.GameState, error) {
	state := world.NewGameState(maps, t)
	if level == "" {
		return state, nil
	}
	idx := levels.Index(maps, level)
	if idx < 0 {
		return nil, fmt.Errorf("unknown level %q", level)
	}
	m := maps[idx]
	y := m.StartY
	if y == 0 {
		y = t.Ground
	}
	state.CurrentMap = idx
	state.Player = world.NewPlayer(m.StartX, y, t)
	return state, nil
}

type step struct {
	ticks    int
	commands []system.Command
}

func compileSteps(spec prefabs.ReplaySpec) ([]step, error) {
	steps := make([]step, 0, len(spec.Steps))
	for i, s := range spec.Steps {
		if s.Ticks <= 0 {
			return nil, fmt.Errorf("step %d: ticks must be positive, got %d", i, s.Ticks)
		}
		cmds := make([]system.Command, 0, len(s.Commands))
		for _, name := range s.Commands {
			c, err := system.ParseCommand(name)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			cmds = append(cmds, c)
		}
		steps = append(steps, step{ticks: s.Ticks, commands: cmds})
	}
	return steps, nil
}

// replay drives state through every step on loop and tallies the sounds it
// produced.
func replay(state *world.GameState, spec prefabs.ReplaySpec, loop *system.Loop, verbose bool) (Summary, error) {
	steps, err := compileSteps(spec)
	if err != nil {
		return Summary{}, fmt.Errorf("%s: %w", spec.Name, err)
	}

	sched := system.DefaultScheduler()
	queue := &system.SoundQueue{}
	sum := Summary{Name: spec.Name, Sounds: make(map[system.SoundID]int)}

	cur, left := 0, 0
	if len(steps) > 0 {
		left = steps[0].ticks
	}
	start := time.Now()
	err = loop.Run(
		func() bool { return cur >= len(steps) },
		func() error {
			s := steps[cur]
			before := state.GameOverTicks
			if err := sched.Tick(state, s.commands, queue); err != nil {
				return fmt.Errorf("tick %d: %w", sum.Ticks, err)
			}
			sum.Ticks++
			if state.GameOverTicks > before {
				sum.Resets++
			}
			for _, snd := range queue.Drain() {
				sum.Sounds[snd.ID]++
			}

			left--
			if left == 0 {
				if verbose {
					p := &state.Player
					log.Printf("step %d %v: x %.1f y %.1f vx %.2f %s", cur, s.commands, p.X, p.Y, p.VX, p.State)
				}
				cur++
				if cur < len(steps) {
					left = steps[cur].ticks
				}
			}
			return nil
		},
	)
	sum.Elapsed = time.Since(start)
	if err != nil {
		return sum, fmt.Errorf("%s: %w", spec.Name, err)
	}

	p := &state.Player
	sum.X, sum.Y, sum.Health = p.X, p.Y, p.Health
	if m, err := state.Map(); err == nil {
		sum.Map = m.Name
	}
	return sum, nil
}
