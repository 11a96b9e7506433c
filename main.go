package main

import (
	"flag"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ageofpanda/assets"
	"github.com/milk9111/ageofpanda/levels"
	"github.com/milk9111/ageofpanda/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and tuning hot reload")
	mute := flag.Bool("mute", false, "disable sound")
	levelName := flag.String("level", "", "level to start on (name from levels/, e.g. lighthouse)")
	tuningName := flag.String("tuning", prefabs.TuningFile, "tuning prefab in prefabs/")
	scale := flag.Int("scale", 3, "window scale")
	flag.Parse()

	tuning, err := prefabs.LoadTuning(*tuningName)
	if err != nil {
		log.Fatalf("load tuning: %v", err)
	}

	maps, err := levels.LoadAll(tuning)
	if err != nil {
		log.Fatalf("load levels: %v", err)
	}

	game, err := NewGame(GameOptions{
		Maps:       maps,
		Tuning:     tuning,
		TuningName: *tuningName,
		StartLevel: *levelName,
		Debug:      *debug,
		Sink:       assets.NewSoundBank(*mute),
	})
	if err != nil {
		log.Fatalf("new game: %v", err)
	}
	defer game.Close()

	ebiten.SetWindowSize(screenWidth*(*scale), screenHeight*(*scale))
	ebiten.SetWindowTitle("Age of Panda")
	ebiten.SetTPS(ticksPerSecond(tuning.FrameDuration))

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func ticksPerSecond(frame time.Duration) int {
	if frame <= 0 {
		return ebiten.DefaultTPS
	}
	return int(math.Round(float64(time.Second) / float64(frame)))
}
