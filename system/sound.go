package system

import "time"

// SoundID names one sound effect. The core only reports which sound should
// play and for how long; how it is rendered is up to the sink.
type SoundID uint8

const (
	SoundWalk1 SoundID = iota
	SoundWalk2
	SoundWalk3
	SoundWalk4
	SoundJump
	SoundFallMild
	SoundFallHeavy
	SoundDown
	SoundExplosion
	SoundKick
	SoundKickBox

	soundCount
)

var soundNames = [soundCount]string{
	"walk_1",
	"walk_2",
	"walk_3",
	"walk_4",
	"jump",
	"fall_mild",
	"fall_heavy",
	"down",
	"explosion",
	"kick",
	"kick_box",
}

var soundDurations = [soundCount]time.Duration{
	200 * time.Millisecond,
	200 * time.Millisecond,
	200 * time.Millisecond,
	200 * time.Millisecond,
	1500 * time.Millisecond,
	2500 * time.Millisecond,
	2500 * time.Millisecond,
	3000 * time.Millisecond,
	3000 * time.Millisecond,
	1000 * time.Millisecond,
	1000 * time.Millisecond,
}

func (id SoundID) String() string {
	if id >= soundCount {
		return "unknown"
	}
	return soundNames[id]
}

// Duration is how long the sound is allowed to play.
func (id SoundID) Duration() time.Duration {
	if id >= soundCount {
		return 0
	}
	return soundDurations[id]
}

// SoundIDs lists every sound the simulation can emit.
func SoundIDs() []SoundID {
	ids := make([]SoundID, 0, soundCount)
	for id := SoundID(0); id < soundCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Sound is one audio event.
type Sound struct {
	ID       SoundID
	Duration time.Duration
}

func NewSound(id SoundID) Sound {
	return Sound{ID: id, Duration: id.Duration()}
}

// SoundSink receives audio events. Stages only ever write to it.
type SoundSink interface {
	Play(s Sound)
}

// SoundQueue buffers sounds until they are drained.
type SoundQueue struct {
	items []Sound
}

func (q *SoundQueue) Play(s Sound) {
	if q == nil {
		return
	}
	q.items = append(q.items, s)
}

// Drain returns all queued sounds and clears the queue.
func (q *SoundQueue) Drain() []Sound {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *SoundQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// NopSink discards every sound.
type NopSink struct{}

func (NopSink) Play(Sound) {}

func emit(sink SoundSink, id SoundID) {
	if sink == nil {
		return
	}
	sink.Play(NewSound(id))
}
