package assets

import (
	"encoding/binary"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/ageofpanda/system"
)

// maxTone caps synthesized fallbacks; the nominal durations of the long
// sounds are far longer than a beep should be.
const maxTone = 400 * time.Millisecond

var toneFrequencies = map[system.SoundID]float64{
	system.SoundWalk1:     180,
	system.SoundWalk2:     200,
	system.SoundWalk3:     170,
	system.SoundWalk4:     210,
	system.SoundJump:      330,
	system.SoundFallMild:  260,
	system.SoundFallHeavy: 196,
	system.SoundDown:      147,
	system.SoundExplosion: 82,
	system.SoundKick:      140,
	system.SoundKickBox:   110,
}

// SoundBank plays simulation sounds through ebiten/audio. Each sound gets one
// player, built on first use from assets/sounds/<name>.wav or, when that file
// does not exist, from a synthesized tone. Samples are cut at the sound's
// Duration.
type SoundBank struct {
	Muted  bool
	Volume float64

	ctx     *audio.Context
	players map[system.SoundID]*audio.Player
}

func NewSoundBank(muted bool) *SoundBank {
	return &SoundBank{
		Muted:   muted,
		Volume:  0.5,
		players: make(map[system.SoundID]*audio.Player),
	}
}

func (b *SoundBank) Play(s system.Sound) {
	if b == nil || b.Muted {
		return
	}
	player := b.player(s)
	if player == nil {
		return
	}
	if player.IsPlaying() {
		return
	}
	player.SetVolume(b.Volume)
	if err := player.Rewind(); err != nil {
		log.Printf("assets: rewind %s: %v", s.ID, err)
		return
	}
	player.Play()
}

func (b *SoundBank) player(s system.Sound) *audio.Player {
	if p, ok := b.players[s.ID]; ok {
		return p
	}
	if b.ctx == nil {
		b.ctx = Context()
	}

	p := b.ctx.NewPlayerFromBytes(b.pcm(s, b.ctx.SampleRate()))
	b.players[s.ID] = p
	return p
}

// pcm returns the samples for s, never longer than s.Duration.
func (b *SoundBank) pcm(s system.Sound, sampleRate int) []byte {
	pcm, err := LoadPCM(soundPath(s.ID.String()), sampleRate)
	if err != nil {
		log.Printf("assets: sound %s: %v; using a tone", s.ID, err)
		return Tone(toneFrequencies[s.ID], min(s.Duration, maxTone), sampleRate)
	}
	return TrimPCM(pcm, s.Duration, sampleRate)
}

// Tone renders a decaying sine wave as 16-bit little-endian stereo PCM.
func Tone(freq float64, d time.Duration, sampleRate int) []byte {
	if freq <= 0 || d <= 0 || sampleRate <= 0 {
		return nil
	}
	n := int(d.Seconds() * float64(sampleRate))
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		env := (1 - t) * (1 - t)
		v := int16(math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * env * 0.3 * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
