package assets

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/milk9111/ageofpanda/system"
)

func TestTone(t *testing.T) {
	cases := []struct {
		name string
		freq float64
		d    time.Duration
		rate int
		want int
	}{
		{"tenth_second", 440, 100 * time.Millisecond, 44100, 4410 * 4},
		{"zero_freq", 0, time.Second, 44100, 0},
		{"zero_duration", 440, 0, 44100, 0},
		{"zero_rate", 440, time.Second, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Tone(c.freq, c.d, c.rate)
			if len(got) != c.want {
				t.Fatalf("expected %d bytes, got %d", c.want, len(got))
			}
		})
	}
}

func TestToneChannelsMatch(t *testing.T) {
	pcm := Tone(220, 10*time.Millisecond, 8000)
	for i := 0; i+4 <= len(pcm); i += 4 {
		l := binary.LittleEndian.Uint16(pcm[i:])
		r := binary.LittleEndian.Uint16(pcm[i+2:])
		if l != r {
			t.Fatalf("sample %d: left %d right %d", i/4, l, r)
		}
	}
	if first := binary.LittleEndian.Uint16(pcm); first != 0 {
		t.Fatalf("tone should start at zero, got %d", first)
	}
}

func TestEverySoundHasTone(t *testing.T) {
	for _, id := range system.SoundIDs() {
		if toneFrequencies[id] <= 0 {
			t.Fatalf("%s has no fallback tone", id)
		}
	}
}

func TestEmbeddedSounds(t *testing.T) {
	for _, name := range []string{"walk_1", "walk_4", "jump", "kick", "kick_box"} {
		b, err := LoadFile(soundPath(name))
		if err != nil {
			t.Fatalf("LoadFile %s: %v", name, err)
		}
		if len(b) < 44 || string(b[:4]) != "RIFF" || string(b[8:12]) != "WAVE" {
			t.Fatalf("%s is not a wav file", name)
		}
	}
	if _, err := LoadFile(soundPath("explosion")); err == nil {
		t.Fatalf("explosion should fall back to a tone")
	}
}

func TestMutedBankSkipsAudio(t *testing.T) {
	b := NewSoundBank(true)
	b.Play(system.NewSound(system.SoundJump))
	if b.ctx != nil || len(b.players) != 0 {
		t.Fatalf("muted bank should not touch the audio device")
	}
	var nilBank *SoundBank
	nilBank.Play(system.NewSound(system.SoundKick))
}

func TestCleanAssetPath(t *testing.T) {
	cases := map[string]string{
		"":                       "",
		"assets/sounds/jump.wav": "sounds/jump.wav",
		"sounds/jump.wav":        "sounds/jump.wav",
		"/x/assets/sounds/a.wav": "sounds/a.wav",
		"/tmp/b.wav":             "b.wav",
	}
	for in, want := range cases {
		if got := cleanAssetPath(in); got != want {
			t.Fatalf("cleanAssetPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTrimPCM(t *testing.T) {
	pcm := make([]byte, 44100*4)
	cases := []struct {
		name string
		d    time.Duration
		want int
	}{
		{"shorter", 100 * time.Millisecond, 4410 * 4},
		{"longer", 2 * time.Second, len(pcm)},
		{"zero", 0, len(pcm)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := len(TrimPCM(pcm, c.d, 44100)); got != c.want {
				t.Fatalf("expected %d bytes, got %d", c.want, got)
			}
		})
	}
}

func TestBankSamplesRespectDuration(t *testing.T) {
	b := NewSoundBank(false)
	jump, err := LoadPCM(soundPath("jump"), SampleRate)
	if err != nil {
		t.Fatalf("LoadPCM: %v", err)
	}
	if len(jump) == 0 || len(jump)%4 != 0 {
		t.Fatalf("decoded jump has %d bytes", len(jump))
	}

	short := system.Sound{ID: system.SoundJump, Duration: 50 * time.Millisecond}
	if got, want := len(b.pcm(short, SampleRate)), int(0.05*SampleRate)*4; got != want {
		t.Fatalf("jump cut to %d bytes, want %d", got, want)
	}
	full := system.NewSound(system.SoundJump)
	if got := len(b.pcm(full, SampleRate)); got != len(jump) {
		t.Fatalf("a short wav should play whole: %d of %d bytes", got, len(jump))
	}

	boom := system.NewSound(system.SoundExplosion)
	if got, want := len(b.pcm(boom, SampleRate)), len(Tone(82, maxTone, SampleRate)); got != want {
		t.Fatalf("explosion tone has %d bytes, want %d", got, want)
	}
}
