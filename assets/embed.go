package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed sounds/*.wav
var assetsFS embed.FS

const SampleRate = 44100

var (
	contextOnce  sync.Once
	audioContext *audio.Context
)

// Context returns the process-wide audio context, creating it on first use.
// ebiten allows only one per process.
func Context() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// LoadFile reads an asset by assets-relative path. A copy on disk under
// assets/ wins over the embedded one so sounds can be swapped without a
// rebuild.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if b, err := os.ReadFile(filepath.Join("assets", filepath.FromSlash(clean))); err == nil {
		return b, nil
	}
	return assetsFS.ReadFile(clean)
}

// LoadPCM loads an audio asset as 16-bit little-endian stereo PCM at
// sampleRate. Files that are not wav are taken to be PCM already.
func LoadPCM(path string, sampleRate int) ([]byte, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	clean := strings.ToLower(cleanAssetPath(path))
	if !strings.HasSuffix(clean, ".wav") {
		return b, nil
	}

	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode wav %q: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("assets: read wav %q: %w", path, err)
	}
	return pcm, nil
}

// TrimPCM cuts 16-bit stereo PCM to at most d. A non-positive d leaves it
// whole.
func TrimPCM(pcm []byte, d time.Duration, sampleRate int) []byte {
	if d <= 0 || sampleRate <= 0 {
		return pcm
	}
	n := int(d.Seconds()*float64(sampleRate)) * 4
	if n >= len(pcm) {
		return pcm
	}
	return pcm[:n]
}

func soundPath(name string) string {
	return "sounds/" + name + ".wav"
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	return strings.TrimPrefix(s, "assets/")
}
