// Package audio plays the game's sound cues through the system speaker.
//
// Each cue is loaded once from a WAV file in the sounds directory and kept in
// memory. Cues without a usable file fall back to a short synthesized tone so
// the game is never silent by accident. If the speaker cannot be opened the
// player stays silent and the game runs unaffected.
package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)

	// Resampling quality passed to beep.Resample
	resampleQuality = 4
)

// format is the in-memory format of every loaded cue.
var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// tone describes the fallback sound for a cue.
type tone struct {
	freq     float64
	duration time.Duration
}

var fallbackTones = map[core.Cue]tone{
	core.CueBounce:     {660, 40 * time.Millisecond},
	core.CueBrickBreak: {880, 60 * time.Millisecond},
	core.CueLaser:      {1320, 50 * time.Millisecond},
	core.CueGameOver:   {220, 600 * time.Millisecond},
}

// Options configures a Player.
type Options struct {
	Dir     string      // Directory holding <cue>.wav files
	Enabled bool        // False builds a silent player
	Volume  float64     // Base-2 gain: 0 unchanged, -1 half amplitude
	Logger  *log.Logger // Optional; nil discards
}

// Player mixes cue sounds onto the speaker.
type Player struct {
	mu      sync.Mutex
	sounds  map[core.Cue]*beep.Buffer
	mixer   *beep.Mixer
	volume  float64
	enabled bool
	active  bool
	logger  *log.Logger
}

// New loads the cue sounds. It never fails: problems are logged and the
// affected cue uses its fallback tone.
func New(opts Options) *Player {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	p := &Player{
		sounds:  make(map[core.Cue]*beep.Buffer, core.CueCount),
		mixer:   &beep.Mixer{},
		volume:  opts.Volume,
		enabled: opts.Enabled,
		logger:  logger,
	}
	if !opts.Enabled {
		return p
	}

	for _, cue := range core.AllCues() {
		path := filepath.Join(opts.Dir, cue.FileName())
		buf, err := loadWAV(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				logger.Warn("cannot load sound", "cue", cue, "path", path, "error", err)
			}
			buf, err = synthesize(fallbackTones[cue])
			if err != nil {
				logger.Warn("cannot synthesize sound", "cue", cue, "error", err)
				continue
			}
		}
		p.sounds[cue] = buf
	}
	return p
}

// loadWAV decodes a WAV file into a buffer at the player's sample rate.
func loadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path) //#nosec G304 -- path comes from the configured sounds directory
	if err != nil {
		return nil, err
	}

	streamer, fileFormat, err := wav.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("audio: decode %s: %w", filepath.Base(path), err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if fileFormat.SampleRate != sampleRate {
		s = beep.Resample(resampleQuality, fileFormat.SampleRate, sampleRate, s)
	}

	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", filepath.Base(path), err)
	}
	return buf, nil
}

// synthesize renders a sine tone into a buffer.
func synthesize(t tone) (*beep.Buffer, error) {
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return nil, err
	}
	buf := beep.NewBuffer(format)
	buf.Append(beep.Take(sampleRate.N(t.duration), sine))
	return buf, nil
}

// Start opens the speaker. On failure the player stays silent.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.active {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		p.logger.Warn("audio unavailable, continuing without sound", "error", err)
		return err
	}
	speaker.Play(p.mixer)
	p.active = true
	p.logger.Debug("audio started", "sounds", len(p.sounds))
	return nil
}

// Play queues the sound for a cue. Unknown cues and an inactive speaker are
// ignored.
func (p *Player) Play(cue core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.active {
		return
	}
	buf, ok := p.sounds[cue]
	if !ok {
		return
	}

	s := &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   p.volume,
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Loaded reports how many cues have a sound ready.
func (p *Player) Loaded() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sounds)
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.active {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.active = false
}
