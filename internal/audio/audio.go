// Package audio synthesizes the game's sound effects and background music
// with beep. No sample assets: every sound is generated from sine tones at
// startup, mixed into a single speaker stream.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sound identifies one of the synthesized sound effects.
type Sound int

const (
	SoundBrickBreak Sound = iota
	SoundPaddleHit
	SoundPowerUpDrop
	SoundPowerUpCatch
	SoundLifeLost
	SoundLevelClear
	SoundGameOver
)

// note is one step of a tone sequence.
type note struct {
	freq float64
	ms   int
}

// soundPatterns maps each Sound to its tone sequence.
var soundPatterns = map[Sound][]note{
	SoundBrickBreak:   {{880, 60}},
	SoundPaddleHit:    {{440, 40}},
	SoundPowerUpDrop:  {{660, 80}},
	SoundPowerUpCatch: {{523.25, 70}, {783.99, 90}},
	SoundLifeLost:     {{330, 120}, {220, 180}},
	SoundLevelClear:   {{523.25, 90}, {659.25, 90}, {783.99, 90}, {1046.5, 160}},
	SoundGameOver:     {{392, 150}, {329.63, 150}, {261.63, 150}, {196, 300}},
}

// Engine owns the speaker and plays effects and music. All methods are
// no-ops before Start or after Close, so callers never need to gate on
// audio availability.
type Engine struct {
	mu        sync.Mutex
	started   bool
	musicOn   bool
	musicCtrl *beep.Ctrl
}

// NewEngine creates an engine. Start must be called before any playback.
func NewEngine(musicOn bool) *Engine {
	return &Engine{musicOn: musicOn}
}

// Start initializes the speaker and, if enabled, starts the looping
// background music. Failure to open the audio device is not fatal: the
// engine logs and stays silent.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return fmt.Errorf("audio: engine already started")
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Warn("audio unavailable, continuing silent", "err", err)
		return nil
	}
	e.started = true

	if e.musicOn {
		e.musicCtrl = &beep.Ctrl{Streamer: newMusicStreamer()}
		speaker.Play(&effects.Volume{
			Streamer: e.musicCtrl,
			Base:     2,
			Volume:   -2, // Keep music under the effects
		})
	}
	return nil
}

// Play queues a sound effect. Safe to call from the game loop every frame.
func (e *Engine) Play(s Sound) {
	e.mu.Lock()
	started := e.started
	e.mu.Unlock()
	if !started {
		return
	}

	pattern, ok := soundPatterns[s]
	if !ok {
		panic(fmt.Sprintf("audio: invalid sound %d", int(s)))
	}

	streamers := make([]beep.Streamer, 0, len(pattern))
	for _, n := range pattern {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			log.Warn("tone generation failed", "freq", n.freq, "err", err)
			return
		}
		streamers = append(streamers, beep.Take(sampleRate.N(time.Duration(n.ms)*time.Millisecond), tone))
	}
	speaker.Play(beep.Seq(streamers...))
}

// SetMusicPaused pauses or resumes the background music, mirroring the
// game's pause state.
func (e *Engine) SetMusicPaused(paused bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.started || e.musicCtrl == nil {
		return
	}
	speaker.Lock()
	e.musicCtrl.Paused = paused
	speaker.Unlock()
}

// Close shuts the speaker down.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.started {
		return
	}
	e.started = false
	speaker.Close()
}
