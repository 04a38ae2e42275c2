package audio

import "sshbreak/internal/loop"

// Sink adapts an Engine to the game loop's event interface, mapping each
// gameplay event to its sound.
type Sink struct {
	engine *Engine
}

// NewSink wraps the engine for use as the loop's audio sink.
func NewSink(engine *Engine) *Sink {
	return &Sink{engine: engine}
}

// PlayEvent triggers the sound for a gameplay event.
func (s *Sink) PlayEvent(e loop.Event) {
	switch e {
	case loop.EventPaddleHit:
		s.engine.Play(SoundPaddleHit)
	case loop.EventBrickDestroyed:
		s.engine.Play(SoundBrickBreak)
	case loop.EventPowerUpSpawned:
		s.engine.Play(SoundPowerUpDrop)
	case loop.EventPowerUpCaught:
		s.engine.Play(SoundPowerUpCatch)
	case loop.EventLifeLost:
		s.engine.Play(SoundLifeLost)
	case loop.EventLevelCleared:
		s.engine.Play(SoundLevelClear)
	case loop.EventGameOver:
		s.engine.Play(SoundGameOver)
	}
}

// SetMusicPaused pauses or resumes the background music.
func (s *Sink) SetMusicPaused(paused bool) {
	s.engine.SetMusicPaused(paused)
}

var _ loop.AudioSink = (*Sink)(nil)
