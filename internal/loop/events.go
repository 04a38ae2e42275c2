package loop

// Event is a discrete gameplay occurrence emitted by the update step and
// consumed by the audio sink. Each occurrence emits exactly one event.
type Event int

const (
	EventPaddleHit Event = iota
	EventBrickDestroyed
	EventPowerUpSpawned
	EventPowerUpCaught
	EventLifeLost
	EventLevelCleared
	EventGameOver
)

// String returns the event name used in logs.
func (e Event) String() string {
	switch e {
	case EventPaddleHit:
		return "paddle_hit"
	case EventBrickDestroyed:
		return "brick_destroyed"
	case EventPowerUpSpawned:
		return "powerup_spawned"
	case EventPowerUpCaught:
		return "powerup_caught"
	case EventLifeLost:
		return "life_lost"
	case EventLevelCleared:
		return "level_cleared"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// AudioSink consumes gameplay events, typically to trigger sounds. The
// loop never blocks on it.
type AudioSink interface {
	PlayEvent(e Event)
	SetMusicPaused(paused bool)
}

// NopSink is an AudioSink that discards everything. The SSH server uses
// it: sound cannot cross an SSH session.
type NopSink struct{}

func (NopSink) PlayEvent(Event)     {}
func (NopSink) SetMusicPaused(bool) {}

// emit queues an event for this frame.
func (s *State) emit(e Event) {
	s.events = append(s.events, e)
}

// drainEvents returns the events emitted since the last drain. The
// returned slice is only valid until the next call.
func (s *State) drainEvents() []Event {
	ev := s.events
	s.events = s.events[:0]
	return ev
}
