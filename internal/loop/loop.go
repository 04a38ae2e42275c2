// Package loop runs the game: the fixed-rate Input → Update → Draw cycle,
// the screen state machine, and all gameplay rules.
package loop

import (
	"bufio"
	"io"
	"time"

	"sshbreak/internal/draw"
	"sshbreak/internal/input"
	"sshbreak/internal/store"
)

const targetFrameTime = time.Second / targetFPS

// maxFrameDelta caps the per-frame time step. A stalled connection must
// not turn into one giant physics step that tunnels the ball through
// bricks.
const maxFrameDelta = 0.1

// Render resolution caps. Beyond this the extra cells add no readable
// detail and only cost terminal bandwidth; the render area is centered
// in the spare space instead.
const (
	maxTermWidth  = 160
	maxTermHeight = 60
)

// clampTermSize clamps terminal dimensions to the max render resolution
// and computes the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = termWidth
	renderHeight = termHeight
	if renderWidth > maxTermWidth {
		renderWidth = maxTermWidth
	}
	if renderHeight > maxTermHeight {
		renderHeight = maxTermHeight
	}
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// Options configures a game session.
type Options struct {
	// Gateway persists scores and authenticates players. Nil means guest
	// play with nothing persisted.
	Gateway ScoreGateway

	// Sink receives gameplay events for audio. Nil means silent.
	Sink AudioSink

	// PreAuthed sessions skip the login form and start at the menu with
	// the given identity (SSH auth happens before the loop starts).
	PreAuthed bool
	PlayerID  store.PlayerID
	Username  string

	// TermSize reports the terminal dimensions each frame. Nil uses the
	// local stdout size.
	TermSize draw.TermSizeFunc

	// Seed for the level and power-up RNG. Zero seeds from the clock.
	Seed int64
}

// Run starts the game loop with the standard Input → Update → Draw cycle.
// It returns when the player quits or the reader is closed.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	state := NewState(opts.Gateway, opts.Seed)

	sink := opts.Sink
	if sink == nil {
		sink = NopSink{}
	}
	termSize := opts.TermSize
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}

	if opts.PreAuthed {
		state.PreAuthed = true
		state.finishLogin(opts.PlayerID, opts.Username)
	}

	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	termWidth, termHeight, err := termSize()
	if err != nil {
		return err
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, FieldWidth, FieldHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	lastTime := time.Now()
	lastPhase := state.Phase
	sink.SetMusicPaused(state.Phase != PhasePlaying)

	for state.Running {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}
		lastTime = frameStart

		// ===== INPUT PHASE =====
		state.Input = input.ReadInput(stream)
		if state.Input.Interrupt || state.Input.Closed {
			state.Running = false
			break
		}

		// ===== UPDATE PHASE =====
		if tw, th, err := termSize(); err == nil {
			rw, rh, oc, or := clampTermSize(tw, th)
			canvas.Resize(rw, rh)
			canvas.SetOffset(oc, or)
		}

		state.Update(dt)

		for _, e := range state.drainEvents() {
			sink.PlayEvent(e)
		}

		if state.Phase != lastPhase {
			// Drop held keys so the keypress that caused the transition
			// does not also fire on the new screen.
			input.Reset(stream)
			sink.SetMusicPaused(state.Phase != PhasePlaying)
			lastPhase = state.Phase
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(state.Snapshot(), w, canvas); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	// A quit or disconnect mid-game still counts the score.
	if state.Phase == PhasePlaying || state.Phase == PhasePaused {
		state.persistScore()
	}
	sink.SetMusicPaused(true)

	draw.ClearScreen(w)
	return nil
}

// Update advances the state machine by one frame.
func (s *State) Update(dt float64) {
	switch s.Phase {
	case PhaseMainMenu:
		s.updateMainMenu()
	case PhasePostLogin:
		s.updatePostLogin()
	case PhasePlaying:
		if s.Input.Pause || s.Input.Escape {
			s.Phase = PhasePaused
			return
		}
		s.updatePlaying(dt)
	case PhasePaused:
		s.updatePaused()
	case PhaseGameOver:
		s.updateGameOver()
	}
}
