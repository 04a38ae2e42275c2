// Package input reads raw terminal bytes and turns them into per-frame
// command state. Movement keys use a short hold window so held keys read
// as continuous input across frames; menus consume the raw typed bytes
// instead (login fields need letters that double as game keys).
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Left      bool // Move paddle left (left arrow, 'a', 'h')
	Right     bool // Move paddle right (right arrow, 'd', 'l')
	Pause     bool // 'p'
	Restart   bool // 'r'
	Quit      bool // 'q' (only honored outside text entry)
	Enter     bool
	Escape    bool
	Tab       bool
	Interrupt bool   // Ctrl+C, honored in every phase
	Closed    bool   // Input source ended (EOF or disconnect)
	Typed     []byte // Raw bytes this frame, for text field entry
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	left      time.Time
	right     time.Time
	pause     time.Time
	restart   time.Time
	quit      time.Time
	enter     time.Time
	escape    time.Time
	tab       time.Time
	interrupt time.Time
}

// Stream delivers input bytes via a channel and tracks key state so held
// keys persist across frames.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. The goroutine exits when the reader does.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking),
// handles arrow-key escape sequences, and builds the frame's input from
// the key hold state.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				// Reader gone: report the stream closed so the loop can
				// end the session instead of spinning on a dead channel.
				s.closed = true
				goto parse
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			case 'A', 'B': // Up/down arrows are ignored
				i += 2
				continue
			}
		}

		if b == '\x1b' {
			// Bare escape, not part of a sequence
			s.state.escape = now
			continue
		}
		applyByteToState(&s.state, b, now)
	}

	// Strip CSI sequences from the typed view so menus only see text keys.
	typed := stripEscapes(buf)

	return Input{
		Left:      now.Sub(s.state.left) < keyHoldDuration,
		Right:     now.Sub(s.state.right) < keyHoldDuration,
		Pause:     now.Sub(s.state.pause) < keyHoldDuration,
		Restart:   now.Sub(s.state.restart) < keyHoldDuration,
		Quit:      now.Sub(s.state.quit) < keyHoldDuration,
		Enter:     now.Sub(s.state.enter) < keyHoldDuration,
		Escape:    now.Sub(s.state.escape) < keyHoldDuration,
		Tab:       now.Sub(s.state.tab) < keyHoldDuration,
		Interrupt: now.Sub(s.state.interrupt) < keyHoldDuration,
		Closed:    s.closed,
		Typed:     typed,
	}
}

// Reset clears the key hold state, e.g. when switching screens so a held
// Enter does not immediately trigger on the next screen.
func Reset(s *Stream) {
	s.state = keyState{}
}

// applyByteToState updates the key state timestamps for a pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'p', 'P':
		state.pause = now
	case 'r', 'R':
		state.restart = now
	case 'q', 'Q':
		state.quit = now
	case '\n', '\r':
		state.enter = now
	case '\t':
		state.tab = now
	case 0x03: // Ctrl+C
		state.interrupt = now
	}
}

// stripEscapes removes CSI sequences from buf, returning only bytes that
// make sense as text entry (printable ASCII, backspace, delete, and the
// Ctrl+R register shortcut).
func stripEscapes(buf []byte) []byte {
	var out []byte
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b == '\x1b' {
			if i+2 < len(buf) && buf[i+1] == '[' {
				i += 2
			}
			continue
		}
		if (b >= 0x20 && b < 0x7f) || b == '\b' || b == 0x7f || b == 0x12 {
			out = append(out, b)
		}
	}
	return out
}
