package loop

import (
	"fmt"
	"io"
	"strings"

	"sshbreak/internal/draw"
)

// drawFrame clears the screen, draws the scene to the canvas, renders the
// canvas, and overlays the UI text for the current phase.
func drawFrame(snap Snapshot, w io.Writer, canvas *draw.Canvas) error {
	draw.ClearScreen(w)
	canvas.Clear()

	// Starfield sits behind everything, menus included.
	for _, star := range snap.Stars {
		star.Draw(canvas)
	}

	switch snap.Phase {
	case PhasePlaying, PhasePaused, PhaseGameOver:
		drawScene(snap, canvas)
	}

	canvas.Render(w)
	canvas.RenderBorder(w)

	return drawUI(snap, w, canvas)
}

// drawScene draws the game objects. Paused and game-over frames show the
// frozen scene under their overlay text.
func drawScene(snap Snapshot, canvas *draw.Canvas) {
	for _, b := range snap.Bricks {
		if !b.Destroyed {
			b.Draw(canvas)
		}
	}
	for _, p := range snap.Particles {
		p.Draw(canvas)
	}
	for _, pu := range snap.PowerUps {
		if pu.Active {
			pu.Draw(canvas)
		}
	}
	if snap.Paddle != nil {
		snap.Paddle.Draw(canvas)
	}
	if snap.Ball != nil && snap.Ball.Active {
		snap.Ball.Draw(canvas)
	}
}

// drawUI writes the text overlay for the current phase. Text goes through
// a ChunkWriter so a frame's worth of cursor moves flushes in MTU-sized
// writes.
func drawUI(snap Snapshot, w io.Writer, canvas *draw.Canvas) error {
	cw := draw.NewChunkWriter(w, canvas.OffsetCol(), canvas.OffsetRow())

	switch snap.Phase {
	case PhaseMainMenu:
		drawLoginScreen(snap, cw, canvas)
	case PhasePostLogin:
		drawMenuScreen(snap, cw, canvas)
	case PhasePlaying:
		drawPlayingHUD(snap, cw, canvas)
	case PhasePaused:
		drawPlayingHUD(snap, cw, canvas)
		drawPauseOverlay(cw, canvas)
	case PhaseGameOver:
		drawPlayingHUD(snap, cw, canvas)
		drawGameOverOverlay(snap, cw, canvas)
	}

	return cw.Flush()
}

// writeCentered writes text horizontally centered on the given row.
func writeCentered(cw *draw.ChunkWriter, canvas *draw.Canvas, row int, text string) {
	col := canvas.TerminalWidth()/2 - len(text)/2
	if col < 1 {
		col = 1
	}
	cw.WriteAt(col, row, text)
}

// drawLoginScreen draws the title and the login form.
func drawLoginScreen(snap Snapshot, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	centerY := canvas.TerminalHeight() / 2

	writeCentered(cw, canvas, centerY-6, "B R E A K O U T")

	userMark, passMark := "  ", "  "
	if snap.LoginFocus == 0 {
		userMark = "> "
	} else {
		passMark = "> "
	}
	writeCentered(cw, canvas, centerY-2,
		fmt.Sprintf("%sUsername: %-20s", userMark, snap.LoginUsername))
	writeCentered(cw, canvas, centerY-1,
		fmt.Sprintf("%sPassword: %-20s", passMark, strings.Repeat("*", snap.LoginPassword)))

	if snap.Notice != "" {
		writeCentered(cw, canvas, centerY+1, snap.Notice)
	}

	writeCentered(cw, canvas, centerY+4, "TAB switch field | ENTER log in | CTRL+R register | ESC quit")
}

// drawMenuScreen draws the post-login menu.
func drawMenuScreen(snap Snapshot, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	centerY := canvas.TerminalHeight() / 2

	writeCentered(cw, canvas, centerY-4, "B R E A K O U T")
	writeCentered(cw, canvas, centerY-1, fmt.Sprintf("Welcome, %s", snap.Username))
	if snap.BestScore > 0 {
		writeCentered(cw, canvas, centerY, fmt.Sprintf("Best score: %d", snap.BestScore))
	}

	if snap.Notice != "" {
		writeCentered(cw, canvas, centerY+2, snap.Notice)
	}

	exit := "ESC log out"
	if snap.PreAuthed {
		exit = "ESC disconnect"
	}
	writeCentered(cw, canvas, centerY+4, "ENTER play | "+exit+" | Q quit")
	writeCentered(cw, canvas, centerY+5, "In game: A/D or arrows move, P pause")
}

// drawPlayingHUD draws the score line above the play field.
func drawPlayingHUD(snap Snapshot, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	termWidth := canvas.TerminalWidth()

	left := fmt.Sprintf("Score %d  Best %d", snap.Score, snap.BestScore)
	cw.WriteAt(2, 1, left)

	var tags []string
	if snap.WidenActive {
		tags = append(tags, "WIDE")
	}
	if snap.SlowActive {
		tags = append(tags, "SLOW")
	}
	if len(tags) > 0 {
		writeCentered(cw, canvas, 1, strings.Join(tags, " "))
	}

	right := fmt.Sprintf("Level %d  Lives %d", snap.Level, snap.Lives)
	cw.WriteAt(termWidth-len(right)-1, 1, right)
}

// drawPauseOverlay draws the pause text over the frozen scene.
func drawPauseOverlay(cw *draw.ChunkWriter, canvas *draw.Canvas) {
	centerY := canvas.TerminalHeight() / 2
	writeCentered(cw, canvas, centerY-1, "P A U S E D")
	writeCentered(cw, canvas, centerY+1, "P resume | Q quit to menu")
}

// drawGameOverOverlay draws the end-of-game summary.
func drawGameOverOverlay(snap Snapshot, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	centerY := canvas.TerminalHeight() / 2

	writeCentered(cw, canvas, centerY-2, "G A M E   O V E R")
	writeCentered(cw, canvas, centerY, fmt.Sprintf("Score: %d", snap.Score))
	if snap.Score > 0 && snap.Score >= snap.BestScore {
		writeCentered(cw, canvas, centerY+1, "New best score!")
	}
	if snap.Notice != "" {
		writeCentered(cw, canvas, centerY+2, snap.Notice)
	}
	writeCentered(cw, canvas, centerY+4, "R play again | Q back to menu")
}
