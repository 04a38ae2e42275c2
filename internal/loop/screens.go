package loop

import "sshbreak/internal/store"

// updatePostLogin handles the menu shown after login: start a game, log
// out, or quit.
func (s *State) updatePostLogin() {
	switch {
	case s.Input.Enter:
		s.StartSession()
	case s.Input.Escape:
		if s.PreAuthed {
			// SSH sessions have no login form to go back to.
			s.Running = false
			return
		}
		s.logout()
	case s.Input.Quit:
		s.Running = false
	}
}

// updatePaused resumes on pause/enter, or abandons the game back to the
// menu. Nothing else moves: game time is frozen.
func (s *State) updatePaused() {
	switch {
	case s.Input.Pause, s.Input.Enter, s.Input.Escape:
		s.Phase = PhasePlaying
	case s.Input.Quit:
		s.persistScore()
		s.Phase = PhasePostLogin
	}
}

// updateGameOver waits for a restart or a return to the menu. The final
// score was already persisted when the last life was lost.
func (s *State) updateGameOver() {
	switch {
	case s.Input.Restart, s.Input.Enter:
		s.StartSession()
	case s.Input.Quit, s.Input.Escape:
		s.Phase = PhasePostLogin
	}
}

// logout drops the player identity and returns to the login form.
func (s *State) logout() {
	s.PlayerID = store.PlayerID{}
	s.Username = ""
	s.BestScore = 0
	s.login = loginForm{}
	s.notice = ""
	s.Phase = PhaseMainMenu
}
