package loop

import (
	"errors"

	"github.com/charmbracelet/log"

	"sshbreak/internal/store"
)

// loginForm is the main menu's username/password entry state. Tab
// switches fields, Enter logs in, Ctrl+R registers.
type loginForm struct {
	username []byte
	password []byte
	focus    int // 0 = username, 1 = password
}

const maxFieldLen = 20

// ctrlR is the register shortcut byte.
const ctrlR = 0x12

// updateMainMenu drives the login form from this frame's typed bytes.
func (s *State) updateMainMenu() {
	if s.Input.Escape {
		s.Running = false
		return
	}
	if s.Input.Tab {
		s.login.focus = 1 - s.login.focus
	}

	register := false
	for _, b := range s.Input.Typed {
		switch {
		case b == '\b' || b == 0x7f:
			s.login.eraseRune()
		case b == ctrlR:
			register = true
		case b >= 0x20 && b < 0x7f:
			s.login.typeRune(b)
		}
	}

	switch {
	case register:
		s.submitRegister()
	case s.Input.Enter:
		s.submitLogin()
	}
}

func (f *loginForm) field() *[]byte {
	if f.focus == 0 {
		return &f.username
	}
	return &f.password
}

func (f *loginForm) typeRune(b byte) {
	field := f.field()
	if len(*field) < maxFieldLen {
		*field = append(*field, b)
	}
}

func (f *loginForm) eraseRune() {
	field := f.field()
	if n := len(*field); n > 0 {
		*field = (*field)[:n-1]
	}
}

// submitLogin authenticates against the gateway. Failure re-prompts with
// a notice; it never ends the program.
func (s *State) submitLogin() {
	if s.Gateway == nil {
		// Store unavailable: degrade to guest play, nothing persists.
		s.Username = string(s.login.username)
		if s.Username == "" {
			s.Username = "guest"
		}
		s.notice = "no user store, playing as guest"
		s.Phase = PhasePostLogin
		return
	}

	id, err := s.Gateway.Authenticate(string(s.login.username), string(s.login.password))
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			s.notice = "invalid username or password"
		} else {
			s.notice = "login failed, try again"
			log.Warn("login error", "err", err)
		}
		s.login.password = s.login.password[:0]
		return
	}

	s.finishLogin(id, string(s.login.username))
}

// submitRegister creates the account and logs straight in.
func (s *State) submitRegister() {
	if s.Gateway == nil {
		s.notice = "no user store, registration unavailable"
		return
	}

	id, err := s.Gateway.Register(string(s.login.username), string(s.login.password))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserExists):
			s.notice = "username already taken"
		case errors.Is(err, store.ErrInvalidCredentials):
			s.notice = "enter a username first"
		default:
			s.notice = "registration failed, try again"
			log.Warn("register error", "err", err)
		}
		return
	}

	s.finishLogin(id, string(s.login.username))
}

// finishLogin records the player identity, loads the stored best score,
// and moves to the post-login menu. A best-score read failure degrades
// to showing no historical best.
func (s *State) finishLogin(id store.PlayerID, username string) {
	s.PlayerID = id
	s.Username = username
	s.notice = ""
	s.login.password = s.login.password[:0]

	if s.Gateway != nil {
		best, err := s.Gateway.BestScore(id)
		if err != nil {
			log.Warn("best score unavailable", "user", username, "err", err)
		} else {
			s.BestScore = best
		}
	}

	log.Info("player logged in", "user", username)
	s.Phase = PhasePostLogin
}
