// Package store persists player accounts and best scores in a JSON file.
// It is the only place that knows the storage format; the game loop talks
// to it through Authenticate / BestScore / SaveScoreIfBetter.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// PlayerID identifies a registered player independently of the username.
type PlayerID = uuid.UUID

var (
	// ErrInvalidCredentials is returned for an unknown user or wrong
	// password. Callers re-prompt; it is never fatal.
	ErrInvalidCredentials = errors.New("store: invalid credentials")

	// ErrUserExists is returned when registering a taken username.
	ErrUserExists = errors.New("store: username already taken")

	// ErrUnknownPlayer is returned for score operations on an id that was
	// never issued by this store.
	ErrUnknownPlayer = errors.New("store: unknown player id")
)

// record is the on-disk shape of one player.
type record struct {
	ID           PlayerID `json:"id"`
	PasswordHash string   `json:"password_hash"`
	BestScore    int      `json:"best_score"`
}

// Store is a file-backed user store. All methods are safe for concurrent
// use; the SSH server authenticates sessions in parallel.
type Store struct {
	mu    sync.Mutex
	path  string
	users map[string]*record // Keyed by username
	byID  map[PlayerID]*record
}

// Open loads the user store from path, creating an empty store (and its
// parent directory) if the file does not exist.
func Open(path string) (*Store, error) {
	s := &Store{
		path:  path,
		users: make(map[string]*record),
		byID:  make(map[PlayerID]*record),
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("store: create dir: %w", err)
			}
		}
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.users); err != nil {
			return nil, fmt.Errorf("store: parse %s: %w", path, err)
		}
	}
	for _, rec := range s.users {
		s.byID[rec.ID] = rec
	}
	return s, nil
}

// Register creates a new player with a bcrypt-hashed password and a fresh
// id, and persists the store.
func (s *Store) Register(username, password string) (PlayerID, error) {
	if username == "" {
		return PlayerID{}, ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return PlayerID{}, fmt.Errorf("store: hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.users[username]; taken {
		return PlayerID{}, ErrUserExists
	}

	rec := &record{
		ID:           uuid.New(),
		PasswordHash: string(hash),
	}
	s.users[username] = rec
	s.byID[rec.ID] = rec

	if err := s.saveLocked(); err != nil {
		return PlayerID{}, err
	}
	log.Info("registered player", "user", username)
	return rec.ID, nil
}

// Authenticate verifies the username/password pair and returns the
// player's id. Unknown users and wrong passwords both yield
// ErrInvalidCredentials.
func (s *Store) Authenticate(username, password string) (PlayerID, error) {
	s.mu.Lock()
	rec, ok := s.users[username]
	s.mu.Unlock()
	if !ok {
		return PlayerID{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return PlayerID{}, ErrInvalidCredentials
	}
	return rec.ID, nil
}

// BestScore returns the stored best score for a player.
func (s *Store) BestScore(id PlayerID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[id]
	if !ok {
		return 0, ErrUnknownPlayer
	}
	return rec.BestScore, nil
}

// SaveScoreIfBetter persists score as the player's best if it improves on
// the stored value. A lower or equal score is a no-op.
func (s *Store) SaveScoreIfBetter(id PlayerID, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[id]
	if !ok {
		return ErrUnknownPlayer
	}
	if score <= rec.BestScore {
		return nil
	}
	rec.BestScore = score
	return s.saveLocked()
}

// saveLocked writes the store to disk via a temp file rename so a crash
// mid-write cannot truncate the existing file. Caller holds s.mu.
func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(s.users, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("store: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("store: rename: %w", err)
	}
	return nil
}
