package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/CUknot/chat_backend/models"
)

// ProfileKey is the storage key holding the signed-in user's profile.
const ProfileKey = "login_user_data"

// ErrNoSession is returned by Load when no profile has been stored.
var ErrNoSession = errors.New("no stored session")

// Session is the state a client carries between screens.
type Session struct {
	User    *models.User
	Room    *models.Room
	Channel *models.Channel
}

// SessionStore persists the user profile on disk, one JSON file per key.
type SessionStore struct {
	dir string
	mu  sync.Mutex
}

// NewSessionStore creates a store rooted at dir, creating it if needed.
func NewSessionStore(dir string) (*SessionStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	return &SessionStore{dir: dir}, nil
}

func (s *SessionStore) path() string {
	return filepath.Join(s.dir, ProfileKey+".json")
}

// Load returns the stored profile, or ErrNoSession if there is none.
func (s *SessionStore) Load() (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	var user *models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if user == nil {
		return nil, ErrNoSession
	}
	return user, nil
}

// Save stores the profile. A nil profile leaves the store untouched.
func (s *SessionStore) Save(user *models.User) error {
	if user == nil {
		return nil
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, ProfileKey+"-*.tmp")
	if err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path()); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear removes the stored profile. Clearing an empty store is not an error.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
