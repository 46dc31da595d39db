package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// TokenStore persists the session token between runs.
type TokenStore interface {
	Load() (token, username string, ok bool)
	Save(token, username string) error
	Clear() error
}

// MemoryStore keeps the session for the lifetime of the process. Used in
// tests and by embedders that manage persistence themselves.
type MemoryStore struct {
	mu       sync.Mutex
	token    string
	username string
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Load() (string, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.username, s.token != ""
}

func (s *MemoryStore) Save(token, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.username = token, username
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.username = "", ""
	return nil
}

// FileStore persists the session as a JSON file, mode 0600.
type FileStore struct {
	mu   sync.Mutex
	path string
}

type sessionFile struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

// DefaultSessionPath is where the CLI keeps its session.
func DefaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".invencost-session.json"
	}
	return filepath.Join(home, ".invencost", "session.json")
}

func (s *FileStore) Load() (string, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return "", "", false
	}
	var sess sessionFile
	if err := json.Unmarshal(raw, &sess); err != nil || sess.Token == "" {
		return "", "", false
	}
	return sess.Token, sess.Username, true
}

func (s *FileStore) Save(token, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	raw, err := json.Marshal(sessionFile{Token: token, Username: username})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0600)
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
