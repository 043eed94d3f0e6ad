package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// defaultPasscode gates the staff dashboard until the shop sets its own.
const defaultPasscode = "00000000"

type preferences struct {
	AutoPrint bool   `json:"auto_print"`
	Passcode  string `json:"passcode"`
}

// Store holds this client's locally persisted preferences: the auto-print
// toggle and the staff passcode. It is written through on every change so a
// restart picks them up again.
type Store struct {
	path string

	mu    sync.RWMutex
	prefs preferences
}

// Load reads the preferences file, creating it with defaults on first boot.
func Load(path string) (*Store, error) {
	s := &Store{
		path:  path,
		prefs: preferences{AutoPrint: false, Passcode: defaultPasscode},
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := s.flushLocked(); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.prefs); err != nil {
		return nil, err
	}
	if s.prefs.Passcode == "" {
		s.prefs.Passcode = defaultPasscode
	}
	return s, nil
}

func (s *Store) AutoPrint() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs.AutoPrint
}

func (s *Store) SetAutoPrint(on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.AutoPrint = on
	return s.flushLocked()
}

func (s *Store) Passcode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs.Passcode
}

func (s *Store) SetPasscode(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.Passcode = code
	return s.flushLocked()
}

// flushLocked writes the file atomically via a temp file and rename.
func (s *Store) flushLocked() error {
	raw, err := json.MarshalIndent(s.prefs, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
