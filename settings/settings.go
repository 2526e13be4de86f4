// Package settings persists display preferences between runs.
package settings

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

const itemKey = "settings"

// Settings is the data stored on disk.
type Settings struct {
	WindowWidth  int  `json:"windowWidth"`
	WindowHeight int  `json:"windowHeight"`
	ShowHUD      bool `json:"showHud"`
}

// Backend is the item storage behind a Store. *gdata.Manager satisfies it.
type Backend interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

type Store struct {
	backend Backend
}

// Open creates a Store backed by gdata's per-user data directory.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open settings storage: %w", err)
	}
	return NewStore(m), nil
}

func NewStore(b Backend) *Store {
	return &Store{backend: b}
}

// Load returns the saved settings. ok is false when nothing was saved yet.
func (s *Store) Load() (Settings, bool, error) {
	data, err := s.backend.LoadItem(itemKey)
	if err != nil {
		return Settings{}, false, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return Settings{}, false, nil
	}

	var out Settings
	if err := json.Unmarshal(data, &out); err != nil {
		return Settings{}, false, fmt.Errorf("parse settings: %w", err)
	}
	return out, true, nil
}

func (s *Store) Save(v Settings) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := s.backend.SaveItem(itemKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
