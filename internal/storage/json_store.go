package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksdev/habita/internal/models"
)

type jsonEnvelope struct {
	Version int             `json:"version"`
	Data    models.Snapshot `json:"data"`
}

// JSONStore persists the snapshot as a single JSON file. Saves go through a
// temp file and rename, so a crash mid-write leaves the previous snapshot
// intact.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.Save(models.EmptySnapshot())
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Load() (models.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Snapshot{}, fmt.Errorf("storage not initialized, run 'habita init' first")
		}
		return models.Snapshot{}, fmt.Errorf("failed to read storage: %w", err)
	}

	var env jsonEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to parse storage: %w", err)
	}

	snap := env.Data
	// Ensure collections are non-nil after decoding an older or empty file.
	if snap.Habits == nil {
		snap.Habits = []models.Habit{}
	}
	if snap.Logs == nil {
		snap.Logs = []models.DailyLog{}
	}
	if snap.Moods == nil {
		snap.Moods = []models.MoodEntry{}
	}
	if snap.Messages == nil {
		snap.Messages = []models.FutureMessage{}
	}
	if snap.Experiments == nil {
		snap.Experiments = []models.Experiment{}
	}
	return snap, nil
}

func (s *JSONStore) Save(snap models.Snapshot) error {
	data, err := json.MarshalIndent(jsonEnvelope{Version: 1, Data: snap}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to commit storage: %w", err)
	}
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
