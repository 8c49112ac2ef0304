package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONStore keeps the whole key-value map in memory and rewrites the file
// on every save, so a SetAll batch is naturally atomic at the file level.
type JSONStore struct {
	path string
	data map[string]string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.data = make(map[string]string)
	return s.save()
}

func (s *JSONStore) Load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'timecraft init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.data = make(map[string]string)
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Path() string {
	return s.path
}

func (s *JSONStore) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string) (string, bool, error) {
	if s.data == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}
	value, ok := s.data[key]
	return value, ok, nil
}

func (s *JSONStore) Set(key, value string) error {
	if s.data == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.data[key] = value
	return s.save()
}

func (s *JSONStore) SetAll(pairs map[string]string) error {
	if s.data == nil {
		return fmt.Errorf("storage not loaded")
	}
	for key, value := range pairs {
		s.data[key] = value
	}
	return s.save()
}
