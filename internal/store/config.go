package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"jalali-picker/internal/picker"
)

// Store is the on-disk home of the picker: config.json and the selection
// history database live directly under Dir.
type Store struct {
	Dir string
}

const envConfigDir = "JALALIPICK_CONFIG_DIR"

// DefaultDir returns $JALALIPICK_CONFIG_DIR, or ~/.jalalipick when unset.
func DefaultDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv(envConfigDir)); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".jalalipick"), nil
}

// Open returns a Store rooted at dir, or at DefaultDir when dir is empty.
func Open(dir string) (Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return Store{}, err
		}
		dir = d
	}
	return Store{Dir: dir}, nil
}

func (s Store) ConfigPath() string { return filepath.Join(s.Dir, "config.json") }

func (s Store) historyPath() string { return filepath.Join(s.Dir, "history.sqlite") }

func (s Store) ensure() error {
	if strings.TrimSpace(s.Dir) == "" {
		return errors.New("store dir is empty")
	}
	return os.MkdirAll(s.Dir, 0o755)
}

// LoadConfig reads config.json. A missing file yields the zero Config, which
// picker.New fills with defaults.
func (s Store) LoadConfig() (picker.Config, error) {
	b, err := os.ReadFile(s.ConfigPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return picker.Config{}, nil
		}
		return picker.Config{}, err
	}
	var cfg picker.Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return picker.Config{}, fmt.Errorf("parse %s: %w", s.ConfigPath(), err)
	}
	return cfg, nil
}

// ConfigExists reports whether config.json is present.
func (s Store) ConfigExists() bool {
	_, err := os.Stat(s.ConfigPath())
	return err == nil
}

// SaveConfig validates cfg and writes it atomically, keeping the previous
// file as config.json.bak.
func (s Store) SaveConfig(cfg picker.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := s.ensure(); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	path := s.ConfigPath()
	if prev, err := os.ReadFile(path); err == nil && len(prev) > 0 {
		_ = atomicWriteFile(s.Dir, "config.json.bak.*.tmp", path+".bak", prev, 0o644)
	}
	return atomicWriteFile(s.Dir, "config.json.*.tmp", path, append(b, '\n'), 0o644)
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
