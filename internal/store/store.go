// Package store persists the filter criteria between sessions.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"mainstack/revenue/internal/fileutils"
	"mainstack/revenue/internal/filterstate"
	"mainstack/revenue/internal/logging"
	"mainstack/revenue/internal/models"
	"mainstack/revenue/internal/validation"

	"gopkg.in/yaml.v3"
)

// DefaultStateFile is used when no state file is configured.
const DefaultStateFile = "filter-state.yaml"

// Store loads and saves persisted filter criteria.
type Store interface {
	Load() (filterstate.PersistedCriteria, error)
	Save(p filterstate.PersistedCriteria) error
}

// CriteriaStore keeps the persisted criteria in a YAML file.
type CriteriaStore struct {
	File   string
	logger logging.Logger
}

// stateDocument is the on-disk layout. Version allows the format to evolve.
type stateDocument struct {
	Version int                           `yaml:"version"`
	State   filterstate.PersistedCriteria `yaml:"state"`
}

const stateVersion = 1

// NewCriteriaStore creates a store for file. A relative name is searched for
// in the working directory and under $HOME/.config/revenue.
func NewCriteriaStore(file string, logger logging.Logger) *CriteriaStore {
	if logger == nil {
		logger = logging.Nop()
	}
	return &CriteriaStore{File: file, logger: logger}
}

func (s *CriteriaStore) filename() string {
	if s.File == "" {
		return DefaultStateFile
	}
	return s.File
}

func userConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "revenue"), nil
}

// FindStateFile looks for the state file in standard locations
func (s *CriteriaStore) FindStateFile() (string, error) {
	filename := s.filename()
	if filepath.IsAbs(filename) {
		if !fileutils.FileExists(filename) {
			return "", os.ErrNotExist
		}
		return filename, nil
	}

	locations := []string{
		filename,
		filepath.Join(".revenue", filename),
	}
	if dir, err := userConfigDir(); err == nil {
		locations = append(locations, filepath.Join(dir, filename))
	}

	if location, ok := fileutils.FirstExisting(locations...); ok {
		return location, nil
	}
	return "", os.ErrNotExist
}

// Load reads the persisted criteria. A missing file yields the defaults.
func (s *CriteriaStore) Load() (filterstate.PersistedCriteria, error) {
	path, err := s.FindStateFile()
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug("No saved filter state, using defaults",
			logging.F(logging.FieldStateFile, s.filename()))
		return filterstate.PersistedCriteria{}, nil
	}
	if err != nil {
		return filterstate.PersistedCriteria{}, fmt.Errorf("error resolving state file: %w", err)
	}

	if info, err := os.Stat(path); err == nil {
		if err := validation.IsValidFilePermissions(info.Mode().Perm()); err != nil {
			s.logger.WithError(err).Warn("Filter state file is readable by others",
				logging.F(logging.FieldStateFile, path))
		}
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return filterstate.PersistedCriteria{}, fmt.Errorf("error reading state file: %w", err)
	}

	var doc stateDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return filterstate.PersistedCriteria{}, fmt.Errorf("error parsing state file %s: %w", path, err)
	}
	if doc.Version > stateVersion {
		return filterstate.PersistedCriteria{}, fmt.Errorf("state file %s has unsupported version %d", path, doc.Version)
	}

	s.logger.Debug("Loaded filter state",
		logging.F(logging.FieldStateFile, path),
		logging.F(logging.FieldPeriod, doc.State.Criteria.Period))
	return doc.State, nil
}

// Save writes the criteria to the existing state file, or to
// $HOME/.config/revenue when none exists yet and the name is relative.
func (s *CriteriaStore) Save(p filterstate.PersistedCriteria) error {
	path, err := s.FindStateFile()
	if err != nil {
		path, err = s.defaultPath()
		if err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(stateDocument{Version: stateVersion, State: p})
	if err != nil {
		return fmt.Errorf("error marshaling filter state: %w", err)
	}

	if err := fileutils.WriteFileAtomic(path, data, models.PermissionStateFile); err != nil {
		return fmt.Errorf("error writing filter state: %w", err)
	}

	s.logger.Debug("Saved filter state", logging.F(logging.FieldStateFile, path))
	return nil
}

func (s *CriteriaStore) defaultPath() (string, error) {
	filename := s.filename()
	if filepath.IsAbs(filename) || filepath.Dir(filename) != "." {
		return filename, nil
	}
	dir, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("error resolving home directory: %w", err)
	}
	return filepath.Join(dir, filename), nil
}
