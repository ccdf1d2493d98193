// Package store provides functionality for loading the store-category table.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/receipt-csv/internal/logging"
	"fjacquet/receipt-csv/internal/models"

	"gopkg.in/yaml.v3"
)

// CategoryStore loads the store-category table that maps merchant-name
// fragments to categories. The table is loaded once at startup and treated as
// immutable afterwards, so parse calls can read it concurrently without
// coordination.
type CategoryStore struct {
	StoresFile string
	logger     logging.Logger
}

// NewCategoryStore creates a new store. An empty storesFile means only the
// built-in table is used.
func NewCategoryStore(storesFile string, logger logging.Logger) *CategoryStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &CategoryStore{
		StoresFile: storesFile,
		logger:     logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "receipt-csv", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadStoreMappings returns the active store-category table. When no override
// file is configured or found, the built-in table applies. Entries naming a
// category outside the closed set are dropped with a warning rather than
// poisoning downstream records.
func (s *CategoryStore) LoadStoreMappings() ([]models.StoreMapping, error) {
	if s.StoresFile == "" {
		return DefaultStoreMappings(), nil
	}

	filePath, err := s.FindConfigFile(s.StoresFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField(logging.FieldFile, s.StoresFile).Warn("Stores file not found, using built-in table")
			return DefaultStoreMappings(), nil
		}
		return nil, fmt.Errorf("error resolving stores file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading stores file: %w", err)
	}

	var storesConfig models.StoresConfig
	if err := yaml.Unmarshal(data, &storesConfig); err != nil {
		return nil, fmt.Errorf("error parsing stores file: %w", err)
	}

	mappings := make([]models.StoreMapping, 0, len(storesConfig.Stores))
	for _, mapping := range storesConfig.Stores {
		if mapping.Match == "" || !mapping.Overall.IsValid() {
			s.logger.WithFields(
				logging.Field{Key: "match", Value: mapping.Match},
				logging.Field{Key: logging.FieldCategory, Value: mapping.Overall},
			).Warn("Skipping invalid store mapping")
			continue
		}
		if mapping.ItemDefault != "" && !mapping.ItemDefault.IsValid() {
			s.logger.WithFields(
				logging.Field{Key: "match", Value: mapping.Match},
				logging.Field{Key: logging.FieldCategory, Value: mapping.ItemDefault},
			).Warn("Dropping invalid item default from store mapping")
			mapping.ItemDefault = ""
		}
		mappings = append(mappings, mapping)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(mappings)},
		logging.Field{Key: logging.FieldFile, Value: filePath},
	).Debug("Loaded store mappings")
	return mappings, nil
}
