package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ReferenceConfig bundles the reference tables that drive a generation run.
type ReferenceConfig struct {
	Neighborhoods []Neighborhood   `json:"neighborhoods"`
	Cuisines      []CuisineProfile `json:"cuisines"`
}

var (
	referenceConfig *ReferenceConfig
	referenceLock   sync.RWMutex
	referencePath   = "config/reference_tables.json"
)

// LoadReferenceConfig loads reference-table overrides from file. When the
// file does not exist the built-in tables are used.
func LoadReferenceConfig() error {
	referenceLock.Lock()
	defer referenceLock.Unlock()

	absPath, err := filepath.Abs(referencePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %v", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			referenceConfig = nil
			return nil
		}
		return fmt.Errorf("failed to read config file: %v", err)
	}

	var cfg ReferenceConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse config: %v", err)
	}

	referenceConfig = &cfg
	return nil
}

// SaveReferenceConfig writes the current overrides back to file.
func SaveReferenceConfig() error {
	referenceLock.Lock()
	defer referenceLock.Unlock()

	if referenceConfig == nil {
		return fmt.Errorf("no configuration loaded")
	}

	absPath, err := filepath.Abs(referencePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %v", err)
	}

	data, err := json.MarshalIndent(referenceConfig, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	if err := os.WriteFile(absPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

// GetReferenceTables returns the active neighborhoods and cuisines: the
// loaded overrides when present, otherwise the built-in tables.
func GetReferenceTables() ([]Neighborhood, []CuisineProfile) {
	referenceLock.RLock()
	defer referenceLock.RUnlock()

	if referenceConfig != nil {
		neighborhoods := make([]Neighborhood, len(referenceConfig.Neighborhoods))
		copy(neighborhoods, referenceConfig.Neighborhoods)
		cuisines := make([]CuisineProfile, len(referenceConfig.Cuisines))
		copy(cuisines, referenceConfig.Cuisines)
		return neighborhoods, cuisines
	}

	neighborhoods := make([]Neighborhood, len(SupportedNeighborhoods))
	copy(neighborhoods, SupportedNeighborhoods)
	cuisines := make([]CuisineProfile, len(SupportedCuisines))
	copy(cuisines, SupportedCuisines)
	return neighborhoods, cuisines
}
