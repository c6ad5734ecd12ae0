// Package settings manages persistent user settings for the netweave CLI.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds persistent user preferences. Flags override these; these
// override compiled defaults.
type Settings struct {
	// Inventory is the inventory CSV used when --inventory is not given
	Inventory string `json:"inventory,omitempty"`

	// BackendURL overrides the default text-generation backend endpoint
	BackendURL string `json:"backend_url,omitempty"`

	// BackendModel overrides the default text-generation model
	BackendModel string `json:"backend_model,omitempty"`
}

// DefaultPath returns the default path for the settings file
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "netweave_settings.json"
	}
	return filepath.Join(home, ".netweave", "settings.json")
}

// Load reads settings from the default location
func Load() (*Settings, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom reads settings from a specific path
func LoadFrom(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty settings if file doesn't exist
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}

	return s, nil
}

// Save writes settings to the default location
func (s *Settings) Save() error {
	return s.SaveTo(DefaultPath())
}

// SaveTo writes settings to a specific path
func (s *Settings) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetInventory returns the inventory path (with fallback)
func (s *Settings) GetInventory() string {
	if s.Inventory != "" {
		return s.Inventory
	}
	return "inventory.csv"
}
