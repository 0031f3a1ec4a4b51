package config

import (
	"encoding/json"
	"os"
	"strings"
)

// KeyMapConfig holds user overrides for keybindings.
type KeyMapConfig struct {
	Bindings map[string][]string `json:"bindings,omitempty"`
}

// BindingFor returns the configured keys for an action, if present.
func (k KeyMapConfig) BindingFor(action string) ([]string, bool) {
	if len(k.Bindings) == 0 {
		return nil, false
	}
	if keys, ok := k.Bindings[action]; ok {
		return keys, true
	}
	if keys, ok := k.Bindings[strings.ToLower(action)]; ok {
		return keys, true
	}
	return nil, false
}

// SelectionSettings configures the selection controller.
type SelectionSettings struct {
	// Limit caps how many cells may be selected at once.
	// Zero or negative means unlimited.
	Limit int `json:"limit,omitempty"`
}

// Config holds the application configuration
type Config struct {
	Paths     *Paths
	UI        UISettings
	Selection SelectionSettings
	KeyMap    KeyMapConfig
}

// DefaultConfig returns the default configuration
func DefaultConfig() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}

	return &Config{
		Paths:     paths,
		UI:        defaultUISettings(),
		Selection: SelectionSettings{},
		KeyMap:    KeyMapConfig{},
	}, nil
}

// Load loads config overrides from ~/.gridsel/config.json if present.
func Load() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	return LoadWithPaths(paths)
}

// LoadWithPaths loads config overrides from paths.ConfigPath if present.
func LoadWithPaths(paths *Paths) (*Config, error) {
	cfg := &Config{
		Paths:     paths,
		UI:        defaultUISettings(),
		Selection: SelectionSettings{},
		KeyMap:    KeyMapConfig{},
	}

	data, err := os.ReadFile(paths.ConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	var user struct {
		Selection *SelectionSettings `json:"selection,omitempty"`
		KeyMap    KeyMapConfig       `json:"keymap,omitempty"`
	}
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}

	cfg.UI = loadUISettings(data)
	if user.Selection != nil {
		cfg.Selection = *user.Selection
	}
	if len(user.KeyMap.Bindings) > 0 {
		cfg.KeyMap = user.KeyMap
	}

	return cfg, nil
}
