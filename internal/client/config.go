package client

import (
	"encoding/json"
	"os"
	"path/filepath"

	applog "shoplist/internal/log"
)

// AppConfig is the persisted client configuration. One JSON file, loaded at
// startup, written back on every change.
type AppConfig struct {
	UseMockData  bool   `json:"useMockData"`
	APIBaseURL   string `json:"apiBaseUrl"`
	UserIdentity string `json:"userIdentity"`
}

func DefaultConfig() AppConfig {
	return AppConfig{
		UseMockData:  false,
		APIBaseURL:   "http://localhost:3001",
		UserIdentity: MockIdentity,
	}
}

// DefaultConfigPath resolves the per-user config location. Falls back to
// the working directory when the OS config dir is unavailable.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "shoplist-config.json"
	}
	return filepath.Join(dir, "shoplist", "config.json")
}

// LoadAppConfig overlays the persisted file onto defaults. An absent or
// corrupt file yields defaults; it is never an error.
func LoadAppConfig(path string) AppConfig {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		applog.AppWarn("config.load.corrupt", err, map[string]any{"path": path})
		return DefaultConfig()
	}
	return cfg
}

func (c AppConfig) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// ConfigUpdate is a partial overlay; nil fields keep their current value.
type ConfigUpdate struct {
	UseMockData  *bool
	APIBaseURL   *string
	UserIdentity *string
}
