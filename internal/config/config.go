package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DefaultConfigFile is the config filename looked up in the working
// directory and under ~/.config/issuemd/.
const DefaultConfigFile = "config.json"

// Settings holds the tracker endpoint and credentials.
type Settings struct {
	GiteaURL  string `json:"gitea_url"`
	Token     string `json:"token"`
	VerifySSL bool   `json:"verify_ssl"`
}

// Path resolves the config file path: the explicit argument wins, then
// ISSUEMD_CONFIG, then ./config.json when present, then
// ~/.config/issuemd/config.json.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv("ISSUEMD_CONFIG"); env != "" {
		return env
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfigFile
	}
	return filepath.Join(home, ".config", "issuemd", DefaultConfigFile)
}

// Load reads settings from the config file at path, then applies
// ISSUEMD_URL and ISSUEMD_TOKEN overrides from the environment. A .env
// file in the working directory is honored when present, so the config
// file may be omitted entirely when both overrides are set.
func Load(path string) (Settings, error) {
	_ = godotenv.Load()

	var settings Settings
	data, readErr := os.ReadFile(path)
	switch {
	case readErr == nil:
		if err := json.Unmarshal(data, &settings); err != nil {
			return Settings{}, fmt.Errorf("invalid config file %s: %w", path, err)
		}
	case os.IsNotExist(readErr):
		// Environment-only configuration is still possible.
	default:
		return Settings{}, fmt.Errorf("failed to read config file %s: %w", path, readErr)
	}

	if env := os.Getenv("ISSUEMD_URL"); env != "" {
		settings.GiteaURL = env
	}
	if env := os.Getenv("ISSUEMD_TOKEN"); env != "" {
		settings.Token = env
	}

	if settings.GiteaURL == "" || settings.Token == "" {
		if readErr != nil {
			return Settings{}, fmt.Errorf("config file not found: %s (create a config.json with gitea_url and token, or set ISSUEMD_URL and ISSUEMD_TOKEN)", path)
		}
		if settings.GiteaURL == "" {
			return Settings{}, fmt.Errorf("missing required config field: gitea_url")
		}
		return Settings{}, fmt.Errorf("missing required config field: token")
	}

	return settings, nil
}
