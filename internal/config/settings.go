package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Settings represents the structure of ~/.salta/settings.json
type Settings struct {
	BasePaths                 PathList `json:"base_paths,omitempty"`
	DBPath                    string   `json:"db_path,omitempty"`
	Debug                     *bool    `json:"debug,omitempty"`
	DefaultLayout             string   `json:"default_layout,omitempty"`
	MaxLogFiles               *int     `json:"max_log_files,omitempty"`
	SessionSeparator          string   `json:"session_separator,omitempty"`
	ShowResurrectableSessions *bool    `json:"show_resurrectable_sessions,omitempty"`
}

// PathList supports both JSON arrays and pipe-delimited strings, the raw form
// the host hands over ("~/code|~/work").
type PathList []string

// UnmarshalJSON implements custom unmarshaling for PathList
func (pl *PathList) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*pl = trimNonEmpty(arr)
		return nil
	}

	// Fall back to pipe-delimited string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*pl = ParsePathList(str)
	return nil
}

// MarshalJSON implements custom marshaling for PathList
func (pl PathList) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(pl))
}

// ParsePathList splits a pipe-delimited base path string, trimming whitespace
// and dropping empty entries.
func ParsePathList(s string) []string {
	if s == "" {
		return []string{}
	}
	return trimNonEmpty(strings.Split(s, "|"))
}

func trimNonEmpty(parts []string) []string {
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, ExpandPath(trimmed))
		}
	}
	return result
}

// LoadSettings loads settings from $SALTA_HOME/settings.json (or
// ~/.salta/settings.json if not set).
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	path := SettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.DBPath != "" {
		settings.DBPath = ExpandPath(settings.DBPath)
	}

	return &settings, nil
}

// SaveSettings saves settings to $SALTA_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := SettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
