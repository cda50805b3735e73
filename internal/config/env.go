package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultNodeMinVersion = 18
	defaultHistoryDir     = ".tsclean"
	defaultHistoryFile    = "history.db"
)

// Settings holds the tool-wide settings read from the environment.
type Settings struct {
	HistoryPath    string // TSCLEAN_HISTORY_DB
	HistoryEnabled bool   // false when TSCLEAN_NO_HISTORY is set
	NodeMinVersion int    // TSCLEAN_NODE_MIN_VERSION
}

// Load reads Settings from the environment, applying defaults.
func Load() Settings {
	s := Settings{
		HistoryPath:    os.Getenv("TSCLEAN_HISTORY_DB"),
		HistoryEnabled: !truthy(os.Getenv("TSCLEAN_NO_HISTORY")),
		NodeMinVersion: defaultNodeMinVersion,
	}

	if s.HistoryPath == "" {
		s.HistoryPath = DefaultHistoryPath()
	}
	if v, err := strconv.Atoi(os.Getenv("TSCLEAN_NODE_MIN_VERSION")); err == nil && v > 0 {
		s.NodeMinVersion = v
	}

	return s
}

// DefaultHistoryPath returns ~/.tsclean/history.db, or a relative path if the
// home directory is unknown.
func DefaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(defaultHistoryDir, defaultHistoryFile)
	}
	return filepath.Join(home, defaultHistoryDir, defaultHistoryFile)
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
