package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If GITGUD_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.gitgud/logs/gitgud.log
func GetLogFilePath() string {
	if customPath := os.Getenv("GITGUD_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "gitgud.log"
	}

	return filepath.Join(homeDir, ".gitgud", "logs", "gitgud.log")
}
