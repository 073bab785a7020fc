// Package config handles configuration loading, settings, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global minewatch directory.
	GlobalDirName = ".minewatch"

	// StagingDirName holds the per-cycle artifacts (raw log snapshot and
	// rendered report). Overwritten every cycle.
	StagingDirName = "staging"
)

// File names
const (
	SettingsFileName = "settings.yaml"

	// RawLogFileName is the unprocessed log snapshot scraped from the panel.
	RawLogFileName = "Logs.txt"

	// ReportFileName is the rendered connection-time report. The archive
	// sinks push this file; its name also seeds the remote naming scheme.
	ReportFileName = "Server Logs.txt"
)

// GlobalDir returns the path to the global minewatch directory (~/.minewatch/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// StagingDir returns the path to the staging directory.
func StagingDir() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, StagingDirName), nil
}

// EnsureStagingDir creates the staging directory if it doesn't exist.
func EnsureStagingDir() error {
	dir, err := StagingDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
