package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the single immutable configuration value for one run. Built once
// by Load and passed into every component; nothing reads the environment
// after startup.
type Config struct {
	// Panel credentials.
	Username string
	Password string

	// Archive endpoints. Either may be empty, which disables that sink.
	WebhookURL string
	StoreToken string
	StoreRepo  string

	// SourceRepo identifies the originating run in archive commit messages.
	SourceRepo string

	// Liveness probe target.
	ProbeHost string
	ProbePort int

	// Panel URLs.
	PanelURL  string
	ServerURL string
	LogURL    string

	// Timing.
	PollInterval   time.Duration
	StuckThreshold time.Duration
	ConfirmSettle  time.Duration
	ReloadSettle   time.Duration
	LoginTimeout   time.Duration
	WaitTimeout    time.Duration

	// Report rendering.
	BotPlayer     string
	Symbols       map[string]string
	DefaultSymbol string

	// StagingDir holds the per-cycle artifacts.
	StagingDir string
}

// Load builds the run configuration from the environment plus settings.yaml.
// A .env file in the working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	settings, err := LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	staging, err := StagingDir()
	if err != nil {
		return nil, fmt.Errorf("resolve staging dir: %w", err)
	}

	port := 0
	if p := os.Getenv("SERVER_PORT"); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVER_PORT %q: %w", p, err)
		}
	}

	cfg := &Config{
		Username:   os.Getenv("ATERNOS_USER"),
		Password:   os.Getenv("ATERNOS_PASS"),
		WebhookURL: os.Getenv("DISCORD_WEBHOOK"),
		StoreToken: os.Getenv("GH_PAT"),
		StoreRepo:  os.Getenv("CENTRAL_REPO"),
		SourceRepo: filepath.Base(os.Getenv("GITHUB_REPOSITORY")),
		ProbeHost:  os.Getenv("SERVER_IP"),
		ProbePort:  port,

		PanelURL:  settings.PanelURL,
		ServerURL: settings.ServerURL,
		LogURL:    settings.LogURL,

		PollInterval:   time.Duration(settings.PollIntervalSeconds) * time.Second,
		StuckThreshold: time.Duration(settings.StuckThresholdSeconds) * time.Second,
		ConfirmSettle:  time.Duration(settings.ConfirmSettleSeconds) * time.Second,
		ReloadSettle:   time.Duration(settings.ReloadSettleSeconds) * time.Second,
		LoginTimeout:   time.Duration(settings.LoginTimeoutSeconds) * time.Second,
		WaitTimeout:    time.Duration(settings.WaitTimeoutSeconds) * time.Second,

		BotPlayer:     settings.BotPlayer,
		Symbols:       settings.Symbols,
		DefaultSymbol: settings.DefaultSymbol,

		StagingDir: staging,
	}

	// filepath.Base(".") when GITHUB_REPOSITORY is unset
	if cfg.SourceRepo == "." || cfg.SourceRepo == "" {
		cfg.SourceRepo = "Bot"
	}

	return cfg, nil
}

// RequireCredentials validates that the keep-alive run can authenticate.
func (c *Config) RequireCredentials() error {
	if c.Username == "" || c.Password == "" {
		return fmt.Errorf("ATERNOS_USER and ATERNOS_PASS must be set")
	}
	return nil
}

// RequireProbeTarget validates that the liveness probe has a target.
func (c *Config) RequireProbeTarget() error {
	if c.ProbeHost == "" || c.ProbePort == 0 {
		return fmt.Errorf("SERVER_IP and SERVER_PORT must be set")
	}
	return nil
}

// RawLogPath returns the staging path for the unprocessed log snapshot.
func (c *Config) RawLogPath() string {
	return filepath.Join(c.StagingDir, RawLogFileName)
}

// ReportPath returns the staging path for the rendered report.
func (c *Config) ReportPath() string {
	return filepath.Join(c.StagingDir, ReportFileName)
}
