package config

// Settings are the operator-tunable knobs, loaded from
// ~/.minewatch/settings.yaml when present. Credentials and endpoints never
// live here — they come from the environment (see Load).
type Settings struct {
	PanelURL  string `yaml:"panel_url"`
	ServerURL string `yaml:"server_url"`
	LogURL    string `yaml:"log_url"`

	PollIntervalSeconds   int `yaml:"poll_interval_seconds"`
	StuckThresholdSeconds int `yaml:"stuck_threshold_seconds"`
	ConfirmSettleSeconds  int `yaml:"confirm_settle_seconds"`
	ReloadSettleSeconds   int `yaml:"reload_settle_seconds"`
	LoginTimeoutSeconds   int `yaml:"login_timeout_seconds"`
	WaitTimeoutSeconds    int `yaml:"wait_timeout_seconds"`

	// BotPlayer is the automated account's in-game name; its connect and
	// disconnect events are excluded from every report.
	BotPlayer string `yaml:"bot_player"`

	// Symbols maps known player names to the marker shown in report entries.
	Symbols       map[string]string `yaml:"symbols"`
	DefaultSymbol string            `yaml:"default_symbol"`
}

// DefaultSettings returns settings matching the panel the bot was built for.
func DefaultSettings() *Settings {
	return &Settings{
		PanelURL:  "https://aternos.org/go/",
		ServerURL: "https://aternos.org/server/",
		LogURL:    "https://aternos.org/log/",

		PollIntervalSeconds:   3,
		StuckThresholdSeconds: 30,
		ConfirmSettleSeconds:  5,
		ReloadSettleSeconds:   2,
		LoginTimeoutSeconds:   60,
		WaitTimeoutSeconds:    45,

		BotPlayer: "Bot",
		Symbols: map[string]string{
			"Shayan1509":    "◆",
			"Zeeshan0908":   "✦",
			"Ahmadmirza238": "⬧",
			"Zeeshan3702":   "✧",
		},
		DefaultSymbol: "•",
	}
}

// LoadSettings loads settings.yaml, falling back to defaults when absent.
// Zero-valued fields in a partial file are backfilled from the defaults.
func LoadSettings() (*Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}

	s, err := LoadYAMLOrDefault(path, DefaultSettings)
	if err != nil {
		return nil, err
	}
	s.fillDefaults()
	return s, nil
}

// SaveSettings writes settings.yaml.
func SaveSettings(s *Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, s)
}

func (s *Settings) fillDefaults() {
	d := DefaultSettings()
	if s.PanelURL == "" {
		s.PanelURL = d.PanelURL
	}
	if s.ServerURL == "" {
		s.ServerURL = d.ServerURL
	}
	if s.LogURL == "" {
		s.LogURL = d.LogURL
	}
	if s.PollIntervalSeconds <= 0 {
		s.PollIntervalSeconds = d.PollIntervalSeconds
	}
	if s.StuckThresholdSeconds <= 0 {
		s.StuckThresholdSeconds = d.StuckThresholdSeconds
	}
	if s.ConfirmSettleSeconds <= 0 {
		s.ConfirmSettleSeconds = d.ConfirmSettleSeconds
	}
	if s.ReloadSettleSeconds <= 0 {
		s.ReloadSettleSeconds = d.ReloadSettleSeconds
	}
	if s.LoginTimeoutSeconds <= 0 {
		s.LoginTimeoutSeconds = d.LoginTimeoutSeconds
	}
	if s.WaitTimeoutSeconds <= 0 {
		s.WaitTimeoutSeconds = d.WaitTimeoutSeconds
	}
	if s.BotPlayer == "" {
		s.BotPlayer = d.BotPlayer
	}
	if s.Symbols == nil {
		s.Symbols = d.Symbols
	}
	if s.DefaultSymbol == "" {
		s.DefaultSymbol = d.DefaultSymbol
	}
}
