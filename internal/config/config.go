// Package config handles runtime configuration: defaults, an optional
// JSON file overlay, and command-line flags, in that order of precedence.
package config

import "time"

// Config holds runtime settings for the cybermem CLI.
//
// Fields:
//   - UsersFile / TopicsFile: paths of the two flat JSON stores.
//   - ImageDir: flat directory holding one PNG per image topic.
//   - LogFile: rotating structured-log destination.
//   - VoiceEndpoint: Whisper-compatible transcription URL; empty disables
//     voice input.
//   - VoiceTimeout: fixed microphone recording window.
//   - RecorderBinary: external audio capture command.
type Config struct {
	UsersFile      string
	TopicsFile     string
	ImageDir       string
	LogFile        string
	VoiceEndpoint  string
	VoiceTimeout   time.Duration
	RecorderBinary string
}

// LoadDefaults populates c with the legacy file layout and a 5 second
// recording window.
func (c *Config) LoadDefaults() {
	c.UsersFile = "users.json"
	c.TopicsFile = "cybermem.json"
	c.ImageDir = "images"
	c.LogFile = "cybermem.log"
	c.VoiceEndpoint = ""
	c.VoiceTimeout = 5 * time.Second
	c.RecorderBinary = "arecord"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
