package config

import (
	"encoding/json"
	"os"
	"time"

	"cybermem/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. The voice
// timeout is given in whole seconds on disk.
type jsonConfig struct {
	UsersFile       string `json:"users_file"`
	TopicsFile      string `json:"topics_file"`
	ImageDir        string `json:"image_dir"`
	LogFile         string `json:"log_file"`
	VoiceEndpoint   string `json:"voice_endpoint"`
	VoiceTimeoutSec int    `json:"voice_timeout_seconds"`
	RecorderBinary  string `json:"recorder_binary"`
}

// parseJSON overlays cfg with values from the JSON file named by the -c
// or -config flag. Absent flag means no JSON is loaded. Only fields the
// file actually sets override the defaults. Read or unmarshal errors
// panic; the loader runs before any store is touched.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.UsersFile != "" {
		cfg.UsersFile = jc.UsersFile
	}
	if jc.TopicsFile != "" {
		cfg.TopicsFile = jc.TopicsFile
	}
	if jc.ImageDir != "" {
		cfg.ImageDir = jc.ImageDir
	}
	if jc.LogFile != "" {
		cfg.LogFile = jc.LogFile
	}
	if jc.VoiceEndpoint != "" {
		cfg.VoiceEndpoint = jc.VoiceEndpoint
	}
	if jc.VoiceTimeoutSec > 0 {
		cfg.VoiceTimeout = time.Duration(jc.VoiceTimeoutSec) * time.Second
	}
	if jc.RecorderBinary != "" {
		cfg.RecorderBinary = jc.RecorderBinary
	}
}
