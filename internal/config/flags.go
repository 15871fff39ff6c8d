package config

import (
	"flag"
	"os"
	"time"

	"cybermem/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-u string   users file path
//	-d string   topics data file path
//	-i string   image directory
//	-l string   log file path
//	-v string   voice transcription endpoint URL ("" disables voice)
//	-s int      voice recording window in seconds
//	-r string   audio capture binary
//
// Args are filtered through flagx.FilterArgs so flags owned by other
// packages do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-d", "-i", "-l", "-v", "-s", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.UsersFile, "u", cfg.UsersFile, "users file path")
	fs.StringVar(&cfg.TopicsFile, "d", cfg.TopicsFile, "topics data file path")
	fs.StringVar(&cfg.ImageDir, "i", cfg.ImageDir, "image directory")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file path")
	fs.StringVar(&cfg.VoiceEndpoint, "v", cfg.VoiceEndpoint, "voice transcription endpoint URL")
	fs.StringVar(&cfg.RecorderBinary, "r", cfg.RecorderBinary, "audio capture binary")
	voiceTimeout := fs.Int("s", int(cfg.VoiceTimeout.Seconds()), "voice recording window (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.VoiceTimeout = time.Duration(*voiceTimeout) * time.Second
}
