package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"cybermem/internal/config"
	"cybermem/internal/imagestore"
	"cybermem/internal/logging"
	"cybermem/internal/repositories/topics"
	"cybermem/internal/repositories/users"
	"cybermem/internal/services"
	"cybermem/internal/voice"
)

// Session is the state opened by a successful login and carried through
// interaction handlers; there is no ambient global logged-in flag.
type Session struct {
	ID       string
	Username string

	// Transcript caches the last voice capture so the user can inspect
	// what was recognized before the topic is saved.
	Transcript string
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	auth    services.AuthService
	topics  services.TopicService
	images  *imagestore.Store
	voice   *voice.Service // nil when voice capture is unavailable
	session *Session
	reader  *bufio.Reader
}

func NewApp(cfg *config.Config) (*App, error) {
	images, err := imagestore.New(cfg.ImageDir)
	if err != nil {
		return nil, fmt.Errorf("initializing image store: %w", err)
	}

	logger := newFileLogger(cfg.LogFile)

	auth := services.NewAuthService(users.NewJSONFileRepository(cfg.UsersFile))
	topicService := services.NewTopicService(topics.NewJSONFileRepository(cfg.TopicsFile), images)

	var vs *voice.Service
	if cfg.VoiceEndpoint != "" {
		rec := voice.NewExecRecorder(cfg.RecorderBinary)
		if rec.Available() {
			vs = voice.NewService(rec, voice.NewHTTPTranscriber(cfg.VoiceEndpoint), cfg.VoiceTimeout)
		} else {
			logger.Warn(context.Background(), "voice capture disabled", "binary", cfg.RecorderBinary)
		}
	}

	return &App{
		config: cfg,
		logger: logger,
		auth:   auth,
		topics: topicService,
		images: images,
		voice:  vs,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

// newFileLogger sends structured JSON logs to a rotating file so they
// never interleave with REPL output.
func newFileLogger(path string) logging.Logger {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	return logging.NewSlogLogger(slog.New(slog.NewJSONHandler(w, nil)))
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.session.Username)
}

// Run starts the REPL and blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to CyberMem (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
