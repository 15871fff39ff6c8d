// Package voice provides optional microphone capture and speech-to-text
// transcription against a Whisper-compatible HTTP endpoint. The capability
// is disabled gracefully when the capture binary or the endpoint is not
// configured; callers treat a nil *Service as "voice input unavailable".
package voice

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrTimeout means no audio was captured within the recording window.
	ErrTimeout = errors.New("listening timed out")
	// ErrUnintelligible means the service returned an empty transcript.
	ErrUnintelligible = errors.New("could not understand audio")
)

// Recorder captures a short clip of microphone audio. Implementations
// stop recording when the context deadline expires.
type Recorder interface {
	Record(ctx context.Context) ([]byte, error)
}

// Transcriber converts captured audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Service bundles a recorder and a transcriber behind a single capture
// call bounded by a fixed recording timeout.
type Service struct {
	recorder    Recorder
	transcriber Transcriber
	timeout     time.Duration
}

func NewService(recorder Recorder, transcriber Transcriber, timeout time.Duration) *Service {
	return &Service{recorder: recorder, transcriber: transcriber, timeout: timeout}
}

// Capture records up to the configured timeout and returns the transcript.
// The recording deadline applies only to the capture; the transcription
// request runs under the caller's context.
func (s *Service) Capture(ctx context.Context) (string, error) {
	recCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	audio, err := s.recorder.Record(recCtx)
	if err != nil {
		return "", err
	}
	return s.transcriber.Transcribe(ctx, audio)
}
