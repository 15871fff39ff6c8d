package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"cybermem/internal/common"
	"cybermem/internal/models"
	"cybermem/internal/voice"
)

// AddTopic creates a new topic from one of three input modes: raw text,
// an image upload, or voice capture. Voice is offered only when the
// speech-to-text collaborator is available.
func (a *App) AddTopic(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Topic name", os.Stdout)
	if err != nil {
		return err
	}

	options := "text/image"
	if a.voice != nil {
		options = "text/image/voice"
	}
	mode, err := getSimpleText(a.reader, fmt.Sprintf("Input type (%s)", options), os.Stdout)
	if err != nil {
		return err
	}

	switch strings.ToLower(mode) {
	case "", "text":
		return a.addTextTopic(ctx, name)
	case "image":
		return a.addImageTopic(ctx, name)
	case "voice":
		return a.addVoiceTopic(ctx, name)
	default:
		printlnFn("Unknown input type:", mode)
		return nil
	}
}

func (a *App) addTextTopic(ctx context.Context, name string) error {
	lines, err := GetMultiline(a.reader, "Enter steps (one per line)", os.Stdout)
	if err != nil {
		return err
	}
	return a.reportSave(ctx, name, a.topics.Add(ctx, name, models.TextSteps(lines)))
}

func (a *App) addImageTopic(ctx context.Context, name string) error {
	path, err := getSimpleText(a.reader, "Path to image file (png or jpeg)", os.Stdout)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		printlnFn("Cannot open image:", err.Error())
		return err
	}
	defer f.Close()

	return a.reportSave(ctx, name, a.topics.AddImage(ctx, name, f))
}

func (a *App) addVoiceTopic(ctx context.Context, name string) error {
	if a.voice == nil {
		printlnFn("Speech recognition is not supported in this environment.")
		return nil
	}

	printlnFn("Listening... Speak now")
	transcript, err := a.voice.Capture(ctx)
	if err != nil {
		switch {
		case errors.Is(err, voice.ErrTimeout):
			printlnFn("Listening timed out")
		case errors.Is(err, voice.ErrUnintelligible):
			printlnFn("Could not understand audio")
		default:
			printlnFn("Speech recognition error:", err.Error())
		}
		a.logger.Warn(ctx, "voice capture failed", "error", err.Error())
		return err
	}

	if a.session != nil {
		a.session.Transcript = transcript
	}
	printlnFn("Recognized text:")
	printlnFn(transcript)

	lines := strings.Split(strings.TrimSpace(transcript), "\n")
	return a.reportSave(ctx, name, a.topics.Add(ctx, name, models.TextSteps(lines)))
}

// reportSave converts a topic-save outcome into the user-facing message
// and passes the error through unchanged.
func (a *App) reportSave(ctx context.Context, name string, err error) error {
	switch {
	case err == nil:
		printlnFn(fmt.Sprintf("Topic %q saved successfully.", name))
		a.logger.Info(ctx, "topic saved", "name", name)
	case errors.Is(err, common.ErrorEmptyName):
		printlnFn("Topic name cannot be empty.")
	case errors.Is(err, common.ErrorTopicExists):
		printlnFn(fmt.Sprintf("Topic %q already exists. Please use a different name or delete it first.", name))
	default:
		printlnFn("Error:", err.Error())
		a.logger.Error(ctx, "saving topic", "name", name, "error", err.Error())
	}
	return err
}
