package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"cybermem/internal/common"
	"cybermem/internal/models"
)

// RecallTopic renders a topic's steps in order with 1-based positions.
// An image step resolves the embedded path and reports a visible error if
// the file is missing; remaining steps still render.
func (a *App) RecallTopic(ctx context.Context) error {
	names, err := a.topics.List(ctx)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		printlnFn("No topics saved yet.")
		return nil
	}

	name, err := getSimpleText(a.reader, "Topic name", os.Stdout)
	if err != nil {
		return err
	}

	steps, err := a.topics.Get(ctx, name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn(fmt.Sprintf("Topic %q not found.", name))
			return nil
		}
		return err
	}

	if steps.Mixed {
		printlnFn("Warning: this topic mixes text lines with an image reference.")
	}

	printlnFn("Steps:")
	for i, step := range steps.Legacy() {
		if path, ok := models.ParseImageSentinel(step); ok {
			if a.images.Exists(path) {
				printlnFn(fmt.Sprintf("Image for %q: %s", name, path))
			} else {
				printlnFn("Image file not found")
			}
			continue
		}
		printlnFn(fmt.Sprintf("%d. %s", i+1, step))
	}
	return nil
}
