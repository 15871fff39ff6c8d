package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"cybermem/internal/common"
)

// DeleteTopic removes a topic after confirmation. Image topics also lose
// their backing file.
func (a *App) DeleteTopic(ctx context.Context) error {
	names, err := a.topics.List(ctx)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		printlnFn("No topics to delete.")
		return nil
	}

	name, err := getSimpleText(a.reader, "Topic name", os.Stdout)
	if err != nil {
		return err
	}

	confirm, err := getSimpleText(a.reader, fmt.Sprintf("Confirm delete %q? (y/N)", name), os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "y") {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.topics.Delete(ctx, name); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn(fmt.Sprintf("Topic %q not found.", name))
			return nil
		}
		printlnFn("Error:", err.Error())
		a.logger.Error(ctx, "deleting topic", "name", name, "error", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Topic %q deleted.", name))
	a.logger.Info(ctx, "topic deleted", "name", name)
	return nil
}
