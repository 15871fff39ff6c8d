package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"cybermem/internal/common"
	"cybermem/internal/models"
)

// EditTopic replaces a text topic's steps with freshly entered lines.
// Image topics cannot be edited in place.
func (a *App) EditTopic(ctx context.Context) error {
	names, err := a.topics.List(ctx)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		printlnFn("No topics to edit.")
		return nil
	}

	name, err := getSimpleText(a.reader, "Topic name", os.Stdout)
	if err != nil {
		return err
	}

	current, err := a.topics.Get(ctx, name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn(fmt.Sprintf("Topic %q not found.", name))
			return nil
		}
		return err
	}
	if current.Kind == models.StepsKindImage {
		printlnFn("This topic is image-based. Delete and re-upload if you want to change it.")
		return nil
	}

	printlnFn("Current steps:")
	for _, line := range current.Lines {
		printlnFn(line)
	}

	lines, err := GetMultiline(a.reader, "Enter new steps", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.topics.Edit(ctx, name, strings.Join(lines, "\n")); err != nil {
		printlnFn("Error:", err.Error())
		a.logger.Error(ctx, "editing topic", "name", name, "error", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Topic %q updated.", name))
	a.logger.Info(ctx, "topic updated", "name", name)
	return nil
}
