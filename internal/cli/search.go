package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
)

// SearchSteps matches a keyword case-insensitively against every text
// step across all topics and prints the matching steps per topic.
func (a *App) SearchSteps(ctx context.Context) error {
	query, err := getSimpleText(a.reader, "Enter keyword to search", os.Stdout)
	if err != nil {
		return err
	}
	if query == "" {
		return nil
	}

	results, err := a.topics.Search(ctx, query)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		printlnFn("No matches found.")
		return nil
	}

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		printlnFn(fmt.Sprintf("Topic: %s", name))
		for _, step := range results[name] {
			printlnFn("- " + step)
		}
	}
	return nil
}
