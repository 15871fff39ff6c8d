package cli

import "context"

// ListTopics prints all topic names in lexicographic order.
func (a *App) ListTopics(ctx context.Context) error {
	names, err := a.topics.List(ctx)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		printlnFn("No topics found.")
		return nil
	}
	for _, name := range names {
		printlnFn("- " + name)
	}
	return nil
}
