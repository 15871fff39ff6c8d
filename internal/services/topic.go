package services

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"cybermem/internal/common"
	"cybermem/internal/imagestore"
	"cybermem/internal/models"
	"cybermem/internal/repositories/topics"
)

// TopicService implements the CRUD surface over the topic store plus the
// image side-store lifecycle (an image topic owns exactly one PNG, deleted
// with the topic).
type TopicService interface {
	Add(ctx context.Context, name string, steps models.Steps) error
	AddImage(ctx context.Context, name string, upload io.Reader) error
	Get(ctx context.Context, name string) (models.Steps, error)
	Edit(ctx context.Context, name string, text string) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]string, error)
	Search(ctx context.Context, query string) (map[string][]string, error)
}

type topicService struct {
	repo   topics.Repository
	images *imagestore.Store
}

func NewTopicService(repo topics.Repository, images *imagestore.Store) TopicService {
	return &topicService{repo: repo, images: images}
}

func (s *topicService) Add(ctx context.Context, name string, steps models.Steps) error {
	if strings.TrimSpace(name) == "" {
		return common.ErrorEmptyName
	}
	return s.repo.Create(ctx, name, steps)
}

// AddImage stores the uploaded image under the sanitized topic name and
// creates a topic referencing it. The image is written before the topic
// entry; if the insert then fails the file stays behind, matching the
// non-transactional contract of the original store.
func (s *topicService) AddImage(ctx context.Context, name string, upload io.Reader) error {
	path, err := s.images.Save(name, upload)
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return common.ErrorEmptyName
	}
	return s.repo.Create(ctx, name, models.ImageRef(path))
}

func (s *topicService) Get(ctx context.Context, name string) (models.Steps, error) {
	return s.repo.Get(ctx, name)
}

// Edit replaces a text topic's steps with the non-blank, trimmed lines of
// the supplied text. Image topics cannot be edited; they must be deleted
// and re-uploaded.
func (s *topicService) Edit(ctx context.Context, name string, text string) error {
	current, err := s.repo.Get(ctx, name)
	if err != nil {
		return err
	}
	if current.Kind == models.StepsKindImage {
		return common.ErrorImageTopic
	}

	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return s.repo.Update(ctx, name, models.TextSteps(lines))
}

// Delete removes the topic entry and, for image topics, the backing PNG.
// A backing file that is already gone is ignored.
func (s *topicService) Delete(ctx context.Context, name string) error {
	steps, err := s.repo.Get(ctx, name)
	if err != nil {
		return err
	}
	if steps.Kind == models.StepsKindImage {
		if err := s.images.Remove(steps.Image); err != nil {
			return fmt.Errorf("removing topic image: %w", err)
		}
	}
	return s.repo.Delete(ctx, name)
}

// List returns topic names in lexicographic order, recomputed from the
// current store state on each call.
func (s *topicService) List(ctx context.Context) ([]string, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Search matches query case-insensitively against every non-image step
// string across every topic. Topics with no matching steps are excluded
// from the result.
func (s *topicService) Search(ctx context.Context, query string) (map[string][]string, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)

	results := make(map[string][]string)
	for name, steps := range all {
		if steps.Kind == models.StepsKindImage {
			continue
		}
		var matches []string
		for _, line := range steps.Lines {
			if _, isSentinel := models.ParseImageSentinel(line); isSentinel {
				continue
			}
			if strings.Contains(strings.ToLower(line), q) {
				matches = append(matches, line)
			}
		}
		if len(matches) > 0 {
			results[name] = matches
		}
	}
	return results, nil
}
