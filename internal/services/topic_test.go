package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cybermem/internal/common"
	"cybermem/internal/imagestore"
	"cybermem/internal/models"
	"cybermem/internal/repositories/topics"
)

func newTopicService(t *testing.T) (TopicService, string) {
	t.Helper()
	dir := t.TempDir()
	repo := topics.NewJSONFileRepository(filepath.Join(dir, "cybermem.json"))
	images, err := imagestore.New(filepath.Join(dir, "images"))
	require.NoError(t, err)
	return NewTopicService(repo, images), filepath.Join(dir, "images")
}

func pngUpload(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))))
	return &buf
}

func TestAddListDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTopicService(t)

	require.NoError(t, svc.Add(ctx, "A", models.TextSteps([]string{"step"})))

	names, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, "A")

	require.NoError(t, svc.Delete(ctx, "A"))
	names, err = svc.List(ctx)
	require.NoError(t, err)
	assert.NotContains(t, names, "A")
}

func TestAdd_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTopicService(t)

	err := svc.Add(ctx, "   ", models.TextSteps(nil))
	assert.True(t, errors.Is(err, common.ErrorEmptyName))

	require.NoError(t, svc.Add(ctx, "dup", models.TextSteps(nil)))
	err = svc.Add(ctx, "dup", models.TextSteps(nil))
	assert.True(t, errors.Is(err, common.ErrorTopicExists))
}

func TestList_Sorted(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTopicService(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, svc.Add(ctx, name, models.TextSteps(nil)))
	}
	names, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestEdit_TrimsAndDropsBlankLines(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTopicService(t)

	require.NoError(t, svc.Add(ctx, "T", models.TextSteps([]string{"old"})))
	require.NoError(t, svc.Edit(ctx, "T", "  one  \n\n two\n   \n"))

	got, err := svc.Get(ctx, "T")
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, got.Lines)
}

func TestEdit_ImageTopicRejected(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTopicService(t)

	require.NoError(t, svc.AddImage(ctx, "shot", pngUpload(t)))
	err := svc.Edit(ctx, "shot", "new text")
	assert.True(t, errors.Is(err, common.ErrorImageTopic))
}

func TestDelete_ImageTopicRemovesFile(t *testing.T) {
	ctx := context.Background()
	svc, imageDir := newTopicService(t)

	require.NoError(t, svc.AddImage(ctx, "shot", pngUpload(t)))
	path := filepath.Join(imageDir, "shot.png")
	_, err := os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "shot"))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestDelete_TextTopicLeavesImagesAlone(t *testing.T) {
	ctx := context.Background()
	svc, imageDir := newTopicService(t)

	require.NoError(t, svc.AddImage(ctx, "shot", pngUpload(t)))
	require.NoError(t, svc.Add(ctx, "text", models.TextSteps([]string{"x"})))

	require.NoError(t, svc.Delete(ctx, "text"))
	_, err := os.Stat(filepath.Join(imageDir, "shot.png"))
	assert.NoError(t, err)
}

func TestDelete_ImageFileAlreadyGone(t *testing.T) {
	ctx := context.Background()
	svc, imageDir := newTopicService(t)

	require.NoError(t, svc.AddImage(ctx, "shot", pngUpload(t)))
	require.NoError(t, os.Remove(filepath.Join(imageDir, "shot.png")))

	assert.NoError(t, svc.Delete(ctx, "shot"))
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTopicService(t)

	require.NoError(t, svc.Add(ctx, "T1", models.TextSteps([]string{"Open login page", "Click submit"})))
	require.NoError(t, svc.Add(ctx, "T2", models.TextSteps([]string{"Unrelated"})))
	require.NoError(t, svc.AddImage(ctx, "T3", pngUpload(t)))

	results, err := svc.Search(ctx, "login")
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"T1": {"Open login page"}}, results)

	// Case-insensitive.
	results, err = svc.Search(ctx, "LOGIN")
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"T1": {"Open login page"}}, results)

	results, err = svc.Search(ctx, "no such thing")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestAddImage_BlankNameOrphansFile(t *testing.T) {
	ctx := context.Background()
	svc, imageDir := newTopicService(t)

	err := svc.AddImage(ctx, "", pngUpload(t))
	require.True(t, errors.Is(err, common.ErrorEmptyName))

	// The sanitized fallback file was written before validation failed,
	// matching the non-transactional store contract.
	_, statErr := os.Stat(filepath.Join(imageDir, "unnamed.png"))
	assert.NoError(t, statErr)

	names, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}
