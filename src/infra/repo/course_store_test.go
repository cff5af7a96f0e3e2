package repo

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lmsadmin/src/core/domain"
	"lmsadmin/src/infra/config"
)

func newTestStore(t *testing.T) (*CourseStore, config.StorageConfig) {
	t.Helper()

	dir := t.TempDir()
	cfg := config.StorageConfig{
		CourseDocument: filepath.Join(dir, "courses.json"),
		ImageDir:       filepath.Join(dir, "images"),
		ImageBaseURL:   "/images",
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCourseStore(cfg, log), cfg
}

func TestCourseStore_LazyInit(t *testing.T) {
	store, cfg := newTestStore(t)
	ctx := context.Background()

	// Nothing exists before the first access.
	_, err := os.Stat(cfg.CourseDocument)
	require.True(t, os.IsNotExist(err))

	courses, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, courses)

	// First access created both the document and the image directory.
	data, err := os.ReadFile(cfg.CourseDocument)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))

	info, err := os.Stat(cfg.ImageDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCourseStore_InsertPrependsNewestFirst(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first := domain.NewCourse(domain.NewCoursePayload{Title: "First"}, time.Now().UTC())
	second := domain.NewCourse(domain.NewCoursePayload{Title: "Second"}, time.Now().UTC())

	require.NoError(t, store.Insert(ctx, first))
	require.NoError(t, store.Insert(ctx, second))

	courses, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Second", courses[0].Title)
	assert.Equal(t, "First", courses[1].Title)
}

func TestCourseStore_SelfHealsOnCorruption(t *testing.T) {
	store, cfg := newTestStore(t)
	ctx := context.Background()

	course := domain.NewCourse(domain.NewCoursePayload{Title: "Survivor"}, time.Now().UTC())
	require.NoError(t, store.Insert(ctx, course))

	// Corrupt the document behind the store's back.
	require.NoError(t, os.WriteFile(cfg.CourseDocument, []byte("{not json"), 0o644))

	courses, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, courses)

	// The document was reset to an empty collection on disk.
	data, err := os.ReadFile(cfg.CourseDocument)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestCourseStore_PersistsRoundTrip(t *testing.T) {
	store, cfg := newTestStore(t)
	ctx := context.Background()

	category := "cat-1"
	course := domain.NewCourse(domain.NewCoursePayload{
		Title:      "Persisted",
		CategoryID: &category,
		Level:      "intermediate",
	}, time.Now().UTC())
	require.NoError(t, store.Insert(ctx, course))

	// Reload from disk through a fresh store.
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	reloaded, err := NewCourseStore(cfg, log).List(ctx)
	require.NoError(t, err)
	require.Len(t, reloaded, 1)

	assert.Equal(t, course.ID, reloaded[0].ID)
	assert.Equal(t, domain.LevelIntermediate, reloaded[0].Level)
	require.NotNil(t, reloaded[0].CategoryID)
	assert.Equal(t, "cat-1", *reloaded[0].CategoryID)
	assert.True(t, course.CreatedAt.Equal(reloaded[0].CreatedAt))
}

func TestCourseStore_SaveImage(t *testing.T) {
	store, cfg := newTestStore(t)
	ctx := context.Background()

	image, err := store.SaveImage(ctx, "banner.png", []byte("png-bytes"))
	require.NoError(t, err)
	require.NotNil(t, image)

	assert.Contains(t, image.Filename, "banner.png")
	assert.Equal(t, "/images/"+image.Filename, image.URL)

	data, err := os.ReadFile(filepath.Join(cfg.ImageDir, image.Filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestCourseStore_DocumentIsValidJSONArray(t *testing.T) {
	store, cfg := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, domain.NewCourse(domain.NewCoursePayload{Title: "One"}, time.Now().UTC())))

	data, err := os.ReadFile(cfg.CourseDocument)
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "One", raw[0]["title"])
}
