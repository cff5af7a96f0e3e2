package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"lmsadmin/src/core/domain"
	"lmsadmin/src/infra/config"
)

// CourseStore implements ports.CourseRepository on top of a JSON document
// plus a directory of uploaded image assets. Both locations are explicit
// configuration, so tests can point the store at temporary paths.
//
// There is no locking across concurrent writers: two overlapping Insert
// calls race on the read-modify-write of the whole document and can lose
// an update. The admin portal has a single writer in practice.
type CourseStore struct {
	documentPath string
	imageDir     string
	imageBaseURL string
	log          *slog.Logger
}

// NewCourseStore constructs a store over the configured locations.
// Nothing is touched on disk until the first access.
func NewCourseStore(cfg config.StorageConfig, log *slog.Logger) *CourseStore {
	return &CourseStore{
		documentPath: cfg.CourseDocument,
		imageDir:     cfg.ImageDir,
		imageBaseURL: strings.TrimRight(cfg.ImageBaseURL, "/"),
		log:          log,
	}
}

// ensureStorage creates the image directory and the document (as an empty
// collection) if they do not exist yet. Idempotent; called on every access.
func (s *CourseStore) ensureStorage() error {
	if err := os.MkdirAll(s.imageDir, 0o755); err != nil {
		return fmt.Errorf("creating image dir: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.documentPath), 0o755); err != nil {
		return fmt.Errorf("creating document dir: %w", err)
	}
	if _, err := os.Stat(s.documentPath); os.IsNotExist(err) {
		return s.writeDocument([]domain.Course{})
	} else if err != nil {
		return fmt.Errorf("checking course document: %w", err)
	}
	return nil
}

func (s *CourseStore) Health(ctx context.Context) error {
	return s.ensureStorage()
}

// loadDocument reads and parses the course document. A document that no
// longer parses is reset to an empty collection and reported as empty;
// corruption self-heals instead of surfacing to the caller.
func (s *CourseStore) loadDocument() ([]domain.Course, error) {
	if err := s.ensureStorage(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.documentPath)
	if err != nil {
		return nil, fmt.Errorf("reading course document: %w", err)
	}

	var courses []domain.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		s.log.Warn("course document is corrupt, resetting to empty",
			"path", s.documentPath,
			"error", err,
		)
		if err := s.writeDocument([]domain.Course{}); err != nil {
			return nil, err
		}
		return []domain.Course{}, nil
	}

	if courses == nil {
		courses = []domain.Course{}
	}
	return courses, nil
}

// writeDocument rewrites the whole document. Truncate-and-write; a crash
// mid-write can corrupt the file, which the parse-failure path above
// recovers from.
func (s *CourseStore) writeDocument(courses []domain.Course) error {
	data, err := json.MarshalIndent(courses, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding course document: %w", err)
	}
	if err := os.WriteFile(s.documentPath, data, 0o644); err != nil {
		return fmt.Errorf("writing course document: %w", err)
	}
	return nil
}

// List returns every course, newest first.
func (s *CourseStore) List(ctx context.Context) ([]domain.Course, error) {
	return s.loadDocument()
}

// Insert prepends the course and persists the full collection.
func (s *CourseStore) Insert(ctx context.Context, course domain.Course) error {
	courses, err := s.loadDocument()
	if err != nil {
		return err
	}

	courses = append([]domain.Course{course}, courses...)
	return s.writeDocument(courses)
}

// SaveImage stores an uploaded asset under the image directory. The stored
// filename gets a random prefix so uploads never overwrite each other.
func (s *CourseStore) SaveImage(ctx context.Context, filename string, data []byte) (*domain.CourseImage, error) {
	if err := s.ensureStorage(); err != nil {
		return nil, err
	}

	stored := uuid.New().String() + "-" + filepath.Base(filename)
	path := filepath.Join(s.imageDir, stored)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("writing image: %w", err)
	}

	return &domain.CourseImage{
		URL:      s.imageBaseURL + "/" + stored,
		Filename: stored,
	}, nil
}
