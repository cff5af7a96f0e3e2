package usecase

import (
	"context"
	"log/slog"
	"time"

	"lmsadmin/src/core/domain"
	"lmsadmin/src/core/ports"
)

// CourseService composes course construction and persistence.
type CourseService struct {
	repo ports.CourseRepository
	log  *slog.Logger
	now  func() time.Time
}

// NewCourseService creates a new CourseService.
func NewCourseService(repo ports.CourseRepository, log *slog.Logger) *CourseService {
	return &CourseService{repo: repo, log: log, now: time.Now}
}

// List returns every course, newest first.
func (s *CourseService) List(ctx context.Context) ([]domain.Course, error) {
	return s.repo.List(ctx)
}

// Create constructs a course with defaults applied and prepends it to the
// collection. Unlike tenant creation, the payload is stored as-is without
// field validation.
func (s *CourseService) Create(ctx context.Context, payload domain.NewCoursePayload) (*domain.Course, error) {
	course := domain.NewCourse(payload, s.now().UTC())

	if err := s.repo.Insert(ctx, course); err != nil {
		return nil, err
	}

	s.log.Info("course created",
		"course_id", course.ID,
		"title", course.Title,
	)
	return &course, nil
}

// UploadImage stores an image asset for later use in a course payload.
func (s *CourseService) UploadImage(ctx context.Context, filename string, data []byte) (*domain.CourseImage, error) {
	return s.repo.SaveImage(ctx, filename, data)
}
