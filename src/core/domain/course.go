package domain

import (
	"time"

	"github.com/google/uuid"
)

// NewCoursePayload is the raw course creation payload. Every field is
// optional; defaults are applied during construction.
//
// Course creation deliberately performs no field validation. Tenant
// creation does; the admin portal has always accepted courses as-is and
// callers depend on that.
type NewCoursePayload struct {
	Title         string
	Description   string
	CategoryID    *string
	InstructorIDs []string
	Level         string
	Status        string
	Lessons       int
	Enrollments   int
	Image         *CourseImage
}

// NewCourse constructs a Course from a payload, applying defaults for
// missing optional fields. The creation and update timestamps are set to
// the same instant.
func NewCourse(p NewCoursePayload, now time.Time) Course {
	level := CourseLevel(p.Level)
	if level == "" {
		level = LevelBeginner
	}

	status := CourseStatus(p.Status)
	if status == "" {
		status = CourseDraft
	}

	instructors := p.InstructorIDs
	if instructors == nil {
		instructors = []string{}
	}

	lessons := p.Lessons
	if lessons < 0 {
		lessons = 0
	}

	enrollments := p.Enrollments
	if enrollments < 0 {
		enrollments = 0
	}

	return Course{
		ID:            uuid.New().String(),
		Title:         p.Title,
		Description:   p.Description,
		CategoryID:    p.CategoryID,
		InstructorIDs: instructors,
		Level:         level,
		Status:        status,
		Lessons:       lessons,
		Enrollments:   enrollments,
		Image:         p.Image,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
