package dto

import "lmsadmin/src/core/domain"

// CourseImageRef references a previously uploaded image.
type CourseImageRef struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// CreateCourseRequest is the payload for POST /admin/courses.
// All fields are optional; defaults are applied during construction.
type CreateCourseRequest struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	CategoryID    *string         `json:"categoryId"`
	InstructorIDs []string        `json:"instructorIds"`
	Level         string          `json:"level"`
	Status        string          `json:"status"`
	Lessons       int             `json:"lessons"`
	Enrollments   int             `json:"enrollments"`
	Image         *CourseImageRef `json:"image"`
}

// ToPayload converts the request to the domain payload.
func (r *CreateCourseRequest) ToPayload() domain.NewCoursePayload {
	p := domain.NewCoursePayload{
		Title:         r.Title,
		Description:   r.Description,
		CategoryID:    r.CategoryID,
		InstructorIDs: r.InstructorIDs,
		Level:         r.Level,
		Status:        r.Status,
		Lessons:       r.Lessons,
		Enrollments:   r.Enrollments,
	}
	if r.Image != nil {
		p.Image = &domain.CourseImage{
			URL:      r.Image.URL,
			Filename: r.Image.Filename,
		}
	}
	return p
}
