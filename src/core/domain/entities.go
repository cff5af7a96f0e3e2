package domain

import "time"

// TenantStatus represents the lifecycle status of a tenant.
type TenantStatus string

const (
	TenantActive    TenantStatus = "active"
	TenantInactive  TenantStatus = "inactive"
	TenantTrial     TenantStatus = "trial"
	TenantSuspended TenantStatus = "suspended"
)

// TenantStatuses lists every valid tenant status, in the order they are
// reported in validation messages.
var TenantStatuses = []TenantStatus{TenantActive, TenantInactive, TenantTrial, TenantSuspended}

// CourseLevel represents the difficulty level of a course.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

// CourseStatus represents the publication state of a course.
type CourseStatus string

const (
	CourseDraft     CourseStatus = "draft"
	CoursePublished CourseStatus = "published"
	CourseArchived  CourseStatus = "archived"
)

// Tenant represents a customer organization with a unique domain.
// The identifier and creation timestamp are assigned by the store.
type Tenant struct {
	ID           int64        `json:"id"`
	BusinessName string       `json:"businessName"`
	Domain       string       `json:"domain"`
	Status       TenantStatus `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// NewTenant holds the normalized, validated fields for tenant creation.
// Only these three fields ever reach the store; anything else in the
// incoming payload is dropped.
type NewTenant struct {
	BusinessName string
	Domain       string
	Status       TenantStatus
}

// CourseImage references an uploaded image asset by public URL and
// stored filename.
type CourseImage struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Course represents a learning unit.
type Course struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	CategoryID    *string      `json:"categoryId"`
	InstructorIDs []string     `json:"instructorIds"`
	Level         CourseLevel  `json:"level"`
	Status        CourseStatus `json:"status"`
	Lessons       int          `json:"lessons"`
	Enrollments   int          `json:"enrollments"`
	Image         *CourseImage `json:"image"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}
