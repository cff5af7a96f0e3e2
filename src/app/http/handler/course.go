package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"lmsadmin/src/app/http/dto"
	"lmsadmin/src/app/http/response"
	"lmsadmin/src/app/middleware"
	"lmsadmin/src/core/usecase"
)

// maxImageSize bounds course image uploads to 5 MiB.
const maxImageSize = 5 << 20

// CourseHandler handles course endpoints.
type CourseHandler struct {
	courseService *usecase.CourseService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courseService *usecase.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// List returns every course, newest first.
// GET /admin/courses
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courseService.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.OK(c, courses)
}

// Create persists a new course with defaults applied.
// POST /admin/courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	course, err := h.courseService.Create(c.Request.Context(), req.ToPayload())
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.Created(c, course)
}

// UploadImage stores a course image asset and returns its reference,
// ready to embed in a subsequent course creation payload.
// POST /admin/courses/image
func (h *CourseHandler) UploadImage(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	file, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required", requestID)
		return
	}
	if file.Size > maxImageSize {
		response.BadRequest(c, "image exceeds the 5 MiB limit", requestID)
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "could not read image", requestID)
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		response.BadRequest(c, "could not read image", requestID)
		return
	}

	image, err := h.courseService.UploadImage(c.Request.Context(), file.Filename, data)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, requestID)
		return
	}

	response.Created(c, image)
}
