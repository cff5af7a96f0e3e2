package handler

import (
	"github.com/gin-gonic/gin"

	"lmsadmin/src/app/http/dto"
	"lmsadmin/src/app/http/response"
	"lmsadmin/src/app/middleware"
	"lmsadmin/src/core/usecase"
)

// AdminHandler handles admin login.
type AdminHandler struct {
	adminService *usecase.AdminAuthService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService *usecase.AdminAuthService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Login delegates authentication to the external auth service.
// POST /admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	session, err := h.adminService.Login(c.Request.Context(), req.ToCredentials())
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.OK(c, session)
}
