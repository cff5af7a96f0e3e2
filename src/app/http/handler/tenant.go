// Package handler contains HTTP handlers for the API.
// Handlers are responsible for:
// - Parsing and validating HTTP requests
// - Calling use case methods
// - Converting results to HTTP responses
package handler

import (
	"github.com/gin-gonic/gin"

	"lmsadmin/src/app/http/dto"
	"lmsadmin/src/app/http/response"
	"lmsadmin/src/app/middleware"
	"lmsadmin/src/core/usecase"
)

// TenantHandler handles tenant endpoints.
type TenantHandler struct {
	tenantService *usecase.TenantService
}

// NewTenantHandler creates a new TenantHandler.
func NewTenantHandler(tenantService *usecase.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// List returns the newest tenants.
// GET /admin/tenants
func (h *TenantHandler) List(c *gin.Context) {
	tenants, err := h.tenantService.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.OK(c, tenants)
}

// Create validates and persists a new tenant.
// POST /admin/tenants
func (h *TenantHandler) Create(c *gin.Context) {
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	tenant, err := h.tenantService.Create(c.Request.Context(), req.ToPayload())
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.Created(c, tenant)
}
