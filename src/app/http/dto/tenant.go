// Package dto contains Data Transfer Objects for HTTP requests and responses.
//
// DTOs are separate from domain entities to:
//   - Control what data is exposed in the API
//   - Handle JSON serialization/deserialization
//   - Version the API without changing domain models
//
// Request DTOs convert to domain payloads via ToPayload; nothing outside
// the named fields survives the conversion.
package dto

import "lmsadmin/src/core/domain"

// CreateTenantRequest is the payload for POST /admin/tenants.
// Every field is optional at the binding level; normalization and
// validation happen in the domain validator, which collects all failures.
type CreateTenantRequest struct {
	BusinessName string `json:"businessName"`
	Domain       string `json:"domain"`
	Status       string `json:"status"`
}

// ToPayload converts the request to the domain payload.
func (r *CreateTenantRequest) ToPayload() domain.NewTenantPayload {
	return domain.NewTenantPayload{
		BusinessName: r.BusinessName,
		Domain:       r.Domain,
		Status:       r.Status,
	}
}
