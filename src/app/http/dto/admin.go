package dto

import "lmsadmin/src/core/ports"

// AdminLoginRequest is the payload for POST /admin/login. The credentials
// are forwarded to the external auth service untouched.
type AdminLoginRequest struct {
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	TenantID     string `json:"tenantId"`
	BusinessName string `json:"businessName"`
}

// ToCredentials converts the request to the upstream credential payload.
func (r *AdminLoginRequest) ToCredentials() ports.AdminCredentials {
	return ports.AdminCredentials{
		Email:        r.Email,
		Password:     r.Password,
		TenantID:     r.TenantID,
		BusinessName: r.BusinessName,
	}
}
