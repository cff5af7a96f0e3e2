package domain

import (
	"regexp"
	"strings"
)

// hostnamePattern matches lowercase hostname-shaped strings such as
// "learn.example.com". The domain is lowercased before this check runs.
var hostnamePattern = regexp.MustCompile(`^[a-z0-9-]+(\.[a-z0-9-]+)*$`)

// NewTenantPayload is the raw creation payload before normalization.
// All fields are optional; missing fields arrive as empty strings.
type NewTenantPayload struct {
	BusinessName string
	Domain       string
	Status       string
}

// ValidateNewTenant normalizes and validates a tenant creation payload.
//
// Every rule is checked and every failure collected; the returned error
// carries all violations joined into a single message rather than stopping
// at the first one. On success the result contains only the three
// allow-listed fields.
func ValidateNewTenant(p NewTenantPayload) (NewTenant, error) {
	businessName := strings.TrimSpace(p.BusinessName)
	domainName := strings.ToLower(strings.TrimSpace(p.Domain))
	status := strings.ToLower(strings.TrimSpace(p.Status))
	if status == "" {
		status = string(TenantActive)
	}

	var violations []string

	if businessName == "" {
		violations = append(violations, "businessName is required.")
	}
	if domainName == "" {
		violations = append(violations, "domain is required.")
	} else if !hostnamePattern.MatchString(domainName) {
		violations = append(violations, "domain must be a valid hostname (lowercase letters, digits, hyphens and dots).")
	}
	if !isValidTenantStatus(status) {
		violations = append(violations, "status must be one of: active, inactive, trial, suspended.")
	}

	if len(violations) > 0 {
		return NewTenant{}, NewValidationError(strings.Join(violations, " "))
	}

	return NewTenant{
		BusinessName: businessName,
		Domain:       domainName,
		Status:       TenantStatus(status),
	}, nil
}

func isValidTenantStatus(s string) bool {
	for _, valid := range TenantStatuses {
		if s == string(valid) {
			return true
		}
	}
	return false
}
