package ports

import "context"

// AdminCredentials is the payload forwarded to the external auth service.
type AdminCredentials struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	TenantID     string `json:"tenantId"`
	BusinessName string `json:"businessName"`
}

// AdminSession is whatever the external auth service returns on a
// successful login. Token and session lifecycle are owned upstream; this
// service only relays the result.
type AdminSession struct {
	Token string         `json:"token"`
	User  map[string]any `json:"user"`
}

// AuthGateway delegates authentication to the external auth service.
type AuthGateway interface {
	// Login forwards the credentials upstream. A rejection maps to an
	// unauthorized error; transport failures propagate unchanged.
	Login(ctx context.Context, creds AdminCredentials) (*AdminSession, error)
}
