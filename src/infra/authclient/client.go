// Package authclient is the HTTP adapter for the external authentication
// service. Token and session lifecycle are owned upstream; this client
// only forwards credentials and relays the result.
package authclient

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"

	"lmsadmin/src/core/domain"
	"lmsadmin/src/core/ports"
	"lmsadmin/src/infra/config"
)

// Client implements ports.AuthGateway using resty.
type Client struct {
	http *resty.Client
	log  *slog.Logger
}

// New constructs a client for the configured auth service.
// Calls are not retried; a failure propagates immediately to the caller.
func New(cfg config.AuthConfig, log *slog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.ServiceURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http: httpClient,
		log:  log,
	}
}

// Login forwards the credentials to the auth service login endpoint.
func (c *Client) Login(ctx context.Context, creds ports.AdminCredentials) (*ports.AdminSession, error) {
	var session ports.AdminSession

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(creds).
		SetResult(&session).
		Post("/auth/login")
	if err != nil {
		return nil, fmt.Errorf("auth service unreachable: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		return nil, domain.NewUnauthorizedError("invalid credentials")
	case resp.IsError():
		c.log.Error("auth service returned an error",
			"status", resp.StatusCode(),
		)
		return nil, fmt.Errorf("auth service error: status %d", resp.StatusCode())
	}

	return &session, nil
}
