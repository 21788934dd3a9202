// Package spireclient provides the main entry point for creating Spire API
// clients.
package spireclient

import (
	"fmt"

	"github.com/spirekit/spire-client/internal/client"
	"github.com/spirekit/spire-client/pkg/spire"
)

// New creates a new Spire API client for one company database. Configuration
// is validated up front: a missing host, company, or credential pair fails
// here rather than on the first request.
func New(config *spire.Config) (spire.Client, error) {
	if config == nil {
		return nil, spire.ErrConfigRequired
	}

	if config.Host == "" {
		return nil, spire.ErrHostRequired
	}

	if config.Company == "" {
		return nil, spire.ErrCompanyRequired
	}

	if config.Username == "" || config.Password == "" {
		return nil, spire.ErrCredentialsRequired
	}

	spireClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return spireClient, nil
}

// NewWithPassword wraps New with the minimal configuration most callers need.
func NewWithPassword(host, company, username, password string) (spire.Client, error) {
	return New(&spire.Config{
		Host:     host,
		Company:  company,
		Username: username,
		Password: password,
	})
}
