// Package commands implements the spire CLI command tree.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/spirekit/spire-client/pkg/spire"
	"github.com/spirekit/spire-client/pkg/spireclient"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	defaultYAMLIndent = 2

	// NotAvailable fills table cells with no value.
	NotAvailable = "N/A"
)

// Common static errors used throughout the commands package.
var (
	ErrHostNotConfigured     = errors.New("no host configured (use --host, SPIRE_HOST, or run 'spire login')")
	ErrCompanyNotConfigured  = errors.New("no company configured (use --company or SPIRE_COMPANY)")
	ErrInvalidFilterFormat   = errors.New("invalid filter format, expected field=value")
	ErrInvalidSortFormat     = errors.New("invalid sort format, expected field or -field")
	ErrRecordIDRequired      = errors.New("record id is required")
	ErrUsernameNotConfigured = errors.New("no username configured (use --username or SPIRE_USERNAME)")
)

// CreateClient builds a client from the resolved configuration (flags,
// environment, config file).
func CreateClient() (spire.Client, error) {
	host := viper.GetString("host")
	if host == "" {
		return nil, ErrHostNotConfigured
	}

	company := viper.GetString("company")
	if company == "" {
		return nil, ErrCompanyNotConfigured
	}

	username := viper.GetString("username")
	if username == "" {
		return nil, ErrUsernameNotConfigured
	}

	client, err := spireclient.New(&spire.Config{
		Host:     host,
		Company:  company,
		Username: username,
		Password: viper.GetString("password"),
		Debug:    viper.GetBool("verbose"),
	})
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// ParseListFlags turns the common list flags into ListOptions. Filters are
// field=value pairs; sort fields take a leading "-" for descending.
func ParseListFlags(filters, sorts []string, query string, limit int, all bool) (*spire.ListOptions, error) {
	opts := &spire.ListOptions{
		Query: query,
		Limit: limit,
		All:   all,
	}

	if len(filters) > 0 {
		opts.Filter = make(map[string]interface{}, len(filters))

		for _, raw := range filters {
			field, value, ok := strings.Cut(raw, "=")
			if !ok || field == "" {
				return nil, fmt.Errorf("%w: %q", ErrInvalidFilterFormat, raw)
			}

			opts.Filter[field] = value
		}
	}

	if len(sorts) > 0 {
		opts.Sort = make(map[string]string, len(sorts))

		for _, raw := range sorts {
			field := raw
			direction := spire.SortAscending

			if strings.HasPrefix(raw, "-") {
				field = strings.TrimPrefix(raw, "-")
				direction = spire.SortDescending
			}

			if field == "" {
				return nil, fmt.Errorf("%w: %q", ErrInvalidSortFormat, raw)
			}

			opts.Sort[field] = direction
		}
	}

	return opts, nil
}

// StandardJSONRenderer writes data to stdout as indented JSON.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data to stdout as YAML.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// stringValue renders an optional string field for table output.
func stringValue(s *string) string {
	if s == nil {
		return NotAvailable
	}

	return *s
}

// intValue renders an optional int field for table output.
func intValue(i *int) string {
	if i == nil {
		return NotAvailable
	}

	return fmt.Sprintf("%d", *i)
}
