package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Authentication errors
	ErrMissingCredentials = fmt.Errorf("missing credentials")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrAuthRequired       = fmt.Errorf("authentication required")

	// Upstream errors
	ErrAPIRequest     = fmt.Errorf("upstream request failed")
	ErrRateLimited    = fmt.Errorf("rate limited by upstream")
	ErrSchemaMismatch = fmt.Errorf("unexpected upstream response shape")
	ErrNoResults      = fmt.Errorf("no results")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
