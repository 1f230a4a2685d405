package role

import "context"

// RoleRepository is the read-only catalog the payroll core consumes.
// Role administration happens outside this service.
type RoleRepository interface {
	// GetActiveByID returns the role only when it exists and is active;
	// absence is a hard failure for record creation.
	GetActiveByID(ctx context.Context, id string) (Role, error)
	ListActive(ctx context.Context) ([]Role, error)
}
