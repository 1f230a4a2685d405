package employee

import "time"

type Employee struct {
	ID             string
	EmployeeNumber string
	Name           string
	RoleID         string
	Active         bool
	CreatedBy      string
	UpdatedBy      *string
	CreatedAt      time.Time
	UpdatedAt      *time.Time

	// Joined field
	RoleName *string
}
