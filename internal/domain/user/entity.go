package user

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
