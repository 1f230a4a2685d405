package user

import "context"

type UserRepository interface {
	GetActiveByUsername(ctx context.Context, username string) (User, error)
}
