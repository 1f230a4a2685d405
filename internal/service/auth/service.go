package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/nominamx/payroll-backend-go/internal/domain/auth"
	"github.com/nominamx/payroll-backend-go/internal/domain/user"
	"github.com/nominamx/payroll-backend-go/internal/pkg/jwt"
)

type Service struct {
	userRepo user.UserRepository
	jwt      jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &Service{
		userRepo: userRepo,
		jwt:      jwtService,
	}
}

func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	// Unknown usernames and wrong passwords are indistinguishable to the
	// caller.
	u, err := s.userRepo.GetActiveByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(u.ID, u.Username)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}
