package user

import (
	"context"

	"github.com/google/uuid"
)

// Service is the user business logic contract: registration, login with
// failed-attempt throttling, token refresh, and profile lookup.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*UserDTO, error)
	Login(ctx context.Context, req LoginRequest, clientIP string) (*LoginResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (*RefreshResponse, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*UserDTO, error)
}
