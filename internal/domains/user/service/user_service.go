package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"pptgenie-backend/internal/domains/user"
	"pptgenie-backend/pkg/cache"
	"pptgenie-backend/pkg/jwt"
	"pptgenie-backend/pkg/logger"
)

const (
	bcryptCost = 12

	// Login throttling: after maxLoginAttempts failures for the same
	// email+IP pair, further attempts are rejected until the window expires.
	maxLoginAttempts   = 5
	loginAttemptWindow = 15 * time.Minute
)

type userService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
	cache      cache.Cache
}

func NewUserService(repo user.Repository, jwtManager *jwt.Manager, c cache.Cache) user.Service {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
		cache:      c,
	}
}

// ════════════════════════════════════════════════════════════════════
// Registration
// ════════════════════════════════════════════════════════════════════

func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.UserDTO, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FullName = strings.TrimSpace(req.FullName)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, user.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	u := &user.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	logger.Info("User registered", map[string]interface{}{
		"user_id": u.ID.String(),
	})

	dto := u.ToDTO()
	return &dto, nil
}

// ════════════════════════════════════════════════════════════════════
// Login
// ════════════════════════════════════════════════════════════════════

func (s *userService) Login(ctx context.Context, req user.LoginRequest, clientIP string) (*user.LoginResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := req.Validate(); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	throttleKey := s.throttleKey(req.Email, clientIP)
	if s.isThrottled(ctx, throttleKey) {
		return nil, user.ErrTooManyAttempts
	}

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			s.recordFailedAttempt(ctx, throttleKey)
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		s.recordFailedAttempt(ctx, throttleKey)
		return nil, user.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	// Successful login clears the failure counter.
	if err := s.cache.Delete(ctx, throttleKey); err != nil {
		logger.Warn("Failed to reset login attempt counter", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return &user.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         u.ToDTO(),
	}, nil
}

func (s *userService) Refresh(ctx context.Context, req user.RefreshRequest) (*user.RefreshResponse, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &user.RefreshResponse{AccessToken: accessToken}, nil
}

func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*user.UserDTO, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := u.ToDTO()
	return &dto, nil
}

// ════════════════════════════════════════════════════════════════════
// Login throttling helpers
// ════════════════════════════════════════════════════════════════════

func (s *userService) throttleKey(email, clientIP string) string {
	return fmt.Sprintf("login:attempts:%s:%s", email, clientIP)
}

func (s *userService) isThrottled(ctx context.Context, key string) bool {
	var attempts int64
	found, err := s.cache.Get(ctx, key, &attempts)
	if err != nil {
		logger.Warn("Failed to read login attempt counter", map[string]interface{}{
			"error": err.Error(),
		})
		return false
	}
	return found && attempts >= maxLoginAttempts
}

func (s *userService) recordFailedAttempt(ctx context.Context, key string) {
	attempts, err := s.cache.Increment(ctx, key)
	if err != nil {
		logger.Warn("Failed to record login attempt", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if attempts == 1 {
		if err := s.cache.Expire(ctx, key, loginAttemptWindow); err != nil {
			logger.Warn("Failed to set login attempt window", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}
