package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/propleague/ante/internal/security"
	"github.com/propleague/ante/models"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type service struct {
	repo          Repository
	tokenMaker    security.Maker
	tokenDuration time.Duration
}

// NewService creates a new user service.
func NewService(repo Repository, tokenMaker security.Maker, tokenDuration time.Duration) Service {
	return &service{
		repo:          repo,
		tokenMaker:    tokenMaker,
		tokenDuration: tokenDuration,
	}
}

func (s *service) Register(ctx context.Context, req *RegisterUserRequest) (*Response, error) {
	hashedPassword, err := models.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.PhoneNumber,
		PasswordHash: hashedPassword,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return toResponse(user), nil
}

func (s *service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.CheckPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}

	user.UpdateLastLogin()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	version := user.UpdatedAt.UnixNano()
	accessToken, _, err := s.tokenMaker.CreateToken(user.ID, s.tokenDuration, version, security.TokenScopeAccess)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken: accessToken,
		User:        *toResponse(user),
	}, nil
}

func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*Response, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}
	return toResponse(user), nil
}

func toResponse(user *models.User) *Response {
	return &Response{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
	}
}
