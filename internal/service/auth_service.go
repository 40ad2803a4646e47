package service

import (
	"context"
	"errors"

	"spendscan/internal/dto"
	"spendscan/internal/models"
	"spendscan/pkg/auth"

	"go.uber.org/zap"
)

var (
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so a caller cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type AuthService struct {
	userRepo UserRepository
	logger   *zap.Logger
}

func NewAuthService(userRepo UserRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) error {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUserExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info("User registered", zap.Int64("user_id", user.ID))
	return nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (int64, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return 0, ErrInvalidCredentials
	}

	return user.ID, nil
}
