package service

import (
	"context"
	"errors"
	"os"
	"time"

	"techstore-ai-be/internal/dto"
	"techstore-ai-be/internal/entity"
	"techstore-ai-be/internal/repository/contract"
	"techstore-ai-be/internal/repository/specification"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenExpiry = time.Hour * 24

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error
	GetUserFromToken(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
}

type authService struct {
	userRepository contract.UserRepository
}

func NewAuthService(userRepository contract.UserRepository) IAuthService {
	return &authService{
		userRepository: userRepository,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := s.userRepository.FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	user := &entity.User{
		Id:           uuid.New(),
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: &hashStr,
		RegisteredAt: time.Now(),
		Active:       true,
	}
	if req.Phone != "" {
		user.Phone = &req.Phone
	}

	if err := s.userRepository.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepository.FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("invalid credentials")
	}
	if user.PasswordHash == nil {
		return nil, errors.New("user has no local password configured")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	now := time.Now()
	user.LastLoginAt = &now
	user.UpdatedAt = now
	if err := s.userRepository.Update(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:  *toUserResponse(user),
		Token: token,
	}, nil
}

func (s *authService) ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepository.FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil || user.PasswordHash == nil {
		return errors.New("user not found or has no local password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return errors.New("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), 10)
	if err != nil {
		return err
	}
	hashStr := string(hash)
	user.PasswordHash = &hashStr
	user.UpdatedAt = time.Now()

	return s.userRepository.Update(ctx, user)
}

func (s *authService) GetUserFromToken(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.userRepository.FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, errors.New("user not found or inactive")
	}
	return toUserResponse(user), nil
}

func (s *authService) generateToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.Id.String(),
		"email":     user.Email,
		"full_name": user.FullName,
		"exp":       time.Now().Add(accessTokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return token.SignedString([]byte(secret))
}

func toUserResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:             user.Id,
		FullName:       user.FullName,
		Email:          user.Email,
		Phone:          user.Phone,
		RegisteredAt:   user.RegisteredAt,
		LastLoginAt:    user.LastLoginAt,
		TotalPurchases: user.TotalPurchases,
		Active:         user.Active,
	}
}
