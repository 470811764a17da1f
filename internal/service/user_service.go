package service

import (
	"context"
	"errors"
	"time"

	"techstore-ai-be/internal/dto"
	"techstore-ai-be/internal/repository/contract"
	"techstore-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	DeactivateAccount(ctx context.Context, userId uuid.UUID) error
	ListUsers(ctx context.Context) (*dto.ListUsersResponse, error)
}

type userService struct {
	userRepository contract.UserRepository
}

func NewUserService(userRepository contract.UserRepository) IUserService {
	return &userService{
		userRepository: userRepository,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.userRepository.FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepository.FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	if req.FullName == "" && req.Phone == nil {
		return nil, errors.New("no fields to update")
	}
	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepository.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *userService) DeactivateAccount(ctx context.Context, userId uuid.UUID) error {
	user, err := s.userRepository.FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}
	return s.userRepository.Delete(ctx, userId)
}

func (s *userService) ListUsers(ctx context.Context) (*dto.ListUsersResponse, error) {
	users, err := s.userRepository.FindAll(ctx, specification.OrderBy{Field: "registered_at", Desc: true})
	if err != nil {
		return nil, err
	}

	resp := &dto.ListUsersResponse{
		Total: len(users),
		Users: make([]dto.UserResponse, len(users)),
	}
	for i, u := range users {
		resp.Users[i] = *toUserResponse(u)
	}
	return resp, nil
}
