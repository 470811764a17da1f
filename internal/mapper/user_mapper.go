package mapper

import (
	"techstore-ai-be/internal/entity"
	"techstore-ai-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:             u.Id,
		FullName:       u.FullName,
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		Phone:          u.Phone,
		RegisteredAt:   u.RegisteredAt,
		LastLoginAt:    u.LastLoginAt,
		TotalPurchases: u.TotalPurchases,
		Active:         u.Active,
		UpdatedAt:      u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:             u.Id,
		FullName:       u.FullName,
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		Phone:          u.Phone,
		RegisteredAt:   u.RegisteredAt,
		LastLoginAt:    u.LastLoginAt,
		TotalPurchases: u.TotalPurchases,
		Active:         u.Active,
		UpdatedAt:      u.UpdatedAt,
	}
}
