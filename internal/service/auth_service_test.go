package service

import (
	"context"
	"testing"

	"techstore-ai-be/internal/dto"
	"techstore-ai-be/internal/entity"
	"techstore-ai-be/internal/repository/specification"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	for i, u := range r.users {
		if u.Id == user.Id {
			r.users[i] = user
			return nil
		}
	}
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for _, u := range r.users {
		if u.Id == id {
			u.Active = false
		}
	}
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.users {
		if r.matches(u, specs) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if r.matches(u, specs) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	found, _ := r.FindAll(ctx, specs...)
	return int64(len(found)), nil
}

func (r *fakeUserRepo) matches(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByEmail:
			if u.Email != s.Email {
				return false
			}
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.ActiveOnly:
			if !u.Active {
				return false
			}
		}
	}
	return true
}

func TestAuthRegisterAndLogin(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{
		FullName: "Laura Campos",
		Email:    "laura@example.com",
		Password: "secret123",
		Phone:    "+34600111222",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Laura Campos", user.FullName)
	assert.True(t, user.Active)
	assert.NotNil(t, user.Phone)

	// stored hash must not be the plaintext password
	stored := repo.users[0]
	assert.NotEqual(t, "secret123", *stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.PasswordHash), []byte("secret123")))

	auth, err := svc.Login(ctx, &dto.LoginRequest{Email: "laura@example.com", Password: "secret123"})
	assert.NoError(t, err)
	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, user.Id, auth.User.Id)
	assert.NotNil(t, auth.User.LastLoginAt)
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{FullName: "A", Email: "dup@example.com", Password: "secret123"})
	assert.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterRequest{FullName: "B", Email: "dup@example.com", Password: "otherpass"})
	assert.EqualError(t, err, "email already registered")
}

func TestAuthLoginFailures(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo)
	ctx := context.Background()

	_, err := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.EqualError(t, err, "invalid credentials")

	_, err = svc.Register(ctx, &dto.RegisterRequest{FullName: "C", Email: "c@example.com", Password: "secret123"})
	assert.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "c@example.com", Password: "wrongpass"})
	assert.EqualError(t, err, "invalid credentials")
}

func TestAuthTokenClaims(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{FullName: "Mario Ruiz", Email: "mario@example.com", Password: "secret123"})
	assert.NoError(t, err)

	auth, err := svc.Login(ctx, &dto.LoginRequest{Email: "mario@example.com", Password: "secret123"})
	assert.NoError(t, err)

	token, err := jwt.Parse(auth.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("default_secret"), nil
	})
	assert.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, user.Id.String(), claims["user_id"])
	assert.Equal(t, "mario@example.com", claims["email"])
	assert.Equal(t, "Mario Ruiz", claims["full_name"])
}

func TestAuthChangePassword(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{FullName: "D", Email: "d@example.com", Password: "oldpass1"})
	assert.NoError(t, err)

	err = svc.ChangePassword(ctx, user.Id, &dto.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "newpass1"})
	assert.EqualError(t, err, "current password is incorrect")

	err = svc.ChangePassword(ctx, user.Id, &dto.ChangePasswordRequest{CurrentPassword: "oldpass1", NewPassword: "newpass1"})
	assert.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "d@example.com", Password: "oldpass1"})
	assert.EqualError(t, err, "invalid credentials")

	auth, err := svc.Login(ctx, &dto.LoginRequest{Email: "d@example.com", Password: "newpass1"})
	assert.NoError(t, err)
	assert.NotEmpty(t, auth.Token)
}

func TestAuthGetUserFromToken(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{FullName: "E", Email: "e@example.com", Password: "secret123"})
	assert.NoError(t, err)

	got, err := svc.GetUserFromToken(ctx, user.Id)
	assert.NoError(t, err)
	assert.Equal(t, "e@example.com", got.Email)

	_, err = svc.GetUserFromToken(ctx, uuid.New())
	assert.EqualError(t, err, "user not found or inactive")
}
