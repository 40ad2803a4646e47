package service

import (
	"context"
	"testing"

	"spendscan/internal/dto"
	"spendscan/internal/models"
	"spendscan/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	users  map[string]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	stored := *user
	r.users[user.Email] = &stored
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if user, ok := r.users[email]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, nil
}

func TestAuthServiceRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, zap.NewNop())

	err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "a@b.com",
		Password: "secret",
	})
	require.NoError(t, err)

	stored := repo.users["a@b.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret", stored.Password, "plaintext must never be stored")
	assert.True(t, auth.CheckPassword(stored.Password, "secret"))
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, zap.NewNop())

	req := &dto.RegisterRequest{Email: "a@b.com", Password: "secret"}
	require.NoError(t, svc.Register(context.Background(), req))

	err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrUserExists)
	assert.Len(t, repo.users, 1)
}

func TestAuthServiceLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, zap.NewNop())

	require.NoError(t, svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "a@b.com",
		Password: "secret",
	}))

	userID, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "a@b.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)
}

func TestAuthServiceLoginFailsUniformly(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, zap.NewNop())

	require.NoError(t, svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "a@b.com",
		Password: "secret",
	}))

	// Wrong password and unknown email must be indistinguishable.
	_, wrongPassword := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "a@b.com",
		Password: "nope",
	})
	_, unknownEmail := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@b.com",
		Password: "secret",
	})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownEmail)
}
