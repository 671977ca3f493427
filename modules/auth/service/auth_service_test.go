package service

import (
	"context"
	"testing"

	"bebit-api/core/config"
	"bebit-api/core/constants"
	"bebit-api/core/errors"
	"bebit-api/core/utils"
	"bebit-api/modules/auth/dto"
	"bebit-api/modules/user/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	user.ID = uuid.New()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, id uuid.UUID, username, password *string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) SetVerified(_ context.Context, id uuid.UUID, verified bool) (*entity.User, error) {
	return r.users[id], nil
}

func setTestConfig(t *testing.T) {
	t.Helper()
	config.Set(&config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			AccessTTL:  constants.TokenAccessTTL,
			RefreshTTL: constants.TokenRefreshTTL,
		},
	})
}

func authCode(t *testing.T, err error) errors.ErrorCode {
	t.Helper()
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestRegisterIssuesTokenPair(t *testing.T) {
	setTestConfig(t)
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, nil)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "lea", Password: "s3cret-pass", Role: constants.RoleArtist,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, constants.RoleArtist, resp.User.Role)
	// stored password is hashed
	assert.True(t, utils.ComparePassword(resp.User.Password, "s3cret-pass"))

	claims, err := utils.ValidateAndParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, constants.ScopeTokenAccess, claims.Scope)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	setTestConfig(t)
	repo := newFakeUserRepo(&entity.User{ID: uuid.New(), Username: "lea"})
	svc := NewAuthService(repo, nil)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "lea", Password: "s3cret-pass", Role: constants.RoleUser,
	})
	assert.Equal(t, errors.ErrAlreadyExists, authCode(t, err))
}

func TestLogin(t *testing.T) {
	setTestConfig(t)
	hashed, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)
	user := &entity.User{ID: uuid.New(), Username: "lea", Password: hashed, Role: constants.RoleUser}
	svc := NewAuthService(newFakeUserRepo(user), nil)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "lea", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "lea", Password: "wrong"})
	assert.Equal(t, errors.ErrUnauthorized, authCode(t, err))

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "s3cret-pass"})
	assert.Equal(t, errors.ErrUnauthorized, authCode(t, err))
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	setTestConfig(t)
	user := &entity.User{ID: uuid.New(), Username: "lea", Role: constants.RoleUser}
	svc := NewAuthService(newFakeUserRepo(user), nil)

	accessToken, err := utils.GenerateToken(user.ID, user.Username, user.Role, constants.ScopeTokenAccess)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), accessToken)
	assert.Equal(t, errors.ErrUnauthorized, authCode(t, err))
}

func TestRefreshIssuesNewPair(t *testing.T) {
	setTestConfig(t)
	user := &entity.User{ID: uuid.New(), Username: "lea", Role: constants.RoleUser}
	svc := NewAuthService(newFakeUserRepo(user), nil)

	refreshToken, err := utils.GenerateToken(user.ID, user.Username, user.Role, constants.ScopeTokenRefresh)
	require.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), refreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.NotEmpty(t, resp.AccessToken)
}
