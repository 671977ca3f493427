package service

import (
	"context"
	"testing"

	"bebit-api/core/authz"
	"bebit-api/core/constants"
	"bebit-api/core/errors"
	"bebit-api/core/utils"
	"bebit-api/modules/user/dto"
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
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	if username != nil {
		u.Username = *username
	}
	if password != nil {
		u.Password = *password
	}
	return u, nil
}

func (r *fakeUserRepo) SetVerified(_ context.Context, id uuid.UUID, verified bool) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	u.IsVerified = verified
	return u, nil
}

func userCode(t *testing.T, err error) errors.ErrorCode {
	t.Helper()
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestGetUser(t *testing.T) {
	u := &entity.User{ID: uuid.New(), Username: "lea", Role: constants.RoleUser}
	svc := NewUserService(newFakeUserRepo(u))

	got, err := svc.GetUser(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "lea", got.Username)

	_, err = svc.GetUser(context.Background(), uuid.New())
	assert.Equal(t, errors.ErrNotFound, userCode(t, err))
}

func TestUpdateUserSelfOnly(t *testing.T) {
	u := &entity.User{ID: uuid.New(), Username: "lea", Role: constants.RoleUser}
	svc := NewUserService(newFakeUserRepo(u))

	stranger := authz.Principal{UserID: uuid.New(), Role: constants.RoleUser}
	newName := "eva"
	_, err := svc.UpdateUser(context.Background(), stranger, u.ID, &dto.UpdateUserRequest{Username: &newName})
	assert.Equal(t, errors.ErrForbidden, userCode(t, err))
	assert.Equal(t, "lea", u.Username)

	self := authz.Principal{UserID: u.ID, Role: constants.RoleUser}
	updated, err := svc.UpdateUser(context.Background(), self, u.ID, &dto.UpdateUserRequest{Username: &newName})
	require.NoError(t, err)
	assert.Equal(t, "eva", updated.Username)
}

func TestUpdateUserAdminBypass(t *testing.T) {
	u := &entity.User{ID: uuid.New(), Username: "lea", Role: constants.RoleUser}
	svc := NewUserService(newFakeUserRepo(u))

	admin := authz.Principal{UserID: uuid.New(), Role: constants.RoleAdmin}
	newName := "eva"
	updated, err := svc.UpdateUser(context.Background(), admin, u.ID, &dto.UpdateUserRequest{Username: &newName})
	require.NoError(t, err)
	assert.Equal(t, "eva", updated.Username)
}

func TestUpdateUserTakenUsername(t *testing.T) {
	u := &entity.User{ID: uuid.New(), Username: "lea", Role: constants.RoleUser}
	other := &entity.User{ID: uuid.New(), Username: "eva", Role: constants.RoleUser}
	svc := NewUserService(newFakeUserRepo(u, other))

	self := authz.Principal{UserID: u.ID, Role: constants.RoleUser}
	taken := "eva"
	_, err := svc.UpdateUser(context.Background(), self, u.ID, &dto.UpdateUserRequest{Username: &taken})
	assert.Equal(t, errors.ErrAlreadyExists, userCode(t, err))
}

func TestUpdateUserHashesPassword(t *testing.T) {
	u := &entity.User{ID: uuid.New(), Username: "lea", Role: constants.RoleUser}
	svc := NewUserService(newFakeUserRepo(u))

	self := authz.Principal{UserID: u.ID, Role: constants.RoleUser}
	password := "new-s3cret"
	updated, err := svc.UpdateUser(context.Background(), self, u.ID, &dto.UpdateUserRequest{Password: &password})
	require.NoError(t, err)
	assert.NotEqual(t, password, updated.Password)
	assert.True(t, utils.ComparePassword(updated.Password, password))
}

func TestVerifyUser(t *testing.T) {
	u := &entity.User{ID: uuid.New(), Username: "lea", Role: constants.RoleUser}
	svc := NewUserService(newFakeUserRepo(u))

	verified, err := svc.VerifyUser(context.Background(), u.ID)
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)

	_, err = svc.VerifyUser(context.Background(), uuid.New())
	assert.Equal(t, errors.ErrNotFound, userCode(t, err))
}
