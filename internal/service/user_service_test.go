package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invencost/internal/dto"
)

func registerUser(t *testing.T, repo *userRepoStub, username, email string) uint {
	t.Helper()
	svc := NewAuthService(repo, testConfig())
	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: username, Email: email, Password: "secreta",
	})
	require.NoError(t, err)
	u, err := repo.FindByUsername(context.Background(), username)
	require.NoError(t, err)
	return u.ID
}

func strPtr(s string) *string { return &s }

func TestUpdateProfilePartial(t *testing.T) {
	repo := newUserRepoStub()
	id := registerUser(t, repo, "ana", "ana@example.com")
	svc := NewUserService(repo)
	ctx := context.Background()

	resp, err := svc.UpdateProfile(ctx, id, dto.UpdateProfileRequest{
		FirstName: strPtr("Ana"),
		Bio:       strPtr("Cocinera"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", *resp.FirstName)
	assert.Equal(t, "Cocinera", *resp.Bio)
	// Untouched fields stay as they were.
	assert.Equal(t, "ana@example.com", resp.Email)
	assert.Nil(t, resp.LastName)
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	repo := newUserRepoStub()
	id := registerUser(t, repo, "ana", "ana@example.com")
	registerUser(t, repo, "carlos", "carlos@example.com")
	svc := NewUserService(repo)

	_, err := svc.UpdateProfile(context.Background(), id, dto.UpdateProfileRequest{
		Email: strPtr("carlos@example.com"),
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestChangePassword(t *testing.T) {
	repo := newUserRepoStub()
	id := registerUser(t, repo, "ana", "ana@example.com")
	userSvc := NewUserService(repo)
	authSvc := NewAuthService(repo, testConfig())
	ctx := context.Background()

	err := userSvc.ChangePassword(ctx, id, dto.ChangePasswordRequest{
		CurrentPassword: "secreta", NewPassword: "nueva-clave",
	})
	require.NoError(t, err)

	// Old password no longer works; new one does.
	_, err = authSvc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "secreta"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = authSvc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "nueva-clave"})
	assert.NoError(t, err)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	repo := newUserRepoStub()
	id := registerUser(t, repo, "ana", "ana@example.com")
	svc := NewUserService(repo)

	err := svc.ChangePassword(context.Background(), id, dto.ChangePasswordRequest{
		CurrentPassword: "equivocada", NewPassword: "nueva-clave",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
