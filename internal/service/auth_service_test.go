package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invencost/internal/config"
	"invencost/internal/dto"
	"invencost/internal/model"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 1}
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newUserRepoStub()
	svc := NewAuthService(repo, testConfig())
	ctx := context.Background()

	resp, err := svc.Register(ctx, dto.RegisterRequest{
		Username: "ana", Email: "ana@example.com", Password: "secreta",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.Type)
	assert.Equal(t, "ana", resp.Username)
	assert.NotEmpty(t, resp.Token)

	// The stored hash must not be the plaintext.
	user, err := repo.FindByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.NotEqual(t, "secreta", user.PasswordHash)
	assert.Equal(t, []string{model.RoleUser}, user.Roles)

	login, err := svc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "secreta"})
	require.NoError(t, err)
	assert.Equal(t, "ana", login.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newUserRepoStub()
	svc := NewAuthService(repo, testConfig())
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{
		Username: "ana", Email: "ana@example.com", Password: "secreta",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "otra"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewAuthService(newUserRepoStub(), testConfig())
	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	repo := newUserRepoStub()
	svc := NewAuthService(repo, testConfig())
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{
		Username: "ana", Email: "ana@example.com", Password: "secreta",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, dto.RegisterRequest{
		Username: "ana", Email: "otra@example.com", Password: "secreta",
	})
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = svc.Register(ctx, dto.RegisterRequest{
		Username: "otra", Email: "ana@example.com", Password: "secreta",
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestTokenCarriesUsernameAndRoles(t *testing.T) {
	repo := newUserRepoStub()
	svc := NewAuthService(repo, testConfig())

	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "ana", Email: "ana@example.com", Password: "secreta",
	})
	require.NoError(t, err)

	token, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "ana", claims["username"])
	assert.Contains(t, claims["roles"], model.RoleUser)
}
