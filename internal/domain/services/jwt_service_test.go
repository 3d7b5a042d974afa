package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajju-1209/hostel-management/internal/domain/models"
	"github.com/ajju-1209/hostel-management/internal/domain/services"
	"github.com/ajju-1209/hostel-management/internal/infrastructure/config"
)

func newJWTService(t *testing.T) (services.InterfaceJWTService, *config.Config) {
	t.Helper()
	cfg := &config.Config{JWTSecretKey: "test-secret"}
	return services.NewJWTService(cfg, newTestDB(t)), cfg
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc, _ := newJWTService(t)

	token, err := svc.GenerateToken("a@x.com", models.RoleResident)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, models.RoleResident, claims.Role)
	assert.Equal(t, "hostel-complaint-service", claims.Issuer)
}

func TestValidateToken_Rejects(t *testing.T) {
	svc, _ := newJWTService(t)

	sign := func(claims jwt.Claims, secret string) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return s
	}
	valid := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}

	tests := map[string]string{
		"garbage":      "not-a-token",
		"wrong secret": sign(&services.JWTClaims{Email: "a@x.com", Role: "admin", RegisteredClaims: valid}, "other"),
		"expired": sign(&services.JWTClaims{Email: "a@x.com", Role: "admin", RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		}}, "test-secret"),
		"unknown role":  sign(&services.JWTClaims{Email: "a@x.com", Role: "root", RegisteredClaims: valid}, "test-secret"),
		"missing email": sign(&services.JWTClaims{Role: "admin", RegisteredClaims: valid}, "test-secret"),
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ValidateToken(token)
			assert.ErrorIs(t, err, services.ErrInvalidToken)
		})
	}
}

func TestLogin(t *testing.T) {
	cfg := &config.Config{JWTSecretKey: "test-secret"}
	db := newTestDB(t)
	createUser(t, db, "a@x.com", models.RoleResident)
	svc := services.NewJWTService(cfg, db)
	ctx := context.Background()

	result, err := svc.Login(ctx, " A@x.com ", "password")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", result.Email)
	assert.Equal(t, models.RoleResident, result.Role)
	assert.NotEmpty(t, result.Token)

	claims, err := svc.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)

	_, err = svc.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@x.com", "password")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}
