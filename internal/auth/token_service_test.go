package auth

import (
	"testing"
	"time"

	"github.com/franciscosanchezn/gin-vehicle-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-jwt-secret-key-32-characters"

func newTestService(t *testing.T) *TokenService {
	svc, err := NewTokenService(testSecret, 0)
	require.NoError(t, err)
	return svc
}

func TestNewTokenService(t *testing.T) {
	_, err := NewTokenService("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)

	svc := newTestService(t)
	assert.Equal(t, DefaultTokenTTL, svc.TTL())
}

func TestIssueAndParse(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.Issue(models.Administrator{ID: 1, Email: "editor@teste.com", Role: models.RoleEditor})
	require.NoError(t, err)
	assert.Contains(t, token, ".")

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "editor@teste.com", claims.Email)
	assert.Equal(t, models.RoleEditor, claims.Role)

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 24*time.Hour, lifetime)
}

func TestIssueRejectsUnknownRole(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Issue(models.Administrator{Email: "adm@teste.com", Role: "Root"})
	assert.Error(t, err)
}

func TestParseExpiredToken(t *testing.T) {
	svc := newTestService(t)
	issued := time.Now().Add(-25 * time.Hour)
	svc.now = func() time.Time { return issued }

	token, err := svc.Issue(models.Administrator{Email: "adm@teste.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsForeignTokens(t *testing.T) {
	svc := newTestService(t)
	other, err := NewTokenService("another-secret", 0)
	require.NoError(t, err)

	foreign, err := other.Issue(models.Administrator{Email: "adm@teste.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	testCases := []struct {
		name  string
		token func() string
	}{
		{
			name:  "wrong signing key",
			token: func() string { return foreign },
		},
		{
			name:  "garbage",
			token: func() string { return "not-a-jwt" },
		},
		{
			name: "unsigned token",
			token: func() string {
				tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
					"email": "adm@teste.com",
					"role":  "Admin",
					"exp":   time.Now().Add(time.Hour).Unix(),
				})
				s, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return s
			},
		},
		{
			name: "unknown role claim",
			token: func() string {
				tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
					"email": "adm@teste.com",
					"role":  "Root",
					"exp":   time.Now().Add(time.Hour).Unix(),
				})
				s, err := tok.SignedString([]byte(testSecret))
				require.NoError(t, err)
				return s
			},
		},
		{
			name: "missing role claim",
			token: func() string {
				tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
					"email": "adm@teste.com",
					"exp":   time.Now().Add(time.Hour).Unix(),
				})
				s, err := tok.SignedString([]byte(testSecret))
				require.NoError(t, err)
				return s
			},
		},
		{
			name: "missing expiry",
			token: func() string {
				tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
					"email": "adm@teste.com",
					"role":  "Admin",
				})
				s, err := tok.SignedString([]byte(testSecret))
				require.NoError(t, err)
				return s
			},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Parse(tt.token())
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
