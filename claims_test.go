package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	auth "github.com/nebelclinic/clinic-api"
)

func TestJWTClaimsAccessors(t *testing.T) {
	issued := time.Now().Truncate(time.Second)

	claims := &auth.JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  "ffa8d021-9bb0-4bc3-81e9-bcb7318c8847",
			IssuedAt: jwt.NewNumericDate(issued),
		},
		UID:       "ffa8d021-9bb0-4bc3-81e9-bcb7318c8847",
		UserEmail: "doctor@clinic.example",
		GivenName: "Abebe",
		FamName:   "Bikila",
		UserRole:  "admin",
	}

	assert.Equal(t, "ffa8d021-9bb0-4bc3-81e9-bcb7318c8847", claims.Subject())
	assert.Equal(t, "ffa8d021-9bb0-4bc3-81e9-bcb7318c8847", claims.UserID())
	assert.Equal(t, "doctor@clinic.example", claims.Email())
	assert.Equal(t, "Abebe", claims.FirstName())
	assert.Equal(t, "Bikila", claims.LastName())
	assert.Equal(t, "admin", claims.Role())
	assert.True(t, claims.IsAdmin())
	assert.Equal(t, issued, claims.IssuedAt())
}

func TestJWTClaimsUserIDFallsBackToSubject(t *testing.T) {
	claims := &auth.JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "sub-only"},
	}
	assert.Equal(t, "sub-only", claims.UserID())
}

func TestJWTClaimsIsAdmin(t *testing.T) {
	tests := []struct {
		name string
		role string
		want bool
	}{
		{"Admin role", "admin", true},
		{"Guest role", "guest", false},
		{"Unknown role", "superuser", false},
		{"Empty role", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := &auth.JWTClaims{UserRole: tt.role}
			assert.Equal(t, tt.want, claims.IsAdmin())
		})
	}
}

func TestJWTClaimsExpires(t *testing.T) {
	t.Run("No exp claim means zero time", func(t *testing.T) {
		claims := &auth.JWTClaims{}
		assert.True(t, claims.Expires().IsZero())
	})

	t.Run("Exp claim round trips", func(t *testing.T) {
		exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
		claims := &auth.JWTClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(exp),
			},
		}
		assert.Equal(t, exp, claims.Expires())
	})
}
