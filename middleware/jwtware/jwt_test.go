package jwtware_test

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/nebelclinic/clinic-api/middleware/jwtware"
)

type stubClaims struct {
	subject   string
	email     string
	firstName string
	lastName  string
	role      string
}

func (c stubClaims) Subject() string   { return c.subject }
func (c stubClaims) UserID() string    { return c.subject }
func (c stubClaims) Email() string     { return c.email }
func (c stubClaims) FirstName() string { return c.firstName }
func (c stubClaims) LastName() string  { return c.lastName }
func (c stubClaims) Role() string      { return c.role }
func (c stubClaims) IsAdmin() bool     { return c.role == "admin" }

// stubValidator accepts a fixed set of tokens.
type stubValidator struct {
	tokens map[string]jwtware.AuthClaims
}

func (v stubValidator) Validate(tokenString string) (jwtware.AuthClaims, error) {
	claims, ok := v.tokens[tokenString]
	if !ok {
		return nil, errors.New("signature verification failed")
	}
	return claims, nil
}

func validatorWith(tokens map[string]jwtware.AuthClaims) stubValidator {
	return stubValidator{tokens: tokens}
}

func okHandler(c *fiber.Ctx) error {
	return c.SendString("ok")
}

func readBody(t *testing.T, r io.Reader) string {
	t.Helper()
	b, err := io.ReadAll(r)
	assert.NoError(t, err)
	return string(b)
}

func TestGateExtractsFromHeader(t *testing.T) {
	app := fiber.New()
	app.Use(jwtware.New(jwtware.Config{
		TokenValidator: validatorWith(map[string]jwtware.AuthClaims{
			"valid-token": stubClaims{subject: "u1", role: "admin"},
		}),
	}))
	app.Get("/", okHandler)

	t.Run("Raw header value is the token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("x-auth-token", "valid-token")

		res, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, res.StatusCode)
	})

	t.Run("Missing header is a bad request", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)

		res, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
		assert.Equal(t, "token required", readBody(t, res.Body))
	})

	t.Run("Unknown token is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("x-auth-token", "forged-token")

		res, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
		assert.Equal(t, "Invalid or expired token", readBody(t, res.Body))
	})
}

func TestGateRoleRequirement(t *testing.T) {
	validator := validatorWith(map[string]jwtware.AuthClaims{
		"admin-token": stubClaims{subject: "u1", role: "admin"},
		"guest-token": stubClaims{subject: "u2", role: "guest"},
	})

	app := fiber.New()
	app.Use(jwtware.New(jwtware.Config{
		TokenValidator: validator,
		RequiredRole:   "admin",
	}))
	app.Get("/", okHandler)

	t.Run("Admin passes", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("x-auth-token", "admin-token")

		res, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, res.StatusCode)
	})

	t.Run("Guest is denied", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("x-auth-token", "guest-token")

		res, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
		assert.Equal(t, "Access Denied!", readBody(t, res.Body))
	})

	t.Run("Unverified requests never reach the role check", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)

		res, err := app.Test(req)
		assert.NoError(t, err)
		// Missing token fails extraction, not authorization.
		assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	})
}

func TestGateStoresClaims(t *testing.T) {
	validator := validatorWith(map[string]jwtware.AuthClaims{
		"valid-token": stubClaims{subject: "u1", email: "doctor@clinic.example", role: "admin"},
	})

	var fromLocals jwtware.AuthClaims
	var enriched jwtware.AuthClaims

	app := fiber.New()
	app.Use(jwtware.New(jwtware.Config{
		TokenValidator: validator,
		ContextKey:     "claims",
		ContextEnricher: func(ctx context.Context, claims jwtware.AuthClaims) context.Context {
			enriched = claims
			return ctx
		},
	}))
	app.Get("/", func(c *fiber.Ctx) error {
		fromLocals, _ = c.Locals("claims").(jwtware.AuthClaims)
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("x-auth-token", "valid-token")

	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	assert.NotNil(t, fromLocals)
	assert.Equal(t, "doctor@clinic.example", fromLocals.Email())
	assert.NotNil(t, enriched)
	assert.Equal(t, "u1", enriched.UserID())
}

func TestGateQueryExtractor(t *testing.T) {
	app := fiber.New()
	app.Use(jwtware.New(jwtware.Config{
		TokenValidator: validatorWith(map[string]jwtware.AuthClaims{
			"valid-token": stubClaims{subject: "u1", role: "admin"},
		}),
		TokenLookup: "query:token",
	}))
	app.Get("/", okHandler)

	req := httptest.NewRequest("GET", "/?token=valid-token", nil)

	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

func TestGateAuthSchemeHeader(t *testing.T) {
	app := fiber.New()
	app.Use(jwtware.New(jwtware.Config{
		TokenValidator: validatorWith(map[string]jwtware.AuthClaims{
			"valid-token": stubClaims{subject: "u1", role: "admin"},
		}),
		TokenLookup: "header:Authorization",
		AuthScheme:  "Bearer",
	}))
	app.Get("/", okHandler)

	t.Run("Scheme prefix is stripped", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer valid-token")

		res, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, res.StatusCode)
	})

	t.Run("Missing scheme is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "valid-token")

		res, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	})
}

func TestGateFilterSkips(t *testing.T) {
	app := fiber.New()
	app.Use(jwtware.New(jwtware.Config{
		TokenValidator: validatorWith(nil),
		Filter:         func(c *fiber.Ctx) bool { return true },
	}))
	app.Get("/", okHandler)

	req := httptest.NewRequest("GET", "/", nil)

	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

func TestNewPanicsWithoutValidator(t *testing.T) {
	assert.Panics(t, func() {
		jwtware.New(jwtware.Config{})
	})
}
