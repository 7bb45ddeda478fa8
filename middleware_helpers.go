package auth

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nebelclinic/clinic-api/middleware/jwtware"
)

// ContextEnricherAdapter adapts jwtware.AuthClaims to auth.AuthClaims and
// stores them in the standard context for downstream handlers.
func ContextEnricherAdapter(c context.Context, claims jwtware.AuthClaims) context.Context {
	authClaims, ok := claims.(AuthClaims)
	if !ok {
		return c
	}

	return WithClaimsContext(c, authClaims)
}

// ProtectedRoute builds the composed gate for routes any verified identity
// may reach.
func ProtectedRoute(cfg Config, ts TokenService, errorHandler func(*fiber.Ctx, error) error) fiber.Handler {
	return jwtware.New(jwtware.Config{
		ErrorHandler:    errorHandler,
		TokenValidator:  tokenValidatorAdapter{ts},
		ContextKey:      cfg.GetContextKey(),
		TokenLookup:     cfg.GetTokenLookup(),
		AuthScheme:      cfg.GetAuthScheme(),
		ContextEnricher: ContextEnricherAdapter,
	})
}

// AdminRoute builds the composed gate with the admin role requirement. The
// role check only exists inside the gate, after verification; there is no
// standalone authorization middleware to misorder.
func AdminRoute(cfg Config, ts TokenService, errorHandler func(*fiber.Ctx, error) error) fiber.Handler {
	return jwtware.New(jwtware.Config{
		ErrorHandler:    errorHandler,
		TokenValidator:  tokenValidatorAdapter{ts},
		ContextKey:      cfg.GetContextKey(),
		TokenLookup:     cfg.GetTokenLookup(),
		AuthScheme:      cfg.GetAuthScheme(),
		RequiredRole:    string(RoleAdmin),
		ContextEnricher: ContextEnricherAdapter,
	})
}

// ValidateRouteErrorHandler maps gate failures for the validate endpoint.
// Its clients treat a token that fails verification as a server-side 500,
// unlike the other gated routes which answer 401.
func ValidateRouteErrorHandler(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, jwtware.ErrJWTMissingOrMalformed):
		return c.Status(fiber.StatusBadRequest).SendString("token required")
	case errors.Is(err, jwtware.ErrInsufficientRole):
		return c.Status(fiber.StatusForbidden).SendString("Access Denied!")
	default:
		return c.Status(fiber.StatusInternalServerError).SendString("Server Error")
	}
}

// tokenValidatorAdapter narrows TokenService to the jwtware mirror interface.
type tokenValidatorAdapter struct {
	ts TokenService
}

func (a tokenValidatorAdapter) Validate(tokenString string) (jwtware.AuthClaims, error) {
	claims, err := a.ts.Validate(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
