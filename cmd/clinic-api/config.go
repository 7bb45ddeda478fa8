package main

import (
	"os"
	"strconv"
	"strings"
)

// config is the env-backed application configuration. It satisfies
// auth.Config so the signing key and token options are injected rather
// than read from ambient state inside the auth package.
type config struct {
	httpAddr        string
	dsn             string
	uploadDir       string
	signingKey      string
	signingMethod   string
	contextKey      string
	tokenExpiration int
	tokenLookup     string
	authScheme      string
	issuer          string
	audience        []string
}

func loadConfig() *config {
	return &config{
		httpAddr:      envOr("CLINIC_HTTP_ADDR", ":3000"),
		dsn:           envOr("CLINIC_DSN", "file:clinic.db?cache=shared&mode=rwc"),
		uploadDir:     envOr("CLINIC_UPLOAD_DIR", "./upload"),
		signingKey:    os.Getenv("CLINIC_JWT_SECRET"),
		signingMethod: "HS256",
		contextKey:    "claims",
		// Tokens do not expire unless an expiration is configured; the
		// deployed admin panel has no refresh flow.
		tokenExpiration: envIntOr("CLINIC_TOKEN_EXPIRATION_HOURS", 0),
		tokenLookup:     "header:x-auth-token",
		authScheme:      "",
		issuer:          envOr("CLINIC_JWT_ISSUER", ""),
		audience:        envList("CLINIC_JWT_AUDIENCE"),
	}
}

func (c *config) GetSigningKey() string   { return c.signingKey }
func (c *config) GetSigningMethod() string { return c.signingMethod }
func (c *config) GetContextKey() string   { return c.contextKey }
func (c *config) GetTokenExpiration() int { return c.tokenExpiration }
func (c *config) GetTokenLookup() string  { return c.tokenLookup }
func (c *config) GetAuthScheme() string   { return c.authScheme }
func (c *config) GetIssuer() string       { return c.issuer }
func (c *config) GetAudience() []string   { return c.audience }

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
