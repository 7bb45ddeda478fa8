package auth_test

import (
	"context"
	"database/sql"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/stretchr/testify/mock"
	"github.com/uptrace/bun"

	auth "github.com/nebelclinic/clinic-api"
)

// MockIdentityProvider implements auth.IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) VerifyIdentity(ctx context.Context, email, password string) (auth.Identity, error) {
	args := m.Called(ctx, email, password)
	var identity auth.Identity
	if v := args.Get(0); v != nil {
		identity = v.(auth.Identity)
	}
	return identity, args.Error(1)
}

func (m *MockIdentityProvider) FindIdentityByEmail(ctx context.Context, email string) (auth.Identity, error) {
	args := m.Called(ctx, email)
	var identity auth.Identity
	if v := args.Get(0); v != nil {
		identity = v.(auth.Identity)
	}
	return identity, args.Error(1)
}

// MockAuthenticator implements auth.Authenticator
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthenticator) ClaimsFromToken(token string) (auth.AuthClaims, error) {
	args := m.Called(token)
	var claims auth.AuthClaims
	if v := args.Get(0); v != nil {
		claims = v.(auth.AuthClaims)
	}
	return claims, args.Error(1)
}

// MockAdmins mocks the admin lookups the flows touch. The embedded interface
// covers the generic repository surface nothing in these tests reaches.
type MockAdmins struct {
	mock.Mock
	auth.Admins
}

func (m *MockAdmins) GetByEmail(ctx context.Context, email string) (*auth.Admin, error) {
	args := m.Called(ctx, email)
	var admin *auth.Admin
	if v := args.Get(0); v != nil {
		admin = v.(*auth.Admin)
	}
	return admin, args.Error(1)
}

func (m *MockAdmins) GetByEmailTx(ctx context.Context, tx bun.IDB, email string) (*auth.Admin, error) {
	args := m.Called(ctx, tx, email)
	var admin *auth.Admin
	if v := args.Get(0); v != nil {
		admin = v.(*auth.Admin)
	}
	return admin, args.Error(1)
}

func (m *MockAdmins) CreateTx(ctx context.Context, tx bun.IDB, record *auth.Admin, criteria ...repository.InsertCriteria) (*auth.Admin, error) {
	args := m.Called(ctx, tx, record)
	var admin *auth.Admin
	if v := args.Get(0); v != nil {
		admin = v.(*auth.Admin)
	}
	return admin, args.Error(1)
}

// MockRepositoryManager implements auth.RepositoryManager. RunInTx runs the
// callback with a zero transaction; the mocked repositories never touch it.
type MockRepositoryManager struct {
	admins auth.Admins
}

func (m *MockRepositoryManager) Validate() error { return nil }
func (m *MockRepositoryManager) MustValidate()   {}

func (m *MockRepositoryManager) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	return f(ctx, bun.Tx{})
}

func (m *MockRepositoryManager) Admins() auth.Admins { return m.admins }

// testIdentity implements auth.Identity
type testIdentity struct {
	id        string
	email     string
	firstName string
	lastName  string
	role      string
}

func (t testIdentity) ID() string        { return t.id }
func (t testIdentity) Email() string     { return t.email }
func (t testIdentity) FirstName() string { return t.firstName }
func (t testIdentity) LastName() string  { return t.lastName }
func (t testIdentity) Role() string      { return t.role }

// testConfig implements auth.Config
type testConfig struct {
	signingKey      string
	tokenExpiration int
	issuer          string
	audience        []string
}

func (c testConfig) GetSigningKey() string    { return c.signingKey }
func (c testConfig) GetSigningMethod() string { return "HS256" }
func (c testConfig) GetContextKey() string    { return "claims" }
func (c testConfig) GetTokenExpiration() int  { return c.tokenExpiration }
func (c testConfig) GetTokenLookup() string   { return "header:x-auth-token" }
func (c testConfig) GetAuthScheme() string    { return "" }
func (c testConfig) GetIssuer() string        { return c.issuer }
func (c testConfig) GetAudience() []string    { return c.audience }
