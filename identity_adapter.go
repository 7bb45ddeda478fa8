package auth

import (
	"context"

	"github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
)

// AdminFinder is the slice of the store the provider needs: lookup by email.
type AdminFinder interface {
	GetByEmail(ctx context.Context, email string) (*Admin, error)
}

// AdminProvider resolves credentials against the admins repository.
type AdminProvider struct {
	store  AdminFinder
	logger Logger
}

// NewAdminProvider will create a new AdminProvider
func NewAdminProvider(store AdminFinder) *AdminProvider {
	return &AdminProvider{
		store:  store,
		logger: defLogger{},
	}
}

func (p *AdminProvider) WithLogger(l Logger) *AdminProvider {
	p.logger = l
	return p
}

// VerifyIdentity will find the account, compare the password, and return the
// identity. An unknown email and a failed comparison return the identical
// ErrInvalidCredentials so callers cannot probe for registered addresses.
func (p AdminProvider) VerifyIdentity(ctx context.Context, email, password string) (Identity, error) {
	admin, err := p.store.GetByEmail(ctx, email)
	if err != nil {
		if repository.IsRecordNotFound(err) || errors.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve account during verification")
	}

	if admin == nil {
		return nil, ErrInvalidCredentials
	}

	if err := ComparePasswordAndHash(password, admin.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	return NewIdentityFromAdmin(admin), nil
}

// FindIdentityByEmail resolves an account without a credential check.
func (p AdminProvider) FindIdentityByEmail(ctx context.Context, email string) (Identity, error) {
	admin, err := p.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrIdentityNotFound
	}
	return NewIdentityFromAdmin(admin), nil
}

var _ IdentityProvider = (*AdminProvider)(nil)

// adminIdentity adapts an Admin snapshot into the Identity interface.
type adminIdentity struct {
	id        string
	email     string
	firstName string
	lastName  string
	role      string
}

// NewIdentityFromAdmin returns an Identity adapter for the provided account.
func NewIdentityFromAdmin(admin *Admin) Identity {
	if admin == nil {
		return nil
	}
	return adminIdentity{
		id:        admin.ID.String(),
		email:     admin.Email,
		firstName: admin.FirstName,
		lastName:  admin.LastName,
		role:      string(admin.Role),
	}
}

func (a adminIdentity) ID() string        { return a.id }
func (a adminIdentity) Email() string     { return a.email }
func (a adminIdentity) FirstName() string { return a.firstName }
func (a adminIdentity) LastName() string  { return a.lastName }
func (a adminIdentity) Role() string      { return a.role }

var _ Identity = adminIdentity{}
