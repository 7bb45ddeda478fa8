package auth

import (
	"context"
	"database/sql"
	"strings"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Admins is the credential store boundary. The core only ever looks accounts
// up by email and inserts new rows; everything else rides on the embedded
// generic repository.
type Admins interface {
	repository.Repository[*Admin]

	GetByEmail(ctx context.Context, email string) (*Admin, error)
	GetByEmailTx(ctx context.Context, tx bun.IDB, email string) (*Admin, error)

	Register(ctx context.Context, admin *Admin) (*Admin, error)
	RegisterTx(ctx context.Context, tx bun.IDB, admin *Admin) (*Admin, error)
	Create(ctx context.Context, record *Admin, criteria ...repository.InsertCriteria) (*Admin, error)
	CreateTx(ctx context.Context, tx bun.IDB, record *Admin, criteria ...repository.InsertCriteria) (*Admin, error)
}

type admins struct {
	repository.Repository[*Admin]
	db *bun.DB
}

var (
	_ Admins                        = (*admins)(nil)
	_ repository.Repository[*Admin] = (*admins)(nil)
)

func NewAdminsRepository(db *bun.DB) Admins {
	repo := repository.NewRepository[*Admin](db, repository.ModelHandlers[*Admin]{
		NewRecord: func() *Admin { return &Admin{} },
		GetID: func(a *Admin) uuid.UUID {
			if a == nil {
				return uuid.Nil
			}
			return a.ID
		},
		SetID: func(a *Admin, id uuid.UUID) {
			if a != nil {
				a.ID = id
			}
		},
		GetIdentifier: func() string {
			return "email"
		},
	})

	return &admins{
		Repository: repo,
		db:         db,
	}
}

func (a *admins) Register(ctx context.Context, admin *Admin) (*Admin, error) {
	return a.RegisterTx(ctx, a.db, admin)
}

func (a *admins) RegisterTx(ctx context.Context, tx bun.IDB, admin *Admin) (*Admin, error) {
	return a.CreateTx(ctx, tx, admin)
}

func (a *admins) GetByEmail(ctx context.Context, email string) (*Admin, error) {
	return a.GetByEmailTx(ctx, a.db, email)
}

// GetByEmailTx looks the account up case-insensitively; email uniqueness is
// case-insensitive all the way down to the storage index.
func (a *admins) GetByEmailTx(ctx context.Context, tx bun.IDB, email string) (*Admin, error) {
	record := &Admin{}

	err := tx.NewSelect().
		Model(record).
		Where("LOWER(?TableAlias.email) = ?", NormalizeEmail(email)).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) || err == sql.ErrNoRows {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{
					"email": email,
				})
		}
		return nil, err
	}

	return record, nil
}

func (a *admins) Create(ctx context.Context, record *Admin, criteria ...repository.InsertCriteria) (*Admin, error) {
	return a.CreateTx(ctx, a.db, record, criteria...)
}

func (a *admins) CreateTx(ctx context.Context, tx bun.IDB, record *Admin, criteria ...repository.InsertCriteria) (*Admin, error) {
	prepareAdminDefaults(record)
	return a.Repository.CreateTx(ctx, tx, record, criteria...)
}

func prepareAdminDefaults(record *Admin) {
	if record == nil {
		return
	}

	if record.Role == "" {
		record.Role = RoleAdmin
	}

	record.Email = NormalizeEmail(record.Email)

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
}

// NormalizeEmail is the canonical form used for lookups, inserts, and the
// storage unique index.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
