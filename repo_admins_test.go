package auth_test

import (
	"context"
	"database/sql"
	"testing"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	auth "github.com/nebelclinic/clinic-api"
)

const (
	sqliteCreateAdmins = `CREATE TABLE admins (
    id TEXT NOT NULL PRIMARY KEY,
    user_role TEXT NOT NULL,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    email TEXT NOT NULL,
    password_hash TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    deleted_at TIMESTAMP
);`
	sqliteAdminsEmailIndex = `CREATE UNIQUE INDEX admins_email_lower_uq ON admins (LOWER(email));`
)

func setupAdminsRepo(t *testing.T) (auth.RepositoryManager, *bun.DB) {
	t.Helper()

	db, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	bunDB := bun.NewDB(db, sqlitedialect.New())
	t.Cleanup(func() { bunDB.Close() })

	_, err = bunDB.Exec(sqliteCreateAdmins)
	require.NoError(t, err)
	_, err = bunDB.Exec(sqliteAdminsEmailIndex)
	require.NoError(t, err)

	return auth.NewRepositoryManager(bunDB), bunDB
}

func TestAdminsGetByEmailCaseInsensitive(t *testing.T) {
	repo, _ := setupAdminsRepo(t)
	ctx := context.Background()

	created, err := repo.Admins().Register(ctx, &auth.Admin{
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "Jane@X.com",
		PasswordHash: "not-a-real-hash",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", created.Email)
	assert.Equal(t, auth.RoleAdmin, created.Role)

	found, err := repo.Admins().GetByEmail(ctx, "JANE@X.COM")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "jane@x.com", found.Email)

	_, err = repo.Admins().GetByEmail(ctx, "nobody@x.com")
	require.Error(t, err)
	assert.True(t, repository.IsRecordNotFound(err))
}

func TestAdminsEmailIndexBackstop(t *testing.T) {
	repo, bunDB := setupAdminsRepo(t)
	ctx := context.Background()

	// A row inserted behind the repository's back, with the email in a
	// different case than the incoming registration.
	_, err := bunDB.Exec(
		`INSERT INTO admins (id, user_role, first_name, last_name, email) VALUES (?, 'admin', 'Jane', 'Doe', 'Jane@X.com')`,
		uuid.NewString(),
	)
	require.NoError(t, err)

	_, err = repo.Admins().Register(ctx, &auth.Admin{
		FirstName:    "Janet",
		LastName:     "Doe",
		Email:        "JANE@X.COM",
		PasswordHash: "not-a-real-hash",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")
}

func TestRegisterAdminCaseInsensitiveConflict(t *testing.T) {
	repo, _ := setupAdminsRepo(t)
	ctx := context.Background()

	handler := auth.NewRegisterAdminHandler(repo)

	msg := auth.RegisterAdminMessage{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
		Password:  "longenough1",
	}
	require.NoError(t, handler.Execute(ctx, msg))

	msg.Email = "JANE@X.COM"
	err := handler.Execute(ctx, msg)
	assert.ErrorIs(t, err, auth.ErrEmailTaken)

	stored, err := repo.Admins().GetByEmail(ctx, "jane@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane", stored.FirstName)
}
