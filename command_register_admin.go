package auth

import (
	"context"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/hashid/pkg/hashid"
	"github.com/uptrace/bun"
)

// RegisterAdminMessage carries a validated registration payload into the flow.
type RegisterAdminMessage struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	UseHashid bool
}

func (e RegisterAdminMessage) Type() string { return "admin.register" }

// RegisterAdminHandler runs the registration flow: uniqueness pre-check, hash,
// insert. The pre-check and insert are not atomic; the storage unique index is
// the backstop and its violation maps to the same conflict error.
type RegisterAdminHandler struct {
	repo RepositoryManager
}

func NewRegisterAdminHandler(repo RepositoryManager) *RegisterAdminHandler {
	return &RegisterAdminHandler{repo: repo}
}

func (h *RegisterAdminHandler) Execute(ctx context.Context, event RegisterAdminMessage) error {
	select {
	case <-ctx.Done():
		return goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during admin registration",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *RegisterAdminHandler) execute(ctx context.Context, event RegisterAdminMessage) error {
	admin := &Admin{}
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	err := h.repo.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		existing, err := h.repo.Admins().GetByEmailTx(ctx, tx, event.Email)
		if err != nil && !repository.IsRecordNotFound(err) {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to check email availability")
		}
		if existing != nil {
			return ErrEmailTaken
		}

		hash, err := HashPassword(event.Password)
		if err != nil {
			var richErr *goerrors.Error
			if goerrors.As(err, &richErr) {
				return goerrors.Wrap(richErr, goerrors.CategoryValidation, "invalid password provided")
			}
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to hash password")
		}

		admin.PasswordHash = hash
		admin.Email = event.Email
		admin.FirstName = event.FirstName
		admin.LastName = event.LastName
		admin.Role = RoleAdmin
		if event.UseHashid {
			if id, err := hashid.NewUUID(NormalizeEmail(event.Email)); err == nil {
				admin.ID = id
			}
		}

		// Concurrent registrations with the same email race past the
		// pre-check; the unique index turns the loser into a conflict.
		if admin, err = h.repo.Admins().CreateTx(ctx, tx, admin); err != nil {
			if isUniqueViolation(err) {
				return ErrEmailTaken
			}
			return goerrors.Wrap(err, goerrors.CategoryInternal, "could not create admin")
		}

		return nil
	})

	if err != nil {
		var richErr *goerrors.Error
		if goerrors.As(err, &richErr) {
			return richErr
		}

		return goerrors.Wrap(err, goerrors.CategoryInternal, "admin registration transaction failed")
	}

	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
