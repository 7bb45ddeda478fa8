package store

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	repository "github.com/goliatone/go-repository-bun"
)

// Manager exposes the content repositories backing the public site and
// the admin panel.
type Manager interface {
	repository.Validator
	repository.TransactionManager
	MustValidate()

	Banners() Resource[*Banner]
	Products() Resource[*Product]
	Services() Resource[*Service]
	Staff() Resource[*Staff]
	Messages() Resource[*Message]
	Infos() Resource[*Info]
	AboutUs() Resource[*AboutUs]
}

type mngr struct {
	db       *bun.DB
	banners  Resource[*Banner]
	products Resource[*Product]
	services Resource[*Service]
	staff    Resource[*Staff]
	messages Resource[*Message]
	infos    Resource[*Info]
	aboutUs  Resource[*AboutUs]
}

func NewManager(db *bun.DB) Manager {
	return &mngr{
		db: db,
		banners: NewResource(db, uuidHandlers(
			func() *Banner { return &Banner{} },
			func(r *Banner) uuid.UUID { return r.ID },
			func(r *Banner, id uuid.UUID) { r.ID = id },
		)),
		products: NewResource(db, uuidHandlers(
			func() *Product { return &Product{} },
			func(r *Product) uuid.UUID { return r.ID },
			func(r *Product, id uuid.UUID) { r.ID = id },
		)),
		services: NewResource(db, uuidHandlers(
			func() *Service { return &Service{} },
			func(r *Service) uuid.UUID { return r.ID },
			func(r *Service, id uuid.UUID) { r.ID = id },
		)),
		staff: NewResource(db, uuidHandlers(
			func() *Staff { return &Staff{} },
			func(r *Staff) uuid.UUID { return r.ID },
			func(r *Staff, id uuid.UUID) { r.ID = id },
		)),
		messages: NewResource(db, uuidHandlers(
			func() *Message { return &Message{} },
			func(r *Message) uuid.UUID { return r.ID },
			func(r *Message, id uuid.UUID) { r.ID = id },
		)),
		infos: NewResource(db, uuidHandlers(
			func() *Info { return &Info{} },
			func(r *Info) uuid.UUID { return r.ID },
			func(r *Info, id uuid.UUID) { r.ID = id },
		)),
		aboutUs: NewResource(db, uuidHandlers(
			func() *AboutUs { return &AboutUs{} },
			func(r *AboutUs) uuid.UUID { return r.ID },
			func(r *AboutUs, id uuid.UUID) { r.ID = id },
		)),
	}
}

func (m *mngr) Validate() error {
	if m.db == nil {
		return errors.New("store manager needs a database handle")
	}
	return nil
}

func (m *mngr) MustValidate() {
	if err := m.Validate(); err != nil {
		log.Panic(err)
	}
}

func (m *mngr) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return m.db.RunInTx(ctx, opts, f)
	}
}

func (m *mngr) Banners() Resource[*Banner]   { return m.banners }
func (m *mngr) Products() Resource[*Product] { return m.products }
func (m *mngr) Services() Resource[*Service] { return m.services }
func (m *mngr) Staff() Resource[*Staff]      { return m.staff }
func (m *mngr) Messages() Resource[*Message] { return m.messages }
func (m *mngr) Infos() Resource[*Info]       { return m.infos }
func (m *mngr) AboutUs() Resource[*AboutUs]  { return m.aboutUs }
