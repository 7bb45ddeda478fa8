package main

import (
	"context"
	"database/sql"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/migrate"

	auth "github.com/nebelclinic/clinic-api"
	"github.com/nebelclinic/clinic-api/server"
	"github.com/nebelclinic/clinic-api/store"
)

func main() {
	cfg := loadConfig()
	if cfg.GetSigningKey() == "" {
		log.Fatal("CLINIC_JWT_SECRET is required")
	}

	logger := auth.NewDefaultLogger()

	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())

	ctx := context.Background()
	if err := runMigrations(ctx, db); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	repo := auth.NewRepositoryManager(db)
	repo.MustValidate()

	contentStore := store.NewManager(db)
	contentStore.MustValidate()

	provider := auth.NewAdminProvider(repo.Admins()).WithLogger(logger)
	auther := auth.NewAuthenticator(provider, cfg).WithLogger(logger)

	controller := auth.NewAuthController(repo, auther,
		auth.WithControllerLogger(logger),
	)

	srv := server.New(server.Options{
		Config:       cfg,
		TokenService: auther.TokenService(),
		Auth:         controller,
		Store:        contentStore,
		Logger:       logger,
		UploadDir:    cfg.uploadDir,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown: %s", err)
		}
	}()

	if err := srv.Listen(cfg.httpAddr); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func runMigrations(ctx context.Context, db *bun.DB) error {
	sub, err := fs.Sub(auth.GetMigrationsFS(), "data/sql/migrations")
	if err != nil {
		return err
	}

	migrations := migrate.NewMigrations()
	if err := migrations.Discover(sub); err != nil {
		return err
	}

	migrator := migrate.NewMigrator(db, migrations)
	if err := migrator.Init(ctx); err != nil {
		return err
	}

	if _, err := migrator.Migrate(ctx); err != nil {
		return err
	}

	return nil
}
