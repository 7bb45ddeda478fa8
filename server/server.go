// Package server wires the HTTP surface of the clinic API: the admin auth
// endpoints plus the content resources the public site reads.
package server

import (
	"context"
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"

	auth "github.com/nebelclinic/clinic-api"
	"github.com/nebelclinic/clinic-api/store"
)

type Options struct {
	Config       auth.Config
	TokenService auth.TokenService
	Auth         *auth.AuthController
	Store        store.Manager
	Logger       auth.Logger
	UploadDir    string
}

type Server struct {
	app    *fiber.App
	logger auth.Logger
}

func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = auth.NewDefaultLogger()
	}

	app := fiber.New(fiber.Config{
		AppName:      "clinic-api",
		ErrorHandler: errorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(cors.New())

	if opts.UploadDir != "" {
		app.Static("/upload", opts.UploadDir)
	}

	gate := auth.AdminRoute(opts.Config, opts.TokenService, nil)
	validateGate := auth.AdminRoute(opts.Config, opts.TokenService, auth.ValidateRouteErrorHandler)

	api := app.Group("/api")

	opts.Auth.RegisterRoutes(api.Group("/admin"), validateGate)

	banners := &ContentController[*store.Banner, store.ContentPayload]{
		Logger: logger,
		Repo:   opts.Store.Banners(),
		Name:   "Banner",
		New:    func() *store.Banner { return &store.Banner{} },
		Apply:  store.ContentPayload.ApplyBanner,
	}
	banners.RegisterRoutes(api.Group("/banner"), gate)

	products := &ContentController[*store.Product, store.ContentPayload]{
		Logger: logger,
		Repo:   opts.Store.Products(),
		Name:   "Product",
		New:    func() *store.Product { return &store.Product{} },
		Apply:  store.ContentPayload.ApplyProduct,
	}
	products.RegisterRoutes(api.Group("/product"), gate)

	services := &ContentController[*store.Service, store.ContentPayload]{
		Logger: logger,
		Repo:   opts.Store.Services(),
		Name:   "Service",
		New:    func() *store.Service { return &store.Service{} },
		Apply:  store.ContentPayload.ApplyService,
	}
	services.RegisterRoutes(api.Group("/service"), gate)

	staff := &ContentController[*store.Staff, store.StaffPayload]{
		Logger: logger,
		Repo:   opts.Store.Staff(),
		Name:   "Staff",
		New:    func() *store.Staff { return &store.Staff{} },
		Apply:  store.StaffPayload.Apply,
	}
	staff.RegisterRoutes(api.Group("/staff"), gate)

	infos := &ContentController[*store.Info, store.InfoPayload]{
		Logger: logger,
		Repo:   opts.Store.Infos(),
		Name:   "Info",
		New:    func() *store.Info { return &store.Info{} },
		Apply:  store.InfoPayload.Apply,
	}
	infos.RegisterRoutes(api.Group("/info"), gate)

	aboutUs := &ContentController[*store.AboutUs, store.ContentPayload]{
		Logger: logger,
		Repo:   opts.Store.AboutUs(),
		Name:   "AboutUs",
		New:    func() *store.AboutUs { return &store.AboutUs{} },
		Apply:  store.ContentPayload.ApplyAboutUs,
	}
	aboutUs.RegisterRoutes(api.Group("/aboutus"), gate)

	messages := &MessageController{
		Logger: logger,
		Repo:   opts.Store.Messages(),
	}
	messages.RegisterRoutes(api.Group("/message"), gate)

	return &Server{app: app, logger: logger}
}

// App exposes the underlying fiber app, mostly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(addr string) error {
	s.logger.Info("clinic-api listening on %s", addr)
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// errorHandler maps errors that escape a handler. Handlers respond
// directly for their domain errors; this is the backstop for anything
// unexpected.
func errorHandler(logger auth.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if stderrors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).SendString(fiberErr.Message)
		}

		var richErr *errors.Error
		if !errors.As(err, &richErr) {
			richErr = errors.Wrap(err, errors.CategoryInternal, "An unexpected server error occurred").
				WithCode(errors.CodeInternal)
		}

		logger.Error(
			"Unhandled request error: %s category=%s details=%s",
			richErr.Message,
			richErr.Category,
			print.MaybePrettyJSON(richErr.Metadata),
		)

		status := richErr.Code
		if status < fiber.StatusBadRequest {
			status = fiber.StatusInternalServerError
		}

		return c.Status(status).SendString("Server Error")
	}
}
