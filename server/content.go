package server

import (
	"context"

	"github.com/gofiber/fiber/v2"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"

	auth "github.com/nebelclinic/clinic-api"
)

// Payload is a request body that knows how to validate itself.
type Payload interface {
	Validate() error
}

// ContentRepo is the slice of the store repository the controller needs.
// store.Resource satisfies it.
type ContentRepo[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, record T, criteria ...repository.InsertCriteria) (T, error)
	GetByID(ctx context.Context, id string, criteria ...repository.SelectCriteria) (T, error)
	Update(ctx context.Context, record T, criteria ...repository.UpdateCriteria) (T, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// ContentController serves one content resource: a public listing plus
// create, update, and delete behind the admin gate. The gate is passed in
// at mount time so every mutation shares the same composed check.
type ContentController[T any, P Payload] struct {
	Logger auth.Logger
	Repo   ContentRepo[T]
	Name   string
	New    func() T
	Apply  func(P, T)
}

func (ctrl *ContentController[T, P]) RegisterRoutes(router fiber.Router, gate fiber.Handler) {
	router.Get("/", ctrl.List)
	router.Get("/:id", ctrl.Get)
	router.Post("/", gate, ctrl.Create)
	router.Put("/update/:id", gate, ctrl.Update)
	router.Delete("/delete/:id", gate, ctrl.Delete)
}

func (ctrl *ContentController[T, P]) List(c *fiber.Ctx) error {
	records, err := ctrl.Repo.List(c.Context())
	if err != nil {
		ctrl.Logger.Error("Error fetching %s list: %s", ctrl.Name, err)
		return c.Status(fiber.StatusInternalServerError).SendString("Server Error")
	}

	return c.Status(fiber.StatusOK).JSON(records)
}

func (ctrl *ContentController[T, P]) Get(c *fiber.Ctx) error {
	record, err := ctrl.Repo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if isNotFound(err) {
			return c.Status(fiber.StatusNotFound).SendString(ctrl.Name + " not found")
		}
		ctrl.Logger.Error("Error fetching %s entry: %s", ctrl.Name, err)
		return c.Status(fiber.StatusInternalServerError).SendString("Server Error")
	}

	return c.Status(fiber.StatusOK).JSON(record)
}

func (ctrl *ContentController[T, P]) Create(c *fiber.Ctx) error {
	var payload P
	if err := c.BodyParser(&payload); err != nil {
		ctrl.Logger.Error("Create %s body parse error: %s", ctrl.Name, err)
		return c.Status(fiber.StatusBadRequest).SendString("Error parsing body")
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(auth.FirstValidationMessage(err))
	}

	record := ctrl.New()
	ctrl.Apply(payload, record)

	created, err := ctrl.Repo.Create(c.Context(), record)
	if err != nil {
		ctrl.Logger.Error("Error creating %s entry: %s", ctrl.Name, err)
		return c.Status(fiber.StatusInternalServerError).SendString("Server Error")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": ctrl.Name + " created successfully",
		"data":    created,
	})
}

func (ctrl *ContentController[T, P]) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var payload P
	if err := c.BodyParser(&payload); err != nil {
		ctrl.Logger.Error("Update %s body parse error: %s", ctrl.Name, err)
		return c.Status(fiber.StatusBadRequest).SendString("Error parsing body")
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(auth.FirstValidationMessage(err))
	}

	record, err := ctrl.Repo.GetByID(c.Context(), id)
	if err != nil {
		if isNotFound(err) {
			return c.Status(fiber.StatusNotFound).SendString(ctrl.Name + " not found")
		}
		ctrl.Logger.Error("Error finding %s entry: %s", ctrl.Name, err)
		return c.Status(fiber.StatusInternalServerError).SendString("Server Error")
	}

	ctrl.Apply(payload, record)

	if _, err := ctrl.Repo.Update(c.Context(), record); err != nil {
		ctrl.Logger.Error("Error updating %s entry: %s", ctrl.Name, err)
		return c.Status(fiber.StatusInternalServerError).SendString("Server Error")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": ctrl.Name + " updated successfully",
	})
}

func (ctrl *ContentController[T, P]) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString(ctrl.Name + " entry not found")
	}

	if err := ctrl.Repo.DeleteByID(c.Context(), id); err != nil {
		if isNotFound(err) {
			return c.Status(fiber.StatusNotFound).SendString(ctrl.Name + " entry not found")
		}
		ctrl.Logger.Error("Error deleting %s entry: %s", ctrl.Name, err)
		return c.Status(fiber.StatusInternalServerError).SendString("Server Error")
	}

	return c.Status(fiber.StatusOK).SendString(ctrl.Name + " deleted successfully")
}
