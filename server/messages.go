package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	auth "github.com/nebelclinic/clinic-api"
	"github.com/nebelclinic/clinic-api/store"
)

// MessageController handles the visitor contact form. Submitting a message
// is public; reading and deleting the inbox requires the admin gate since
// submissions carry visitor contact details.
type MessageController struct {
	Logger auth.Logger
	Repo   ContentRepo[*store.Message]
}

func (ctrl *MessageController) RegisterRoutes(router fiber.Router, gate fiber.Handler) {
	router.Post("/", ctrl.Create)
	router.Get("/", gate, ctrl.List)
	router.Put("/update/:id", gate, ctrl.Update)
	router.Delete("/delete/:id", gate, ctrl.Delete)
}

func (ctrl *MessageController) Create(c *fiber.Ctx) error {
	payload := store.MessagePayload{}
	if err := c.BodyParser(&payload); err != nil {
		ctrl.Logger.Error("Create message body parse error: %s", err)
		return c.Status(fiber.StatusBadRequest).SendString("Error parsing body")
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(auth.FirstValidationMessage(err))
	}

	record := &store.Message{}
	payload.Apply(record)

	if _, err := ctrl.Repo.Create(c.Context(), record); err != nil {
		ctrl.Logger.Error("Error creating message: %s", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Server Error")
	}

	return c.Status(fiber.StatusCreated).SendString("Message created successfully")
}

func (ctrl *MessageController) List(c *fiber.Ctx) error {
	records, err := ctrl.Repo.List(c.Context())
	if err != nil {
		ctrl.Logger.Error("Error fetching messages: %s", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Server Error")
	}

	if len(records) == 0 {
		return c.Status(fiber.StatusBadRequest).SendString("No messages found!")
	}

	return c.Status(fiber.StatusOK).JSON(records)
}

func (ctrl *MessageController) Update(c *fiber.Ctx) error {
	payload := store.MessagePayload{}
	if err := c.BodyParser(&payload); err != nil {
		ctrl.Logger.Error("Update message body parse error: %s", err)
		return c.Status(fiber.StatusBadRequest).SendString("Error parsing body")
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(auth.FirstValidationMessage(err))
	}

	record, err := ctrl.Repo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if isNotFound(err) {
			return c.Status(fiber.StatusNotFound).SendString("Message not found")
		}
		ctrl.Logger.Error("Error finding message: %s", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Server Error")
	}

	payload.Apply(record)

	if _, err := ctrl.Repo.Update(c.Context(), record); err != nil {
		ctrl.Logger.Error("Error updating message: %s", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Server Error")
	}

	return c.Status(fiber.StatusOK).SendString("Message updated successfully")
}

func (ctrl *MessageController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Message entry not found")
	}

	if err := ctrl.Repo.DeleteByID(c.Context(), id); err != nil {
		if isNotFound(err) {
			return c.Status(fiber.StatusNotFound).SendString("Message entry not found")
		}
		ctrl.Logger.Error("Error deleting message: %s", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Server Error")
	}

	return c.Status(fiber.StatusOK).SendString("Message deleted successfully")
}
