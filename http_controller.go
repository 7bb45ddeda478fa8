package auth

import (
	"sort"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
)

// AuthControllerRoutes are the paths the controller mounts under the admin
// router. Register and NewAdmin run the exact same flow; the deployed clients
// post to both.
type AuthControllerRoutes struct {
	Login    string
	Register string
	NewAdmin string
	Validate string
}

type AuthController struct {
	Logger Logger
	Repo   RepositoryManager
	Auther Authenticator
	Routes *AuthControllerRoutes
}

type AuthControllerOption func(*AuthController) *AuthController

func WithControllerLogger(l Logger) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Logger = l
		return c
	}
}

func NewAuthController(repo RepositoryManager, auther Authenticator, opts ...AuthControllerOption) *AuthController {
	c := &AuthController{
		Logger: defLogger{},
		Repo:   repo,
		Auther: auther,
		Routes: &AuthControllerRoutes{
			Login:    "/login",
			Register: "/register",
			NewAdmin: "/newadmin",
			Validate: "/validate",
		},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Repo == nil {
		panic("Missing RepositoryManager in auth controller...")
	}

	if c.Auther == nil {
		panic("Missing Authenticator in auth controller...")
	}

	return c
}

// RegisterRoutes mounts the auth endpoints. The validate route runs behind the
// composed gate: token extraction, verification, and the admin role check are
// one middleware, so the role check cannot be reached unauthenticated.
func (a *AuthController) RegisterRoutes(app fiber.Router, gate fiber.Handler) {
	app.Post(a.Routes.Login, a.LoginPost)
	app.Post(a.Routes.Register, a.RegistrationCreate)
	app.Post(a.Routes.NewAdmin, a.RegistrationCreate)
	app.Get(a.Routes.Validate, gate, a.ValidateGet)
}

// LoginRequest payload
type LoginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Email,
			validation.Required,
			validation.Length(2, 100),
			is.Email,
		),
		validation.Field(
			&r.Password,
			validation.Required,
			validation.Length(6, 100),
		),
	)
}

// RegistrationCreatePayload is the registration body
type RegistrationCreatePayload struct {
	FirstName string `form:"firstName" json:"firstName"`
	LastName  string `form:"lastName" json:"lastName"`
	Email     string `form:"email" json:"email"`
	Password  string `form:"password" json:"password"`
}

// Validate will validate the payload. Email format is deliberately not
// enforced at registration; only login requires a syntactically valid email.
func (r RegistrationCreatePayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(2, 30)),
		validation.Field(&r.LastName, validation.Required, validation.Length(2, 30)),
		validation.Field(&r.Email, validation.Required, validation.Length(5, 1000)),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 50)),
	)
}

func (a *AuthController) LoginPost(c *fiber.Ctx) error {
	payload := new(LoginRequest)

	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("login parse payload", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Error parsing body",
		})
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": FirstValidationMessage(err),
		})
	}

	token, err := a.Auther.Login(c.UserContext(), payload.Email, payload.Password)
	if err != nil {
		var richErr *errors.Error
		if errors.As(err, &richErr) && richErr.Category == errors.CategoryAuth {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": ErrInvalidCredentials.Message,
			})
		}

		a.Logger.Error("login error", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Server Error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"token":  token,
	})
}

func (a *AuthController) RegistrationCreate(c *fiber.Ctx) error {
	payload := new(RegistrationCreatePayload)

	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("register admin parse payload", "error", err)
		return c.Status(fiber.StatusBadRequest).SendString("Error parsing body")
	}

	if err := payload.Validate(); err != nil {
		a.Logger.Error("register admin validate payload", "error", err)
		return c.Status(fiber.StatusBadRequest).SendString(FirstValidationMessage(err))
	}

	req := RegisterAdminMessage{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Password:  payload.Password,
		UseHashid: true,
	}

	registerAdmin := NewRegisterAdminHandler(a.Repo)
	if err := registerAdmin.Execute(c.UserContext(), req); err != nil {
		var richErr *errors.Error
		if errors.As(err, &richErr) {
			switch richErr.Category {
			case errors.CategoryConflict, errors.CategoryValidation:
				return c.Status(fiber.StatusBadRequest).SendString(richErr.Message)
			}
		}

		a.Logger.Error("register admin error", "error", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Server Error!")
	}

	return c.Status(fiber.StatusCreated).SendString("Admin Registered successfully")
}

// ValidateGet reports the verified identity back to the client. The gate in
// front of it already rejected missing, invalid, and non-admin tokens.
func (a *AuthController) ValidateGet(c *fiber.Ctx) error {
	claims, ok := GetClaims(c.UserContext())
	if !ok {
		a.Logger.Error("validate reached without claims in context")
		return c.Status(fiber.StatusInternalServerError).SendString("Server Error")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"validateAdmin": claims.IsAdmin(),
		"firstName":     claims.FirstName(),
		"lastName":      claims.LastName(),
		"email":         claims.Email(),
	})
}

// FormatValidationErrorToMap flattens ozzo field errors into strings.
func FormatValidationErrorToMap(err error) map[string]string {
	out := map[string]string{}
	if err == nil {
		return out
	}

	fieldErrs, ok := err.(validation.Errors)
	if !ok {
		out["form"] = err.Error()
		return out
	}

	for field, ferr := range fieldErrs {
		out[field] = ferr.Error()
	}
	return out
}

// FirstValidationMessage returns a single "field: message" string, the way the
// clients expect validation failures: one offending field at a time.
func FirstValidationMessage(err error) string {
	errs := FormatValidationErrorToMap(err)
	if len(errs) == 0 {
		return ""
	}

	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	return fields[0] + ": " + errs[fields[0]]
}
