package auth

import (
	"errors"

	"media-orbit/core/logger"
	authmw "media-orbit/core/middleware/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RegisterPayload is the body of POST /api/auth/register.
type RegisterPayload struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginPayload is the body of POST /api/auth/login.
type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Handler exposes the account endpoints.
type Handler struct {
	service  *Service
	validate *validator.Validate
	secret   string
	logger   *zap.Logger
}

// NewHandler creates the auth HTTP handler.
func NewHandler(service *Service, secret string, logger *zap.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		secret:   secret,
		logger:   logger,
	}
}

// RegisterRoutes registers the auth routes. /me routes require a bearer
// token.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/auth")
	group.Post("/register", h.Register)
	group.Post("/login", h.Login)

	me := group.Group("/me", authmw.New(authmw.Config{Secret: h.secret}))
	me.Get("/", h.Me)
	me.Post("/avatar", h.UploadAvatar)
}

// Register creates an account and returns it with a fresh token.
func (h *Handler) Register(c *fiber.Ctx) error {
	var payload RegisterPayload
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.validate.Struct(payload); err != nil {
		return badRequest(c, err.Error())
	}

	user, err := h.service.Register(payload.Name, payload.Email, payload.Password)
	if errors.Is(err, ErrEmailTaken) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "email already registered"})
	}
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Registration failed", zap.Error(err))
		return internalError(c)
	}

	token, err := h.service.IssueToken(user)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Token issuance failed", zap.Error(err))
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token, "user": user})
}

// Login authenticates and returns a token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var payload LoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.validate.Struct(payload); err != nil {
		return badRequest(c, err.Error())
	}

	user, err := h.service.Login(payload.Email, payload.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Login failed", zap.Error(err))
		return internalError(c)
	}

	token, err := h.service.IssueToken(user)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Token issuance failed", zap.Error(err))
		return internalError(c)
	}

	return c.JSON(fiber.Map{"token": token, "user": user})
}

// Me returns the authenticated user.
func (h *Handler) Me(c *fiber.Ctx) error {
	id, ok := authmw.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthenticated"})
	}

	user, err := h.service.Me(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	}
	return c.JSON(user)
}

// UploadAvatar stores a multipart avatar image for the authenticated user.
func (h *Handler) UploadAvatar(c *fiber.Ctx) error {
	id, ok := authmw.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthenticated"})
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		return badRequest(c, "missing avatar file")
	}

	src, err := file.Open()
	if err != nil {
		return badRequest(c, "unreadable avatar file")
	}
	defer src.Close()

	url, err := h.service.SaveAvatar(c.Context(), id, file.Filename,
		file.Header.Get(fiber.HeaderContentType), src, file.Size)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Avatar upload failed", zap.Error(err))
		return badRequest(c, err.Error())
	}

	return c.JSON(fiber.Map{"avatar_url": url})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}
