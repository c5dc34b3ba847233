package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/axlmendieta/POS-APEX/internal/application/auth"
	"github.com/axlmendieta/POS-APEX/internal/application/dto"
)

// AuthHandler maneja las peticiones de autenticación (público).
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login autentica un empleado y devuelve el token JWT.
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password requeridos"})
	}
	resp, err := h.uc.Login(in)
	if err != nil {
		// Credenciales inválidas siempre responden 401, sin distinguir causa.
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas"})
	}
	return c.JSON(resp)
}
