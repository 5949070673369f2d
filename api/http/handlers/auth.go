package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/talent/api/http/presenter"
	"github.com/artem13815/talent/pkg/auth"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
}

func NewAuthHandler(useCase auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Token     string    `json:"token"`
}

func newAuthResponse(r auth.AuthResult) authResponse {
	return authResponse{
		ID:        r.User.ID.String(),
		Email:     r.User.Email,
		Name:      r.User.Name,
		CreatedAt: r.User.CreatedAt,
		Token:     r.Token,
	}
}

// Register handles recruiter registration.
// @Summary Register recruiter
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 201 {object} authResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	result, err := h.useCase.Register(c.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusCreated, newAuthResponse(result))
}

// Login handles recruiter login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} authResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.Email == "" || req.Password == "" {
		return auth.ErrMissingFields
	}
	result, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, newAuthResponse(result))
}
