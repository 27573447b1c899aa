package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/lms-service/lms/internal/model"
)

// Signup godoc
// @Summary Register a student or the single admin
// @Tags auth
// @Accept json
// @Produce json
// @Param input body model.SignupRequest true "new user"
// @Success 201 {object} message
// @Failure 400 {object} message
// @Router /auth/signup [post]
func (h *Handler) Signup(c echo.Context) error {
	var req model.SignupRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if _, err := h.svc.Signup(c.Request().Context(), req); err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusCreated, message{Message: "User registered successfully"})
}

// Login godoc
// @Summary Exchange credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param input body model.LoginRequest true "credentials"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} message
// @Router /auth/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	resp, err := h.svc.Login(c.Request().Context(), req)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}
