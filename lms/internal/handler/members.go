package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/lms-service/lms/internal/model"
)

func (h *Handler) GetProfile(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	m, err := h.svc.Profile(c.Request().Context(), caller.UserID)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	var in model.ProfileInput
	if err := bindValid(c, &in); err != nil {
		return err
	}
	m, err := h.svc.UpdateProfile(c.Request().Context(), caller.UserID, in)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) ChangePassword(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	var in model.ChangePasswordInput
	if err := bindValid(c, &in); err != nil {
		return err
	}
	if err := h.svc.ChangePassword(c.Request().Context(), caller.UserID, in); err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, message{Message: "Password changed successfully"})
}

func (h *Handler) ListMembers(c echo.Context) error {
	members, err := h.svc.ListMembers(c.Request().Context())
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, members)
}

func (h *Handler) GetMember(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	m, err := h.svc.GetMember(c.Request().Context(), id)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}
