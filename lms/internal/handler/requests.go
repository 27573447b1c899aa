package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/lms-service/lms/internal/model"
)

func (h *Handler) PendingRequests(c echo.Context) error {
	items, err := h.svc.PendingRequests(c.Request().Context())
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) MyRequests(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	items, err := h.svc.MyRequests(c.Request().Context(), caller.UserID)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// ApproveRequest godoc
// @Summary Approve a pending borrow request
// @Tags book-requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "request id"
// @Param input body model.ReviewInput false "review"
// @Success 200 {object} model.BorrowResult
// @Failure 400 {object} message
// @Failure 404 {object} message
// @Router /book-requests/approve/{id} [post]
func (h *Handler) ApproveRequest(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	var in model.ReviewInput
	if err := bindValid(c, &in); err != nil {
		return err
	}
	t, err := h.svc.ApproveRequest(c.Request().Context(), caller.UserID, id, in)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, model.BorrowResult{
		Message:     "Request approved and book issued successfully",
		Transaction: &t,
	})
}

func (h *Handler) RejectRequest(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	var in model.ReviewInput
	if err := bindValid(c, &in); err != nil {
		return err
	}
	if err := h.svc.RejectRequest(c.Request().Context(), caller.UserID, id, in); err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, message{Message: "Request rejected successfully"})
}
