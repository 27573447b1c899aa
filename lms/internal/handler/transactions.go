package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/lms-service/lms/internal/model"
)

// Borrow godoc
// @Summary Borrow a book, or ask for approval past the borrow limit
// @Tags transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body model.BorrowInput true "book to borrow"
// @Success 201 {object} model.BorrowResult "borrowed"
// @Success 200 {object} model.BorrowResult "request pending approval"
// @Failure 400 {object} message
// @Failure 404 {object} message
// @Router /transactions [post]
func (h *Handler) Borrow(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	var in model.BorrowInput
	if err := bindValid(c, &in); err != nil {
		return err
	}
	res, err := h.svc.Borrow(c.Request().Context(), caller.UserID, in)
	if err != nil {
		return h.httpError(c, err)
	}
	if res.RequiresApproval {
		return c.JSON(http.StatusOK, res)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) IssueBook(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	var in model.IssueInput
	if err := bindValid(c, &in); err != nil {
		return err
	}
	t, err := h.svc.IssueBook(c.Request().Context(), caller.UserID, in)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusCreated, model.BorrowResult{
		Message:     "Book issued successfully",
		Transaction: &t,
	})
}

// ReturnBook godoc
// @Summary Return one of the caller's loans
// @Tags transactions
// @Security BearerAuth
// @Produce json
// @Param id path int true "transaction id"
// @Success 200 {object} model.ReturnResult
// @Failure 400 {object} message
// @Failure 404 {object} message
// @Router /transactions/return/{id} [put]
func (h *Handler) ReturnBook(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	res, err := h.svc.ReturnBook(c.Request().Context(), caller.UserID, id)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) AdminReturn(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	var in model.ReturnInput
	if err := bindValid(c, &in); err != nil {
		return err
	}
	res, err := h.svc.AdminReturn(c.Request().Context(), caller.UserID, in.TransactionID)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) ListTransactions(c echo.Context) error {
	items, err := h.svc.ListTransactions(c.Request().Context())
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) MyTransactions(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	items, err := h.svc.MyTransactions(c.Request().Context(), caller.UserID)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
