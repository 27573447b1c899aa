package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/lms-service/lms/internal/model"
)

// report serves the read-only views that take no arguments.
func report[T any](h *Handler, fetch func(ctx context.Context) (T, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		v, err := fetch(c.Request().Context())
		if err != nil {
			return h.httpError(c, err)
		}
		return c.JSON(http.StatusOK, v)
	}
}

func (h *Handler) BookInventory(c echo.Context) error {
	return report(h, h.svc.BookInventory)(c)
}

func (h *Handler) ActiveTransactions(c echo.Context) error {
	return report(h, h.svc.ActiveTransactions)(c)
}

func (h *Handler) OverdueTransactions(c echo.Context) error {
	return report(h, h.svc.OverdueTransactions)(c)
}

func (h *Handler) UserBorrowingStats(c echo.Context) error {
	return report(h, h.svc.UserBorrowingStats)(c)
}

func (h *Handler) PopularBooks(c echo.Context) error {
	return report(h, h.svc.PopularBooks)(c)
}

func (h *Handler) CategoryStats(c echo.Context) error {
	return report(h, h.svc.CategoryStats)(c)
}

func (h *Handler) MonthlySummary(c echo.Context) error {
	return report(h, h.svc.MonthlySummary)(c)
}

// AdminDashboard godoc
// @Summary Library wide numbers for the admin home page
// @Tags analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} model.AdminDashboard
// @Failure 403 {object} message
// @Router /analytics/procedures/admin-dashboard [get]
func (h *Handler) AdminDashboard(c echo.Context) error {
	return report(h, h.svc.AdminDashboard)(c)
}

// UserDashboard is open to the user themself and to the admin.
func (h *Handler) UserDashboard(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	userID, err := intParam(c, "userId")
	if err != nil {
		return err
	}
	if !caller.IsAdmin() && caller.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Access denied. Admin only.")
	}
	d, err := h.svc.UserDashboard(c.Request().Context(), userID)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) SearchBooks(c echo.Context) error {
	var filter model.SearchFilter
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &filter); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	items, err := h.svc.SearchBooks(c.Request().Context(), filter)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) TransactionHistory(c echo.Context) error {
	var (
		filter model.HistoryFilter
		err    error
	)
	if filter.UserID, err = optionalIntQuery(c, "userId"); err != nil {
		return err
	}
	if filter.BookID, err = optionalIntQuery(c, "bookId"); err != nil {
		return err
	}
	if filter.StartDate, err = optionalDateQuery(c, "startDate"); err != nil {
		return err
	}
	if filter.EndDate, err = optionalDateQuery(c, "endDate"); err != nil {
		return err
	}
	switch status := c.QueryParam("status"); model.TransactionStatus(status) {
	case "", model.StatusActive, model.StatusReturned, model.StatusOverdue:
		filter.Status = status
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	items, err := h.svc.TransactionHistory(c.Request().Context(), filter)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) BookAuditLog(c echo.Context) error {
	bookID, err := optionalIntQuery(c, "bookId")
	if err != nil {
		return err
	}
	items, err := h.svc.BookAuditLog(c.Request().Context(), bookID)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UserAuditLog(c echo.Context) error {
	userID, err := optionalIntQuery(c, "userId")
	if err != nil {
		return err
	}
	items, err := h.svc.UserAuditLog(c.Request().Context(), userID)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CalculateFine(c echo.Context) error {
	id, err := intParam(c, "transactionId")
	if err != nil {
		return err
	}
	q, err := h.svc.CalculateFine(c.Request().Context(), id)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, q)
}

// optionalDateQuery accepts RFC 3339 timestamps and plain dates.
func optionalDateQuery(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
}
