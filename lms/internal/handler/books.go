package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/lms-service/lms/internal/model"
)

// Paging bounds keep the offset inside int64.
const (
	maxPageSize = 100
	maxPage     = math.MaxInt32
)

// ListBooks godoc
// @Summary List the catalog
// @Tags books
// @Security BearerAuth
// @Produce json
// @Param page query int false "page"
// @Param size query int false "page size, at most 100"
// @Param search query string false "title, author or isbn"
// @Success 200 {object} model.ListBooks
// @Router /books [get]
func (h *Handler) ListBooks(c echo.Context) error {
	var (
		page, size int
		err        error
	)
	if p := c.QueryParam("page"); p != "" {
		if page, err = strconv.Atoi(p); err != nil || page < 0 || page > maxPage {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid page")
		}
	}
	if s := c.QueryParam("size"); s != "" {
		if size, err = strconv.Atoi(s); err != nil || size < 0 || size > maxPageSize {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid size")
		}
	}
	books, err := h.svc.ListBooks(c.Request().Context(), model.BookFilter{
		Search: c.QueryParam("search"),
		Page:   page,
		Size:   size,
	})
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, books)
}

// GetBook godoc
// @Summary Get a book
// @Tags books
// @Security BearerAuth
// @Produce json
// @Param id path int true "book id"
// @Success 200 {object} model.Book
// @Failure 404 {object} message
// @Router /books/{id} [get]
func (h *Handler) GetBook(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	book, err := h.svc.GetBook(c.Request().Context(), id)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, book)
}

// CreateBook godoc
// @Summary Add a book to the catalog
// @Tags books
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body model.BookInput true "book"
// @Success 201 {object} model.Book
// @Failure 400 {object} message
// @Router /books [post]
func (h *Handler) CreateBook(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	var in model.BookInput
	if err := bindValid(c, &in); err != nil {
		return err
	}
	book, err := h.svc.CreateBook(c.Request().Context(), caller.UserID, in)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	var in model.BookInput
	if err := bindValid(c, &in); err != nil {
		return err
	}
	book, err := h.svc.UpdateBook(c.Request().Context(), caller.UserID, id, in)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, book)
}

// DeleteBook godoc
// @Summary Delete a book with its history
// @Tags books
// @Security BearerAuth
// @Produce json
// @Param id path int true "book id"
// @Success 200 {object} message
// @Failure 400 {object} message "copies still on loan"
// @Router /books/{id} [delete]
func (h *Handler) DeleteBook(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteBook(c.Request().Context(), caller.UserID, id); err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, message{Message: "Book deleted successfully"})
}

func (h *Handler) ListAuthors(c echo.Context) error {
	items, err := h.svc.ListAuthors(c.Request().Context())
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListCategories(c echo.Context) error {
	items, err := h.svc.ListCategories(c.Request().Context())
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListPublishers(c echo.Context) error {
	items, err := h.svc.ListPublishers(c.Request().Context())
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
