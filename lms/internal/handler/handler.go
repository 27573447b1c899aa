package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/lms-service/lms/internal/errs"
	"github.com/Astemirdum/lms-service/pkg/auth"
	md "github.com/Astemirdum/lms-service/pkg/middleware"
	"github.com/Astemirdum/lms-service/pkg/validate"
	_ "github.com/Astemirdum/lms-service/swagger"
)

type Handler struct {
	svc    LibraryService
	tokens *auth.TokenManager
	log    *zap.Logger
}

func New(svc LibraryService, tokens *auth.TokenManager, log *zap.Logger) *Handler {
	return &Handler{
		svc:    svc,
		tokens: tokens,
		log:    log.Named("handler"),
	}
}

// @title LMS API
// @version 1.0
// @description Library management: catalog, borrowing, approvals and reports.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/auth/signup", h.Signup)
	api.POST("/auth/login", h.Login)

	api = api.Group("", md.JwtAuthentication(h.tokens))
	admin := api.Group("", md.AdminOnly)

	api.GET("/books", h.ListBooks)
	api.GET("/books/authors", h.ListAuthors)
	api.GET("/books/categories", h.ListCategories)
	api.GET("/books/publishers", h.ListPublishers)
	api.GET("/books/:id", h.GetBook)
	admin.POST("/books", h.CreateBook)
	admin.PUT("/books/:id", h.UpdateBook)
	admin.DELETE("/books/:id", h.DeleteBook)

	api.GET("/members/profile", h.GetProfile)
	api.PUT("/members/profile", h.UpdateProfile)
	api.PUT("/members/change-password", h.ChangePassword)
	admin.GET("/members", h.ListMembers)
	admin.GET("/members/:id", h.GetMember)

	admin.GET("/transactions", h.ListTransactions)
	api.GET("/transactions/my", h.MyTransactions)
	api.POST("/transactions", h.Borrow)
	admin.POST("/transactions/issue", h.IssueBook)
	admin.POST("/transactions/return", h.AdminReturn)
	api.PUT("/transactions/return/:id", h.ReturnBook)

	admin.GET("/book-requests/pending", h.PendingRequests)
	api.GET("/book-requests/my-requests", h.MyRequests)
	admin.POST("/book-requests/approve/:id", h.ApproveRequest)
	admin.POST("/book-requests/reject/:id", h.RejectRequest)

	admin.GET("/analytics/views/book-inventory", h.BookInventory)
	admin.GET("/analytics/views/active-transactions", h.ActiveTransactions)
	admin.GET("/analytics/views/user-stats", h.UserBorrowingStats)
	admin.GET("/analytics/views/popular-books", h.PopularBooks)
	admin.GET("/analytics/views/category-stats", h.CategoryStats)
	admin.GET("/analytics/views/overdue-transactions", h.OverdueTransactions)
	admin.GET("/analytics/views/monthly-summary", h.MonthlySummary)
	admin.GET("/analytics/procedures/admin-dashboard", h.AdminDashboard)
	api.GET("/analytics/procedures/user-dashboard/:userId", h.UserDashboard)
	admin.GET("/analytics/procedures/search-books", h.SearchBooks)
	admin.GET("/analytics/procedures/transaction-history", h.TransactionHistory)
	admin.GET("/analytics/audit/books", h.BookAuditLog)
	admin.GET("/analytics/audit/users", h.UserAuditLog)
	admin.GET("/analytics/functions/calculate-fine/:transactionId", h.CalculateFine)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

type message struct {
	Message string `json:"message"`
}

var errStatus = []struct {
	err  error
	code int
}{
	{errs.ErrBookNotFound, http.StatusNotFound},
	{errs.ErrUserNotFound, http.StatusNotFound},
	{errs.ErrMemberNotFound, http.StatusNotFound},
	{errs.ErrTransactionNotFound, http.StatusNotFound},
	{errs.ErrRequestNotFound, http.StatusNotFound},
	{errs.ErrNotFound, http.StatusNotFound},

	{errs.ErrNoCopies, http.StatusBadRequest},
	{errs.ErrAlreadyBorrowed, http.StatusBadRequest},
	{errs.ErrCooldown, http.StatusBadRequest},
	{errs.ErrRequestPending, http.StatusBadRequest},
	{errs.ErrAlreadyReturned, http.StatusBadRequest},
	{errs.ErrRequestProcessed, http.StatusBadRequest},
	{errs.ErrActiveBorrows, http.StatusBadRequest},
	{errs.ErrInvalidInventory, http.StatusBadRequest},
	{errs.ErrISBNExists, http.StatusBadRequest},
	{errs.ErrReferenceInvalid, http.StatusBadRequest},
	{errs.ErrUserExists, http.StatusBadRequest},
	{errs.ErrAdminExists, http.StatusBadRequest},
	{errs.ErrStudentIDExists, http.StatusBadRequest},
	{errs.ErrWrongPassword, http.StatusBadRequest},

	{errs.ErrInvalidCredentials, http.StatusUnauthorized},
	{errs.ErrForbidden, http.StatusForbidden},
}

// httpError maps domain errors to their status. Anything else is logged and hidden behind a 500.
func (h *Handler) httpError(c echo.Context, err error) error {
	for _, e := range errStatus {
		if errors.Is(err, e.err) {
			return echo.NewHTTPError(e.code, e.err.Error())
		}
	}
	h.log.Error("internal error",
		zap.Error(err),
		zap.String("method", c.Request().Method),
		zap.String("uri", c.Request().RequestURI))
	return echo.NewHTTPError(http.StatusInternalServerError, "Server error")
}

func identity(c echo.Context) (auth.Identity, error) {
	id, err := auth.GetIdentity(c.Request().Context())
	if err != nil {
		return auth.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid")
	}
	return id, nil
}

func intParam(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return v, nil
}

func optionalIntQuery(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return &v, nil
}

func bindValid(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
