package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/lms-service/lms/internal/errs"
	"github.com/Astemirdum/lms-service/lms/internal/handler"
	"github.com/Astemirdum/lms-service/lms/internal/model"
	"github.com/Astemirdum/lms-service/pkg/auth"

	service_mocks "github.com/Astemirdum/lms-service/lms/internal/handler/mocks"
)

var (
	student = auth.Identity{UserID: 3, Email: "ali@bahria.edu.pk", Role: auth.RoleStudent}
	admin   = auth.Identity{UserID: 1, Email: "admin@bahria.edu.pk", Role: auth.RoleAdmin}
)

type testServer struct {
	e      *echo.Echo
	svc    *service_mocks.MockLibraryService
	tokens *auth.TokenManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockLibraryService(c)
	tokens := auth.NewTokenManager(auth.Config{Secret: "test", TTL: time.Hour})
	h := handler.New(svc, tokens, zap.NewExample().Named("test"))
	return &testServer{e: h.NewRouter(), svc: svc, tokens: tokens}
}

// do sends the request as caller, anonymously when caller is nil.
func (s *testServer) do(t *testing.T, method, target, body string, caller *auth.Identity) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, http.NoBody)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if caller != nil {
		token, _, err := s.tokens.Issue(*caller)
		require.NoError(t, err)
		r.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.e.ServeHTTP(w, r)
	return w
}

func body(w *httptest.ResponseRecorder) string {
	return strings.Trim(w.Body.String(), "\n")
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/manage/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}

func TestHandler_Authentication(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	tests := []struct {
		name     string
		method   string
		target   string
		header   string
		caller   *auth.Identity
		response response
	}{
		{
			name:   "no header",
			method: http.MethodGet,
			target: "/api/v1/books",
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"No Authorization Header"}`,
			},
		},
		{
			name:   "not bearer",
			method: http.MethodGet,
			target: "/api/v1/books",
			header: "Basic Zm9vOmJhcg==",
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"Invalid Authorization Header"}`,
			},
		},
		{
			name:   "bad token",
			method: http.MethodGet,
			target: "/api/v1/books",
			header: "Bearer nope",
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"Token is not valid"}`,
			},
		},
		{
			name:   "student on admin route",
			method: http.MethodGet,
			target: "/api/v1/members",
			caller: &student,
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"Access denied. Admin only."}`,
			},
		},
		{
			name:   "student approving a request",
			method: http.MethodPost,
			target: "/api/v1/book-requests/approve/5",
			caller: &student,
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"Access denied. Admin only."}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newTestServer(t)
			var w *httptest.ResponseRecorder
			if tt.header != "" {
				r := httptest.NewRequest(tt.method, tt.target, http.NoBody)
				r.Header.Set(echo.HeaderAuthorization, tt.header)
				w = httptest.NewRecorder()
				s.e.ServeHTTP(w, r)
			} else {
				w = s.do(t, tt.method, tt.target, "", tt.caller)
			}
			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, body(w))
		})
	}
}

func TestHandler_Signup(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockLibraryService)
	tests := []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			body: `{"name":"Ali","email":"ali@bahria.edu.pk","password":"secret1","studentId":"01-134","phone":"0300"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().Signup(gomock.Any(), model.SignupRequest{
					Name:      "Ali",
					Email:     "ali@bahria.edu.pk",
					Password:  "secret1",
					StudentID: "01-134",
					Phone:     "0300",
				}).Return(model.Member{ID: 12}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"message":"User registered successfully"}`,
		},
		{
			name:         "err. bad email",
			body:         `{"name":"Ali","email":"ali","password":"secret1","studentId":"01-134","phone":"0300"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "err. unknown role",
			body:         `{"name":"Ali","email":"ali@bahria.edu.pk","password":"secret1","studentId":"01-134","phone":"0300","role":"librarian"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "err. user exists",
			body: `{"name":"Ali","email":"ali@bahria.edu.pk","password":"secret1","studentId":"01-134","phone":"0300"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(model.Member{}, errs.ErrUserExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"user already exists"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newTestServer(t)
			tt.mockBehavior(s.svc)

			w := s.do(t, http.MethodPost, "/api/v1/auth/signup", tt.body, nil)
			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, body(w))
			}
		})
	}
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	s.svc.EXPECT().Login(gomock.Any(), model.LoginRequest{Email: "ali@bahria.edu.pk", Password: "bad"}).
		Return(model.LoginResponse{}, errs.ErrInvalidCredentials)

	w := s.do(t, http.MethodPost, "/api/v1/auth/login", `{"email":"ali@bahria.edu.pk","password":"bad"}`, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, `{"message":"invalid credentials"}`, body(w))
}

func TestHandler_Borrow(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockLibraryService)
	tests := []struct {
		name             string
		body             string
		mockBehavior     mockBehavior
		expectedCode     int
		expectedBody     string
		requiresApproval bool
	}{
		{
			name: "ok",
			body: `{"bookId":11}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().Borrow(gomock.Any(), student.UserID, model.BorrowInput{BookID: 11}).
					Return(model.BorrowResult{
						Message:     "Book borrowed successfully",
						Transaction: &model.Transaction{ID: 1, BookID: 11, UserID: student.UserID},
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "ok. pending approval",
			body: `{"bookId":11,"requestNote":"exam week"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().Borrow(gomock.Any(), student.UserID, model.BorrowInput{BookID: 11, RequestNote: "exam week"}).
					Return(model.BorrowResult{
						Message:          "You already have 2 books borrowed. Your request has been sent to the admin for approval.",
						RequiresApproval: true,
						Request:          &model.BookRequest{ID: 5, Status: model.RequestPending},
					}, nil)
			},
			expectedCode:     http.StatusOK,
			requiresApproval: true,
		},
		{
			name:         "err. book id required",
			body:         `{}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "err. no copies",
			body: `{"bookId":11}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().Borrow(gomock.Any(), student.UserID, gomock.Any()).
					Return(model.BorrowResult{}, errs.ErrNoCopies)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"no copies available to borrow"}`,
		},
		{
			name: "err. cooldown",
			body: `{"bookId":11}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().Borrow(gomock.Any(), student.UserID, gomock.Any()).
					Return(model.BorrowResult{}, errors.Wrap(errs.ErrCooldown, "decide"))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"please wait 2 days before borrowing this book again"}`,
		},
		{
			name: "err. book not found",
			body: `{"bookId":11}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().Borrow(gomock.Any(), student.UserID, gomock.Any()).
					Return(model.BorrowResult{}, errs.ErrBookNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"book not found"}`,
		},
		{
			name: "err. internal",
			body: `{"bookId":11}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().Borrow(gomock.Any(), student.UserID, gomock.Any()).
					Return(model.BorrowResult{}, errors.New("db internal"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Server error"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newTestServer(t)
			tt.mockBehavior(s.svc)

			w := s.do(t, http.MethodPost, "/api/v1/transactions", tt.body, &student)
			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, body(w))
				return
			}
			if w.Code >= http.StatusBadRequest {
				return
			}
			var res model.BorrowResult
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			require.Equal(t, tt.requiresApproval, res.RequiresApproval)
		})
	}
}

func TestHandler_ReturnBook(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	s.svc.EXPECT().ReturnBook(gomock.Any(), student.UserID, 10).
		Return(model.ReturnResult{Message: "Book returned successfully. Fine: Rs. 30", Fine: 30}, nil)
	s.svc.EXPECT().ReturnBook(gomock.Any(), student.UserID, 11).
		Return(model.ReturnResult{}, errs.ErrTransactionNotFound)

	w := s.do(t, http.MethodPut, "/api/v1/transactions/return/10", "", &student)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"message":"Book returned successfully. Fine: Rs. 30","fine":30}`, body(w))

	w = s.do(t, http.MethodPut, "/api/v1/transactions/return/11", "", &student)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, `{"message":"transaction not found or does not belong to you"}`, body(w))

	w = s.do(t, http.MethodPut, "/api/v1/transactions/return/abc", "", &student)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ReturnRoutes_Admin(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	s.svc.EXPECT().ReturnBook(gomock.Any(), admin.UserID, 10).
		Return(model.ReturnResult{}, errs.ErrTransactionNotFound)
	s.svc.EXPECT().AdminReturn(gomock.Any(), admin.UserID, 10).
		Return(model.ReturnResult{Message: "Book returned successfully"}, nil)

	// the self-service route stays owner only, even for the admin
	w := s.do(t, http.MethodPut, "/api/v1/transactions/return/10", "", &admin)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/transactions/return", `{"transactionId":10}`, &admin)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"message":"Book returned successfully","fine":0}`, body(w))

	w = s.do(t, http.MethodPost, "/api/v1/transactions/return", `{"transactionId":10}`, &student)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ListBooks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		query        string
		mockBehavior func(s *testServer)
		expectedCode int
		expectedBody string
	}{
		{
			name:  "ok",
			query: "?page=2&size=10&search=go",
			mockBehavior: func(s *testServer) {
				s.svc.EXPECT().ListBooks(gomock.Any(), model.BookFilter{Search: "go", Page: 2, Size: 10}).
					Return(model.ListBooks{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "err. size too big",
			query:        "?page=1&size=1000",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"invalid size"}`,
		},
		{
			name:         "err. page overflows the offset",
			query:        "?page=99999999999&size=100",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"invalid page"}`,
		},
		{
			name:         "err. negative page",
			query:        "?page=-1",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"invalid page"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newTestServer(t)
			if tt.mockBehavior != nil {
				tt.mockBehavior(s)
			}

			w := s.do(t, http.MethodGet, "/api/v1/books"+tt.query, "", &student)
			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, body(w))
			}
		})
	}
}

func TestHandler_DeleteBook(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{name: "ok", expectedCode: http.StatusOK, expectedBody: `{"message":"Book deleted successfully"}`},
		{name: "err. copies on loan", err: errs.ErrActiveBorrows, expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"cannot delete book with active transactions"}`},
		{name: "err. not found", err: errs.ErrBookNotFound, expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"book not found"}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newTestServer(t)
			s.svc.EXPECT().DeleteBook(gomock.Any(), admin.UserID, 2).Return(tt.err)

			w := s.do(t, http.MethodDelete, "/api/v1/books/2", "", &admin)
			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, body(w))
		})
	}
}

func TestHandler_ApproveRequest(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	s.svc.EXPECT().ApproveRequest(gomock.Any(), admin.UserID, 5, model.ReviewInput{ReviewNote: "ok"}).
		Return(model.Transaction{ID: 20}, nil)
	s.svc.EXPECT().ApproveRequest(gomock.Any(), admin.UserID, 6, model.ReviewInput{}).
		Return(model.Transaction{}, errs.ErrRequestProcessed)

	w := s.do(t, http.MethodPost, "/api/v1/book-requests/approve/5", `{"reviewNote":"ok"}`, &admin)
	require.Equal(t, http.StatusOK, w.Code)
	var res model.BorrowResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Equal(t, "Request approved and book issued successfully", res.Message)
	require.Equal(t, 20, res.Transaction.ID)

	w = s.do(t, http.MethodPost, "/api/v1/book-requests/approve/6", `{}`, &admin)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, `{"message":"request has already been processed"}`, body(w))
}

func TestHandler_UserDashboard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		caller       auth.Identity
		userID       int
		expectCall   bool
		expectedCode int
	}{
		{name: "own dashboard", caller: student, userID: student.UserID, expectCall: true, expectedCode: http.StatusOK},
		{name: "admin sees anyone", caller: admin, userID: student.UserID, expectCall: true, expectedCode: http.StatusOK},
		{name: "err. someone else's", caller: student, userID: 42, expectedCode: http.StatusForbidden},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newTestServer(t)
			if tt.expectCall {
				s.svc.EXPECT().UserDashboard(gomock.Any(), tt.userID).Return(model.UserDashboard{}, nil)
			}
			caller := tt.caller
			w := s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/analytics/procedures/user-dashboard/%d", tt.userID), "", &caller)
			require.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestHandler_TransactionHistory(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	userID := 3
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.svc.EXPECT().TransactionHistory(gomock.Any(), model.HistoryFilter{
		UserID:    &userID,
		Status:    "overdue",
		StartDate: &start,
	}).Return([]model.TransactionDetails{}, nil)

	w := s.do(t, http.MethodGet, "/api/v1/analytics/procedures/transaction-history?userId=3&status=overdue&startDate=2024-01-01", "", &admin)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `[]`, body(w))

	w = s.do(t, http.MethodGet, "/api/v1/analytics/procedures/transaction-history?status=lost", "", &admin)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
