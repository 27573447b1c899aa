package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Astemirdum/lms-service/lms/internal/errs"
	"github.com/Astemirdum/lms-service/lms/internal/model"
	repo_mocks "github.com/Astemirdum/lms-service/lms/internal/repository/mocks"
	"github.com/Astemirdum/lms-service/pkg/auth"
	"github.com/Astemirdum/lms-service/pkg/kafka"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type auditRecorder struct {
	mu     sync.Mutex
	events []kafka.AuditEvent
	err    error
}

func (a *auditRecorder) Log(_ context.Context, e kafka.AuditEvent) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, e)
	return a.err
}

func (a *auditRecorder) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.events))
	for _, e := range a.events {
		out = append(out, e.Action)
	}
	return out
}

type testDeps struct {
	repo    *repo_mocks.MockRepository
	reports *repo_mocks.MockReports
	audit   *auditRecorder
}

func newTestService(t *testing.T) (*Service, testDeps) {
	t.Helper()
	c := gomock.NewController(t)
	d := testDeps{
		repo:    repo_mocks.NewMockRepository(c),
		reports: repo_mocks.NewMockReports(c),
		audit:   &auditRecorder{},
	}
	tokens := auth.NewTokenManager(auth.Config{Secret: "test", TTL: time.Hour})
	svc := NewService(d.repo, d.reports, tokens, zap.NewNop(),
		WithAuditLog(d.audit),
		WithClock(func() time.Time { return testNow }),
	)
	return svc, d
}

func TestService_Borrow(t *testing.T) {
	t.Parallel()
	const (
		userID = 3
		bookID = 11
	)
	tests := []struct {
		name         string
		in           model.BorrowInput
		mockBehavior func(d testDeps)
		check        func(t *testing.T, res model.BorrowResult)
		wantErr      error
		wantActions  []string
	}{
		{
			name: "ok",
			in:   model.BorrowInput{BookID: bookID},
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().BorrowState(gomock.Any(), userID, bookID).
					Return(model.BorrowState{BookExists: true, Available: 2, ActiveCount: 1}, nil)
				d.repo.EXPECT().CreateTransaction(gomock.Any(), model.Transaction{
					UserID:    userID,
					BookID:    bookID,
					IssueDate: testNow,
					DueDate:   testNow.Add(14 * day),
				}).Return(model.Transaction{ID: 1, UserID: userID, BookID: bookID, Status: model.StatusActive}, nil)
			},
			check: func(t *testing.T, res model.BorrowResult) {
				require.False(t, res.RequiresApproval)
				require.Equal(t, "Book borrowed successfully", res.Message)
				require.NotNil(t, res.Transaction)
				require.Equal(t, 1, res.Transaction.ID)
				require.Nil(t, res.Request)
			},
			wantActions: []string{actionBorrow},
		},
		{
			name: "soft limit files a request",
			in:   model.BorrowInput{BookID: bookID},
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().BorrowState(gomock.Any(), userID, bookID).
					Return(model.BorrowState{BookExists: true, Available: 2, ActiveCount: 2}, nil)
				d.repo.EXPECT().CreateBookRequest(gomock.Any(), model.BookRequest{
					UserID:      userID,
					BookID:      bookID,
					RequestNote: "No note provided",
					RequestDate: testNow,
				}).Return(model.BookRequest{ID: 5, Status: model.RequestPending}, nil)
			},
			check: func(t *testing.T, res model.BorrowResult) {
				require.True(t, res.RequiresApproval)
				require.Equal(t, "You already have 2 books borrowed. Your request has been sent to the admin for approval.", res.Message)
				require.NotNil(t, res.Request)
				require.Equal(t, 5, res.Request.ID)
				require.Nil(t, res.Transaction)
			},
			wantActions: []string{actionRequest},
		},
		{
			name: "request note kept",
			in:   model.BorrowInput{BookID: bookID, RequestNote: "thesis"},
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().BorrowState(gomock.Any(), userID, bookID).
					Return(model.BorrowState{BookExists: true, Available: 1, ActiveCount: 4}, nil)
				d.repo.EXPECT().CreateBookRequest(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req model.BookRequest) (model.BookRequest, error) {
						require.Equal(t, "thesis", req.RequestNote)
						return req, nil
					})
			},
			check: func(t *testing.T, res model.BorrowResult) {
				require.True(t, res.RequiresApproval)
			},
			wantActions: []string{actionRequest},
		},
		{
			name: "err. request already pending",
			in:   model.BorrowInput{BookID: bookID},
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().BorrowState(gomock.Any(), userID, bookID).
					Return(model.BorrowState{BookExists: true, Available: 1, ActiveCount: 2, HasPendingRequest: true}, nil)
			},
			wantErr: errs.ErrRequestPending,
		},
		{
			name: "err. no copies",
			in:   model.BorrowInput{BookID: bookID},
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().BorrowState(gomock.Any(), userID, bookID).
					Return(model.BorrowState{BookExists: true}, nil)
			},
			wantErr: errs.ErrNoCopies,
		},
		{
			name: "err. lost the race for the last copy",
			in:   model.BorrowInput{BookID: bookID},
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().BorrowState(gomock.Any(), userID, bookID).
					Return(model.BorrowState{BookExists: true, Available: 1}, nil)
				d.repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
					Return(model.Transaction{}, errs.ErrNoCopies)
			},
			wantErr: errs.ErrNoCopies,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, d := newTestService(t)
			tt.mockBehavior(d)

			res, err := svc.Borrow(context.Background(), userID, tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, d.audit.actions())
				return
			}
			require.NoError(t, err)
			tt.check(t, res)
			require.Equal(t, tt.wantActions, d.audit.actions())
		})
	}
}

func TestService_Borrow_AuditFailureIgnored(t *testing.T) {
	t.Parallel()
	svc, d := newTestService(t)
	d.audit.err = errors.New("broker down")
	d.repo.EXPECT().BorrowState(gomock.Any(), 1, 2).
		Return(model.BorrowState{BookExists: true, Available: 1}, nil)
	d.repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		Return(model.Transaction{ID: 9}, nil)

	res, err := svc.Borrow(context.Background(), 1, model.BorrowInput{BookID: 2})
	require.NoError(t, err)
	require.Equal(t, 9, res.Transaction.ID)
}

func TestService_IssueBook(t *testing.T) {
	t.Parallel()
	due := testNow.Add(30 * day)
	tests := []struct {
		name    string
		in      model.IssueInput
		wantDue time.Time
	}{
		{name: "default due date", in: model.IssueInput{UserID: 4, BookID: 8}, wantDue: testNow.Add(7 * day)},
		{name: "admin due date", in: model.IssueInput{UserID: 4, BookID: 8, DueDate: &due}, wantDue: due},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, d := newTestService(t)
			// soft limit does not apply at the desk
			d.repo.EXPECT().BorrowState(gomock.Any(), 4, 8).
				Return(model.BorrowState{BookExists: true, Available: 1, ActiveCount: 6}, nil)
			d.repo.EXPECT().GetUser(gomock.Any(), 4).Return(model.User{ID: 4}, nil)
			d.repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, tr model.Transaction) (model.Transaction, error) {
					require.Equal(t, tt.wantDue, tr.DueDate)
					tr.ID = 77
					return tr, nil
				})

			tr, err := svc.IssueBook(context.Background(), 1, tt.in)
			require.NoError(t, err)
			require.Equal(t, 77, tr.ID)
			require.Equal(t, []string{actionIssue}, d.audit.actions())
		})
	}
}

func TestService_ReturnBook(t *testing.T) {
	t.Parallel()
	const studentID = 3

	tests := []struct {
		name         string
		mockBehavior func(d testDeps)
		want         model.ReturnResult
		wantErr      error
	}{
		{
			name: "on time",
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().GetTransaction(gomock.Any(), 10).Return(model.Transaction{
					ID: 10, UserID: studentID, BookID: 2, DueDate: testNow.Add(day), Status: model.StatusActive,
				}, nil)
				d.repo.EXPECT().ReturnTransaction(gomock.Any(), 10, testNow, 0).Return(nil)
			},
			want: model.ReturnResult{Message: "Book returned successfully"},
		},
		{
			name: "three days late",
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().GetTransaction(gomock.Any(), 10).Return(model.Transaction{
					ID: 10, UserID: studentID, BookID: 2, DueDate: testNow.Add(-3 * day), Status: model.StatusActive,
				}, nil)
				d.repo.EXPECT().ReturnTransaction(gomock.Any(), 10, testNow, 30).Return(nil)
			},
			want: model.ReturnResult{Message: "Book returned successfully. Fine: Rs. 30", Fine: 30},
		},
		{
			name: "err. not the borrower",
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().GetTransaction(gomock.Any(), 10).Return(model.Transaction{
					ID: 10, UserID: 99, Status: model.StatusActive,
				}, nil)
			},
			wantErr: errs.ErrTransactionNotFound,
		},
		{
			name: "err. already returned",
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().GetTransaction(gomock.Any(), 10).Return(model.Transaction{
					ID: 10, UserID: studentID, Status: model.StatusReturned,
				}, nil)
			},
			wantErr: errs.ErrAlreadyReturned,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, d := newTestService(t)
			tt.mockBehavior(d)

			res, err := svc.ReturnBook(context.Background(), studentID, 10)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, d.audit.actions())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, res)
			require.Equal(t, []string{actionReturn}, d.audit.actions())
		})
	}
}

func TestService_AdminReturn(t *testing.T) {
	t.Parallel()
	svc, d := newTestService(t)
	// the admin holds nothing, the loan belongs to a student
	d.repo.EXPECT().GetTransaction(gomock.Any(), 10).Return(model.Transaction{
		ID: 10, UserID: 3, BookID: 2, DueDate: testNow.Add(-2 * day), Status: model.StatusActive,
	}, nil)
	d.repo.EXPECT().ReturnTransaction(gomock.Any(), 10, testNow, 20).Return(nil)

	res, err := svc.AdminReturn(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Equal(t, model.ReturnResult{Message: "Book returned successfully. Fine: Rs. 20", Fine: 20}, res)
	require.Equal(t, []string{actionReturn}, d.audit.actions())
	require.Equal(t, 1, d.audit.events[0].ActorID)
}

func TestService_ReturnBook_AdminMustOwn(t *testing.T) {
	t.Parallel()
	svc, d := newTestService(t)
	d.repo.EXPECT().GetTransaction(gomock.Any(), 10).Return(model.Transaction{
		ID: 10, UserID: 3, Status: model.StatusActive,
	}, nil)

	// the self-service route checks ownership for every caller, admins use AdminReturn
	_, err := svc.ReturnBook(context.Background(), 1, 10)
	require.ErrorIs(t, err, errs.ErrTransactionNotFound)
}

func TestService_MyTransactions_Overdue(t *testing.T) {
	t.Parallel()
	svc, d := newTestService(t)
	userID := 3
	returnedAt := testNow.Add(-day)
	d.repo.EXPECT().ListTransactions(gomock.Any(), &userID).Return([]model.TransactionDetails{
		{Transaction: model.Transaction{ID: 1, DueDate: testNow.Add(-2 * day), Status: model.StatusActive}},
		{Transaction: model.Transaction{ID: 2, DueDate: testNow.Add(day), Status: model.StatusActive}},
		{Transaction: model.Transaction{ID: 3, DueDate: testNow.Add(-9 * day), ReturnDate: &returnedAt, Status: model.StatusReturned, Fine: 80}},
	}, nil)

	items, err := svc.MyTransactions(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, model.StatusOverdue, items[0].Status)
	require.Equal(t, 20, items[0].Fine)
	require.Equal(t, model.StatusActive, items[1].Status)
	require.Equal(t, 0, items[1].Fine)
	require.Equal(t, model.StatusReturned, items[2].Status)
	require.Equal(t, 80, items[2].Fine)
}

func TestService_CalculateFine(t *testing.T) {
	t.Parallel()
	svc, d := newTestService(t)
	d.repo.EXPECT().GetTransaction(gomock.Any(), 4).Return(model.Transaction{
		ID: 4, DueDate: testNow.Add(-5 * day), Status: model.StatusActive,
	}, nil)

	q, err := svc.CalculateFine(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, model.FineQuote{
		TransactionID: 4,
		DueDate:       testNow.Add(-5 * day),
		Status:        model.StatusOverdue,
		DaysOverdue:   5,
		Fine:          50,
	}, q)
}

func TestService_ApproveRequest(t *testing.T) {
	t.Parallel()
	requestDate := testNow.Add(-3 * day)
	adminDue := testNow.Add(10 * day)

	tests := []struct {
		name         string
		in           model.ReviewInput
		mockBehavior func(d testDeps)
		wantErr      error
	}{
		{
			name: "ok. defaults",
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().GetBookRequest(gomock.Any(), 5).Return(model.BookRequest{
					ID: 5, UserID: 3, BookID: 2, Status: model.RequestPending, RequestDate: requestDate,
				}, nil)
				d.repo.EXPECT().GetBook(gomock.Any(), 2).Return(model.Book{ID: 2, Available: 1}, nil)
				d.repo.EXPECT().ApproveRequest(gomock.Any(), model.Approval{
					RequestID:  5,
					ReviewerID: 1,
					ReviewNote: "Approved",
					ReviewedAt: testNow,
					IssueDate:  testNow,
					DueDate:    testNow.Add(14 * day),
				}).Return(model.Transaction{ID: 20}, nil)
			},
		},
		{
			name: "ok. stale request gets a full loan",
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().GetBookRequest(gomock.Any(), 5).Return(model.BookRequest{
					ID: 5, UserID: 3, BookID: 2, Status: model.RequestPending, RequestDate: testNow.Add(-20 * day),
				}, nil)
				d.repo.EXPECT().GetBook(gomock.Any(), 2).Return(model.Book{ID: 2, Available: 1}, nil)
				d.repo.EXPECT().ApproveRequest(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a model.Approval) (model.Transaction, error) {
						require.True(t, a.DueDate.After(a.IssueDate))
						require.Equal(t, testNow.Add(14*day), a.DueDate)
						require.Zero(t, fine(a.DueDate, a.IssueDate))
						return model.Transaction{ID: 20}, nil
					})
			},
		},
		{
			name: "ok. admin due date and note",
			in:   model.ReviewInput{ReviewNote: "fine", DueDate: &adminDue},
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().GetBookRequest(gomock.Any(), 5).Return(model.BookRequest{
					ID: 5, BookID: 2, Status: model.RequestPending, RequestDate: requestDate,
				}, nil)
				d.repo.EXPECT().GetBook(gomock.Any(), 2).Return(model.Book{ID: 2, Available: 3}, nil)
				d.repo.EXPECT().ApproveRequest(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a model.Approval) (model.Transaction, error) {
						require.Equal(t, "fine", a.ReviewNote)
						require.Equal(t, adminDue, a.DueDate)
						return model.Transaction{ID: 20}, nil
					})
			},
		},
		{
			name: "err. already processed",
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().GetBookRequest(gomock.Any(), 5).Return(model.BookRequest{
					ID: 5, Status: model.RequestRejected,
				}, nil)
			},
			wantErr: errs.ErrRequestProcessed,
		},
		{
			name: "err. no copies",
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().GetBookRequest(gomock.Any(), 5).Return(model.BookRequest{
					ID: 5, BookID: 2, Status: model.RequestPending,
				}, nil)
				d.repo.EXPECT().GetBook(gomock.Any(), 2).Return(model.Book{ID: 2}, nil)
			},
			wantErr: errs.ErrNoCopies,
		},
		{
			name: "err. unknown request",
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().GetBookRequest(gomock.Any(), 5).Return(model.BookRequest{}, errs.ErrRequestNotFound)
			},
			wantErr: errs.ErrRequestNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, d := newTestService(t)
			tt.mockBehavior(d)

			tr, err := svc.ApproveRequest(context.Background(), 1, 5, tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, 20, tr.ID)
			require.Equal(t, []string{actionApprove}, d.audit.actions())
		})
	}
}

func TestService_RejectRequest(t *testing.T) {
	t.Parallel()
	svc, d := newTestService(t)
	d.repo.EXPECT().GetBookRequest(gomock.Any(), 5).Return(model.BookRequest{
		ID: 5, BookID: 2, Status: model.RequestPending,
	}, nil)
	d.repo.EXPECT().RejectRequest(gomock.Any(), model.Rejection{
		RequestID:  5,
		ReviewerID: 1,
		ReviewNote: "Rejected",
		ReviewedAt: testNow,
	}).Return(nil)

	require.NoError(t, svc.RejectRequest(context.Background(), 1, 5, model.ReviewInput{}))
	require.Equal(t, []string{actionReject}, d.audit.actions())
}

func TestService_Signup(t *testing.T) {
	t.Parallel()
	req := model.SignupRequest{
		Name:      "Ali",
		Email:     " Ali@Bahria.edu.pk ",
		Password:  "secret1",
		StudentID: "01-134",
		Phone:     "0300",
	}
	tests := []struct {
		name         string
		role         string
		mockBehavior func(d testDeps)
		wantErr      error
	}{
		{
			name: "ok. student",
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().GetUserByEmail(gomock.Any(), "ali@bahria.edu.pk").
					Return(model.User{}, errs.ErrUserNotFound)
				d.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u model.User) (model.User, error) {
						require.Equal(t, "ali@bahria.edu.pk", u.Email)
						require.Equal(t, auth.RoleStudent, u.Role)
						require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1")))
						u.ID = 12
						return u, nil
					})
			},
		},
		{
			name: "err. email taken",
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().GetUserByEmail(gomock.Any(), "ali@bahria.edu.pk").
					Return(model.User{ID: 1}, nil)
			},
			wantErr: errs.ErrUserExists,
		},
		{
			name: "err. second admin",
			role: auth.RoleAdmin,
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().GetUserByEmail(gomock.Any(), "ali@bahria.edu.pk").
					Return(model.User{}, errs.ErrUserNotFound)
				d.repo.EXPECT().AdminExists(gomock.Any()).Return(true, nil)
			},
			wantErr: errs.ErrAdminExists,
		},
		{
			name: "err. admin created concurrently",
			role: auth.RoleAdmin,
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().GetUserByEmail(gomock.Any(), "ali@bahria.edu.pk").
					Return(model.User{}, errs.ErrUserNotFound)
				d.repo.EXPECT().AdminExists(gomock.Any()).Return(false, nil)
				d.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					Return(model.User{}, errs.ErrAdminExists)
			},
			wantErr: errs.ErrAdminExists,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, d := newTestService(t)
			tt.mockBehavior(d)

			in := req
			in.Role = tt.role
			m, err := svc.Signup(context.Background(), in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, 12, m.ID)
			require.Equal(t, []string{actionSignup}, d.audit.actions())
		})
	}
}

func TestService_Login(t *testing.T) {
	t.Parallel()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	user := model.User{ID: 12, Email: "ali@bahria.edu.pk", Password: string(hash), Role: auth.RoleStudent}

	tests := []struct {
		name     string
		password string
		found    bool
		wantErr  error
	}{
		{name: "ok", password: "secret1", found: true},
		{name: "err. wrong password", password: "nope", found: true, wantErr: errs.ErrInvalidCredentials},
		{name: "err. unknown email", password: "secret1", wantErr: errs.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, d := newTestService(t)
			if tt.found {
				d.repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
			} else {
				d.repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(model.User{}, errs.ErrUserNotFound)
			}

			resp, err := svc.Login(context.Background(), model.LoginRequest{Email: "ALI@bahria.edu.pk", Password: tt.password})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, resp.Token)
			require.Equal(t, int64(3600), resp.ExpiresIn)
			require.Equal(t, 12, resp.User.ID)

			id, err := svc.tokens.Parse(resp.Token)
			require.NoError(t, err)
			require.Equal(t, auth.Identity{UserID: 12, Email: user.Email, Role: auth.RoleStudent}, id)
		})
	}
}

func TestService_ChangePassword(t *testing.T) {
	t.Parallel()
	hash, err := bcrypt.GenerateFromPassword([]byte("old-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	svc, d := newTestService(t)
	d.repo.EXPECT().GetUser(gomock.Any(), 3).Return(model.User{ID: 3, Password: string(hash)}, nil).Times(2)
	d.repo.EXPECT().UpdatePassword(gomock.Any(), 3, gomock.Any()).Return(nil)

	err = svc.ChangePassword(context.Background(), 3, model.ChangePasswordInput{CurrentPassword: "wrong", NewPassword: "new-pass"})
	require.ErrorIs(t, err, errs.ErrWrongPassword)

	err = svc.ChangePassword(context.Background(), 3, model.ChangePasswordInput{CurrentPassword: "old-pass", NewPassword: "new-pass"})
	require.NoError(t, err)
}

func TestService_UpdateBook(t *testing.T) {
	t.Parallel()
	explicit := 1
	tooMany := 9
	negative := -1
	// five copies, three on loan
	current := model.Book{ID: 2, Quantity: 5, Available: 2}

	tests := []struct {
		name         string
		in           model.BookInput
		mockBehavior func(d testDeps)
		want         model.Book
		wantErr      error
	}{
		{
			name: "quantity change left to the database",
			in:   model.BookInput{Quantity: 7},
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().GetBook(gomock.Any(), 2).Return(current, nil)
				d.repo.EXPECT().UpdateBook(gomock.Any(), 2, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int, in model.BookInput) error {
						require.Nil(t, in.Available)
						require.Equal(t, 7, in.Quantity)
						return nil
					})
				d.repo.EXPECT().GetBook(gomock.Any(), 2).Return(model.Book{ID: 2, Quantity: 7, Available: 4}, nil)
			},
			want: model.Book{ID: 2, Quantity: 7, Available: 4},
		},
		{
			name: "explicit available",
			in:   model.BookInput{Quantity: 5, Available: &explicit},
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().GetBook(gomock.Any(), 2).Return(current, nil)
				d.repo.EXPECT().UpdateBook(gomock.Any(), 2, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int, in model.BookInput) error {
						require.Equal(t, &explicit, in.Available)
						return nil
					})
				d.repo.EXPECT().GetBook(gomock.Any(), 2).Return(model.Book{ID: 2, Quantity: 5, Available: 1}, nil)
			},
			want: model.Book{ID: 2, Quantity: 5, Available: 1},
		},
		{
			name: "err. below loans out",
			in:   model.BookInput{Quantity: 2},
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().GetBook(gomock.Any(), 2).Return(current, nil)
				d.repo.EXPECT().UpdateBook(gomock.Any(), 2, gomock.Any()).Return(errs.ErrInvalidInventory)
			},
			wantErr: errs.ErrInvalidInventory,
		},
		{
			name:         "err. available above quantity",
			in:           model.BookInput{Quantity: 5, Available: &tooMany},
			mockBehavior: func(d testDeps) {},
			wantErr:      errs.ErrInvalidInventory,
		},
		{
			name:         "err. negative available",
			in:           model.BookInput{Quantity: 5, Available: &negative},
			mockBehavior: func(d testDeps) {},
			wantErr:      errs.ErrInvalidInventory,
		},
		{
			name:         "err. negative quantity",
			in:           model.BookInput{Quantity: -1},
			mockBehavior: func(d testDeps) {},
			wantErr:      errs.ErrInvalidInventory,
		},
		{
			name: "err. unknown book",
			in:   model.BookInput{Quantity: 5},
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().GetBook(gomock.Any(), 2).Return(model.Book{}, errs.ErrBookNotFound)
			},
			wantErr: errs.ErrBookNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, d := newTestService(t)
			tt.mockBehavior(d)

			book, err := svc.UpdateBook(context.Background(), 1, 2, tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, d.audit.actions())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, book)
			require.Equal(t, []string{actionUpdate}, d.audit.actions())
		})
	}
}

func TestService_DeleteBook(t *testing.T) {
	t.Parallel()
	svc, d := newTestService(t)
	d.repo.EXPECT().DeleteBook(gomock.Any(), 2).Return(errs.ErrActiveBorrows)
	require.ErrorIs(t, svc.DeleteBook(context.Background(), 1, 2), errs.ErrActiveBorrows)
	require.Empty(t, d.audit.actions())

	d.repo.EXPECT().DeleteBook(gomock.Any(), 3).Return(nil)
	require.NoError(t, svc.DeleteBook(context.Background(), 1, 3))
	require.Equal(t, []string{actionDelete}, d.audit.actions())
}

func TestService_AdminDashboard(t *testing.T) {
	t.Parallel()
	svc, d := newTestService(t)
	d.reports.EXPECT().OverallStats(gomock.Any()).Return(model.OverallStats{TotalBooks: 4, PendingRequests: 1}, nil)
	d.reports.EXPECT().RecentTransactions(gomock.Any(), dashboardRecent).Return([]model.TransactionDetails{{}}, nil)
	d.reports.EXPECT().PopularBooks(gomock.Any(), dashboardTopBooks).Return([]model.PopularBook{{}, {}}, nil)
	d.reports.EXPECT().CategoryStats(gomock.Any()).Return(nil, errors.New("view missing"))

	_, err := svc.AdminDashboard(context.Background())
	require.Error(t, err)

	d.reports.EXPECT().OverallStats(gomock.Any()).Return(model.OverallStats{TotalBooks: 4, PendingRequests: 1}, nil)
	d.reports.EXPECT().RecentTransactions(gomock.Any(), dashboardRecent).Return([]model.TransactionDetails{{}}, nil)
	d.reports.EXPECT().PopularBooks(gomock.Any(), dashboardTopBooks).Return([]model.PopularBook{{}, {}}, nil)
	d.reports.EXPECT().CategoryStats(gomock.Any()).Return([]model.CategoryStats{{}}, nil)

	dash, err := svc.AdminDashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4, dash.OverallStats.TotalBooks)
	require.Len(t, dash.RecentTransactions, 1)
	require.Len(t, dash.TopBooks, 2)
	require.Len(t, dash.CategoryDistribution, 1)
}
