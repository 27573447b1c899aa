package handler

import (
	"context"

	"github.com/Astemirdum/lms-service/lms/internal/model"
	"github.com/Astemirdum/lms-service/lms/internal/service"
	"github.com/Astemirdum/lms-service/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type AuthService interface {
	Signup(ctx context.Context, req model.SignupRequest) (model.Member, error)
	Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error)
}

type CatalogService interface {
	ListBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	CreateBook(ctx context.Context, actorID int, in model.BookInput) (model.Book, error)
	UpdateBook(ctx context.Context, actorID, id int, in model.BookInput) (model.Book, error)
	DeleteBook(ctx context.Context, actorID, id int) error
	ListAuthors(ctx context.Context) ([]model.Lookup, error)
	ListCategories(ctx context.Context) ([]model.Lookup, error)
	ListPublishers(ctx context.Context) ([]model.Lookup, error)
}

type MemberService interface {
	Profile(ctx context.Context, userID int) (model.Member, error)
	UpdateProfile(ctx context.Context, userID int, in model.ProfileInput) (model.Member, error)
	ChangePassword(ctx context.Context, userID int, in model.ChangePasswordInput) error
	ListMembers(ctx context.Context) ([]model.Member, error)
	GetMember(ctx context.Context, id int) (model.Member, error)
}

type CirculationService interface {
	Borrow(ctx context.Context, userID int, in model.BorrowInput) (model.BorrowResult, error)
	IssueBook(ctx context.Context, adminID int, in model.IssueInput) (model.Transaction, error)
	ReturnBook(ctx context.Context, userID, transactionID int) (model.ReturnResult, error)
	AdminReturn(ctx context.Context, adminID, transactionID int) (model.ReturnResult, error)
	ListTransactions(ctx context.Context) ([]model.TransactionDetails, error)
	MyTransactions(ctx context.Context, userID int) ([]model.TransactionDetails, error)
	CalculateFine(ctx context.Context, transactionID int) (model.FineQuote, error)
}

type RequestService interface {
	PendingRequests(ctx context.Context) ([]model.BookRequestDetails, error)
	MyRequests(ctx context.Context, userID int) ([]model.BookRequestDetails, error)
	ApproveRequest(ctx context.Context, reviewerID, requestID int, in model.ReviewInput) (model.Transaction, error)
	RejectRequest(ctx context.Context, reviewerID, requestID int, in model.ReviewInput) error
}

type AnalyticsService interface {
	BookInventory(ctx context.Context) ([]model.BookInventory, error)
	ActiveTransactions(ctx context.Context) ([]model.LoanReport, error)
	OverdueTransactions(ctx context.Context) ([]model.LoanReport, error)
	UserBorrowingStats(ctx context.Context) ([]model.UserBorrowingStats, error)
	PopularBooks(ctx context.Context) ([]model.PopularBook, error)
	CategoryStats(ctx context.Context) ([]model.CategoryStats, error)
	MonthlySummary(ctx context.Context) ([]model.MonthlySummary, error)
	AdminDashboard(ctx context.Context) (model.AdminDashboard, error)
	UserDashboard(ctx context.Context, userID int) (model.UserDashboard, error)
	SearchBooks(ctx context.Context, filter model.SearchFilter) ([]model.BookInventory, error)
	TransactionHistory(ctx context.Context, filter model.HistoryFilter) ([]model.TransactionDetails, error)
	BookAuditLog(ctx context.Context, bookID *int) ([]model.AuditLog, error)
	UserAuditLog(ctx context.Context, userID *int) ([]model.AuditLog, error)
}

type AuditService interface {
	RecordAudit(ctx context.Context, e kafka.AuditEvent) error
}

type LibraryService interface {
	AuthService
	CatalogService
	MemberService
	CirculationService
	RequestService
	AnalyticsService
	AuditService
}

var _ LibraryService = (*service.Service)(nil)
