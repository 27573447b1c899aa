package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lms-service/lms/internal/errs"
	"github.com/Astemirdum/lms-service/lms/internal/model"
	"github.com/Astemirdum/lms-service/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	CreateUser(ctx context.Context, u model.User) (model.User, error)
	GetUser(ctx context.Context, id int) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	AdminExists(ctx context.Context) (bool, error)
	UpdateProfile(ctx context.Context, id int, in model.ProfileInput) (model.User, error)
	UpdatePassword(ctx context.Context, id int, hash string) error
	ListMembers(ctx context.Context) ([]model.Member, error)
	GetMember(ctx context.Context, id int) (model.Member, error)

	ListBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	CreateBook(ctx context.Context, in model.BookInput) (int, error)
	UpdateBook(ctx context.Context, id int, in model.BookInput) error
	DeleteBook(ctx context.Context, id int) error
	ListAuthors(ctx context.Context) ([]model.Lookup, error)
	ListCategories(ctx context.Context) ([]model.Lookup, error)
	ListPublishers(ctx context.Context) ([]model.Lookup, error)

	BorrowState(ctx context.Context, userID, bookID int) (model.BorrowState, error)
	CreateTransaction(ctx context.Context, t model.Transaction) (model.Transaction, error)
	GetTransaction(ctx context.Context, id int) (model.Transaction, error)
	ReturnTransaction(ctx context.Context, id int, returnedAt time.Time, fine int) error
	ListTransactions(ctx context.Context, userID *int) ([]model.TransactionDetails, error)

	CreateBookRequest(ctx context.Context, req model.BookRequest) (model.BookRequest, error)
	GetBookRequest(ctx context.Context, id int) (model.BookRequest, error)
	ListPendingRequests(ctx context.Context) ([]model.BookRequestDetails, error)
	ListUserRequests(ctx context.Context, userID int) ([]model.BookRequestDetails, error)
	ApproveRequest(ctx context.Context, a model.Approval) (model.Transaction, error)
	RejectRequest(ctx context.Context, r model.Rejection) error

	SaveAuditEvent(ctx context.Context, e kafka.AuditEvent) error
}

type repository struct {
	db  PgxPool
	log *zap.Logger
}

func NewRepository(db PgxPool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName        = `users`
	authorsTableName      = `authors`
	categoriesTableName   = `categories`
	publishersTableName   = `publishers`
	booksTableName        = `books`
	transactionsTableName = `transactions`
	requestsTableName     = `book_requests`
	reviewsTableName      = `reviews`
	reservationsTableName = `reservations`
	bookAuditTableName    = `book_audit_log`
	userAuditTableName    = `user_audit_log`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// constraint name -> domain error
var uniqueViolations = map[string]error{
	"users_email_key":                errs.ErrUserExists,
	"users_student_id_key":           errs.ErrStudentIDExists,
	"users_single_admin_idx":         errs.ErrAdminExists,
	"books_isbn_key":                 errs.ErrISBNExists,
	"transactions_active_borrow_idx": errs.ErrAlreadyBorrowed,
	"book_requests_pending_idx":      errs.ErrRequestPending,
}

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		if e, ok := uniqueViolations[pgErr.ConstraintName]; ok {
			return e
		}
	case pgerrcode.ForeignKeyViolation:
		return errs.ErrReferenceInvalid
	case pgerrcode.CheckViolation:
		if pgErr.ConstraintName == "books_available_check" {
			return errs.ErrInvalidInventory
		}
	}
	return err
}

// takeCopy decrements availability only while a copy is left, so two borrowers can never take the last one.
func takeCopy(ctx context.Context, tx pgx.Tx, bookID int) error {
	q := `update books set available = available - 1 where id = $1 and available > 0`
	tag, err := tx.Exec(ctx, q, bookID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNoCopies
	}
	return nil
}

func insertTransaction(ctx context.Context, tx pgx.Tx, t model.Transaction) (model.Transaction, error) {
	query, args, err := qb.Insert(transactionsTableName).
		Columns("user_id", "book_id", "issue_date", "due_date", "status").
		Values(t.UserID, t.BookID, t.IssueDate, t.DueDate, model.StatusActive).
		Suffix("returning id, user_id, book_id, issue_date, due_date, return_date, status, fine").
		ToSql()
	if err != nil {
		return model.Transaction{}, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return model.Transaction{}, mapPgError(err)
	}
	defer rows.Close()

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Transaction])
	if err != nil {
		return model.Transaction{}, mapPgError(err)
	}
	return created, nil
}
