package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lms-service/lms/internal/errs"
	"github.com/Astemirdum/lms-service/lms/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=reports.go -destination=mocks/reports_mock.go

// Reports reads the reporting views. It never writes.
type Reports interface {
	BookInventory(ctx context.Context) ([]model.BookInventory, error)
	ActiveTransactions(ctx context.Context) ([]model.LoanReport, error)
	OverdueTransactions(ctx context.Context) ([]model.LoanReport, error)
	UserBorrowingStats(ctx context.Context) ([]model.UserBorrowingStats, error)
	PopularBooks(ctx context.Context, limit int) ([]model.PopularBook, error)
	CategoryStats(ctx context.Context) ([]model.CategoryStats, error)
	MonthlySummary(ctx context.Context) ([]model.MonthlySummary, error)

	OverallStats(ctx context.Context) (model.OverallStats, error)
	RecentTransactions(ctx context.Context, limit int) ([]model.TransactionDetails, error)
	UserStats(ctx context.Context, userID int) (model.UserBorrowingStats, error)
	UserActiveTransactions(ctx context.Context, userID int) ([]model.LoanReport, error)
	SearchBooks(ctx context.Context, filter model.SearchFilter) ([]model.BookInventory, error)
	TransactionHistory(ctx context.Context, filter model.HistoryFilter) ([]model.TransactionDetails, error)
	BookAuditLog(ctx context.Context, bookID *int) ([]model.AuditLog, error)
	UserAuditLog(ctx context.Context, userID *int) ([]model.AuditLog, error)
}

type reports struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewReports(db *sqlx.DB, log *zap.Logger) *reports {
	return &reports{
		db:  db,
		log: log.Named("reports"),
	}
}

const (
	bookInventoryView      = `vw_book_inventory`
	activeTransactionsView = `vw_active_transactions`
	overdueView            = `vw_overdue_transactions`
	userStatsView          = `vw_user_borrowing_stats`
	popularBooksView       = `vw_popular_books`
	categoryStatsView      = `vw_category_stats`
	monthlySummaryView     = `vw_monthly_transaction_summary`
)

func (r *reports) selectAll(ctx context.Context, dest interface{}, q sq.SelectBuilder) error {
	query, args, err := q.ToSql()
	if err != nil {
		return err
	}
	if err := r.db.SelectContext(ctx, dest, query, args...); err != nil {
		r.log.Error("SelectContext", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return err
	}
	return nil
}

func (r *reports) BookInventory(ctx context.Context) ([]model.BookInventory, error) {
	var items []model.BookInventory
	err := r.selectAll(ctx, &items, qb.Select("*").From(bookInventoryView).OrderBy("title"))
	return items, err
}

func (r *reports) ActiveTransactions(ctx context.Context) ([]model.LoanReport, error) {
	var items []model.LoanReport
	err := r.selectAll(ctx, &items, qb.Select("*").From(activeTransactionsView).OrderBy("due_date"))
	return items, err
}

func (r *reports) OverdueTransactions(ctx context.Context) ([]model.LoanReport, error) {
	var items []model.LoanReport
	err := r.selectAll(ctx, &items, qb.Select("*").From(overdueView).OrderBy("days_overdue desc"))
	return items, err
}

func (r *reports) UserBorrowingStats(ctx context.Context) ([]model.UserBorrowingStats, error) {
	var items []model.UserBorrowingStats
	err := r.selectAll(ctx, &items, qb.Select("*").From(userStatsView).OrderBy("total_transactions desc"))
	return items, err
}

func (r *reports) PopularBooks(ctx context.Context, limit int) ([]model.PopularBook, error) {
	q := qb.Select("*").From(popularBooksView).OrderBy("total_borrows desc", "title")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	var items []model.PopularBook
	err := r.selectAll(ctx, &items, q)
	return items, err
}

func (r *reports) CategoryStats(ctx context.Context) ([]model.CategoryStats, error) {
	var items []model.CategoryStats
	err := r.selectAll(ctx, &items, qb.Select("*").From(categoryStatsView).OrderBy("total_books desc"))
	return items, err
}

func (r *reports) MonthlySummary(ctx context.Context) ([]model.MonthlySummary, error) {
	var items []model.MonthlySummary
	err := r.selectAll(ctx, &items, qb.Select("*").From(monthlySummaryView).
		OrderBy("transaction_year desc", "transaction_month desc"))
	return items, err
}

func (r *reports) OverallStats(ctx context.Context) (model.OverallStats, error) {
	q := `
select (select count(*) from books)::int                                                  as total_books,
       (select coalesce(sum(quantity), 0) from books)::int                                as total_copies,
       (select coalesce(sum(available), 0) from books)::int                               as available_copies,
       (select count(*) from users where role = 'student')::int                           as total_members,
       (select count(*) from transactions where status = 'active')::int                   as active_transactions,
       (select count(*) from transactions where status = 'active' and due_date < now())::int as overdue_transactions,
       (select count(*) from book_requests where status = 'pending')::int                 as pending_requests,
       (select coalesce(sum(fine), 0) from transactions)::int                             as total_fines`
	var stats model.OverallStats
	if err := r.db.GetContext(ctx, &stats, q); err != nil {
		return model.OverallStats{}, err
	}
	return stats, nil
}

func (r *reports) RecentTransactions(ctx context.Context, limit int) ([]model.TransactionDetails, error) {
	var items []model.TransactionDetails
	err := r.selectAll(ctx, &items, selectTransactionDetails().
		OrderBy("t.issue_date desc", "t.id desc").
		Limit(uint64(limit)))
	return items, err
}

func (r *reports) UserStats(ctx context.Context, userID int) (model.UserBorrowingStats, error) {
	query, args, err := qb.Select("*").From(userStatsView).Where(sq.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return model.UserBorrowingStats{}, err
	}
	var stats model.UserBorrowingStats
	if err := r.db.GetContext(ctx, &stats, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.UserBorrowingStats{}, errs.ErrUserNotFound
		}
		return model.UserBorrowingStats{}, err
	}
	return stats, nil
}

func (r *reports) UserActiveTransactions(ctx context.Context, userID int) ([]model.LoanReport, error) {
	var items []model.LoanReport
	err := r.selectAll(ctx, &items, qb.Select("*").From(activeTransactionsView).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("due_date"))
	return items, err
}

func (r *reports) SearchBooks(ctx context.Context, filter model.SearchFilter) ([]model.BookInventory, error) {
	q := qb.Select("*").From(bookInventoryView).OrderBy("title")
	if filter.SearchTerm != "" {
		pattern := "%" + filter.SearchTerm + "%"
		q = q.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"author_name": pattern},
			sq.ILike{"isbn": pattern},
		})
	}
	if filter.Category != "" {
		q = q.Where(sq.Eq{"category_name": filter.Category})
	}
	if filter.AvailableOnly {
		q = q.Where(sq.Gt{"available": 0})
	}
	var items []model.BookInventory
	err := r.selectAll(ctx, &items, q)
	return items, err
}

func (r *reports) TransactionHistory(ctx context.Context, filter model.HistoryFilter) ([]model.TransactionDetails, error) {
	q := selectTransactionDetails().OrderBy("t.issue_date desc", "t.id desc")
	if filter.UserID != nil {
		q = q.Where(sq.Eq{"t.user_id": *filter.UserID})
	}
	if filter.BookID != nil {
		q = q.Where(sq.Eq{"t.book_id": *filter.BookID})
	}
	switch model.TransactionStatus(filter.Status) {
	case "":
	case model.StatusOverdue:
		q = q.Where(sq.Eq{"t.status": model.StatusActive}).Where("t.due_date < now()")
	default:
		q = q.Where(sq.Eq{"t.status": filter.Status})
	}
	if filter.StartDate != nil {
		q = q.Where(sq.GtOrEq{"t.issue_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		q = q.Where(sq.LtOrEq{"t.issue_date": *filter.EndDate})
	}
	var items []model.TransactionDetails
	err := r.selectAll(ctx, &items, q)
	return items, err
}

func (r *reports) BookAuditLog(ctx context.Context, bookID *int) ([]model.AuditLog, error) {
	return r.auditLog(ctx, bookAuditTableName, "book_id", bookID)
}

func (r *reports) UserAuditLog(ctx context.Context, userID *int) ([]model.AuditLog, error) {
	return r.auditLog(ctx, userAuditTableName, "user_id", userID)
}

func (r *reports) auditLog(ctx context.Context, table, entityColumn string, entityID *int) ([]model.AuditLog, error) {
	q := qb.Select("id", "event_id", fmt.Sprintf("%s as entity_id", entityColumn), "action", "actor_id", "details", "changed_at").
		From(table).
		OrderBy("changed_at desc", "id desc")
	if entityID != nil {
		q = q.Where(sq.Eq{entityColumn: *entityID})
	}
	var items []model.AuditLog
	err := r.selectAll(ctx, &items, q)
	return items, err
}
