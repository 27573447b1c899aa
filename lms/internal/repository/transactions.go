package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/lms-service/lms/internal/errs"
	"github.com/Astemirdum/lms-service/lms/internal/model"
)

func (r *repository) BorrowState(ctx context.Context, userID, bookID int) (model.BorrowState, error) {
	q := `
select exists(select 1 from books where id = @book_id)                          as book_exists,
       coalesce((select available from books where id = @book_id), 0)          as available,
       exists(select 1
              from transactions
              where user_id = @user_id and book_id = @book_id and status = 'active') as has_active,
       (select max(return_date)
        from transactions
        where user_id = @user_id and book_id = @book_id and status = 'returned') as last_returned_at,
       (select count(*) from transactions where user_id = @user_id and status = 'active')::int as active_count,
       exists(select 1
              from book_requests
              where user_id = @user_id and book_id = @book_id and status = 'pending') as has_pending_request`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"user_id": userID,
		"book_id": bookID,
	})
	if err != nil {
		return model.BorrowState{}, err
	}
	defer rows.Close()

	return pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BorrowState])
}

// CreateTransaction takes a copy off the shelf and records the loan in one database transaction.
func (r *repository) CreateTransaction(ctx context.Context, t model.Transaction) (model.Transaction, error) {
	var created model.Transaction
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if err := takeCopy(ctx, tx, t.BookID); err != nil {
			return err
		}
		var err error
		created, err = insertTransaction(ctx, tx, t)
		return err
	})
	if err != nil {
		return model.Transaction{}, err
	}
	return created, nil
}

func (r *repository) GetTransaction(ctx context.Context, id int) (model.Transaction, error) {
	query, args, err := qb.Select("id", "user_id", "book_id", "issue_date", "due_date", "return_date", "status", "fine").
		From(transactionsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Transaction{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Transaction{}, err
	}
	defer rows.Close()

	t, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Transaction])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Transaction{}, errs.ErrTransactionNotFound
		}
		return model.Transaction{}, err
	}
	return t, nil
}

// ReturnTransaction closes an active loan and puts the copy back on the shelf.
func (r *repository) ReturnTransaction(ctx context.Context, id int, returnedAt time.Time, fine int) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		q := `
update transactions
    set return_date = @returned_at, status = 'returned', fine = @fine
where id = @id and status = 'active'
returning book_id`
		var bookID int
		err := tx.QueryRow(ctx, q, pgx.NamedArgs{
			"id":          id,
			"returned_at": returnedAt,
			"fine":        fine,
		}).Scan(&bookID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.ErrAlreadyReturned
			}
			return err
		}

		_, err = tx.Exec(ctx,
			`update books set available = available + 1 where id = $1 and available < quantity`, bookID)
		return err
	})
}

func (r *repository) ListTransactions(ctx context.Context, userID *int) ([]model.TransactionDetails, error) {
	q := selectTransactionDetails().OrderBy("t.issue_date desc", "t.id desc")
	if userID != nil {
		q = q.Where(sq.Eq{"t.user_id": *userID})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByName[model.TransactionDetails])
}

func selectTransactionDetails() sq.SelectBuilder {
	return qb.Select(
		"t.id", "t.user_id", "t.book_id", "t.issue_date", "t.due_date", "t.return_date", "t.status", "t.fine",
		"u.name as user_name", "u.student_id as user_student_id",
		"b.title as book_title", "a.name as book_author", "c.name as book_category",
	).
		From(transactionsTableName + " t").
		Join(fmt.Sprintf("%s u on u.id = t.user_id", usersTableName)).
		Join(fmt.Sprintf("%s b on b.id = t.book_id", booksTableName)).
		Join(fmt.Sprintf("%s a on a.id = b.author_id", authorsTableName)).
		LeftJoin(fmt.Sprintf("%s c on c.id = b.category_id", categoriesTableName))
}
