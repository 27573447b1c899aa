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

var requestColumns = []string{
	"id", "user_id", "book_id", "request_note", "status", "request_date", "reviewed_by", "review_date", "review_note",
}

func (r *repository) CreateBookRequest(ctx context.Context, req model.BookRequest) (model.BookRequest, error) {
	query, args, err := qb.Insert(requestsTableName).
		Columns("user_id", "book_id", "request_note", "status", "request_date").
		Values(req.UserID, req.BookID, req.RequestNote, model.RequestPending, req.RequestDate).
		Suffix("returning id, user_id, book_id, request_note, status, request_date, reviewed_by, review_date, review_note").
		ToSql()
	if err != nil {
		return model.BookRequest{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.BookRequest{}, err
	}
	defer rows.Close()

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BookRequest])
	if err != nil {
		return model.BookRequest{}, mapPgError(err)
	}
	return created, nil
}

func (r *repository) GetBookRequest(ctx context.Context, id int) (model.BookRequest, error) {
	query, args, err := qb.Select(requestColumns...).
		From(requestsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.BookRequest{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.BookRequest{}, err
	}
	defer rows.Close()

	req, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BookRequest])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.BookRequest{}, errs.ErrRequestNotFound
		}
		return model.BookRequest{}, err
	}
	return req, nil
}

func selectRequestDetails() sq.SelectBuilder {
	return qb.Select(
		"br.id", "br.user_id", "br.book_id", "br.request_note", "br.status", "br.request_date",
		"br.reviewed_by", "br.review_date", "br.review_note",
		"u.name as user_name", "u.email as user_email", "u.student_id",
		"b.title as book_title", "b.isbn as book_isbn", "b.available as book_available",
		activeBorrowsColumn,
	).
		From(requestsTableName + " br").
		Join(fmt.Sprintf("%s u on u.id = br.user_id", usersTableName)).
		Join(fmt.Sprintf("%s b on b.id = br.book_id", booksTableName))
}

func (r *repository) ListPendingRequests(ctx context.Context) ([]model.BookRequestDetails, error) {
	return r.listRequests(ctx, selectRequestDetails().
		Where(sq.Eq{"br.status": model.RequestPending}).
		OrderBy("br.request_date", "br.id"))
}

func (r *repository) ListUserRequests(ctx context.Context, userID int) ([]model.BookRequestDetails, error) {
	return r.listRequests(ctx, selectRequestDetails().
		Where(sq.Eq{"br.user_id": userID}).
		OrderBy("br.request_date desc", "br.id desc"))
}

func (r *repository) listRequests(ctx context.Context, q sq.SelectBuilder) ([]model.BookRequestDetails, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByName[model.BookRequestDetails])
}

// ApproveRequest issues the requested book and closes the request. The request row stays locked
// until commit so a concurrent approve or reject sees it as processed.
func (r *repository) ApproveRequest(ctx context.Context, a model.Approval) (model.Transaction, error) {
	var created model.Transaction
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var (
			userID, bookID int
			status         model.RequestStatus
		)
		err := tx.QueryRow(ctx,
			`select user_id, book_id, status from book_requests where id = $1 for update`, a.RequestID).
			Scan(&userID, &bookID, &status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.ErrRequestNotFound
			}
			return err
		}
		if status != model.RequestPending {
			return errs.ErrRequestProcessed
		}

		if err := takeCopy(ctx, tx, bookID); err != nil {
			return err
		}
		created, err = insertTransaction(ctx, tx, model.Transaction{
			UserID:    userID,
			BookID:    bookID,
			IssueDate: a.IssueDate,
			DueDate:   a.DueDate,
		})
		if err != nil {
			return err
		}

		return review(ctx, tx, a.RequestID, model.RequestApproved, a.ReviewerID, a.ReviewNote, a.ReviewedAt)
	})
	if err != nil {
		return model.Transaction{}, err
	}
	return created, nil
}

func (r *repository) RejectRequest(ctx context.Context, rej model.Rejection) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return review(ctx, tx, rej.RequestID, model.RequestRejected, rej.ReviewerID, rej.ReviewNote, rej.ReviewedAt)
	})
}

func review(ctx context.Context, tx pgx.Tx, id int, status model.RequestStatus, reviewer int, note string, at time.Time) error {
	q := `
update book_requests
    set status = @status, reviewed_by = @reviewed_by, review_date = @review_date, review_note = @review_note
where id = @id and status = 'pending'`
	tag, err := tx.Exec(ctx, q, pgx.NamedArgs{
		"id":          id,
		"status":      status,
		"reviewed_by": reviewer,
		"review_date": at,
		"review_note": note,
	})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrRequestProcessed
	}
	return nil
}
