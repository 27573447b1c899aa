package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lms-service/lms/internal/errs"
	"github.com/Astemirdum/lms-service/lms/internal/model"
)

func selectBooks(columns ...string) sq.SelectBuilder {
	return qb.Select(columns...).
		From(booksTableName + " b").
		Join(fmt.Sprintf("%s a on a.id = b.author_id", authorsTableName)).
		LeftJoin(fmt.Sprintf("%s c on c.id = b.category_id", categoriesTableName)).
		LeftJoin(fmt.Sprintf("%s p on p.id = b.publisher_id", publishersTableName))
}

var bookColumns = []string{
	"b.id", "b.title", "b.author_id", "a.name as author_name", "b.isbn",
	"b.category_id", "c.name as category_name", "b.publisher_id", "p.name as publisher_name",
	"b.publish_year", "b.quantity", "b.available", "b.description", "b.cover_image", "b.created_at",
}

func (r *repository) ListBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, error) {
	var where sq.And
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		where = append(where, sq.Or{
			sq.ILike{"b.title": pattern},
			sq.ILike{"a.name": pattern},
			sq.ILike{"b.isbn": pattern},
		})
	}

	q := selectBooks(bookColumns...).Where(where).OrderBy("b.title")
	if filter.Page != 0 && filter.Size != 0 {
		q = q.Limit(uint64(filter.Size)).Offset(uint64((filter.Page - 1) * filter.Size))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.ListBooks{}, err
	}
	defer rows.Close()

	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return model.ListBooks{}, fmt.Errorf("pgx.CollectRows: %w", err)
	}

	countQuery, countArgs, err := selectBooks("count(*)").Where(where).ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}
	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return model.ListBooks{}, err
	}

	return model.ListBooks{
		Paging: model.Paging{
			Page:          filter.Page,
			PageSize:      filter.Size,
			TotalElements: total,
		},
		Items: books,
	}, nil
}

func (r *repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	query, args, err := selectBooks(bookColumns...).
		Where(sq.Eq{"b.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Book{}, err
	}
	defer rows.Close()

	book, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Book{}, errs.ErrBookNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) CreateBook(ctx context.Context, in model.BookInput) (int, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("title", "author_id", "isbn", "category_id", "publisher_id", "publish_year",
			"quantity", "available", "description", "cover_image").
		Values(in.Title, in.AuthorID, in.ISBN, in.CategoryID, in.PublisherID, in.PublishYear,
			in.Quantity, in.Quantity, in.Description, in.CoverImage).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, mapPgError(err)
	}
	return id, nil
}

func (r *repository) UpdateBook(ctx context.Context, id int, in model.BookInput) error {
	q := qb.Update(booksTableName).
		Set("title", in.Title).
		Set("author_id", in.AuthorID).
		Set("isbn", in.ISBN).
		Set("category_id", in.CategoryID).
		Set("publisher_id", in.PublisherID).
		Set("publish_year", in.PublishYear).
		Set("quantity", in.Quantity).
		Set("description", in.Description).
		Set("cover_image", in.CoverImage).
		Where(sq.Eq{"id": id})
	if in.Available != nil {
		q = q.Set("available", *in.Available)
	} else {
		// the right side reads the old quantity
		q = q.Set("available", sq.Expr("available + (? - quantity)", in.Quantity))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrBookNotFound
	}
	return nil
}

// DeleteBook removes the book with everything that references it, unless a copy is still out.
func (r *repository) DeleteBook(ctx context.Context, id int) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		var locked int
		err := tx.QueryRow(ctx, `select id from books where id = $1 for update`, id).Scan(&locked)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.ErrBookNotFound
			}
			return err
		}

		var active int
		err = tx.QueryRow(ctx,
			`select count(*) from transactions where book_id = $1 and status = 'active'`, id).Scan(&active)
		if err != nil {
			return err
		}
		if active > 0 {
			return errs.ErrActiveBorrows
		}

		for _, table := range []string{requestsTableName, reviewsTableName, reservationsTableName, transactionsTableName} {
			query, args, err := qb.Delete(table).Where(sq.Eq{"book_id": id}).ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, query, args...); err != nil {
				return errors.Wrapf(err, "delete from %s", table)
			}
		}

		_, err = tx.Exec(ctx, `delete from books where id = $1`, id)
		return err
	})
}

func (r *repository) listLookup(ctx context.Context, table string) ([]model.Lookup, error) {
	query, args, err := qb.Select("id", "name").From(table).OrderBy("name").ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Lookup])
}

func (r *repository) ListAuthors(ctx context.Context) ([]model.Lookup, error) {
	return r.listLookup(ctx, authorsTableName)
}

func (r *repository) ListCategories(ctx context.Context) ([]model.Lookup, error) {
	return r.listLookup(ctx, categoriesTableName)
}

func (r *repository) ListPublishers(ctx context.Context) ([]model.Lookup, error) {
	return r.listLookup(ctx, publishersTableName)
}
