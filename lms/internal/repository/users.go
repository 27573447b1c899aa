package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/lms-service/lms/internal/errs"
	"github.com/Astemirdum/lms-service/lms/internal/model"
	"github.com/Astemirdum/lms-service/pkg/auth"
)

var userColumns = []string{"id", "name", "email", "password", "student_id", "role", "phone", "created_at"}

const activeBorrowsColumn = `(select count(*) from transactions t where t.user_id = u.id and t.status = 'active')::int as active_borrows`

func (r *repository) CreateUser(ctx context.Context, u model.User) (model.User, error) {
	query, args, err := qb.Insert(usersTableName).
		Columns("name", "email", "password", "student_id", "role", "phone").
		Values(u.Name, u.Email, u.Password, u.StudentID, u.Role, u.Phone).
		Suffix("returning id, name, email, password, student_id, role, phone, created_at").
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.User{}, err
	}
	defer rows.Close()

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		return model.User{}, mapPgError(err)
	}
	return created, nil
}

func (r *repository) getUser(ctx context.Context, where sq.Eq) (model.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.User{}, err
	}
	defer rows.Close()

	u, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, errs.ErrUserNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

func (r *repository) GetUser(ctx context.Context, id int) (model.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id})
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return r.getUser(ctx, sq.Eq{"email": email})
}

func (r *repository) AdminExists(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `select exists(select 1 from users where role = $1)`, auth.RoleAdmin).Scan(&exists)
	return exists, err
}

func (r *repository) UpdateProfile(ctx context.Context, id int, in model.ProfileInput) (model.User, error) {
	query, args, err := qb.Update(usersTableName).
		Set("name", in.Name).
		Set("phone", in.Phone).
		Where(sq.Eq{"id": id}).
		Suffix("returning id, name, email, password, student_id, role, phone, created_at").
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.User{}, err
	}
	defer rows.Close()

	u, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, errs.ErrUserNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

func (r *repository) UpdatePassword(ctx context.Context, id int, hash string) error {
	q := `update users set password = @password where id = @id`
	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"id":       id,
		"password": hash,
	})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

func (r *repository) ListMembers(ctx context.Context) ([]model.Member, error) {
	query, args, err := qb.Select("u.id", "u.name", "u.email", "u.student_id", "u.role", "u.phone", "u.created_at", activeBorrowsColumn).
		From(usersTableName + " u").
		Where(sq.Eq{"u.role": auth.RoleStudent}).
		OrderBy("u.name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Member])
}

func (r *repository) GetMember(ctx context.Context, id int) (model.Member, error) {
	query, args, err := qb.Select("u.id", "u.name", "u.email", "u.student_id", "u.role", "u.phone", "u.created_at", activeBorrowsColumn).
		From(usersTableName + " u").
		Where(sq.Eq{"u.id": id}).
		ToSql()
	if err != nil {
		return model.Member{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Member{}, err
	}
	defer rows.Close()

	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Member])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Member{}, errs.ErrMemberNotFound
		}
		return model.Member{}, err
	}
	return m, nil
}
