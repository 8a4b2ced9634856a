package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/beichen-observer/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	upsertUserSuffix = `ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name, role = EXCLUDED.role, password_hash = EXCLUDED.password_hash
		RETURNING id, name, email, role, password_hash, created_at`
)

var (
	userColumns   = []string{"id", "name", "email", "role", "password_hash", "created_at"}
	campusColumns = []string{"id", "name", "created_at"}
	classColumns  = []string{"id", "name", `"campusId"`, "created_at"}

	returningID     = "RETURNING id"
	returningUser   = "RETURNING id, name, email, role, password_hash, created_at"
	returningCampus = "RETURNING id, name, created_at"
	returningClass  = `RETURNING id, name, "campusId", created_at`

	recordOrdering    = []string{"date DESC", "id DESC"}
	referenceOrdering = "name ASC"
)

// buildInsertRecordQuery builds INSERT ... RETURNING id for one record.
func buildInsertRecordQuery[T any](ctx context.Context, s recordSchema[T], record T) (string, []any, error) {
	values, err := s.values(record)
	if err != nil {
		return "", nil, fmt.Errorf("error encoding %s: %w", s.name, err)
	}

	return psql.Insert(s.table).
		Columns(s.columns...).
		Values(values...).
		Suffix(returningID).
		ToSql()
}

// buildSelectRecordsQuery builds the listing query, newest date first.
func buildSelectRecordsQuery[T any](ctx context.Context, s recordSchema[T]) (string, []any, error) {
	return psql.Select(s.selectColumns()...).
		From(s.table).
		OrderBy(recordOrdering...).
		ToSql()
}

// buildSelectRecordQuery builds the single-record lookup.
func buildSelectRecordQuery[T any](ctx context.Context, s recordSchema[T], id int64) (string, []any, error) {
	return psql.Select(s.selectColumns()...).
		From(s.table).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildUpdateRecordQuery replaces every writable column of one record and
// bumps updated_at.
func buildUpdateRecordQuery[T any](ctx context.Context, s recordSchema[T], id int64, record T) (string, []any, error) {
	values, err := s.values(record)
	if err != nil {
		return "", nil, fmt.Errorf("error encoding %s: %w", s.name, err)
	}

	update := psql.Update(s.table)
	for i, column := range s.columns {
		update = update.Set(column, values[i])
	}

	return update.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix(returningID).
		ToSql()
}

// buildDeleteRecordQuery deletes one record.
func buildDeleteRecordQuery[T any](ctx context.Context, s recordSchema[T], id int64) (string, []any, error) {
	return psql.Delete(s.table).Where(sq.Eq{"id": id}).ToSql()
}

// buildDeleteAllRecordsQuery deletes every record of the table.
func buildDeleteAllRecordsQuery[T any](ctx context.Context, s recordSchema[T]) (string, []any, error) {
	return psql.Delete(s.table).ToSql()
}

func buildInsertUserQuery(ctx context.Context, user models.User) (string, []any, error) {
	return psql.Insert("users").
		Columns("id", "name", "email", "role", "password_hash").
		Values(user.ID.String(), user.Name, user.Email, user.Role, user.PasswordHash).
		Suffix(returningUser).
		ToSql()
}

func buildUpsertUserQuery(ctx context.Context, user models.User) (string, []any, error) {
	return psql.Insert("users").
		Columns("id", "name", "email", "role", "password_hash").
		Values(user.ID.String(), user.Name, user.Email, user.Role, user.PasswordHash).
		Suffix(upsertUserSuffix).
		ToSql()
}

func buildFindUserByEmailQuery(ctx context.Context, email string) (string, []any, error) {
	return psql.Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
}

// buildListUsersQuery returns the page query and the matching count query.
func buildListUsersQuery(ctx context.Context, filter models.UserFilter) (string, []any, string, []any, error) {
	page := psql.Select(userColumns...).From("users")
	count := psql.Select("COUNT(*)").From("users")
	if filter.Role != "" {
		page = page.Where(sq.Eq{"role": filter.Role})
		count = count.Where(sq.Eq{"role": filter.Role})
	}

	query, args, err := page.
		OrderBy(referenceOrdering).
		Limit(uint64(filter.PageSize)).
		Offset(uint64(filter.Offset())).
		ToSql()
	if err != nil {
		return "", nil, "", nil, err
	}

	countQuery, countArgs, err := count.ToSql()
	if err != nil {
		return "", nil, "", nil, err
	}

	return query, args, countQuery, countArgs, nil
}

func buildInsertCampusQuery(ctx context.Context, campus models.ReferenceEntity) (string, []any, error) {
	return psql.Insert("campuses").
		Columns("id", "name").
		Values(campus.ID.String(), campus.Name).
		Suffix(returningCampus).
		ToSql()
}

func buildListCampusesQuery(ctx context.Context) (string, []any, error) {
	return psql.Select(campusColumns...).
		From("campuses").
		OrderBy(referenceOrdering).
		ToSql()
}

func buildInsertClassQuery(ctx context.Context, class models.ReferenceEntity) (string, []any, error) {
	return psql.Insert("classes").
		Columns("id", "name", `"campusId"`).
		Values(class.ID.String(), class.Name, nullIfEmpty(class.CampusID)).
		Suffix(returningClass).
		ToSql()
}

func buildListClassesQuery(ctx context.Context, campusID string) (string, []any, error) {
	query := psql.Select(classColumns...).
		From("classes").
		OrderBy(referenceOrdering)
	if campusID != "" {
		query = query.Where(sq.Eq{`"campusId"`: campusID})
	}

	return query.ToSql()
}
