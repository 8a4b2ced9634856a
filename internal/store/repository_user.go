package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/beichen-observer/internal/logger"
	"github.com/MKhiriev/beichen-observer/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext].
type userRepository struct {
	logger *logger.Logger
	db     *DB
	ids    IDGenerator
}

// NewUserRepository constructs a [UserRepository]. New accounts get their
// identifier from ids.
func NewUserRepository(db *DB, ids IDGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

// CreateUser persists a new account and returns it with server-assigned
// fields. A duplicate email is reported as [ErrEmailAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.ID.IsZero() {
		user.ID = models.ID(r.ids.Generate())
	}

	query, args, err := buildInsertUserQuery(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, r.db.wrap(ErrExecutingStatement, err)
	}

	return created, nil
}

// UpsertUser creates the account or, when the email is taken, overwrites its
// name, role and password hash.
func (r *userRepository) UpsertUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.ID.IsZero() {
		user.ID = models.ID(r.ids.Generate())
	}

	query, args, err := buildUpsertUserQuery(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpsertUser").Msg("error upserting user")
		return models.User{}, r.db.wrap(ErrExecutingStatement, err)
	}

	return saved, nil
}

// FindUserByEmail retrieves the account registered under email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByEmailQuery(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		found, scanErr = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user")
		return models.User{}, r.db.wrap(ErrScanningRow, err)
	}

	return found, nil
}

// ListUsers returns one page of accounts and the total number matching the
// filter.
func (r *userRepository) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, int, error) {
	log := logger.FromContext(ctx)

	query, args, countQuery, countArgs, err := buildListUsersQuery(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error counting users")
		return nil, 0, r.db.wrap(ErrExecutingQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, 0, r.db.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning user")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, total, nil
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(idTarget{&user.ID}, &user.Name, &user.Email, &user.Role, &user.PasswordHash, &user.CreatedAt)
	return user, err
}
