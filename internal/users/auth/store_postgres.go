// Copyright (c) 2026 Code2Lead. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/apperr"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/database/schema"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/dberr"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/postgres"
)

// userErrors translates storage failures on users.account into domain errors.
var userErrors = dberr.Mapping{
	NotFound: ErrUserNotFound,
	Conflicts: map[string]*apperr.AppError{
		schema.UserAccount.EmailKey:    ErrEmailExists,
		schema.UserAccount.UsernameKey: ErrUsernameExists,
	},
}

// WrapUserError applies the users.account error translation to err.
func WrapUserError(err error, action string) error {
	return dberr.WrapWith(err, action, userErrors)
}

// # User Repository

// PostgresUserRepository implements the UserRepository interface using pgx.
type PostgresUserRepository struct {
	db postgres.Querier
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(db postgres.Querier) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

/*
Create persists a new user record into the users.account table.

Description: The email and username unique constraints are the only uniqueness
check. A violation is translated into ErrEmailExists or ErrUsernameExists by
constraint name.

Parameters:
  - context: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: Domain conflicts or connectivity errors
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	table := schema.UserAccount
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		table.Table, table.SelectList(),
	)

	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := repository.db.Exec(context, query,
		user.ID,
		user.Name,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.IsActive,
		user.Bio,
		user.Avatar,
		user.PublicProfile,
		user.Social,
		nonNilStudies(user.Studies),
		user.LastLogin,
		user.CreatedAt,
		user.UpdatedAt,
	)

	return WrapUserError(err, "postgres_user_repo_create_failed")
}

// FindByID retrieves a user record by primary key.
func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	return repository.findOne(context, schema.UserAccount.ID, id, "postgres_user_repo_find_by_id_failed")
}

// FindByEmail retrieves a user record by their unique email address.
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	return repository.findOne(context, schema.UserAccount.Email, email, "postgres_user_repo_find_by_email_failed")
}

// FindByUsername retrieves a user record by their unique username.
func (repository *PostgresUserRepository) FindByUsername(context context.Context, username string) (*User, error) {
	return repository.findOne(context, schema.UserAccount.Username, username, "postgres_user_repo_find_by_username_failed")
}

func (repository *PostgresUserRepository) findOne(context context.Context, column, value, action string) (*User, error) {
	table := schema.UserAccount
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, table.SelectList(), table.Table, column)

	user, err := ScanUser(repository.db.QueryRow(context, query, value))
	if err != nil {
		return nil, WrapUserError(err, action)
	}
	return user, nil
}

/*
SetActive flips the activation flag and returns the updated row.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - active: bool

Returns:
  - *User: Updated account
  - error: ErrUserNotFound or database errors
*/
func (repository *PostgresUserRepository) SetActive(context context.Context, id string, active bool) (*User, error) {
	table := schema.UserAccount
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3
		WHERE %s = $1
		RETURNING %s`,
		table.Table, table.IsActive, table.UpdatedAt,
		table.ID,
		table.SelectList(),
	)

	user, err := ScanUser(repository.db.QueryRow(context, query, id, active, time.Now().UTC()))
	if err != nil {
		return nil, WrapUserError(err, "postgres_user_repo_set_active_failed")
	}
	return user, nil
}

// TouchLastLogin stamps the lastloginat column without changing updatedat.
func (repository *PostgresUserRepository) TouchLastLogin(context context.Context, id string, at time.Time) error {
	table := schema.UserAccount
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`, table.Table, table.LastLoginAt, table.ID)

	tag, err := repository.db.Exec(context, query, id, at.UTC())
	if err != nil {
		return WrapUserError(err, "postgres_user_repo_touch_last_login_failed")
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

/*
List returns one page of accounts ordered by creation time, newest first.

Parameters:
  - context: context.Context
  - filter: UserFilter (optional role, page and limit)

Returns:
  - []*User: The requested page
  - int: Total number of matching accounts
  - error: Database errors
*/
func (repository *PostgresUserRepository) List(context context.Context, filter UserFilter) ([]*User, int, error) {
	table := schema.UserAccount
	filter.Params = filter.Params.Normalize()

	// An empty role disables the filter
	where := fmt.Sprintf(`WHERE ($1 = '' OR %s = $1)`, table.Role)

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, table.Table, where)
	if err := repository.db.QueryRow(context, countQuery, string(filter.Role)).Scan(&total); err != nil {
		return nil, 0, WrapUserError(err, "postgres_user_repo_count_failed")
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s %s
		ORDER BY %s DESC, %s DESC
		LIMIT $2 OFFSET $3`,
		table.SelectList(), table.Table, where,
		table.CreatedAt, table.ID,
	)

	rows, err := repository.db.Query(context, query, string(filter.Role), filter.Limit, filter.Offset())
	if err != nil {
		return nil, 0, WrapUserError(err, "postgres_user_repo_list_failed")
	}
	defer rows.Close()

	users := make([]*User, 0, filter.Limit)
	for rows.Next() {
		user, err := ScanUser(rows)
		if err != nil {
			return nil, 0, WrapUserError(err, "postgres_user_repo_list_scan_failed")
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, WrapUserError(err, "postgres_user_repo_list_failed")
	}

	return users, total, nil
}

// # Row Mapping

// ScanUser hydrates a [User] from a row selected with schema.UserAccount.SelectList().
func ScanUser(row pgx.Row) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.IsActive,
		&user.Bio,
		&user.Avatar,
		&user.PublicProfile,
		&user.Social,
		&user.Studies,
		&user.LastLogin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}
