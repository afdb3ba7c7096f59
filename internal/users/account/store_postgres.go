// Copyright (c) 2026 Code2Lead. All rights reserved.

package account

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/database/schema"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/postgres"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/users/auth"
)

// # Repository Implementation

// PostgresProfileRepository implements [ProfileRepository] on the users.account table.
type PostgresProfileRepository struct {
	db postgres.Querier
}

// NewProfileRepository constructs a new [PostgresProfileRepository].
func NewProfileRepository(db postgres.Querier) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

// FindByID retrieves an account by primary key.
func (repository *PostgresProfileRepository) FindByID(context context.Context, id string) (*auth.User, error) {
	return repository.findOne(context, schema.UserAccount.ID, id, "postgres_profile_repo_find_by_id_failed")
}

// FindByUsername retrieves an account by its unique username.
func (repository *PostgresProfileRepository) FindByUsername(context context.Context, username string) (*auth.User, error) {
	return repository.findOne(context, schema.UserAccount.Username, username, "postgres_profile_repo_find_by_username_failed")
}

func (repository *PostgresProfileRepository) findOne(context context.Context, column, value, action string) (*auth.User, error) {
	table := schema.UserAccount
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, table.SelectList(), table.Table, column)

	user, err := auth.ScanUser(repository.db.QueryRow(context, query, value))
	if err != nil {
		return nil, auth.WrapUserError(err, action)
	}
	return user, nil
}

/*
UpdateProfile applies the allow-listed profile fields in one statement.

Description: Every field is bound as a nullable parameter and merged with
COALESCE, so absent fields keep their stored value. The JSON columns are
marshalled here and cast to jsonb by the statement.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - changes: ProfileChanges

Returns:
  - *auth.User: The updated row
  - error: auth.ErrUserNotFound or database errors
*/
func (repository *PostgresProfileRepository) UpdateProfile(context context.Context, id string, changes ProfileChanges) (*auth.User, error) {
	table := schema.UserAccount
	query := fmt.Sprintf(`
		UPDATE %[1]s SET
			%[2]s = COALESCE($2::text, %[2]s),
			%[3]s = COALESCE($3::text, %[3]s),
			%[4]s = COALESCE($4::text, %[4]s),
			%[5]s = COALESCE($5::boolean, %[5]s),
			%[6]s = COALESCE($6::jsonb, %[6]s),
			%[7]s = COALESCE($7::jsonb, %[7]s),
			%[8]s = $8
		WHERE %[9]s = $1
		RETURNING %[10]s`,
		table.Table,
		table.Name, table.Bio, table.Avatar, table.PublicProfile,
		table.Social, table.Studies, table.UpdatedAt,
		table.ID,
		table.SelectList(),
	)

	social, err := jsonParam(changes.Social, changes.Social != nil)
	if err != nil {
		return nil, fmt.Errorf("postgres_profile_repo_encode_social_failed: %w", err)
	}

	studies, err := jsonParam(changes.Studies, changes.Studies != nil)
	if err != nil {
		return nil, fmt.Errorf("postgres_profile_repo_encode_studies_failed: %w", err)
	}

	row := repository.db.QueryRow(context, query,
		id,
		changes.Name,
		changes.Bio,
		changes.Avatar,
		changes.PublicProfile,
		social,
		studies,
		time.Now().UTC(),
	)

	user, err := auth.ScanUser(row)
	if err != nil {
		return nil, auth.WrapUserError(err, "postgres_profile_repo_update_failed")
	}
	return user, nil
}

// jsonParam marshals value into a nullable jsonb parameter.
func jsonParam(value any, present bool) (*string, error) {
	if !present {
		return nil, nil
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	text := string(encoded)
	return &text, nil
}
