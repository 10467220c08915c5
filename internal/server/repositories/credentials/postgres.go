// Package credentials implements the account-credential store over
// PostgreSQL.
package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/dbx"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByUsername(ctx context.Context, username string) (*models.Credential, error) {
	query :=
		`SELECT user_id, email, username, password_hash, role, COALESCE(created_by, 0), created_at
		 FROM account_credentials
		 WHERE username = $1
		 `

	cred := &models.Credential{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&cred.UserID, &cred.Email, &cred.Username, &cred.PasswordHash, &cred.Role, &cred.CreatedBy, &cred.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return cred, nil
}

func (r *PostgresRepository) Create(ctx context.Context, cred *models.Credential) (*models.Credential, error) {
	query :=
		`INSERT INTO account_credentials (email, username, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING user_id
		 `

	err := r.db.QueryRowContext(ctx, query,
		cred.Email, cred.Username, cred.PasswordHash, cred.Role).Scan(&cred.UserID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return cred, nil
}

func (r *PostgresRepository) SetCreatedBy(ctx context.Context, userID, createdBy int64) error {
	query :=
		`UPDATE account_credentials SET created_by = $2
		 WHERE user_id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, userID, createdBy); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
