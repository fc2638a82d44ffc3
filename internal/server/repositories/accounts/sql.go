package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/campusgate/internal/common"
	"github.com/dmitrijs2005/campusgate/internal/dbx"
	"github.com/dmitrijs2005/campusgate/internal/server/models"
)

const (
	existsQuery = `SELECT EXISTS(SELECT 1 FROM accounts WHERE email = ?)`
	insertQuery = `INSERT INTO accounts (email, password_hash, role, created_at)
		VALUES (?, ?, ?, ?)`
	findQuery = `SELECT email, password_hash, role, created_at FROM accounts
		WHERE email = ?`
)

// SQLRepository stores accounts in the `accounts` table. The email primary
// key is what serializes concurrent signups.
type SQLRepository struct {
	db      dbx.DBTX
	dialect Dialect

	existsQuery string
	insertQuery string
	findQuery   string
}

func NewSQLRepository(db dbx.DBTX, d Dialect) *SQLRepository {
	return &SQLRepository{
		db:          db,
		dialect:     d,
		existsQuery: d.bind(existsQuery),
		insertQuery: d.bind(insertQuery),
		findQuery:   d.bind(findQuery),
	}
}

func (r *SQLRepository) Exists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, r.existsQuery, models.NormalizeEmail(email)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *SQLRepository) Insert(ctx context.Context, a *models.Account) error {
	if !a.Role.Valid() {
		return fmt.Errorf("insert account: invalid role %q", a.Role)
	}
	a.Email = models.NormalizeEmail(a.Email)
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, r.insertQuery, a.Email, a.PasswordHash, string(a.Role), a.CreatedAt)
	if err != nil {
		if r.dialect.isUniqueViolation(err) {
			return common.ErrDuplicateEmail
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	a := &models.Account{}
	var role string

	err := r.db.QueryRowContext(ctx, r.findQuery, models.NormalizeEmail(email)).
		Scan(&a.Email, &a.PasswordHash, &role, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	a.Role = models.Role(role)
	a.CreatedAt = a.CreatedAt.UTC()
	return a, nil
}
