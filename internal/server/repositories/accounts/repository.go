// Package accounts persists provisioned accounts. Email uniqueness is
// enforced by the storage layer itself: Insert reports
// common.ErrDuplicateEmail when the key is already taken, whatever any
// earlier Exists call said.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/campusgate/internal/server/models"
)

type Repository interface {
	Exists(ctx context.Context, email string) (bool, error)
	Insert(ctx context.Context, account *models.Account) error
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
}
