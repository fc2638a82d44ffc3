package accounts

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/campusgate/internal/common"
	"github.com/dmitrijs2005/campusgate/internal/server/models"
)

// MemoryRepository keeps accounts in a map. It backs the "memory" database
// driver and the service tests.
type MemoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]models.Account
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{accounts: make(map[string]models.Account)}
}

func (r *MemoryRepository) Exists(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.accounts[models.NormalizeEmail(email)]
	return ok, nil
}

func (r *MemoryRepository) Insert(ctx context.Context, a *models.Account) error {
	if !a.Role.Valid() {
		return fmt.Errorf("insert account: invalid role %q", a.Role)
	}
	a.Email = models.NormalizeEmail(a.Email)
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[a.Email]; ok {
		return common.ErrDuplicateEmail
	}
	r.accounts[a.Email] = *a
	return nil
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[models.NormalizeEmail(email)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &a, nil
}

// Len reports the number of stored accounts.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}
