package repository

import (
	"context"

	"github.com/f1tipp/F1Tipp_Go/internal/logger"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// SafeRollback rolls back a transaction and logs any error
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		// Rolling back an already committed tx is expected on the happy path
		if err.Error() != "tx is closed" {
			logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
		}
	}
}
