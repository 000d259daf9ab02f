// File: internal/domain/repository/tx_manager.go
package repository

import "context"

// TxManager runs a function inside a database transaction. Repositories
// called with the context passed to fn operate on the same transaction.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
