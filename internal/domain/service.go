package domain

import "context"

// TransactionManager runs a function within a storage transaction. The
// transaction is carried in the context; repositories pick it up via their
// executor helper. An error from fn rolls the whole unit of work back.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
