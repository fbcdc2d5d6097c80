package repositories

import "context"

// TxRunner runs fn inside a single database transaction. The transaction is
// committed when fn returns nil and rolled back otherwise. U is the set of
// operations available to fn while the transaction is open.
type TxRunner[U any] interface {
	WithinTx(ctx context.Context, fn func(uow U) error) error
}
