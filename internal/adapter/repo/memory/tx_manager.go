package memory

import "context"

// TxManager is a formality here: the store's own lock already keeps each
// repo call atomic, so a "transaction" is just the function itself.
type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
