package gormrepo

import (
	"context"

	"gorm.io/gorm"
)

// TxManager runs a function inside one postgres transaction, carried through
// the context so the run and event repos pick it up.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return TxManager{db: db}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	})
}
