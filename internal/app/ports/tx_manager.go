package ports

import "context"

// TxManager scopes repository calls to one transaction; run archival uses it
// so the summary row and its log rows land together or not at all.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
