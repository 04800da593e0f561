package xcontext

import (
	"context"

	"gorm.io/gorm"
)

type txHolder struct {
	tx *gorm.DB
}

// WithDBTransaction begins a transaction and stores it in the returned
// context. Until WithCommitDBTransaction or WithRollbackDBTransaction is
// called, DB() resolves to the transaction; afterwards it falls back to the
// root handle again.
func WithDBTransaction(ctx context.Context) context.Context {
	return context.WithValue(ctx, txKey{}, &txHolder{tx: DB(ctx).Begin()})
}

func WithCommitDBTransaction(ctx context.Context) {
	holder, ok := ctx.Value(txKey{}).(*txHolder)
	if !ok || holder.tx == nil {
		return
	}

	holder.tx.Commit()
	holder.tx = nil
}

// WithRollbackDBTransaction is a no-op if the transaction was already
// committed, so it is safe to defer right after WithDBTransaction.
func WithRollbackDBTransaction(ctx context.Context) {
	holder, ok := ctx.Value(txKey{}).(*txHolder)
	if !ok || holder.tx == nil {
		return
	}

	holder.tx.Rollback()
	holder.tx = nil
}
