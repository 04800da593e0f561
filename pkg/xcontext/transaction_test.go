package xcontext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type txRecord struct {
	ID string `gorm:"primarykey"`
}

func newTxContext(t *testing.T) context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&txRecord{}))

	return WithDB(context.Background(), db)
}

func TestTransactionCommit(t *testing.T) {
	ctx := newTxContext(t)

	ctx = WithDBTransaction(ctx)
	defer WithRollbackDBTransaction(ctx)

	require.NoError(t, DB(ctx).Create(&txRecord{ID: "a"}).Error)
	WithCommitDBTransaction(ctx)

	// After commit, DB resolves to the root handle again, so reads on the
	// same context keep working.
	var out txRecord
	require.NoError(t, DB(ctx).Take(&out, "id=?", "a").Error)
	require.Equal(t, "a", out.ID)

	// The deferred rollback must not undo the committed write.
	WithRollbackDBTransaction(ctx)
	require.NoError(t, DB(ctx).Take(&out, "id=?", "a").Error)
}

func TestTransactionRollback(t *testing.T) {
	ctx := newTxContext(t)

	txCtx := WithDBTransaction(ctx)
	require.NoError(t, DB(txCtx).Create(&txRecord{ID: "a"}).Error)
	WithRollbackDBTransaction(txCtx)

	var out txRecord
	err := DB(txCtx).Take(&out, "id=?", "a").Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
