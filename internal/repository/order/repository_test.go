package order

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/foliohq/folio/internal/database"
	"github.com/foliohq/folio/internal/entity"
)

func newTestRepository(t *testing.T) (*Repository, *bun.DB) {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.NewCreateTable().Model((*entity.Order)(nil)).Exec(context.Background())
	require.NoError(t, err)

	return NewRepository(&database.Connections{Writer: db, Reader: db}), db
}

func seedPendingOrder(t *testing.T, repo *Repository) *entity.Order {
	t.Helper()

	now := time.Now().UTC()
	order := &entity.Order{
		ServiceName:    "Landing Page",
		CustomerName:   "Asha",
		CustomerEmail:  "asha@example.com",
		CustomerPhone:  "+915550002222",
		Amount:         500,
		GatewayOrderID: "order_test123",
		Status:         entity.OrderStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, repo.Create(context.Background(), order))
	return order
}

func TestCompleteTransitionsPendingOrder(t *testing.T) {
	repo, _ := newTestRepository(t)
	seedPendingOrder(t, repo)

	order, err := repo.Complete(context.Background(), "order_test123", "pay_abc")
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusCompleted, order.Status)
	require.True(t, order.GatewayPaymentID.Valid)
	assert.Equal(t, "pay_abc", order.GatewayPaymentID.String)
}

func TestCompleteReplayLeavesRowUnchanged(t *testing.T) {
	repo, db := newTestRepository(t)
	seedPendingOrder(t, repo)

	first, err := repo.Complete(context.Background(), "order_test123", "pay_abc")
	require.NoError(t, err)

	second, err := repo.Complete(context.Background(), "order_test123", "pay_abc")
	require.NoError(t, err)

	// Re-applying the terminal state is a no-op in effect.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, entity.OrderStatusCompleted, second.Status)
	assert.Equal(t, "pay_abc", second.GatewayPaymentID.String)

	count, err := db.NewSelect().Model((*entity.Order)(nil)).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	stored := new(entity.Order)
	require.NoError(t, db.NewSelect().Model(stored).Where("gateway_order_id = ?", "order_test123").Scan(context.Background()))
	assert.Equal(t, entity.OrderStatusCompleted, stored.Status)
	assert.Equal(t, "pay_abc", stored.GatewayPaymentID.String)
	assert.Equal(t, int64(500), stored.Amount)
}

func TestCompleteUnknownOrder(t *testing.T) {
	repo, _ := newTestRepository(t)
	seedPendingOrder(t, repo)

	_, err := repo.Complete(context.Background(), "order_other", "pay_abc")

	assert.ErrorIs(t, err, ErrNotFound)
}
