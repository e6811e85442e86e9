package order

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/foliohq/folio/internal/database"
	"github.com/foliohq/folio/internal/entity"
)

var repoTracer = otel.Tracer("github.com/foliohq/folio/repository/order")

// ErrNotFound is returned when no order matches the given key.
var ErrNotFound = errors.New("order not found")

// Repository encapsulates read/write access for orders.
type Repository struct {
	writer *bun.DB
	reader *bun.DB
}

// NewRepository wires a repository backed by configured database connections.
func NewRepository(conns *database.Connections) *Repository {
	return &Repository{
		writer: conns.Writer,
		reader: conns.Reader,
	}
}

// Create persists a new order using the write connection.
func (r *Repository) Create(ctx context.Context, order *entity.Order) error {
	if order == nil {
		return errors.New("nil order")
	}
	ctx, span := repoTracer.Start(ctx, "OrderRepository.Create", trace.WithAttributes(attribute.String("order.gateway_id", order.GatewayOrderID)))
	defer span.End()

	_, err := r.writer.NewInsert().Model(order).Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
	}
	return err
}

// Complete transitions the matching order to completed and records the
// gateway payment id in a single conditional update. Replaying the same
// transition is a no-op in effect.
func (r *Repository) Complete(ctx context.Context, gatewayOrderID, gatewayPaymentID string) (*entity.Order, error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.Complete", trace.WithAttributes(attribute.String("order.gateway_id", gatewayOrderID)))
	defer span.End()

	order := new(entity.Order)
	_, err := r.writer.NewUpdate().
		Model(order).
		Set("status = ?", entity.OrderStatusCompleted).
		Set("gateway_payment_id = ?", gatewayPaymentID).
		Set("updated_at = ?", time.Now().UTC()).
		Where("gateway_order_id = ?", gatewayOrderID).
		Returning("*").
		Exec(ctx, order)
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return nil, err
	}
	return order, nil
}
