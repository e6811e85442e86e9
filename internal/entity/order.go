package entity

import (
	"database/sql"
	"time"

	"github.com/uptrace/bun"
)

// Order statuses. An order is pending until signature verification settles it.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusFailed    = "failed"
)

// Order represents one purchase attempt against the payment gateway.
type Order struct {
	bun.BaseModel `bun:"table:orders"`

	ID               int64          `bun:",pk,autoincrement" json:"id"`
	ServiceName      string         `bun:"service_name" json:"service_name"`
	CustomerName     string         `bun:"customer_name" json:"customer_name"`
	CustomerEmail    string         `bun:"customer_email" json:"customer_email"`
	CustomerPhone    string         `bun:"customer_phone" json:"customer_phone"`
	Amount           int64          `bun:"amount" json:"amount"`
	GatewayOrderID   string         `bun:"gateway_order_id,unique" json:"gateway_order_id"`
	GatewayPaymentID sql.NullString `bun:"gateway_payment_id" json:"gateway_payment_id"`
	Status           string         `bun:"status" json:"status"`
	CreatedAt        time.Time      `bun:"created_at,nullzero,notnull,default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time      `bun:"updated_at,nullzero" json:"updated_at"`
}
