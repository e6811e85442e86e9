package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/foliohq/folio/internal/config"
	"github.com/foliohq/folio/internal/entity"
	"github.com/foliohq/folio/internal/messaging"
	"github.com/foliohq/folio/internal/notification"
	"github.com/foliohq/folio/internal/payment"
	repo "github.com/foliohq/folio/internal/repository/order"
	"github.com/foliohq/folio/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/foliohq/folio/service/order")

// orderRepository is the persistence surface the service needs.
type orderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	Complete(ctx context.Context, gatewayOrderID, gatewayPaymentID string) (*entity.Order, error)
}

// Service orchestrates the buy-now flow: gateway order creation, signature
// verification, status transition, and notification fan-out.
type Service struct {
	repo      orderRepository
	gateway   payment.Gateway
	mailer    notification.Mailer
	texter    notification.Texter
	publisher messaging.Client
	logger    *zap.Logger
	payment   config.Payment
	mail      config.Mail
	sms       config.SMS
	messaging messagingConfig
	now       func() time.Time
}

// messagingConfig contains messaging specific knobs we care about.
type messagingConfig struct {
	enabled bool
	topic   string
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository *repo.Repository
	Gateway    payment.Gateway
	Mailer     notification.Mailer
	Texter     notification.Texter
	Publisher  messaging.Client
	Config     config.Config
	Logger     *zap.Logger
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return newService(p.Repository, p.Gateway, p.Mailer, p.Texter, p.Publisher, p.Config, p.Logger)
}

func newService(
	repository orderRepository,
	gateway payment.Gateway,
	mailer notification.Mailer,
	texter notification.Texter,
	publisher messaging.Client,
	cfg config.Config,
	logger *zap.Logger,
) *Service {
	return &Service{
		repo:      repository,
		gateway:   gateway,
		mailer:    mailer,
		texter:    texter,
		publisher: publisher,
		logger:    logger,
		payment:   cfg.Payment,
		mail:      cfg.Mail,
		sms:       cfg.SMS,
		messaging: messagingConfig{
			enabled: cfg.Messaging.Enabled,
			topic:   cfg.Messaging.Kafka.Topic,
		},
		now: time.Now,
	}
}

// CreateInput carries the checkout initiation fields. Amount is in major
// currency units.
type CreateInput struct {
	ServiceName   string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Amount        int64
}

// CreateResult bundles the provider order, the publishable key the client
// needs to open hosted checkout, and the persisted local order.
type CreateResult struct {
	GatewayOrder *payment.GatewayOrder
	KeyID        string
	Order        *entity.Order
}

// Create requests a gateway order for the amount converted to minor units and
// persists a local pending order echoing the gateway's identifier. A local
// persistence failure after the remote order succeeded is logged but does not
// fail the call; the remote order is orphaned.
func (s *Service) Create(ctx context.Context, in CreateInput) (*CreateResult, error) {
	if in.ServiceName == "" || in.CustomerName == "" || in.CustomerEmail == "" || in.CustomerPhone == "" {
		return nil, errorbank.BadRequest("all customer and service fields are required")
	}
	if in.Amount <= 0 {
		return nil, errorbank.BadRequest("amount must be a positive number")
	}
	if !s.gateway.Enabled() {
		return nil, errorbank.Unavailable("payment gateway credentials missing")
	}

	ctx, span := serviceTracer.Start(ctx, "OrderService.Create", trace.WithAttributes(
		attribute.String("order.service_name", in.ServiceName),
		attribute.Int64("order.amount", in.Amount),
	))
	defer span.End()

	receipt := fmt.Sprintf("receipt_%d", s.now().UnixMilli())
	gatewayOrder, err := s.gateway.CreateOrder(ctx, payment.OrderRequest{
		Amount:   in.Amount * 100,
		Currency: s.payment.Currency,
		Receipt:  receipt,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "gateway error")
		var appErr *errorbank.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, errorbank.Internal("failed to create payment order",
			errorbank.WithCause(err),
			errorbank.WithDetail("provider_error", err.Error()),
		)
	}

	now := s.now().UTC()
	order := &entity.Order{
		ServiceName:    in.ServiceName,
		CustomerName:   in.CustomerName,
		CustomerEmail:  in.CustomerEmail,
		CustomerPhone:  in.CustomerPhone,
		Amount:         in.Amount,
		GatewayOrderID: gatewayOrder.ID,
		Status:         entity.OrderStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		// The gateway order already exists; surfacing an error here would
		// strand a paying customer, so the remote order is left orphaned.
		span.RecordError(err)
		s.logger.Error("local order persistence failed after gateway order creation",
			zap.String("gateway_order_id", gatewayOrder.ID),
			zap.Error(err),
		)
	}

	s.publishEvent(ctx, OrderEvent{
		Type:           EventOrderCreated,
		GatewayOrderID: gatewayOrder.ID,
		ServiceName:    in.ServiceName,
		CustomerName:   in.CustomerName,
		Amount:         in.Amount,
		Status:         entity.OrderStatusPending,
		OccurredAt:     now,
	})

	return &CreateResult{
		GatewayOrder: gatewayOrder,
		KeyID:        s.gateway.KeyID(),
		Order:        order,
	}, nil
}

// Verify recomputes the callback signature and, on a match, transitions the
// matching order to completed and fans out notifications. A valid signature
// for an unknown gateway order id succeeds without touching any record.
func (s *Service) Verify(ctx context.Context, gatewayOrderID, gatewayPaymentID, signature string) (*entity.Order, error) {
	if gatewayOrderID == "" || gatewayPaymentID == "" || signature == "" {
		return nil, errorbank.BadRequest("order id, payment id and signature are required")
	}
	if !s.gateway.Enabled() {
		return nil, errorbank.Unavailable("payment gateway credentials missing")
	}

	ctx, span := serviceTracer.Start(ctx, "OrderService.Verify", trace.WithAttributes(
		attribute.String("order.gateway_id", gatewayOrderID),
	))
	defer span.End()

	if !s.gateway.VerifySignature(gatewayOrderID, gatewayPaymentID, signature) {
		span.SetStatus(codes.Error, "signature mismatch")
		return nil, errorbank.BadRequest("payment verification failed")
	}

	order, err := s.repo.Complete(ctx, gatewayOrderID, gatewayPaymentID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			s.logger.Warn("verified payment for unknown order",
				zap.String("gateway_order_id", gatewayOrderID),
			)
			return nil, nil
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to update order", errorbank.WithCause(err))
	}

	s.notifyOrderCompleted(ctx, order)

	s.publishEvent(ctx, OrderEvent{
		Type:             EventOrderCompleted,
		GatewayOrderID:   order.GatewayOrderID,
		GatewayPaymentID: gatewayPaymentID,
		ServiceName:      order.ServiceName,
		CustomerName:     order.CustomerName,
		Amount:           order.Amount,
		Status:           order.Status,
		OccurredAt:       s.now().UTC(),
	})

	return order, nil
}

// notifyOrderCompleted fans the confirmation out to each channel. Channels
// are independent: one failing delivery never suppresses the others, and no
// failure reaches the caller.
func (s *Service) notifyOrderCompleted(ctx context.Context, order *entity.Order) {
	paymentID := order.GatewayPaymentID.String
	text := notification.OrderConfirmationText(order.CustomerName, order.ServiceName, paymentID)

	subject := "Order Confirmed - " + s.mail.BrandName
	html := notification.OrderConfirmationHTML(s.mail.BrandName, order.CustomerName, order.ServiceName, order.Amount, paymentID)
	if err := s.mailer.Send(ctx, order.CustomerEmail, subject, text, html); err != nil {
		s.logger.Error("order confirmation email failed",
			zap.String("gateway_order_id", order.GatewayOrderID),
			zap.Error(err),
		)
	}

	if err := s.texter.Send(ctx, order.CustomerPhone, text); err != nil {
		s.logger.Error("order confirmation text failed",
			zap.String("gateway_order_id", order.GatewayOrderID),
			zap.Error(err),
		)
	}

	if s.sms.AdminPhone != "" {
		alert := notification.AdminOrderAlertText(order.ServiceName, order.CustomerName)
		if err := s.texter.Send(ctx, s.sms.AdminPhone, alert); err != nil {
			s.logger.Error("admin order alert failed",
				zap.String("gateway_order_id", order.GatewayOrderID),
				zap.Error(err),
			)
		}
	}
}

func (s *Service) publishEvent(ctx context.Context, event OrderEvent) {
	if !s.messaging.enabled || s.publisher == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal order event", zap.String("type", event.Type), zap.Error(err))
		return
	}
	key := []byte("order-" + event.GatewayOrderID)
	if err := s.publisher.Publish(ctx, key, payload); err != nil {
		s.logger.Error("publish order event", zap.String("type", event.Type), zap.Error(err))
	}
}

// Order event types carried on the messaging topic.
const (
	EventOrderCreated   = "order.created"
	EventOrderCompleted = "order.completed"
)

// OrderEvent is the wire form of order lifecycle events.
type OrderEvent struct {
	Type             string    `json:"type"`
	GatewayOrderID   string    `json:"gateway_order_id"`
	GatewayPaymentID string    `json:"gateway_payment_id,omitempty"`
	ServiceName      string    `json:"service_name"`
	CustomerName     string    `json:"customer_name"`
	Amount           int64     `json:"amount"`
	Status           string    `json:"status"`
	OccurredAt       time.Time `json:"occurred_at"`
}

