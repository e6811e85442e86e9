package order

import (
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/foliohq/folio/internal/dto"
	"github.com/foliohq/folio/internal/entity"
	"github.com/foliohq/folio/internal/presentation/http/response"
	service "github.com/foliohq/folio/internal/service/order"
	"github.com/foliohq/folio/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/foliohq/folio/transport/http/order")

// Handler exposes the checkout endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs an order Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/api/orders")
	g.POST("", h.create)
	g.POST("/verify", h.verify)
}

func (h *Handler) create(c echo.Context) error {
	b := response.New(c)

	var payload dto.CreateOrderRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.create", trace.WithAttributes(
		attribute.String("order.service_name", payload.ServiceName),
	))
	defer span.End()

	result, err := h.svc.Create(ctx, service.CreateInput{
		ServiceName:   payload.ServiceName,
		CustomerName:  payload.CustomerName,
		CustomerEmail: payload.CustomerEmail,
		CustomerPhone: payload.CustomerPhone,
		Amount:        payload.Amount,
	})
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithData(dto.CreateOrderResponse{
		Order: dto.GatewayOrderResponse{
			ID:       result.GatewayOrder.ID,
			Amount:   result.GatewayOrder.Amount,
			Currency: result.GatewayOrder.Currency,
			Receipt:  result.GatewayOrder.Receipt,
			Status:   result.GatewayOrder.Status,
		},
		KeyID: result.KeyID,
	}).Build()
}

func (h *Handler) verify(c echo.Context) error {
	b := response.New(c)

	var payload dto.VerifyPaymentRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.verify", trace.WithAttributes(
		attribute.String("order.gateway_id", payload.RazorpayOrderID),
	))
	defer span.End()

	order, err := h.svc.Verify(ctx, payload.RazorpayOrderID, payload.RazorpayPaymentID, payload.RazorpaySignature)
	if err != nil {
		return b.WithError(err).Build()
	}

	result := dto.VerifyPaymentResponse{Verified: true}
	if order != nil {
		result.Order = toDTO(order)
	}
	return b.WithData(result).Build()
}

func toDTO(order *entity.Order) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:             order.ID,
		ServiceName:    order.ServiceName,
		CustomerName:   order.CustomerName,
		CustomerEmail:  order.CustomerEmail,
		CustomerPhone:  order.CustomerPhone,
		Amount:         order.Amount,
		GatewayOrderID: order.GatewayOrderID,
		Status:         order.Status,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
	}
	if order.GatewayPaymentID.Valid {
		resp.GatewayPaymentID = order.GatewayPaymentID.String
	}
	return resp
}
