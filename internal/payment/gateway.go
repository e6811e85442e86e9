package payment

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/foliohq/folio/internal/config"
	"github.com/foliohq/folio/pkg/errorbank"
)

// GatewayOrder is the provider-side order required before hosted checkout.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// OrderRequest describes a gateway order to create. Amount is in minor units.
type OrderRequest struct {
	Amount   int64
	Currency string
	Receipt  string
}

// Gateway abstracts the payment provider's order API.
type Gateway interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*GatewayOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
	KeyID() string
	Enabled() bool
}

// Module provides the gateway to the Fx graph.
var Module = fx.Provide(NewGateway)

// NewGateway selects the razorpay-backed gateway, or a disabled stand-in when
// credentials are absent.
func NewGateway(cfg config.Config, logger *zap.Logger) Gateway {
	if !cfg.Payment.Enabled() {
		if logger != nil {
			logger.Warn("payment gateway credentials missing; payment features disabled")
		}
		return disabledGateway{}
	}
	return newRazorpayGateway(cfg.Payment)
}

// disabledGateway rejects everything with a configuration error.
type disabledGateway struct{}

func (disabledGateway) CreateOrder(context.Context, OrderRequest) (*GatewayOrder, error) {
	return nil, errorbank.Unavailable("payment gateway is not configured")
}

func (disabledGateway) VerifySignature(string, string, string) bool { return false }
func (disabledGateway) KeyID() string                              { return "" }
func (disabledGateway) Enabled() bool                              { return false }
