package payment

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/foliohq/folio/internal/config"
)

// razorpayGateway implements Gateway via the official Razorpay SDK.
type razorpayGateway struct {
	client *razorpay.Client
	cfg    config.Payment
}

func newRazorpayGateway(cfg config.Payment) Gateway {
	return &razorpayGateway{
		client: razorpay.NewClient(cfg.KeyID, cfg.KeySecret),
		cfg:    cfg,
	}
}

func (g *razorpayGateway) CreateOrder(ctx context.Context, req OrderRequest) (*GatewayOrder, error) {
	data := map[string]interface{}{
		"amount":   req.Amount,
		"currency": req.Currency,
		"receipt":  req.Receipt,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("create gateway order: %w", err)
	}

	return parseGatewayOrder(body)
}

func (g *razorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySignature(g.cfg.KeySecret, orderID, paymentID, signature)
}

func (g *razorpayGateway) KeyID() string { return g.cfg.KeyID }
func (g *razorpayGateway) Enabled() bool { return true }

func parseGatewayOrder(body map[string]interface{}) (*GatewayOrder, error) {
	id, ok := body["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("gateway response missing order id")
	}

	order := &GatewayOrder{ID: id}
	if amount, ok := body["amount"].(float64); ok {
		order.Amount = int64(amount)
	}
	if currency, ok := body["currency"].(string); ok {
		order.Currency = currency
	}
	if receipt, ok := body["receipt"].(string); ok {
		order.Receipt = receipt
	}
	if status, ok := body["status"].(string); ok {
		order.Status = status
	}
	return order, nil
}
