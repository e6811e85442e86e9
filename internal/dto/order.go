package dto

import "time"

// CreateOrderRequest is the checkout initiation payload.
type CreateOrderRequest struct {
	ServiceName   string `json:"serviceName"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	Amount        int64  `json:"amount"`
}

// VerifyPaymentRequest carries the gateway callback values. Field names match
// the gateway's checkout handoff.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// GatewayOrderResponse echoes the provider order needed to open checkout.
type GatewayOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// CreateOrderResponse returns the provider order plus the publishable key id.
type CreateOrderResponse struct {
	Order GatewayOrderResponse `json:"order"`
	KeyID string               `json:"key_id"`
}

// OrderResponse represents a local order as exposed via transport layers.
type OrderResponse struct {
	ID               int64     `json:"id"`
	ServiceName      string    `json:"service_name"`
	CustomerName     string    `json:"customer_name"`
	CustomerEmail    string    `json:"customer_email"`
	CustomerPhone    string    `json:"customer_phone"`
	Amount           int64     `json:"amount"`
	GatewayOrderID   string    `json:"order_id"`
	GatewayPaymentID string    `json:"payment_id,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// VerifyPaymentResponse reports the verification outcome.
type VerifyPaymentResponse struct {
	Verified bool           `json:"verified"`
	Order    *OrderResponse `json:"order,omitempty"`
}
