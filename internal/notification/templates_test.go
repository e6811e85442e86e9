package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderConfirmationHTMLEscapesInput(t *testing.T) {
	out := OrderConfirmationHTML("Folio Studio", "<script>alert(1)</script>", "Web App", 500, "pay_abc")

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "₹500")
	assert.Contains(t, out, "pay_abc")
}

func TestContactNotificationHTMLEscapesMessage(t *testing.T) {
	out := ContactNotificationHTML("Ravi", "ravi@example.com", "<img src=x onerror=alert(1)>")

	assert.NotContains(t, out, "<img")
	assert.Contains(t, out, "ravi@example.com")
}

func TestOrderConfirmationText(t *testing.T) {
	out := OrderConfirmationText("Asha", "Landing Page", "pay_abc")

	assert.Equal(t, "Hi Asha, your order for Landing Page has been confirmed! Payment ID: pay_abc", out)
}

func TestAdminOrderAlertText(t *testing.T) {
	assert.Equal(t, "New Order: Landing Page by Asha", AdminOrderAlertText("Landing Page", "Asha"))
}

func TestContactAcknowledgmentTextMentionsBrand(t *testing.T) {
	out := ContactAcknowledgmentText("Folio Studio", "Ravi")

	assert.Contains(t, out, "Hi Ravi")
	assert.Contains(t, out, "Folio Studio")
}
