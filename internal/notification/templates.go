package notification

import (
	"fmt"
	"html"
)

// OrderConfirmationHTML renders the customer-facing order confirmation email.
func OrderConfirmationHTML(brand, customerName, serviceName string, amount int64, paymentID string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #eee; border-radius: 10px; }
        .header { background: #FF4D2D; color: white; padding: 20px; text-align: center; border-radius: 10px 10px 0 0; }
        .content { padding: 20px; }
        .footer { text-align: center; font-size: 12px; color: #888; margin-top: 20px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Order Confirmed!</h1>
        </div>
        <div class="content">
            <p>Hi <strong>%s</strong>,</p>
            <p>Thank you for choosing my services. Your payment for <strong>%s</strong> has been successfully processed.</p>
            <div style="background: #f9f9f9; padding: 15px; border-radius: 5px; margin: 20px 0;">
                <p><strong>Service:</strong> %s</p>
                <p><strong>Amount:</strong> ₹%d</p>
                <p><strong>Payment ID:</strong> %s</p>
            </div>
            <p>I will start working on your request immediately and will get in touch with you shortly.</p>
            <p>If you have any questions, feel free to reply to this email.</p>
            <p>Best Regards,<br><strong>%s</strong></p>
        </div>
        <div class="footer">
            <p>&copy; %s. All rights reserved.</p>
        </div>
    </div>
</body>
</html>`,
		html.EscapeString(customerName),
		html.EscapeString(serviceName),
		html.EscapeString(serviceName),
		amount,
		html.EscapeString(paymentID),
		html.EscapeString(brand),
		html.EscapeString(brand),
	)
}

// ContactNotificationHTML renders the admin-facing contact form alert.
func ContactNotificationHTML(name, email, message string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: sans-serif; color: #333; }
        .container { max-width: 600px; margin: 0 auto; border: 1px solid #ddd; padding: 20px; }
        .header { background: #333; color: #fff; padding: 10px; text-align: center; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h2>New Contact Message</h2></div>
        <p><strong>Name:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Message:</strong></p>
        <div style="background: #f4f4f4; padding: 10px;">%s</div>
    </div>
</body>
</html>`,
		html.EscapeString(name),
		html.EscapeString(email),
		html.EscapeString(message),
	)
}

// ContactAcknowledgmentText renders the plain-text reply sent to the
// submitter of a contact message.
func ContactAcknowledgmentText(brand, name string) string {
	return fmt.Sprintf("Hi %s,\n\nThank you for reaching out! I have received your message and will get back to you soon.\n\nBest regards,\n%s", name, brand)
}

// OrderConfirmationText renders the short confirmation used for email text
// bodies and WhatsApp messages.
func OrderConfirmationText(customerName, serviceName, paymentID string) string {
	return fmt.Sprintf("Hi %s, your order for %s has been confirmed! Payment ID: %s", customerName, serviceName, paymentID)
}

// AdminOrderAlertText renders the internal new-order alert.
func AdminOrderAlertText(serviceName, customerName string) string {
	return fmt.Sprintf("New Order: %s by %s", serviceName, customerName)
}
