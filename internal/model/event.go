package model

import "time"

// Event tags written to the payment event log. The log is append-only and
// audit-only; nothing in this service reads it back.
const (
	EventPaymentCreated      = "payment_created"
	EventWebhookReceived     = "webhook_received"
	EventInsufficientPayment = "insufficient_payment"
	EventPartialPayment      = "partial_payment"
	EventAccountDelivered    = "account_delivered"
	EventDeliveryFailed      = "delivery_failed"
	EventPaymentFailed       = "payment_failed"
	EventPaymentRefunded     = "payment_refunded"
	EventUnknownStatus       = "unknown_status"
)

type PaymentEvent struct {
	ID        int                    `json:"id"`
	OrderID   string                 `json:"order_id"`
	EventType string                 `json:"event_type"`
	Payload   map[string]interface{} `json:"payload"`
	PaymentID string                 `json:"payment_id"`
	CreatedAt time.Time              `json:"created_at"`
}
