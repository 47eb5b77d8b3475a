package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusFailed     = "failed"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRefunded   = "refunded"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

const (
	DeliveryStatusPending   = "pending"
	DeliveryStatusCompleted = "completed"
)

// Order is the challenge order row owned by the platform. This service only
// mutates the payment/provider fields and the status enums; it never creates
// or deletes an order.
type Order struct {
	OrderID           string          `json:"order_id"`
	UserID            string          `json:"user_id"`
	AccountType       string          `json:"account_type"`
	AccountSize       string          `json:"account_size"`
	PlatformType      string          `json:"platform_type"`
	Amount            decimal.Decimal `json:"amount"`
	FinalAmount       decimal.Decimal `json:"final_amount"`
	OrderStatus       string          `json:"order_status"`
	PaymentStatus     string          `json:"payment_status"`
	DeliveryStatus    string          `json:"delivery_status"`
	PaymentProviderID string          `json:"payment_provider_id"`
	CryptoCurrency    string          `json:"crypto_currency"`
	CryptoAmount      decimal.Decimal `json:"crypto_amount"`
	CryptoAddress     string          `json:"crypto_address"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// Payable reports whether an invoice may still be minted for the order.
// An order that is already processing, paid or delivered must not be
// invoiced a second time.
func (o Order) Payable() bool {
	return o.PaymentStatus == PaymentStatusPending &&
		o.OrderStatus == OrderStatusPending &&
		o.DeliveryStatus == DeliveryStatusPending
}

// ExpectedAmount is what the webhook amount check reconciles against: the
// processor's crypto quote when one was stored at invoice time, the fiat
// total otherwise.
func (o Order) ExpectedAmount() decimal.Decimal {
	if !o.CryptoAmount.IsZero() {
		return o.CryptoAmount
	}
	return o.FinalAmount
}

// PaymentFields holds the provider identifiers persisted onto the order
// once an invoice has been created. ProviderID is set once and never
// reassigned.
type PaymentFields struct {
	ProviderID  string
	PayCurrency string
	PayAmount   decimal.Decimal
	PayAddress  string
}
