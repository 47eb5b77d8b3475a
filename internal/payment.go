package internal

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wa4lo7k/FlashFundXxx-sub000/internal/model"
)

// ProviderID is a processor-side identifier. The processor serializes these
// as a JSON string on the invoice endpoint and as a JSON number on the
// payment and webhook endpoints, so both are accepted.
type ProviderID string

func (p *ProviderID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		s = ""
	}
	*p = ProviderID(s)
	return nil
}

func (p ProviderID) String() string {
	return string(p)
}

// Payment statuses reported by the processor, via webhook or polling.
const (
	ProcessorStatusWaiting       = "waiting"
	ProcessorStatusConfirming    = "confirming"
	ProcessorStatusConfirmed     = "confirmed"
	ProcessorStatusSending       = "sending"
	ProcessorStatusPartiallyPaid = "partially_paid"
	ProcessorStatusFinished      = "finished"
	ProcessorStatusFailed        = "failed"
	ProcessorStatusRefunded      = "refunded"
	ProcessorStatusExpired       = "expired"
)

type CreatePaymentInput struct {
	OrderID        string          `json:"orderId"`
	UserID         string          `json:"userId"`
	AccountType    string          `json:"accountType"`
	AccountSize    string          `json:"accountSize"`
	PlatformType   string          `json:"platformType"`
	CryptoCurrency string          `json:"cryptoCurrency"`
	Amount         decimal.Decimal `json:"amount"`
	FinalAmount    decimal.Decimal `json:"finalAmount"`
}

func (in CreatePaymentInput) validate() error {
	var missing []string
	if in.OrderID == "" {
		missing = append(missing, "orderId")
	}
	if in.UserID == "" {
		missing = append(missing, "userId")
	}
	if in.AccountType == "" {
		missing = append(missing, "accountType")
	}
	if in.AccountSize == "" {
		missing = append(missing, "accountSize")
	}
	if in.PlatformType == "" {
		missing = append(missing, "platformType")
	}
	if in.CryptoCurrency == "" {
		missing = append(missing, "cryptoCurrency")
	}
	if in.Amount.IsZero() {
		missing = append(missing, "amount")
	}
	if in.FinalAmount.IsZero() {
		missing = append(missing, "finalAmount")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// PaymentSummary is the payment block of the create-payment response,
// shown on the checkout page alongside the hosted invoice link.
type PaymentSummary struct {
	PaymentID      string          `json:"payment_id"`
	PayAddress     string          `json:"pay_address"`
	PayAmount      decimal.Decimal `json:"pay_amount"`
	PayCurrency    string          `json:"pay_currency"`
	QRCode         string          `json:"qr_code"`
	TimeLimit      string          `json:"time_limit"`
	ExpirationDate string          `json:"expiration_date"`
}

type CreatePaymentOutput struct {
	InvoiceURL string         `json:"invoice_url"`
	Payment    PaymentSummary `json:"payment"`
}

// PaymentStatusView merges the persisted order with the processor's live
// status record for client-side polling.
type PaymentStatusView struct {
	Order   model.Order   `json:"order"`
	Payment PaymentStatus `json:"payment"`
}

// WebhookPayload is the processor's IPN callback body.
type WebhookPayload struct {
	PaymentID        ProviderID      `json:"payment_id"`
	PaymentStatus    string          `json:"payment_status"`
	PayAddress       string          `json:"pay_address"`
	PriceAmount      decimal.Decimal `json:"price_amount"`
	PriceCurrency    string          `json:"price_currency"`
	PayAmount        decimal.Decimal `json:"pay_amount"`
	ActuallyPaid     decimal.Decimal `json:"actually_paid"`
	PayCurrency      string          `json:"pay_currency"`
	OrderID          string          `json:"order_id"`
	OrderDescription string          `json:"order_description"`
	PurchaseID       ProviderID      `json:"purchase_id"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`
	OutcomeAmount    decimal.Decimal `json:"outcome_amount"`
	OutcomeCurrency  string          `json:"outcome_currency"`
}

// Received is the amount the processor says actually arrived, falling back
// to the quoted pay amount while the payment is still settling.
func (p WebhookPayload) Received() decimal.Decimal {
	if !p.ActuallyPaid.IsZero() {
		return p.ActuallyPaid
	}
	return p.PayAmount
}
