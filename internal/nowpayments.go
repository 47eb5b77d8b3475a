package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Internal currency tags accepted from the dashboard, mapped to the
// processor's own pay-currency codes.
var payCurrencyCodes = map[string]string{
	"usdt_bsc":     "usdtbsc",
	"usdt_polygon": "usdtmatic",
	"usdt_trc20":   "usdttrc20",
	"bnb":          "bnbbsc",
	"btc":          "btc",
	"trx":          "trx",
}

const defaultPayCurrency = "usdtbsc"

// MapPayCurrency translates an internal currency tag to the processor's
// code. Unknown tags fall back to BEP-20 USDT instead of failing the
// request.
func MapPayCurrency(tag string) string {
	if code, ok := payCurrencyCodes[tag]; ok {
		return code
	}
	return defaultPayCurrency
}

type IProcessor interface {
	CreateHostedInvoice(context.Context, InvoiceSpec) (Invoice, error)
	GetPaymentStatus(context.Context, string) (PaymentStatus, error)
}

// InvoiceSpec is everything the processor needs to mint a hosted invoice.
type InvoiceSpec struct {
	PriceAmount    decimal.Decimal
	PriceCurrency  string
	PayCurrency    string
	OrderID        string
	Description    string
	IPNCallbackURL string
	SuccessURL     string
	CancelURL      string
}

// Invoice is the processor's answer to a create call. PayAddress may be
// empty for hosted-invoice flows; the address is only assigned once the
// payer picks a currency on the hosted page.
type Invoice struct {
	PaymentID      string
	InvoiceURL     string
	PayAddress     string
	PayAmount      decimal.Decimal
	PayCurrency    string
	TimeLimit      string
	ExpirationDate string
}

// PaymentStatus is the processor's live status record for a payment.
type PaymentStatus struct {
	PaymentID     ProviderID      `json:"payment_id"`
	PaymentStatus string          `json:"payment_status"`
	PayAddress    string          `json:"pay_address"`
	PriceAmount   decimal.Decimal `json:"price_amount"`
	PriceCurrency string          `json:"price_currency"`
	PayAmount     decimal.Decimal `json:"pay_amount"`
	ActuallyPaid  decimal.Decimal `json:"actually_paid"`
	PayCurrency   string          `json:"pay_currency"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

type NowPaymentsClient struct {
	url    string
	apiKey string
	logger *zap.SugaredLogger
}

func NewNowPaymentsClient(url, apiKey string, logger *zap.SugaredLogger) *NowPaymentsClient {
	return &NowPaymentsClient{url: url, apiKey: apiKey, logger: logger}
}

type createInvoiceRequest struct {
	PriceAmount      decimal.Decimal `json:"price_amount"`
	PriceCurrency    string          `json:"price_currency"`
	PayCurrency      string          `json:"pay_currency"`
	OrderID          string          `json:"order_id"`
	OrderDescription string          `json:"order_description"`
	IPNCallbackURL   string          `json:"ipn_callback_url,omitempty"`
	SuccessURL       string          `json:"success_url,omitempty"`
	CancelURL        string          `json:"cancel_url,omitempty"`
}

type createInvoiceResponse struct {
	ID             ProviderID      `json:"id"`
	InvoiceURL     string          `json:"invoice_url"`
	PayAddress     string          `json:"pay_address"`
	PayAmount      decimal.Decimal `json:"pay_amount"`
	PayCurrency    string          `json:"pay_currency"`
	TimeLimit      string          `json:"time_limit"`
	ExpirationDate string          `json:"expiration_estimate_date"`
}

func (n *NowPaymentsClient) CreateHostedInvoice(ctx context.Context, spec InvoiceSpec) (Invoice, error) {
	req := createInvoiceRequest{
		PriceAmount:      spec.PriceAmount,
		PriceCurrency:    spec.PriceCurrency,
		PayCurrency:      spec.PayCurrency,
		OrderID:          spec.OrderID,
		OrderDescription: spec.Description,
		IPNCallbackURL:   spec.IPNCallbackURL,
		SuccessURL:       spec.SuccessURL,
		CancelURL:        spec.CancelURL,
	}

	body, err := n.makeRequest(ctx, http.MethodPost, "/v1/invoice", req)
	if err != nil {
		return Invoice{}, err
	}

	var res createInvoiceResponse
	err = json.Unmarshal(body, &res)
	if err != nil {
		return Invoice{}, err
	}

	if res.ID.String() == "" {
		return Invoice{}, &ProcessorError{StatusCode: http.StatusOK, Body: "invoice response has no payment id"}
	}

	return Invoice{
		PaymentID:      res.ID.String(),
		InvoiceURL:     res.InvoiceURL,
		PayAddress:     res.PayAddress,
		PayAmount:      res.PayAmount,
		PayCurrency:    res.PayCurrency,
		TimeLimit:      res.TimeLimit,
		ExpirationDate: res.ExpirationDate,
	}, nil
}

func (n *NowPaymentsClient) GetPaymentStatus(ctx context.Context, paymentID string) (PaymentStatus, error) {
	body, err := n.makeRequest(ctx, http.MethodGet, "/v1/payment/"+paymentID, nil)
	if err != nil {
		return PaymentStatus{}, err
	}

	var res PaymentStatus
	err = json.Unmarshal(body, &res)
	if err != nil {
		return PaymentStatus{}, err
	}

	return res, nil
}

func (n *NowPaymentsClient) makeRequest(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	client := &http.Client{}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, n.url+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", n.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var buf bytes.Buffer
	_, err = io.Copy(&buf, res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		n.logger.Errorf("processor call %s %s failed: %d", method, path, res.StatusCode)
		return nil, &ProcessorError{StatusCode: res.StatusCode, Body: buf.String()}
	}

	return buf.Bytes(), nil
}
