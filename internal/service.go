package internal

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/wa4lo7k/FlashFundXxx-sub000/internal/model"
)

type IService interface {
	CreatePayment(context.Context, CreatePaymentInput) (CreatePaymentOutput, error)
	CheckPaymentStatus(ctx context.Context, orderID, userID string) (PaymentStatusView, error)
	ProcessWebhook(context.Context, WebhookPayload) (string, error)
}

// CallbackURLs are handed to the processor at invoice time: where to push
// status webhooks and where the hosted page sends the payer afterwards.
type CallbackURLs struct {
	IPN     string
	Success string
	Cancel  string
}

type Service struct {
	Repository IRepository
	Processor  IProcessor
	urls       CallbackURLs
	logger     *zap.SugaredLogger
}

func NewService(repository IRepository, processor IProcessor, urls CallbackURLs, logger *zap.SugaredLogger) *Service {
	return &Service{Repository: repository, Processor: processor, urls: urls, logger: logger}
}

func (s Service) CreatePayment(ctx context.Context, in CreatePaymentInput) (CreatePaymentOutput, error) {
	err := in.validate()
	if err != nil {
		return CreatePaymentOutput{}, err
	}

	order, err := s.Repository.GetOrderByID(ctx, in.OrderID)
	if err != nil {
		return CreatePaymentOutput{}, err
	}

	if order.UserID != in.UserID {
		return CreatePaymentOutput{}, ErrNotOrderOwner
	}

	if !order.Payable() {
		return CreatePaymentOutput{}, ErrOrderNotPayable
	}

	invoice, err := s.Processor.CreateHostedInvoice(ctx, InvoiceSpec{
		PriceAmount:    in.FinalAmount,
		PriceCurrency:  "usd",
		PayCurrency:    MapPayCurrency(in.CryptoCurrency),
		OrderID:        in.OrderID,
		Description:    OrderDescription(in.AccountType, in.AccountSize, in.PlatformType),
		IPNCallbackURL: s.urls.IPN,
		SuccessURL:     s.urls.Success,
		CancelURL:      s.urls.Cancel,
	})
	if err != nil {
		return CreatePaymentOutput{}, err
	}

	err = s.Repository.AttachPayment(ctx, in.OrderID, model.PaymentFields{
		ProviderID:  invoice.PaymentID,
		PayCurrency: invoice.PayCurrency,
		PayAmount:   invoice.PayAmount,
		PayAddress:  invoice.PayAddress,
	})
	if err != nil {
		return CreatePaymentOutput{}, err
	}

	s.logEvent(ctx, in.OrderID, model.EventPaymentCreated, map[string]interface{}{
		"payment_id":   invoice.PaymentID,
		"pay_currency": invoice.PayCurrency,
		"pay_amount":   invoice.PayAmount.String(),
		"invoice_url":  invoice.InvoiceURL,
	}, invoice.PaymentID)

	return CreatePaymentOutput{
		InvoiceURL: invoice.InvoiceURL,
		Payment: PaymentSummary{
			PaymentID:      invoice.PaymentID,
			PayAddress:     invoice.PayAddress,
			PayAmount:      invoice.PayAmount,
			PayCurrency:    invoice.PayCurrency,
			QRCode:         paymentQRCode(invoice.PayAddress, invoice.InvoiceURL),
			TimeLimit:      invoice.TimeLimit,
			ExpirationDate: invoice.ExpirationDate,
		},
	}, nil
}

func (s Service) CheckPaymentStatus(ctx context.Context, orderID, userID string) (PaymentStatusView, error) {
	order, err := s.Repository.GetOrderByID(ctx, orderID)
	if err != nil {
		return PaymentStatusView{}, err
	}

	if order.UserID != userID {
		return PaymentStatusView{}, ErrNotOrderOwner
	}

	if order.PaymentProviderID == "" {
		return PaymentStatusView{}, ErrNoPaymentID
	}

	live, err := s.Processor.GetPaymentStatus(ctx, order.PaymentProviderID)
	if err != nil {
		return PaymentStatusView{}, err
	}

	return PaymentStatusView{Order: order, Payment: live}, nil
}

// ProcessWebhook applies one reported status transition. The returned
// message goes into the acknowledgement body; an error is only returned for
// the two cases the handler answers with a non-success status (malformed
// payload, unknown order) and for store failures.
func (s Service) ProcessWebhook(ctx context.Context, p WebhookPayload) (string, error) {
	var missing []string
	if p.PaymentID.String() == "" {
		missing = append(missing, "payment_id")
	}
	if p.OrderID == "" {
		missing = append(missing, "order_id")
	}
	if p.PaymentStatus == "" {
		missing = append(missing, "payment_status")
	}
	if len(missing) > 0 {
		return "", &ValidationError{Missing: missing}
	}

	order, err := s.Repository.GetOrderByID(ctx, p.OrderID)
	if err != nil {
		return "", err
	}

	s.logEvent(ctx, order.OrderID, model.EventWebhookReceived, map[string]interface{}{
		"payment_status": p.PaymentStatus,
		"pay_amount":     p.PayAmount.String(),
		"actually_paid":  p.ActuallyPaid.String(),
		"pay_currency":   p.PayCurrency,
	}, p.PaymentID.String())

	switch p.PaymentStatus {
	case ProcessorStatusWaiting:
		return "waiting for payment", nil

	case ProcessorStatusConfirming:
		err = s.Repository.UpdateOrderStatus(ctx, order.OrderID, model.OrderStatusProcessing, model.PaymentStatusPending, nil)
		if err != nil {
			return "", err
		}
		return "payment confirming", nil

	case ProcessorStatusConfirmed, ProcessorStatusFinished:
		return s.settle(ctx, order, p)

	case ProcessorStatusPartiallyPaid:
		payload := map[string]interface{}{
			"expected": order.ExpectedAmount().String(),
			"received": p.Received().String(),
		}
		if !order.ExpectedAmount().IsZero() {
			payload["percent_paid"] = p.Received().Div(order.ExpectedAmount()).Mul(decimal.NewFromInt(100)).StringFixed(2)
		}
		s.logEvent(ctx, order.OrderID, model.EventPartialPayment, payload, p.PaymentID.String())
		return "partial payment received", nil

	case ProcessorStatusFailed, ProcessorStatusExpired:
		err = s.Repository.UpdateOrderStatus(ctx, order.OrderID, model.OrderStatusFailed, model.PaymentStatusFailed, nil)
		if err != nil {
			return "", err
		}
		s.logEvent(ctx, order.OrderID, model.EventPaymentFailed, map[string]interface{}{
			"payment_status": p.PaymentStatus,
		}, p.PaymentID.String())
		return "payment failed", nil

	case ProcessorStatusRefunded:
		err = s.Repository.UpdateOrderStatus(ctx, order.OrderID, model.OrderStatusRefunded, model.PaymentStatusRefunded, nil)
		if err != nil {
			return "", err
		}
		s.logEvent(ctx, order.OrderID, model.EventPaymentRefunded, nil, p.PaymentID.String())
		return "payment refunded", nil

	case ProcessorStatusSending:
		return "payout in progress", nil

	default:
		s.logEvent(ctx, order.OrderID, model.EventUnknownStatus, map[string]interface{}{
			"payment_status": p.PaymentStatus,
		}, p.PaymentID.String())
		return "unhandled payment status", nil
	}
}

// settle runs the amount check for a confirmed/finished webhook and, on
// pass, marks the order paid and triggers account delivery. Below the
// tolerance the order stays as is, awaiting further webhook deliveries.
func (s Service) settle(ctx context.Context, order model.Order, p WebhookPayload) (string, error) {
	expected := order.ExpectedAmount()
	received := p.Received()

	if !SufficientPayment(expected, received) {
		s.logEvent(ctx, order.OrderID, model.EventInsufficientPayment, map[string]interface{}{
			"expected": expected.String(),
			"received": received.String(),
		}, p.PaymentID.String())
		return "insufficient payment amount", nil
	}

	now := time.Now()
	err := s.Repository.UpdateOrderStatus(ctx, order.OrderID, model.OrderStatusCompleted, model.PaymentStatusPaid, &now)
	if err != nil {
		return "", err
	}

	begun, err := s.Repository.TryBeginDelivery(ctx, order.OrderID)
	if err != nil {
		s.logger.Errorf("delivery guard failed for order %s: %s", order.OrderID, err.Error())
		return "payment confirmed", nil
	}
	if !begun {
		return "payment confirmed", nil
	}

	// A delivery failure never rolls back the paid state; the order is left
	// for manual reconciliation.
	err = s.Repository.DeliverAccount(ctx, order.OrderID, order.UserID)
	if err != nil {
		s.logEvent(ctx, order.OrderID, model.EventDeliveryFailed, map[string]interface{}{
			"error": err.Error(),
		}, p.PaymentID.String())
		return "payment confirmed, delivery requires manual review", nil
	}

	s.logEvent(ctx, order.OrderID, model.EventAccountDelivered, nil, p.PaymentID.String())
	return "payment confirmed and account delivered", nil
}

var paymentTolerance = decimal.RequireFromString("0.99")

// SufficientPayment allows 1% slippage for exchange-rate drift and network
// fees. The boundary is inclusive: exactly 99% of the expected amount
// passes.
func SufficientPayment(expected, received decimal.Decimal) bool {
	return received.GreaterThanOrEqual(expected.Mul(paymentTolerance))
}

// logEvent appends to the audit log; a failed append never aborts the state
// transition it annotates.
func (s Service) logEvent(ctx context.Context, orderID, eventType string, payload map[string]interface{}, paymentID string) {
	err := s.Repository.AppendEvent(ctx, model.PaymentEvent{
		OrderID:   orderID,
		EventType: eventType,
		Payload:   payload,
		PaymentID: paymentID,
	})
	if err != nil {
		s.logger.Errorf("failed to log %s event for order %s: %s", eventType, orderID, err.Error())
	}
}

func paymentQRCode(payAddress, invoiceURL string) string {
	content := payAddress
	if content == "" {
		content = invoiceURL
	}
	if content == "" {
		return ""
	}

	png, err := qrcode.Encode(content, qrcode.Medium, 256)
	if err != nil {
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
