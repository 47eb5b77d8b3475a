package internal

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/wa4lo7k/FlashFundXxx-sub000/internal/model"
)

//go:embed migrations/*.sql
var migrations embed.FS

const orderFields = `order_id, user_id, account_type, account_size, platform_type, ` +
	`amount, final_amount, order_status, payment_status, delivery_status, ` +
	`payment_provider_id, crypto_currency, crypto_amount, crypto_address, ` +
	`created_at, updated_at`

type IRepository interface {
	GetOrderByID(context.Context, string) (model.Order, error)
	AttachPayment(context.Context, string, model.PaymentFields) error
	UpdateOrderStatus(ctx context.Context, orderID, orderStatus, paymentStatus string, paidAt *time.Time) error
	AppendEvent(context.Context, model.PaymentEvent) error
	TryBeginDelivery(context.Context, string) (bool, error)
	DeliverAccount(ctx context.Context, orderID, userID string) error
}

type Repository struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger
}

func NewRepository(connString string, logger *zap.SugaredLogger) (*Repository, error) {
	conn, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}

	goose.SetBaseFS(migrations)
	err = goose.SetDialect("postgres")
	if err != nil {
		return nil, err
	}
	err = goose.Up(conn, "migrations")
	if err != nil {
		return nil, err
	}

	return &Repository{Conn: conn, Logger: logger}, nil
}

func (r Repository) GetOrderByID(ctx context.Context, orderID string) (model.Order, error) {
	var o model.Order
	row := r.Conn.QueryRowContext(ctx, "SELECT "+orderFields+" FROM orders WHERE order_id = $1", orderID)
	err := row.Scan(&o.OrderID, &o.UserID, &o.AccountType, &o.AccountSize, &o.PlatformType,
		&o.Amount, &o.FinalAmount, &o.OrderStatus, &o.PaymentStatus, &o.DeliveryStatus,
		&o.PaymentProviderID, &o.CryptoCurrency, &o.CryptoAmount, &o.CryptoAddress,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Order{}, ErrOrderNotFound
		}
		return model.Order{}, err
	}

	return o, nil
}

// AttachPayment persists the processor identifiers onto the order and
// advances it to processing in a single update, so a successful create
// call mutates the order exactly once.
func (r Repository) AttachPayment(ctx context.Context, orderID string, f model.PaymentFields) error {
	_, err := r.Conn.ExecContext(ctx,
		`UPDATE orders SET payment_provider_id = $1, crypto_currency = $2, crypto_amount = $3, crypto_address = $4, order_status = $5, updated_at = now() WHERE order_id = $6`,
		f.ProviderID, f.PayCurrency, f.PayAmount, f.PayAddress, model.OrderStatusProcessing, orderID)
	if err != nil {
		return err
	}
	return nil
}

func (r Repository) UpdateOrderStatus(ctx context.Context, orderID, orderStatus, paymentStatus string, paidAt *time.Time) error {
	if paidAt != nil {
		_, err := r.Conn.ExecContext(ctx,
			"UPDATE orders SET order_status = $1, payment_status = $2, paid_at = $3, updated_at = now() WHERE order_id = $4",
			orderStatus, paymentStatus, *paidAt, orderID)
		return err
	}

	_, err := r.Conn.ExecContext(ctx,
		"UPDATE orders SET order_status = $1, payment_status = $2, updated_at = now() WHERE order_id = $3",
		orderStatus, paymentStatus, orderID)
	return err
}

func (r Repository) AppendEvent(ctx context.Context, e model.PaymentEvent) error {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return err
	}

	_, err = r.Conn.ExecContext(ctx,
		"INSERT INTO payment_events (order_id, event_type, payload, payment_id, created_at) VALUES ($1, $2, $3, $4, $5)",
		e.OrderID, e.EventType, payload, e.PaymentID, time.Now().Format(time.RFC3339))
	if err != nil {
		return err
	}
	return nil
}

// TryBeginDelivery is a compare-and-set on delivery_attempted_at. It wins
// for exactly one caller per order, which keeps concurrent confirmed
// webhooks from triggering delivery twice.
func (r Repository) TryBeginDelivery(ctx context.Context, orderID string) (bool, error) {
	res, err := r.Conn.ExecContext(ctx,
		"UPDATE orders SET delivery_attempted_at = now() WHERE order_id = $1 AND delivery_attempted_at IS NULL",
		orderID)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// DeliverAccount invokes the platform's delivery routine. The routine owns
// delivery_status and credential handout; it is opaque to this service.
func (r Repository) DeliverAccount(ctx context.Context, orderID, userID string) error {
	_, err := r.Conn.ExecContext(ctx, "SELECT deliver_account_to_user($1, $2)", orderID, userID)
	if err != nil {
		return err
	}
	return nil
}
