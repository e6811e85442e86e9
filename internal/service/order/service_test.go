package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/foliohq/folio/internal/config"
	"github.com/foliohq/folio/internal/entity"
	"github.com/foliohq/folio/internal/messaging"
	"github.com/foliohq/folio/internal/payment"
	repo "github.com/foliohq/folio/internal/repository/order"
	"github.com/foliohq/folio/pkg/errorbank"
)

type stubRepo struct {
	created     []*entity.Order
	createErr   error
	completed   *entity.Order
	completeErr error
	completions []string
}

func (s *stubRepo) Create(_ context.Context, order *entity.Order) error {
	s.created = append(s.created, order)
	return s.createErr
}

func (s *stubRepo) Complete(_ context.Context, gatewayOrderID, gatewayPaymentID string) (*entity.Order, error) {
	s.completions = append(s.completions, gatewayOrderID)
	if s.completeErr != nil {
		return nil, s.completeErr
	}
	// First completion records the payment id; a replay re-applies the same
	// terminal state and returns the unchanged row.
	if !s.completed.GatewayPaymentID.Valid {
		s.completed.GatewayPaymentID = sql.NullString{String: gatewayPaymentID, Valid: true}
		s.completed.Status = entity.OrderStatusCompleted
	}
	order := *s.completed
	return &order, nil
}

type stubGateway struct {
	enabled   bool
	createErr error
	requests  []payment.OrderRequest
	validSig  bool
}

func (s *stubGateway) CreateOrder(_ context.Context, req payment.OrderRequest) (*payment.GatewayOrder, error) {
	s.requests = append(s.requests, req)
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &payment.GatewayOrder{
		ID:       "order_test123",
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Status:   "created",
	}, nil
}

func (s *stubGateway) VerifySignature(string, string, string) bool { return s.validSig }
func (s *stubGateway) KeyID() string                               { return "rzp_test_key" }
func (s *stubGateway) Enabled() bool                               { return s.enabled }

type recordingMailer struct {
	sent []string
	err  error
}

func (m *recordingMailer) Send(_ context.Context, to, _, _, _ string) error {
	m.sent = append(m.sent, to)
	return m.err
}

func (m *recordingMailer) Enabled() bool { return true }

type recordingTexter struct {
	sent []string
	err  error
}

func (t *recordingTexter) Send(_ context.Context, to, _ string) error {
	t.sent = append(t.sent, to)
	return t.err
}

func (t *recordingTexter) Enabled() bool { return true }

type recordingPublisher struct {
	values [][]byte
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, _ []byte, value []byte) error {
	p.values = append(p.values, value)
	return p.err
}

func (p *recordingPublisher) Consume(ctx context.Context, _ messaging.Handler) error {
	<-ctx.Done()
	return ctx.Err()
}

func (p *recordingPublisher) Topic() string { return "orders.events" }

type fixture struct {
	svc       *Service
	repo      *stubRepo
	gateway   *stubGateway
	mailer    *recordingMailer
	texter    *recordingTexter
	publisher *recordingPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := config.Config{
		Payment: config.Payment{KeyID: "rzp_test_key", KeySecret: "secret", Currency: "INR"},
		Mail:    config.Mail{Host: "smtp.test", From: "studio@test", BrandName: "Folio Studio"},
		SMS:     config.SMS{AdminPhone: "+15550001111"},
		Messaging: config.Messaging{
			Enabled: true,
			Kafka:   config.Kafka{Topic: "orders.events"},
		},
	}

	f := &fixture{
		repo: &stubRepo{completed: &entity.Order{
			ID:             7,
			ServiceName:    "Landing Page",
			CustomerName:   "Asha",
			CustomerEmail:  "asha@example.com",
			CustomerPhone:  "+915550002222",
			Amount:         500,
			GatewayOrderID: "order_test123",
			Status:         entity.OrderStatusPending,
		}},
		gateway:   &stubGateway{enabled: true, validSig: true},
		mailer:    &recordingMailer{},
		texter:    &recordingTexter{},
		publisher: &recordingPublisher{},
	}

	f.svc = newService(f.repo, f.gateway, f.mailer, f.texter, f.publisher, cfg, zap.NewNop())
	f.svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return f
}

func validInput() CreateInput {
	return CreateInput{
		ServiceName:   "Landing Page",
		CustomerName:  "Asha",
		CustomerEmail: "asha@example.com",
		CustomerPhone: "+915550002222",
		Amount:        500,
	}
}

func TestCreateConvertsAmountToMinorUnits(t *testing.T) {
	f := newFixture(t)

	result, err := f.svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	require.Len(t, f.gateway.requests, 1)
	assert.Equal(t, int64(50000), f.gateway.requests[0].Amount)
	assert.Equal(t, "INR", f.gateway.requests[0].Currency)

	// The local order keeps the major-unit amount.
	assert.Equal(t, int64(500), result.Order.Amount)
}

func TestCreateReceiptUsesMillisTimestamp(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	expected := fmt.Sprintf("receipt_%d", time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).UnixMilli())
	require.Len(t, f.gateway.requests, 1)
	assert.Equal(t, expected, f.gateway.requests[0].Receipt)
}

func TestCreatePersistsPendingOrder(t *testing.T) {
	f := newFixture(t)

	result, err := f.svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	require.Len(t, f.repo.created, 1)
	persisted := f.repo.created[0]
	assert.Equal(t, entity.OrderStatusPending, persisted.Status)
	assert.Equal(t, "order_test123", persisted.GatewayOrderID)
	assert.Equal(t, "rzp_test_key", result.KeyID)
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)

	cases := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{"missing service name", func(in *CreateInput) { in.ServiceName = "" }},
		{"missing customer name", func(in *CreateInput) { in.CustomerName = "" }},
		{"missing email", func(in *CreateInput) { in.CustomerEmail = "" }},
		{"missing phone", func(in *CreateInput) { in.CustomerPhone = "" }},
		{"zero amount", func(in *CreateInput) { in.Amount = 0 }},
		{"negative amount", func(in *CreateInput) { in.Amount = -100 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			_, err := f.svc.Create(context.Background(), in)
			var appErr *errorbank.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, errorbank.KindBadRequest, appErr.Kind())
		})
	}

	assert.Empty(t, f.gateway.requests)
	assert.Empty(t, f.repo.created)
}

func TestCreateGatewayDisabled(t *testing.T) {
	f := newFixture(t)
	f.gateway.enabled = false

	_, err := f.svc.Create(context.Background(), validInput())

	var appErr *errorbank.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errorbank.KindUnavailable, appErr.Kind())
}

func TestCreateGatewayFailure(t *testing.T) {
	f := newFixture(t)
	f.gateway.createErr = errors.New("provider unreachable")

	_, err := f.svc.Create(context.Background(), validInput())

	var appErr *errorbank.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errorbank.KindInternal, appErr.Kind())
	assert.Empty(t, f.repo.created)
}

func TestCreateSucceedsWhenLocalPersistFails(t *testing.T) {
	f := newFixture(t)
	f.repo.createErr = errors.New("connection reset")

	result, err := f.svc.Create(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, "order_test123", result.GatewayOrder.ID)
}

func TestCreatePublishesCreatedEvent(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	require.Len(t, f.publisher.values, 1)
	var event OrderEvent
	require.NoError(t, json.Unmarshal(f.publisher.values[0], &event))
	assert.Equal(t, EventOrderCreated, event.Type)
	assert.Equal(t, "order_test123", event.GatewayOrderID)
	assert.Equal(t, entity.OrderStatusPending, event.Status)
}

func TestVerifyRejectsBadSignature(t *testing.T) {
	f := newFixture(t)
	f.gateway.validSig = false

	_, err := f.svc.Verify(context.Background(), "order_test123", "pay_abc", "bogus")

	var appErr *errorbank.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errorbank.KindBadRequest, appErr.Kind())

	// No record touched, nothing sent.
	assert.Empty(t, f.repo.completions)
	assert.Empty(t, f.mailer.sent)
	assert.Empty(t, f.texter.sent)
}

func TestVerifyCompletesOrderAndNotifies(t *testing.T) {
	f := newFixture(t)

	order, err := f.svc.Verify(context.Background(), "order_test123", "pay_abc", "sig")
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, entity.OrderStatusCompleted, order.Status)
	assert.Equal(t, "pay_abc", order.GatewayPaymentID.String)

	assert.Equal(t, []string{"asha@example.com"}, f.mailer.sent)
	// Customer text plus admin alert.
	assert.Equal(t, []string{"+915550002222", "+15550001111"}, f.texter.sent)

	require.Len(t, f.publisher.values, 1)
	var event OrderEvent
	require.NoError(t, json.Unmarshal(f.publisher.values[0], &event))
	assert.Equal(t, EventOrderCompleted, event.Type)
	assert.Equal(t, "pay_abc", event.GatewayPaymentID)
}

func TestVerifyReplayReturnsSameCompletedOrder(t *testing.T) {
	f := newFixture(t)

	first, err := f.svc.Verify(context.Background(), "order_test123", "pay_abc", "sig")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := f.svc.Verify(context.Background(), "order_test123", "pay_abc", "sig")
	require.NoError(t, err)
	require.NotNil(t, second)

	// The order stays completed with the original payment id.
	assert.Equal(t, entity.OrderStatusCompleted, first.Status)
	assert.Equal(t, entity.OrderStatusCompleted, second.Status)
	assert.Equal(t, first.GatewayPaymentID.String, second.GatewayPaymentID.String)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, []string{"order_test123", "order_test123"}, f.repo.completions)
}

func TestVerifyUnknownOrderSucceedsQuietly(t *testing.T) {
	f := newFixture(t)
	f.repo.completeErr = repo.ErrNotFound

	order, err := f.svc.Verify(context.Background(), "order_unknown", "pay_abc", "sig")

	require.NoError(t, err)
	assert.Nil(t, order)
	assert.Empty(t, f.mailer.sent)
	assert.Empty(t, f.texter.sent)
	assert.Empty(t, f.publisher.values)
}

func TestVerifyNotificationFailuresAreIsolated(t *testing.T) {
	f := newFixture(t)
	f.mailer.err = errors.New("smtp down")
	f.texter.err = errors.New("twilio down")

	order, err := f.svc.Verify(context.Background(), "order_test123", "pay_abc", "sig")

	require.NoError(t, err)
	require.NotNil(t, order)
	// Every channel was still attempted.
	assert.Len(t, f.mailer.sent, 1)
	assert.Len(t, f.texter.sent, 2)
}

func TestVerifyValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Verify(context.Background(), "", "pay_abc", "sig")
	var appErr *errorbank.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errorbank.KindBadRequest, appErr.Kind())
}
