// File: internal/service/purchase_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainErrors "github.com/Daniell17/football-app/internal/domain/errors"
	"github.com/Daniell17/football-app/internal/domain/models"
	domainService "github.com/Daniell17/football-app/internal/domain/service"
	"github.com/Daniell17/football-app/internal/events/kafka"
)

type purchaseServiceFixture struct {
	matchRepo   *MockMatchRepository
	ticketRepo  *MockTicketRepository
	paymentRepo *MockPaymentRepository
	gateway     *MockPaymentGateway
	publisher   *recordingPublisher
	service     *PurchaseService
}

func newPurchaseServiceFixture() *purchaseServiceFixture {
	f := &purchaseServiceFixture{
		matchRepo:   new(MockMatchRepository),
		ticketRepo:  new(MockTicketRepository),
		paymentRepo: new(MockPaymentRepository),
		gateway:     new(MockPaymentGateway),
		publisher:   &recordingPublisher{},
	}
	f.service = NewPurchaseService(
		f.matchRepo,
		f.ticketRepo,
		f.paymentRepo,
		passthroughTxManager{},
		f.gateway,
		f.publisher,
		"club.billing.events",
		"club.ticket.events",
		zap.NewNop(),
	)
	return f
}

func scheduledMatch(totalTickets, ticketsSold int) *models.Match {
	return &models.Match{
		ID:           uuid.New(),
		HomeTeam:     "Žalgiris",
		AwayTeam:     "Sūduva",
		Status:       models.MatchStatusScheduled,
		KickoffAt:    time.Now().Add(48 * time.Hour),
		TicketPrice:  1500,
		TotalTickets: totalTickets,
		TicketsSold:  ticketsSold,
	}
}

func pendingPayment(orderID string, userID uuid.UUID) *models.Payment {
	return &models.Payment{
		ID:        uuid.New(),
		OrderID:   orderID,
		UserID:    userID,
		Amount:    3000,
		Currency:  "EUR",
		Status:    models.PaymentStatusPending,
		CreatedAt: time.Now().Add(-time.Minute),
	}
}

func TestInitializePayment(t *testing.T) {
	f := newPurchaseServiceFixture()
	userID := uuid.New()
	match := scheduledMatch(100, 10)

	f.matchRepo.On("FindByID", mock.Anything, match.ID).Return(match, nil)
	f.paymentRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
		return p.Status == models.PaymentStatusPending && p.Amount == 3000 && p.Currency == "EUR"
	})).Return(nil)
	f.ticketRepo.On("Create", mock.Anything, mock.MatchedBy(func(tk *models.Ticket) bool {
		return tk.Status == models.TicketStatusPending && tk.Quantity == 2 && tk.TotalPaid == 3000
	})).Return(nil)
	f.gateway.On("BuildRedirect", mock.MatchedBy(func(req domainService.PaymentRedirectRequest) bool {
		return req.Amount == 3000 && req.Currency == "EUR"
	})).Return("https://bank.paysera.com/pay/?data=abc&sign=def", nil)

	resp, err := f.service.InitializePayment(context.Background(), userID, match.ID, 2, "fan@club.example")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.OrderID)
	assert.Equal(t, int64(3000), resp.Amount)
	assert.Contains(t, resp.RedirectURL, "bank.paysera.com")

	// Инициализация не расходует вместимость матча
	f.matchRepo.AssertNotCalled(t, "SellTickets", mock.Anything, mock.Anything, mock.Anything)
}

func TestInitializePaymentFinishedMatch(t *testing.T) {
	f := newPurchaseServiceFixture()
	match := scheduledMatch(100, 10)
	match.Status = models.MatchStatusFinished

	f.matchRepo.On("FindByID", mock.Anything, match.ID).Return(match, nil)

	_, err := f.service.InitializePayment(context.Background(), uuid.New(), match.ID, 1, "")
	assert.ErrorIs(t, err, domainErrors.ErrMatchClosed)
	f.paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInitializePaymentInsufficientTickets(t *testing.T) {
	f := newPurchaseServiceFixture()
	match := scheduledMatch(10, 8)

	f.matchRepo.On("FindByID", mock.Anything, match.ID).Return(match, nil)

	_, err := f.service.InitializePayment(context.Background(), uuid.New(), match.ID, 3, "")
	assert.ErrorIs(t, err, domainErrors.ErrInsufficientTickets)
	f.paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInitializePaymentGatewayErrorWritesNothing(t *testing.T) {
	f := newPurchaseServiceFixture()
	match := scheduledMatch(100, 10)

	f.matchRepo.On("FindByID", mock.Anything, match.ID).Return(match, nil)
	f.gateway.On("BuildRedirect", mock.Anything).Return("", errors.New("projectID is required"))

	_, err := f.service.InitializePayment(context.Background(), uuid.New(), match.ID, 2, "fan@club.example")
	require.Error(t, err)

	// Отказ шлюза не должен оставлять осиротевшие PENDING строки
	f.paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.ticketRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestConfirmPaymentInvalidSignature(t *testing.T) {
	f := newPurchaseServiceFixture()

	f.gateway.On("Verify", "payload", "bad-signature").Return(false)

	_, err := f.service.ConfirmPayment(context.Background(), "payload", "bad-signature")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidSignature)

	// Никаких изменений состояния до проверки подписи
	f.paymentRepo.AssertNotCalled(t, "FindByOrderID", mock.Anything, mock.Anything)
	f.paymentRepo.AssertNotCalled(t, "TransitionFromPending", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmPaymentUndecodablePayload(t *testing.T) {
	f := newPurchaseServiceFixture()

	f.gateway.On("Verify", "garbage", "sig").Return(true)
	f.gateway.On("Decode", "garbage").Return(nil, assert.AnError)

	_, err := f.service.ConfirmPayment(context.Background(), "garbage", "sig")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidRequest)
}

func TestConfirmPaymentSuccess(t *testing.T) {
	f := newPurchaseServiceFixture()
	userID := uuid.New()
	paymentRow := pendingPayment("order-1", userID)
	ticket := &models.Ticket{
		ID:        uuid.New(),
		UserID:    userID,
		MatchID:   uuid.New(),
		PaymentID: paymentRow.ID,
		Quantity:  2,
		Status:    models.TicketStatusPending,
	}

	f.gateway.On("Verify", "payload", "sig").Return(true)
	f.gateway.On("Decode", "payload").Return(map[string]string{"orderid": "order-1", "status": "1"}, nil)
	f.paymentRepo.On("FindByOrderID", mock.Anything, "order-1").Return(paymentRow, nil)
	f.paymentRepo.On("TransitionFromPending", mock.Anything, "order-1", models.PaymentStatusCompleted, "payload", "sig").Return(true, nil)
	f.ticketRepo.On("FindByPaymentID", mock.Anything, paymentRow.ID).Return(ticket, nil)
	f.matchRepo.On("SellTickets", mock.Anything, ticket.MatchID, 2).Return(true, nil)
	f.ticketRepo.On("UpdateStatus", mock.Anything, ticket.ID, models.TicketStatusPaid).Return(nil)

	result, err := f.service.ConfirmPayment(context.Background(), "payload", "sig")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, result.Status)
	require.NotNil(t, result.CompletedAt)

	assert.Contains(t, f.publisher.eventTypes(), kafka.EventTypePaymentCompleted)
	assert.Contains(t, f.publisher.eventTypes(), kafka.EventTypeTicketSold)
}

func TestConfirmPaymentFailureCancelsTicket(t *testing.T) {
	f := newPurchaseServiceFixture()
	userID := uuid.New()
	paymentRow := pendingPayment("order-2", userID)
	ticket := &models.Ticket{
		ID:        uuid.New(),
		UserID:    userID,
		MatchID:   uuid.New(),
		PaymentID: paymentRow.ID,
		Quantity:  1,
		Status:    models.TicketStatusPending,
	}

	f.gateway.On("Verify", "payload", "sig").Return(true)
	f.gateway.On("Decode", "payload").Return(map[string]string{"orderid": "order-2", "status": "0"}, nil)
	f.paymentRepo.On("FindByOrderID", mock.Anything, "order-2").Return(paymentRow, nil)
	f.paymentRepo.On("TransitionFromPending", mock.Anything, "order-2", models.PaymentStatusFailed, "payload", "sig").Return(true, nil)
	f.ticketRepo.On("FindByPaymentID", mock.Anything, paymentRow.ID).Return(ticket, nil)
	f.ticketRepo.On("UpdateStatus", mock.Anything, ticket.ID, models.TicketStatusCancelled).Return(nil)

	result, err := f.service.ConfirmPayment(context.Background(), "payload", "sig")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, result.Status)

	// Проваленный платеж не трогает инвентарь
	f.matchRepo.AssertNotCalled(t, "SellTickets", mock.Anything, mock.Anything, mock.Anything)
	assert.Contains(t, f.publisher.eventTypes(), kafka.EventTypePaymentFailed)
}

func TestConfirmPaymentDuplicateDelivery(t *testing.T) {
	f := newPurchaseServiceFixture()
	userID := uuid.New()
	completedAt := time.Now().Add(-time.Minute)
	recorded := pendingPayment("order-3", userID)
	recorded.Status = models.PaymentStatusCompleted
	recorded.CompletedAt = &completedAt

	f.gateway.On("Verify", "payload", "sig").Return(true)
	f.gateway.On("Decode", "payload").Return(map[string]string{"orderid": "order-3", "status": "1"}, nil)
	f.paymentRepo.On("FindByOrderID", mock.Anything, "order-3").Return(recorded, nil)
	f.paymentRepo.On("TransitionFromPending", mock.Anything, "order-3", models.PaymentStatusCompleted, "payload", "sig").Return(false, nil)

	result, err := f.service.ConfirmPayment(context.Background(), "payload", "sig")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, result.Status)

	// Повторная доставка: инвентарь и билет не трогаются, событий нет
	f.matchRepo.AssertNotCalled(t, "SellTickets", mock.Anything, mock.Anything, mock.Anything)
	f.ticketRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, f.publisher.eventTypes())
}

func TestConfirmPaymentInsufficientInventory(t *testing.T) {
	f := newPurchaseServiceFixture()
	userID := uuid.New()
	paymentRow := pendingPayment("order-4", userID)
	match := scheduledMatch(10, 9)
	ticket := &models.Ticket{
		ID:        uuid.New(),
		UserID:    userID,
		MatchID:   match.ID,
		PaymentID: paymentRow.ID,
		Quantity:  3,
		Status:    models.TicketStatusPending,
	}

	f.gateway.On("Verify", "payload", "sig").Return(true)
	f.gateway.On("Decode", "payload").Return(map[string]string{"orderid": "order-4", "status": "1"}, nil)
	f.paymentRepo.On("FindByOrderID", mock.Anything, "order-4").Return(paymentRow, nil)
	f.paymentRepo.On("TransitionFromPending", mock.Anything, "order-4", models.PaymentStatusCompleted, "payload", "sig").Return(true, nil)
	f.ticketRepo.On("FindByPaymentID", mock.Anything, paymentRow.ID).Return(ticket, nil)
	f.matchRepo.On("SellTickets", mock.Anything, match.ID, 3).Return(false, nil)
	f.matchRepo.On("FindByID", mock.Anything, match.ID).Return(match, nil)

	_, err := f.service.ConfirmPayment(context.Background(), "payload", "sig")
	assert.ErrorIs(t, err, domainErrors.ErrInsufficientTickets)

	// Ошибка откатывает транзакцию, билет остается PENDING
	f.ticketRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, f.publisher.eventTypes())
}

func TestGetStatusOwnership(t *testing.T) {
	f := newPurchaseServiceFixture()
	ownerID := uuid.New()
	paymentRow := pendingPayment("order-5", ownerID)

	f.paymentRepo.On("FindByOrderID", mock.Anything, "order-5").Return(paymentRow, nil)

	// Владелец видит платеж
	status, err := f.service.GetStatus(context.Background(), "order-5", ownerID, models.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, "order-5", status.OrderID)

	// Чужой платеж неотличим от несуществующего
	_, err = f.service.GetStatus(context.Background(), "order-5", uuid.New(), models.RoleUser)
	assert.ErrorIs(t, err, domainErrors.ErrPaymentNotFound)

	// Администратор видит любой платеж
	_, err = f.service.GetStatus(context.Background(), "order-5", uuid.New(), models.RoleAdmin)
	assert.NoError(t, err)
}
