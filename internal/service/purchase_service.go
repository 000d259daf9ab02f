// File: internal/service/purchase_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainErrors "github.com/Daniell17/football-app/internal/domain/errors"
	"github.com/Daniell17/football-app/internal/domain/models"
	"github.com/Daniell17/football-app/internal/domain/repository"
	domainService "github.com/Daniell17/football-app/internal/domain/service"
	"github.com/Daniell17/football-app/internal/events/kafka"
	"github.com/Daniell17/football-app/internal/infrastructure/payment"
	"github.com/Daniell17/football-app/internal/utils/metrics"
)

const paymentCurrency = "EUR"

// PurchaseService оркестрирует двухфазную покупку билетов: инициализация
// создает PENDING платеж и билет, подтверждение от шлюза атомарно и
// идемпотентно переводит их в терминальное состояние.
type PurchaseService struct {
	matchRepo    repository.MatchRepository
	ticketRepo   repository.TicketRepository
	paymentRepo  repository.PaymentRepository
	txManager    repository.TxManager
	gateway      domainService.PaymentGateway
	publisher    domainService.EventPublisher
	billingTopic string
	ticketTopic  string
	logger       *zap.Logger
}

// NewPurchaseService создает новый PurchaseService.
func NewPurchaseService(
	matchRepo repository.MatchRepository,
	ticketRepo repository.TicketRepository,
	paymentRepo repository.PaymentRepository,
	txManager repository.TxManager,
	gateway domainService.PaymentGateway,
	publisher domainService.EventPublisher,
	billingTopic string,
	ticketTopic string,
	logger *zap.Logger,
) *PurchaseService {
	return &PurchaseService{
		matchRepo:    matchRepo,
		ticketRepo:   ticketRepo,
		paymentRepo:  paymentRepo,
		txManager:    txManager,
		gateway:      gateway,
		publisher:    publisher,
		billingTopic: billingTopic,
		ticketTopic:  ticketTopic,
		logger:       logger.Named("purchase_service"),
	}
}

// InitializePayment создает PENDING платеж со связанным PENDING билетом и
// возвращает redirect URL шлюза. Вместимость матча на этом шаге не
// расходуется: брошенные корзины не должны навсегда занимать билеты.
func (s *PurchaseService) InitializePayment(ctx context.Context, userID uuid.UUID, matchID uuid.UUID, quantity int, email string) (*models.PurchaseResponse, error) {
	match, err := s.matchRepo.FindByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Status == models.MatchStatusFinished {
		return nil, domainErrors.ErrMatchClosed
	}
	if match.TicketsAvailable() < quantity {
		return nil, domainErrors.ErrInsufficientTickets
	}

	amount := match.TicketPrice * int64(quantity)
	orderID := uuid.NewString()
	now := time.Now()

	// Redirect строится до записи: отказ шлюза не должен оставлять
	// осиротевшие PENDING строки
	redirectURL, err := s.gateway.BuildRedirect(domainService.PaymentRedirectRequest{
		OrderID:  orderID,
		Amount:   amount,
		Currency: paymentCurrency,
		Email:    email,
	})
	if err != nil {
		return nil, err
	}

	paymentRow := &models.Payment{
		ID:        uuid.New(),
		OrderID:   orderID,
		UserID:    userID,
		Amount:    amount,
		Currency:  paymentCurrency,
		Status:    models.PaymentStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	ticket := &models.Ticket{
		ID:        uuid.New(),
		UserID:    userID,
		MatchID:   matchID,
		PaymentID: paymentRow.ID,
		Quantity:  quantity,
		TotalPaid: amount,
		Status:    models.TicketStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.paymentRepo.Create(ctx, paymentRow); err != nil {
			return err
		}
		return s.ticketRepo.Create(ctx, ticket)
	})
	if err != nil {
		return nil, err
	}

	metrics.PaymentsInitializedTotal.Inc()
	s.logger.Info("Payment initialized",
		zap.String("order_id", orderID),
		zap.String("match_id", matchID.String()),
		zap.Int("quantity", quantity),
		zap.Int64("amount", amount),
	)

	return &models.PurchaseResponse{
		OrderID:     orderID,
		RedirectURL: redirectURL,
		Amount:      amount,
		Currency:    paymentCurrency,
	}, nil
}

// ConfirmPayment обрабатывает callback шлюза. Подпись проверяется до любых
// изменений состояния; переход PENDING→терминал применяется не более одного
// раза, повторная доставка возвращает уже записанный статус.
func (s *PurchaseService) ConfirmPayment(ctx context.Context, encodedData, signature string) (*models.PaymentStatusResponse, error) {
	if !s.gateway.Verify(encodedData, signature) {
		metrics.PaymentCallbacksTotal.WithLabelValues("invalid_signature").Inc()
		s.logger.Warn("Payment callback rejected: signature mismatch")
		return nil, domainErrors.ErrInvalidSignature
	}

	params, err := s.gateway.Decode(encodedData)
	if err != nil {
		metrics.PaymentCallbacksTotal.WithLabelValues("malformed").Inc()
		s.logger.Warn("Payment callback rejected: undecodable payload", zap.Error(err))
		return nil, domainErrors.ErrInvalidRequest
	}
	orderID := params[payment.CallbackParamOrderID]
	if orderID == "" {
		metrics.PaymentCallbacksTotal.WithLabelValues("malformed").Inc()
		return nil, domainErrors.ErrInvalidRequest
	}

	success := params[payment.CallbackParamStatus] == payment.StatusPaid
	targetStatus := models.PaymentStatusFailed
	if success {
		targetStatus = models.PaymentStatusCompleted
	}

	var result *models.PaymentStatusResponse
	var applied bool
	var confirmed *models.Payment
	var ticket *models.Ticket

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		paymentRow, err := s.paymentRepo.FindByOrderID(ctx, orderID)
		if err != nil {
			return err
		}

		applied, err = s.paymentRepo.TransitionFromPending(ctx, orderID, targetStatus, encodedData, signature)
		if err != nil {
			return err
		}
		if !applied {
			// Повторная доставка: возвращаем записанный терминальный статус.
			// Перечитываем строку, параллельный переход мог закоммититься
			// после первого чтения.
			paymentRow, err = s.paymentRepo.FindByOrderID(ctx, orderID)
			if err != nil {
				return err
			}
			result = paymentStatusOf(paymentRow)
			return nil
		}

		ticket, err = s.ticketRepo.FindByPaymentID(ctx, paymentRow.ID)
		if err != nil {
			return err
		}

		if success {
			sold, err := s.matchRepo.SellTickets(ctx, ticket.MatchID, ticket.Quantity)
			if err != nil {
				return err
			}
			if !sold {
				return s.classifySellFailure(ctx, ticket.MatchID)
			}
			if err := s.ticketRepo.UpdateStatus(ctx, ticket.ID, models.TicketStatusPaid); err != nil {
				return err
			}
		} else {
			if err := s.ticketRepo.UpdateStatus(ctx, ticket.ID, models.TicketStatusCancelled); err != nil {
				return err
			}
		}

		paymentRow.Status = targetStatus
		if success {
			completedAt := time.Now()
			paymentRow.CompletedAt = &completedAt
		}
		confirmed = paymentRow
		result = paymentStatusOf(paymentRow)
		return nil
	})
	if err != nil {
		metrics.PaymentCallbacksTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	if applied {
		s.publishConfirmation(ctx, confirmed, ticket, success)
		metrics.PaymentCallbacksTotal.WithLabelValues("applied").Inc()
	} else {
		metrics.PaymentCallbacksTotal.WithLabelValues("duplicate").Inc()
	}
	return result, nil
}

// GetStatus возвращает проекцию платежа для опроса статуса. Чужой платеж
// неотличим от несуществующего.
func (s *PurchaseService) GetStatus(ctx context.Context, orderID string, requesterID uuid.UUID, requesterRole string) (*models.PaymentStatusResponse, error) {
	paymentRow, err := s.paymentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if paymentRow.UserID != requesterID && requesterRole != models.RoleAdmin {
		return nil, domainErrors.ErrPaymentNotFound
	}
	return paymentStatusOf(paymentRow), nil
}

// ListUserTickets возвращает билеты пользователя.
func (s *PurchaseService) ListUserTickets(ctx context.Context, userID uuid.UUID) ([]*models.Ticket, error) {
	return s.ticketRepo.ListByUserID(ctx, userID)
}

// classifySellFailure разделяет отказ инвентаря на закрытый матч и нехватку
// билетов.
func (s *PurchaseService) classifySellFailure(ctx context.Context, matchID uuid.UUID) error {
	match, err := s.matchRepo.FindByID(ctx, matchID)
	if err != nil {
		return err
	}
	if match.Status == models.MatchStatusFinished {
		return domainErrors.ErrMatchClosed
	}
	return domainErrors.ErrInsufficientTickets
}

func (s *PurchaseService) publishConfirmation(ctx context.Context, paymentRow *models.Payment, ticket *models.Ticket, success bool) {
	now := time.Now().UTC()
	if success {
		if err := s.publisher.Publish(ctx, s.billingTopic, kafka.EventTypePaymentCompleted, paymentRow.OrderID, models.PaymentCompletedEvent{
			OrderID:     paymentRow.OrderID,
			UserID:      paymentRow.UserID.String(),
			Amount:      paymentRow.Amount,
			Currency:    paymentRow.Currency,
			CompletedAt: now,
		}); err != nil {
			s.logger.Warn("Failed to publish payment completed event", zap.Error(err))
		}
		if err := s.publisher.Publish(ctx, s.ticketTopic, kafka.EventTypeTicketSold, ticket.ID.String(), models.TicketSoldEvent{
			TicketID: ticket.ID.String(),
			MatchID:  ticket.MatchID.String(),
			UserID:   ticket.UserID.String(),
			Quantity: ticket.Quantity,
			SoldAt:   now,
		}); err != nil {
			s.logger.Warn("Failed to publish ticket sold event", zap.Error(err))
		}
		metrics.TicketsSoldTotal.Add(float64(ticket.Quantity))
		return
	}

	if err := s.publisher.Publish(ctx, s.billingTopic, kafka.EventTypePaymentFailed, paymentRow.OrderID, models.PaymentFailedEvent{
		OrderID:  paymentRow.OrderID,
		UserID:   paymentRow.UserID.String(),
		FailedAt: now,
	}); err != nil {
		s.logger.Warn("Failed to publish payment failed event", zap.Error(err))
	}
}

func paymentStatusOf(p *models.Payment) *models.PaymentStatusResponse {
	return &models.PaymentStatusResponse{
		OrderID:     p.OrderID,
		Status:      p.Status,
		Amount:      p.Amount,
		Currency:    p.Currency,
		CreatedAt:   p.CreatedAt,
		CompletedAt: p.CompletedAt,
	}
}
