package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"github.com/copdilan8-rgb/lacopita/internal/domain/entities"
	"github.com/copdilan8-rgb/lacopita/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidInitialAmount = errors.New("invalid initial cash amount")
	ErrInvalidUserID        = errors.New("invalid user id")
	ErrInvalidSessionID     = errors.New("invalid session id")
	ErrRegisterAlreadyOpen  = errors.New("register already open")
	ErrRegisterNotOpen      = errors.New("register not open or already closed")
)

const unknownUserName = "Usuario desconocido"

// RegisterHistoryEntry is one closed session enriched for the detailed
// history view: resolved staff names plus the orders swept into it.
type RegisterHistoryEntry struct {
	Session      entities.RegisterSession
	OpenedByName string
	ClosedByName string
	Orders       []entities.Order
	CashOrders   int
	QROrders     int
}

// IRegisterUseCase exposes the cash-register lifecycle:
//   - apertura => Open()
//   - cierre => Close() (sweeps paid unassigned orders into the session)
//   - caja actual / resumen / historial => the read operations

type IRegisterUseCase interface {
	Open(ctx context.Context, userID string, initialCash float64) (entities.RegisterSession, error)
	GetCurrent(ctx context.Context) (entities.RegisterSession, error)
	Close(ctx context.Context, in CloseRegisterInput) (entities.RegisterSession, entities.ClosedSummary, error)
	PendingOrdersSummary(ctx context.Context, sessionID string) ([]entities.Order, entities.PendingSummary, error)
	History(ctx context.Context, limit, offset int) ([]entities.RegisterSession, int, error)
	HistoryDetailed(ctx context.Context, limit, offset int, date string) ([]RegisterHistoryEntry, int, error)
}

// CloseRegisterInput carries the close form: who is closing which session,
// the free-text observations and the cash discount taken out of the drawer.
type CloseRegisterInput struct {
	SessionID    string
	ClosedBy     string
	Observations string
	Discount     float64
}

type RegisterUseCase struct {
	repo   interfaces.IRegisterSessionRepository
	orders interfaces.IOrderRepository
	users  interfaces.IUserRepository
	broker interfaces.IRegisterEventBroker
	cache  interfaces.IRegisterStateCache
}

var _ IRegisterUseCase = (*RegisterUseCase)(nil)

func NewRegisterUseCase(
	repo interfaces.IRegisterSessionRepository,
	orders interfaces.IOrderRepository,
	users interfaces.IUserRepository,
	broker interfaces.IRegisterEventBroker,
	cache interfaces.IRegisterStateCache,
) *RegisterUseCase {
	return &RegisterUseCase{repo: repo, orders: orders, users: users, broker: broker, cache: cache}
}

func (u *RegisterUseCase) Open(ctx context.Context, userID string, initialCash float64) (entities.RegisterSession, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.RegisterSession{}, ErrInvalidUserID
	}
	if initialCash < 0 || math.IsNaN(initialCash) || math.IsInf(initialCash, 0) {
		return entities.RegisterSession{}, ErrInvalidInitialAmount
	}

	s := entities.RegisterSession{
		ID:                uuid.NewString(),
		OpenedBy:          userID,
		OpenedAt:          time.Now().UTC(),
		InitialCashAmount: initialCash,
		Status:            entities.RegisterStatusAbierta,
	}

	created, err := u.repo.Open(ctx, s)
	if err != nil {
		return entities.RegisterSession{}, err
	}
	if created.ID == "" {
		// The open marker already exists: some session is open, whoever owns it.
		return entities.RegisterSession{}, ErrRegisterAlreadyOpen
	}
	log.Printf("[register][usecase] opened session_id=%s user_id=%s initial=%.2f", created.ID, userID, initialCash)

	u.notify(ctx, true)
	return created, nil
}

// GetCurrent returns the system-wide open session regardless of owner: any
// staff member may operate against a register opened by another. A zero
// session with a nil error means none is open.
func (u *RegisterUseCase) GetCurrent(ctx context.Context) (entities.RegisterSession, error) {
	return u.repo.GetOpen(ctx)
}

func (u *RegisterUseCase) Close(ctx context.Context, in CloseRegisterInput) (entities.RegisterSession, entities.ClosedSummary, error) {
	sessionID := strings.TrimSpace(in.SessionID)
	closedBy := strings.TrimSpace(in.ClosedBy)
	if sessionID == "" {
		return entities.RegisterSession{}, entities.ClosedSummary{}, ErrInvalidSessionID
	}
	if closedBy == "" {
		return entities.RegisterSession{}, entities.ClosedSummary{}, ErrInvalidUserID
	}

	session, err := u.repo.GetByID(ctx, sessionID)
	if err != nil {
		return entities.RegisterSession{}, entities.ClosedSummary{}, err
	}
	if session.ID == "" || session.Status != entities.RegisterStatusAbierta {
		return entities.RegisterSession{}, entities.ClosedSummary{}, ErrRegisterNotOpen
	}

	pending, err := u.orders.ListUnassignedPaid(ctx)
	if err != nil {
		return entities.RegisterSession{}, entities.ClosedSummary{}, err
	}

	cashTotal := session.InitialCashAmount
	dayCashSum := 0.0
	qrTotal := 0.0
	orderIDs := make([]string, 0, len(pending))
	for _, o := range pending {
		orderIDs = append(orderIDs, o.ID)
		switch o.PaymentMethod {
		case entities.PaymentMethodEfectivo:
			cashTotal += o.TotalAmount
			dayCashSum += o.TotalAmount
		case entities.PaymentMethodQR:
			qrTotal += o.TotalAmount
		}
	}
	netCash := cashTotal - in.Discount

	closed := session
	closed.Status = entities.RegisterStatusCerrada
	closed.ClosedBy = closedBy
	closed.ClosedAt = time.Now().UTC()
	closed.FinalCashAmount = cashTotal
	closed.FinalQRAmount = qrTotal
	closed.DayCashSum = dayCashSum
	closed.DiscountAmount = netCash
	closed.TotalSales = dayCashSum + qrTotal
	closed.Observations = strings.TrimSpace(in.Observations)

	result, err := u.repo.CloseWithOrders(ctx, closed, orderIDs)
	if err != nil {
		return entities.RegisterSession{}, entities.ClosedSummary{}, err
	}
	if result.ID == "" {
		// Another user closed the session between our read and the transaction.
		return entities.RegisterSession{}, entities.ClosedSummary{}, ErrRegisterNotOpen
	}
	log.Printf("[register][usecase] closed session_id=%s user_id=%s orders=%d cash=%.2f qr=%.2f",
		result.ID, closedBy, len(orderIDs), cashTotal, qrTotal)

	u.notify(ctx, false)

	summary := entities.ClosedSummary{
		OrdersProcessed: len(pending),
		InitialAmount:   session.InitialCashAmount,
		FinalCashAmount: cashTotal,
		FinalQRAmount:   qrTotal,
		DayCashSum:      dayCashSum,
		GrandTotal:      cashTotal + qrTotal,
	}
	return result, summary, nil
}

func (u *RegisterUseCase) PendingOrdersSummary(ctx context.Context, sessionID string) ([]entities.Order, entities.PendingSummary, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, entities.PendingSummary{}, ErrInvalidSessionID
	}

	pending, err := u.orders.ListUnassignedPaid(ctx)
	if err != nil {
		return nil, entities.PendingSummary{}, err
	}

	summary := entities.PendingSummary{Count: len(pending)}
	for _, o := range pending {
		switch o.PaymentMethod {
		case entities.PaymentMethodEfectivo:
			summary.CashTotal += o.TotalAmount
		case entities.PaymentMethodQR:
			summary.QRTotal += o.TotalAmount
		}
	}
	summary.GrandTotal = summary.CashTotal + summary.QRTotal
	return pending, summary, nil
}

func (u *RegisterUseCase) History(ctx context.Context, limit, offset int) ([]entities.RegisterSession, int, error) {
	limit, offset = normalizePage(limit, offset)
	return u.repo.ListClosed(ctx, limit, offset, "")
}

func (u *RegisterUseCase) HistoryDetailed(ctx context.Context, limit, offset int, date string) ([]RegisterHistoryEntry, int, error) {
	limit, offset = normalizePage(limit, offset)
	sessions, total, err := u.repo.ListClosed(ctx, limit, offset, strings.TrimSpace(date))
	if err != nil {
		return nil, 0, err
	}

	entries := make([]RegisterHistoryEntry, 0, len(sessions))
	for _, s := range sessions {
		entry := RegisterHistoryEntry{
			Session:      s,
			OpenedByName: u.userName(ctx, s.OpenedBy),
			ClosedByName: u.userName(ctx, s.ClosedBy),
		}

		orders, err := u.orders.ListBySession(ctx, s.ID)
		if err != nil {
			return nil, 0, err
		}
		entry.Orders = orders
		for _, o := range orders {
			switch o.PaymentMethod {
			case entities.PaymentMethodEfectivo:
				entry.CashOrders++
			case entities.PaymentMethodQR:
				entry.QROrders++
			}
		}
		entries = append(entries, entry)
	}
	return entries, total, nil
}

func (u *RegisterUseCase) userName(ctx context.Context, id string) string {
	if id == "" {
		return unknownUserName
	}
	user, err := u.users.GetByID(ctx, id)
	if err != nil || user.ID == "" {
		return unknownUserName
	}
	return user.Name
}

// notify drops the local cached state first, then broadcasts, so the next
// local Query re-fetches instead of serving the value from before the change.
func (u *RegisterUseCase) notify(ctx context.Context, opened bool) {
	if u.cache != nil {
		u.cache.Invalidate()
	}
	if u.broker == nil {
		return
	}
	var err error
	if opened {
		err = u.broker.PublishOpened(ctx)
	} else {
		err = u.broker.PublishClosed(ctx)
	}
	if err != nil {
		log.Printf("[register][usecase] broadcast failed opened=%t err=%v", opened, err)
	}
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
