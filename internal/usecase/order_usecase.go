package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/copdilan8-rgb/lacopita/internal/domain/entities"
	"github.com/copdilan8-rgb/lacopita/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEmptyDraft           = errors.New("draft has no items")
	ErrUnauthenticated      = errors.New("user not authenticated")
	ErrRegisterClosed       = errors.New("register is closed")
	ErrInvalidTableNumber   = errors.New("invalid table number")
	ErrInvalidDraftItem     = errors.New("invalid draft item")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidOrderStatus   = errors.New("invalid order status")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderWrongState      = errors.New("order not in the required state")
	ErrOrderAlreadySettled  = errors.New("order already settled into a session")
)

const tableNumberMax = 9

// IOrderUseCase exposes the order lifecycle:
//   - confirmar pedido => Confirm() (draft -> order + line items)
//   - entregar / pagar => the monotonic status transitions
//   - administrative deletion of unsettled orders

type IOrderUseCase interface {
	Confirm(ctx context.Context, userID, clientID string, draft entities.DraftOrder) (entities.Order, error)
	ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error)
	MarkDelivered(ctx context.Context, orderID string) (entities.Order, error)
	MarkPaid(ctx context.Context, orderID string, method entities.PaymentMethod) (entities.Order, error)
	Delete(ctx context.Context, orderID string) error
}

type OrderUseCase struct {
	repo     interfaces.IOrderRepository
	register interfaces.IRegisterSessionRepository
	drafts   interfaces.IDraftStore
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, register interfaces.IRegisterSessionRepository, drafts interfaces.IDraftStore) *OrderUseCase {
	return &OrderUseCase{repo: repo, register: register, drafts: drafts}
}

// Confirm validates the draft against the current register state and persists
// it as an order plus its line items in one transaction. On success the
// stored draft for clientID, if any, is cleared.
//
// Subtotals are taken from the draft as-is; totals are not recomputed against
// the catalog at settlement time.
func (u *OrderUseCase) Confirm(ctx context.Context, userID, clientID string, draft entities.DraftOrder) (entities.Order, error) {
	if len(draft.Items) == 0 {
		return entities.Order{}, ErrEmptyDraft
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Order{}, ErrUnauthenticated
	}

	session, err := u.register.GetOpen(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	if session.ID == "" {
		return entities.Order{}, ErrRegisterClosed
	}

	kind := entities.OrderKindMesa
	tableNumber := 0
	if strings.TrimSpace(draft.Table) == string(entities.OrderKindLlevar) {
		kind = entities.OrderKindLlevar
	} else {
		tableNumber, err = strconv.Atoi(strings.TrimSpace(draft.Table))
		if err != nil || tableNumber < 1 || tableNumber > tableNumberMax {
			return entities.Order{}, ErrInvalidTableNumber
		}
	}

	total := 0.0
	for _, item := range draft.Items {
		if item.Quantity < 1 {
			return entities.Order{}, ErrInvalidDraftItem
		}
		total += item.Subtotal
	}

	now := time.Now().UTC()
	order := entities.Order{
		ID:          uuid.NewString(),
		UserID:      userID,
		Kind:        kind,
		TableNumber: tableNumber,
		Status:      entities.OrderStatusEnCurso,
		TotalAmount: total,
		Note:        strings.TrimSpace(draft.Note),
		CreatedAt:   now,
	}
	order.Items = make([]entities.OrderLineItem, 0, len(draft.Items))
	for _, item := range draft.Items {
		order.Items = append(order.Items, buildLineItem(order.ID, item))
	}

	created, err := u.repo.CreateWithItems(ctx, order)
	if err != nil {
		log.Printf("[order][usecase] confirm failed user_id=%s items=%d err=%v", userID, len(order.Items), err)
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] confirmed order_id=%s user_id=%s kind=%s total=%.2f items=%d",
		created.ID, userID, kind, total, len(created.Items))

	if clientID = strings.TrimSpace(clientID); clientID != "" && u.drafts != nil {
		u.drafts.Delete(clientID)
	}
	return created, nil
}

// buildLineItem converts one draft item into its persisted form. Promotion
// items collapse into a single line carrying the component payload; flavor
// choices on simple products are rendered into the note.
func buildLineItem(orderID string, item entities.DraftItem) entities.OrderLineItem {
	line := entities.OrderLineItem{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Category:  item.Category,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		Subtotal:  item.Subtotal,
	}

	if item.Type != entities.LineItemTypePromo {
		if item.Type == entities.LineItemTypeFlavorChoice && len(item.Flavors) > 0 {
			line.Note = fmt.Sprintf("Sabores: %s", strings.Join(item.Flavors, ", "))
		}
		return line
	}

	line.Category = entities.CategoryPromos
	if item.PromoID != "" {
		line.ProductID = item.PromoID
	}
	line.PromoDetail = make([]entities.PromoComponent, 0, len(item.Components))
	for _, comp := range item.Components {
		pc := entities.PromoComponent{
			Name:      comp.Name,
			Category:  comp.Category,
			ProductID: comp.ProductID,
			Quantity:  comp.Quantity,
			Type:      comp.Type,
		}
		if comp.Type == entities.LineItemTypeFlavorChoice && len(comp.FlavorsPerUnit) > 0 {
			pc.Flavors = comp.FlavorsPerUnit
		}
		line.PromoDetail = append(line.PromoDetail, pc)
	}
	return line
}

func (u *OrderUseCase) ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	switch status {
	case entities.OrderStatusEnCurso, entities.OrderStatusEntregado, entities.OrderStatusPagado:
	default:
		return nil, ErrInvalidOrderStatus
	}
	return u.repo.ListByStatus(ctx, status)
}

func (u *OrderUseCase) MarkDelivered(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	updated, err := u.repo.MarkDelivered(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, u.transitionFailure(ctx, orderID)
	}
	return updated, nil
}

func (u *OrderUseCase) MarkPaid(ctx context.Context, orderID string, method entities.PaymentMethod) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if method != entities.PaymentMethodEfectivo && method != entities.PaymentMethodQR {
		return entities.Order{}, ErrInvalidPaymentMethod
	}

	updated, err := u.repo.MarkPaid(ctx, orderID, method)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, u.transitionFailure(ctx, orderID)
	}
	return updated, nil
}

// transitionFailure tells a missing order apart from one in the wrong state,
// after a conditional update came back empty.
func (u *OrderUseCase) transitionFailure(ctx context.Context, orderID string) error {
	existing, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrOrderNotFound
	}
	return ErrOrderWrongState
}

// Delete removes an order as an administrative correction. Orders already
// swept into a closed session are immutable.
func (u *OrderUseCase) Delete(ctx context.Context, orderID string) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ErrInvalidOrderID
	}

	existing, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrOrderNotFound
	}
	if existing.RegisterSessionID != "" {
		return ErrOrderAlreadySettled
	}

	deleted, err := u.repo.Delete(ctx, orderID)
	if err != nil {
		return err
	}
	if !deleted {
		// Lost the race with a register close.
		return ErrOrderAlreadySettled
	}
	log.Printf("[order][usecase] deleted order_id=%s", orderID)
	return nil
}
