package interfaces

import (
	"context"

	"github.com/copdilan8-rgb/lacopita/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order and its line items.
//
// CreateWithItems writes the order and every line item in one transaction, so
// a failed settlement never leaves an orphan order behind. MarkDelivered and
// MarkPaid guard the status transition with a conditional update; a failed
// condition comes back as a zero-value Order with a nil error.

type IOrderRepository interface {
	CreateWithItems(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListUnassignedPaid(ctx context.Context) ([]entities.Order, error)
	ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error)
	ListBySession(ctx context.Context, sessionID string) ([]entities.Order, error)
	MarkDelivered(ctx context.Context, id string) (entities.Order, error)
	MarkPaid(ctx context.Context, id string, method entities.PaymentMethod) (entities.Order, error)
	// Delete removes an unsettled order and its line items. It reports false
	// without error when the order is already assigned to a closed session.
	Delete(ctx context.Context, id string) (bool, error)
}
