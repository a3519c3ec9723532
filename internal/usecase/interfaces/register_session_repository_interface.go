package interfaces

import (
	"context"

	"github.com/copdilan8-rgb/lacopita/internal/domain/entities"
)

// IRegisterSessionRepository abstracts DynamoDB persistence for RegisterSession.
//
// The single-open invariant lives here, not in application logic: Open writes
// a singleton "current" marker item with a conditional put, so two racing
// opens cannot both succeed. Close releases the marker, flips the session to
// cerrada and stripes the swept orders inside one write transaction.
//
// Conditional failures follow the zero-value convention: the method returns
// an empty RegisterSession and a nil error, and the use case maps that to the
// proper sentinel.

type IRegisterSessionRepository interface {
	Open(ctx context.Context, s entities.RegisterSession) (entities.RegisterSession, error)
	GetByID(ctx context.Context, id string) (entities.RegisterSession, error)
	GetOpen(ctx context.Context) (entities.RegisterSession, error)
	CloseWithOrders(ctx context.Context, closed entities.RegisterSession, orderIDs []string) (entities.RegisterSession, error)
	ListClosed(ctx context.Context, limit, offset int, date string) ([]entities.RegisterSession, int, error)
}
