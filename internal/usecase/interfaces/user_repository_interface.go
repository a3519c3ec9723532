package interfaces

import (
	"context"

	"github.com/copdilan8-rgb/lacopita/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for staff users.

type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByUsername(ctx context.Context, username string) (entities.User, error)
}
