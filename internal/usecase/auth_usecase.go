package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/copdilan8-rgb/lacopita/internal/domain/entities"
	"github.com/copdilan8-rgb/lacopita/internal/usecase/interfaces"
	"github.com/copdilan8-rgb/lacopita/pkg/token"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// IAuthUseCase is the plain credential lookup against the usuarios table.

type IAuthUseCase interface {
	Login(ctx context.Context, username, pin string) (string, entities.User, error)
}

type AuthUseCase struct {
	users interfaces.IUserRepository
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository) *AuthUseCase {
	return &AuthUseCase{users: users}
}

func (u *AuthUseCase) Login(ctx context.Context, username, pin string) (string, entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || pin == "" {
		return "", entities.User{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return "", entities.User{}, err
	}
	if user.ID == "" || user.PIN != pin {
		return "", entities.User{}, ErrInvalidCredentials
	}

	signed, err := token.Generate(user.ID)
	if err != nil {
		return "", entities.User{}, err
	}
	log.Printf("[auth][usecase] login success user_id=%s", user.ID)
	return signed, user, nil
}
