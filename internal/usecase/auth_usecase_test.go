package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/copdilan8-rgb/lacopita/internal/domain/entities"
	mock_interfaces "github.com/copdilan8-rgb/lacopita/internal/usecase/interfaces/mocks"
	"github.com/copdilan8-rgb/lacopita/pkg/token"

	"go.uber.org/mock/gomock"
)

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("empty credentials", func(t *testing.T) {
		uc := NewAuthUseCase(nil)
		if _, _, err := uc.Login(context.Background(), " ", ""); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users)

		users.EXPECT().GetByUsername(gomock.Any(), "dilan").Return(entities.User{}, nil)

		if _, _, err := uc.Login(context.Background(), "dilan", "1234"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong pin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users)

		users.EXPECT().GetByUsername(gomock.Any(), "dilan").
			Return(entities.User{ID: "user-1", Username: "dilan", PIN: "1234"}, nil)

		if _, _, err := uc.Login(context.Background(), "dilan", "9999"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success issues a parseable token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users)

		users.EXPECT().GetByUsername(gomock.Any(), "dilan").
			Return(entities.User{ID: "user-1", Username: "dilan", PIN: "1234", Name: "Dilan"}, nil)

		signed, user, err := uc.Login(context.Background(), "dilan", "1234")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "user-1" {
			t.Fatalf("unexpected user: %+v", user)
		}

		userID, err := token.Parse(signed)
		if err != nil {
			t.Fatalf("issued token failed to parse: %v", err)
		}
		if userID != "user-1" {
			t.Fatalf("unexpected token subject: %q", userID)
		}
	})
}
