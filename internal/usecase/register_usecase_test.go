package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/copdilan8-rgb/lacopita/internal/domain/entities"
	mock_interfaces "github.com/copdilan8-rgb/lacopita/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRegisterUseCase_Open_Validations(t *testing.T) {
	t.Run("empty user id", func(t *testing.T) {
		uc := NewRegisterUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Open(context.Background(), "  ", 100)
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("negative initial amount", func(t *testing.T) {
		uc := NewRegisterUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Open(context.Background(), "user-1", -1)
		if !errors.Is(err, ErrInvalidInitialAmount) {
			t.Fatalf("expected ErrInvalidInitialAmount, got %v", err)
		}
	})

	t.Run("NaN initial amount", func(t *testing.T) {
		uc := NewRegisterUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Open(context.Background(), "user-1", math.NaN())
		if !errors.Is(err, ErrInvalidInitialAmount) {
			t.Fatalf("expected ErrInvalidInitialAmount, got %v", err)
		}
	})
}

func TestRegisterUseCase_Open(t *testing.T) {
	t.Run("success invalidates cache and broadcasts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRegisterSessionRepository(ctrl)
		broker := mock_interfaces.NewMockIRegisterEventBroker(ctrl)
		cache := mock_interfaces.NewMockIRegisterStateCache(ctrl)
		uc := NewRegisterUseCase(repo, nil, nil, broker, cache)

		repo.EXPECT().Open(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.RegisterSession) (entities.RegisterSession, error) {
				if s.ID == "" || s.OpenedBy != "user-1" || s.InitialCashAmount != 50 {
					t.Fatalf("unexpected session passed to repo: %+v", s)
				}
				if s.Status != entities.RegisterStatusAbierta {
					t.Fatalf("expected status abierta, got %s", s.Status)
				}
				return s, nil
			})
		cache.EXPECT().Invalidate()
		broker.EXPECT().PublishOpened(gomock.Any()).Return(nil)

		created, err := uc.Open(context.Background(), "user-1", 50)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.OpenedAt.IsZero() {
			t.Fatal("expected OpenedAt to be set")
		}
	})

	t.Run("zero initial amount is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRegisterSessionRepository(ctrl)
		uc := NewRegisterUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().Open(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.RegisterSession) (entities.RegisterSession, error) {
				return s, nil
			})

		if _, err := uc.Open(context.Background(), "user-1", 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("already open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRegisterSessionRepository(ctrl)
		uc := NewRegisterUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().Open(gomock.Any(), gomock.Any()).Return(entities.RegisterSession{}, nil)

		_, err := uc.Open(context.Background(), "user-1", 50)
		if !errors.Is(err, ErrRegisterAlreadyOpen) {
			t.Fatalf("expected ErrRegisterAlreadyOpen, got %v", err)
		}
	})

	t.Run("broadcast failure does not fail the open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRegisterSessionRepository(ctrl)
		broker := mock_interfaces.NewMockIRegisterEventBroker(ctrl)
		cache := mock_interfaces.NewMockIRegisterStateCache(ctrl)
		uc := NewRegisterUseCase(repo, nil, nil, broker, cache)

		repo.EXPECT().Open(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.RegisterSession) (entities.RegisterSession, error) {
				return s, nil
			})
		cache.EXPECT().Invalidate()
		broker.EXPECT().PublishOpened(gomock.Any()).Return(errors.New("amqp down"))

		if _, err := uc.Open(context.Background(), "user-1", 50); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRegisterUseCase_Close(t *testing.T) {
	openSession := entities.RegisterSession{
		ID:                "caja-1",
		OpenedBy:          "user-1",
		InitialCashAmount: 50,
		Status:            entities.RegisterStatusAbierta,
	}

	t.Run("computes totals from pending orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRegisterSessionRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		cache := mock_interfaces.NewMockIRegisterStateCache(ctrl)
		uc := NewRegisterUseCase(repo, orders, nil, nil, cache)

		repo.EXPECT().GetByID(gomock.Any(), "caja-1").Return(openSession, nil)
		orders.EXPECT().ListUnassignedPaid(gomock.Any()).Return([]entities.Order{
			{ID: "ped-1", PaymentMethod: entities.PaymentMethodEfectivo, TotalAmount: 24},
			{ID: "ped-2", PaymentMethod: entities.PaymentMethodQR, TotalAmount: 15},
		}, nil)
		repo.EXPECT().CloseWithOrders(gomock.Any(), gomock.Any(), []string{"ped-1", "ped-2"}).DoAndReturn(
			func(_ context.Context, closed entities.RegisterSession, _ []string) (entities.RegisterSession, error) {
				if closed.Status != entities.RegisterStatusCerrada {
					t.Fatalf("expected cerrada, got %s", closed.Status)
				}
				// Cash total is seeded with the initial amount; the day sum is not.
				if closed.FinalCashAmount != 74 {
					t.Fatalf("expected final cash 74, got %.2f", closed.FinalCashAmount)
				}
				if closed.DayCashSum != 24 {
					t.Fatalf("expected day cash sum 24, got %.2f", closed.DayCashSum)
				}
				if closed.FinalQRAmount != 15 {
					t.Fatalf("expected qr 15, got %.2f", closed.FinalQRAmount)
				}
				// DiscountAmount stores the net cash after the entered discount.
				if closed.DiscountAmount != 69 {
					t.Fatalf("expected net cash 69, got %.2f", closed.DiscountAmount)
				}
				if closed.TotalSales != 39 {
					t.Fatalf("expected total sales 39, got %.2f", closed.TotalSales)
				}
				return closed, nil
			})
		cache.EXPECT().Invalidate()

		_, summary, err := uc.Close(context.Background(), CloseRegisterInput{
			SessionID: "caja-1",
			ClosedBy:  "user-2",
			Discount:  5,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.OrdersProcessed != 2 {
			t.Fatalf("expected 2 orders processed, got %d", summary.OrdersProcessed)
		}
		if summary.GrandTotal != 89 {
			t.Fatalf("expected grand total 89, got %.2f", summary.GrandTotal)
		}
	})

	t.Run("close with no pending orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRegisterSessionRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewRegisterUseCase(repo, orders, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "caja-1").Return(openSession, nil)
		orders.EXPECT().ListUnassignedPaid(gomock.Any()).Return(nil, nil)
		repo.EXPECT().CloseWithOrders(gomock.Any(), gomock.Any(), []string{}).DoAndReturn(
			func(_ context.Context, closed entities.RegisterSession, _ []string) (entities.RegisterSession, error) {
				if closed.FinalCashAmount != 50 || closed.DayCashSum != 0 || closed.TotalSales != 0 {
					t.Fatalf("unexpected money fields: %+v", closed)
				}
				return closed, nil
			})

		_, summary, err := uc.Close(context.Background(), CloseRegisterInput{SessionID: "caja-1", ClosedBy: "user-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.OrdersProcessed != 0 || summary.GrandTotal != 50 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
	})

	t.Run("session not open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRegisterSessionRepository(ctrl)
		uc := NewRegisterUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "caja-1").Return(entities.RegisterSession{}, nil)

		_, _, err := uc.Close(context.Background(), CloseRegisterInput{SessionID: "caja-1", ClosedBy: "user-1"})
		if !errors.Is(err, ErrRegisterNotOpen) {
			t.Fatalf("expected ErrRegisterNotOpen, got %v", err)
		}
	})

	t.Run("lost close race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRegisterSessionRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewRegisterUseCase(repo, orders, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "caja-1").Return(openSession, nil)
		orders.EXPECT().ListUnassignedPaid(gomock.Any()).Return(nil, nil)
		repo.EXPECT().CloseWithOrders(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.RegisterSession{}, nil)

		_, _, err := uc.Close(context.Background(), CloseRegisterInput{SessionID: "caja-1", ClosedBy: "user-1"})
		if !errors.Is(err, ErrRegisterNotOpen) {
			t.Fatalf("expected ErrRegisterNotOpen, got %v", err)
		}
	})
}

func TestRegisterUseCase_PendingOrdersSummary(t *testing.T) {
	t.Run("empty session id", func(t *testing.T) {
		uc := NewRegisterUseCase(nil, nil, nil, nil, nil)
		_, _, err := uc.PendingOrdersSummary(context.Background(), " ")
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("splits totals by payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewRegisterUseCase(nil, orders, nil, nil, nil)

		orders.EXPECT().ListUnassignedPaid(gomock.Any()).Return([]entities.Order{
			{ID: "ped-1", PaymentMethod: entities.PaymentMethodEfectivo, TotalAmount: 10},
			{ID: "ped-2", PaymentMethod: entities.PaymentMethodEfectivo, TotalAmount: 14},
			{ID: "ped-3", PaymentMethod: entities.PaymentMethodQR, TotalAmount: 15},
		}, nil)

		pending, summary, err := uc.PendingOrdersSummary(context.Background(), "caja-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pending) != 3 || summary.Count != 3 {
			t.Fatalf("unexpected pending count: %+v", summary)
		}
		if summary.CashTotal != 24 || summary.QRTotal != 15 || summary.GrandTotal != 39 {
			t.Fatalf("unexpected summary totals: %+v", summary)
		}
	})
}

func TestRegisterUseCase_HistoryDetailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIRegisterSessionRepository(ctrl)
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	uc := NewRegisterUseCase(repo, orders, users, nil, nil)

	closed := entities.RegisterSession{
		ID:       "caja-1",
		OpenedBy: "user-1",
		ClosedBy: "user-gone",
		Status:   entities.RegisterStatusCerrada,
	}
	repo.EXPECT().ListClosed(gomock.Any(), 10, 0, "2026-08").Return([]entities.RegisterSession{closed}, 1, nil)
	users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", Name: "Dilan"}, nil)
	users.EXPECT().GetByID(gomock.Any(), "user-gone").Return(entities.User{}, nil)
	orders.EXPECT().ListBySession(gomock.Any(), "caja-1").Return([]entities.Order{
		{ID: "ped-1", PaymentMethod: entities.PaymentMethodEfectivo},
		{ID: "ped-2", PaymentMethod: entities.PaymentMethodQR},
		{ID: "ped-3", PaymentMethod: entities.PaymentMethodQR},
	}, nil)

	entries, total, err := uc.HistoryDetailed(context.Background(), 0, 0, "2026-08")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(entries) != 1 {
		t.Fatalf("unexpected totals: total=%d entries=%d", total, len(entries))
	}
	entry := entries[0]
	if entry.OpenedByName != "Dilan" {
		t.Fatalf("unexpected opened-by name: %q", entry.OpenedByName)
	}
	if entry.ClosedByName != unknownUserName {
		t.Fatalf("expected fallback name for missing user, got %q", entry.ClosedByName)
	}
	if entry.CashOrders != 1 || entry.QROrders != 2 {
		t.Fatalf("unexpected per-method counts: %+v", entry)
	}
}
