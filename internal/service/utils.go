package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/pkg/uow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// getRepo достает репозиторий из unit of work вне транзакции.
func getRepo[T any](u uow.UOW, name repoargs.RepositoryName) (T, error) {
	return uow.GetRepositoryAs[T](u, uow.RepositoryName(name))
}

// txRepo достает репозиторий, привязанный к транзакции tx.
func txRepo[T any](tx uow.TX, name repoargs.RepositoryName) (T, error) {
	return uow.GetAs[T](tx, uow.RepositoryName(name))
}

func requireAdmin(actor domain.Actor) error {
	if !actor.IsAdmin() {
		return domain.ErrAdminRequired
	}
	return nil
}

// transitionErr приводит результат условного перехода статуса к бизнес-ошибке: если запись уже не в ожидаемом
// статусе, её обработал кто-то другой.
func transitionErr(err error) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return domain.ErrAlreadyProcessed
	}
	return err
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	return nil
}

// floorAmount приводит денежную сумму к целым рупиям.
func floorAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Floor()
}

func newReference() string {
	return uuid.NewString()
}

func ptr[T any](v T) *T {
	return &v
}

// saveWallet записывает кошелек юзера. Если кошелек изменили параллельно, возвращает domain.ErrWalletVersion.
func saveWallet(ctx context.Context, repo UserRepository, user *domain.User) error {
	wallet, err := repo.UpdateWallet(ctx, repoargs.UpdateWallet{
		UserID: user.ID,
		Wallet: user.Wallet,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return fmt.Errorf("saving wallet of user %d: %w", user.ID, domain.ErrWalletVersion)
		}
		return err //nolint:wrapcheck
	}
	user.Wallet = *wallet
	return nil
}

// lockUsers блокирует строки юзеров в порядке возрастания id, чтобы параллельные транзакции не ловили дедлок.
// Возвращает юзеров в порядке ids.
func lockUsers(ctx context.Context, repo UserRepository, ids ...int64) ([]*domain.User, error) {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	locked := make(map[int64]*domain.User, len(sorted))
	for _, id := range slices.Compact(sorted) {
		user, err := repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
		locked[id] = user
	}
	res := make([]*domain.User, len(ids))
	for i, id := range ids {
		res[i] = locked[id]
	}
	return res, nil
}

// reassignHolding передает вложение покупателю по цене salePrice с проверкой, что владелец не сменился.
// Используется обеими схемами передачи вложения.
func reassignHolding(
	ctx context.Context,
	repo HoldingRepository,
	holding *domain.Holding,
	buyerID int64,
	salePrice decimal.Decimal,
	now time.Time,
) (*domain.Holding, error) {
	moved := *holding
	moved.Reassign(buyerID, salePrice, now)

	updated, err := repo.Reassign(ctx, repoargs.ReassignHolding{
		ID:              holding.ID,
		ExpectedOwnerID: holding.UserID,
		NewOwnerID:      moved.UserID,
		AmountInvested:  moved.AmountInvested,
		PurchaseDate:    moved.PurchaseDate,
		MaturityDate:    moved.MaturityDate,
		MonthlyEarning:  moved.MonthlyEarning,
		NextPayoutDate:  moved.NextPayoutDate,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrHoldingOwnerChanged
		}
		return nil, err //nolint:wrapcheck
	}
	return updated, nil
}

// hasActiveTransfer проверяет обе таблицы заявок на передачу вложения.
func hasActiveTransfer(
	ctx context.Context,
	transferRepo TransferRepository,
	offlineRepo OfflineTransferRepository,
	holdingID int64,
) (bool, error) {
	online, onlineErr := transferRepo.CountActiveByHolding(ctx, holdingID)
	if onlineErr != nil {
		return false, onlineErr //nolint:wrapcheck
	}
	if online > 0 {
		return true, nil
	}
	offline, offlineErr := offlineRepo.CountPendingByHolding(ctx, holdingID)
	if offlineErr != nil {
		return false, offlineErr //nolint:wrapcheck
	}
	return offline > 0, nil
}

// createTransactionPair записывает парные операции двух участников одним батчем.
func createTransactionPair(
	ctx context.Context,
	repo TransactionRepository,
	first, second repoargs.CreateTransaction,
) error {
	var batchErr error
	repo.BatchCreate(ctx, []repoargs.CreateTransaction{first, second}, func(_ int, err error) {
		if err != nil {
			batchErr = err
		}
	})
	return batchErr
}

func notify(ctx context.Context, n Notifier, userID int64, t domain.NotificationType, format string, args ...any) {
	if n == nil {
		return
	}
	n.Notify(ctx, domain.NotificationEvent{
		UserID:  userID,
		Type:    t,
		Message: fmt.Sprintf(format, args...),
	})
}
