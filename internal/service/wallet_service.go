package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/pkg/uow"
	"github.com/shopspring/decimal"
)

type WalletService struct {
	uow             uow.UOW
	userRepo        UserRepository
	holdingRepo     HoldingRepository
	transactionRepo TransactionRepository
	now             func() time.Time
}

func NewWalletService(u uow.UOW) (*WalletService, error) {
	userRepo, userRepoErr := getRepo[UserRepository](u, repoargs.UserRepoName)
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	holdingRepo, holdingRepoErr := getRepo[HoldingRepository](u, repoargs.HoldingRepoName)
	if holdingRepoErr != nil {
		return nil, holdingRepoErr
	}
	transactionRepo, transactionRepoErr := getRepo[TransactionRepository](u, repoargs.TransactionRepoName)
	if transactionRepoErr != nil {
		return nil, transactionRepoErr
	}
	return &WalletService{
		uow:             u,
		userRepo:        userRepo,
		holdingRepo:     holdingRepo,
		transactionRepo: transactionRepo,
		now:             time.Now,
	}, nil
}

// Get возвращает кошелек юзера. Доступная к выводу сумма пересчитывается по погашенным вложениям на момент
// чтения, сохраненное значение не используется.
func (w *WalletService) Get(ctx context.Context, actor domain.Actor) (*domain.Wallet, error) {
	user, userErr := w.userRepo.FindByID(ctx, actor.ID)
	if userErr != nil {
		return nil, fmt.Errorf("getting wallet: %w", userErr)
	}
	matured, sumErr := w.holdingRepo.SumMaturedPrincipal(ctx, actor.ID, w.now())
	if sumErr != nil {
		return nil, fmt.Errorf("getting wallet: %w", sumErr)
	}
	wallet := user.Wallet
	wallet.RecomputeWithdrawable(matured)
	return &wallet, nil
}

func (w *WalletService) Transactions(
	ctx context.Context,
	actor domain.Actor,
	page repoargs.Page,
) ([]domain.Transaction, error) {
	transactions, err := w.transactionRepo.GetByUserID(ctx, actor.ID, page)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}

// Credit пополнение баланса юзера администратором.
func (w *WalletService) Credit(
	ctx context.Context,
	actor domain.Actor,
	userID int64,
	amount decimal.Decimal,
) (*domain.Wallet, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	amount = floorAmount(amount)
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	var wallet domain.Wallet
	txErr := w.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := txRepo[UserRepository](tx, repoargs.UserRepoName)
		if userRepoErr != nil {
			return userRepoErr
		}
		transactionRepo, transactionRepoErr := txRepo[TransactionRepository](tx, repoargs.TransactionRepoName)
		if transactionRepoErr != nil {
			return transactionRepoErr
		}

		user, userErr := userRepo.FindByIDForUpdate(c, userID)
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}
		user.Wallet.Credit(amount)
		if err := saveWallet(c, userRepo, user); err != nil {
			return err
		}
		wallet = user.Wallet

		_, createErr := transactionRepo.Create(c, repoargs.CreateTransaction{
			Reference:   newReference(),
			UserID:      userID,
			Type:        domain.TransactionCredit,
			Amount:      amount,
			Status:      domain.TransactionStatusCompleted,
			Description: "wallet top-up",
		})
		return createErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("crediting wallet of user %d: %w", userID, txErr)
	}
	return &wallet, nil
}
