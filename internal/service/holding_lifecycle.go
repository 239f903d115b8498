package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/earnings"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/pkg/uow"
	"github.com/shopspring/decimal"
)

type createHoldingArgs struct {
	UserID       int64
	PropertyID   int64
	Amount       decimal.Decimal
	LockInMonths int
	// FromBalance списывать ли сумму с баланса кошелька. При одобрении заявки средства внешние.
	FromBalance bool
	Description string
}

// createHolding создает вложение внутри транзакции tx.
//
// Алгоритм работы:
//  1. Проверяет сумму против минимальной и доступной суммы объекта.
//  2. Блокирует кошелек юзера и учитывает в нем основную сумму (со списанием баланса или без).
//  3. Создает вложение с рассчитанными датами и ежемесячным доходом.
//  4. Резервирует сумму на объекте условным обновлением.
//  5. Сохраняет кошелек и пишет investment запись в журнал операций.
func createHolding(
	ctx context.Context,
	tx uow.TX,
	now time.Time,
	args createHoldingArgs,
) (*domain.Holding, error) {
	amount := floorAmount(args.Amount)
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	userRepo, userRepoErr := txRepo[UserRepository](tx, repoargs.UserRepoName)
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	propertyRepo, propertyRepoErr := txRepo[PropertyRepository](tx, repoargs.PropertyRepoName)
	if propertyRepoErr != nil {
		return nil, propertyRepoErr
	}
	holdingRepo, holdingRepoErr := txRepo[HoldingRepository](tx, repoargs.HoldingRepoName)
	if holdingRepoErr != nil {
		return nil, holdingRepoErr
	}
	transactionRepo, transactionRepoErr := txRepo[TransactionRepository](tx, repoargs.TransactionRepoName)
	if transactionRepoErr != nil {
		return nil, transactionRepoErr
	}

	property, propertyErr := propertyRepo.FindByID(ctx, args.PropertyID)
	if propertyErr != nil {
		return nil, propertyErr //nolint:wrapcheck
	}
	if err := checkPropertyLimits(property, amount); err != nil {
		return nil, err
	}

	lockIn := args.LockInMonths
	if lockIn == 0 {
		lockIn = property.LockInMonths
	}
	if lockIn <= 0 {
		return nil, domain.ErrInvalidLockIn
	}

	user, userErr := userRepo.FindByIDForUpdate(ctx, args.UserID)
	if userErr != nil {
		return nil, userErr //nolint:wrapcheck
	}
	if args.FromBalance {
		if err := user.Wallet.LockPrincipal(amount); err != nil {
			return nil, err //nolint:wrapcheck
		}
	} else {
		user.Wallet.LockExternalPrincipal(amount)
	}

	holding, holdingErr := holdingRepo.Create(ctx, repoargs.CreateHolding{
		UserID:         user.ID,
		PropertyID:     property.ID,
		AmountInvested: amount,
		PurchaseDate:   now,
		MaturityDate:   earnings.MaturityDate(now, lockIn),
		LockInMonths:   lockIn,
		MonthlyEarning: earnings.MonthlyEarning(amount, now, now),
		NextPayoutDate: earnings.NextPayoutDate(now),
	})
	if holdingErr != nil {
		return nil, holdingErr //nolint:wrapcheck
	}

	if _, reserveErr := propertyRepo.Reserve(ctx, property.ID, amount); reserveErr != nil {
		if errors.Is(reserveErr, domain.ErrRecordNotFound) {
			return nil, domain.ErrExceedsAvailable
		}
		return nil, reserveErr //nolint:wrapcheck
	}

	if err := saveWallet(ctx, userRepo, user); err != nil {
		return nil, err
	}

	if _, err := transactionRepo.Create(ctx, repoargs.CreateTransaction{
		Reference:   newReference(),
		UserID:      user.ID,
		Type:        domain.TransactionInvestment,
		Amount:      amount,
		Status:      domain.TransactionStatusCompleted,
		HoldingID:   ptr(holding.ID),
		PropertyID:  ptr(property.ID),
		Description: args.Description,
	}); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return holding, nil
}

func checkPropertyLimits(property *domain.Property, amount decimal.Decimal) error {
	if amount.LessThan(property.MinInvestment) {
		return fmt.Errorf("%w (minimum %s)", domain.ErrBelowMinimum, property.MinInvestment)
	}
	if amount.GreaterThan(property.AvailableToInvest) {
		return fmt.Errorf("%w (available %s)", domain.ErrExceedsAvailable, property.AvailableToInvest)
	}
	return nil
}
