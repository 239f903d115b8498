package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/pkg/uow"
	"github.com/shopspring/decimal"
)

type WithdrawalService struct {
	uow            uow.UOW
	withdrawalRepo WithdrawalRepository
	userRepo       UserRepository
	holdingRepo    HoldingRepository
	notifier       Notifier
	now            func() time.Time
}

func NewWithdrawalService(u uow.UOW, notifier Notifier) (*WithdrawalService, error) {
	withdrawalRepo, withdrawalRepoErr := getRepo[WithdrawalRepository](u, repoargs.WithdrawalRepoName)
	if withdrawalRepoErr != nil {
		return nil, withdrawalRepoErr
	}
	userRepo, userRepoErr := getRepo[UserRepository](u, repoargs.UserRepoName)
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	holdingRepo, holdingRepoErr := getRepo[HoldingRepository](u, repoargs.HoldingRepoName)
	if holdingRepoErr != nil {
		return nil, holdingRepoErr
	}
	return &WithdrawalService{
		uow:            u,
		withdrawalRepo: withdrawalRepo,
		userRepo:       userRepo,
		holdingRepo:    holdingRepo,
		notifier:       notifier,
		now:            time.Now,
	}, nil
}

type RequestWithdrawalArgs struct {
	Amount      decimal.Decimal
	Type        domain.WithdrawalType
	BankDetails domain.BankDetails
}

// Request создает заявку на вывод. Наличие средств проверяется заранее, но окончательно только при одобрении.
func (w *WithdrawalService) Request(
	ctx context.Context,
	actor domain.Actor,
	args RequestWithdrawalArgs,
) (*domain.Withdrawal, error) {
	amount := floorAmount(args.Amount)
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if args.Type != domain.WithdrawalInvestment && args.Type != domain.WithdrawalEarnings {
		return nil, domain.ErrInvalidType
	}
	if !bankDetailsComplete(args.BankDetails) {
		return nil, domain.ErrBankDetailsMissing
	}

	user, userErr := w.userRepo.FindByID(ctx, actor.ID)
	if userErr != nil {
		return nil, fmt.Errorf("requesting withdrawal: %w", userErr)
	}
	switch args.Type {
	case domain.WithdrawalEarnings:
		if amount.GreaterThan(user.Wallet.EarningsReceived) {
			return nil, domain.ErrInsufficientEarnings
		}
	case domain.WithdrawalInvestment:
		matured, sumErr := w.holdingRepo.SumMaturedPrincipal(ctx, actor.ID, w.now())
		if sumErr != nil {
			return nil, fmt.Errorf("requesting withdrawal: %w", sumErr)
		}
		if amount.GreaterThan(matured) {
			return nil, domain.ErrInsufficientPrincipal
		}
	}

	withdrawal, err := w.withdrawalRepo.Create(ctx, repoargs.CreateWithdrawal{
		UserID:      actor.ID,
		Amount:      amount,
		Type:        args.Type,
		BankDetails: args.BankDetails,
	})
	if err != nil {
		return nil, fmt.Errorf("requesting withdrawal: %w", err)
	}

	notify(ctx, w.notifier, actor.ID, domain.NotificationWithdrawalRequested,
		"Your withdrawal request of ₹%s is under review", amount)
	return withdrawal, nil
}

// Approve одобряет вывод и списывает средства с кошелька. Для вывода вложений расходуются погашенные
// вложения начиная с самого раннего срока погашения; полностью выведенные вложения закрываются.
// После списания доступная к выводу сумма пересчитывается по фактическим погашенным вложениям.
// При нехватке средств транзакция откатывается целиком и балансы не меняются.
func (w *WithdrawalService) Approve(ctx context.Context, actor domain.Actor, withdrawalID int64) (*domain.Withdrawal, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	now := w.now()

	var withdrawal *domain.Withdrawal
	txErr := w.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		withdrawalRepo, withdrawalRepoErr := txRepo[WithdrawalRepository](tx, repoargs.WithdrawalRepoName)
		if withdrawalRepoErr != nil {
			return withdrawalRepoErr
		}
		userRepo, userRepoErr := txRepo[UserRepository](tx, repoargs.UserRepoName)
		if userRepoErr != nil {
			return userRepoErr
		}
		holdingRepo, holdingRepoErr := txRepo[HoldingRepository](tx, repoargs.HoldingRepoName)
		if holdingRepoErr != nil {
			return holdingRepoErr
		}
		transactionRepo, transactionRepoErr := txRepo[TransactionRepository](tx, repoargs.TransactionRepoName)
		if transactionRepoErr != nil {
			return transactionRepoErr
		}

		current, findErr := withdrawalRepo.FindByID(c, withdrawalID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if current.Status != domain.WithdrawalStatusPending {
			return domain.ErrAlreadyProcessed
		}

		var trErr error
		withdrawal, trErr = withdrawalRepo.Transition(c, repoargs.StatusTransition[domain.WithdrawalStatusType]{
			ID:      withdrawalID,
			From:    domain.WithdrawalStatusPending,
			To:      domain.WithdrawalStatusApproved,
			ActorID: ptr(actor.ID),
			At:      now,
		})
		if trErr != nil {
			return transitionErr(trErr)
		}

		user, userErr := userRepo.FindByIDForUpdate(c, current.UserID)
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}

		switch current.Type {
		case domain.WithdrawalInvestment:
			if err := consumeMaturedPrincipal(c, holdingRepo, user, current.Amount, now); err != nil {
				return err
			}
		case domain.WithdrawalEarnings:
			if err := user.Wallet.WithdrawEarnings(current.Amount); err != nil {
				return err //nolint:wrapcheck
			}
		default:
			return domain.ErrInvalidType
		}

		matured, sumErr := holdingRepo.SumMaturedPrincipal(c, user.ID, now)
		if sumErr != nil {
			return sumErr //nolint:wrapcheck
		}
		user.Wallet.RecomputeWithdrawable(matured)
		if err := saveWallet(c, userRepo, user); err != nil {
			return err
		}

		_, createErr := transactionRepo.Create(c, repoargs.CreateTransaction{
			Reference:   newReference(),
			UserID:      user.ID,
			Type:        domain.TransactionWithdrawal,
			Amount:      current.Amount,
			Status:      domain.TransactionStatusCompleted,
			Description: fmt.Sprintf("%s withdrawal #%d", current.Type, current.ID),
		})
		return createErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("approving withdrawal %d: %w", withdrawalID, txErr)
	}

	notify(ctx, w.notifier, withdrawal.UserID, domain.NotificationWithdrawalApproved,
		"Your withdrawal of ₹%s has been approved", withdrawal.Amount)
	return withdrawal, nil
}

// consumeMaturedPrincipal списывает amount с погашенных вложений юзера начиная с самого раннего срока
// погашения и с кошелька.
func consumeMaturedPrincipal(
	ctx context.Context,
	holdingRepo HoldingRepository,
	user *domain.User,
	amount decimal.Decimal,
	now time.Time,
) error {
	holdings, err := holdingRepo.GetMaturedOpenByUser(ctx, user.ID, now)
	if err != nil {
		return err //nolint:wrapcheck
	}
	available := decimal.Zero
	for i := range holdings {
		available = available.Add(holdings[i].RemainingPrincipal())
	}
	if amount.GreaterThan(available) {
		return domain.ErrInsufficientPrincipal
	}
	if withdrawErr := user.Wallet.WithdrawPrincipal(amount); withdrawErr != nil {
		return withdrawErr //nolint:wrapcheck
	}

	left := amount
	for i := range holdings {
		if !left.IsPositive() {
			break
		}
		take := decimal.Min(left, holdings[i].RemainingPrincipal())
		if !take.IsPositive() {
			continue
		}
		if _, addErr := holdingRepo.AddPrincipalWithdrawn(ctx, holdings[i].ID, take); addErr != nil {
			return addErr //nolint:wrapcheck
		}
		left = left.Sub(take)
	}
	return nil
}

// Reject отклоняет вывод. Причина обязательна, кошелек не меняется.
func (w *WithdrawalService) Reject(
	ctx context.Context,
	actor domain.Actor,
	withdrawalID int64,
	reason string,
) (*domain.Withdrawal, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.ErrReasonRequired
	}

	withdrawal, err := w.transition(ctx, actor, withdrawalID,
		domain.WithdrawalStatusPending, domain.WithdrawalStatusRejected, reason)
	if err != nil {
		return nil, fmt.Errorf("rejecting withdrawal %d: %w", withdrawalID, err)
	}
	notify(ctx, w.notifier, withdrawal.UserID, domain.NotificationWithdrawalRejected,
		"Your withdrawal request was rejected: %s", reason)
	return withdrawal, nil
}

// MarkProcessed отмечает, что одобренный вывод отправлен в банк.
func (w *WithdrawalService) MarkProcessed(
	ctx context.Context,
	actor domain.Actor,
	withdrawalID int64,
) (*domain.Withdrawal, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	withdrawal, err := w.transition(ctx, actor, withdrawalID,
		domain.WithdrawalStatusApproved, domain.WithdrawalStatusProcessed, "")
	if err != nil {
		return nil, fmt.Errorf("processing withdrawal %d: %w", withdrawalID, err)
	}
	return withdrawal, nil
}

func (w *WithdrawalService) transition(
	ctx context.Context,
	actor domain.Actor,
	id int64,
	from, to domain.WithdrawalStatusType,
	reason string,
) (*domain.Withdrawal, error) {
	current, findErr := w.withdrawalRepo.FindByID(ctx, id)
	if findErr != nil {
		return nil, findErr //nolint:wrapcheck
	}
	if current.Status != from {
		if from == domain.WithdrawalStatusPending {
			return nil, domain.ErrAlreadyProcessed
		}
		return nil, domain.ErrInvalidState
	}
	withdrawal, err := w.withdrawalRepo.Transition(ctx, repoargs.StatusTransition[domain.WithdrawalStatusType]{
		ID:      id,
		From:    from,
		To:      to,
		ActorID: ptr(actor.ID),
		Reason:  reason,
		At:      w.now(),
	})
	if err != nil {
		return nil, transitionErr(err)
	}
	return withdrawal, nil
}

func (w *WithdrawalService) ListMine(ctx context.Context, actor domain.Actor) ([]domain.Withdrawal, error) {
	withdrawals, err := w.withdrawalRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return withdrawals, nil
}

func (w *WithdrawalService) ListByStatus(
	ctx context.Context,
	actor domain.Actor,
	status domain.WithdrawalStatusType,
	page repoargs.Page,
) ([]domain.Withdrawal, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	withdrawals, err := w.withdrawalRepo.GetByStatus(ctx, status, page)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return withdrawals, nil
}

func bankDetailsComplete(b domain.BankDetails) bool {
	return strings.TrimSpace(b.AccountHolder) != "" &&
		strings.TrimSpace(b.AccountNumber) != "" &&
		strings.TrimSpace(b.IFSC) != ""
}
