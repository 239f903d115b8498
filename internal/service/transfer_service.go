package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/pkg/uow"
	"github.com/shopspring/decimal"
)

// TransferService передача вложения другому юзеру платформы:
// pending -> accepted (покупатель) -> admin_pending (продавец) -> completed (админ).
type TransferService struct {
	uow          uow.UOW
	transferRepo TransferRepository
	notifier     Notifier
	now          func() time.Time
}

func NewTransferService(u uow.UOW, notifier Notifier) (*TransferService, error) {
	transferRepo, transferRepoErr := getRepo[TransferRepository](u, repoargs.TransferRepoName)
	if transferRepoErr != nil {
		return nil, transferRepoErr
	}
	return &TransferService{
		uow:          u,
		transferRepo: transferRepo,
		notifier:     notifier,
		now:          time.Now,
	}, nil
}

type InitiateTransferArgs struct {
	HoldingID  int64
	BuyerEmail string
	SalePrice  decimal.Decimal
}

// Initiate создает заявку продавца на передачу вложения покупателю. Вложение должно принадлежать продавцу
// не меньше 90 дней, на одно вложение допускается только одна незавершенная заявка.
func (t *TransferService) Initiate(
	ctx context.Context,
	actor domain.Actor,
	args InitiateTransferArgs,
) (*domain.TransferRequest, error) {
	salePrice := floorAmount(args.SalePrice)
	if err := validateAmount(salePrice); err != nil {
		return nil, err
	}
	email := normalizeEmail(args.BuyerEmail)
	if email == "" {
		return nil, domain.ErrBuyerRequired
	}
	now := t.now()

	var transfer *domain.TransferRequest
	txErr := t.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		holdingRepo, holdingRepoErr := txRepo[HoldingRepository](tx, repoargs.HoldingRepoName)
		if holdingRepoErr != nil {
			return holdingRepoErr
		}
		userRepo, userRepoErr := txRepo[UserRepository](tx, repoargs.UserRepoName)
		if userRepoErr != nil {
			return userRepoErr
		}
		transferRepo, transferRepoErr := txRepo[TransferRepository](tx, repoargs.TransferRepoName)
		if transferRepoErr != nil {
			return transferRepoErr
		}
		offlineRepo, offlineRepoErr := txRepo[OfflineTransferRepository](tx, repoargs.OfflineTransferRepoName)
		if offlineRepoErr != nil {
			return offlineRepoErr
		}

		holding, holdingErr := holdingRepo.FindByIDForUpdate(c, args.HoldingID)
		if holdingErr != nil {
			return holdingErr //nolint:wrapcheck
		}
		if err := holding.CheckTransferable(actor.ID, now); err != nil {
			return err //nolint:wrapcheck
		}

		buyer, buyerErr := userRepo.FindUserByEmail(c, email)
		if buyerErr != nil {
			return fmt.Errorf("buyer: %w", buyerErr)
		}
		if buyer.ID == actor.ID {
			return domain.ErrSelfTransfer
		}
		if buyer.KYCStatus != domain.KYCStatusApproved {
			return domain.ErrKYCNotApproved
		}

		active, activeErr := hasActiveTransfer(c, transferRepo, offlineRepo, holding.ID)
		if activeErr != nil {
			return activeErr
		}
		if active {
			return domain.ErrTransferInProgress
		}

		var createErr error
		transfer, createErr = transferRepo.Create(c, repoargs.CreateTransfer{
			SellerID:   actor.ID,
			BuyerID:    buyer.ID,
			PropertyID: holding.PropertyID,
			HoldingID:  holding.ID,
			SalePrice:  salePrice,
		})
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			return domain.ErrTransferInProgress
		}
		return createErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("initiating transfer of holding %d: %w", args.HoldingID, txErr)
	}

	notify(ctx, t.notifier, transfer.BuyerID, domain.NotificationTransferRequested,
		"You have been offered a holding for ₹%s", transfer.SalePrice)
	return transfer, nil
}

// Respond ответ покупателя на предложение.
func (t *TransferService) Respond(
	ctx context.Context,
	actor domain.Actor,
	transferID int64,
	accept bool,
) (*domain.TransferRequest, error) {
	to, response := domain.TransferStatusRejected, domain.BuyerResponseDeclined
	if accept {
		to, response = domain.TransferStatusAccepted, domain.BuyerResponseAccepted
	}

	transfer, err := t.transition(ctx, transferID, func(current *domain.TransferRequest) error {
		if current.BuyerID != actor.ID {
			return domain.ErrNotOwner
		}
		return nil
	}, []domain.TransferStatusType{domain.TransferStatusPending}, to, actor, "", &response)
	if err != nil {
		return nil, fmt.Errorf("responding to transfer %d: %w", transferID, err)
	}

	notify(ctx, t.notifier, transfer.SellerID, domain.NotificationTransferUpdated,
		"Buyer has %s your transfer offer", response)
	return transfer, nil
}

// Submit передает принятую покупателем заявку на одобрение админу.
func (t *TransferService) Submit(ctx context.Context, actor domain.Actor, transferID int64) (*domain.TransferRequest, error) {
	transfer, err := t.transition(ctx, transferID, sellerOnly(actor),
		[]domain.TransferStatusType{domain.TransferStatusAccepted}, domain.TransferStatusAdminPending, actor, "", nil)
	if err != nil {
		return nil, fmt.Errorf("submitting transfer %d: %w", transferID, err)
	}
	return transfer, nil
}

// Cancel отмена заявки продавцом до передачи админу.
func (t *TransferService) Cancel(ctx context.Context, actor domain.Actor, transferID int64) (*domain.TransferRequest, error) {
	transfer, err := t.transition(ctx, transferID, sellerOnly(actor),
		[]domain.TransferStatusType{domain.TransferStatusPending, domain.TransferStatusAccepted},
		domain.TransferStatusCancelled, actor, "", nil)
	if err != nil {
		return nil, fmt.Errorf("cancelling transfer %d: %w", transferID, err)
	}

	notify(ctx, t.notifier, transfer.BuyerID, domain.NotificationTransferUpdated, "Seller has cancelled the transfer offer")
	return transfer, nil
}

// Approve завершает передачу: списывает цену с баланса покупателя, зачисляет её продавцу, снимает с продавца
// исходную сумму вложения и переоформляет вложение на покупателя. Все в одной транзакции.
func (t *TransferService) Approve(ctx context.Context, actor domain.Actor, transferID int64) (*domain.TransferRequest, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	now := t.now()

	var transfer *domain.TransferRequest
	txErr := t.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		transferRepo, transferRepoErr := txRepo[TransferRepository](tx, repoargs.TransferRepoName)
		if transferRepoErr != nil {
			return transferRepoErr
		}
		holdingRepo, holdingRepoErr := txRepo[HoldingRepository](tx, repoargs.HoldingRepoName)
		if holdingRepoErr != nil {
			return holdingRepoErr
		}
		userRepo, userRepoErr := txRepo[UserRepository](tx, repoargs.UserRepoName)
		if userRepoErr != nil {
			return userRepoErr
		}
		transactionRepo, transactionRepoErr := txRepo[TransactionRepository](tx, repoargs.TransactionRepoName)
		if transactionRepoErr != nil {
			return transactionRepoErr
		}

		current, findErr := transferRepo.FindByID(c, transferID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if current.Status != domain.TransferStatusAdminPending {
			return domain.ErrAlreadyProcessed
		}

		var trErr error
		transfer, trErr = transferRepo.Transition(c, repoargs.TransferTransition{
			StatusTransition: repoargs.StatusTransition[domain.TransferStatusType]{
				ID:      transferID,
				From:    domain.TransferStatusAdminPending,
				To:      domain.TransferStatusCompleted,
				ActorID: ptr(actor.ID),
				At:      now,
			},
		})
		if trErr != nil {
			return transitionErr(trErr)
		}

		holding, holdingErr := holdingRepo.FindByIDForUpdate(c, current.HoldingID)
		if holdingErr != nil {
			return holdingErr //nolint:wrapcheck
		}
		if err := holding.CheckReassignable(current.SellerID); err != nil {
			return err //nolint:wrapcheck
		}

		users, lockErr := lockUsers(c, userRepo, current.SellerID, current.BuyerID)
		if lockErr != nil {
			return lockErr
		}
		seller, buyer := users[0], users[1]

		if err := buyer.Wallet.LockPrincipal(current.SalePrice); err != nil {
			return err //nolint:wrapcheck
		}
		seller.Wallet.Credit(current.SalePrice)
		seller.Wallet.ReleasePrincipal(holding.AmountInvested)

		if _, err := reassignHolding(c, holdingRepo, holding, buyer.ID, current.SalePrice, now); err != nil {
			return err
		}
		if err := saveWallet(c, userRepo, seller); err != nil {
			return err
		}
		if err := saveWallet(c, userRepo, buyer); err != nil {
			return err
		}

		return createTransactionPair(c, transactionRepo,
			repoargs.CreateTransaction{
				Reference:   newReference(),
				UserID:      seller.ID,
				Type:        domain.TransactionCredit,
				Amount:      current.SalePrice,
				Status:      domain.TransactionStatusCompleted,
				HoldingID:   ptr(holding.ID),
				PropertyID:  ptr(holding.PropertyID),
				Description: fmt.Sprintf("sale of holding #%d", holding.ID),
			},
			repoargs.CreateTransaction{
				Reference:   newReference(),
				UserID:      buyer.ID,
				Type:        domain.TransactionDebit,
				Amount:      current.SalePrice,
				Status:      domain.TransactionStatusCompleted,
				HoldingID:   ptr(holding.ID),
				PropertyID:  ptr(holding.PropertyID),
				Description: fmt.Sprintf("purchase of holding #%d", holding.ID),
			},
		)
	})
	if txErr != nil {
		return nil, fmt.Errorf("approving transfer %d: %w", transferID, txErr)
	}

	notify(ctx, t.notifier, transfer.SellerID, domain.NotificationTransferCompleted,
		"Your holding has been sold for ₹%s", transfer.SalePrice)
	notify(ctx, t.notifier, transfer.BuyerID, domain.NotificationTransferCompleted,
		"Holding purchase for ₹%s is complete", transfer.SalePrice)
	return transfer, nil
}

// Reject отклонение заявки админом. Причина обязательна.
func (t *TransferService) Reject(
	ctx context.Context,
	actor domain.Actor,
	transferID int64,
	reason string,
) (*domain.TransferRequest, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.ErrReasonRequired
	}

	transfer, err := t.transition(ctx, transferID, nil,
		[]domain.TransferStatusType{domain.TransferStatusAdminPending}, domain.TransferStatusAdminRejected, actor, reason, nil)
	if err != nil {
		return nil, fmt.Errorf("rejecting transfer %d: %w", transferID, err)
	}

	for _, userID := range []int64{transfer.SellerID, transfer.BuyerID} {
		notify(ctx, t.notifier, userID, domain.NotificationTransferUpdated, "Transfer was rejected: %s", reason)
	}
	return transfer, nil
}

// transition переводит заявку из одного из статусов from в to. check проверяет права актора на заявку.
func (t *TransferService) transition(
	ctx context.Context,
	transferID int64,
	check func(current *domain.TransferRequest) error,
	from []domain.TransferStatusType,
	to domain.TransferStatusType,
	actor domain.Actor,
	reason string,
	response *domain.BuyerResponseType,
) (*domain.TransferRequest, error) {
	current, findErr := t.transferRepo.FindByID(ctx, transferID)
	if findErr != nil {
		return nil, findErr //nolint:wrapcheck
	}
	if check != nil {
		if err := check(current); err != nil {
			return nil, err
		}
	}

	var matched bool
	for _, status := range from {
		if current.Status == status {
			matched = true
			break
		}
	}
	if !matched {
		return nil, domain.ErrAlreadyProcessed
	}

	transfer, err := t.transferRepo.Transition(ctx, repoargs.TransferTransition{
		StatusTransition: repoargs.StatusTransition[domain.TransferStatusType]{
			ID:      transferID,
			From:    current.Status,
			To:      to,
			ActorID: ptr(actor.ID),
			Reason:  reason,
			At:      t.now(),
		},
		BuyerResponse: response,
	})
	if err != nil {
		return nil, transitionErr(err)
	}
	return transfer, nil
}

func (t *TransferService) ListMine(ctx context.Context, actor domain.Actor) ([]domain.TransferRequest, error) {
	transfers, err := t.transferRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transfers, nil
}

func (t *TransferService) ListByStatus(
	ctx context.Context,
	actor domain.Actor,
	status domain.TransferStatusType,
	page repoargs.Page,
) ([]domain.TransferRequest, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	transfers, err := t.transferRepo.GetByStatus(ctx, status, page)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transfers, nil
}

func sellerOnly(actor domain.Actor) func(current *domain.TransferRequest) error {
	return func(current *domain.TransferRequest) error {
		if current.SellerID != actor.ID {
			return domain.ErrNotOwner
		}
		return nil
	}
}
