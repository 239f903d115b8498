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
	"github.com/sirupsen/logrus"
)

// errSkipReconcile откатывает транзакцию сверки, если заявку завершать нельзя. Наружу не возвращается.
var errSkipReconcile = errors.New("offline transfer skipped")

// OfflineTransferService передача вложения покупателю, который рассчитался с продавцом вне платформы и
// может еще не иметь аккаунта. Передача завершается, когда у покупателя с этим email одобрен KYC.
type OfflineTransferService struct {
	uow         uow.UOW
	offlineRepo OfflineTransferRepository
	userRepo    UserRepository
	notifier    Notifier
	log         *logrus.Entry
	now         func() time.Time
}

func NewOfflineTransferService(u uow.UOW, notifier Notifier, l *logrus.Logger) (*OfflineTransferService, error) {
	offlineRepo, offlineRepoErr := getRepo[OfflineTransferRepository](u, repoargs.OfflineTransferRepoName)
	if offlineRepoErr != nil {
		return nil, offlineRepoErr
	}
	userRepo, userRepoErr := getRepo[UserRepository](u, repoargs.UserRepoName)
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &OfflineTransferService{
		uow:         u,
		offlineRepo: offlineRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		log:         l.WithField("module", "offline_transfer"),
		now:         time.Now,
	}, nil
}

type InviteBuyerArgs struct {
	HoldingID  int64
	BuyerEmail string
	BuyerName  string
	BuyerPhone string
	SalePrice  decimal.Decimal
}

// Invite создает заявку на передачу вложения покупателю по email. Если покупатель уже зарегистрирован и его
// KYC одобрен, передача завершается сразу.
func (o *OfflineTransferService) Invite(
	ctx context.Context,
	actor domain.Actor,
	args InviteBuyerArgs,
) (*domain.OfflineBuyerRequest, error) {
	salePrice := floorAmount(args.SalePrice)
	if err := validateAmount(salePrice); err != nil {
		return nil, err
	}
	email := normalizeEmail(args.BuyerEmail)
	if email == "" {
		return nil, domain.ErrBuyerRequired
	}
	now := o.now()

	var request *domain.OfflineBuyerRequest
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
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

		seller, sellerErr := userRepo.FindByID(c, actor.ID)
		if sellerErr != nil {
			return sellerErr //nolint:wrapcheck
		}
		if normalizeEmail(seller.Email) == email {
			return domain.ErrSelfTransfer
		}

		active, activeErr := hasActiveTransfer(c, transferRepo, offlineRepo, holding.ID)
		if activeErr != nil {
			return activeErr
		}
		if active {
			return domain.ErrTransferInProgress
		}

		var createErr error
		request, createErr = offlineRepo.Create(c, repoargs.CreateOfflineTransfer{
			SellerID:   actor.ID,
			PropertyID: holding.PropertyID,
			HoldingID:  holding.ID,
			BuyerEmail: email,
			BuyerName:  strings.TrimSpace(args.BuyerName),
			BuyerPhone: strings.TrimSpace(args.BuyerPhone),
			SalePrice:  salePrice,
		})
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			return domain.ErrTransferInProgress
		}
		return createErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("inviting buyer for holding %d: %w", args.HoldingID, txErr)
	}

	buyer, buyerErr := o.userRepo.FindUserByEmail(ctx, email)
	if buyerErr != nil {
		if !errors.Is(buyerErr, domain.ErrRecordNotFound) {
			o.log.WithError(buyerErr).WithField("requestID", request.ID).Warn("looking up invited buyer")
		}
		return request, nil
	}
	if _, err := o.ReconcileForBuyer(ctx, buyer); err != nil {
		o.log.WithError(err).WithField("requestID", request.ID).Error("reconciling offline transfer on invite")
	}
	return request, nil
}

// ReconcileForBuyer завершает все ожидающие передачи на email покупателя. Вызывается при одобрении KYC и
// при чтении вложений юзером; повторный вызов для уже завершенных заявок ничего не делает.
//
// Каждая заявка обрабатывается в своей транзакции. Заявки, вложение по которым сменило владельца или
// закрыто выводом основной суммы, остаются в ожидании.
func (o *OfflineTransferService) ReconcileForBuyer(ctx context.Context, buyer *domain.User) (int, error) {
	if buyer == nil || buyer.KYCStatus != domain.KYCStatusApproved {
		return 0, nil
	}

	requests, err := o.offlineRepo.GetPendingByEmail(ctx, normalizeEmail(buyer.Email))
	if err != nil {
		return 0, fmt.Errorf("getting pending offline transfers: %w", err)
	}

	var completed int
	var errs []error
	for i := range requests {
		request := requests[i]
		if request.SellerID == buyer.ID {
			continue
		}
		done, reconcileErr := o.reconcileOne(ctx, &request, buyer.ID)
		if reconcileErr != nil {
			errs = append(errs, fmt.Errorf("offline transfer %d: %w", request.ID, reconcileErr))
			continue
		}
		if done {
			completed++
		}
	}
	return completed, errors.Join(errs...)
}

func (o *OfflineTransferService) reconcileOne(
	ctx context.Context,
	request *domain.OfflineBuyerRequest,
	buyerID int64,
) (bool, error) {
	now := o.now()

	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		offlineRepo, offlineRepoErr := txRepo[OfflineTransferRepository](tx, repoargs.OfflineTransferRepoName)
		if offlineRepoErr != nil {
			return offlineRepoErr
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

		if _, err := offlineRepo.Complete(c, request.ID, buyerID, now); err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				// уже завершена параллельной сверкой
				return errSkipReconcile
			}
			return err //nolint:wrapcheck
		}

		holding, holdingErr := holdingRepo.FindByIDForUpdate(c, request.HoldingID)
		if holdingErr != nil {
			return holdingErr //nolint:wrapcheck
		}
		// вложение сменило владельца или основная сумма по нему уже выведена
		if holding.CheckReassignable(request.SellerID) != nil {
			return errSkipReconcile
		}

		users, lockErr := lockUsers(c, userRepo, request.SellerID, buyerID)
		if lockErr != nil {
			return lockErr
		}
		seller, buyer := users[0], users[1]

		seller.Wallet.Credit(request.SalePrice)
		seller.Wallet.ReleasePrincipal(holding.AmountInvested)
		buyer.Wallet.LockExternalPrincipal(request.SalePrice)

		if _, err := reassignHolding(c, holdingRepo, holding, buyerID, request.SalePrice, now); err != nil {
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
				Amount:      request.SalePrice,
				Status:      domain.TransactionStatusCompleted,
				HoldingID:   ptr(holding.ID),
				PropertyID:  ptr(holding.PropertyID),
				Description: fmt.Sprintf("offline sale of holding #%d", holding.ID),
			},
			repoargs.CreateTransaction{
				Reference:   newReference(),
				UserID:      buyerID,
				Type:        domain.TransactionInvestment,
				Amount:      request.SalePrice,
				Status:      domain.TransactionStatusCompleted,
				HoldingID:   ptr(holding.ID),
				PropertyID:  ptr(holding.PropertyID),
				Description: fmt.Sprintf("offline purchase of holding #%d", holding.ID),
			},
		)
	})
	if errors.Is(txErr, errSkipReconcile) {
		return false, nil
	}
	if txErr != nil {
		return false, txErr //nolint:wrapcheck
	}

	notify(ctx, o.notifier, request.SellerID, domain.NotificationTransferCompleted,
		"Your holding has been transferred to %s for ₹%s", request.BuyerEmail, request.SalePrice)
	notify(ctx, o.notifier, buyerID, domain.NotificationTransferCompleted,
		"A holding worth ₹%s has been transferred to you", request.SalePrice)
	return true, nil
}

func (o *OfflineTransferService) ListMine(ctx context.Context, actor domain.Actor) ([]domain.OfflineBuyerRequest, error) {
	requests, err := o.offlineRepo.GetBySellerID(ctx, actor.ID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return requests, nil
}
