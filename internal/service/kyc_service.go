package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/pkg/uow"
	"github.com/sirupsen/logrus"
)

type KYCService struct {
	uow        uow.UOW
	userRepo   UserRepository
	reconciler OfflineReconciler
	notifier   Notifier
	log        *logrus.Entry
}

func NewKYCService(
	u uow.UOW,
	reconciler OfflineReconciler,
	notifier Notifier,
	l *logrus.Logger,
) (*KYCService, error) {
	userRepo, err := getRepo[UserRepository](u, repoargs.UserRepoName)
	if err != nil {
		return nil, err
	}
	return &KYCService{
		uow:        u,
		userRepo:   userRepo,
		reconciler: reconciler,
		notifier:   notifier,
		log:        l.WithField("module", "kyc"),
	}, nil
}

// Submit отправляет документ юзера на проверку. Повторная отправка возможна только после отказа.
func (k *KYCService) Submit(ctx context.Context, actor domain.Actor, documentURL string) (*domain.User, error) {
	documentURL = strings.TrimSpace(documentURL)
	if documentURL == "" {
		return nil, domain.ErrDocumentRequired
	}

	user, err := k.transition(ctx, repoargs.UpdateKYC{
		UserID:      actor.ID,
		From:        []domain.KYCStatusType{domain.KYCStatusNotSubmitted, domain.KYCStatusRejected},
		To:          domain.KYCStatusPending,
		DocumentURL: &documentURL,
	})
	if err != nil {
		return nil, fmt.Errorf("submitting kyc: %w", err)
	}
	return user, nil
}

// Review выставляет KYC статус юзера. Одобрение запускает завершение ожидающих передач вложений, где юзер
// указан покупателем. Ошибка завершения передач на результат проверки не влияет.
func (k *KYCService) Review(
	ctx context.Context,
	actor domain.Actor,
	userID int64,
	status domain.KYCStatusType,
) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if status != domain.KYCStatusApproved && status != domain.KYCStatusRejected && status != domain.KYCStatusPending {
		return nil, domain.ErrInvalidStatus
	}

	from := make([]domain.KYCStatusType, 0, 3) //nolint:mnd
	for _, s := range []domain.KYCStatusType{
		domain.KYCStatusNotSubmitted,
		domain.KYCStatusPending,
		domain.KYCStatusApproved,
		domain.KYCStatusRejected,
	} {
		if s != status {
			from = append(from, s)
		}
	}

	user, err := k.transition(ctx, repoargs.UpdateKYC{UserID: userID, From: from, To: status})
	if err != nil {
		return nil, fmt.Errorf("reviewing kyc of user %d: %w", userID, err)
	}

	notify(ctx, k.notifier, user.ID, domain.NotificationKYCUpdated, "Your KYC status is now %s", user.KYCStatus)

	if user.KYCStatus == domain.KYCStatusApproved && k.reconciler != nil {
		completed, reconcileErr := k.reconciler.ReconcileForBuyer(ctx, user)
		if reconcileErr != nil {
			k.log.WithError(reconcileErr).WithField("userID", user.ID).Error("offline transfers reconciliation failed")
		} else if completed > 0 {
			k.log.WithField("userID", user.ID).Infof("completed %d offline transfers", completed)
		}
	}
	return user, nil
}

func (k *KYCService) ListByStatus(
	ctx context.Context,
	actor domain.Actor,
	status domain.KYCStatusType,
	page repoargs.Page,
) ([]domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	users, err := k.userRepo.GetByKYCStatus(ctx, status, page)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return users, nil
}

// transition проверяет, что юзер существует, и атомарно меняет статус. Если статус уже не подходит,
// возвращает domain.ErrInvalidState.
func (k *KYCService) transition(ctx context.Context, args repoargs.UpdateKYC) (*domain.User, error) {
	var user *domain.User
	txErr := k.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, repoErr := txRepo[UserRepository](tx, repoargs.UserRepoName)
		if repoErr != nil {
			return repoErr
		}
		if _, findErr := userRepo.FindByIDForUpdate(c, args.UserID); findErr != nil {
			return findErr //nolint:wrapcheck
		}
		var err error
		user, err = userRepo.UpdateKYC(c, args)
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				return domain.ErrInvalidState
			}
			return err //nolint:wrapcheck
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}
	return user, nil
}
