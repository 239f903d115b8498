package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type HoldingService struct {
	uow         uow.UOW
	holdingRepo HoldingRepository
	userRepo    UserRepository
	reconciler  OfflineReconciler
	log         *logrus.Entry
	now         func() time.Time
}

func NewHoldingService(u uow.UOW, reconciler OfflineReconciler, l *logrus.Logger) (*HoldingService, error) {
	holdingRepo, holdingRepoErr := getRepo[HoldingRepository](u, repoargs.HoldingRepoName)
	if holdingRepoErr != nil {
		return nil, holdingRepoErr
	}
	userRepo, userRepoErr := getRepo[UserRepository](u, repoargs.UserRepoName)
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &HoldingService{
		uow:         u,
		holdingRepo: holdingRepo,
		userRepo:    userRepo,
		reconciler:  reconciler,
		log:         l.WithField("module", "holding"),
		now:         time.Now,
	}, nil
}

type PurchaseArgs struct {
	PropertyID int64
	Amount     decimal.Decimal
	// LockInMonths срок блокировки. Ноль означает срок объекта.
	LockInMonths int
}

// Purchase покупает долю в объекте за счет баланса кошелька. Требует одобренный KYC.
func (h *HoldingService) Purchase(ctx context.Context, actor domain.Actor, args PurchaseArgs) (*domain.HoldingView, error) {
	if args.LockInMonths < 0 {
		return nil, domain.ErrInvalidLockIn
	}
	now := h.now()

	var holding *domain.Holding
	txErr := h.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, repoErr := txRepo[UserRepository](tx, repoargs.UserRepoName)
		if repoErr != nil {
			return repoErr
		}
		user, userErr := userRepo.FindByID(c, actor.ID)
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}
		if user.KYCStatus != domain.KYCStatusApproved {
			return domain.ErrKYCNotApproved
		}

		var err error
		holding, err = createHolding(c, tx, now, createHoldingArgs{
			UserID:       actor.ID,
			PropertyID:   args.PropertyID,
			Amount:       args.Amount,
			LockInMonths: args.LockInMonths,
			FromBalance:  true,
			Description:  "direct purchase",
		})
		return err
	})
	if txErr != nil {
		return nil, fmt.Errorf("purchasing holding: %w", txErr)
	}
	view := holding.View(now)
	return &view, nil
}

// List возвращает вложения юзера со статусом на текущий момент. Перед чтением для юзера с одобренным KYC
// повторно запускается завершение передач вне платформы на случай, если при одобрении KYC оно не прошло.
func (h *HoldingService) List(ctx context.Context, actor domain.Actor) ([]domain.HoldingView, error) {
	h.reconcile(ctx, actor.ID)

	holdings, err := h.holdingRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("listing holdings: %w", err)
	}
	now := h.now()
	views := make([]domain.HoldingView, len(holdings))
	for i := range holdings {
		views[i] = holdings[i].View(now)
	}
	return views, nil
}

// Get возвращает вложение владельцу или администратору.
func (h *HoldingService) Get(ctx context.Context, actor domain.Actor, id int64) (*domain.HoldingView, error) {
	holding, err := h.holdingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if holding.UserID != actor.ID && !actor.IsAdmin() {
		return nil, domain.ErrNotOwner
	}
	view := holding.View(h.now())
	return &view, nil
}

type Portfolio struct {
	Holdings         []domain.HoldingView
	TotalInvested    decimal.Decimal
	TotalEarnings    decimal.Decimal
	MonthlyIncome    decimal.Decimal
	MaturedPrincipal decimal.Decimal
}

// Portfolio сводка по открытым вложениям юзера.
func (h *HoldingService) Portfolio(ctx context.Context, actor domain.Actor) (*Portfolio, error) {
	views, err := h.List(ctx, actor)
	if err != nil {
		return nil, err
	}
	res := &Portfolio{Holdings: views}
	for _, v := range views {
		if v.EffectiveStatus == domain.HoldingStatusClosed {
			continue
		}
		res.TotalInvested = res.TotalInvested.Add(v.RemainingPrincipal())
		res.TotalEarnings = res.TotalEarnings.Add(v.TotalEarningsReceived)
		switch v.EffectiveStatus {
		case domain.HoldingStatusLockIn:
			res.MonthlyIncome = res.MonthlyIncome.Add(v.MonthlyEarning)
		case domain.HoldingStatusMatured:
			res.MaturedPrincipal = res.MaturedPrincipal.Add(v.RemainingPrincipal())
		}
	}
	return res, nil
}

func (h *HoldingService) reconcile(ctx context.Context, userID int64) {
	if h.reconciler == nil {
		return
	}
	user, err := h.userRepo.FindByID(ctx, userID)
	if err != nil || user.KYCStatus != domain.KYCStatusApproved {
		return
	}
	if _, reconcileErr := h.reconciler.ReconcileForBuyer(ctx, user); reconcileErr != nil {
		h.log.WithError(reconcileErr).WithField("userID", userID).Warn("offline transfers reconciliation failed")
	}
}
