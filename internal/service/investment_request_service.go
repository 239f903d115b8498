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

type InvestmentRequestService struct {
	uow          uow.UOW
	requestRepo  InvestmentRequestRepository
	userRepo     UserRepository
	propertyRepo PropertyRepository
	notifier     Notifier
	now          func() time.Time
}

func NewInvestmentRequestService(u uow.UOW, notifier Notifier) (*InvestmentRequestService, error) {
	requestRepo, requestRepoErr := getRepo[InvestmentRequestRepository](u, repoargs.InvestmentRequestRepoName)
	if requestRepoErr != nil {
		return nil, requestRepoErr
	}
	userRepo, userRepoErr := getRepo[UserRepository](u, repoargs.UserRepoName)
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	propertyRepo, propertyRepoErr := getRepo[PropertyRepository](u, repoargs.PropertyRepoName)
	if propertyRepoErr != nil {
		return nil, propertyRepoErr
	}
	return &InvestmentRequestService{
		uow:          u,
		requestRepo:  requestRepo,
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
		notifier:     notifier,
		now:          time.Now,
	}, nil
}

type SubmitInvestmentArgs struct {
	PropertyID int64
	Amount     decimal.Decimal
	TimePeriod int
	ProofURL   string
}

// Submit создает заявку на вложение, оплаченное вне платформы. Требует одобренный KYC и подтверждение оплаты.
// Лимиты объекта проверяются заранее, окончательно они проверяются при одобрении.
func (i *InvestmentRequestService) Submit(
	ctx context.Context,
	actor domain.Actor,
	args SubmitInvestmentArgs,
) (*domain.InvestmentRequest, error) {
	amount := floorAmount(args.Amount)
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if args.TimePeriod <= 0 {
		return nil, domain.ErrInvalidLockIn
	}
	proof := strings.TrimSpace(args.ProofURL)
	if proof == "" {
		return nil, domain.ErrProofRequired
	}

	user, userErr := i.userRepo.FindByID(ctx, actor.ID)
	if userErr != nil {
		return nil, fmt.Errorf("submitting investment request: %w", userErr)
	}
	if user.KYCStatus != domain.KYCStatusApproved {
		return nil, domain.ErrKYCNotApproved
	}

	property, propertyErr := i.propertyRepo.FindByID(ctx, args.PropertyID)
	if propertyErr != nil {
		return nil, fmt.Errorf("submitting investment request: %w", propertyErr)
	}
	if err := checkPropertyLimits(property, amount); err != nil {
		return nil, err
	}

	request, err := i.requestRepo.Create(ctx, repoargs.CreateInvestmentRequest{
		UserID:     actor.ID,
		PropertyID: property.ID,
		Amount:     amount,
		TimePeriod: args.TimePeriod,
		ProofURL:   proof,
	})
	if err != nil {
		return nil, fmt.Errorf("submitting investment request: %w", err)
	}

	notify(ctx, i.notifier, actor.ID, domain.NotificationInvestmentSubmitted,
		"Your investment request of ₹%s in %s is under review", amount, property.Name)
	return request, nil
}

// Approve одобряет заявку и создает по ней вложение. Средства считаются полученными вне платформы, поэтому
// баланс кошелька не списывается. Повторное одобрение возвращает domain.ErrAlreadyProcessed.
func (i *InvestmentRequestService) Approve(
	ctx context.Context,
	actor domain.Actor,
	requestID int64,
) (*domain.InvestmentRequest, *domain.Holding, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, nil, err
	}
	now := i.now()

	var request *domain.InvestmentRequest
	var holding *domain.Holding
	txErr := i.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		requestRepo, repoErr := txRepo[InvestmentRequestRepository](tx, repoargs.InvestmentRequestRepoName)
		if repoErr != nil {
			return repoErr
		}
		current, findErr := requestRepo.FindByID(c, requestID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if current.Status != domain.InvestmentRequestPending {
			return domain.ErrAlreadyProcessed
		}

		if _, err := requestRepo.Transition(c, repoargs.StatusTransition[domain.InvestmentRequestStatusType]{
			ID:      requestID,
			From:    domain.InvestmentRequestPending,
			To:      domain.InvestmentRequestApproved,
			ActorID: ptr(actor.ID),
			At:      now,
		}); err != nil {
			return transitionErr(err)
		}

		var holdingErr error
		holding, holdingErr = createHolding(c, tx, now, createHoldingArgs{
			UserID:       current.UserID,
			PropertyID:   current.PropertyID,
			Amount:       current.AmountInvested,
			LockInMonths: current.TimePeriod,
			FromBalance:  false,
			Description:  fmt.Sprintf("investment request #%d", current.ID),
		})
		if holdingErr != nil {
			return holdingErr
		}

		var attachErr error
		request, attachErr = requestRepo.AttachHolding(c, requestID, holding.ID)
		return attachErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, nil, fmt.Errorf("approving investment request %d: %w", requestID, txErr)
	}

	notify(ctx, i.notifier, request.UserID, domain.NotificationInvestmentApproved,
		"Your investment of ₹%s has been approved", request.AmountInvested)
	return request, holding, nil
}

// Reject отклоняет заявку. Причина обязательна.
func (i *InvestmentRequestService) Reject(
	ctx context.Context,
	actor domain.Actor,
	requestID int64,
	reason string,
) (*domain.InvestmentRequest, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.ErrReasonRequired
	}

	var request *domain.InvestmentRequest
	txErr := i.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		requestRepo, repoErr := txRepo[InvestmentRequestRepository](tx, repoargs.InvestmentRequestRepoName)
		if repoErr != nil {
			return repoErr
		}
		current, findErr := requestRepo.FindByID(c, requestID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if current.Status != domain.InvestmentRequestPending {
			return domain.ErrAlreadyProcessed
		}
		var err error
		request, err = requestRepo.Transition(c, repoargs.StatusTransition[domain.InvestmentRequestStatusType]{
			ID:      requestID,
			From:    domain.InvestmentRequestPending,
			To:      domain.InvestmentRequestRejected,
			ActorID: ptr(actor.ID),
			Reason:  reason,
			At:      i.now(),
		})
		return transitionErr(err)
	})
	if txErr != nil {
		return nil, fmt.Errorf("rejecting investment request %d: %w", requestID, txErr)
	}

	notify(ctx, i.notifier, request.UserID, domain.NotificationInvestmentRejected,
		"Your investment request was rejected: %s", reason)
	return request, nil
}

func (i *InvestmentRequestService) ListMine(ctx context.Context, actor domain.Actor) ([]domain.InvestmentRequest, error) {
	requests, err := i.requestRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return requests, nil
}

func (i *InvestmentRequestService) ListByStatus(
	ctx context.Context,
	actor domain.Actor,
	status domain.InvestmentRequestStatusType,
	page repoargs.Page,
) ([]domain.InvestmentRequest, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	requests, err := i.requestRepo.GetByStatus(ctx, status, page)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return requests, nil
}
