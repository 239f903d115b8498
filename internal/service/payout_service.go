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
	"github.com/sirupsen/logrus"
)

const defaultGenerateBatch = 100

type PayoutService struct {
	uow         uow.UOW
	payoutRepo  PayoutRepository
	holdingRepo HoldingRepository
	notifier    Notifier
	log         *logrus.Entry
	now         func() time.Time
}

func NewPayoutService(u uow.UOW, notifier Notifier, l *logrus.Logger) (*PayoutService, error) {
	payoutRepo, payoutRepoErr := getRepo[PayoutRepository](u, repoargs.PayoutRepoName)
	if payoutRepoErr != nil {
		return nil, payoutRepoErr
	}
	holdingRepo, holdingRepoErr := getRepo[HoldingRepository](u, repoargs.HoldingRepoName)
	if holdingRepoErr != nil {
		return nil, holdingRepoErr
	}
	return &PayoutService{
		uow:         u,
		payoutRepo:  payoutRepo,
		holdingRepo: holdingRepo,
		notifier:    notifier,
		log:         l.WithField("module", "payout"),
		now:         time.Now,
	}, nil
}

// Now текущее время сервиса. Генерация выплат должна использовать одно и то же значение на весь прогон.
func (p *PayoutService) Now() time.Time {
	return p.now()
}

// DueHoldings возвращает страницу вложений, по которым пора создать выплату на момент asOf.
func (p *PayoutService) DueHoldings(
	ctx context.Context,
	asOf time.Time,
	afterID int64,
	limit uint,
) ([]domain.Holding, error) {
	holdings, err := p.holdingRepo.GetDueForPayout(ctx, repoargs.DueForPayout{
		DueBy:   asOf,
		AfterID: afterID,
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("getting holdings due for payout: %w", err)
	}
	return holdings, nil
}

// GenerateForHolding создает выплату по вложению за месяц его даты следующей выплаты и сдвигает эту дату на
// первое число следующего месяца. Все в одной транзакции.
//
// Возвращает domain.ErrPayoutExists, если выплата за этот месяц уже есть (уникальный ключ вложение+месяц+год),
// и domain.ErrInvalidState, если вложение уже не в периоде блокировки или выплата еще не наступила.
// Обе ошибки означают пропуск, а не сбой.
func (p *PayoutService) GenerateForHolding(ctx context.Context, holdingID int64, asOf time.Time) (*domain.Payout, error) {
	var payout *domain.Payout
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		holdingRepo, holdingRepoErr := txRepo[HoldingRepository](tx, repoargs.HoldingRepoName)
		if holdingRepoErr != nil {
			return holdingRepoErr
		}
		payoutRepo, payoutRepoErr := txRepo[PayoutRepository](tx, repoargs.PayoutRepoName)
		if payoutRepoErr != nil {
			return payoutRepoErr
		}

		holding, findErr := holdingRepo.FindByIDForUpdate(c, holdingID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if holding.EffectiveStatus(asOf) != domain.HoldingStatusLockIn || holding.NextPayoutDate.After(asOf) {
			return domain.ErrInvalidState
		}

		payoutDate := holding.NextPayoutDate
		nextPayoutDate := earnings.FollowingPayoutDate(payoutDate)

		var createErr error
		payout, createErr = payoutRepo.Create(c, repoargs.CreatePayout{
			UserID:         holding.UserID,
			HoldingID:      holding.ID,
			PropertyID:     holding.PropertyID,
			Amount:         earnings.MonthlyEarning(holding.AmountInvested, holding.PurchaseDate, payoutDate),
			PayoutDate:     payoutDate,
			NextPayoutDate: nextPayoutDate,
			Month:          int(payoutDate.Month()),
			Year:           payoutDate.Year(),
		})
		if createErr != nil {
			if errors.Is(createErr, domain.ErrDuplicateKey) {
				return domain.ErrPayoutExists
			}
			return createErr //nolint:wrapcheck
		}

		_, advanceErr := holdingRepo.AdvanceNextPayout(c, repoargs.AdvanceNextPayout{
			ID:             holding.ID,
			Expected:       payoutDate,
			Next:           nextPayoutDate,
			LastPayoutDate: payoutDate,
		})
		return transitionErr(advanceErr)
	})
	if txErr != nil {
		return nil, fmt.Errorf("generating payout for holding %d: %w", holdingID, txErr)
	}
	return payout, nil
}

type GenerateReport struct {
	Generated []domain.Payout
	Skipped   int
	Failed    int
}

// Generate создает выплаты по всем вложениям, по которым они наступили. Безопасен для повторного запуска:
// уже созданные выплаты пропускаются. Сбой по одному вложению не прерывает прогон.
func (p *PayoutService) Generate(ctx context.Context, actor domain.Actor) (*GenerateReport, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return p.GenerateAll(ctx, p.now(), defaultGenerateBatch)
}

// GenerateAll последовательно проходит все наступившие вложения страницами по batch штук.
func (p *PayoutService) GenerateAll(ctx context.Context, asOf time.Time, batch uint) (*GenerateReport, error) {
	report := new(GenerateReport)
	var afterID int64
	for {
		holdings, err := p.DueHoldings(ctx, asOf, afterID, batch)
		if err != nil {
			return report, err
		}
		if len(holdings) == 0 {
			return report, nil
		}
		for _, h := range holdings {
			payout, genErr := p.GenerateForHolding(ctx, h.ID, asOf)
			switch {
			case genErr == nil:
				report.Generated = append(report.Generated, *payout)
			case errors.Is(genErr, domain.ErrPayoutExists), errors.Is(genErr, domain.ErrInvalidState),
				errors.Is(genErr, domain.ErrAlreadyProcessed):
				report.Skipped++
			default:
				report.Failed++
				p.log.WithError(genErr).WithField("holdingID", h.ID).Error("payout generation failed")
			}
		}
		afterID = holdings[len(holdings)-1].ID
		if ctxErr := ctx.Err(); ctxErr != nil {
			return report, ctxErr //nolint:wrapcheck
		}
	}
}

type ProcessResult struct {
	PayoutID int64
	Outcome  domain.Outcome
	Payout   *domain.Payout
	Error    string
}

type ProcessReport struct {
	Results   []ProcessResult
	Processed int
	Skipped   int
	Failed    int
}

// Process проводит выплаты из списка ids. Каждая выплата проводится в своей транзакции:
//   - выплата не в статусе pending пропускается с результатом conflict;
//   - при успехе доход зачисляется на кошелек владельца, обновляются счетчики вложения, выплата получает статус
//     processed и пишется earning запись в журнал операций;
//   - при ошибке выплата помечается failed с причиной, обработка остальных продолжается.
func (p *PayoutService) Process(ctx context.Context, actor domain.Actor, ids []int64) (*ProcessReport, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	report := &ProcessReport{Results: make([]ProcessResult, 0, len(ids))}
	for _, id := range ids {
		payout, err := p.processOne(ctx, actor, id)
		result := ProcessResult{PayoutID: id, Outcome: domain.OutcomeOf(err), Payout: payout}
		switch {
		case err == nil:
			report.Processed++
			notify(ctx, p.notifier, payout.UserID, domain.NotificationPayoutCredited,
				"₹%s payout for %02d/%d has been credited to your wallet", payout.Amount, payout.Month, payout.Year)
		case errors.Is(err, domain.ErrAlreadyProcessed):
			report.Skipped++
			result.Error = err.Error()
		case errors.Is(err, domain.ErrRecordNotFound) && payout == nil:
			// выплаты с таким id нет, помечать нечего
			report.Failed++
			result.Error = err.Error()
		default:
			report.Failed++
			result.Error = failureReason(err)
			failed, failErr := p.markFailed(ctx, actor, id, result.Error)
			if failErr != nil {
				p.log.WithError(failErr).WithField("payoutID", id).Error("marking payout as failed")
			} else {
				result.Payout = failed
			}
		}
		report.Results = append(report.Results, result)
	}
	return report, nil
}

// processOne проводит одну выплату. payout возвращается не nil, если выплата найдена.
func (p *PayoutService) processOne(ctx context.Context, actor domain.Actor, id int64) (*domain.Payout, error) {
	var payout *domain.Payout
	var found bool
	now := p.now()

	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		payoutRepo, payoutRepoErr := txRepo[PayoutRepository](tx, repoargs.PayoutRepoName)
		if payoutRepoErr != nil {
			return payoutRepoErr
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

		current, findErr := payoutRepo.FindByID(c, id)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		found = true
		payout = current
		if current.Status != domain.PayoutStatusPending {
			return domain.ErrAlreadyProcessed
		}

		holding, holdingErr := holdingRepo.FindByIDForUpdate(c, current.HoldingID)
		if holdingErr != nil {
			return fmt.Errorf("holding: %w", holdingErr)
		}
		if holding.UserID != current.UserID {
			return domain.ErrHoldingOwnerChanged
		}

		owner, ownerErr := userRepo.FindByIDForUpdate(c, current.UserID)
		if ownerErr != nil {
			return fmt.Errorf("owner: %w", ownerErr)
		}
		owner.Wallet.CreditEarning(current.Amount)
		if err := saveWallet(c, userRepo, owner); err != nil {
			return err
		}

		if _, err := holdingRepo.ApplyPayout(c, repoargs.ApplyPayout{
			ID:             holding.ID,
			Amount:         current.Amount,
			PayoutDate:     current.PayoutDate,
			NextPayoutDate: current.NextPayoutDate,
		}); err != nil {
			return err //nolint:wrapcheck
		}

		processed, trErr := payoutRepo.Transition(c, repoargs.StatusTransition[domain.PayoutStatusType]{
			ID:      id,
			From:    domain.PayoutStatusPending,
			To:      domain.PayoutStatusProcessed,
			ActorID: ptr(actor.ID),
			At:      now,
		})
		if trErr != nil {
			return transitionErr(trErr)
		}

		if _, err := transactionRepo.Create(c, repoargs.CreateTransaction{
			Reference:   newReference(),
			UserID:      owner.ID,
			Type:        domain.TransactionEarning,
			Amount:      current.Amount,
			Status:      domain.TransactionStatusCompleted,
			HoldingID:   ptr(holding.ID),
			PropertyID:  ptr(current.PropertyID),
			Description: fmt.Sprintf("monthly payout %02d/%d", current.Month, current.Year),
		}); err != nil {
			return err //nolint:wrapcheck
		}
		payout = processed
		return nil
	})
	if !found {
		return nil, txErr
	}
	return payout, txErr
}

func (p *PayoutService) markFailed(ctx context.Context, actor domain.Actor, id int64, reason string) (*domain.Payout, error) {
	var payout *domain.Payout
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		payoutRepo, repoErr := txRepo[PayoutRepository](tx, repoargs.PayoutRepoName)
		if repoErr != nil {
			return repoErr
		}
		var err error
		payout, err = payoutRepo.Transition(c, repoargs.StatusTransition[domain.PayoutStatusType]{
			ID:      id,
			From:    domain.PayoutStatusPending,
			To:      domain.PayoutStatusFailed,
			ActorID: ptr(actor.ID),
			Reason:  reason,
			At:      p.now(),
		})
		return transitionErr(err)
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}
	return payout, nil
}

// Complete подтверждает, что проведенная выплата дошла до юзера.
func (p *PayoutService) Complete(ctx context.Context, actor domain.Actor, id int64) (*domain.Payout, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	var payout *domain.Payout
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		payoutRepo, repoErr := txRepo[PayoutRepository](tx, repoargs.PayoutRepoName)
		if repoErr != nil {
			return repoErr
		}
		current, findErr := payoutRepo.FindByID(c, id)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if current.Status != domain.PayoutStatusProcessed {
			return domain.ErrInvalidState
		}
		var err error
		payout, err = payoutRepo.Transition(c, repoargs.StatusTransition[domain.PayoutStatusType]{
			ID:      id,
			From:    domain.PayoutStatusProcessed,
			To:      domain.PayoutStatusCompleted,
			ActorID: ptr(actor.ID),
			At:      p.now(),
		})
		return transitionErr(err)
	})
	if txErr != nil {
		return nil, fmt.Errorf("completing payout %d: %w", id, txErr)
	}
	return payout, nil
}

func (p *PayoutService) ListMine(ctx context.Context, actor domain.Actor) ([]domain.Payout, error) {
	payouts, err := p.payoutRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return payouts, nil
}

func (p *PayoutService) ListByStatus(
	ctx context.Context,
	actor domain.Actor,
	status domain.PayoutStatusType,
	page repoargs.Page,
) ([]domain.Payout, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	payouts, err := p.payoutRepo.GetByStatus(ctx, status, page)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return payouts, nil
}

// failureReason короткая причина сбоя для сохранения в выплате.
func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrHoldingOwnerChanged):
		return "holding owner has changed since generation"
	case errors.Is(err, domain.ErrRecordNotFound):
		return "holding or owner not found"
	case errors.Is(err, domain.ErrWalletVersion):
		return "owner wallet was modified concurrently"
	default:
		return "processing error: " + err.Error()
	}
}
