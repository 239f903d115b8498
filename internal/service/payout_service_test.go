package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type PayoutServiceTestSuite struct {
	serviceSuite
	service *PayoutService
}

func TestPayoutServiceSuite(t *testing.T) {
	suite.Run(t, new(PayoutServiceTestSuite))
}

func (s *PayoutServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()

	var err error
	s.service, err = NewPayoutService(s.mockUOW, s.mockNotifier, s.logger)
	s.Require().NoError(err)
	s.service.now = s.fixedNow
}

func (s *PayoutServiceTestSuite) dueHolding(id int64) domain.Holding {
	purchase := time.Date(2024, time.November, 20, 0, 0, 0, 0, time.UTC)
	return domain.Holding{
		ID:             id,
		UserID:         100 + id,
		PropertyID:     7,
		AmountInvested: rupees(500000),
		PurchaseDate:   purchase,
		MaturityDate:   purchase.AddDate(0, 12, 0),
		LockInMonths:   12,
		MonthlyEarning: rupees(2500),
		Status:         domain.HoldingStatusLockIn,
		NextPayoutDate: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *PayoutServiceTestSuite) TestGenerateForHolding() {
	holding := s.dueHolding(1)
	payoutDate := holding.NextPayoutDate
	next := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	s.mockHoldingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).Return(&holding, nil)
	s.mockPayoutRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreatePayout) (*domain.Payout, error) {
			s.Equal(holding.UserID, args.UserID)
			s.Equal(holding.ID, args.HoldingID)
			s.Equal(holding.PropertyID, args.PropertyID)
			s.True(rupees(2500).Equal(args.Amount), "amount %s", args.Amount)
			s.Equal(payoutDate, args.PayoutDate)
			s.Equal(next, args.NextPayoutDate)
			s.Equal(2, args.Month)
			s.Equal(2025, args.Year)
			return &domain.Payout{ID: 50, HoldingID: 1, Amount: args.Amount, Month: 2, Year: 2025}, nil
		})
	s.mockHoldingRepo.EXPECT().AdvanceNextPayout(gomock.Any(), repoargs.AdvanceNextPayout{
		ID:             1,
		Expected:       payoutDate,
		Next:           next,
		LastPayoutDate: payoutDate,
	}).Return(&holding, nil)

	payout, err := s.service.GenerateForHolding(s.T().Context(), 1, s.now)
	s.Require().NoError(err)
	s.Equal(int64(50), payout.ID)
}

func (s *PayoutServiceTestSuite) TestGenerateForHoldingSkips() {
	s.Run("payout already exists", func() {
		holding := s.dueHolding(1)
		s.mockHoldingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).Return(&holding, nil)
		s.mockPayoutRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDuplicateKey)

		_, err := s.service.GenerateForHolding(s.T().Context(), 1, s.now)
		s.Require().ErrorIs(err, domain.ErrPayoutExists)
	})

	s.Run("matured holding", func() {
		holding := s.dueHolding(1)
		holding.MaturityDate = s.now.AddDate(0, 0, -1)
		s.mockHoldingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).Return(&holding, nil)

		_, err := s.service.GenerateForHolding(s.T().Context(), 1, s.now)
		s.Require().ErrorIs(err, domain.ErrInvalidState)
	})

	s.Run("not due yet", func() {
		holding := s.dueHolding(1)
		holding.NextPayoutDate = time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
		s.mockHoldingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).Return(&holding, nil)

		_, err := s.service.GenerateForHolding(s.T().Context(), 1, s.now)
		s.Require().ErrorIs(err, domain.ErrInvalidState)
	})
}

// Повторный прогон в тот же день не создает дубликатов: уникальный ключ отдает ErrDuplicateKey, выплата
// пропускается.
func (s *PayoutServiceTestSuite) TestGenerateTwiceIsIdempotent() {
	first, second := s.dueHolding(1), s.dueHolding(2)

	s.mockHoldingRepo.EXPECT().
		GetDueForPayout(gomock.Any(), repoargs.DueForPayout{DueBy: s.now, Limit: defaultGenerateBatch}).
		Return([]domain.Holding{first, second}, nil).Times(2)
	s.mockHoldingRepo.EXPECT().
		GetDueForPayout(gomock.Any(), repoargs.DueForPayout{DueBy: s.now, AfterID: 2, Limit: defaultGenerateBatch}).
		Return(nil, nil).Times(2)
	s.mockHoldingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).Return(&first, nil).Times(2)
	s.mockHoldingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(2)).Return(&second, nil).Times(2)

	created := make(map[[3]int64]bool)
	s.mockPayoutRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreatePayout) (*domain.Payout, error) {
			key := [3]int64{args.HoldingID, int64(args.Month), int64(args.Year)}
			if created[key] {
				return nil, domain.ErrDuplicateKey
			}
			created[key] = true
			return &domain.Payout{ID: args.HoldingID, HoldingID: args.HoldingID, Month: args.Month, Year: args.Year}, nil
		}).Times(4)
	s.mockHoldingRepo.EXPECT().AdvanceNextPayout(gomock.Any(), gomock.Any()).Return(&first, nil).Times(2)

	firstRun, err := s.service.Generate(s.T().Context(), s.admin)
	s.Require().NoError(err)
	s.Len(firstRun.Generated, 2)
	s.Zero(firstRun.Skipped)

	secondRun, err := s.service.Generate(s.T().Context(), s.admin)
	s.Require().NoError(err)
	s.Empty(secondRun.Generated)
	s.Equal(2, secondRun.Skipped)
	s.Zero(secondRun.Failed)
}

func (s *PayoutServiceTestSuite) TestGenerateRequiresAdmin() {
	_, err := s.service.Generate(s.T().Context(), domain.Actor{ID: 5, Role: domain.RoleUser})
	s.Require().ErrorIs(err, domain.ErrAdminRequired)
}

func (s *PayoutServiceTestSuite) TestProcessEmptyBatch() {
	_, err := s.service.Process(s.T().Context(), s.admin, nil)
	s.Require().ErrorIs(err, domain.ErrEmptyBatch)
}

// Партия из трех выплат: первая проводится, вторая уже проведена, у третьей нет владельца.
// Сбой одной выплаты не останавливает обработку остальных.
func (s *PayoutServiceTestSuite) TestProcessPartialFailure() {
	holding := s.dueHolding(1)
	owner := &domain.User{ID: holding.UserID, Wallet: domain.Wallet{Balance: rupees(100), Version: 3}}
	pending := &domain.Payout{
		ID: 10, UserID: holding.UserID, HoldingID: 1, PropertyID: 7, Amount: rupees(2500),
		PayoutDate:     time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		NextPayoutDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		Status:         domain.PayoutStatusPending, Month: 2, Year: 2025,
	}
	processed := *pending
	processed.Status = domain.PayoutStatusProcessed

	orphanHolding := s.dueHolding(3)
	orphan := &domain.Payout{
		ID: 12, UserID: orphanHolding.UserID, HoldingID: 3, Amount: rupees(2500),
		Status: domain.PayoutStatusPending,
	}

	// первая
	s.mockPayoutRepo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(pending, nil)
	s.mockHoldingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).Return(&holding, nil)
	s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), holding.UserID).Return(owner, nil)
	var wallet domain.Wallet
	s.expectSaveWallet(holding.UserID, &wallet)
	s.mockHoldingRepo.EXPECT().ApplyPayout(gomock.Any(), repoargs.ApplyPayout{
		ID:             1,
		Amount:         rupees(2500),
		PayoutDate:     pending.PayoutDate,
		NextPayoutDate: pending.NextPayoutDate,
	}).Return(&holding, nil)
	s.mockPayoutRepo.EXPECT().Transition(gomock.Any(), repoargs.StatusTransition[domain.PayoutStatusType]{
		ID:      10,
		From:    domain.PayoutStatusPending,
		To:      domain.PayoutStatusProcessed,
		ActorID: ptr(s.admin.ID),
		At:      s.now,
	}).Return(&processed, nil)
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			s.Equal(domain.TransactionEarning, args.Type)
			s.True(rupees(2500).Equal(args.Amount))
			return &domain.Transaction{ID: 1}, nil
		})
	s.expectNotify(holding.UserID, domain.NotificationPayoutCredited)

	// вторая
	s.mockPayoutRepo.EXPECT().FindByID(gomock.Any(), int64(11)).
		Return(&domain.Payout{ID: 11, Status: domain.PayoutStatusProcessed}, nil)

	// третья
	s.mockPayoutRepo.EXPECT().FindByID(gomock.Any(), int64(12)).Return(orphan, nil)
	s.mockHoldingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(3)).Return(&orphanHolding, nil)
	s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), orphanHolding.UserID).Return(nil, domain.ErrRecordNotFound)
	s.mockPayoutRepo.EXPECT().Transition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.StatusTransition[domain.PayoutStatusType]) (*domain.Payout, error) {
			s.Equal(int64(12), args.ID)
			s.Equal(domain.PayoutStatusFailed, args.To)
			s.NotEmpty(args.Reason)
			failed := *orphan
			failed.Status = domain.PayoutStatusFailed
			failed.FailureReason = args.Reason
			return &failed, nil
		})

	report, err := s.service.Process(s.T().Context(), s.admin, []int64{10, 11, 12})
	s.Require().NoError(err)
	s.Equal(1, report.Processed)
	s.Equal(1, report.Skipped)
	s.Equal(1, report.Failed)
	s.Require().Len(report.Results, 3)
	s.Equal(domain.OutcomeSuccess, report.Results[0].Outcome)
	s.Equal(domain.OutcomeConflict, report.Results[1].Outcome)
	s.Equal(domain.OutcomeNotFound, report.Results[2].Outcome)
	s.Equal(domain.PayoutStatusFailed, report.Results[2].Payout.Status)

	// сохранение дохода: заработок владельца растет ровно на сумму выплаты
	s.True(rupees(2500).Equal(wallet.EarningsReceived))
	s.True(rupees(2600).Equal(wallet.Balance))
}

func (s *PayoutServiceTestSuite) TestProcessMissingPayout() {
	s.mockPayoutRepo.EXPECT().FindByID(gomock.Any(), int64(77)).Return(nil, domain.ErrRecordNotFound)

	report, err := s.service.Process(s.T().Context(), s.admin, []int64{77})
	s.Require().NoError(err)
	s.Equal(1, report.Failed)
	s.Nil(report.Results[0].Payout)
	s.Equal(domain.OutcomeNotFound, report.Results[0].Outcome)
}

func (s *PayoutServiceTestSuite) TestComplete() {
	s.Run("only processed payouts", func() {
		s.mockPayoutRepo.EXPECT().FindByID(gomock.Any(), int64(10)).
			Return(&domain.Payout{ID: 10, Status: domain.PayoutStatusPending}, nil)

		_, err := s.service.Complete(s.T().Context(), s.admin, 10)
		s.Require().ErrorIs(err, domain.ErrInvalidState)
	})

	s.Run("processed", func() {
		s.mockPayoutRepo.EXPECT().FindByID(gomock.Any(), int64(10)).
			Return(&domain.Payout{ID: 10, Status: domain.PayoutStatusProcessed}, nil)
		s.mockPayoutRepo.EXPECT().Transition(gomock.Any(), gomock.Any()).
			Return(&domain.Payout{ID: 10, Status: domain.PayoutStatusCompleted}, nil)

		payout, err := s.service.Complete(s.T().Context(), s.admin, 10)
		s.Require().NoError(err)
		s.Equal(domain.PayoutStatusCompleted, payout.Status)
	})
}

func (s *PayoutServiceTestSuite) TestFailureReason() {
	s.Contains(failureReason(domain.ErrHoldingOwnerChanged), "owner")
	s.Contains(failureReason(errors.New("boom")), "boom")
}
