package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/internal/service/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type HoldingServiceTestSuite struct {
	serviceSuite
	mockReconciler *mocks.MockOfflineReconciler
	service        *HoldingService
	user           domain.Actor
	property       *domain.Property
}

func TestHoldingServiceSuite(t *testing.T) {
	suite.Run(t, new(HoldingServiceTestSuite))
}

func (s *HoldingServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	s.mockReconciler = mocks.NewMockOfflineReconciler(s.mockCtrl)

	var err error
	s.service, err = NewHoldingService(s.mockUOW, s.mockReconciler, s.logger)
	s.Require().NoError(err)
	s.service.now = s.fixedNow

	s.user = domain.Actor{ID: 6, Role: domain.RoleUser}
	s.property = &domain.Property{
		ID:                7,
		MinInvestment:     rupees(100000),
		AvailableToInvest: rupees(1000000),
		LockInMonths:      24,
	}
}

func (s *HoldingServiceTestSuite) TestPurchase() {
	s.mockUserRepo.EXPECT().FindByID(gomock.Any(), s.user.ID).
		Return(&domain.User{ID: s.user.ID, KYCStatus: domain.KYCStatusApproved}, nil).AnyTimes()
	s.mockPropertyRepo.EXPECT().FindByID(gomock.Any(), s.property.ID).Return(s.property, nil).AnyTimes()

	s.Run("insufficient balance", func() {
		s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), s.user.ID).
			Return(&domain.User{ID: s.user.ID, Wallet: domain.Wallet{Balance: rupees(499999)}}, nil)

		_, err := s.service.Purchase(s.T().Context(), s.user, PurchaseArgs{PropertyID: 7, Amount: rupees(500000)})
		s.Require().ErrorIs(err, domain.ErrInsufficientBalance)
	})

	s.Run("property sold out concurrently", func() {
		s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), s.user.ID).
			Return(&domain.User{ID: s.user.ID, Wallet: domain.Wallet{Balance: rupees(500000)}}, nil)
		s.mockHoldingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Holding{ID: 1}, nil)
		s.mockPropertyRepo.EXPECT().Reserve(gomock.Any(), s.property.ID, gomock.Any()).
			Return(nil, domain.ErrRecordNotFound)

		_, err := s.service.Purchase(s.T().Context(), s.user, PurchaseArgs{PropertyID: 7, Amount: rupees(500000)})
		s.Require().ErrorIs(err, domain.ErrExceedsAvailable)
	})

	s.Run("purchased with property lock-in", func() {
		s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), s.user.ID).
			Return(&domain.User{ID: s.user.ID, Wallet: domain.Wallet{Balance: rupees(600000)}}, nil)
		s.mockHoldingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, args repoargs.CreateHolding) (*domain.Holding, error) {
				s.Equal(24, args.LockInMonths)
				s.Equal(s.now, args.PurchaseDate)
				s.True(rupees(2500).Equal(args.MonthlyEarning))
				return &domain.Holding{
					ID:             1,
					UserID:         args.UserID,
					AmountInvested: args.AmountInvested,
					PurchaseDate:   args.PurchaseDate,
					MaturityDate:   args.MaturityDate,
					LockInMonths:   args.LockInMonths,
					NextPayoutDate: args.NextPayoutDate,
				}, nil
			})
		s.mockPropertyRepo.EXPECT().Reserve(gomock.Any(), s.property.ID, decEq(500000)).Return(s.property, nil)
		var wallet domain.Wallet
		s.expectSaveWallet(s.user.ID, &wallet)
		s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
				s.Equal(domain.TransactionInvestment, args.Type)
				s.NotEmpty(args.Reference)
				return &domain.Transaction{ID: 1}, nil
			})

		view, err := s.service.Purchase(s.T().Context(), s.user, PurchaseArgs{PropertyID: 7, Amount: rupees(500000)})
		s.Require().NoError(err)
		s.Equal(domain.HoldingStatusLockIn, view.EffectiveStatus)
		s.False(view.CanWithdrawInvestment)
		s.True(rupees(100000).Equal(wallet.Balance))
		s.True(rupees(500000).Equal(wallet.LockedAmount))
	})
}

func (s *HoldingServiceTestSuite) TestPurchaseRequiresKYC() {
	s.mockUserRepo.EXPECT().FindByID(gomock.Any(), s.user.ID).
		Return(&domain.User{ID: s.user.ID, KYCStatus: domain.KYCStatusNotSubmitted}, nil)

	_, err := s.service.Purchase(s.T().Context(), s.user, PurchaseArgs{PropertyID: 7, Amount: rupees(500000)})
	s.Require().ErrorIs(err, domain.ErrKYCNotApproved)
}

// Список вложений запускает сверку передач и отдает статус, вычисленный на момент чтения.
func (s *HoldingServiceTestSuite) TestListReconcilesAndDerivesStatus() {
	user := &domain.User{ID: s.user.ID, KYCStatus: domain.KYCStatusApproved}
	s.mockUserRepo.EXPECT().FindByID(gomock.Any(), s.user.ID).Return(user, nil)
	s.mockReconciler.EXPECT().ReconcileForBuyer(gomock.Any(), user).Return(1, nil)

	lockIn := domain.Holding{
		ID: 1, UserID: s.user.ID, AmountInvested: rupees(100), MaturityDate: s.now.AddDate(0, 0, 1),
		Status: domain.HoldingStatusLockIn, MonthlyEarning: rupees(7),
	}
	matured := domain.Holding{
		ID: 2, UserID: s.user.ID, AmountInvested: rupees(200), MaturityDate: s.now,
		Status: domain.HoldingStatusLockIn,
	}
	closed := domain.Holding{
		ID: 3, UserID: s.user.ID, AmountInvested: rupees(300), PrincipalWithdrawn: rupees(300),
		MaturityDate: s.now.AddDate(-1, 0, 0), Status: domain.HoldingStatusClosed,
	}
	s.mockHoldingRepo.EXPECT().GetByUserID(gomock.Any(), s.user.ID).
		Return([]domain.Holding{lockIn, matured, closed}, nil)

	views, err := s.service.List(s.T().Context(), s.user)
	s.Require().NoError(err)
	s.Require().Len(views, 3)
	s.Equal(domain.HoldingStatusLockIn, views[0].EffectiveStatus)
	s.Equal(domain.HoldingStatusMatured, views[1].EffectiveStatus)
	s.True(views[1].CanWithdrawInvestment)
	s.Equal(domain.HoldingStatusClosed, views[2].EffectiveStatus)
	s.False(views[2].CanWithdrawInvestment)
}

func (s *HoldingServiceTestSuite) TestPortfolio() {
	s.mockUserRepo.EXPECT().FindByID(gomock.Any(), s.user.ID).
		Return(&domain.User{ID: s.user.ID, KYCStatus: domain.KYCStatusPending}, nil)
	s.mockHoldingRepo.EXPECT().GetByUserID(gomock.Any(), s.user.ID).Return([]domain.Holding{
		{
			ID: 1, AmountInvested: rupees(1000), MaturityDate: s.now.AddDate(0, 1, 0),
			MonthlyEarning: rupees(5), TotalEarningsReceived: rupees(15),
		},
		{
			ID: 2, AmountInvested: rupees(2000), PrincipalWithdrawn: rupees(500), MaturityDate: s.now.AddDate(0, -1, 0),
			TotalEarningsReceived: rupees(120),
		},
	}, nil)

	portfolio, err := s.service.Portfolio(s.T().Context(), s.user)
	s.Require().NoError(err)
	s.True(rupees(2500).Equal(portfolio.TotalInvested))
	s.True(rupees(135).Equal(portfolio.TotalEarnings))
	s.True(rupees(5).Equal(portfolio.MonthlyIncome))
	s.True(rupees(1500).Equal(portfolio.MaturedPrincipal))
}

func (s *HoldingServiceTestSuite) TestGetChecksOwner() {
	s.mockHoldingRepo.EXPECT().FindByID(gomock.Any(), int64(1)).
		Return(&domain.Holding{ID: 1, UserID: 99, MaturityDate: s.now.AddDate(1, 0, 0)}, nil).Times(2)

	_, err := s.service.Get(s.T().Context(), s.user, 1)
	s.Require().ErrorIs(err, domain.ErrNotOwner)

	view, err := s.service.Get(s.T().Context(), s.admin, 1)
	s.Require().NoError(err)
	s.Equal(domain.HoldingStatusLockIn, view.EffectiveStatus)
}
