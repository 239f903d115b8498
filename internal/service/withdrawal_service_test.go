package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type WithdrawalServiceTestSuite struct {
	serviceSuite
	service *WithdrawalService
	user    domain.Actor
	bank    domain.BankDetails
}

func TestWithdrawalServiceSuite(t *testing.T) {
	suite.Run(t, new(WithdrawalServiceTestSuite))
}

func (s *WithdrawalServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()

	var err error
	s.service, err = NewWithdrawalService(s.mockUOW, s.mockNotifier)
	s.Require().NoError(err)
	s.service.now = s.fixedNow

	s.user = domain.Actor{ID: 5, Role: domain.RoleUser}
	s.bank = domain.BankDetails{AccountHolder: "A B", AccountNumber: "000123", IFSC: "HDFC0001", BankName: "HDFC"}
}

func (s *WithdrawalServiceTestSuite) maturedHolding(id int64, amount, withdrawn int64) domain.Holding {
	return domain.Holding{
		ID:                 id,
		UserID:             s.user.ID,
		AmountInvested:     rupees(amount),
		PrincipalWithdrawn: rupees(withdrawn),
		MaturityDate:       s.now.AddDate(0, -int(id), 0),
	}
}

func (s *WithdrawalServiceTestSuite) pending(t domain.WithdrawalType, amount int64) *domain.Withdrawal {
	return &domain.Withdrawal{
		ID:          30,
		UserID:      s.user.ID,
		Amount:      rupees(amount),
		Type:        t,
		BankDetails: s.bank,
		Status:      domain.WithdrawalStatusPending,
	}
}

func (s *WithdrawalServiceTestSuite) TestRequestValidation() {
	cases := []struct {
		name     string
		args     RequestWithdrawalArgs
		expected error
	}{
		{
			name:     "zero amount",
			args:     RequestWithdrawalArgs{Type: domain.WithdrawalEarnings, BankDetails: s.bank},
			expected: domain.ErrInvalidAmount,
		},
		{
			name:     "unknown type",
			args:     RequestWithdrawalArgs{Amount: rupees(10), Type: "bonus", BankDetails: s.bank},
			expected: domain.ErrInvalidType,
		},
		{
			name:     "no bank details",
			args:     RequestWithdrawalArgs{Amount: rupees(10), Type: domain.WithdrawalEarnings},
			expected: domain.ErrBankDetailsMissing,
		},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.service.Request(s.T().Context(), s.user, tc.args)
			s.Require().ErrorIs(err, tc.expected)
		})
	}
}

func (s *WithdrawalServiceTestSuite) TestRequestChecksFunds() {
	s.mockUserRepo.EXPECT().FindByID(gomock.Any(), s.user.ID).
		Return(&domain.User{ID: s.user.ID, Wallet: domain.Wallet{EarningsReceived: rupees(500)}}, nil).AnyTimes()

	s.Run("earnings", func() {
		_, err := s.service.Request(s.T().Context(), s.user, RequestWithdrawalArgs{
			Amount: rupees(501), Type: domain.WithdrawalEarnings, BankDetails: s.bank,
		})
		s.Require().ErrorIs(err, domain.ErrInsufficientEarnings)
	})

	s.Run("principal", func() {
		s.mockHoldingRepo.EXPECT().SumMaturedPrincipal(gomock.Any(), s.user.ID, s.now).Return(rupees(1000), nil)
		_, err := s.service.Request(s.T().Context(), s.user, RequestWithdrawalArgs{
			Amount: rupees(1001), Type: domain.WithdrawalInvestment, BankDetails: s.bank,
		})
		s.Require().ErrorIs(err, domain.ErrInsufficientPrincipal)
	})

	s.Run("created", func() {
		s.mockWithdrawalRepo.EXPECT().Create(gomock.Any(), repoargs.CreateWithdrawal{
			UserID:      s.user.ID,
			Amount:      rupees(400),
			Type:        domain.WithdrawalEarnings,
			BankDetails: s.bank,
		}).Return(s.pending(domain.WithdrawalEarnings, 400), nil)
		s.expectNotify(s.user.ID, domain.NotificationWithdrawalRequested)

		withdrawal, err := s.service.Request(s.T().Context(), s.user, RequestWithdrawalArgs{
			Amount: decimal.RequireFromString("400.75"), Type: domain.WithdrawalEarnings, BankDetails: s.bank,
		})
		s.Require().NoError(err)
		s.Equal(domain.WithdrawalStatusPending, withdrawal.Status)
	})
}

func (s *WithdrawalServiceTestSuite) expectApproveStart(w *domain.Withdrawal) {
	approved := *w
	approved.Status = domain.WithdrawalStatusApproved
	s.mockWithdrawalRepo.EXPECT().FindByID(gomock.Any(), w.ID).Return(w, nil)
	s.mockWithdrawalRepo.EXPECT().Transition(gomock.Any(), repoargs.StatusTransition[domain.WithdrawalStatusType]{
		ID:      w.ID,
		From:    domain.WithdrawalStatusPending,
		To:      domain.WithdrawalStatusApproved,
		ActorID: ptr(s.admin.ID),
		At:      s.now,
	}).Return(&approved, nil)
}

// Вывод основной суммы расходует вложения начиная с самого раннего срока погашения и закрывает полностью
// выведенные.
func (s *WithdrawalServiceTestSuite) TestApproveInvestment() {
	w := s.pending(domain.WithdrawalInvestment, 150000)
	s.expectApproveStart(w)

	user := &domain.User{ID: s.user.ID, Wallet: domain.Wallet{
		Balance:          rupees(200000),
		LockedAmount:     rupees(300000),
		TotalInvestments: rupees(300000),
		EarningsReceived: rupees(6000),
		Version:          2,
	}}
	s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), s.user.ID).Return(user, nil)

	older := s.maturedHolding(2, 100000, 0)
	newer := s.maturedHolding(1, 200000, 0)
	s.mockHoldingRepo.EXPECT().GetMaturedOpenByUser(gomock.Any(), s.user.ID, s.now).
		Return([]domain.Holding{older, newer}, nil)
	gomock.InOrder(
		s.mockHoldingRepo.EXPECT().AddPrincipalWithdrawn(gomock.Any(), older.ID, decEq(100000)).Return(&older, nil),
		s.mockHoldingRepo.EXPECT().AddPrincipalWithdrawn(gomock.Any(), newer.ID, decEq(50000)).Return(&newer, nil),
	)
	s.mockHoldingRepo.EXPECT().SumMaturedPrincipal(gomock.Any(), s.user.ID, s.now).Return(rupees(150000), nil)

	var wallet domain.Wallet
	s.expectSaveWallet(s.user.ID, &wallet)
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			s.Equal(domain.TransactionWithdrawal, args.Type)
			s.True(rupees(150000).Equal(args.Amount))
			return &domain.Transaction{ID: 1}, nil
		})
	s.expectNotify(s.user.ID, domain.NotificationWithdrawalApproved)

	res, err := s.service.Approve(s.T().Context(), s.admin, w.ID)
	s.Require().NoError(err)
	s.Equal(domain.WithdrawalStatusApproved, res.Status)

	s.True(rupees(50000).Equal(wallet.Balance))
	s.True(rupees(150000).Equal(wallet.LockedAmount))
	s.True(rupees(150000).Equal(wallet.TotalInvestments))
	// пересчитано по фактическим погашенным вложениям
	s.True(rupees(156000).Equal(wallet.WithdrawableBalance))
}

func (s *WithdrawalServiceTestSuite) TestApproveEarnings() {
	w := s.pending(domain.WithdrawalEarnings, 2000)
	s.expectApproveStart(w)

	s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), s.user.ID).
		Return(&domain.User{ID: s.user.ID, Wallet: domain.Wallet{
			Balance:             rupees(5000),
			EarningsReceived:    rupees(5000),
			WithdrawableBalance: rupees(99999),
		}}, nil)
	s.mockHoldingRepo.EXPECT().SumMaturedPrincipal(gomock.Any(), s.user.ID, s.now).Return(decimal.Zero, nil)

	var wallet domain.Wallet
	s.expectSaveWallet(s.user.ID, &wallet)
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Transaction{ID: 1}, nil)
	s.expectNotify(s.user.ID, domain.NotificationWithdrawalApproved)

	_, err := s.service.Approve(s.T().Context(), s.admin, w.ID)
	s.Require().NoError(err)
	s.True(rupees(3000).Equal(wallet.Balance))
	s.True(rupees(3000).Equal(wallet.EarningsReceived))
	s.True(rupees(3000).Equal(wallet.WithdrawableBalance))
}

// Вывод больше погашенной основной суммы отклоняется, кошелек и вложения не меняются.
func (s *WithdrawalServiceTestSuite) TestApproveMoreThanMaturedPrincipal() {
	w := s.pending(domain.WithdrawalInvestment, 150000)
	s.expectApproveStart(w)

	user := &domain.User{ID: s.user.ID, Wallet: domain.Wallet{
		Balance:          rupees(200000),
		LockedAmount:     rupees(300000),
		TotalInvestments: rupees(300000),
	}}
	before := user.Wallet
	s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), s.user.ID).Return(user, nil)
	s.mockHoldingRepo.EXPECT().GetMaturedOpenByUser(gomock.Any(), s.user.ID, s.now).
		Return([]domain.Holding{s.maturedHolding(1, 200000, 100000)}, nil)

	_, err := s.service.Approve(s.T().Context(), s.admin, w.ID)
	s.Require().ErrorIs(err, domain.ErrInsufficientPrincipal)
	s.Equal(domain.OutcomeInsufficientFunds, domain.OutcomeOf(err))
	s.Equal(before, user.Wallet)
}

func (s *WithdrawalServiceTestSuite) TestApproveAlreadyProcessed() {
	w := s.pending(domain.WithdrawalEarnings, 10)
	w.Status = domain.WithdrawalStatusRejected
	s.mockWithdrawalRepo.EXPECT().FindByID(gomock.Any(), w.ID).Return(w, nil)

	_, err := s.service.Approve(s.T().Context(), s.admin, w.ID)
	s.Require().ErrorIs(err, domain.ErrAlreadyProcessed)
}

func (s *WithdrawalServiceTestSuite) TestReject() {
	_, err := s.service.Reject(s.T().Context(), s.admin, 30, "")
	s.Require().ErrorIs(err, domain.ErrReasonRequired)

	w := s.pending(domain.WithdrawalEarnings, 10)
	rejected := *w
	rejected.Status = domain.WithdrawalStatusRejected
	rejected.RejectionReason = "wrong ifsc"
	s.mockWithdrawalRepo.EXPECT().FindByID(gomock.Any(), w.ID).Return(w, nil)
	s.mockWithdrawalRepo.EXPECT().Transition(gomock.Any(), repoargs.StatusTransition[domain.WithdrawalStatusType]{
		ID:      w.ID,
		From:    domain.WithdrawalStatusPending,
		To:      domain.WithdrawalStatusRejected,
		ActorID: ptr(s.admin.ID),
		Reason:  "wrong ifsc",
		At:      s.now,
	}).Return(&rejected, nil)
	s.expectNotify(s.user.ID, domain.NotificationWithdrawalRejected)

	res, err := s.service.Reject(s.T().Context(), s.admin, w.ID, " wrong ifsc ")
	s.Require().NoError(err)
	s.Equal("wrong ifsc", res.RejectionReason)
}

func (s *WithdrawalServiceTestSuite) TestMarkProcessedRequiresApproved() {
	s.mockWithdrawalRepo.EXPECT().FindByID(gomock.Any(), int64(30)).
		Return(s.pending(domain.WithdrawalEarnings, 10), nil)

	_, err := s.service.MarkProcessed(s.T().Context(), s.admin, 30)
	s.Require().ErrorIs(err, domain.ErrInvalidState)
}
