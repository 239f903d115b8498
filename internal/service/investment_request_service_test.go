package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type InvestmentRequestServiceTestSuite struct {
	serviceSuite
	service  *InvestmentRequestService
	user     domain.Actor
	property *domain.Property
}

func TestInvestmentRequestServiceSuite(t *testing.T) {
	suite.Run(t, new(InvestmentRequestServiceTestSuite))
}

func (s *InvestmentRequestServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()

	var err error
	s.service, err = NewInvestmentRequestService(s.mockUOW, s.mockNotifier)
	s.Require().NoError(err)
	s.service.now = s.fixedNow

	s.user = domain.Actor{ID: 8, Role: domain.RoleUser}
	s.property = &domain.Property{
		ID:                7,
		Name:              "Palm Residency",
		MinInvestment:     rupees(100000),
		AvailableToInvest: rupees(1000000),
		LockInMonths:      36,
	}
}

func (s *InvestmentRequestServiceTestSuite) TestSubmitValidation() {
	s.mockUserRepo.EXPECT().FindByID(gomock.Any(), s.user.ID).
		Return(&domain.User{ID: s.user.ID, KYCStatus: domain.KYCStatusApproved}, nil).AnyTimes()
	s.mockPropertyRepo.EXPECT().FindByID(gomock.Any(), s.property.ID).Return(s.property, nil).AnyTimes()

	cases := []struct {
		name     string
		args     SubmitInvestmentArgs
		expected error
	}{
		{
			name:     "no proof",
			args:     SubmitInvestmentArgs{PropertyID: 7, Amount: rupees(200000), TimePeriod: 12},
			expected: domain.ErrProofRequired,
		},
		{
			name:     "no time period",
			args:     SubmitInvestmentArgs{PropertyID: 7, Amount: rupees(200000), ProofURL: "https://docs/1"},
			expected: domain.ErrInvalidLockIn,
		},
		{
			name:     "below minimum",
			args:     SubmitInvestmentArgs{PropertyID: 7, Amount: rupees(99999), TimePeriod: 12, ProofURL: "https://docs/1"},
			expected: domain.ErrBelowMinimum,
		},
		{
			name:     "above available",
			args:     SubmitInvestmentArgs{PropertyID: 7, Amount: rupees(1000001), TimePeriod: 12, ProofURL: "https://docs/1"},
			expected: domain.ErrExceedsAvailable,
		},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.service.Submit(s.T().Context(), s.user, tc.args)
			s.Require().ErrorIs(err, tc.expected)
			s.Equal(domain.OutcomeValidation, domain.OutcomeOf(err))
		})
	}
}

func (s *InvestmentRequestServiceTestSuite) TestSubmitRequiresKYC() {
	s.mockUserRepo.EXPECT().FindByID(gomock.Any(), s.user.ID).
		Return(&domain.User{ID: s.user.ID, KYCStatus: domain.KYCStatusPending}, nil)

	_, err := s.service.Submit(s.T().Context(), s.user, SubmitInvestmentArgs{
		PropertyID: 7, Amount: rupees(200000), TimePeriod: 12, ProofURL: "https://docs/1",
	})
	s.Require().ErrorIs(err, domain.ErrKYCNotApproved)
	s.Equal(domain.OutcomeForbidden, domain.OutcomeOf(err))
}

// Одобрение создает вложение без списания баланса, повторное одобрение возвращает конфликт.
func (s *InvestmentRequestServiceTestSuite) TestApproveTwice() {
	request := &domain.InvestmentRequest{
		ID:             60,
		UserID:         s.user.ID,
		PropertyID:     s.property.ID,
		AmountInvested: rupees(200000),
		TimePeriod:     12,
		ProofURL:       "https://docs/1",
		Status:         domain.InvestmentRequestPending,
	}
	approved := *request
	approved.Status = domain.InvestmentRequestApproved

	s.mockInvestmentRepo.EXPECT().FindByID(gomock.Any(), request.ID).Return(request, nil)
	s.mockInvestmentRepo.EXPECT().Transition(gomock.Any(), repoargs.StatusTransition[domain.InvestmentRequestStatusType]{
		ID:      request.ID,
		From:    domain.InvestmentRequestPending,
		To:      domain.InvestmentRequestApproved,
		ActorID: ptr(s.admin.ID),
		At:      s.now,
	}).Return(&approved, nil)

	s.mockPropertyRepo.EXPECT().FindByID(gomock.Any(), s.property.ID).Return(s.property, nil)
	owner := &domain.User{ID: s.user.ID, Wallet: domain.Wallet{Balance: rupees(5)}}
	s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), s.user.ID).Return(owner, nil)
	s.mockHoldingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateHolding) (*domain.Holding, error) {
			s.Equal(12, args.LockInMonths)
			s.Equal(s.now.AddDate(0, 12, 0), args.MaturityDate)
			s.True(rupees(1000).Equal(args.MonthlyEarning))
			return &domain.Holding{ID: 90, UserID: args.UserID, AmountInvested: args.AmountInvested}, nil
		})
	s.mockPropertyRepo.EXPECT().Reserve(gomock.Any(), s.property.ID, gomock.Any()).Return(s.property, nil)
	var wallet domain.Wallet
	s.expectSaveWallet(s.user.ID, &wallet)
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Transaction{ID: 1}, nil)
	withHolding := approved
	withHolding.HoldingID = ptr(int64(90))
	s.mockInvestmentRepo.EXPECT().AttachHolding(gomock.Any(), request.ID, int64(90)).Return(&withHolding, nil)
	s.expectNotify(s.user.ID, domain.NotificationInvestmentApproved)

	res, holding, err := s.service.Approve(s.T().Context(), s.admin, request.ID)
	s.Require().NoError(err)
	s.Equal(int64(90), holding.ID)
	s.Equal(domain.InvestmentRequestApproved, res.Status)
	s.True(rupees(5).Equal(wallet.Balance))
	s.True(rupees(200000).Equal(wallet.LockedAmount))

	s.mockInvestmentRepo.EXPECT().FindByID(gomock.Any(), request.ID).Return(&approved, nil)
	_, _, err = s.service.Approve(s.T().Context(), s.admin, request.ID)
	s.Require().ErrorIs(err, domain.ErrAlreadyProcessed)
	s.Equal(domain.OutcomeConflict, domain.OutcomeOf(err))
}

func (s *InvestmentRequestServiceTestSuite) TestApproveLostRace() {
	s.mockInvestmentRepo.EXPECT().FindByID(gomock.Any(), int64(60)).
		Return(&domain.InvestmentRequest{ID: 60, Status: domain.InvestmentRequestPending}, nil)
	s.mockInvestmentRepo.EXPECT().Transition(gomock.Any(), gomock.Any()).Return(nil, domain.ErrRecordNotFound)

	_, _, err := s.service.Approve(s.T().Context(), s.admin, 60)
	s.Require().ErrorIs(err, domain.ErrAlreadyProcessed)
}

func (s *InvestmentRequestServiceTestSuite) TestReject() {
	_, err := s.service.Reject(s.T().Context(), s.admin, 60, "")
	s.Require().ErrorIs(err, domain.ErrReasonRequired)

	_, err = s.service.Reject(s.T().Context(), s.user, 60, "bad proof")
	s.Require().ErrorIs(err, domain.ErrAdminRequired)

	s.mockInvestmentRepo.EXPECT().FindByID(gomock.Any(), int64(60)).
		Return(&domain.InvestmentRequest{ID: 60, UserID: s.user.ID, Status: domain.InvestmentRequestPending}, nil)
	s.mockInvestmentRepo.EXPECT().Transition(gomock.Any(), gomock.Any()).
		Return(&domain.InvestmentRequest{ID: 60, UserID: s.user.ID, Status: domain.InvestmentRequestRejected}, nil)
	s.expectNotify(s.user.ID, domain.NotificationInvestmentRejected)

	res, err := s.service.Reject(s.T().Context(), s.admin, 60, "bad proof")
	s.Require().NoError(err)
	s.Equal(domain.InvestmentRequestRejected, res.Status)
}
