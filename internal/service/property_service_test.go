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

type PropertyServiceTestSuite struct {
	serviceSuite
	service *PropertyService
}

func TestPropertyServiceSuite(t *testing.T) {
	suite.Run(t, new(PropertyServiceTestSuite))
}

func (s *PropertyServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()

	var err error
	s.service, err = NewPropertyService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *PropertyServiceTestSuite) validArgs() CreatePropertyArgs {
	return CreatePropertyArgs{
		Name:              "  Sea View Residency ",
		MinInvestment:     rupees(100000),
		AvailableToInvest: decimal.RequireFromString("5000000.75"),
		MonthlyReturnRate: decimal.RequireFromString("0.5"),
		LockInMonths:      12,
	}
}

func (s *PropertyServiceTestSuite) TestCreate() {
	s.mockPropertyRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateProperty) (*domain.Property, error) {
			s.Equal("Sea View Residency", args.Name)
			s.True(args.AvailableToInvest.Equal(rupees(5000000)))
			s.True(args.MinInvestment.Equal(rupees(100000)))
			return &domain.Property{ID: 4, Name: args.Name}, nil
		})

	property, err := s.service.Create(s.T().Context(), s.admin, s.validArgs())
	s.Require().NoError(err)
	s.Equal(int64(4), property.ID)
}

func (s *PropertyServiceTestSuite) TestCreateErrors() {
	cases := []struct {
		name   string
		actor  domain.Actor
		mutate func(a *CreatePropertyArgs)
		err    error
	}{
		{
			name:   "not admin",
			actor:  domain.Actor{ID: 9, Role: domain.RoleUser},
			mutate: func(_ *CreatePropertyArgs) {},
			err:    domain.ErrAdminRequired,
		},
		{
			name:   "blank name",
			actor:  s.admin,
			mutate: func(a *CreatePropertyArgs) { a.Name = "   " },
			err:    domain.ErrValidation,
		},
		{
			name:   "nothing available",
			actor:  s.admin,
			mutate: func(a *CreatePropertyArgs) { a.AvailableToInvest = decimal.Zero },
			err:    domain.ErrInvalidAmount,
		},
		{
			name:   "negative minimum",
			actor:  s.admin,
			mutate: func(a *CreatePropertyArgs) { a.MinInvestment = rupees(-1) },
			err:    domain.ErrInvalidAmount,
		},
		{
			name:   "zero lock-in",
			actor:  s.admin,
			mutate: func(a *CreatePropertyArgs) { a.LockInMonths = 0 },
			err:    domain.ErrInvalidLockIn,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			args := s.validArgs()
			tc.mutate(&args)

			_, err := s.service.Create(s.T().Context(), tc.actor, args)
			s.Require().ErrorIs(err, tc.err)
		})
	}
}

func (s *PropertyServiceTestSuite) TestGetByIDNotFound() {
	s.mockPropertyRepo.EXPECT().FindByID(gomock.Any(), int64(404)).Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.GetByID(s.T().Context(), 404)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
	s.Equal(domain.OutcomeNotFound, domain.OutcomeOf(err))
}
