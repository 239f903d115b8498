package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type HoldingHandlerTestSuite struct {
	handlerSuite
}

func TestHoldingHandlerSuite(t *testing.T) {
	suite.Run(t, new(HoldingHandlerTestSuite))
}

func (s *HoldingHandlerTestSuite) view(id int64, status domain.HoldingStatusType) domain.HoldingView {
	purchase := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	return domain.HoldingView{
		Holding: domain.Holding{
			ID:             id,
			UserID:         s.user.ID,
			PropertyID:     3,
			AmountInvested: rupees(500000),
			PurchaseDate:   purchase,
			MaturityDate:   purchase.AddDate(2, 0, 0),
			LockInMonths:   24,
			MonthlyEarning: rupees(2500),
			Status:         domain.HoldingStatusLockIn,
			NextPayoutDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		EffectiveStatus: status,
	}
}

func (s *HoldingHandlerTestSuite) TestCreate() {
	v := s.view(1, domain.HoldingStatusLockIn)
	s.mockHoldingService.EXPECT().
		Purchase(gomock.Any(), s.user, service.PurchaseArgs{PropertyID: 3, Amount: rupees(500000)}).
		Return(&v, nil)
	s.mockHoldingService.EXPECT().
		Purchase(gomock.Any(), s.user, service.PurchaseArgs{PropertyID: 3, Amount: rupees(100)}).
		Return(nil, domain.ErrBelowMinimum)
	s.mockHoldingService.EXPECT().
		Purchase(gomock.Any(), s.user, service.PurchaseArgs{PropertyID: 4, Amount: rupees(500000)}).
		Return(nil, domain.ErrKYCNotApproved)

	cases := []struct {
		name       string
		body       map[string]any
		wantStatus int
	}{
		{"purchased", map[string]any{"propertyId": 3, "amount": "500000"}, http.StatusCreated},
		{"below minimum", map[string]any{"propertyId": 3, "amount": "100"}, http.StatusUnprocessableEntity},
		{"kyc not approved", map[string]any{"propertyId": 4, "amount": "500000"}, http.StatusForbidden},
		{"missing property", map[string]any{"amount": "500000"}, http.StatusUnprocessableEntity},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			status, _ := s.do(http.MethodPost, RouteGroup+HoldingsRoute, s.userToken, t.body)
			s.Equal(t.wantStatus, status)
		})
	}
}

func (s *HoldingHandlerTestSuite) TestIndexUsesEffectiveStatus() {
	views := []domain.HoldingView{s.view(1, domain.HoldingStatusMatured), s.view(2, domain.HoldingStatusLockIn)}
	s.mockHoldingService.EXPECT().List(gomock.Any(), s.user).Return(views, nil)

	status, body := s.do(http.MethodGet, RouteGroup+HoldingsRoute, s.userToken, nil)
	s.Require().Equal(http.StatusOK, status)

	var resp []HoldingResponse
	s.Require().NoError(json.Unmarshal(body, &resp))
	s.Require().Len(resp, 2)
	s.Equal(domain.HoldingStatusMatured, resp[0].Status)
	s.Equal(domain.HoldingStatusLockIn, resp[1].Status)
}

func (s *HoldingHandlerTestSuite) TestIndexEmpty() {
	s.mockHoldingService.EXPECT().List(gomock.Any(), s.user).Return(nil, nil)

	status, _ := s.do(http.MethodGet, RouteGroup+HoldingsRoute, s.userToken, nil)
	s.Equal(http.StatusNoContent, status)
}

func (s *HoldingHandlerTestSuite) TestShowNotOwner() {
	s.mockHoldingService.EXPECT().Get(gomock.Any(), s.user, int64(99)).Return(nil, domain.ErrNotOwner)
	s.mockHoldingService.EXPECT().Get(gomock.Any(), s.user, int64(100)).Return(nil, domain.ErrRecordNotFound)

	status, _ := s.do(http.MethodGet, RouteGroup+"/holdings/99", s.userToken, nil)
	s.Equal(http.StatusForbidden, status)

	status, _ = s.do(http.MethodGet, RouteGroup+"/holdings/100", s.userToken, nil)
	s.Equal(http.StatusNotFound, status)
}

func (s *HoldingHandlerTestSuite) TestPortfolio() {
	s.mockHoldingService.EXPECT().Portfolio(gomock.Any(), s.user).Return(&service.Portfolio{
		Holdings:      []domain.HoldingView{s.view(1, domain.HoldingStatusLockIn)},
		TotalInvested: rupees(500000),
		MonthlyIncome: rupees(2500),
	}, nil)

	status, body := s.do(http.MethodGet, RouteGroup+PortfolioRoute, s.userToken, nil)
	s.Require().Equal(http.StatusOK, status)

	var resp PortfolioResponse
	s.Require().NoError(json.Unmarshal(body, &resp))
	s.Len(resp.Holdings, 1)
	s.True(resp.MonthlyIncome.Equal(rupees(2500)))
}
