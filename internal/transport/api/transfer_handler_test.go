package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type TransferHandlerTestSuite struct {
	handlerSuite
}

func TestTransferHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransferHandlerTestSuite))
}

func (s *TransferHandlerTestSuite) TestCreate() {
	okArgs := service.InitiateTransferArgs{HoldingID: 7, BuyerEmail: "buyer@example.com", SalePrice: rupees(550000)}
	s.mockTransferService.EXPECT().Initiate(gomock.Any(), s.user, okArgs).
		Return(&domain.TransferRequest{ID: 1, HoldingID: 7, Status: domain.TransferStatusPending}, nil)

	tooEarly := okArgs
	tooEarly.HoldingID = 8
	s.mockTransferService.EXPECT().Initiate(gomock.Any(), s.user, tooEarly).
		Return(nil, domain.ErrTransferTooEarly)

	busy := okArgs
	busy.HoldingID = 9
	s.mockTransferService.EXPECT().Initiate(gomock.Any(), s.user, busy).
		Return(nil, domain.ErrTransferInProgress)

	cases := []struct {
		name       string
		body       map[string]any
		wantStatus int
		wantError  string
	}{
		{
			name:       "created",
			body:       map[string]any{"holdingId": 7, "buyerEmail": "buyer@example.com", "salePrice": "550000"},
			wantStatus: http.StatusCreated,
		}, {
			name:       "held less than 90 days",
			body:       map[string]any{"holdingId": 8, "buyerEmail": "buyer@example.com", "salePrice": "550000"},
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  domain.ErrTransferTooEarly.Error(),
		}, {
			name:       "active transfer exists",
			body:       map[string]any{"holdingId": 9, "buyerEmail": "buyer@example.com", "salePrice": "550000"},
			wantStatus: http.StatusConflict,
			wantError:  domain.ErrTransferInProgress.Error(),
		}, {
			name:       "zero sale price",
			body:       map[string]any{"holdingId": 7, "buyerEmail": "buyer@example.com", "salePrice": "0"},
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "fractional sale price",
			body:       map[string]any{"holdingId": 7, "buyerEmail": "buyer@example.com", "salePrice": "10.5"},
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "missing buyer",
			body:       map[string]any{"holdingId": 7, "salePrice": "550000"},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			status, body := s.do(http.MethodPost, RouteGroup+TransfersRoute, s.userToken, t.body)
			s.Equal(t.wantStatus, status)
			if t.wantError != "" {
				s.Equal(t.wantError, s.errorText(body))
			}
		})
	}
}

func (s *TransferHandlerTestSuite) TestRespond() {
	s.mockTransferService.EXPECT().Respond(gomock.Any(), s.user, int64(3), false).
		Return(&domain.TransferRequest{ID: 3, Status: domain.TransferStatusRejected}, nil)
	s.mockTransferService.EXPECT().Respond(gomock.Any(), s.user, int64(4), true).
		Return(nil, domain.ErrNotOwner)

	url := func(id int) string {
		return RouteGroup + fmt.Sprintf("/transfers/%d/respond", id)
	}

	status, _ := s.do(http.MethodPost, url(3), s.userToken, map[string]any{"accept": false})
	s.Equal(http.StatusOK, status)

	status, _ = s.do(http.MethodPost, url(4), s.userToken, map[string]any{"accept": true})
	s.Equal(http.StatusForbidden, status)

	status, _ = s.do(http.MethodPost, url(4), s.userToken, map[string]any{})
	s.Equal(http.StatusUnprocessableEntity, status)

	status, _ = s.do(http.MethodPost, RouteGroup+"/transfers/abc/respond", s.userToken, map[string]any{"accept": true})
	s.Equal(http.StatusBadRequest, status)
}

func (s *TransferHandlerTestSuite) TestApprove() {
	url := func(id int) string {
		return RouteGroup + AdminGroup + fmt.Sprintf("/transfers/%d/approve", id)
	}
	s.mockTransferService.EXPECT().Approve(gomock.Any(), s.admin, int64(1)).
		Return(&domain.TransferRequest{ID: 1, Status: domain.TransferStatusCompleted}, nil)
	s.mockTransferService.EXPECT().Approve(gomock.Any(), s.admin, int64(2)).
		Return(nil, domain.ErrInsufficientBalance)
	s.mockTransferService.EXPECT().Approve(gomock.Any(), s.admin, int64(3)).
		Return(nil, domain.ErrAlreadyProcessed)
	s.mockTransferService.EXPECT().Approve(gomock.Any(), s.admin, int64(4)).
		Return(nil, fmt.Errorf("approve: %w", domain.ErrUnknown))

	cases := []struct {
		id         int
		wantStatus int
	}{
		{1, http.StatusOK},
		{2, http.StatusPaymentRequired},
		{3, http.StatusConflict},
		{4, http.StatusInternalServerError},
	}
	for _, t := range cases {
		s.Run(fmt.Sprintf("transfer %d", t.id), func() {
			status, body := s.do(http.MethodPost, url(t.id), s.adminToken, nil)
			s.Equal(t.wantStatus, status)
			if t.wantStatus == http.StatusInternalServerError {
				// внутренние ошибки клиенту не раскрываются.
				s.Equal("internal server error", s.errorText(body))
			}
		})
	}
}

func (s *TransferHandlerTestSuite) TestRejectRequiresReason() {
	s.mockTransferService.EXPECT().Reject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	status, _ := s.do(http.MethodPost, RouteGroup+AdminGroup+"/transfers/1/reject", s.adminToken,
		map[string]any{"reason": ""})
	s.Equal(http.StatusUnprocessableEntity, status)
}

func (s *TransferHandlerTestSuite) TestAdminIndexDefaultsToAdminPending() {
	s.mockTransferService.EXPECT().
		ListByStatus(gomock.Any(), s.admin, domain.TransferStatusAdminPending, gomock.Any()).
		Return([]domain.TransferRequest{{ID: 1, Status: domain.TransferStatusAdminPending}}, nil)

	status, body := s.do(http.MethodGet, RouteGroup+AdminGroup+TransfersRoute, s.adminToken, nil)
	s.Equal(http.StatusOK, status)
	s.Contains(string(body), `"status":"admin_pending"`)
}
