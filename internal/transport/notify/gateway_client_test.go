package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/stretchr/testify/suite"
)

type GatewayClientTestSuite struct {
	suite.Suite
	event domain.NotificationEvent
}

func TestGatewayClientTestSuite(t *testing.T) {
	suite.Run(t, new(GatewayClientTestSuite))
}

func (s *GatewayClientTestSuite) SetupTest() {
	s.event = domain.NotificationEvent{
		UserID:  5,
		Type:    domain.NotificationInvestmentApproved,
		Message: "investment approved",
	}
}

func (s *GatewayClientTestSuite) TestDeliver() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal(RouteNotifications, r.URL.Path)
		s.Equal("application/json", r.Header.Get("Content-Type"))

		var msg Message
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&msg))
		s.Equal(Message{UserID: 5, Type: domain.NotificationInvestmentApproved, Message: "investment approved"}, msg)

		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	s.Require().NoError(NewGatewayClient(server.URL).Deliver(context.Background(), s.event))
}

func (s *GatewayClientTestSuite) TestDeliverUnexpectedStatus() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	err := NewGatewayClient(server.URL).Deliver(context.Background(), s.event)

	var statusErr *StatusCodeError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(http.StatusInternalServerError, statusErr.Code)
}

func (s *GatewayClientTestSuite) TestDeliverRetriesAfterTooManyRequests() {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	s.Require().NoError(NewGatewayClient(server.URL).Deliver(context.Background(), s.event))
	s.Equal(int32(2), calls.Load())
}

func (s *GatewayClientTestSuite) TestDeliverTooManyRequestsContextDone() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "invalid")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err := NewGatewayClient(server.URL).Deliver(ctx, s.event)

	var tooManyReq *TooManyRequestError
	s.Require().ErrorAs(err, &tooManyReq)
	s.Equal(60*time.Second, tooManyReq.RetryAfter)
	s.Require().ErrorIs(err, context.DeadlineExceeded)
}
