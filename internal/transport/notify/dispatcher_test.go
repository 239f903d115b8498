package notify

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/transport/notify/mocks"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type DispatcherTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	first  *mocks.MockSink
	second *mocks.MockSink
	logger *logrus.Logger
}

func TestDispatcherTestSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}

func (s *DispatcherTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.first = mocks.NewMockSink(s.ctrl)
	s.second = mocks.NewMockSink(s.ctrl)
	s.first.EXPECT().Name().Return("first").AnyTimes()
	s.second.EXPECT().Name().Return("second").AnyTimes()

	s.logger = logrus.New()
	s.logger.SetOutput(io.Discard)
}

func (s *DispatcherTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DispatcherTestSuite) event() domain.NotificationEvent {
	return domain.NotificationEvent{
		UserID:  7,
		Type:    domain.NotificationPayoutCredited,
		Message: "payout credited",
	}
}

func (s *DispatcherTestSuite) TestDeliversToAllSinks() {
	d := NewDispatcher(s.logger, 10, s.first, s.second)
	ev := s.event()

	done := make(chan struct{})
	s.first.EXPECT().Deliver(gomock.Any(), ev).Return(nil)
	s.second.EXPECT().Deliver(gomock.Any(), ev).DoAndReturn(
		func(_ context.Context, _ domain.NotificationEvent) error {
			close(done)
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(stopped)
	}()

	d.Notify(context.Background(), ev)

	s.Require().Eventually(func() bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-stopped
}

func (s *DispatcherTestSuite) TestSinkErrorDoesNotStopOthers() {
	d := NewDispatcher(s.logger, 10, s.first, s.second)
	ev := s.event()

	gomock.InOrder(
		s.first.EXPECT().Deliver(gomock.Any(), ev).Return(errors.New("boom")),
		s.second.EXPECT().Deliver(gomock.Any(), ev).Return(nil),
	)

	d.deliver(context.Background(), ev)
}

func (s *DispatcherTestSuite) TestNotifyDropsWhenQueueFull() {
	d := NewDispatcher(s.logger, 1, s.first)

	d.Notify(context.Background(), s.event())
	d.Notify(context.Background(), s.event())

	s.Len(d.queue, 1)
}

func (s *DispatcherTestSuite) TestRunDrainsQueueOnStop() {
	d := NewDispatcher(s.logger, 10, s.first)
	ev := s.event()

	d.Notify(context.Background(), ev)
	d.Notify(context.Background(), ev)

	s.first.EXPECT().Deliver(gomock.Any(), ev).Return(nil).Times(2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.Run(ctx)

	s.Empty(d.queue)
}
