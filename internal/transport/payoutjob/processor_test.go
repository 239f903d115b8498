package payoutjob

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/transport/payoutjob/mocks"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type ProcessorTestSuite struct {
	suite.Suite
	processor   *Processor
	mockService *mocks.MockServicer
	mockLocker  *mocks.MockLocker
	ctrl        *gomock.Controller
	now         time.Time
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.mockService = mocks.NewMockServicer(s.ctrl)
	s.mockLocker = mocks.NewMockLocker(s.ctrl)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s.now = time.Date(2025, 5, 1, 6, 0, 0, 0, time.UTC)
	s.mockService.EXPECT().Now().Return(s.now).AnyTimes()

	s.processor = New(s.mockService, logger).SetBatch(2).SetWorkers(3)
}

func (s *ProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

func holdings(ids ...int64) []domain.Holding {
	res := make([]domain.Holding, len(ids))
	for i, id := range ids {
		res[i] = domain.Holding{ID: id}
	}
	return res
}

// TestRunOnce_NoHoldings нечего генерировать.
func (s *ProcessorTestSuite) TestRunOnce_NoHoldings() {
	s.mockService.EXPECT().DueHoldings(gomock.Any(), s.now, int64(0), uint(2)).Return(nil, nil)

	report, err := s.processor.RunOnce(s.T().Context())
	s.Require().NoError(err)
	s.Equal(Report{}, *report)
}

// TestRunOnce_PagesAndClassifies проверяет постраничное чтение и разбор результатов воркеров.
func (s *ProcessorTestSuite) TestRunOnce_PagesAndClassifies() {
	gomock.InOrder(
		s.mockService.EXPECT().DueHoldings(gomock.Any(), s.now, int64(0), uint(2)).Return(holdings(1, 2), nil),
		s.mockService.EXPECT().DueHoldings(gomock.Any(), s.now, int64(2), uint(2)).Return(holdings(5), nil),
	)

	s.mockService.EXPECT().GenerateForHolding(gomock.Any(), int64(1), s.now).
		Return(&domain.Payout{ID: 10, HoldingID: 1}, nil)
	s.mockService.EXPECT().GenerateForHolding(gomock.Any(), int64(2), s.now).
		Return(nil, domain.ErrPayoutExists)
	s.mockService.EXPECT().GenerateForHolding(gomock.Any(), int64(5), s.now).
		Return(nil, errors.New("connection reset"))

	report, err := s.processor.RunOnce(s.T().Context())
	s.Require().NoError(err)
	s.Equal(Report{Generated: 1, Skipped: 1, Failed: 1}, *report)
}

// TestRunOnce_ProduceError ошибка чтения вложений прерывает проход.
func (s *ProcessorTestSuite) TestRunOnce_ProduceError() {
	s.mockService.EXPECT().DueHoldings(gomock.Any(), s.now, int64(0), uint(2)).
		Return(nil, domain.ErrUnknown)

	_, err := s.processor.RunOnce(s.T().Context())
	s.ErrorIs(err, domain.ErrUnknown)
}

// TestRunOnce_Locked другой экземпляр уже генерирует выплаты.
func (s *ProcessorTestSuite) TestRunOnce_Locked() {
	s.processor.SetLocker(s.mockLocker)
	s.mockLocker.EXPECT().Lock(gomock.Any()).Return(nil, ErrLocked)
	s.mockService.EXPECT().DueHoldings(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.processor.RunOnce(s.T().Context())
	s.ErrorIs(err, ErrLocked)
}

// TestRunOnce_ReleasesLock блокировка снимается после прохода.
func (s *ProcessorTestSuite) TestRunOnce_ReleasesLock() {
	var released bool
	s.processor.SetLocker(s.mockLocker)
	s.mockLocker.EXPECT().Lock(gomock.Any()).Return(func(_ context.Context) error {
		released = true
		return nil
	}, nil)
	s.mockService.EXPECT().DueHoldings(gomock.Any(), s.now, int64(0), uint(2)).Return(nil, nil)

	_, err := s.processor.RunOnce(s.T().Context())
	s.Require().NoError(err)
	s.True(released)
}

// TestRun_StopsOnCancel Run делает проход сразу после старта и завершается по отмене контекста.
func (s *ProcessorTestSuite) TestRun_StopsOnCancel() {
	ctx, cancel := context.WithCancel(s.T().Context())

	s.mockService.EXPECT().DueHoldings(gomock.Any(), s.now, int64(0), uint(2)).
		DoAndReturn(func(_ context.Context, _ time.Time, _ int64, _ uint) ([]domain.Holding, error) {
			cancel()
			return nil, nil
		})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.processor.SetInterval(time.Hour).Run(ctx)
	}()
	wg.Wait()
}
