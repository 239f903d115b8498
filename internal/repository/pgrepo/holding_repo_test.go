package pgrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
)

type HoldingRepositoryTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	db   *mocks.MockDBTX
	repo *HoldingRepository
}

func TestHoldingRepositorySuite(t *testing.T) {
	suite.Run(t, new(HoldingRepositoryTestSuite))
}

func (s *HoldingRepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.db = mocks.NewMockDBTX(s.ctrl)
	s.repo = NewHoldingRepository(s.db)
}

func (s *HoldingRepositoryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// Вложения с незавершенной онлайн или офлайн передачей не участвуют в выводе основной суммы.
func (s *HoldingRepositoryTestSuite) TestGetMaturedOpenByUserSkipsActiveTransfers() {
	now := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	var query string
	s.db.EXPECT().
		Query(gomock.Any(), gomock.Any(), int64(3), now).
		DoAndReturn(func(_ context.Context, sql string, _ ...interface{}) (pgx.Rows, error) {
			query = sql
			return nil, errors.New("connection reset")
		})

	_, err := s.repo.GetMaturedOpenByUser(context.Background(), 3, now)
	s.Require().ErrorIs(err, domain.ErrUnknown)

	s.Contains(query, "FROM transfer_requests tr")
	s.Contains(query, "'pending', 'accepted', 'admin_pending', 'admin_approved'")
	s.Contains(query, "FROM offline_buyer_requests ob")
	s.Contains(query, "FOR UPDATE")
}
