package service

import (
	"context"
	"io"
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/internal/service/mocks"
	"github.com/fsdevblog/groph-estate/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-estate/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

// serviceSuite общая обвязка тестов сервисов: все репозитории отдаются и из uow, и из транзакции,
// а uow.Do выполняет функцию на моке транзакции.
type serviceSuite struct {
	suite.Suite
	mockCtrl             *gomock.Controller
	mockUOW              *uowmocks.MockUOW
	mockTX               *uowmocks.MockTX
	mockUserRepo         *mocks.MockUserRepository
	mockPropertyRepo     *mocks.MockPropertyRepository
	mockHoldingRepo      *mocks.MockHoldingRepository
	mockPayoutRepo       *mocks.MockPayoutRepository
	mockTransactionRepo  *mocks.MockTransactionRepository
	mockWithdrawalRepo   *mocks.MockWithdrawalRepository
	mockInvestmentRepo   *mocks.MockInvestmentRequestRepository
	mockTransferRepo     *mocks.MockTransferRepository
	mockOfflineRepo      *mocks.MockOfflineTransferRepository
	mockNotificationRepo *mocks.MockNotificationRepository
	mockNotifier         *mocks.MockNotifier
	logger               *logrus.Logger
	now                  time.Time
	admin                domain.Actor
}

func (s *serviceSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockPropertyRepo = mocks.NewMockPropertyRepository(s.mockCtrl)
	s.mockHoldingRepo = mocks.NewMockHoldingRepository(s.mockCtrl)
	s.mockPayoutRepo = mocks.NewMockPayoutRepository(s.mockCtrl)
	s.mockTransactionRepo = mocks.NewMockTransactionRepository(s.mockCtrl)
	s.mockWithdrawalRepo = mocks.NewMockWithdrawalRepository(s.mockCtrl)
	s.mockInvestmentRepo = mocks.NewMockInvestmentRequestRepository(s.mockCtrl)
	s.mockTransferRepo = mocks.NewMockTransferRepository(s.mockCtrl)
	s.mockOfflineRepo = mocks.NewMockOfflineTransferRepository(s.mockCtrl)
	s.mockNotificationRepo = mocks.NewMockNotificationRepository(s.mockCtrl)
	s.mockNotifier = mocks.NewMockNotifier(s.mockCtrl)

	s.logger = logrus.New()
	s.logger.SetOutput(io.Discard)
	s.now = time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	s.admin = domain.Actor{ID: 1, Role: domain.RoleAdmin}

	repos := map[repoargs.RepositoryName]uow.Repository{
		repoargs.UserRepoName:              s.mockUserRepo,
		repoargs.PropertyRepoName:          s.mockPropertyRepo,
		repoargs.HoldingRepoName:           s.mockHoldingRepo,
		repoargs.PayoutRepoName:            s.mockPayoutRepo,
		repoargs.TransactionRepoName:       s.mockTransactionRepo,
		repoargs.WithdrawalRepoName:        s.mockWithdrawalRepo,
		repoargs.InvestmentRequestRepoName: s.mockInvestmentRepo,
		repoargs.TransferRepoName:          s.mockTransferRepo,
		repoargs.OfflineTransferRepoName:   s.mockOfflineRepo,
		repoargs.NotificationRepoName:      s.mockNotificationRepo,
	}
	for name, repo := range repos {
		s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
		s.mockTX.EXPECT().Get(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
	}

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()
}

func (s *serviceSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *serviceSuite) fixedNow() time.Time {
	return s.now
}

// expectNotify ожидает уведомление юзеру userID с типом t.
func (s *serviceSuite) expectNotify(userID int64, t domain.NotificationType) *gomock.Call {
	return s.mockNotifier.EXPECT().
		Notify(gomock.Any(), notificationMatcher{userID: userID, t: t})
}

// expectSaveWallet ожидает запись кошелька юзера и возвращает записанный кошелек с увеличенной версией.
// Записанный кошелек сохраняется в saved.
func (s *serviceSuite) expectSaveWallet(userID int64, saved *domain.Wallet) *gomock.Call {
	return s.mockUserRepo.EXPECT().
		UpdateWallet(gomock.Any(), walletOf(userID)).
		DoAndReturn(func(_ context.Context, args repoargs.UpdateWallet) (*domain.Wallet, error) {
			w := args.Wallet
			w.Version++
			if saved != nil {
				*saved = w
			}
			return &w, nil
		})
}

func rupees(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

type notificationMatcher struct {
	userID int64
	t      domain.NotificationType
}

func (m notificationMatcher) Matches(x interface{}) bool {
	e, ok := x.(domain.NotificationEvent)
	return ok && e.UserID == m.userID && e.Type == m.t
}

func (m notificationMatcher) String() string {
	return "notification " + string(m.t)
}

type walletMatcher int64

func walletOf(userID int64) gomock.Matcher {
	return walletMatcher(userID)
}

func (m walletMatcher) Matches(x interface{}) bool {
	args, ok := x.(repoargs.UpdateWallet)
	return ok && args.UserID == int64(m)
}

func (m walletMatcher) String() string {
	return "wallet update"
}

// decimalMatcher сравнивает суммы по значению, а не по внутреннему представлению.
type decimalMatcher struct {
	v decimal.Decimal
}

func decEq(v int64) gomock.Matcher {
	return decimalMatcher{v: decimal.NewFromInt(v)}
}

func (m decimalMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.v)
}

func (m decimalMatcher) String() string {
	return "equals " + m.v.String()
}
