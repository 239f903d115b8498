package api

import (
	"encoding/json"
	"io"
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/logger"
	"github.com/fsdevblog/groph-estate/internal/service/tokens"
	"github.com/fsdevblog/groph-estate/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-estate/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// handlerSuite общая часть тестов обработчиков: роутер со всеми сервисами на моках и токены юзера и админа.
type handlerSuite struct {
	suite.Suite
	router    *gin.Engine
	jwtSecret []byte

	mockUserService         *mocks.MockUserServicer
	mockKYCService          *mocks.MockKYCServicer
	mockPropertyService     *mocks.MockPropertyServicer
	mockHoldingService      *mocks.MockHoldingServicer
	mockInvestmentService   *mocks.MockInvestmentServicer
	mockPayoutService       *mocks.MockPayoutServicer
	mockWithdrawalService   *mocks.MockWithdrawalServicer
	mockTransferService     *mocks.MockTransferServicer
	mockOfflineService      *mocks.MockOfflineTransferServicer
	mockWalletService       *mocks.MockWalletServicer
	mockNotificationService *mocks.MockNotificationServicer

	user       domain.Actor
	admin      domain.Actor
	userToken  string
	adminToken string
}

func (s *handlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	mockCtrl := gomock.NewController(s.T())

	s.jwtSecret = []byte("super secret key")
	s.mockUserService = mocks.NewMockUserServicer(mockCtrl)
	s.mockKYCService = mocks.NewMockKYCServicer(mockCtrl)
	s.mockPropertyService = mocks.NewMockPropertyServicer(mockCtrl)
	s.mockHoldingService = mocks.NewMockHoldingServicer(mockCtrl)
	s.mockInvestmentService = mocks.NewMockInvestmentServicer(mockCtrl)
	s.mockPayoutService = mocks.NewMockPayoutServicer(mockCtrl)
	s.mockWithdrawalService = mocks.NewMockWithdrawalServicer(mockCtrl)
	s.mockTransferService = mocks.NewMockTransferServicer(mockCtrl)
	s.mockOfflineService = mocks.NewMockOfflineTransferServicer(mockCtrl)
	s.mockWalletService = mocks.NewMockWalletServicer(mockCtrl)
	s.mockNotificationService = mocks.NewMockNotificationServicer(mockCtrl)

	router, err := New(RouterArgs{
		Logger:                 logger.New(io.Discard),
		UserService:            s.mockUserService,
		KYCService:             s.mockKYCService,
		PropertyService:        s.mockPropertyService,
		HoldingService:         s.mockHoldingService,
		InvestmentService:      s.mockInvestmentService,
		PayoutService:          s.mockPayoutService,
		WithdrawalService:      s.mockWithdrawalService,
		TransferService:        s.mockTransferService,
		OfflineTransferService: s.mockOfflineService,
		WalletService:          s.mockWalletService,
		NotificationService:    s.mockNotificationService,
		JWTSecretKey:           s.jwtSecret,
	})
	s.Require().NoError(err)
	s.router = router

	s.user = domain.Actor{ID: 10, Role: domain.RoleUser}
	s.admin = domain.Actor{ID: 1, Role: domain.RoleAdmin}
	s.userToken = s.token(s.user)
	s.adminToken = s.token(s.admin)
}

func (s *handlerSuite) token(actor domain.Actor) string {
	token, err := tokens.GenerateUserJWT(&domain.User{
		ID:        actor.ID,
		Role:      actor.Role,
		KYCStatus: domain.KYCStatusApproved,
	}, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return token
}

// do выполняет запрос и возвращает статус и тело ответа. body сериализуется в json, если не nil.
func (s *handlerSuite) do(method, url, token string, body any) (int, []byte) {
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
	}, testutils.WithJSON(body), testutils.WithBearer(token))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	respBody, readErr := io.ReadAll(res.Body)
	s.Require().NoError(readErr)
	return res.StatusCode, respBody
}

// errorText достает текст ошибки из json ответа.
func (s *handlerSuite) errorText(body []byte) string {
	var resp struct {
		Error string `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(body, &resp))
	return resp.Error
}


func (s *handlerSuite) foreignToken() string {
	token, err := tokens.GenerateUserJWT(&domain.User{ID: s.user.ID, Role: domain.RoleAdmin}, time.Hour,
		[]byte("another secret"))
	s.Require().NoError(err)
	return token
}

func tokensWithExpire(secret []byte) (string, error) {
	return tokens.GenerateUserJWT(&domain.User{ID: 10, Role: domain.RoleUser}, -time.Hour, secret) //nolint:wrapcheck
}

func rupees(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}
