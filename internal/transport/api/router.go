package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/groph-estate/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup = "/api"
	AdminGroup = "/admin"

	RegisterRoute = "/user/register"
	LoginRoute    = "/user/login"
	MeRoute       = "/user/me"

	KYCRoute          = "/kyc"
	AdminKYCItemRoute = "/kyc/:id"

	PropertiesRoute = "/properties"
	PropertyRoute   = "/properties/:id"

	HoldingsRoute  = "/holdings"
	HoldingRoute   = "/holdings/:id"
	PortfolioRoute = "/portfolio"

	InvestmentsRoute       = "/investments"
	InvestmentApproveRoute = "/investments/:id/approve"
	InvestmentRejectRoute  = "/investments/:id/reject"

	PayoutsRoute         = "/payouts"
	PayoutsGenerateRoute = "/payouts/generate"
	PayoutsProcessRoute  = "/payouts/process"
	PayoutCompleteRoute  = "/payouts/:id/complete"

	WithdrawalsRoute         = "/withdrawals"
	WithdrawalApproveRoute   = "/withdrawals/:id/approve"
	WithdrawalRejectRoute    = "/withdrawals/:id/reject"
	WithdrawalProcessedRoute = "/withdrawals/:id/processed"

	TransfersRoute       = "/transfers"
	TransferRespondRoute = "/transfers/:id/respond"
	TransferSubmitRoute  = "/transfers/:id/submit"
	TransferCancelRoute  = "/transfers/:id/cancel"
	TransferApproveRoute = "/transfers/:id/approve"
	TransferRejectRoute  = "/transfers/:id/reject"

	OfflineTransfersRoute = "/offline-transfers"

	WalletRoute             = "/wallet"
	WalletTransactionsRoute = "/wallet/transactions"
	WalletCreditRoute       = "/users/:id/wallet/credit"

	NotificationsRoute    = "/notifications"
	NotificationReadRoute = "/notifications/:id/read"
)

type RouterArgs struct {
	Logger                 *logrus.Logger
	UserService            UserServicer
	KYCService             KYCServicer
	PropertyService        PropertyServicer
	HoldingService         HoldingServicer
	InvestmentService      InvestmentServicer
	PayoutService          PayoutServicer
	WithdrawalService      WithdrawalServicer
	TransferService        TransferServicer
	OfflineTransferService OfflineTransferServicer
	WalletService          WalletServicer
	NotificationService    NotificationServicer
	JWTSecretKey           []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("new router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	kycHandler := NewKYCHandler(args.KYCService)
	propertyHandler := NewPropertyHandler(args.PropertyService)
	holdingHandler := NewHoldingHandler(args.HoldingService)
	investmentHandler := NewInvestmentHandler(args.InvestmentService)
	payoutHandler := NewPayoutHandler(args.PayoutService)
	withdrawalHandler := NewWithdrawalHandler(args.WithdrawalService)
	transferHandler := NewTransferHandler(args.TransferService)
	offlineHandler := NewOfflineTransferHandler(args.OfflineTransferService)
	walletHandler := NewWalletHandler(args.WalletService)
	notificationHandler := NewNotificationHandler(args.NotificationService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)
	api.GET(PropertiesRoute, propertyHandler.Index)
	api.GET(PropertyRoute, propertyHandler.Show)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(MeRoute, authHandler.Me)
	api.POST(KYCRoute, kycHandler.Submit)

	api.POST(HoldingsRoute, holdingHandler.Create)
	api.GET(HoldingsRoute, holdingHandler.Index)
	api.GET(HoldingRoute, holdingHandler.Show)
	api.GET(PortfolioRoute, holdingHandler.Portfolio)

	api.POST(InvestmentsRoute, investmentHandler.Create)
	api.GET(InvestmentsRoute, investmentHandler.Index)

	api.GET(PayoutsRoute, payoutHandler.Index)

	api.POST(WithdrawalsRoute, withdrawalHandler.Create)
	api.GET(WithdrawalsRoute, withdrawalHandler.Index)

	api.POST(TransfersRoute, transferHandler.Create)
	api.GET(TransfersRoute, transferHandler.Index)
	api.POST(TransferRespondRoute, transferHandler.Respond)
	api.POST(TransferSubmitRoute, transferHandler.Submit)
	api.POST(TransferCancelRoute, transferHandler.Cancel)

	api.POST(OfflineTransfersRoute, offlineHandler.Create)
	api.GET(OfflineTransfersRoute, offlineHandler.Index)

	api.GET(WalletRoute, walletHandler.Index)
	api.GET(WalletTransactionsRoute, walletHandler.Transactions)

	api.GET(NotificationsRoute, notificationHandler.Index)
	api.POST(NotificationReadRoute, notificationHandler.MarkRead)

	admin := api.Group(AdminGroup, middlewares.AdminRequired())
	// роль дополнительно проверяется в сервисном слое.
	admin.GET(KYCRoute, kycHandler.Index)
	admin.PUT(AdminKYCItemRoute, kycHandler.Review)

	admin.POST(PropertiesRoute, propertyHandler.Create)

	admin.GET(InvestmentsRoute, investmentHandler.AdminIndex)
	admin.POST(InvestmentApproveRoute, investmentHandler.Approve)
	admin.POST(InvestmentRejectRoute, investmentHandler.Reject)

	admin.GET(PayoutsRoute, payoutHandler.AdminIndex)
	admin.POST(PayoutsGenerateRoute, payoutHandler.Generate)
	admin.POST(PayoutsProcessRoute, payoutHandler.Process)
	admin.POST(PayoutCompleteRoute, payoutHandler.Complete)

	admin.GET(WithdrawalsRoute, withdrawalHandler.AdminIndex)
	admin.POST(WithdrawalApproveRoute, withdrawalHandler.Approve)
	admin.POST(WithdrawalRejectRoute, withdrawalHandler.Reject)
	admin.POST(WithdrawalProcessedRoute, withdrawalHandler.MarkProcessed)

	admin.GET(TransfersRoute, transferHandler.AdminIndex)
	admin.POST(TransferApproveRoute, transferHandler.Approve)
	admin.POST(TransferRejectRoute, transferHandler.Reject)

	admin.POST(WalletCreditRoute, walletHandler.Credit)
	return r, nil
}
