package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type KYCServicer interface {
	Submit(ctx context.Context, actor domain.Actor, documentURL string) (*domain.User, error)
	Review(ctx context.Context, actor domain.Actor, userID int64, status domain.KYCStatusType) (*domain.User, error)
	ListByStatus(
		ctx context.Context,
		actor domain.Actor,
		status domain.KYCStatusType,
		page repoargs.Page,
	) ([]domain.User, error)
}

type PropertyServicer interface {
	Create(ctx context.Context, actor domain.Actor, args service.CreatePropertyArgs) (*domain.Property, error)
	GetAll(ctx context.Context) ([]domain.Property, error)
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

type HoldingServicer interface {
	Purchase(ctx context.Context, actor domain.Actor, args service.PurchaseArgs) (*domain.HoldingView, error)
	List(ctx context.Context, actor domain.Actor) ([]domain.HoldingView, error)
	Get(ctx context.Context, actor domain.Actor, id int64) (*domain.HoldingView, error)
	Portfolio(ctx context.Context, actor domain.Actor) (*service.Portfolio, error)
}

type InvestmentServicer interface {
	Submit(
		ctx context.Context,
		actor domain.Actor,
		args service.SubmitInvestmentArgs,
	) (*domain.InvestmentRequest, error)
	Approve(ctx context.Context, actor domain.Actor, requestID int64) (*domain.InvestmentRequest, *domain.Holding, error)
	Reject(ctx context.Context, actor domain.Actor, requestID int64, reason string) (*domain.InvestmentRequest, error)
	ListMine(ctx context.Context, actor domain.Actor) ([]domain.InvestmentRequest, error)
	ListByStatus(
		ctx context.Context,
		actor domain.Actor,
		status domain.InvestmentRequestStatusType,
		page repoargs.Page,
	) ([]domain.InvestmentRequest, error)
}

type PayoutServicer interface {
	Generate(ctx context.Context, actor domain.Actor) (*service.GenerateReport, error)
	Process(ctx context.Context, actor domain.Actor, ids []int64) (*service.ProcessReport, error)
	Complete(ctx context.Context, actor domain.Actor, id int64) (*domain.Payout, error)
	ListMine(ctx context.Context, actor domain.Actor) ([]domain.Payout, error)
	ListByStatus(
		ctx context.Context,
		actor domain.Actor,
		status domain.PayoutStatusType,
		page repoargs.Page,
	) ([]domain.Payout, error)
}

type WithdrawalServicer interface {
	Request(ctx context.Context, actor domain.Actor, args service.RequestWithdrawalArgs) (*domain.Withdrawal, error)
	Approve(ctx context.Context, actor domain.Actor, withdrawalID int64) (*domain.Withdrawal, error)
	Reject(ctx context.Context, actor domain.Actor, withdrawalID int64, reason string) (*domain.Withdrawal, error)
	MarkProcessed(ctx context.Context, actor domain.Actor, withdrawalID int64) (*domain.Withdrawal, error)
	ListMine(ctx context.Context, actor domain.Actor) ([]domain.Withdrawal, error)
	ListByStatus(
		ctx context.Context,
		actor domain.Actor,
		status domain.WithdrawalStatusType,
		page repoargs.Page,
	) ([]domain.Withdrawal, error)
}

type TransferServicer interface {
	Initiate(ctx context.Context, actor domain.Actor, args service.InitiateTransferArgs) (*domain.TransferRequest, error)
	Respond(ctx context.Context, actor domain.Actor, transferID int64, accept bool) (*domain.TransferRequest, error)
	Submit(ctx context.Context, actor domain.Actor, transferID int64) (*domain.TransferRequest, error)
	Cancel(ctx context.Context, actor domain.Actor, transferID int64) (*domain.TransferRequest, error)
	Approve(ctx context.Context, actor domain.Actor, transferID int64) (*domain.TransferRequest, error)
	Reject(ctx context.Context, actor domain.Actor, transferID int64, reason string) (*domain.TransferRequest, error)
	ListMine(ctx context.Context, actor domain.Actor) ([]domain.TransferRequest, error)
	ListByStatus(
		ctx context.Context,
		actor domain.Actor,
		status domain.TransferStatusType,
		page repoargs.Page,
	) ([]domain.TransferRequest, error)
}

type OfflineTransferServicer interface {
	Invite(ctx context.Context, actor domain.Actor, args service.InviteBuyerArgs) (*domain.OfflineBuyerRequest, error)
	ListMine(ctx context.Context, actor domain.Actor) ([]domain.OfflineBuyerRequest, error)
}

type WalletServicer interface {
	Get(ctx context.Context, actor domain.Actor) (*domain.Wallet, error)
	Transactions(ctx context.Context, actor domain.Actor, page repoargs.Page) ([]domain.Transaction, error)
	Credit(ctx context.Context, actor domain.Actor, userID int64, amount decimal.Decimal) (*domain.Wallet, error)
}

type NotificationServicer interface {
	List(ctx context.Context, actor domain.Actor, page repoargs.Page) ([]domain.Notification, error)
	MarkRead(ctx context.Context, actor domain.Actor, id int64) (*domain.Notification, error)
}
