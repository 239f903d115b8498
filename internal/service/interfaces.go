package service

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

// Notifier принимает события для доставки юзеру. Доставка не блокирует и не влияет на результат операции.
type Notifier interface {
	Notify(ctx context.Context, event domain.NotificationEvent)
}

// OfflineReconciler завершает ожидающие передачи вложений вне платформы для покупателя. Возвращает кол-во
// завершенных передач.
type OfflineReconciler interface {
	ReconcileForBuyer(ctx context.Context, buyer *domain.User) (int, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.User, error)
	UpdateWallet(ctx context.Context, args repoargs.UpdateWallet) (*domain.Wallet, error)
	CountByRole(ctx context.Context, role domain.RoleType) (int64, error)
	UpdateKYC(ctx context.Context, args repoargs.UpdateKYC) (*domain.User, error)
	GetByKYCStatus(ctx context.Context, status domain.KYCStatusType, page repoargs.Page) ([]domain.User, error)
}

type PropertyRepository interface {
	Create(ctx context.Context, args repoargs.CreateProperty) (*domain.Property, error)
	FindByID(ctx context.Context, id int64) (*domain.Property, error)
	GetAll(ctx context.Context) ([]domain.Property, error)
	Reserve(ctx context.Context, id int64, amount decimal.Decimal) (*domain.Property, error)
}

type HoldingRepository interface {
	Create(ctx context.Context, args repoargs.CreateHolding) (*domain.Holding, error)
	FindByID(ctx context.Context, id int64) (*domain.Holding, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Holding, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Holding, error)
	GetDueForPayout(ctx context.Context, args repoargs.DueForPayout) ([]domain.Holding, error)
	AdvanceNextPayout(ctx context.Context, args repoargs.AdvanceNextPayout) (*domain.Holding, error)
	ApplyPayout(ctx context.Context, args repoargs.ApplyPayout) (*domain.Holding, error)
	Reassign(ctx context.Context, args repoargs.ReassignHolding) (*domain.Holding, error)
	GetMaturedOpenByUser(ctx context.Context, userID int64, now time.Time) ([]domain.Holding, error)
	AddPrincipalWithdrawn(ctx context.Context, id int64, amount decimal.Decimal) (*domain.Holding, error)
	SumMaturedPrincipal(ctx context.Context, userID int64, now time.Time) (decimal.Decimal, error)
}

type PayoutRepository interface {
	Create(ctx context.Context, args repoargs.CreatePayout) (*domain.Payout, error)
	FindByID(ctx context.Context, id int64) (*domain.Payout, error)
	Transition(ctx context.Context, args repoargs.StatusTransition[domain.PayoutStatusType]) (*domain.Payout, error)
	GetByStatus(ctx context.Context, status domain.PayoutStatusType, page repoargs.Page) ([]domain.Payout, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Payout, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error)
	BatchCreate(ctx context.Context, transactions []repoargs.CreateTransaction, fn repoargs.BatchExecQueryRow)
	GetByUserID(ctx context.Context, userID int64, page repoargs.Page) ([]domain.Transaction, error)
}

type WithdrawalRepository interface {
	Create(ctx context.Context, args repoargs.CreateWithdrawal) (*domain.Withdrawal, error)
	FindByID(ctx context.Context, id int64) (*domain.Withdrawal, error)
	Transition(
		ctx context.Context,
		args repoargs.StatusTransition[domain.WithdrawalStatusType],
	) (*domain.Withdrawal, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Withdrawal, error)
	GetByStatus(ctx context.Context, status domain.WithdrawalStatusType, page repoargs.Page) ([]domain.Withdrawal, error)
}

type InvestmentRequestRepository interface {
	Create(ctx context.Context, args repoargs.CreateInvestmentRequest) (*domain.InvestmentRequest, error)
	FindByID(ctx context.Context, id int64) (*domain.InvestmentRequest, error)
	Transition(
		ctx context.Context,
		args repoargs.StatusTransition[domain.InvestmentRequestStatusType],
	) (*domain.InvestmentRequest, error)
	AttachHolding(ctx context.Context, id, holdingID int64) (*domain.InvestmentRequest, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.InvestmentRequest, error)
	GetByStatus(
		ctx context.Context,
		status domain.InvestmentRequestStatusType,
		page repoargs.Page,
	) ([]domain.InvestmentRequest, error)
}

type TransferRepository interface {
	Create(ctx context.Context, args repoargs.CreateTransfer) (*domain.TransferRequest, error)
	FindByID(ctx context.Context, id int64) (*domain.TransferRequest, error)
	Transition(ctx context.Context, args repoargs.TransferTransition) (*domain.TransferRequest, error)
	CountActiveByHolding(ctx context.Context, holdingID int64) (int64, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.TransferRequest, error)
	GetByStatus(ctx context.Context, status domain.TransferStatusType, page repoargs.Page) ([]domain.TransferRequest, error)
}

type OfflineTransferRepository interface {
	Create(ctx context.Context, args repoargs.CreateOfflineTransfer) (*domain.OfflineBuyerRequest, error)
	GetPendingByEmail(ctx context.Context, email string) ([]domain.OfflineBuyerRequest, error)
	Complete(ctx context.Context, id, buyerID int64, at time.Time) (*domain.OfflineBuyerRequest, error)
	CountPendingByHolding(ctx context.Context, holdingID int64) (int64, error)
	GetBySellerID(ctx context.Context, sellerID int64) ([]domain.OfflineBuyerRequest, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, args repoargs.CreateNotification) (*domain.Notification, error)
	GetByUserID(ctx context.Context, userID int64, page repoargs.Page) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) (*domain.Notification, error)
}
