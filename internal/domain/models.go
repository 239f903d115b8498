package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Actor аутентифицированный участник запроса. Заполняется транспортным слоем из jwt токена.
type Actor struct {
	ID   int64
	Role RoleType
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

type User struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Email             string
	Name              string
	Phone             string
	EncryptedPassword string
	Role              RoleType
	KYCStatus         KYCStatusType
	KYCDocumentURL    string
	Wallet            Wallet
}

type Property struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Name              string
	MinInvestment     decimal.Decimal
	AvailableToInvest decimal.Decimal
	TotalInvested     decimal.Decimal
	InvestorCount     int64
	MonthlyReturnRate decimal.Decimal
	LockInMonths      int
}

type Holding struct {
	ID                    int64
	CreatedAt             time.Time
	UpdatedAt             time.Time
	UserID                int64
	PropertyID            int64
	AmountInvested        decimal.Decimal
	PurchaseDate          time.Time
	MaturityDate          time.Time
	LockInMonths          int
	MonthlyEarning        decimal.Decimal
	Status                HoldingStatusType
	TotalEarningsReceived decimal.Decimal
	PayoutCount           int
	LastPayoutDate        *time.Time
	NextPayoutDate        time.Time
	PrincipalWithdrawn    decimal.Decimal
}

// HoldingView вложение вместе со статусом, вычисленным на момент чтения.
type HoldingView struct {
	Holding
	EffectiveStatus       HoldingStatusType
	CanWithdrawInvestment bool
}

type Payout struct {
	ID             int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	UserID         int64
	HoldingID      int64
	PropertyID     int64
	Amount         decimal.Decimal
	PayoutDate     time.Time
	NextPayoutDate time.Time
	Status         PayoutStatusType
	Month          int
	Year           int
	FailureReason  string
	ProcessedBy    *int64
	ProcessedAt    *time.Time
}

type Transaction struct {
	ID          int64
	CreatedAt   time.Time
	Reference   string
	UserID      int64
	Type        TransactionType
	Amount      decimal.Decimal
	Status      TransactionStatusType
	HoldingID   *int64
	PropertyID  *int64
	Description string
}

type BankDetails struct {
	AccountHolder string `json:"accountHolder"`
	AccountNumber string `json:"accountNumber"`
	IFSC          string `json:"ifsc"`
	BankName      string `json:"bankName"`
}

type Withdrawal struct {
	ID              int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	UserID          int64
	Amount          decimal.Decimal
	Type            WithdrawalType
	BankDetails     BankDetails
	Status          WithdrawalStatusType
	ReviewedBy      *int64
	ReviewedAt      *time.Time
	RejectionReason string
}

type InvestmentRequest struct {
	ID              int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	UserID          int64
	PropertyID      int64
	AmountInvested  decimal.Decimal
	TimePeriod      int
	ProofURL        string
	Status          InvestmentRequestStatusType
	ApprovedBy      *int64
	ApprovedAt      *time.Time
	RejectionReason string
	HoldingID       *int64
}

type TransferRequest struct {
	ID              int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	SellerID        int64
	BuyerID         int64
	PropertyID      int64
	HoldingID       int64
	SalePrice       decimal.Decimal
	Status          TransferStatusType
	BuyerResponse   BuyerResponseType
	ReviewedBy      *int64
	ReviewedAt      *time.Time
	RejectionReason string
}

type OfflineBuyerRequest struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	SellerID    int64
	PropertyID  int64
	HoldingID   int64
	BuyerEmail  string
	BuyerName   string
	BuyerPhone  string
	SalePrice   decimal.Decimal
	Status      OfflineTransferStatusType
	BuyerID     *int64
	CompletedAt *time.Time
}

type Notification struct {
	ID        int64
	CreatedAt time.Time
	UserID    int64
	Type      NotificationType
	Message   string
	Read      bool
}

// NotificationEvent событие для доставки юзеру через внешние каналы.
type NotificationEvent struct {
	UserID  int64
	Type    NotificationType
	Message string
}
