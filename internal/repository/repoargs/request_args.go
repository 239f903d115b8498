package repoargs

import (
	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateWithdrawal struct {
	UserID      int64
	Amount      decimal.Decimal
	Type        domain.WithdrawalType
	BankDetails domain.BankDetails
}

type CreateInvestmentRequest struct {
	UserID     int64
	PropertyID int64
	Amount     decimal.Decimal
	TimePeriod int
	ProofURL   string
}

type CreateTransfer struct {
	SellerID   int64
	BuyerID    int64
	PropertyID int64
	HoldingID  int64
	SalePrice  decimal.Decimal
}

// TransferTransition переход статуса заявки на передачу. BuyerResponse обновляется только если не nil.
type TransferTransition struct {
	StatusTransition[domain.TransferStatusType]
	BuyerResponse *domain.BuyerResponseType
}

type CreateOfflineTransfer struct {
	SellerID   int64
	PropertyID int64
	HoldingID  int64
	BuyerEmail string
	BuyerName  string
	BuyerPhone string
	SalePrice  decimal.Decimal
}

type CreateNotification struct {
	UserID  int64
	Type    domain.NotificationType
	Message string
}

type CreateProperty struct {
	Name              string
	MinInvestment     decimal.Decimal
	AvailableToInvest decimal.Decimal
	MonthlyReturnRate decimal.Decimal
	LockInMonths      int
}
