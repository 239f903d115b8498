package api

import (
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/service"
	"github.com/shopspring/decimal"
)

type UserResponse struct {
	ID        int64                `json:"id"`
	Email     string               `json:"email"`
	Name      string               `json:"name"`
	Phone     string               `json:"phone,omitempty"`
	Role      domain.RoleType      `json:"role"`
	KYCStatus domain.KYCStatusType `json:"kycStatus"`
	CreatedAt time.Time            `json:"createdAt"`
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      u.Role,
		KYCStatus: u.KYCStatus,
		CreatedAt: u.CreatedAt,
	}
}

type WalletResponse struct {
	Balance             decimal.Decimal `json:"balance"`
	TotalInvestments    decimal.Decimal `json:"totalInvestments"`
	EarningsReceived    decimal.Decimal `json:"earningsReceived"`
	WithdrawableBalance decimal.Decimal `json:"withdrawableBalance"`
	LockedAmount        decimal.Decimal `json:"lockedAmount"`
}

func newWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		Balance:             w.Balance,
		TotalInvestments:    w.TotalInvestments,
		EarningsReceived:    w.EarningsReceived,
		WithdrawableBalance: w.WithdrawableBalance,
		LockedAmount:        w.LockedAmount,
	}
}

type PropertyResponse struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	MinInvestment     decimal.Decimal `json:"minInvestment"`
	AvailableToInvest decimal.Decimal `json:"availableToInvest"`
	TotalInvested     decimal.Decimal `json:"totalInvested"`
	InvestorCount     int64           `json:"investorCount"`
	MonthlyReturnRate decimal.Decimal `json:"monthlyReturnRate"`
	LockInMonths      int             `json:"lockInMonths"`
}

func newPropertyResponse(p *domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:                p.ID,
		Name:              p.Name,
		MinInvestment:     p.MinInvestment,
		AvailableToInvest: p.AvailableToInvest,
		TotalInvested:     p.TotalInvested,
		InvestorCount:     p.InvestorCount,
		MonthlyReturnRate: p.MonthlyReturnRate,
		LockInMonths:      p.LockInMonths,
	}
}

type HoldingResponse struct {
	ID                    int64                    `json:"id"`
	PropertyID            int64                    `json:"propertyId"`
	AmountInvested        decimal.Decimal          `json:"amountInvested"`
	PurchaseDate          time.Time                `json:"purchaseDate"`
	MaturityDate          time.Time                `json:"maturityDate"`
	LockInMonths          int                      `json:"lockInMonths"`
	MonthlyEarning        decimal.Decimal          `json:"monthlyEarning"`
	Status                domain.HoldingStatusType `json:"status"`
	TotalEarningsReceived decimal.Decimal          `json:"totalEarningsReceived"`
	PayoutCount           int                      `json:"payoutCount"`
	LastPayoutDate        *time.Time               `json:"lastPayoutDate,omitempty"`
	NextPayoutDate        time.Time                `json:"nextPayoutDate"`
	PrincipalWithdrawn    decimal.Decimal          `json:"principalWithdrawn"`
	CanWithdrawInvestment bool                     `json:"canWithdrawInvestment"`
}

func newHoldingResponse(v *domain.HoldingView) HoldingResponse {
	return HoldingResponse{
		ID:                    v.ID,
		PropertyID:            v.PropertyID,
		AmountInvested:        v.AmountInvested,
		PurchaseDate:          v.PurchaseDate,
		MaturityDate:          v.MaturityDate,
		LockInMonths:          v.LockInMonths,
		MonthlyEarning:        v.MonthlyEarning,
		Status:                v.EffectiveStatus,
		TotalEarningsReceived: v.TotalEarningsReceived,
		PayoutCount:           v.PayoutCount,
		LastPayoutDate:        v.LastPayoutDate,
		NextPayoutDate:        v.NextPayoutDate,
		PrincipalWithdrawn:    v.PrincipalWithdrawn,
		CanWithdrawInvestment: v.CanWithdrawInvestment,
	}
}

func newHoldingsResponse(views []domain.HoldingView) []HoldingResponse {
	res := make([]HoldingResponse, len(views))
	for i := range views {
		res[i] = newHoldingResponse(&views[i])
	}
	return res
}

type PortfolioResponse struct {
	Holdings         []HoldingResponse `json:"holdings"`
	TotalInvested    decimal.Decimal   `json:"totalInvested"`
	TotalEarnings    decimal.Decimal   `json:"totalEarnings"`
	MonthlyIncome    decimal.Decimal   `json:"monthlyIncome"`
	MaturedPrincipal decimal.Decimal   `json:"maturedPrincipal"`
}

func newPortfolioResponse(p *service.Portfolio) PortfolioResponse {
	return PortfolioResponse{
		Holdings:         newHoldingsResponse(p.Holdings),
		TotalInvested:    p.TotalInvested,
		TotalEarnings:    p.TotalEarnings,
		MonthlyIncome:    p.MonthlyIncome,
		MaturedPrincipal: p.MaturedPrincipal,
	}
}

type InvestmentRequestResponse struct {
	ID              int64                              `json:"id"`
	UserID          int64                              `json:"userId"`
	PropertyID      int64                              `json:"propertyId"`
	AmountInvested  decimal.Decimal                    `json:"amountInvested"`
	TimePeriod      int                                `json:"timePeriod"`
	ProofURL        string                             `json:"proofUrl"`
	Status          domain.InvestmentRequestStatusType `json:"status"`
	RejectionReason string                             `json:"rejectionReason,omitempty"`
	HoldingID       *int64                             `json:"holdingId,omitempty"`
	CreatedAt       time.Time                          `json:"createdAt"`
}

func newInvestmentRequestResponse(r *domain.InvestmentRequest) InvestmentRequestResponse {
	return InvestmentRequestResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		PropertyID:      r.PropertyID,
		AmountInvested:  r.AmountInvested,
		TimePeriod:      r.TimePeriod,
		ProofURL:        r.ProofURL,
		Status:          r.Status,
		RejectionReason: r.RejectionReason,
		HoldingID:       r.HoldingID,
		CreatedAt:       r.CreatedAt,
	}
}

type PayoutResponse struct {
	ID             int64                   `json:"id"`
	UserID         int64                   `json:"userId"`
	HoldingID      int64                   `json:"holdingId"`
	PropertyID     int64                   `json:"propertyId"`
	Amount         decimal.Decimal         `json:"amount"`
	PayoutDate     time.Time               `json:"payoutDate"`
	NextPayoutDate time.Time               `json:"nextPayoutDate"`
	Status         domain.PayoutStatusType `json:"status"`
	Month          int                     `json:"month"`
	Year           int                     `json:"year"`
	FailureReason  string                  `json:"failureReason,omitempty"`
}

func newPayoutResponse(p *domain.Payout) PayoutResponse {
	return PayoutResponse{
		ID:             p.ID,
		UserID:         p.UserID,
		HoldingID:      p.HoldingID,
		PropertyID:     p.PropertyID,
		Amount:         p.Amount,
		PayoutDate:     p.PayoutDate,
		NextPayoutDate: p.NextPayoutDate,
		Status:         p.Status,
		Month:          p.Month,
		Year:           p.Year,
		FailureReason:  p.FailureReason,
	}
}

func newPayoutsResponse(payouts []domain.Payout) []PayoutResponse {
	res := make([]PayoutResponse, len(payouts))
	for i := range payouts {
		res[i] = newPayoutResponse(&payouts[i])
	}
	return res
}

type TransactionResponse struct {
	ID          int64                        `json:"id"`
	Reference   string                       `json:"reference"`
	Type        domain.TransactionType       `json:"type"`
	Amount      decimal.Decimal              `json:"amount"`
	Status      domain.TransactionStatusType `json:"status"`
	HoldingID   *int64                       `json:"holdingId,omitempty"`
	PropertyID  *int64                       `json:"propertyId,omitempty"`
	Description string                       `json:"description"`
	CreatedAt   time.Time                    `json:"createdAt"`
}

type WithdrawalResponse struct {
	ID              int64                       `json:"id"`
	UserID          int64                       `json:"userId"`
	Amount          decimal.Decimal             `json:"amount"`
	Type            domain.WithdrawalType       `json:"type"`
	BankDetails     domain.BankDetails          `json:"bankDetails"`
	Status          domain.WithdrawalStatusType `json:"status"`
	RejectionReason string                      `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time                   `json:"createdAt"`
}

func newWithdrawalResponse(w *domain.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		ID:              w.ID,
		UserID:          w.UserID,
		Amount:          w.Amount,
		Type:            w.Type,
		BankDetails:     w.BankDetails,
		Status:          w.Status,
		RejectionReason: w.RejectionReason,
		CreatedAt:       w.CreatedAt,
	}
}

type TransferResponse struct {
	ID              int64                     `json:"id"`
	SellerID        int64                     `json:"sellerId"`
	BuyerID         int64                     `json:"buyerId"`
	PropertyID      int64                     `json:"propertyId"`
	HoldingID       int64                     `json:"holdingId"`
	SalePrice       decimal.Decimal           `json:"salePrice"`
	Status          domain.TransferStatusType `json:"status"`
	BuyerResponse   domain.BuyerResponseType  `json:"buyerResponse"`
	RejectionReason string                    `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time                 `json:"createdAt"`
}

func newTransferResponse(t *domain.TransferRequest) TransferResponse {
	return TransferResponse{
		ID:              t.ID,
		SellerID:        t.SellerID,
		BuyerID:         t.BuyerID,
		PropertyID:      t.PropertyID,
		HoldingID:       t.HoldingID,
		SalePrice:       t.SalePrice,
		Status:          t.Status,
		BuyerResponse:   t.BuyerResponse,
		RejectionReason: t.RejectionReason,
		CreatedAt:       t.CreatedAt,
	}
}

type OfflineTransferResponse struct {
	ID          int64                            `json:"id"`
	SellerID    int64                            `json:"sellerId"`
	PropertyID  int64                            `json:"propertyId"`
	HoldingID   int64                            `json:"holdingId"`
	BuyerEmail  string                           `json:"buyerEmail"`
	BuyerName   string                           `json:"buyerName"`
	BuyerPhone  string                           `json:"buyerPhone,omitempty"`
	SalePrice   decimal.Decimal                  `json:"salePrice"`
	Status      domain.OfflineTransferStatusType `json:"status"`
	BuyerID     *int64                           `json:"buyerId,omitempty"`
	CompletedAt *time.Time                       `json:"completedAt,omitempty"`
}

func newOfflineTransferResponse(o *domain.OfflineBuyerRequest) OfflineTransferResponse {
	return OfflineTransferResponse{
		ID:          o.ID,
		SellerID:    o.SellerID,
		PropertyID:  o.PropertyID,
		HoldingID:   o.HoldingID,
		BuyerEmail:  o.BuyerEmail,
		BuyerName:   o.BuyerName,
		BuyerPhone:  o.BuyerPhone,
		SalePrice:   o.SalePrice,
		Status:      o.Status,
		BuyerID:     o.BuyerID,
		CompletedAt: o.CompletedAt,
	}
}

type NotificationResponse struct {
	ID        int64                   `json:"id"`
	Type      domain.NotificationType `json:"type"`
	Message   string                  `json:"message"`
	Read      bool                    `json:"read"`
	CreatedAt time.Time               `json:"createdAt"`
}

func newNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
