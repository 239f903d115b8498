package domain

type RoleType string

const (
	RoleUser  RoleType = "user"
	RoleAdmin RoleType = "admin"
)

type KYCStatusType string

const (
	KYCStatusNotSubmitted KYCStatusType = "not_submitted"
	KYCStatusPending      KYCStatusType = "pending"
	KYCStatusApproved     KYCStatusType = "approved"
	KYCStatusRejected     KYCStatusType = "rejected"
)

type HoldingStatusType string

const (
	HoldingStatusLockIn  HoldingStatusType = "lock-in"
	HoldingStatusMatured HoldingStatusType = "matured"
	// HoldingStatusClosed вложение, основная сумма которого полностью выведена.
	HoldingStatusClosed HoldingStatusType = "closed"
)

type PayoutStatusType string

const (
	PayoutStatusPending   PayoutStatusType = "pending"
	PayoutStatusProcessed PayoutStatusType = "processed"
	PayoutStatusCompleted PayoutStatusType = "completed"
	PayoutStatusFailed    PayoutStatusType = "failed"
)

type TransactionType string

const (
	TransactionInvestment TransactionType = "investment"
	TransactionEarning    TransactionType = "earning"
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionCredit     TransactionType = "credit"
	TransactionDebit      TransactionType = "debit"
)

type TransactionStatusType string

const (
	TransactionStatusCompleted TransactionStatusType = "completed"
	TransactionStatusPending   TransactionStatusType = "pending"
)

type WithdrawalType string

const (
	WithdrawalInvestment WithdrawalType = "investment"
	WithdrawalEarnings   WithdrawalType = "earnings"
)

type WithdrawalStatusType string

const (
	WithdrawalStatusPending   WithdrawalStatusType = "pending"
	WithdrawalStatusApproved  WithdrawalStatusType = "approved"
	WithdrawalStatusRejected  WithdrawalStatusType = "rejected"
	WithdrawalStatusProcessed WithdrawalStatusType = "processed"
)

type InvestmentRequestStatusType string

const (
	InvestmentRequestPending  InvestmentRequestStatusType = "pending"
	InvestmentRequestApproved InvestmentRequestStatusType = "approved"
	InvestmentRequestRejected InvestmentRequestStatusType = "rejected"
)

type TransferStatusType string

const (
	TransferStatusPending       TransferStatusType = "pending"
	TransferStatusAccepted      TransferStatusType = "accepted"
	TransferStatusRejected      TransferStatusType = "rejected"
	TransferStatusCancelled     TransferStatusType = "cancelled"
	TransferStatusAdminPending  TransferStatusType = "admin_pending"
	TransferStatusAdminApproved TransferStatusType = "admin_approved"
	TransferStatusAdminRejected TransferStatusType = "admin_rejected"
	TransferStatusCompleted     TransferStatusType = "completed"
)

// IsTerminal сообщает, завершена ли заявка на передачу. Пока заявка не в терминальном статусе,
// другую заявку на то же вложение создать нельзя.
func (s TransferStatusType) IsTerminal() bool {
	switch s {
	case TransferStatusRejected, TransferStatusCancelled, TransferStatusAdminRejected, TransferStatusCompleted:
		return true
	default:
		return false
	}
}

type BuyerResponseType string

const (
	BuyerResponsePending  BuyerResponseType = "pending"
	BuyerResponseAccepted BuyerResponseType = "accepted"
	BuyerResponseDeclined BuyerResponseType = "declined"
)

type OfflineTransferStatusType string

const (
	OfflineTransferPending   OfflineTransferStatusType = "pending"
	OfflineTransferCompleted OfflineTransferStatusType = "completed"
)

type NotificationType string

const (
	NotificationInvestmentSubmitted NotificationType = "investment_submitted"
	NotificationInvestmentApproved  NotificationType = "investment_approved"
	NotificationInvestmentRejected  NotificationType = "investment_rejected"
	NotificationPayoutCredited      NotificationType = "payout_credited"
	NotificationWithdrawalRequested NotificationType = "withdrawal_requested"
	NotificationWithdrawalApproved  NotificationType = "withdrawal_approved"
	NotificationWithdrawalRejected  NotificationType = "withdrawal_rejected"
	NotificationTransferRequested   NotificationType = "transfer_requested"
	NotificationTransferUpdated     NotificationType = "transfer_updated"
	NotificationTransferCompleted   NotificationType = "transfer_completed"
	NotificationKYCUpdated          NotificationType = "kyc_updated"
)
