package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")
)

// Виды ошибок бизнес-логики. Конкретные ошибки ниже оборачивают один из них, поэтому вызывающий код может
// проверять как конкретную ошибку, так и её вид через errors.Is.
var (
	ErrValidation        = errors.New("validation error")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("conflict")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrDependencyFailure = errors.New("dependency failure")
)

var (
	ErrInvalidAmount      = fmt.Errorf("%w: amount must be positive", ErrValidation)
	ErrBelowMinimum       = fmt.Errorf("%w: amount is below property minimum investment", ErrValidation)
	ErrExceedsAvailable   = fmt.Errorf("%w: amount exceeds property available to invest", ErrValidation)
	ErrReasonRequired     = fmt.Errorf("%w: reason is required", ErrValidation)
	ErrInvalidLockIn      = fmt.Errorf("%w: lock-in period must be positive", ErrValidation)
	ErrProofRequired      = fmt.Errorf("%w: proof of payment is required", ErrValidation)
	ErrBankDetailsMissing = fmt.Errorf("%w: bank details are incomplete", ErrValidation)
	ErrInvalidType        = fmt.Errorf("%w: unknown type", ErrValidation)
	ErrSelfTransfer       = fmt.Errorf("%w: seller and buyer must differ", ErrValidation)
	ErrTransferTooEarly   = fmt.Errorf("%w: holding is not transferable yet", ErrValidation)
	ErrNotTransferable    = fmt.Errorf("%w: holding can not be transferred", ErrValidation)
	ErrEmptyBatch         = fmt.Errorf("%w: nothing to process", ErrValidation)
	ErrDocumentRequired   = fmt.Errorf("%w: kyc document is required", ErrValidation)
	ErrBuyerRequired      = fmt.Errorf("%w: buyer email is required", ErrValidation)
	ErrInvalidStatus      = fmt.Errorf("%w: status is not allowed here", ErrValidation)

	ErrNotOwner       = fmt.Errorf("%w: actor does not own the resource", ErrForbidden)
	ErrAdminRequired  = fmt.Errorf("%w: admin role required", ErrForbidden)
	ErrKYCNotApproved = fmt.Errorf("%w: kyc is not approved", ErrForbidden)

	ErrAlreadyProcessed    = fmt.Errorf("%w: already processed", ErrConflict)
	ErrInvalidState        = fmt.Errorf("%w: entity is not in the required state", ErrConflict)
	ErrPayoutExists        = fmt.Errorf("%w: payout for this period already exists", ErrConflict)
	ErrTransferInProgress  = fmt.Errorf("%w: holding already has an active transfer", ErrConflict)
	ErrHoldingOwnerChanged = fmt.Errorf("%w: holding owner has changed", ErrConflict)
	ErrAdminExists         = fmt.Errorf("%w: admin already exists", ErrConflict)
	ErrWalletVersion       = fmt.Errorf("%w: wallet was modified concurrently", ErrConflict)

	ErrInsufficientBalance   = fmt.Errorf("%w: insufficient wallet balance", ErrInsufficientFunds)
	ErrInsufficientPrincipal = fmt.Errorf("%w: matured principal does not cover amount", ErrInsufficientFunds)
	ErrInsufficientEarnings  = fmt.Errorf("%w: earnings do not cover amount", ErrInsufficientFunds)
)
