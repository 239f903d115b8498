package repoargs

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateHolding struct {
	UserID         int64
	PropertyID     int64
	AmountInvested decimal.Decimal
	PurchaseDate   time.Time
	MaturityDate   time.Time
	LockInMonths   int
	MonthlyEarning decimal.Decimal
	NextPayoutDate time.Time
}

// DueForPayout выборка вложений с датой следующей выплаты не позже DueBy. Постраничность по id (keyset).
type DueForPayout struct {
	DueBy   time.Time
	AfterID int64
	Limit   uint
}

// AdvanceNextPayout сдвигает дату следующей выплаты с Expected на Next. LastPayoutDate выставляется только
// если ранее было пустым.
type AdvanceNextPayout struct {
	ID             int64
	Expected       time.Time
	Next           time.Time
	LastPayoutDate time.Time
}

// ApplyPayout фиксирует проведенную выплату на вложении.
type ApplyPayout struct {
	ID             int64
	Amount         decimal.Decimal
	PayoutDate     time.Time
	NextPayoutDate time.Time
}

// ReassignHolding перезаписывает владельца и параметры вложения, если текущий владелец ExpectedOwnerID.
type ReassignHolding struct {
	ID              int64
	ExpectedOwnerID int64
	NewOwnerID      int64
	AmountInvested  decimal.Decimal
	PurchaseDate    time.Time
	MaturityDate    time.Time
	MonthlyEarning  decimal.Decimal
	NextPayoutDate  time.Time
}
