package repoargs

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreatePayout struct {
	UserID         int64
	HoldingID      int64
	PropertyID     int64
	Amount         decimal.Decimal
	PayoutDate     time.Time
	NextPayoutDate time.Time
	Month          int
	Year           int
}
