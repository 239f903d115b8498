package repoargs

import (
	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateTransaction struct {
	Reference   string
	UserID      int64
	Type        domain.TransactionType
	Amount      decimal.Decimal
	Status      domain.TransactionStatusType
	HoldingID   *int64
	PropertyID  *int64
	Description string
}
