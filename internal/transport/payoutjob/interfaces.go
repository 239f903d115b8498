package payoutjob

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
)

type Servicer interface {
	Now() time.Time
	DueHoldings(ctx context.Context, asOf time.Time, afterID int64, limit uint) ([]domain.Holding, error)
	GenerateForHolding(ctx context.Context, holdingID int64, asOf time.Time) (*domain.Payout, error)
}

// Locker не дает нескольким экземплярам приложения генерировать выплаты одновременно.
type Locker interface {
	// Lock захватывает блокировку. Если она уже занята, возвращает ErrLocked.
	Lock(ctx context.Context) (func(ctx context.Context) error, error)
}
