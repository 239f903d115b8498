package pgrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const holdingColumns = `id, created_at, updated_at, user_id, property_id, amount_invested, purchase_date,
	maturity_date, lock_in_months, monthly_earning, status, total_earnings_received, payout_count,
	last_payout_date, next_payout_date, principal_withdrawn`

type HoldingRepository struct {
	conn uow.DBTX
}

func NewHoldingRepository(conn uow.DBTX) *HoldingRepository {
	return &HoldingRepository{conn: conn}
}

func (h *HoldingRepository) Create(ctx context.Context, args repoargs.CreateHolding) (*domain.Holding, error) {
	row := h.conn.QueryRow(ctx,
		`INSERT INTO holdings (user_id, property_id, amount_invested, purchase_date, maturity_date, lock_in_months,
			monthly_earning, next_payout_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+holdingColumns,
		args.UserID, args.PropertyID, numericArg(args.AmountInvested), args.PurchaseDate, args.MaturityDate,
		args.LockInMonths, numericArg(args.MonthlyEarning), args.NextPayoutDate,
	)
	holding, err := scanHolding(row)
	if err != nil {
		return nil, convertErr(err, "creating holding for user %d on property %d", args.UserID, args.PropertyID)
	}
	return holding, nil
}

func (h *HoldingRepository) FindByID(ctx context.Context, id int64) (*domain.Holding, error) {
	row := h.conn.QueryRow(ctx, `SELECT `+holdingColumns+` FROM holdings WHERE id = $1`, id)
	holding, err := scanHolding(row)
	if err != nil {
		return nil, convertErr(err, "finding holding by id %d", id)
	}
	return holding, nil
}

// FindByIDForUpdate читает вложение и блокирует строку до конца транзакции.
func (h *HoldingRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Holding, error) {
	row := h.conn.QueryRow(ctx, `SELECT `+holdingColumns+` FROM holdings WHERE id = $1 FOR UPDATE`, id)
	holding, err := scanHolding(row)
	if err != nil {
		return nil, convertErr(err, "finding holding by id %d for update", id)
	}
	return holding, nil
}

// GetByUserID возвращает вложения юзера, отсортированные по дате покупки по убыванию.
func (h *HoldingRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Holding, error) {
	rows, err := h.conn.Query(ctx,
		`SELECT `+holdingColumns+` FROM holdings WHERE user_id = $1 ORDER BY purchase_date DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting holdings by userID %d", userID)
	}
	return collectHoldings(rows, "collecting holdings of user %d", userID)
}

// GetDueForPayout возвращает вложения в периоде блокировки с датой следующей выплаты не позже args.DueBy.
// Закрытые и созревшие вложения отсекаются здесь же, окончательное решение принимает сервис.
func (h *HoldingRepository) GetDueForPayout(ctx context.Context, args repoargs.DueForPayout) ([]domain.Holding, error) {
	limit, _, pageErr := pageArgs(args.Limit, 0)
	if pageErr != nil {
		return nil, convertErr(pageErr, "converting limit")
	}
	rows, err := h.conn.Query(ctx,
		`SELECT `+holdingColumns+` FROM holdings
		WHERE next_payout_date <= $1
			AND maturity_date > $1
			AND principal_withdrawn < amount_invested
			AND id > $2
		ORDER BY id
		LIMIT $3`,
		args.DueBy, args.AfterID, limit,
	)
	if err != nil {
		return nil, convertErr(err, "getting holdings due for payout by %s", args.DueBy)
	}
	return collectHoldings(rows, "collecting holdings due for payout after id %d", args.AfterID)
}

// AdvanceNextPayout сдвигает дату следующей выплаты вперед только если она все еще равна args.Expected.
// Иначе возвращает domain.ErrRecordNotFound.
func (h *HoldingRepository) AdvanceNextPayout(ctx context.Context, args repoargs.AdvanceNextPayout) (*domain.Holding, error) {
	row := h.conn.QueryRow(ctx,
		`UPDATE holdings SET
			next_payout_date = GREATEST(next_payout_date, $3),
			last_payout_date = COALESCE(last_payout_date, $4),
			updated_at = now()
		WHERE id = $1 AND next_payout_date = $2
		RETURNING `+holdingColumns,
		args.ID, args.Expected, args.Next, args.LastPayoutDate,
	)
	holding, err := scanHolding(row)
	if err != nil {
		return nil, convertErr(err, "advancing next payout of holding %d", args.ID)
	}
	return holding, nil
}

// ApplyPayout увеличивает сумму полученного дохода и счетчик выплат. Дата следующей выплаты никогда
// не сдвигается назад.
func (h *HoldingRepository) ApplyPayout(ctx context.Context, args repoargs.ApplyPayout) (*domain.Holding, error) {
	row := h.conn.QueryRow(ctx,
		`UPDATE holdings SET
			total_earnings_received = total_earnings_received + $2,
			payout_count = payout_count + 1,
			last_payout_date = $3,
			next_payout_date = GREATEST(next_payout_date, $4),
			updated_at = now()
		WHERE id = $1
		RETURNING `+holdingColumns,
		args.ID, numericArg(args.Amount), args.PayoutDate, args.NextPayoutDate,
	)
	holding, err := scanHolding(row)
	if err != nil {
		return nil, convertErr(err, "applying payout to holding %d", args.ID)
	}
	return holding, nil
}

// Reassign передает вложение новому владельцу, если текущий владелец совпадает с args.ExpectedOwnerID.
// Иначе возвращает domain.ErrRecordNotFound.
func (h *HoldingRepository) Reassign(ctx context.Context, args repoargs.ReassignHolding) (*domain.Holding, error) {
	row := h.conn.QueryRow(ctx,
		`UPDATE holdings SET
			user_id = $3,
			amount_invested = $4,
			purchase_date = $5,
			maturity_date = $6,
			monthly_earning = $7,
			next_payout_date = $8,
			status = 'lock-in',
			total_earnings_received = 0,
			payout_count = 0,
			last_payout_date = NULL,
			principal_withdrawn = 0,
			updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+holdingColumns,
		args.ID, args.ExpectedOwnerID, args.NewOwnerID, numericArg(args.AmountInvested), args.PurchaseDate,
		args.MaturityDate, numericArg(args.MonthlyEarning), args.NextPayoutDate,
	)
	holding, err := scanHolding(row)
	if err != nil {
		return nil, convertErr(err, "reassigning holding %d from user %d", args.ID, args.ExpectedOwnerID)
	}
	return holding, nil
}

// noActiveTransfer условие на вложения без незавершенной онлайн или офлайн передачи.
const noActiveTransfer = `NOT EXISTS (
		SELECT 1 FROM transfer_requests tr
		WHERE tr.holding_id = holdings.id AND tr.status IN ('pending', 'accepted', 'admin_pending', 'admin_approved')
	)
	AND NOT EXISTS (
		SELECT 1 FROM offline_buyer_requests ob
		WHERE ob.holding_id = holdings.id AND ob.status = 'pending'
	)`

// GetMaturedOpenByUser возвращает созревшие и не закрытые вложения юзера в порядке созревания, блокируя их
// до конца транзакции. Вложения с незавершенной передачей не возвращаются: их основную сумму выводить нельзя.
func (h *HoldingRepository) GetMaturedOpenByUser(
	ctx context.Context,
	userID int64,
	now time.Time,
) ([]domain.Holding, error) {
	rows, err := h.conn.Query(ctx,
		`SELECT `+holdingColumns+` FROM holdings
		WHERE user_id = $1 AND maturity_date <= $2 AND principal_withdrawn < amount_invested
			AND `+noActiveTransfer+`
		ORDER BY maturity_date, id
		FOR UPDATE`,
		userID, now,
	)
	if err != nil {
		return nil, convertErr(err, "getting matured holdings of user %d", userID)
	}
	return collectHoldings(rows, "collecting matured holdings of user %d", userID)
}

// AddPrincipalWithdrawn увеличивает выведенную основную сумму вложения. Если сумма превысит вложенную,
// возвращает domain.ErrRecordNotFound.
func (h *HoldingRepository) AddPrincipalWithdrawn(
	ctx context.Context,
	id int64,
	amount decimal.Decimal,
) (*domain.Holding, error) {
	row := h.conn.QueryRow(ctx,
		`UPDATE holdings SET
			principal_withdrawn = principal_withdrawn + $2,
			status = CASE WHEN principal_withdrawn + $2 = amount_invested THEN 'closed'::holding_status_type ELSE status END,
			updated_at = now()
		WHERE id = $1 AND principal_withdrawn + $2 <= amount_invested
		RETURNING `+holdingColumns,
		id, numericArg(amount),
	)
	holding, err := scanHolding(row)
	if err != nil {
		return nil, convertErr(err, "withdrawing %s of principal from holding %d", amount, id)
	}
	return holding, nil
}

// SumMaturedPrincipal возвращает невыведенную основную сумму созревших вложений юзера на момент now.
func (h *HoldingRepository) SumMaturedPrincipal(ctx context.Context, userID int64, now time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := h.conn.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount_invested - principal_withdrawn), 0) FROM holdings
		WHERE user_id = $1 AND maturity_date <= $2`,
		userID, now,
	).Scan(scanDecimal(&sum))
	if err != nil {
		return decimal.Zero, convertErr(err, "summing matured principal of user %d", userID)
	}
	return sum, nil
}

func collectHoldings(rows pgx.Rows, format string, args ...any) ([]domain.Holding, error) {
	holdings, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.Holding, error) {
		holding, scanErr := scanHolding(r)
		if scanErr != nil {
			return domain.Holding{}, scanErr
		}
		return *holding, nil
	})
	if err != nil {
		return nil, convertErr(err, format, args...)
	}
	return holdings, nil
}

func scanHolding(row pgx.Row) (*domain.Holding, error) {
	var m domain.Holding
	err := row.Scan(
		&m.ID,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.UserID,
		&m.PropertyID,
		scanDecimal(&m.AmountInvested),
		&m.PurchaseDate,
		&m.MaturityDate,
		&m.LockInMonths,
		scanDecimal(&m.MonthlyEarning),
		&m.Status,
		scanDecimal(&m.TotalEarningsReceived),
		&m.PayoutCount,
		&m.LastPayoutDate,
		&m.NextPayoutDate,
		scanDecimal(&m.PrincipalWithdrawn),
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &m, nil
}
