package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const payoutColumns = `id, created_at, updated_at, user_id, holding_id, property_id, amount, payout_date,
	next_payout_date, status, month, year, failure_reason, processed_by, processed_at`

type PayoutRepository struct {
	conn uow.DBTX
}

func NewPayoutRepository(conn uow.DBTX) *PayoutRepository {
	return &PayoutRepository{conn: conn}
}

// Create создает выплату в статусе pending. Если выплата за этот месяц по вложению уже существует, возвращает
// domain.ErrDuplicateKey.
func (p *PayoutRepository) Create(ctx context.Context, args repoargs.CreatePayout) (*domain.Payout, error) {
	row := p.conn.QueryRow(ctx,
		`INSERT INTO payouts (user_id, holding_id, property_id, amount, payout_date, next_payout_date, month, year)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+payoutColumns,
		args.UserID, args.HoldingID, args.PropertyID, numericArg(args.Amount), args.PayoutDate,
		args.NextPayoutDate, args.Month, args.Year,
	)
	payout, err := scanPayout(row)
	if err != nil {
		return nil, convertErr(err, "creating payout for holding %d (%02d.%d)", args.HoldingID, args.Month, args.Year)
	}
	return payout, nil
}

func (p *PayoutRepository) FindByID(ctx context.Context, id int64) (*domain.Payout, error) {
	row := p.conn.QueryRow(ctx, `SELECT `+payoutColumns+` FROM payouts WHERE id = $1`, id)
	payout, err := scanPayout(row)
	if err != nil {
		return nil, convertErr(err, "finding payout by id %d", id)
	}
	return payout, nil
}

// Transition атомарно переводит выплату из статуса args.From в args.To. Если статус уже другой, возвращает
// domain.ErrRecordNotFound.
func (p *PayoutRepository) Transition(
	ctx context.Context,
	args repoargs.StatusTransition[domain.PayoutStatusType],
) (*domain.Payout, error) {
	row := p.conn.QueryRow(ctx,
		`UPDATE payouts SET
			status = $3,
			processed_by = $4,
			processed_at = $5,
			failure_reason = $6,
			updated_at = now()
		WHERE id = $1 AND status = $2
		RETURNING `+payoutColumns,
		args.ID, string(args.From), string(args.To), args.ActorID, args.At, args.Reason,
	)
	payout, err := scanPayout(row)
	if err != nil {
		return nil, convertErr(err, "moving payout %d from `%s` to `%s`", args.ID, args.From, args.To)
	}
	return payout, nil
}

func (p *PayoutRepository) GetByStatus(
	ctx context.Context,
	status domain.PayoutStatusType,
	page repoargs.Page,
) ([]domain.Payout, error) {
	limit, offset, pageErr := pageArgs(page.Limit, page.Offset)
	if pageErr != nil {
		return nil, convertErr(pageErr, "converting page args")
	}
	rows, err := p.conn.Query(ctx,
		`SELECT `+payoutColumns+` FROM payouts WHERE status = $1 ORDER BY id LIMIT $2 OFFSET $3`,
		string(status), limit, offset,
	)
	if err != nil {
		return nil, convertErr(err, "getting payouts by status `%s`", status)
	}
	return collectPayouts(rows, "collecting payouts by status `%s`", status)
}

// GetByUserID возвращает выплаты юзера, отсортированные по дате выплаты по убыванию.
func (p *PayoutRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Payout, error) {
	rows, err := p.conn.Query(ctx,
		`SELECT `+payoutColumns+` FROM payouts WHERE user_id = $1 ORDER BY payout_date DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting payouts by userID %d", userID)
	}
	return collectPayouts(rows, "collecting payouts of user %d", userID)
}

func collectPayouts(rows pgx.Rows, format string, args ...any) ([]domain.Payout, error) {
	payouts, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.Payout, error) {
		payout, scanErr := scanPayout(r)
		if scanErr != nil {
			return domain.Payout{}, scanErr
		}
		return *payout, nil
	})
	if err != nil {
		return nil, convertErr(err, format, args...)
	}
	return payouts, nil
}

func scanPayout(row pgx.Row) (*domain.Payout, error) {
	var m domain.Payout
	err := row.Scan(
		&m.ID,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.UserID,
		&m.HoldingID,
		&m.PropertyID,
		scanDecimal(&m.Amount),
		&m.PayoutDate,
		&m.NextPayoutDate,
		&m.Status,
		&m.Month,
		&m.Year,
		&m.FailureReason,
		&m.ProcessedBy,
		&m.ProcessedAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &m, nil
}
