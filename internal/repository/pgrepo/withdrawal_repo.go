package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const withdrawalColumns = `id, created_at, updated_at, user_id, amount, type, bank_details, status, reviewed_by,
	reviewed_at, rejection_reason`

type WithdrawalRepository struct {
	conn uow.DBTX
}

func NewWithdrawalRepository(conn uow.DBTX) *WithdrawalRepository {
	return &WithdrawalRepository{conn: conn}
}

func (w *WithdrawalRepository) Create(ctx context.Context, args repoargs.CreateWithdrawal) (*domain.Withdrawal, error) {
	row := w.conn.QueryRow(ctx,
		`INSERT INTO withdrawals (user_id, amount, type, bank_details)
		VALUES ($1, $2, $3, $4)
		RETURNING `+withdrawalColumns,
		args.UserID, numericArg(args.Amount), string(args.Type), args.BankDetails,
	)
	withdrawal, err := scanWithdrawal(row)
	if err != nil {
		return nil, convertErr(err, "creating `%s` withdrawal for user %d", args.Type, args.UserID)
	}
	return withdrawal, nil
}

func (w *WithdrawalRepository) FindByID(ctx context.Context, id int64) (*domain.Withdrawal, error) {
	row := w.conn.QueryRow(ctx, `SELECT `+withdrawalColumns+` FROM withdrawals WHERE id = $1`, id)
	withdrawal, err := scanWithdrawal(row)
	if err != nil {
		return nil, convertErr(err, "finding withdrawal by id %d", id)
	}
	return withdrawal, nil
}

// Transition атомарно переводит заявку на вывод из args.From в args.To. Если статус уже другой, возвращает
// domain.ErrRecordNotFound.
func (w *WithdrawalRepository) Transition(
	ctx context.Context,
	args repoargs.StatusTransition[domain.WithdrawalStatusType],
) (*domain.Withdrawal, error) {
	row := w.conn.QueryRow(ctx,
		`UPDATE withdrawals SET
			status = $3,
			reviewed_by = $4,
			reviewed_at = $5,
			rejection_reason = $6,
			updated_at = now()
		WHERE id = $1 AND status = $2
		RETURNING `+withdrawalColumns,
		args.ID, string(args.From), string(args.To), args.ActorID, args.At, args.Reason,
	)
	withdrawal, err := scanWithdrawal(row)
	if err != nil {
		return nil, convertErr(err, "moving withdrawal %d from `%s` to `%s`", args.ID, args.From, args.To)
	}
	return withdrawal, nil
}

func (w *WithdrawalRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Withdrawal, error) {
	rows, err := w.conn.Query(ctx,
		`SELECT `+withdrawalColumns+` FROM withdrawals WHERE user_id = $1 ORDER BY id DESC`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting withdrawals by userID %d", userID)
	}
	return collectWithdrawals(rows, "collecting withdrawals of user %d", userID)
}

func (w *WithdrawalRepository) GetByStatus(
	ctx context.Context,
	status domain.WithdrawalStatusType,
	page repoargs.Page,
) ([]domain.Withdrawal, error) {
	limit, offset, pageErr := pageArgs(page.Limit, page.Offset)
	if pageErr != nil {
		return nil, convertErr(pageErr, "converting page args")
	}
	rows, err := w.conn.Query(ctx,
		`SELECT `+withdrawalColumns+` FROM withdrawals WHERE status = $1 ORDER BY id LIMIT $2 OFFSET $3`,
		string(status), limit, offset,
	)
	if err != nil {
		return nil, convertErr(err, "getting withdrawals by status `%s`", status)
	}
	return collectWithdrawals(rows, "collecting withdrawals by status `%s`", status)
}

func collectWithdrawals(rows pgx.Rows, format string, args ...any) ([]domain.Withdrawal, error) {
	withdrawals, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.Withdrawal, error) {
		withdrawal, scanErr := scanWithdrawal(r)
		if scanErr != nil {
			return domain.Withdrawal{}, scanErr
		}
		return *withdrawal, nil
	})
	if err != nil {
		return nil, convertErr(err, format, args...)
	}
	return withdrawals, nil
}

func scanWithdrawal(row pgx.Row) (*domain.Withdrawal, error) {
	var m domain.Withdrawal
	err := row.Scan(
		&m.ID,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.UserID,
		scanDecimal(&m.Amount),
		&m.Type,
		&m.BankDetails,
		&m.Status,
		&m.ReviewedBy,
		&m.ReviewedAt,
		&m.RejectionReason,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &m, nil
}
