package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const investmentRequestColumns = `id, created_at, updated_at, user_id, property_id, amount_invested, time_period,
	proof_url, status, approved_by, approved_at, rejection_reason, holding_id`

type InvestmentRequestRepository struct {
	conn uow.DBTX
}

func NewInvestmentRequestRepository(conn uow.DBTX) *InvestmentRequestRepository {
	return &InvestmentRequestRepository{conn: conn}
}

func (i *InvestmentRequestRepository) Create(
	ctx context.Context,
	args repoargs.CreateInvestmentRequest,
) (*domain.InvestmentRequest, error) {
	row := i.conn.QueryRow(ctx,
		`INSERT INTO investment_requests (user_id, property_id, amount_invested, time_period, proof_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+investmentRequestColumns,
		args.UserID, args.PropertyID, numericArg(args.Amount), args.TimePeriod, args.ProofURL,
	)
	request, err := scanInvestmentRequest(row)
	if err != nil {
		return nil, convertErr(err, "creating investment request for user %d", args.UserID)
	}
	return request, nil
}

func (i *InvestmentRequestRepository) FindByID(ctx context.Context, id int64) (*domain.InvestmentRequest, error) {
	row := i.conn.QueryRow(ctx, `SELECT `+investmentRequestColumns+` FROM investment_requests WHERE id = $1`, id)
	request, err := scanInvestmentRequest(row)
	if err != nil {
		return nil, convertErr(err, "finding investment request by id %d", id)
	}
	return request, nil
}

// Transition атомарно переводит заявку из args.From в args.To. Если статус уже другой, возвращает
// domain.ErrRecordNotFound.
func (i *InvestmentRequestRepository) Transition(
	ctx context.Context,
	args repoargs.StatusTransition[domain.InvestmentRequestStatusType],
) (*domain.InvestmentRequest, error) {
	row := i.conn.QueryRow(ctx,
		`UPDATE investment_requests SET
			status = $3,
			approved_by = $4,
			approved_at = $5,
			rejection_reason = $6,
			updated_at = now()
		WHERE id = $1 AND status = $2
		RETURNING `+investmentRequestColumns,
		args.ID, string(args.From), string(args.To), args.ActorID, args.At, args.Reason,
	)
	request, err := scanInvestmentRequest(row)
	if err != nil {
		return nil, convertErr(err, "moving investment request %d from `%s` to `%s`", args.ID, args.From, args.To)
	}
	return request, nil
}

// AttachHolding связывает одобренную заявку с созданным по ней вложением.
func (i *InvestmentRequestRepository) AttachHolding(
	ctx context.Context,
	id, holdingID int64,
) (*domain.InvestmentRequest, error) {
	row := i.conn.QueryRow(ctx,
		`UPDATE investment_requests SET holding_id = $2, updated_at = now()
		WHERE id = $1 AND holding_id IS NULL
		RETURNING `+investmentRequestColumns,
		id, holdingID,
	)
	request, err := scanInvestmentRequest(row)
	if err != nil {
		return nil, convertErr(err, "attaching holding %d to investment request %d", holdingID, id)
	}
	return request, nil
}

func (i *InvestmentRequestRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.InvestmentRequest, error) {
	rows, err := i.conn.Query(ctx,
		`SELECT `+investmentRequestColumns+` FROM investment_requests WHERE user_id = $1 ORDER BY id DESC`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting investment requests by userID %d", userID)
	}
	return collectInvestmentRequests(rows, "collecting investment requests of user %d", userID)
}

func (i *InvestmentRequestRepository) GetByStatus(
	ctx context.Context,
	status domain.InvestmentRequestStatusType,
	page repoargs.Page,
) ([]domain.InvestmentRequest, error) {
	limit, offset, pageErr := pageArgs(page.Limit, page.Offset)
	if pageErr != nil {
		return nil, convertErr(pageErr, "converting page args")
	}
	rows, err := i.conn.Query(ctx,
		`SELECT `+investmentRequestColumns+` FROM investment_requests WHERE status = $1 ORDER BY id LIMIT $2 OFFSET $3`,
		string(status), limit, offset,
	)
	if err != nil {
		return nil, convertErr(err, "getting investment requests by status `%s`", status)
	}
	return collectInvestmentRequests(rows, "collecting investment requests by status `%s`", status)
}

func collectInvestmentRequests(rows pgx.Rows, format string, args ...any) ([]domain.InvestmentRequest, error) {
	requests, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.InvestmentRequest, error) {
		request, scanErr := scanInvestmentRequest(r)
		if scanErr != nil {
			return domain.InvestmentRequest{}, scanErr
		}
		return *request, nil
	})
	if err != nil {
		return nil, convertErr(err, format, args...)
	}
	return requests, nil
}

func scanInvestmentRequest(row pgx.Row) (*domain.InvestmentRequest, error) {
	var m domain.InvestmentRequest
	err := row.Scan(
		&m.ID,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.UserID,
		&m.PropertyID,
		scanDecimal(&m.AmountInvested),
		&m.TimePeriod,
		&m.ProofURL,
		&m.Status,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.RejectionReason,
		&m.HoldingID,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &m, nil
}
