package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const transferColumns = `id, created_at, updated_at, seller_id, buyer_id, property_id, holding_id, sale_price,
	status, buyer_response, reviewed_by, reviewed_at, rejection_reason`

var activeTransferStatuses = []domain.TransferStatusType{
	domain.TransferStatusPending,
	domain.TransferStatusAccepted,
	domain.TransferStatusAdminPending,
	domain.TransferStatusAdminApproved,
}

type TransferRepository struct {
	conn uow.DBTX
}

func NewTransferRepository(conn uow.DBTX) *TransferRepository {
	return &TransferRepository{conn: conn}
}

// Create создает заявку на передачу вложения. Если по вложению уже есть незавершенная заявка, возвращает
// domain.ErrDuplicateKey.
func (t *TransferRepository) Create(ctx context.Context, args repoargs.CreateTransfer) (*domain.TransferRequest, error) {
	row := t.conn.QueryRow(ctx,
		`INSERT INTO transfer_requests (seller_id, buyer_id, property_id, holding_id, sale_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+transferColumns,
		args.SellerID, args.BuyerID, args.PropertyID, args.HoldingID, numericArg(args.SalePrice),
	)
	transfer, err := scanTransfer(row)
	if err != nil {
		return nil, convertErr(err, "creating transfer of holding %d", args.HoldingID)
	}
	return transfer, nil
}

func (t *TransferRepository) FindByID(ctx context.Context, id int64) (*domain.TransferRequest, error) {
	row := t.conn.QueryRow(ctx, `SELECT `+transferColumns+` FROM transfer_requests WHERE id = $1`, id)
	transfer, err := scanTransfer(row)
	if err != nil {
		return nil, convertErr(err, "finding transfer by id %d", id)
	}
	return transfer, nil
}

// Transition атомарно переводит заявку из args.From в args.To. Если статус уже другой, возвращает
// domain.ErrRecordNotFound.
func (t *TransferRepository) Transition(
	ctx context.Context,
	args repoargs.TransferTransition,
) (*domain.TransferRequest, error) {
	var buyerResponse *string
	if args.BuyerResponse != nil {
		r := string(*args.BuyerResponse)
		buyerResponse = &r
	}
	row := t.conn.QueryRow(ctx,
		`UPDATE transfer_requests SET
			status = $3,
			buyer_response = COALESCE($4::buyer_response_type, buyer_response),
			reviewed_by = COALESCE($5, reviewed_by),
			reviewed_at = CASE WHEN $5::bigint IS NULL THEN reviewed_at ELSE $6 END,
			rejection_reason = $7,
			updated_at = now()
		WHERE id = $1 AND status = $2
		RETURNING `+transferColumns,
		args.ID, string(args.From), string(args.To), buyerResponse, args.ActorID, args.At, args.Reason,
	)
	transfer, err := scanTransfer(row)
	if err != nil {
		return nil, convertErr(err, "moving transfer %d from `%s` to `%s`", args.ID, args.From, args.To)
	}
	return transfer, nil
}

// CountActiveByHolding возвращает кол-во незавершенных заявок по вложению.
func (t *TransferRepository) CountActiveByHolding(ctx context.Context, holdingID int64) (int64, error) {
	var count int64
	err := t.conn.QueryRow(ctx,
		`SELECT count(*) FROM transfer_requests WHERE holding_id = $1 AND status::text = ANY($2::text[])`,
		holdingID, enumStrings(activeTransferStatuses),
	).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting active transfers of holding %d", holdingID)
	}
	return count, nil
}

// GetByUserID возвращает заявки, где юзер продавец или покупатель.
func (t *TransferRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.TransferRequest, error) {
	rows, err := t.conn.Query(ctx,
		`SELECT `+transferColumns+` FROM transfer_requests
		WHERE seller_id = $1 OR buyer_id = $1
		ORDER BY id DESC`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting transfers by userID %d", userID)
	}
	return collectTransfers(rows, "collecting transfers of user %d", userID)
}

func (t *TransferRepository) GetByStatus(
	ctx context.Context,
	status domain.TransferStatusType,
	page repoargs.Page,
) ([]domain.TransferRequest, error) {
	limit, offset, pageErr := pageArgs(page.Limit, page.Offset)
	if pageErr != nil {
		return nil, convertErr(pageErr, "converting page args")
	}
	rows, err := t.conn.Query(ctx,
		`SELECT `+transferColumns+` FROM transfer_requests WHERE status = $1 ORDER BY id LIMIT $2 OFFSET $3`,
		string(status), limit, offset,
	)
	if err != nil {
		return nil, convertErr(err, "getting transfers by status `%s`", status)
	}
	return collectTransfers(rows, "collecting transfers by status `%s`", status)
}

func collectTransfers(rows pgx.Rows, format string, args ...any) ([]domain.TransferRequest, error) {
	transfers, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.TransferRequest, error) {
		transfer, scanErr := scanTransfer(r)
		if scanErr != nil {
			return domain.TransferRequest{}, scanErr
		}
		return *transfer, nil
	})
	if err != nil {
		return nil, convertErr(err, format, args...)
	}
	return transfers, nil
}

func scanTransfer(row pgx.Row) (*domain.TransferRequest, error) {
	var m domain.TransferRequest
	err := row.Scan(
		&m.ID,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.SellerID,
		&m.BuyerID,
		&m.PropertyID,
		&m.HoldingID,
		scanDecimal(&m.SalePrice),
		&m.Status,
		&m.BuyerResponse,
		&m.ReviewedBy,
		&m.ReviewedAt,
		&m.RejectionReason,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &m, nil
}
