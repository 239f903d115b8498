package pgrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const offlineTransferColumns = `id, created_at, updated_at, seller_id, property_id, holding_id, buyer_email,
	buyer_name, buyer_phone, sale_price, status, buyer_id, completed_at`

type OfflineTransferRepository struct {
	conn uow.DBTX
}

func NewOfflineTransferRepository(conn uow.DBTX) *OfflineTransferRepository {
	return &OfflineTransferRepository{conn: conn}
}

// Create создает приглашение покупателя вне платформы. Если по вложению уже есть ожидающее приглашение,
// возвращает domain.ErrDuplicateKey.
func (o *OfflineTransferRepository) Create(
	ctx context.Context,
	args repoargs.CreateOfflineTransfer,
) (*domain.OfflineBuyerRequest, error) {
	row := o.conn.QueryRow(ctx,
		`INSERT INTO offline_buyer_requests
			(seller_id, property_id, holding_id, buyer_email, buyer_name, buyer_phone, sale_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+offlineTransferColumns,
		args.SellerID, args.PropertyID, args.HoldingID, args.BuyerEmail, args.BuyerName, args.BuyerPhone,
		numericArg(args.SalePrice),
	)
	request, err := scanOfflineTransfer(row)
	if err != nil {
		return nil, convertErr(err, "creating offline transfer of holding %d", args.HoldingID)
	}
	return request, nil
}

// GetPendingByEmail возвращает ожидающие приглашения для email без учета регистра, от старых к новым.
func (o *OfflineTransferRepository) GetPendingByEmail(
	ctx context.Context,
	email string,
) ([]domain.OfflineBuyerRequest, error) {
	rows, err := o.conn.Query(ctx,
		`SELECT `+offlineTransferColumns+` FROM offline_buyer_requests
		WHERE lower(buyer_email) = lower($1) AND status = 'pending'
		ORDER BY id`,
		email,
	)
	if err != nil {
		return nil, convertErr(err, "getting pending offline transfers for `%s`", email)
	}
	return collectOfflineTransfers(rows, "collecting pending offline transfers for `%s`", email)
}

// Complete атомарно переводит приглашение из pending в completed. Если приглашение уже завершено, возвращает
// domain.ErrRecordNotFound.
func (o *OfflineTransferRepository) Complete(
	ctx context.Context,
	id, buyerID int64,
	at time.Time,
) (*domain.OfflineBuyerRequest, error) {
	row := o.conn.QueryRow(ctx,
		`UPDATE offline_buyer_requests SET
			status = 'completed',
			buyer_id = $2,
			completed_at = $3,
			updated_at = now()
		WHERE id = $1 AND status = 'pending'
		RETURNING `+offlineTransferColumns,
		id, buyerID, at,
	)
	request, err := scanOfflineTransfer(row)
	if err != nil {
		return nil, convertErr(err, "completing offline transfer %d", id)
	}
	return request, nil
}

func (o *OfflineTransferRepository) CountPendingByHolding(ctx context.Context, holdingID int64) (int64, error) {
	var count int64
	err := o.conn.QueryRow(ctx,
		`SELECT count(*) FROM offline_buyer_requests WHERE holding_id = $1 AND status = 'pending'`,
		holdingID,
	).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting pending offline transfers of holding %d", holdingID)
	}
	return count, nil
}

func (o *OfflineTransferRepository) GetBySellerID(
	ctx context.Context,
	sellerID int64,
) ([]domain.OfflineBuyerRequest, error) {
	rows, err := o.conn.Query(ctx,
		`SELECT `+offlineTransferColumns+` FROM offline_buyer_requests WHERE seller_id = $1 ORDER BY id DESC`,
		sellerID,
	)
	if err != nil {
		return nil, convertErr(err, "getting offline transfers by sellerID %d", sellerID)
	}
	return collectOfflineTransfers(rows, "collecting offline transfers of seller %d", sellerID)
}

func collectOfflineTransfers(rows pgx.Rows, format string, args ...any) ([]domain.OfflineBuyerRequest, error) {
	requests, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.OfflineBuyerRequest, error) {
		request, scanErr := scanOfflineTransfer(r)
		if scanErr != nil {
			return domain.OfflineBuyerRequest{}, scanErr
		}
		return *request, nil
	})
	if err != nil {
		return nil, convertErr(err, format, args...)
	}
	return requests, nil
}

func scanOfflineTransfer(row pgx.Row) (*domain.OfflineBuyerRequest, error) {
	var m domain.OfflineBuyerRequest
	err := row.Scan(
		&m.ID,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.SellerID,
		&m.PropertyID,
		&m.HoldingID,
		&m.BuyerEmail,
		&m.BuyerName,
		&m.BuyerPhone,
		scanDecimal(&m.SalePrice),
		&m.Status,
		&m.BuyerID,
		&m.CompletedAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &m, nil
}
