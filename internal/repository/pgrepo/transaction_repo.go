package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `id, created_at, reference::text, user_id, type, amount, status, holding_id, property_id,
	description`

const createTransactionQuery = `INSERT INTO transactions
		(reference, user_id, type, amount, status, holding_id, property_id, description)
	VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8)
	RETURNING ` + transactionColumns

type TransactionRepository struct {
	conn uow.DBTX
}

func NewTransactionRepository(conn uow.DBTX) *TransactionRepository {
	return &TransactionRepository{conn: conn}
}

// Create добавляет запись в журнал операций. Записи журнала никогда не изменяются.
func (t *TransactionRepository) Create(
	ctx context.Context,
	args repoargs.CreateTransaction,
) (*domain.Transaction, error) {
	row := t.conn.QueryRow(ctx, createTransactionQuery, transactionArgs(args)...)
	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating `%s` transaction for user %d", args.Type, args.UserID)
	}
	return transaction, nil
}

// BatchCreate добавляет несколько записей одним батчем. fn вызывается для каждой записи.
func (t *TransactionRepository) BatchCreate(
	ctx context.Context,
	transactions []repoargs.CreateTransaction,
	fn repoargs.BatchExecQueryRow,
) {
	batch := new(pgx.Batch)
	for _, args := range transactions {
		batch.Queue(createTransactionQuery, transactionArgs(args)...)
	}
	br := t.conn.SendBatch(ctx, batch)
	defer func() { _ = br.Close() }()

	for i := range transactions {
		_, err := scanTransaction(br.QueryRow())
		fn(i, convertErr(err, "creating `%s` transaction #%d for user %d",
			transactions[i].Type, i, transactions[i].UserID))
	}
}

// GetByUserID возвращает историю операций юзера от новых к старым.
func (t *TransactionRepository) GetByUserID(
	ctx context.Context,
	userID int64,
	page repoargs.Page,
) ([]domain.Transaction, error) {
	limit, offset, pageErr := pageArgs(page.Limit, page.Offset)
	if pageErr != nil {
		return nil, convertErr(pageErr, "converting page args")
	}
	rows, err := t.conn.Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE user_id = $1 ORDER BY id DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, convertErr(err, "getting transactions by userID %d", userID)
	}
	transactions, collectErr := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.Transaction, error) {
		transaction, scanErr := scanTransaction(r)
		if scanErr != nil {
			return domain.Transaction{}, scanErr
		}
		return *transaction, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "collecting transactions of user %d", userID)
	}
	return transactions, nil
}

func transactionArgs(args repoargs.CreateTransaction) []any {
	return []any{
		args.Reference,
		args.UserID,
		string(args.Type),
		numericArg(args.Amount),
		string(args.Status),
		args.HoldingID,
		args.PropertyID,
		args.Description,
	}
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var m domain.Transaction
	err := row.Scan(
		&m.ID,
		&m.CreatedAt,
		&m.Reference,
		&m.UserID,
		&m.Type,
		scanDecimal(&m.Amount),
		&m.Status,
		&m.HoldingID,
		&m.PropertyID,
		&m.Description,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &m, nil
}
