package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, created_at, updated_at, email, name, phone, encrypted_password, role, kyc_status,
	kyc_document_url, balance, total_investments, earnings_received, withdrawable_balance, locked_amount,
	wallet_version`

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

// CreateUser создает юзера в базе данных. В случае конфликта email (или второго администратора) возвращает
// ошибку domain.ErrDuplicateKey, во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error) {
	row := u.conn.QueryRow(ctx,
		`INSERT INTO users (email, name, phone, encrypted_password, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		user.Email, user.Name, user.Phone, user.Password, string(user.Role),
	)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user with email `%s`", user.Email)
	}
	return dbUser, nil
}

// FindUserByEmail ищет юзера по email без учета регистра. Возвращает ошибку domain.ErrRecordNotFound
// если запись не найдена, во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by email `%s`", email)
	}
	return dbUser, nil
}

func (u *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return dbUser, nil
}

// FindByIDForUpdate читает юзера и блокирует строку до конца транзакции. Вызывать только внутри uow.Do.
func (u *UserRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d for update", id)
	}
	return dbUser, nil
}

// UpdateWallet сохраняет кошелек юзера с проверкой версии. Если версия изменилась, возвращает
// domain.ErrRecordNotFound. Возвращает кошелек с новой версией.
func (u *UserRepository) UpdateWallet(ctx context.Context, args repoargs.UpdateWallet) (*domain.Wallet, error) {
	w := args.Wallet
	row := u.conn.QueryRow(ctx,
		`UPDATE users SET
			balance = $3,
			total_investments = $4,
			earnings_received = $5,
			withdrawable_balance = $6,
			locked_amount = $7,
			wallet_version = wallet_version + 1,
			updated_at = now()
		WHERE id = $1 AND wallet_version = $2
		RETURNING balance, total_investments, earnings_received, withdrawable_balance, locked_amount, wallet_version`,
		args.UserID, w.Version,
		numericArg(w.Balance), numericArg(w.TotalInvestments), numericArg(w.EarningsReceived),
		numericArg(w.WithdrawableBalance), numericArg(w.LockedAmount),
	)
	var res domain.Wallet
	err := row.Scan(
		scanDecimal(&res.Balance),
		scanDecimal(&res.TotalInvestments),
		scanDecimal(&res.EarningsReceived),
		scanDecimal(&res.WithdrawableBalance),
		scanDecimal(&res.LockedAmount),
		&res.Version,
	)
	if err != nil {
		return nil, convertErr(err, "updating wallet of user %d with version %d", args.UserID, w.Version)
	}
	return &res, nil
}

func (u *UserRepository) CountByRole(ctx context.Context, role domain.RoleType) (int64, error) {
	var count int64
	if err := u.conn.QueryRow(ctx, `SELECT count(*) FROM users WHERE role = $1`, string(role)).Scan(&count); err != nil {
		return 0, convertErr(err, "counting users with role `%s`", role)
	}
	return count, nil
}

// UpdateKYC атомарно меняет KYC статус. Если текущий статус не входит в args.From, возвращает
// domain.ErrRecordNotFound.
func (u *UserRepository) UpdateKYC(ctx context.Context, args repoargs.UpdateKYC) (*domain.User, error) {
	row := u.conn.QueryRow(ctx,
		`UPDATE users SET
			kyc_status = $2,
			kyc_document_url = COALESCE($3, kyc_document_url),
			updated_at = now()
		WHERE id = $1 AND kyc_status::text = ANY($4::text[])
		RETURNING `+userColumns,
		args.UserID, string(args.To), args.DocumentURL, enumStrings(args.From),
	)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "updating kyc of user %d to `%s`", args.UserID, args.To)
	}
	return dbUser, nil
}

func (u *UserRepository) GetByKYCStatus(
	ctx context.Context,
	status domain.KYCStatusType,
	page repoargs.Page,
) ([]domain.User, error) {
	limit, offset, pageErr := pageArgs(page.Limit, page.Offset)
	if pageErr != nil {
		return nil, convertErr(pageErr, "converting page args")
	}
	rows, err := u.conn.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE kyc_status = $1 ORDER BY id LIMIT $2 OFFSET $3`,
		string(status), limit, offset,
	)
	if err != nil {
		return nil, convertErr(err, "getting users by kyc status `%s`", status)
	}
	users, collectErr := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.User, error) {
		dbUser, scanErr := scanUser(r)
		if scanErr != nil {
			return domain.User{}, scanErr
		}
		return *dbUser, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "collecting users by kyc status `%s`", status)
	}
	return users, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var m domain.User
	err := row.Scan(
		&m.ID,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.Email,
		&m.Name,
		&m.Phone,
		&m.EncryptedPassword,
		&m.Role,
		&m.KYCStatus,
		&m.KYCDocumentURL,
		scanDecimal(&m.Wallet.Balance),
		scanDecimal(&m.Wallet.TotalInvestments),
		scanDecimal(&m.Wallet.EarningsReceived),
		scanDecimal(&m.Wallet.WithdrawableBalance),
		scanDecimal(&m.Wallet.LockedAmount),
		&m.Wallet.Version,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &m, nil
}
