package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const propertyColumns = `id, created_at, updated_at, name, min_investment, available_to_invest, total_invested,
	investor_count, monthly_return_rate, lock_in_months`

type PropertyRepository struct {
	conn uow.DBTX
}

func NewPropertyRepository(conn uow.DBTX) *PropertyRepository {
	return &PropertyRepository{conn: conn}
}

func (p *PropertyRepository) Create(ctx context.Context, args repoargs.CreateProperty) (*domain.Property, error) {
	row := p.conn.QueryRow(ctx,
		`INSERT INTO properties (name, min_investment, available_to_invest, monthly_return_rate, lock_in_months)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+propertyColumns,
		args.Name, numericArg(args.MinInvestment), numericArg(args.AvailableToInvest),
		numericArg(args.MonthlyReturnRate), args.LockInMonths,
	)
	property, err := scanProperty(row)
	if err != nil {
		return nil, convertErr(err, "creating property `%s`", args.Name)
	}
	return property, nil
}

func (p *PropertyRepository) FindByID(ctx context.Context, id int64) (*domain.Property, error) {
	row := p.conn.QueryRow(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id = $1`, id)
	property, err := scanProperty(row)
	if err != nil {
		return nil, convertErr(err, "finding property by id %d", id)
	}
	return property, nil
}

func (p *PropertyRepository) GetAll(ctx context.Context) ([]domain.Property, error) {
	rows, err := p.conn.Query(ctx, `SELECT `+propertyColumns+` FROM properties ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "getting properties")
	}
	properties, collectErr := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.Property, error) {
		property, scanErr := scanProperty(r)
		if scanErr != nil {
			return domain.Property{}, scanErr
		}
		return *property, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "collecting properties")
	}
	return properties, nil
}

// Reserve атомарно уменьшает доступную сумму объекта на amount и увеличивает сумму вложений и кол-во
// инвесторов. Если доступной суммы не хватает, возвращает domain.ErrRecordNotFound.
func (p *PropertyRepository) Reserve(ctx context.Context, id int64, amount decimal.Decimal) (*domain.Property, error) {
	row := p.conn.QueryRow(ctx,
		`UPDATE properties SET
			available_to_invest = available_to_invest - $2,
			total_invested = total_invested + $2,
			investor_count = investor_count + 1,
			updated_at = now()
		WHERE id = $1 AND available_to_invest >= $2
		RETURNING `+propertyColumns,
		id, numericArg(amount),
	)
	property, err := scanProperty(row)
	if err != nil {
		return nil, convertErr(err, "reserving %s on property %d", amount, id)
	}
	return property, nil
}

func scanProperty(row pgx.Row) (*domain.Property, error) {
	var m domain.Property
	err := row.Scan(
		&m.ID,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.Name,
		scanDecimal(&m.MinInvestment),
		scanDecimal(&m.AvailableToInvest),
		scanDecimal(&m.TotalInvested),
		&m.InvestorCount,
		scanDecimal(&m.MonthlyReturnRate),
		&m.LockInMonths,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &m, nil
}
