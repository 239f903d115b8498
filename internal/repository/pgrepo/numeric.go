package pgrepo

import (
	"errors"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

var errNonFiniteNumeric = errors.New("numeric value is not finite")

// decimalScanner сканирует NUMERIC колонку напрямую в decimal.Decimal. NULL сканируется как ноль.
type decimalScanner struct {
	target *decimal.Decimal
}

func scanDecimal(target *decimal.Decimal) *decimalScanner {
	return &decimalScanner{target: target}
}

func (d *decimalScanner) ScanNumeric(v pgtype.Numeric) error {
	if !v.Valid {
		*d.target = decimal.Zero
		return nil
	}
	if v.NaN || v.InfinityModifier != pgtype.Finite {
		return errNonFiniteNumeric
	}
	*d.target = decimal.NewFromBigInt(v.Int, v.Exp)
	return nil
}

// numericArg готовит decimal.Decimal к передаче в запрос как NUMERIC.
func numericArg(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   d.Coefficient(),
		Exp:   d.Exponent(),
		Valid: true,
	}
}
