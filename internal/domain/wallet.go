package domain

import "github.com/shopspring/decimal"

// Wallet баланс пользователя. Все суммы неотрицательны. WithdrawableBalance - кэш, который пересчитывается
// через RecomputeWithdrawable и не является источником истины.
//
// Каждая мутация кошелька сопровождается ровно одной записью Transaction; это обеспечивает сервисный слой,
// выполняя обе записи в одной транзакции БД.
type Wallet struct {
	Balance             decimal.Decimal
	TotalInvestments    decimal.Decimal
	EarningsReceived    decimal.Decimal
	WithdrawableBalance decimal.Decimal
	LockedAmount        decimal.Decimal
	// Version версия для оптимистичной блокировки при записи.
	Version int64
}

// LockPrincipal списывает сумму с баланса в заблокированные вложения. Возвращает ErrInsufficientBalance,
// если баланса не хватает; в этом случае кошелек не меняется.
func (w *Wallet) LockPrincipal(amount decimal.Decimal) error {
	if amount.GreaterThan(w.Balance) {
		return ErrInsufficientBalance
	}
	w.Balance = w.Balance.Sub(amount)
	w.LockExternalPrincipal(amount)
	return nil
}

// LockExternalPrincipal учитывает вложение, оплаченное вне платформы: баланс не списывается.
func (w *Wallet) LockExternalPrincipal(amount decimal.Decimal) {
	w.LockedAmount = w.LockedAmount.Add(amount)
	w.TotalInvestments = w.TotalInvestments.Add(amount)
}

func (w *Wallet) CreditEarning(amount decimal.Decimal) {
	w.Balance = w.Balance.Add(amount)
	w.EarningsReceived = w.EarningsReceived.Add(amount)
	w.WithdrawableBalance = w.WithdrawableBalance.Add(amount)
}

// Credit зачисляет выручку от продажи вложения.
func (w *Wallet) Credit(amount decimal.Decimal) {
	w.Balance = w.Balance.Add(amount)
}

// ReleasePrincipal снимает основную сумму с учета при выходе из вложения (вывод или передача).
func (w *Wallet) ReleasePrincipal(amount decimal.Decimal) {
	w.LockedAmount = subFloorZero(w.LockedAmount, amount)
	w.TotalInvestments = subFloorZero(w.TotalInvestments, amount)
}

// WithdrawPrincipal выводит погашенную основную сумму. Баланс уменьшается не больше чем на свою величину:
// вложения, оплаченные вне платформы, на баланс никогда не зачислялись.
func (w *Wallet) WithdrawPrincipal(amount decimal.Decimal) error {
	if amount.GreaterThan(w.LockedAmount) {
		return ErrInsufficientPrincipal
	}
	w.ReleasePrincipal(amount)
	w.Balance = subFloorZero(w.Balance, amount)
	return nil
}

func (w *Wallet) WithdrawEarnings(amount decimal.Decimal) error {
	if amount.GreaterThan(w.EarningsReceived) {
		return ErrInsufficientEarnings
	}
	if amount.GreaterThan(w.Balance) {
		return ErrInsufficientBalance
	}
	w.EarningsReceived = w.EarningsReceived.Sub(amount)
	w.Balance = w.Balance.Sub(amount)
	return nil
}

// RecomputeWithdrawable сбрасывает кэш доступной к выводу суммы по фактической сумме погашенных вложений.
func (w *Wallet) RecomputeWithdrawable(maturedPrincipal decimal.Decimal) {
	w.WithdrawableBalance = maturedPrincipal.Add(w.EarningsReceived)
}

func subFloorZero(a, b decimal.Decimal) decimal.Decimal {
	res := a.Sub(b)
	if res.IsNegative() {
		return decimal.Zero
	}
	return res
}
