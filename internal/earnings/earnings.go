// Package earnings содержит чистые функции расчета доходности вложений: годовые и ежемесячные выплаты,
// даты погашения и график выплат. Функции не хранят состояния и не проверяют знак сумм - это делают
// вызывающие стороны.
package earnings

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// PayoutLockInMonths фиксированный период после покупки, до окончания которого выплаты не начисляются,
	// независимо от срока блокировки самого вложения.
	PayoutLockInMonths = 3
	// TransferLockInDays минимальный возраст вложения в днях, после которого его можно передать другому инвестору.
	TransferLockInDays = 90

	monthsInYear = 12
)

var (
	firstYearRate    = decimal.RequireFromString("0.06")
	yearlyEscalation = decimal.RequireFromString("1.05")
	months           = decimal.NewFromInt(monthsInYear)
)

// InvestmentYear возвращает номер года вложения (начиная с 1) на момент now.
// Первый год длится до первой месячной годовщины покупки: в том же календарном году или в следующем,
// пока не наступил месяц покупки. Дальше номер года равен числу прошедших лет + 1.
func InvestmentYear(purchaseDate, now time.Time) int {
	years := now.Year() - purchaseDate.Year()
	if now.Month() < purchaseDate.Month() {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years + 1
}

// YearlyPayout годовая выплата для года year. Первый год - floor(amount * 6%), каждый следующий -
// floor(предыдущий * 1.05). Значение пересчитывается с первого года при каждом вызове.
func YearlyPayout(amount decimal.Decimal, year int) decimal.Decimal {
	payout := amount.Mul(firstYearRate).Floor()
	for i := 2; i <= year; i++ {
		payout = payout.Mul(yearlyEscalation).Floor()
	}
	return payout
}

// MonthlyEarning ежемесячная выплата на момент now.
func MonthlyEarning(amount decimal.Decimal, purchaseDate, now time.Time) decimal.Decimal {
	return YearlyPayout(amount, InvestmentYear(purchaseDate, now)).Div(months).Floor()
}

// MaturityDate дата окончания блокировки: purchaseDate + lockInMonths календарных месяцев.
func MaturityDate(purchaseDate time.Time, lockInMonths int) time.Time {
	return purchaseDate.AddDate(0, lockInMonths, 0)
}

func IsMatured(maturityDate, now time.Time) bool {
	return !now.Before(maturityDate)
}

// NextPayoutDate дата первой выплаты - первое число месяца через PayoutLockInMonths после покупки.
func NextPayoutDate(purchaseDate time.Time) time.Time {
	return FirstOfMonth(purchaseDate.AddDate(0, PayoutLockInMonths, 0))
}

// FollowingPayoutDate первое число месяца, следующего за date.
func FollowingPayoutDate(date time.Time) time.Time {
	return FirstOfMonth(date).AddDate(0, 1, 0)
}

func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// TransferableAt момент, начиная с которого вложение можно передать другому инвестору.
func TransferableAt(purchaseDate time.Time) time.Time {
	return purchaseDate.AddDate(0, 0, TransferLockInDays)
}
