package earnings

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type EarningsTestSuite struct {
	suite.Suite
}

func TestEarningsSuite(t *testing.T) {
	suite.Run(t, new(EarningsTestSuite))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *EarningsTestSuite) TestYearlyPayout() {
	cases := []struct {
		name   string
		amount int64
		year   int
		want   int64
	}{
		{name: "first year", amount: 500000, year: 1, want: 30000},
		{name: "second year", amount: 500000, year: 2, want: 31500},
		{name: "third year", amount: 500000, year: 3, want: 33075},
		// floor(1234 * 0.06) = 74, floor(74 * 1.05) = 77
		{name: "floored on every step", amount: 1234, year: 2, want: 77},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			got := YearlyPayout(decimal.NewFromInt(t.amount), t.year)
			s.True(decimal.NewFromInt(t.want).Equal(got), "want %d, got %s", t.want, got)
		})
	}
}

func (s *EarningsTestSuite) TestMonthlyEarning() {
	amount := decimal.NewFromInt(500000)
	purchase := date(2024, time.March, 15)

	firstYear := MonthlyEarning(amount, purchase, date(2024, time.December, 1))
	s.True(decimal.NewFromInt(2500).Equal(firstYear), firstYear.String())

	secondYear := MonthlyEarning(amount, purchase, date(2025, time.April, 1))
	s.True(decimal.NewFromInt(2625).Equal(secondYear), secondYear.String())
}

func (s *EarningsTestSuite) TestInvestmentYear() {
	purchase := date(2024, time.June, 10)

	cases := []struct {
		name string
		now  time.Time
		want int
	}{
		{name: "same day", now: purchase, want: 1},
		{name: "same calendar year", now: date(2024, time.December, 31), want: 1},
		{name: "next year before anniversary month", now: date(2025, time.May, 31), want: 1},
		{name: "anniversary month", now: date(2025, time.June, 1), want: 2},
		{name: "third year", now: date(2026, time.July, 1), want: 3},
		{name: "clock before purchase", now: date(2023, time.January, 1), want: 1},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			s.Equal(t.want, InvestmentYear(purchase, t.now))
		})
	}
}

func (s *EarningsTestSuite) TestDates() {
	purchase := date(2024, time.January, 31)

	s.Equal(date(2025, time.January, 31), MaturityDate(purchase, 12))
	// календарная арифметика: 31 января + 3 месяца = 1 мая (30 апреля + 1 день).
	s.Equal(date(2024, time.May, 1), NextPayoutDate(purchase))
	s.Equal(date(2024, time.June, 1), NextPayoutDate(date(2024, time.March, 15)))
	s.Equal(date(2025, time.January, 1), FollowingPayoutDate(date(2024, time.December, 1)))
	s.Equal(date(2024, time.April, 30), TransferableAt(purchase))
}

func (s *EarningsTestSuite) TestIsMatured() {
	maturity := date(2025, time.January, 1)

	s.False(IsMatured(maturity, maturity.Add(-time.Nanosecond)))
	s.True(IsMatured(maturity, maturity))
	s.True(IsMatured(maturity, maturity.AddDate(0, 0, 1)))
}
