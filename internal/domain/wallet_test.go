package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type WalletTestSuite struct {
	suite.Suite
}

func TestWalletSuite(t *testing.T) {
	suite.Run(t, new(WalletTestSuite))
}

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func (s *WalletTestSuite) assertWallet(want, got Wallet) {
	s.True(want.Balance.Equal(got.Balance), "balance: want %s got %s", want.Balance, got.Balance)
	s.True(want.LockedAmount.Equal(got.LockedAmount), "locked: want %s got %s", want.LockedAmount, got.LockedAmount)
	s.True(want.TotalInvestments.Equal(got.TotalInvestments),
		"total investments: want %s got %s", want.TotalInvestments, got.TotalInvestments)
	s.True(want.EarningsReceived.Equal(got.EarningsReceived),
		"earnings: want %s got %s", want.EarningsReceived, got.EarningsReceived)
	s.True(want.WithdrawableBalance.Equal(got.WithdrawableBalance),
		"withdrawable: want %s got %s", want.WithdrawableBalance, got.WithdrawableBalance)
}

func (s *WalletTestSuite) TestLockPrincipal() {
	w := Wallet{Balance: d(1000)}

	s.Require().NoError(w.LockPrincipal(d(400)))
	s.assertWallet(Wallet{Balance: d(600), LockedAmount: d(400), TotalInvestments: d(400)}, w)

	// не хватает баланса - кошелек не меняется.
	s.Require().ErrorIs(w.LockPrincipal(d(601)), ErrInsufficientBalance)
	s.Require().ErrorIs(w.LockPrincipal(d(601)), ErrInsufficientFunds)
	s.assertWallet(Wallet{Balance: d(600), LockedAmount: d(400), TotalInvestments: d(400)}, w)
}

func (s *WalletTestSuite) TestCreditEarning() {
	w := Wallet{Balance: d(10), WithdrawableBalance: d(5)}
	w.CreditEarning(d(2500))
	s.assertWallet(Wallet{Balance: d(2510), EarningsReceived: d(2500), WithdrawableBalance: d(2505)}, w)
}

func (s *WalletTestSuite) TestWithdrawPrincipal() {
	cases := []struct {
		name    string
		wallet  Wallet
		amount  int64
		want    Wallet
		wantErr error
	}{
		{
			name:   "balance covers principal",
			wallet: Wallet{Balance: d(700), LockedAmount: d(500), TotalInvestments: d(500)},
			amount: 500,
			want:   Wallet{Balance: d(200)},
		}, {
			name:   "externally funded principal never goes below zero",
			wallet: Wallet{Balance: d(100), LockedAmount: d(500), TotalInvestments: d(500)},
			amount: 300,
			want:   Wallet{Balance: d(0), LockedAmount: d(200), TotalInvestments: d(200)},
		}, {
			name:    "more than locked",
			wallet:  Wallet{Balance: d(1000), LockedAmount: d(500), TotalInvestments: d(500)},
			amount:  501,
			want:    Wallet{Balance: d(1000), LockedAmount: d(500), TotalInvestments: d(500)},
			wantErr: ErrInsufficientFunds,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			w := t.wallet
			err := w.WithdrawPrincipal(d(t.amount))
			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
			} else {
				s.Require().NoError(err)
			}
			s.assertWallet(t.want, w)
		})
	}
}

func (s *WalletTestSuite) TestWithdrawEarnings() {
	w := Wallet{Balance: d(300), EarningsReceived: d(200)}

	s.Require().ErrorIs(w.WithdrawEarnings(d(201)), ErrInsufficientEarnings)
	s.Require().NoError(w.WithdrawEarnings(d(150)))
	s.assertWallet(Wallet{Balance: d(150), EarningsReceived: d(50)}, w)

	spent := Wallet{Balance: d(10), EarningsReceived: d(200)}
	s.Require().ErrorIs(spent.WithdrawEarnings(d(100)), ErrInsufficientBalance)
}

func (s *WalletTestSuite) TestRecomputeWithdrawable() {
	w := Wallet{EarningsReceived: d(120), WithdrawableBalance: d(999999)}
	w.RecomputeWithdrawable(d(500))
	s.True(d(620).Equal(w.WithdrawableBalance))
}
