package domain

import (
	"time"

	"github.com/fsdevblog/groph-estate/internal/earnings"
	"github.com/shopspring/decimal"
)

// RemainingPrincipal основная сумма, которая еще не выведена.
func (h *Holding) RemainingPrincipal() decimal.Decimal {
	return subFloorZero(h.AmountInvested, h.PrincipalWithdrawn)
}

func (h *Holding) IsClosed() bool {
	return h.AmountInvested.IsPositive() && !h.RemainingPrincipal().IsPositive()
}

// EffectiveStatus вычисляет статус на момент now. Сохраненное поле Status источником истины не является.
func (h *Holding) EffectiveStatus(now time.Time) HoldingStatusType {
	switch {
	case h.IsClosed():
		return HoldingStatusClosed
	case earnings.IsMatured(h.MaturityDate, now):
		return HoldingStatusMatured
	default:
		return HoldingStatusLockIn
	}
}

func (h *Holding) View(now time.Time) HoldingView {
	status := h.EffectiveStatus(now)
	return HoldingView{
		Holding:               *h,
		EffectiveStatus:       status,
		CanWithdrawInvestment: status == HoldingStatusMatured,
	}
}

// CheckTransferable проверяет, может ли seller передать вложение на момент now.
func (h *Holding) CheckTransferable(sellerID int64, now time.Time) error {
	if h.UserID != sellerID {
		return ErrNotOwner
	}
	if h.PrincipalWithdrawn.IsPositive() {
		return ErrNotTransferable
	}
	if now.Before(earnings.TransferableAt(h.PurchaseDate)) {
		return ErrTransferTooEarly
	}
	return nil
}

// CheckReassignable проверяет перед переоформлением, что вложение все еще у продавца и основная сумма по
// нему не выводилась.
func (h *Holding) CheckReassignable(sellerID int64) error {
	if h.UserID != sellerID {
		return ErrHoldingOwnerChanged
	}
	if !h.PrincipalWithdrawn.IsZero() {
		return ErrNotTransferable
	}
	return nil
}

// Reassign передает вложение новому владельцу по цене salePrice. Исходный срок блокировки сохраняется,
// даты и счетчики выплат начинаются заново.
func (h *Holding) Reassign(newOwnerID int64, salePrice decimal.Decimal, now time.Time) {
	h.UserID = newOwnerID
	h.PurchaseDate = now
	h.MaturityDate = earnings.MaturityDate(now, h.LockInMonths)
	h.AmountInvested = salePrice
	h.MonthlyEarning = earnings.MonthlyEarning(salePrice, now, now)
	h.TotalEarningsReceived = decimal.Zero
	h.PayoutCount = 0
	h.LastPayoutDate = nil
	h.NextPayoutDate = earnings.NextPayoutDate(now)
	h.Status = HoldingStatusLockIn
	h.PrincipalWithdrawn = decimal.Zero
}
