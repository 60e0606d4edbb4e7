package form

import (
	"github.com/theirongolddev/eatsplit/internal/model"

	"github.com/shopspring/decimal"
)

// SplitBill is the split-bill form for the selected friend.
type SplitBill struct {
	bill     model.Amount
	userPaid model.Amount
	payer    model.Payer
}

// NewSplitBill returns an empty form with the user as payer.
func NewSplitBill() SplitBill {
	return SplitBill{payer: model.PayerUser}
}

// Reset clears all fields.
func (s *SplitBill) Reset() {
	*s = NewSplitBill()
}

func (s SplitBill) Bill() model.Amount     { return s.bill }
func (s SplitBill) UserPaid() model.Amount { return s.userPaid }
func (s SplitBill) Payer() model.Payer     { return s.payer }

// SetBill sets the bill from user input. Unparsable or negative input is
// rejected and the previous value kept.
func (s *SplitBill) SetBill(text string) bool {
	a, err := model.ParseAmount(text)
	if err != nil || a.Value.IsNegative() {
		return false
	}
	s.bill = a
	return true
}

// SetUserPaid sets the user's share from input. A value greater than the
// current bill is rejected, not clamped; an unset bill counts as zero here.
func (s *SplitBill) SetUserPaid(text string) bool {
	a, err := model.ParseAmount(text)
	if err != nil || a.Value.IsNegative() {
		return false
	}
	if a.Set && a.Value.GreaterThan(s.bill.OrZero()) {
		return false
	}
	s.userPaid = a
	return true
}

// SetPayer sets who covered the bill. Unknown values are ignored.
func (s *SplitBill) SetPayer(p model.Payer) {
	if p == model.PayerUser || p == model.PayerFriend {
		s.payer = p
	}
}

// TogglePayer flips between the user and the friend.
func (s *SplitBill) TogglePayer() {
	if s.payer == model.PayerFriend {
		s.payer = model.PayerUser
	} else {
		s.payer = model.PayerFriend
	}
}

// FriendPaid is the friend's share: bill minus the user's share. It is unset
// while no bill is entered.
func (s SplitBill) FriendPaid() model.Amount {
	if !s.bill.Set {
		return model.Unset
	}
	return model.AmountOf(s.bill.Value.Sub(s.userPaid.OrZero()))
}

// Delta returns the signed change to the selected friend's balance. Money
// flowing toward the user is positive. It reports false when the bill or the
// user's share is missing or zero.
func (s SplitBill) Delta() (decimal.Decimal, bool) {
	if s.bill.IsZero() || s.userPaid.IsZero() {
		return decimal.Zero, false
	}
	if s.payer == model.PayerFriend {
		return s.userPaid.Value.Neg(), true
	}
	return s.FriendPaid().Value, true
}
