// Package model defines domain types for eatsplit friends and balances.
package model

import "github.com/shopspring/decimal"

// Friend is a person tracked in the roster.
type Friend struct {
	ID    string
	Name  string
	Image string

	// Balance is positive when the friend owes the user and negative when
	// the user owes the friend.
	Balance decimal.Decimal
}

// Standing classifies a balance by its sign.
type Standing int

const (
	Settled Standing = iota
	Owed             // friend owes the user
	Owing            // user owes the friend
)

func (s Standing) String() string {
	switch s {
	case Owed:
		return "owed"
	case Owing:
		return "owing"
	default:
		return "settled"
	}
}

// Standing returns the sign class of the friend's balance.
func (f Friend) Standing() Standing {
	switch f.Balance.Sign() {
	case 1:
		return Owed
	case -1:
		return Owing
	default:
		return Settled
	}
}

// Payer is the party who covered the whole bill.
type Payer string

const (
	PayerUser   Payer = "user"
	PayerFriend Payer = "friend"
)
