package payxgo

import "github.com/shopspring/decimal"

// Account is the per-client ledger state. The total balance is not stored;
// it is always Available + Held, so conservation cannot drift.
type Account struct {
	ClientID  uint16
	Available decimal.Decimal
	Held      decimal.Decimal
	Locked    bool
}

func NewAccount(clientID uint16) *Account {
	return &Account{
		ClientID:  clientID,
		Available: decimal.Zero,
		Held:      decimal.Zero,
	}
}

func (a *Account) Total() decimal.Decimal {
	return a.Available.Add(a.Held)
}
