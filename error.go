package payxgo

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type ErrDuplicateTransaction struct {
	TxID uint32
}

func (e ErrDuplicateTransaction) Error() string {
	return fmt.Sprintf("transaction %d already recorded", e.TxID)
}

type ErrAccountLocked struct {
	ClientID uint16
}

func (e ErrAccountLocked) Error() string {
	return fmt.Sprintf("account %d is locked", e.ClientID)
}

type ErrInsufficientFunds struct {
	ClientID  uint16
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e ErrInsufficientFunds) Error() string {
	return fmt.Sprintf(
		"account %d has %s available, %s requested",
		e.ClientID, e.Available.StringFixed(4), e.Requested.StringFixed(4),
	)
}

type ErrUnknownTransaction struct {
	TxID     uint32
	ClientID uint16
}

func (e ErrUnknownTransaction) Error() string {
	return fmt.Sprintf("no transaction %d for client %d", e.TxID, e.ClientID)
}

type ErrInvalidState struct {
	TxID  uint32
	State DisputeState
}

func (e ErrInvalidState) Error() string {
	return fmt.Sprintf("transaction %d is %s", e.TxID, e.State)
}

// ErrMalformedRecord is raised by the input source for rows that cannot be
// parsed; such rows never reach the ledger.
type ErrMalformedRecord struct {
	Line   int
	Reason string
}

func (e ErrMalformedRecord) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}
