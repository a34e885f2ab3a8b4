package payxgo

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TxKind enumerates the record types accepted on the input stream.
type TxKind uint8

const (
	TxDeposit TxKind = iota + 1
	TxWithdrawal
	TxDispute
	TxResolve
	TxChargeback
)

func (k TxKind) String() string {
	switch k {
	case TxDeposit:
		return "deposit"
	case TxWithdrawal:
		return "withdrawal"
	case TxDispute:
		return "dispute"
	case TxResolve:
		return "resolve"
	case TxChargeback:
		return "chargeback"
	}
	return "unknown"
}

// ParseTxKind maps an input token to its TxKind, case-insensitively.
func ParseTxKind(s string) (TxKind, bool) {
	switch strings.ToLower(s) {
	case "deposit":
		return TxDeposit, true
	case "withdrawal":
		return TxWithdrawal, true
	case "dispute":
		return TxDispute, true
	case "resolve":
		return TxResolve, true
	case "chargeback":
		return TxChargeback, true
	}
	return 0, false
}

// Transaction is one record of the input stream. Amount is meaningful only
// for kinds where HasAmount reports true; dispute-family records reference a
// prior transaction by TxID and carry no amount of their own.
type Transaction struct {
	Kind     TxKind
	ClientID uint16
	TxID     uint32
	Amount   decimal.Decimal
}

// HasAmount reports whether the record kind carries an amount.
func (t Transaction) HasAmount() bool {
	return t.Kind == TxDeposit || t.Kind == TxWithdrawal
}

// DisputeState tracks where a history entry sits in the dispute lifecycle.
type DisputeState uint8

const (
	StateClean DisputeState = iota
	StateDisputed
	StateChargedBack
)

func (s DisputeState) String() string {
	switch s {
	case StateClean:
		return "clean"
	case StateDisputed:
		return "disputed"
	case StateChargedBack:
		return "charged back"
	}
	return "unknown"
}

// Entry is the durable record of an accepted deposit or withdrawal, the only
// kinds addressable by later dispute actions.
type Entry struct {
	TxID     uint32
	ClientID uint16
	Amount   decimal.Decimal
	Kind     TxKind
	State    DisputeState
}
