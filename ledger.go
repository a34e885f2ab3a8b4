package payxgo

import "fmt"

// Ledger is the transaction state machine. It applies records against a
// Store, enforcing tx-id uniqueness, balance checks, account locks, and the
// dispute lifecycle. A rejected record returns a typed error and leaves all
// state untouched.
//
// Ledger is not safe for concurrent use; see Processor for partitioned
// dispatch.
type Ledger struct {
	store Store
}

var (
	_ Applier = (*Ledger)(nil)
)

func NewLedger(store Store) *Ledger {
	return &Ledger{store: store}
}

func (l *Ledger) Apply(tx Transaction) error {
	switch tx.Kind {
	case TxDeposit:
		return l.deposit(tx)
	case TxWithdrawal:
		return l.withdraw(tx)
	case TxDispute:
		return l.dispute(tx)
	case TxResolve:
		return l.resolve(tx)
	case TxChargeback:
		return l.chargeback(tx)
	}
	return ErrMalformedRecord{Reason: fmt.Sprintf("unknown transaction kind %d", tx.Kind)}
}

func (l *Ledger) deposit(tx Transaction) error {
	if _, ok := l.store.Entry(tx.TxID); ok {
		return ErrDuplicateTransaction{TxID: tx.TxID}
	}
	acct := l.store.EnsureAccount(tx.ClientID)
	if acct.Locked {
		return ErrAccountLocked{ClientID: tx.ClientID}
	}
	acct.Available = acct.Available.Add(tx.Amount)
	l.store.PutEntry(&Entry{
		TxID:     tx.TxID,
		ClientID: tx.ClientID,
		Amount:   tx.Amount,
		Kind:     TxDeposit,
		State:    StateClean,
	})
	return nil
}

func (l *Ledger) withdraw(tx Transaction) error {
	// tx ids are globally unique across deposits and withdrawals
	if _, ok := l.store.Entry(tx.TxID); ok {
		return ErrDuplicateTransaction{TxID: tx.TxID}
	}
	acct := l.store.EnsureAccount(tx.ClientID)
	if acct.Locked {
		return ErrAccountLocked{ClientID: tx.ClientID}
	}
	if tx.Amount.GreaterThan(acct.Available) {
		return ErrInsufficientFunds{
			ClientID:  tx.ClientID,
			Requested: tx.Amount,
			Available: acct.Available,
		}
	}
	acct.Available = acct.Available.Sub(tx.Amount)
	l.store.PutEntry(&Entry{
		TxID:     tx.TxID,
		ClientID: tx.ClientID,
		Amount:   tx.Amount,
		Kind:     TxWithdrawal,
		State:    StateClean,
	})
	return nil
}

func (l *Ledger) dispute(tx Transaction) error {
	entry, acct, err := l.resolveRef(tx, StateClean)
	if err != nil {
		return err
	}
	if entry.Amount.GreaterThan(acct.Available) {
		return ErrInsufficientFunds{
			ClientID:  tx.ClientID,
			Requested: entry.Amount,
			Available: acct.Available,
		}
	}
	acct.Available = acct.Available.Sub(entry.Amount)
	acct.Held = acct.Held.Add(entry.Amount)
	entry.State = StateDisputed
	return nil
}

func (l *Ledger) resolve(tx Transaction) error {
	entry, acct, err := l.resolveRef(tx, StateDisputed)
	if err != nil {
		return err
	}
	acct.Held = acct.Held.Sub(entry.Amount)
	acct.Available = acct.Available.Add(entry.Amount)
	entry.State = StateClean
	return nil
}

func (l *Ledger) chargeback(tx Transaction) error {
	entry, acct, err := l.resolveRef(tx, StateDisputed)
	if err != nil {
		return err
	}
	acct.Held = acct.Held.Sub(entry.Amount)
	acct.Locked = true
	entry.State = StateChargedBack
	return nil
}

// resolveRef finds the history entry a dispute-family record points at and
// the owning account. A reference to a missing tx id, or to an entry owned
// by a different client, is unknown rather than invalid.
func (l *Ledger) resolveRef(tx Transaction, want DisputeState) (*Entry, *Account, error) {
	entry, ok := l.store.Entry(tx.TxID)
	if !ok || entry.ClientID != tx.ClientID {
		return nil, nil, ErrUnknownTransaction{TxID: tx.TxID, ClientID: tx.ClientID}
	}
	if entry.State != want {
		return nil, nil, ErrInvalidState{TxID: tx.TxID, State: entry.State}
	}
	acct, ok := l.store.Account(tx.ClientID)
	if !ok {
		return nil, nil, ErrUnknownTransaction{TxID: tx.TxID, ClientID: tx.ClientID}
	}
	if acct.Locked {
		return nil, nil, ErrAccountLocked{ClientID: tx.ClientID}
	}
	return entry, acct, nil
}
