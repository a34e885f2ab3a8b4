package payxgo

//go:generate mockgen -source repository.go -destination mocks/repository.go -package mocks

// Store holds the account set and transaction history exclusively owned by a
// single Ledger. Implementations need not be safe for concurrent use; the
// Processor guarantees exactly one writer per store.
type Store interface {
	Account(clientID uint16) (*Account, bool)
	EnsureAccount(clientID uint16) *Account
	Entry(txID uint32) (*Entry, bool)
	PutEntry(e *Entry)
	Snapshot() []Account
}

// Applier consumes one transaction record at a time. Ledger is the canonical
// implementation; middlewares wrap it.
type Applier interface {
	Apply(tx Transaction) error
}
