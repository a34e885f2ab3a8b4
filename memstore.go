package payxgo

import "sort"

// MemStore is the in-memory Store implementation. Accounts live for the
// duration of the run; nothing is persisted.
type MemStore struct {
	accounts map[uint16]*Account
	entries  map[uint32]*Entry
}

var (
	_ Store = (*MemStore)(nil)
)

func NewMemStore() *MemStore {
	return &MemStore{
		accounts: make(map[uint16]*Account),
		entries:  make(map[uint32]*Entry),
	}
}

func (m *MemStore) Account(clientID uint16) (*Account, bool) {
	a, ok := m.accounts[clientID]
	return a, ok
}

func (m *MemStore) EnsureAccount(clientID uint16) *Account {
	a, ok := m.accounts[clientID]
	if !ok {
		a = NewAccount(clientID)
		m.accounts[clientID] = a
	}
	return a
}

func (m *MemStore) Entry(txID uint32) (*Entry, bool) {
	e, ok := m.entries[txID]
	return e, ok
}

func (m *MemStore) PutEntry(e *Entry) {
	m.entries[e.TxID] = e
}

// Snapshot returns a copy of every account, ascending by client id.
func (m *MemStore) Snapshot() []Account {
	accts := make([]Account, 0, len(m.accounts))
	for _, a := range m.accounts {
		accts = append(accts, *a)
	}
	sort.Slice(accts, func(i, j int) bool {
		return accts[i].ClientID < accts[j].ClientID
	})
	return accts
}
