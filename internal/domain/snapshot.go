package domain

import "github.com/google/uuid"

// Snapshot is an immutable view of one user's record logs. Apply returns a
// new Snapshot and never modifies the receiver, so a caller holding an old
// snapshot keeps seeing the state it loaded.
type Snapshot struct {
	Transactions []Transaction
	Dividends    []Dividend
}

type Event interface {
	isEvent()
}

type TransactionAdded struct{ Transaction Transaction }
type TransactionUpdated struct{ Transaction Transaction }
type TransactionRemoved struct{ ID uuid.UUID }
type DividendAdded struct{ Dividend Dividend }
type DividendRemoved struct{ ID uuid.UUID }

func (TransactionAdded) isEvent()   {}
func (TransactionUpdated) isEvent() {}
func (TransactionRemoved) isEvent() {}
func (DividendAdded) isEvent()      {}
func (DividendRemoved) isEvent()    {}

func (s Snapshot) Apply(event Event) Snapshot {
	switch e := event.(type) {
	case TransactionAdded:
		out := make([]Transaction, 0, len(s.Transactions)+1)
		out = append(out, s.Transactions...)
		out = append(out, e.Transaction)
		return Snapshot{Transactions: out, Dividends: s.Dividends}
	case TransactionUpdated:
		out := make([]Transaction, 0, len(s.Transactions))
		for _, tx := range s.Transactions {
			if tx.ID == e.Transaction.ID {
				tx = e.Transaction
			}
			out = append(out, tx)
		}
		return Snapshot{Transactions: out, Dividends: s.Dividends}
	case TransactionRemoved:
		out := make([]Transaction, 0, len(s.Transactions))
		for _, tx := range s.Transactions {
			if tx.ID != e.ID {
				out = append(out, tx)
			}
		}
		return Snapshot{Transactions: out, Dividends: s.Dividends}
	case DividendAdded:
		out := make([]Dividend, 0, len(s.Dividends)+1)
		out = append(out, s.Dividends...)
		out = append(out, e.Dividend)
		return Snapshot{Transactions: s.Transactions, Dividends: out}
	case DividendRemoved:
		out := make([]Dividend, 0, len(s.Dividends))
		for _, d := range s.Dividends {
			if d.ID != e.ID {
				out = append(out, d)
			}
		}
		return Snapshot{Transactions: s.Transactions, Dividends: out}
	}
	return s
}
