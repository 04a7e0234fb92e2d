package domain

import "time"

// EntryType is the direction of a ledger entry.
type EntryType string

const (
	EntryEarned EntryType = "earned"
	EntrySpent  EntryType = "spent"
)

// StarterPackReason is the reason recorded for the sign-up credit.
const StarterPackReason = "Welcome Starter Pack"

// LedgerEntry is an immutable record of one balance change.
type LedgerEntry struct {
	// ID is the per-ledger sequence number, starting at 1.
	ID           int64     `json:"id" bson:"id"`
	Type         EntryType `json:"type" bson:"type"`
	Amount       int64     `json:"amount" bson:"amount"`
	Reason       string    `json:"reason" bson:"reason"`
	RequestKey   string    `json:"request_key,omitempty" bson:"request_key,omitempty"`
	Date         time.Time `json:"date" bson:"date"`
	BalanceAfter int64     `json:"balance_after" bson:"balance_after"`
}

// SameRequest reports whether the entry records a mutation of the given type
// and amount, the check a replayed request key must pass.
func (e LedgerEntry) SameRequest(kind EntryType, amount int64) bool {
	return e.Type == kind && e.Amount == amount
}

// ConnectsLedger is the connects balance embedded in a profile together with
// its append-only history.
type ConnectsLedger struct {
	Available      int64         `json:"available" bson:"available"`
	TotalEarned    int64         `json:"total_earned" bson:"total_earned"`
	Seq            int64         `json:"seq" bson:"seq"`
	LastRefillDate time.Time     `json:"last_refill_date,omitempty" bson:"last_refill_date,omitempty"`
	History        []LedgerEntry `json:"history" bson:"history"`
}

// Credit increases the balance and appends an earned entry.
func (l *ConnectsLedger) Credit(amount int64, reason, requestKey string, at time.Time) (LedgerEntry, error) {
	if amount <= 0 {
		return LedgerEntry{}, ErrInvalidAmount
	}
	l.Available += amount
	l.TotalEarned += amount
	return l.append(EntryEarned, amount, reason, requestKey, at), nil
}

// Debit decreases the balance and appends a spent entry. The ledger is left
// untouched when the balance does not cover amount.
func (l *ConnectsLedger) Debit(amount int64, reason, requestKey string, at time.Time) (LedgerEntry, error) {
	if amount <= 0 {
		return LedgerEntry{}, ErrInvalidAmount
	}
	if l.Available < amount {
		return LedgerEntry{}, ErrInsufficientBalance
	}
	l.Available -= amount
	return l.append(EntrySpent, amount, reason, requestKey, at), nil
}

// EntryByKey finds the entry recorded for a request key.
func (l *ConnectsLedger) EntryByKey(key string) (LedgerEntry, bool) {
	if key == "" {
		return LedgerEntry{}, false
	}
	for _, e := range l.History {
		if e.RequestKey == key {
			return e, true
		}
	}
	return LedgerEntry{}, false
}

// EntryByID finds an entry by its sequence number.
func (l *ConnectsLedger) EntryByID(id int64) (LedgerEntry, bool) {
	for _, e := range l.History {
		if e.ID == id {
			return e, true
		}
	}
	return LedgerEntry{}, false
}

func (l *ConnectsLedger) append(t EntryType, amount int64, reason, requestKey string, at time.Time) LedgerEntry {
	l.Seq++
	e := LedgerEntry{
		ID:           l.Seq,
		Type:         t,
		Amount:       amount,
		Reason:       reason,
		RequestKey:   requestKey,
		Date:         at,
		BalanceAfter: l.Available,
	}
	l.History = append(l.History, e)
	return e
}

// Clone returns a deep copy; history slices are never shared.
func (l *ConnectsLedger) Clone() *ConnectsLedger {
	if l == nil {
		return nil
	}
	c := *l
	c.History = append([]LedgerEntry(nil), l.History...)
	return &c
}

// ProposalCost returns the connects charged for a proposal on a job with the
// given budget.
func ProposalCost(budget int64) int64 {
	switch {
	case budget < 5000:
		return 2
	case budget < 25000:
		return 4
	case budget < 100000:
		return 6
	default:
		return 8
	}
}
