package store

import "go.trai.ch/explorer/internal/core/domain"

// Action describes a state change. Actions are plain values.
type Action interface {
	// Type names the action in logs.
	Type() string

	validate() error
}

// TransactionViewed records that the user looked at a transaction.
type TransactionViewed struct {
	Tx domain.ViewedTransaction
}

// TransactionsCleared forgets every viewed transaction.
type TransactionsCleared struct{}

// AccountAdded watches an address, or relabels it when already watched.
type AccountAdded struct {
	Address string
	Label   string
}

// AccountRemoved stops watching an address.
type AccountRemoved struct {
	Address string
}

func (TransactionViewed) Type() string   { return "transactions/viewed" }
func (TransactionsCleared) Type() string { return "transactions/cleared" }
func (AccountAdded) Type() string        { return "accounts/added" }
func (AccountRemoved) Type() string      { return "accounts/removed" }

func (a TransactionViewed) validate() error {
	if a.Tx.TxID == "" {
		return domain.ErrMissingTransactionID
	}
	return nil
}

func (TransactionsCleared) validate() error { return nil }

func (a AccountAdded) validate() error {
	if a.Address == "" {
		return domain.ErrMissingAddress
	}
	return nil
}

func (a AccountRemoved) validate() error {
	if a.Address == "" {
		return domain.ErrMissingAddress
	}
	return nil
}
