package domain

import "time"

// MaxRecentTransactions bounds the recently viewed transaction list.
const MaxRecentTransactions = 50

// RootState is the state of the legacy reducer store.
type RootState struct {
	Transactions TransactionsState `json:"transactions"`
	Accounts     AccountsState     `json:"accounts"`
}

// TransactionsState keeps the recently viewed transactions, newest first.
type TransactionsState struct {
	Recent []ViewedTransaction `json:"recent"`
}

// ViewedTransaction is a transaction the user looked at.
type ViewedTransaction struct {
	TxID     string    `json:"tx_id"`
	TxType   TxType    `json:"tx_type"`
	TxStatus TxStatus  `json:"tx_status"`
	ViewedAt time.Time `json:"viewed_at"`
}

// AccountsState keeps the watched debug accounts.
type AccountsState struct {
	Watched []WatchedAccount `json:"watched"`
}

// WatchedAccount is an address saved by the user.
type WatchedAccount struct {
	Address string `json:"address"`
	Label   string `json:"label,omitempty"`
}
