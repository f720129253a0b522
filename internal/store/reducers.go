package store

import (
	"slices"

	"go.trai.ch/explorer/internal/core/domain"
)

// Reducers never modify the state they are given.

func rootReducer(state domain.RootState, action Action) domain.RootState {
	return domain.RootState{
		Transactions: transactionsReducer(state.Transactions, action),
		Accounts:     accountsReducer(state.Accounts, action),
	}
}

func transactionsReducer(state domain.TransactionsState, action Action) domain.TransactionsState {
	switch a := action.(type) {
	case TransactionViewed:
		recent := make([]domain.ViewedTransaction, 0, len(state.Recent)+1)
		recent = append(recent, a.Tx)
		for _, tx := range state.Recent {
			if tx.TxID != a.Tx.TxID {
				recent = append(recent, tx)
			}
		}
		if len(recent) > domain.MaxRecentTransactions {
			recent = recent[:domain.MaxRecentTransactions]
		}
		return domain.TransactionsState{Recent: recent}
	case TransactionsCleared:
		return domain.TransactionsState{}
	default:
		return state
	}
}

func accountsReducer(state domain.AccountsState, action Action) domain.AccountsState {
	switch a := action.(type) {
	case AccountAdded:
		watched := slices.Clone(state.Watched)
		idx := slices.IndexFunc(watched, func(w domain.WatchedAccount) bool {
			return w.Address == a.Address
		})
		if idx >= 0 {
			watched[idx].Label = a.Label
		} else {
			watched = append(watched, domain.WatchedAccount{Address: a.Address, Label: a.Label})
		}
		return domain.AccountsState{Watched: watched}
	case AccountRemoved:
		watched := slices.DeleteFunc(slices.Clone(state.Watched), func(w domain.WatchedAccount) bool {
			return w.Address == a.Address
		})
		return domain.AccountsState{Watched: watched}
	default:
		return state
	}
}
