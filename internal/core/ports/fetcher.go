// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/explorer/internal/core/domain"
)

// ChainFetcher loads entities from the blockchain API.
//
// Every method returns domain.ErrEntityNotFound when the entity does not exist.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type ChainFetcher interface {
	// Transaction returns a confirmed or mempool transaction.
	Transaction(ctx context.Context, txID string) (*domain.Transaction, error)
	// Block returns a block with the ordered ids of its transactions.
	Block(ctx context.Context, hash string) (*domain.Block, error)
	// ContractSource returns the Clarity source of a contract principal.
	ContractSource(ctx context.Context, principal string) (*domain.ContractSource, error)
	// ContractInterface returns the interface of a contract principal.
	ContractInterface(ctx context.Context, principal string) (*domain.ContractInterface, error)
	// ContractInfo returns the indexed contract record with its raw ABI.
	ContractInfo(ctx context.Context, principal string) (*domain.ContractInfo, error)
	// AccountBalances returns the STX and token balances of a principal.
	AccountBalances(ctx context.Context, principal string) (*domain.AccountBalances, error)
	// AccountInfo returns the on-chain account record of a principal.
	AccountInfo(ctx context.Context, principal string) (*domain.AccountInfo, error)
	// AccountStxBalance returns the detailed STX balance of a principal.
	AccountStxBalance(ctx context.Context, principal string) (*domain.StxBalance, error)
	// AccountTransactions returns one page of the transactions of a principal.
	AccountTransactions(ctx context.Context, principal string, limit, offset int) (*domain.TransactionsPage, error)
}
