package inview

import (
	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/explorer/internal/engine/reactive"
)

// EntityCache gives reactive access to fetched entities.
//
// Every read records the underlying cache entry as a dependency of the reader.
// A nil value with a nil error means the entity is not loaded yet; the cache
// starts fetching it and invalidates the reader once the fetch settles.
// A non-nil error is the settled fetch failure for that key.
type EntityCache interface {
	Transaction(r *reactive.Reader, txID string) (*domain.Transaction, error)
	Block(r *reactive.Reader, hash string) (*domain.Block, error)
	ContractSource(r *reactive.Reader, principal string) (*domain.ContractSource, error)
	ContractInterface(r *reactive.Reader, principal string) (*domain.ContractInterface, error)
	ContractInfo(r *reactive.Reader, principal string) (*domain.ContractInfo, error)
	AccountBalances(r *reactive.Reader, address string) (*domain.AccountBalances, error)
	AccountInfo(r *reactive.Reader, address string) (*domain.AccountInfo, error)
	AccountStxBalance(r *reactive.Reader, address string) (*domain.StxBalance, error)
	AccountTransactions(r *reactive.Reader, address string, pageSize int) (*domain.TransactionPages, error)
}
