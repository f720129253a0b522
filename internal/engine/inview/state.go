// Package inview derives everything the explorer shows for the current view.
//
// A single selector cell holds the view. Resolvers turn it into identifiers
// (transaction id, block hash, contract principal, address) and never fail.
// Projectors turn identifiers into entities read through an EntityCache and
// forward the cache's failure for their own key.
package inview

import (
	"fmt"

	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/explorer/internal/engine/reactive"
)

// State is the "currently in view" derivation graph.
type State struct {
	graph *reactive.Graph
	cache EntityCache

	selector *reactive.Cell[domain.View]

	txID      *reactive.Derived[string]
	tx        *reactive.Derived[*domain.Transaction]
	txType    *reactive.Derived[domain.TxType]
	blockHash *reactive.Derived[string]
	principal *reactive.Derived[string]
	address   *reactive.Derived[string]

	block             *reactive.Derived[*domain.Block]
	blockTxs          *reactive.Derived[[]*domain.Transaction]
	contractSource    *reactive.Derived[*domain.ContractSource]
	contractInterface *reactive.Derived[*domain.ContractInterface]
	contractInfo      *reactive.Derived[*domain.ContractDetails]
	accountTxs        *reactive.Family[int, *reactive.Derived[*domain.TransactionPages]]
	balances          *reactive.Derived[*domain.AccountBalances]
	accountInfo       *reactive.Derived[*domain.AccountInfo]
	stxBalance        *reactive.Derived[*domain.StxBalance]
}

// New builds the derivation graph on g, reading entities from cache.
func New(g *reactive.Graph, cache EntityCache) *State {
	s := &State{graph: g, cache: cache}

	s.selector = reactive.NewCell[domain.View](g, domain.DebugLabel("currently in view"), nil,
		reactive.Comparable[domain.View]())

	s.txID = reactive.Derive(g, domain.DebugLabel("txid"), s.resolveTransactionID)
	s.tx = reactive.Derive(g, domain.DebugLabel("transaction"), s.resolveTransaction)
	s.txType = reactive.Derive(g, domain.DebugLabel("tx_type"), s.resolveTransactionType)
	s.blockHash = reactive.Derive(g, domain.DebugLabel("block hash"), s.resolveBlockHash)
	s.principal = reactive.Derive(g, domain.DebugLabel("contract principal"), s.resolveContractPrincipal)
	s.address = reactive.Derive(g, domain.DebugLabel("address"), s.resolveAddress)

	s.block = reactive.Derive(g, domain.DebugLabel("block"), s.projectBlock)
	s.blockTxs = reactive.Derive(g, domain.DebugLabel("block transactions"), s.projectBlockTransactions)
	s.contractSource = reactive.Derive(g, domain.DebugLabel("contract source"), s.projectContractSource)
	s.contractInterface = reactive.Derive(g, domain.DebugLabel("contract interface"), s.projectContractInterface)
	s.contractInfo = reactive.Derive(g, domain.DebugLabel("contract info"), s.projectContractInfo)
	s.accountTxs = reactive.NewFamily(func(pageSize int) *reactive.Derived[*domain.TransactionPages] {
		label := domain.DebugLabel(fmt.Sprintf("account transactions (limit %d)", pageSize))
		return reactive.Derive(g, label, func(r *reactive.Reader) (*domain.TransactionPages, error) {
			return s.projectAccountTransactions(r, pageSize)
		})
	})
	s.balances = reactive.Derive(g, domain.DebugLabel("account balances"), s.projectAccountBalances)
	s.accountInfo = reactive.Derive(g, domain.DebugLabel("account info"), s.projectAccountInfo)
	s.stxBalance = reactive.Derive(g, domain.DebugLabel("account stx balance"), s.projectAccountStxBalance)

	return s
}

// Graph returns the graph the state lives on.
func (s *State) Graph() *reactive.Graph { return s.graph }

// SetView replaces the current view. nil clears it.
func (s *State) SetView(v domain.View) { s.selector.Set(v) }

// View returns the current view, nil when nothing is selected.
func (s *State) View() domain.View { return s.selector.Get() }

// Selector is the cell holding the current view.
func (s *State) Selector() *reactive.Cell[domain.View] { return s.selector }

// TransactionID resolves the transaction in view.
func (s *State) TransactionID() *reactive.Derived[string] { return s.txID }

// Transaction is the record of TransactionID.
func (s *State) Transaction() *reactive.Derived[*domain.Transaction] { return s.tx }

// TransactionType is the type of Transaction.
func (s *State) TransactionType() *reactive.Derived[domain.TxType] { return s.txType }

// BlockHash resolves the block in view.
func (s *State) BlockHash() *reactive.Derived[string] { return s.blockHash }

// ContractPrincipal resolves the contract in view.
func (s *State) ContractPrincipal() *reactive.Derived[string] { return s.principal }

// Address resolves the account in view.
func (s *State) Address() *reactive.Derived[string] { return s.address }

// Block projects the block of BlockHash.
func (s *State) Block() *reactive.Derived[*domain.Block] { return s.block }

// BlockTransactions projects the transactions of Block in block order.
func (s *State) BlockTransactions() *reactive.Derived[[]*domain.Transaction] { return s.blockTxs }

// ContractSource projects the source of ContractPrincipal.
func (s *State) ContractSource() *reactive.Derived[*domain.ContractSource] { return s.contractSource }

// ContractInterface projects the interface of ContractPrincipal.
func (s *State) ContractInterface() *reactive.Derived[*domain.ContractInterface] {
	return s.contractInterface
}

// ContractInfo projects the info of ContractPrincipal with its ABI decoded.
func (s *State) ContractInfo() *reactive.Derived[*domain.ContractDetails] { return s.contractInfo }

// AccountTransactions projects the transaction list of Address loaded pageSize at a time.
// The derivation is created on first use and shared by every caller with the same size.
func (s *State) AccountTransactions(pageSize int) *reactive.Derived[*domain.TransactionPages] {
	return s.accountTxs.Get(pageSize)
}

// EvictAccountTransactions drops the derivation for pageSize.
func (s *State) EvictAccountTransactions(pageSize int) bool {
	return s.accountTxs.Evict(pageSize)
}

// AccountTransactionPageSizes returns the page sizes with a live derivation.
func (s *State) AccountTransactionPageSizes() []int {
	sizes := make([]int, 0, s.accountTxs.Len())
	for size := range s.accountTxs.All() {
		sizes = append(sizes, size)
	}
	return sizes
}

// AccountBalances projects the balances of Address.
func (s *State) AccountBalances() *reactive.Derived[*domain.AccountBalances] { return s.balances }

// AccountInfo projects the on-chain account record of Address.
func (s *State) AccountInfo() *reactive.Derived[*domain.AccountInfo] { return s.accountInfo }

// AccountStxBalance projects the STX balance of Address.
func (s *State) AccountStxBalance() *reactive.Derived[*domain.StxBalance] { return s.stxBalance }
