package inview_test

import (
	"fmt"
	"sync"

	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/explorer/internal/engine/reactive"
)

type entry[T any] struct {
	value T
	err   error
}

// table is one entity kind of fakeCache. Every key is a cell so that setting
// it invalidates readers exactly like the real cache.
type table[T any] struct {
	kind  string
	calls *calls
	cells *reactive.Family[string, *reactive.Cell[entry[T]]]
}

func newTable[T any](g *reactive.Graph, kind string, c *calls) *table[T] {
	return &table[T]{
		kind:  kind,
		calls: c,
		cells: reactive.NewFamily(func(key string) *reactive.Cell[entry[T]] {
			return reactive.NewCell(g, kind+"/"+key, entry[T]{})
		}),
	}
}

func (t *table[T]) read(r *reactive.Reader, key string) (T, error) {
	t.calls.add(t.kind + "/" + key)
	e := t.cells.Get(key).Read(r)
	return e.value, e.err
}

func (t *table[T]) set(key string, v T) {
	t.cells.Get(key).Set(entry[T]{value: v})
}

func (t *table[T]) fail(key string, err error) {
	var zero T
	t.cells.Get(key).Set(entry[T]{value: zero, err: err})
}

type calls struct {
	mu     sync.Mutex
	counts map[string]int
}

func (c *calls) add(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[key]++
}

func (c *calls) get(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[key]
}

func (c *calls) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, v := range c.counts {
		n += v
	}
	return n
}

type fakeCache struct {
	calls *calls

	txs        *table[*domain.Transaction]
	blocks     *table[*domain.Block]
	sources    *table[*domain.ContractSource]
	interfaces *table[*domain.ContractInterface]
	infos      *table[*domain.ContractInfo]
	balances   *table[*domain.AccountBalances]
	accounts   *table[*domain.AccountInfo]
	stx        *table[*domain.StxBalance]
	pages      *table[*domain.TransactionPages]
}

func newFakeCache(g *reactive.Graph) *fakeCache {
	c := &calls{counts: make(map[string]int)}
	return &fakeCache{
		calls:      c,
		txs:        newTable[*domain.Transaction](g, "tx", c),
		blocks:     newTable[*domain.Block](g, "block", c),
		sources:    newTable[*domain.ContractSource](g, "contract_source", c),
		interfaces: newTable[*domain.ContractInterface](g, "contract_interface", c),
		infos:      newTable[*domain.ContractInfo](g, "contract_info", c),
		balances:   newTable[*domain.AccountBalances](g, "balances", c),
		accounts:   newTable[*domain.AccountInfo](g, "account", c),
		stx:        newTable[*domain.StxBalance](g, "stx", c),
		pages:      newTable[*domain.TransactionPages](g, "account_txs", c),
	}
}

func (f *fakeCache) Transaction(r *reactive.Reader, txID string) (*domain.Transaction, error) {
	return f.txs.read(r, txID)
}

func (f *fakeCache) Block(r *reactive.Reader, hash string) (*domain.Block, error) {
	return f.blocks.read(r, hash)
}

func (f *fakeCache) ContractSource(r *reactive.Reader, principal string) (*domain.ContractSource, error) {
	return f.sources.read(r, principal)
}

func (f *fakeCache) ContractInterface(r *reactive.Reader, principal string) (*domain.ContractInterface, error) {
	return f.interfaces.read(r, principal)
}

func (f *fakeCache) ContractInfo(r *reactive.Reader, principal string) (*domain.ContractInfo, error) {
	return f.infos.read(r, principal)
}

func (f *fakeCache) AccountBalances(r *reactive.Reader, address string) (*domain.AccountBalances, error) {
	return f.balances.read(r, address)
}

func (f *fakeCache) AccountInfo(r *reactive.Reader, address string) (*domain.AccountInfo, error) {
	return f.accounts.read(r, address)
}

func (f *fakeCache) AccountStxBalance(r *reactive.Reader, address string) (*domain.StxBalance, error) {
	return f.stx.read(r, address)
}

func (f *fakeCache) AccountTransactions(r *reactive.Reader, address string, pageSize int) (*domain.TransactionPages, error) {
	return f.pages.read(r, fmt.Sprintf("%s?limit=%d", address, pageSize))
}
