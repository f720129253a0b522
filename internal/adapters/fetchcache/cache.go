// Package fetchcache keeps fetched chain entities in reactive cells.
//
// Reading an entity that is not cached yet returns nothing and starts a
// background fetch. When the fetch settles the entry cell is set, which
// invalidates every derived node that read it.
//
// The cache holds size entries in LRU order. An entry pushed out while a
// derived node still reads it is pinned instead of dropped, so a projection
// reading more keys than the cache holds keeps its cells and settles. Pinned
// entries go back into the LRU when read again and are dropped by Prune once
// nothing reads them.
package fetchcache

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/asaskevich/EventBus"
	lru "github.com/hashicorp/golang-lru"
	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/explorer/internal/core/ports"
	"go.trai.ch/explorer/internal/engine/reactive"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// SettledTopic is the EventBus topic of settled fetches.
const SettledTopic = "fetch:settled"

// refreshConcurrency bounds the fetches of one Refresh.
const refreshConcurrency = 8

// Entity kinds, used in entry labels and events.
const (
	KindTransaction         = "tx"
	KindBlock               = "block"
	KindContractSource      = "contract_source"
	KindContractInterface   = "contract_interface"
	KindContractInfo        = "contract_info"
	KindAccountBalances     = "account_balances"
	KindAccountInfo         = "account_info"
	KindAccountStxBalance   = "account_stx_balance"
	KindAccountTransactions = "account_transactions"
)

// Event describes a settled fetch. Err is nil on success.
type Event struct {
	Kind string
	Key  string
	Err  error
}

// pageKey identifies the transaction list of an address at one page size.
type pageKey struct {
	address string
	limit   int
}

func (k pageKey) String() string {
	return fmt.Sprintf("%s?limit=%d", k.address, k.limit)
}

// slot is the LRU value of one entry.
type slot struct {
	observed func(r *reactive.Reader) bool
	drop     func()
}

type evicted struct {
	id string
	slot
}

type refresher interface {
	refresh(ctx context.Context, g *errgroup.Group)
	len() int
}

// Cache is a bounded, reactive cache of chain entities.
type Cache struct {
	graph   *reactive.Graph
	fetcher ports.ChainFetcher
	logger  ports.Logger
	bus     EventBus.Bus
	group   singleflight.Group
	lru     *lru.Cache

	// Guarded by the graph lock.
	pending []evicted
	pinned  map[string]slot

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	inflight int
	idle     chan struct{}

	kinds []refresher

	txs        *kind[string, *domain.Transaction]
	blocks     *kind[string, *domain.Block]
	sources    *kind[string, *domain.ContractSource]
	interfaces *kind[string, *domain.ContractInterface]
	infos      *kind[string, *domain.ContractInfo]
	balances   *kind[string, *domain.AccountBalances]
	accounts   *kind[string, *domain.AccountInfo]
	stx        *kind[string, *domain.StxBalance]
	pages      *kind[pageKey, *domain.TransactionPages]
}

// New creates a Cache on g holding at most size entries.
func New(g *reactive.Graph, fetcher ports.ChainFetcher, logger ports.Logger, size int) (*Cache, error) {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Cache{
		graph:   g,
		fetcher: fetcher,
		logger:  logger,
		bus:     EventBus.New(),
		ctx:     ctx,
		cancel:  cancel,
		pinned:  make(map[string]slot),
	}

	entries, err := lru.NewWithEvict(size, func(key, value any) {
		id, _ := key.(string)
		if s, ok := value.(slot); ok {
			c.pending = append(c.pending, evicted{id: id, slot: s})
		}
	})
	if err != nil {
		cancel()
		return nil, zerr.With(zerr.Wrap(err, "failed to create fetch cache"), "size", size)
	}
	c.lru = entries

	identity := func(s string) string { return s }
	c.txs = newKind(c, KindTransaction, identity, fetcher.Transaction)
	c.blocks = newKind(c, KindBlock, identity, fetcher.Block)
	c.sources = newKind(c, KindContractSource, identity, fetcher.ContractSource)
	c.interfaces = newKind(c, KindContractInterface, identity, fetcher.ContractInterface)
	c.infos = newKind(c, KindContractInfo, identity, fetcher.ContractInfo)
	c.balances = newKind(c, KindAccountBalances, identity, fetcher.AccountBalances)
	c.accounts = newKind(c, KindAccountInfo, identity, fetcher.AccountInfo)
	c.stx = newKind(c, KindAccountStxBalance, identity, fetcher.AccountStxBalance)
	c.pages = newKind(c, KindAccountTransactions, pageKey.String, c.fetchPages)

	return c, nil
}

// Transaction implements inview.EntityCache.
func (c *Cache) Transaction(r *reactive.Reader, txID string) (*domain.Transaction, error) {
	return c.txs.read(r, txID)
}

// Block implements inview.EntityCache.
func (c *Cache) Block(r *reactive.Reader, hash string) (*domain.Block, error) {
	return c.blocks.read(r, hash)
}

// ContractSource implements inview.EntityCache.
func (c *Cache) ContractSource(r *reactive.Reader, principal string) (*domain.ContractSource, error) {
	return c.sources.read(r, principal)
}

// ContractInterface implements inview.EntityCache.
func (c *Cache) ContractInterface(r *reactive.Reader, principal string) (*domain.ContractInterface, error) {
	return c.interfaces.read(r, principal)
}

// ContractInfo implements inview.EntityCache.
func (c *Cache) ContractInfo(r *reactive.Reader, principal string) (*domain.ContractInfo, error) {
	return c.infos.read(r, principal)
}

// AccountBalances implements inview.EntityCache.
func (c *Cache) AccountBalances(r *reactive.Reader, address string) (*domain.AccountBalances, error) {
	return c.balances.read(r, address)
}

// AccountInfo implements inview.EntityCache.
func (c *Cache) AccountInfo(r *reactive.Reader, address string) (*domain.AccountInfo, error) {
	return c.accounts.read(r, address)
}

// AccountStxBalance implements inview.EntityCache.
func (c *Cache) AccountStxBalance(r *reactive.Reader, address string) (*domain.StxBalance, error) {
	return c.stx.read(r, address)
}

// AccountTransactions implements inview.EntityCache.
// The entry starts with the first page; FetchNextPage appends to it.
func (c *Cache) AccountTransactions(
	r *reactive.Reader,
	address string,
	pageSize int,
) (*domain.TransactionPages, error) {
	return c.pages.read(r, pageKey{address: address, limit: pageSize})
}

// fetchPages loads as many pages as the entry already holds, at least one.
func (c *Cache) fetchPages(ctx context.Context, key pageKey) (*domain.TransactionPages, error) {
	want := 1
	if cur, ok := c.pages.lookup(key); ok && cur.Status == StatusReady && cur.Value != nil {
		want = max(len(cur.Value.Pages), 1)
	}

	out := &domain.TransactionPages{}
	for range want {
		page, err := c.fetcher.AccountTransactions(ctx, key.address, key.limit, out.NextOffset())
		if err != nil {
			return nil, err
		}
		out.Pages = append(out.Pages, *page)
		if !out.HasMore() {
			break
		}
	}
	return out, nil
}

// FetchNextPage appends the next page to the transaction list of address.
// It does nothing when the list is not loaded or has no more pages.
func (c *Cache) FetchNextPage(ctx context.Context, address string, pageSize int) error {
	key := pageKey{address: address, limit: pageSize}
	cell, ok := c.pages.entries.Lookup(key)
	if !ok {
		return nil
	}
	cur := cell.Get()
	if cur.Status != StatusReady || !cur.Value.HasMore() {
		return nil
	}
	offset := cur.Value.NextOffset()

	c.begin()
	defer c.end()

	id := fmt.Sprintf("%s/%s&offset=%d", KindAccountTransactions, key, offset)
	v, err, _ := c.group.Do(id, func() (any, error) {
		page, err := c.fetcher.AccountTransactions(ctx, address, pageSize, offset)
		if err != nil {
			return nil, err
		}
		return page, nil
	})
	if err != nil {
		c.failed(KindAccountTransactions, fmt.Sprintf("%s&offset=%d", key, offset), err)
		c.publish(Event{Kind: KindAccountTransactions, Key: key.String(), Err: err})
		return err
	}

	page, _ := v.(*domain.TransactionsPage)
	cell.Update(func(e Entry[*domain.TransactionPages]) Entry[*domain.TransactionPages] {
		// A refresh may have replaced the list while the page was loading.
		if e.Status != StatusReady || e.Value.NextOffset() != offset {
			return e
		}
		pages := slices.Clone(e.Value.Pages)
		pages = append(pages, *page)
		return Entry[*domain.TransactionPages]{
			Status: StatusReady,
			Value:  &domain.TransactionPages{Pages: pages},
		}
	})
	c.publish(Event{Kind: KindAccountTransactions, Key: key.String()})
	return nil
}

// Refresh fetches every live entry again. Entries whose data did not change
// cause no recomputation. It returns the first fetch failure, after every
// fetch has settled.
func (c *Cache) Refresh(ctx context.Context) error {
	c.Prune()

	var g errgroup.Group
	g.SetLimit(refreshConcurrency)
	for _, k := range c.kinds {
		k.refresh(ctx, &g)
	}
	return g.Wait()
}

// Prune drops the pinned entries that no derived node reads any more.
func (c *Cache) Prune() {
	c.graph.Batch(func(r *reactive.Reader) {
		for id, s := range c.pinned {
			if s.observed(r) {
				continue
			}
			delete(c.pinned, id)
			s.drop()
		}
	})
}

// Pinned returns the number of entries kept past the LRU bound.
func (c *Cache) Pinned() int {
	n := 0
	c.graph.Batch(func(*reactive.Reader) {
		n = len(c.pinned)
	})
	return n
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	n := 0
	for _, k := range c.kinds {
		n += k.len()
	}
	return n
}

// Inflight returns the number of fetches that have not settled.
func (c *Cache) Inflight() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight
}

// WaitIdle blocks until no fetch is in flight or ctx is done.
func (c *Cache) WaitIdle(ctx context.Context) error {
	c.mu.Lock()
	if c.inflight == 0 {
		c.mu.Unlock()
		return nil
	}
	idle := c.idle
	c.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribe calls fn after every settled fetch, outside the graph lock.
// The returned function removes the subscription.
func (c *Cache) Subscribe(fn func(Event)) (unsubscribe func()) {
	_ = c.bus.Subscribe(SettledTopic, fn)
	return func() {
		_ = c.bus.Unsubscribe(SettledTopic, fn)
	}
}

// Close cancels every fetch in flight. Keys read afterwards fail with
// domain.ErrCacheClosed.
func (c *Cache) Close() {
	c.cancel()
}

// touch marks id as most recently used. It runs with the graph lock held.
func (c *Cache) touch(r *reactive.Reader, id string, s slot) {
	delete(c.pinned, id)
	c.lru.Add(id, s)

	pending := c.pending
	c.pending = nil
	for _, e := range pending {
		if e.observed(r) {
			c.pinned[e.id] = e.slot
			continue
		}
		e.drop()
	}
}

func (c *Cache) begin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight == 0 {
		c.idle = make(chan struct{})
	}
	c.inflight++
}

func (c *Cache) end() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	if c.inflight == 0 {
		close(c.idle)
	}
}

func (c *Cache) publish(e Event) {
	c.bus.Publish(SettledTopic, e)
}

func (c *Cache) failed(kind, key string, err error) {
	if errors.Is(err, context.Canceled) && c.ctx.Err() != nil {
		return
	}
	c.logger.Warn(zerr.With(zerr.With(zerr.Wrap(err, "fetch failed"), "kind", kind), "key", key))
}
