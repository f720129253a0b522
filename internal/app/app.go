// Package app implements the application layer for the explorer.
package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/explorer/internal/adapters/fetchcache"
	"go.trai.ch/explorer/internal/adapters/telemetry"
	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/explorer/internal/core/ports"
	"go.trai.ch/explorer/internal/engine/inview"
	"go.trai.ch/explorer/internal/store"
	"go.trai.ch/zerr"
)

// Cache is the part of the fetch cache the application drives.
type Cache interface {
	inview.EntityCache
	Inflight() int
	WaitIdle(ctx context.Context) error
	Refresh(ctx context.Context) error
	Prune()
	FetchNextPage(ctx context.Context, address string, pageSize int) error
	Subscribe(fn func(fetchcache.Event)) (unsubscribe func())
	Close()
}

// RecomputeStats reports how often a derived node was recomputed.
type RecomputeStats interface {
	Stats(node string) telemetry.RecomputeStats
}

// App represents the main application logic.
type App struct {
	state      *inview.State
	cache      Cache
	store      *store.Store
	logger     ports.Logger
	stats      RecomputeStats
	pageSize   int
	now        func() time.Time
	teaOptions []tea.ProgramOption
}

// New creates a new App instance. pageSize is the default account
// transaction page size.
func New(
	state *inview.State,
	cache Cache,
	st *store.Store,
	log ports.Logger,
	stats RecomputeStats,
	pageSize int,
) *App {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &App{
		state:    state,
		cache:    cache,
		store:    st,
		logger:   log,
		stats:    stats,
		pageSize: pageSize,
		now:      time.Now,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithClock replaces the clock used to timestamp viewed transactions.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// ViewOptions configures View and Inspect.
type ViewOptions struct {
	// PageSize is the account transaction page size. Zero means the configured default.
	PageSize int
}

func (a *App) pageSizeOr(n int) int {
	if n > 0 {
		return n
	}
	return a.pageSize
}

// View selects view and returns every derived node once loading settled.
// Each pass may reveal new keys to fetch, so passes repeat until one of them
// starts no fetch.
func (a *App) View(ctx context.Context, view domain.View, opts ViewOptions) (*Report, error) {
	if view == nil {
		return nil, domain.ErrNoView
	}
	pageSize := a.pageSizeOr(opts.PageSize)

	a.state.SetView(view)
	for {
		report := a.snapshot(pageSize)
		if a.cache.Inflight() == 0 {
			a.cache.Prune()
			a.record(view)
			return report, nil
		}
		if err := a.cache.WaitIdle(ctx); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "interrupted while loading view"), "view", view.Kind())
		}
	}
}

// record remembers a viewed transaction once it resolved.
func (a *App) record(view domain.View) {
	if _, ok := view.(domain.TxView); !ok {
		return
	}
	tx, ok := a.state.Transaction().Peek()
	if !ok || tx == nil {
		return
	}
	err := a.store.Dispatch(store.TransactionViewed{Tx: domain.ViewedTransaction{
		TxID:     tx.TxID,
		TxType:   tx.TxType,
		TxStatus: tx.TxStatus,
		ViewedAt: a.now().UTC(),
	}})
	if err != nil {
		a.logger.Error(err)
	}
}

// Recent returns the recently viewed transactions, newest first.
func (a *App) Recent() []domain.ViewedTransaction {
	return a.store.State().Transactions.Recent
}

// ClearRecent forgets the recently viewed transactions.
func (a *App) ClearRecent() error {
	return a.store.Dispatch(store.TransactionsCleared{})
}

// Accounts returns the watched accounts.
func (a *App) Accounts() []domain.WatchedAccount {
	return a.store.State().Accounts.Watched
}

// AddAccount watches address under label.
func (a *App) AddAccount(address, label string) error {
	return a.store.Dispatch(store.AccountAdded{Address: address, Label: label})
}

// RemoveAccount stops watching address.
func (a *App) RemoveAccount(address string) error {
	return a.store.Dispatch(store.AccountRemoved{Address: address})
}

// Close stops every fetch in flight.
func (a *App) Close() {
	a.cache.Close()
}
