package app_test

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/synctest"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/explorer/internal/adapters/fetchcache"
	"go.trai.ch/explorer/internal/adapters/telemetry"
	"go.trai.ch/explorer/internal/app"
	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/explorer/internal/core/ports/mocks"
	"go.trai.ch/explorer/internal/engine/inview"
	"go.trai.ch/explorer/internal/engine/reactive"
	"go.trai.ch/explorer/internal/store"
	"go.trai.ch/explorer/internal/tui"
	"go.uber.org/mock/gomock"
)

const (
	contractID = "SP2C2YFP12AJZB4MABJBAJ55XECVS7E4PMMZ89YZR.pool"
	address    = "SP3FBR2AGK5H9QBDH3EEN6DF8EK8JY7RX8QJ5SVTE"
)

var viewedAt = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	app     *app.App
	store   *store.Store
	fetcher *mocks.MockChainFetcher
	logger  *mocks.MockLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		store:   store.Init(nil),
		fetcher: mocks.NewMockChainFetcher(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
	}

	g := reactive.New()
	cache, err := fetchcache.New(g, f.fetcher, f.logger, 64)
	require.NoError(t, err)
	t.Cleanup(cache.Close)

	f.app = app.New(inview.New(g, cache), cache, f.store, f.logger, telemetry.NewRecomputeCounter(), 5).
		WithClock(func() time.Time { return viewedAt })
	return f
}

func statusOf(t *testing.T, r *app.Report, name string) tui.Status {
	t.Helper()
	n, ok := r.Node(name)
	require.True(t, ok, "node %q missing from report", name)
	return n.Status
}

func TestApp_View_ContractCall(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)

		tx := &domain.Transaction{
			TxID:         "0xcall",
			TxType:       domain.TxTypeContractCall,
			TxStatus:     domain.TxStatusSuccess,
			BlockHash:    "0xblock",
			ContractCall: &domain.ContractCall{ContractID: contractID, FunctionName: "swap"},
		}
		f.fetcher.EXPECT().Transaction(gomock.Any(), "0xcall").Return(tx, nil)
		f.fetcher.EXPECT().Block(gomock.Any(), "0xblock").
			Return(&domain.Block{Hash: "0xblock", Height: 7, Txs: []string{"0xcall"}}, nil)
		f.fetcher.EXPECT().ContractSource(gomock.Any(), contractID).
			Return(&domain.ContractSource{Source: "(define-public (swap) (ok true))"}, nil)
		f.fetcher.EXPECT().ContractInterface(gomock.Any(), contractID).
			Return(&domain.ContractInterface{Functions: []domain.ABIFunction{{Name: "swap"}}}, nil)
		f.fetcher.EXPECT().ContractInfo(gomock.Any(), contractID).
			Return(&domain.ContractInfo{TxID: "0xdeploy", ContractID: contractID, ABI: `{"functions":[]}`}, nil)
		f.fetcher.EXPECT().AccountBalances(gomock.Any(), contractID).
			Return(&domain.AccountBalances{Stx: domain.StxSummary{Balance: "10"}}, nil)
		f.fetcher.EXPECT().AccountInfo(gomock.Any(), contractID).Return(&domain.AccountInfo{Nonce: 1}, nil)
		f.fetcher.EXPECT().AccountStxBalance(gomock.Any(), contractID).Return(&domain.StxBalance{Balance: "10"}, nil)
		f.fetcher.EXPECT().AccountTransactions(gomock.Any(), contractID, 5, 0).
			Return(&domain.TransactionsPage{Limit: 5, Total: 1, Results: []domain.Transaction{*tx}}, nil)

		report, err := f.app.View(context.Background(), domain.TxView{TxID: "0xcall"}, app.ViewOptions{})
		require.NoError(t, err)

		assert.Equal(t, domain.KindTransaction, report.Kind)
		assert.Equal(t, "0xcall", report.Payload)
		for _, name := range []string{
			"txid", "transaction", "tx_type", "block hash", "contract principal", "address",
			"block", "block transactions", "contract source", "contract interface", "contract info",
			"account transactions (limit 5)", "account balances", "account info", "account stx balance",
		} {
			assert.Equal(t, app.StatusResolved, statusOf(t, report, name), name)
		}

		n, _ := report.Node("block")
		assert.Equal(t, "height 7, 1 txs", n.Summary())
		n, _ = report.Node("address")
		assert.Equal(t, contractID, n.Value)

		assert.Equal(t, []domain.ViewedTransaction{{
			TxID:     "0xcall",
			TxType:   domain.TxTypeContractCall,
			TxStatus: domain.TxStatusSuccess,
			ViewedAt: viewedAt,
		}}, f.app.Recent())

		data, err := report.JSON()
		require.NoError(t, err)
		assert.Contains(t, string(data), `"status": "resolved"`)
	})
}

func TestApp_View_BlockLargerThanCache(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)

		ids := make([]string, 100)
		for i := range ids {
			ids[i] = fmt.Sprintf("0x%02x", i)
			f.fetcher.EXPECT().Transaction(gomock.Any(), ids[i]).
				Return(&domain.Transaction{TxID: ids[i], TxType: domain.TxTypeTokenTransfer}, nil).Times(1)
		}
		f.fetcher.EXPECT().Block(gomock.Any(), "0xbig").
			Return(&domain.Block{Hash: "0xbig", Height: 9, Txs: ids}, nil).Times(1)

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		report, err := f.app.View(ctx, domain.BlockView{Hash: "0xbig"}, app.ViewOptions{})
		require.NoError(t, err)

		n, ok := report.Node("block transactions")
		require.True(t, ok)
		assert.Equal(t, app.StatusResolved, n.Status)
		assert.Len(t, n.Value, len(ids))
	})
}

func TestApp_View_AddressWithFailure(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)

		f.fetcher.EXPECT().AccountBalances(gomock.Any(), address).Return(nil, domain.ErrAPIRequestFailed)
		f.fetcher.EXPECT().AccountInfo(gomock.Any(), address).Return(&domain.AccountInfo{Nonce: 3}, nil)
		f.fetcher.EXPECT().AccountStxBalance(gomock.Any(), address).Return(&domain.StxBalance{Balance: "1"}, nil)
		f.fetcher.EXPECT().AccountTransactions(gomock.Any(), address, 2, 0).
			Return(&domain.TransactionsPage{Limit: 2}, nil)
		f.logger.EXPECT().Warn(gomock.Any())

		report, err := f.app.View(context.Background(), domain.AddressView{Address: address}, app.ViewOptions{PageSize: 2})
		require.NoError(t, err)

		assert.Equal(t, app.StatusFailed, statusOf(t, report, "account balances"))
		n, _ := report.Node("account balances")
		assert.ErrorIs(t, n.Err(), domain.ErrAPIRequestFailed)
		assert.Equal(t, app.StatusResolved, statusOf(t, report, "account info"))
		assert.Equal(t, app.StatusAbsent, statusOf(t, report, "txid"))
		assert.Equal(t, app.StatusAbsent, statusOf(t, report, "contract source"))
		assert.Empty(t, f.app.Recent(), "only transaction views are recorded")
	})
}

func TestApp_View_NoView(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.View(context.Background(), nil, app.ViewOptions{})
	require.ErrorIs(t, err, domain.ErrNoView)

	err = f.app.Inspect(context.Background(), nil, app.ViewOptions{})
	require.ErrorIs(t, err, domain.ErrNoView)
}

func TestApp_View_Canceled(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.fetcher.EXPECT().Transaction(gomock.Any(), "0xslow").
			DoAndReturn(func(ctx context.Context, _ string) (*domain.Transaction, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := f.app.View(ctx, domain.TxView{TxID: "0xslow"}, app.ViewOptions{})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, f.app.Recent())
	})
}

func TestApp_Accounts(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.app.AddAccount(address, "savings"))
	assert.Equal(t, []domain.WatchedAccount{{Address: address, Label: "savings"}}, f.app.Accounts())

	require.Error(t, f.app.AddAccount("", "nobody"))

	require.NoError(t, f.app.RemoveAccount(address))
	assert.Empty(t, f.app.Accounts())
}

func TestApp_ClearRecent(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Dispatch(store.TransactionViewed{Tx: domain.ViewedTransaction{TxID: "0x1"}}))

	require.NoError(t, f.app.ClearRecent())
	assert.Empty(t, f.app.Recent())
}

func TestInspector_RowsAndNextPage(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.fetcher.EXPECT().AccountBalances(gomock.Any(), address).Return(&domain.AccountBalances{}, nil)
		f.fetcher.EXPECT().AccountInfo(gomock.Any(), address).Return(&domain.AccountInfo{}, nil)
		f.fetcher.EXPECT().AccountStxBalance(gomock.Any(), address).Return(&domain.StxBalance{}, nil)
		f.fetcher.EXPECT().AccountTransactions(gomock.Any(), address, 2, 0).
			Return(&domain.TransactionsPage{Limit: 2, Total: 3, Results: []domain.Transaction{{TxID: "0x3"}, {TxID: "0x2"}}}, nil)
		f.fetcher.EXPECT().AccountTransactions(gomock.Any(), address, 2, 2).
			Return(&domain.TransactionsPage{Limit: 2, Offset: 2, Total: 3, Results: []domain.Transaction{{TxID: "0x1"}}}, nil)

		view := domain.AddressView{Address: address}
		_, err := f.app.View(context.Background(), view, app.ViewOptions{PageSize: 2})
		require.NoError(t, err)

		src := app.NewInspectorSource(f.app, view, 2)
		assert.Equal(t, "address "+address, src.Title())
		assert.False(t, src.Loading())

		summary := func() string {
			for _, row := range src.Rows() {
				if row.Label == domain.DebugLabel("account transactions (limit 2)") {
					return row.Summary
				}
			}
			return ""
		}
		assert.Equal(t, "2 of 3", summary())

		require.NoError(t, src.NextPage(context.Background()))
		assert.Equal(t, "3 of 3", summary())
	})
}

func TestApp_Inspect_QuitsOnKey(t *testing.T) {
	f := newFixture(t)
	f.app.WithTeaOptions(
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)

	err := f.app.Inspect(context.Background(), domain.HomeView{}, app.ViewOptions{})
	require.NoError(t, err)
}
