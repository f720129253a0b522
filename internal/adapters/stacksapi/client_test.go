package stacksapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/explorer/internal/adapters/stacksapi"
	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/zerr"
)

const contractID = "SP2C2YFP12AJZB4MABJBAJ55XECVS7E4PMMZ89YZR.arkadiko-swap-v2-1"

// newServer serves body for the exact request URI and 404 for anything else.
func newServer(t *testing.T, routes map[string]string) *stacksapi.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.RequestURI()]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return stacksapi.New(server.URL+"/", 5*time.Second)
}

func TestClient_Transaction(t *testing.T) {
	client := newServer(t, map[string]string{
		"/extended/v1/tx/0xconfirmed": `{
			"tx_id": "0xconfirmed",
			"tx_type": "contract_call",
			"tx_status": "success",
			"block_hash": "0xblock",
			"block_height": 42,
			"contract_call": {"contract_id": "` + contractID + `", "function_name": "swap-x-for-y"}
		}`,
		"/extended/v1/tx/0xmempool": `{
			"tx_id": "0xmempool",
			"tx_type": "token_transfer",
			"tx_status": "pending",
			"receipt_time": 1700000000,
			"token_transfer": {"recipient_address": "SP3", "amount": "100", "memo": ""}
		}`,
	})

	tx, err := client.Transaction(context.Background(), "0xconfirmed")
	require.NoError(t, err)
	assert.Equal(t, domain.TxTypeContractCall, tx.TxType)
	assert.Equal(t, "0xblock", tx.BlockHash)
	assert.Equal(t, uint64(42), tx.BlockHeight)
	assert.Equal(t, contractID, tx.CalledContractID())
	assert.False(t, tx.Mempool)

	tx, err = client.Transaction(context.Background(), "0xmempool")
	require.NoError(t, err)
	assert.True(t, tx.Mempool)
	assert.Equal(t, domain.TxStatusPending, tx.TxStatus)
	assert.Equal(t, "100", tx.TokenTransfer.Amount)
}

func TestClient_NotFound(t *testing.T) {
	client := newServer(t, nil)

	_, err := client.Block(context.Background(), "0xmissing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrEntityNotFound.Error())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "block", zErr.Metadata()["kind"])
	assert.Equal(t, "0xmissing", zErr.Metadata()["key"])
}

func TestClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"rate limit exceeded"}`))
	}))
	defer server.Close()
	client := stacksapi.New(server.URL, time.Second)

	_, err := client.AccountInfo(context.Background(), "SP3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrAPIRequestFailed.Error())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	meta := zErr.Metadata()
	assert.Equal(t, http.StatusTooManyRequests, meta["status_code"])
	assert.Equal(t, "rate limit exceeded", meta["message"])
	assert.Equal(t, "account_info", meta["kind"])
}

func TestClient_ParseError(t *testing.T) {
	client := newServer(t, map[string]string{
		"/extended/v1/block/0xbad": `{"hash": 12`,
	})

	_, err := client.Block(context.Background(), "0xbad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrAPIParseFailed.Error())
}

func TestClient_Block(t *testing.T) {
	client := newServer(t, map[string]string{
		"/extended/v1/block/0xblock": `{"hash":"0xblock","height":10,"canonical":true,"txs":["0x3","0x1","0x2"]}`,
	})

	block, err := client.Block(context.Background(), "0xblock")
	require.NoError(t, err)
	assert.Equal(t, uint64(10), block.Height)
	assert.Equal(t, []string{"0x3", "0x1", "0x2"}, block.Txs)
}

func TestClient_Contract(t *testing.T) {
	client := newServer(t, map[string]string{
		"/v2/contracts/source/SP2C2YFP12AJZB4MABJBAJ55XECVS7E4PMMZ89YZR/arkadiko-swap-v2-1?proof=0": `{"source":"(define-read-only (ping) (ok true))","publish_height":34}`,
		"/v2/contracts/interface/SP2C2YFP12AJZB4MABJBAJ55XECVS7E4PMMZ89YZR/arkadiko-swap-v2-1":      `{"functions":[{"name":"ping","access":"read_only","args":[],"outputs":{"type":"bool"}}],"variables":[],"maps":[],"fungible_tokens":[],"non_fungible_tokens":[]}`,
		"/extended/v1/contract/" + contractID:                                                       `{"tx_id":"0xdeploy","contract_id":"` + contractID + `","block_height":34,"abi":"{\"functions\":[]}"}`,
	})
	ctx := context.Background()

	source, err := client.ContractSource(ctx, contractID)
	require.NoError(t, err)
	assert.Equal(t, uint64(34), source.PublishHeight)

	iface, err := client.ContractInterface(ctx, contractID)
	require.NoError(t, err)
	require.Len(t, iface.Functions, 1)
	assert.Equal(t, "read_only", iface.Functions[0].Access)

	info, err := client.ContractInfo(ctx, contractID)
	require.NoError(t, err)
	assert.Equal(t, "0xdeploy", info.TxID)
	assert.JSONEq(t, `{"functions":[]}`, info.ABI)
}

func TestClient_ContractInvalidPrincipal(t *testing.T) {
	client := newServer(t, nil)

	_, err := client.ContractSource(context.Background(), "SP2C2YFP12AJZB4MABJBAJ55XECVS7E4PMMZ89YZR")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidPrincipal.Error())
}

func TestClient_Account(t *testing.T) {
	const addr = "SP3FBR2AGK5H9QBDH3EEN6DF8EK8JY7RX8QJ5SVTE"
	client := newServer(t, map[string]string{
		"/extended/v1/address/" + addr + "/balances":                      `{"stx":{"balance":"1000","total_sent":"0","total_received":"1000","locked":"0"},"fungible_tokens":{"SP1.token::tok":{"balance":"5","total_sent":"0","total_received":"5"}},"non_fungible_tokens":{}}`,
		"/v2/accounts/" + addr + "?proof=0":                               `{"balance":"0x3e8","locked":"0x0","unlock_height":0,"nonce":7}`,
		"/extended/v1/address/" + addr + "/stx":                           `{"balance":"1000","total_sent":"0","total_received":"1000","total_fees_sent":"0","total_miner_rewards_received":"0","locked":"0","lock_height":0,"burnchain_lock_height":0,"burnchain_unlock_height":0}`,
		"/extended/v1/address/" + addr + "/transactions?limit=2&offset=4": `{"limit":2,"offset":4,"total":5,"results":[{"tx_id":"0x5","tx_type":"coinbase","tx_status":"success"}]}`,
	})
	ctx := context.Background()

	balances, err := client.AccountBalances(ctx, addr)
	require.NoError(t, err)
	assert.Equal(t, "1000", balances.Stx.Balance)
	assert.Equal(t, "5", balances.FungibleTokens["SP1.token::tok"].Balance)

	info, err := client.AccountInfo(ctx, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), info.Nonce)

	stx, err := client.AccountStxBalance(ctx, addr)
	require.NoError(t, err)
	assert.Equal(t, "1000", stx.TotalReceived)

	page, err := client.AccountTransactions(ctx, addr, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
	require.Len(t, page.Results, 1)
	assert.Equal(t, domain.TxTypeCoinbase, page.Results[0].TxType)
}

func TestClient_AccountTransactionsInvalidLimit(t *testing.T) {
	client := newServer(t, nil)

	_, err := client.AccountTransactions(context.Background(), "SP3", 0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidPageSize.Error())
}

func TestClient_ContextCanceled(t *testing.T) {
	client := newServer(t, map[string]string{"/extended/v1/tx/0x1": `{}`})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Transaction(ctx, "0x1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrAPIRequestFailed.Error())
}
