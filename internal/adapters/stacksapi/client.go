// Package stacksapi implements ports.ChainFetcher against the Stacks blockchain REST API.
package stacksapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/explorer/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ChainFetcher = (*Client)(nil)

// Client is a ports.ChainFetcher backed by the Stacks API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the API at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Transaction returns a confirmed or mempool transaction.
func (c *Client) Transaction(ctx context.Context, txID string) (*domain.Transaction, error) {
	body, err := c.get(ctx, "transaction", txID, "/extended/v1/tx/"+url.PathEscape(txID))
	if err != nil {
		return nil, err
	}
	var tx domain.Transaction
	if err := decode(body, "transaction", txID, &tx); err != nil {
		return nil, err
	}
	// Only mempool records carry a receipt time.
	tx.Mempool = gjson.GetBytes(body, "receipt_time").Exists()
	return &tx, nil
}

// Block returns a block with the ordered ids of its transactions.
func (c *Client) Block(ctx context.Context, hash string) (*domain.Block, error) {
	var block domain.Block
	if err := c.getJSON(ctx, "block", hash, "/extended/v1/block/"+url.PathEscape(hash), &block); err != nil {
		return nil, err
	}
	return &block, nil
}

// ContractSource returns the Clarity source of a contract.
func (c *Client) ContractSource(ctx context.Context, principal string) (*domain.ContractSource, error) {
	address, name, err := domain.SplitPrincipal(principal)
	if err != nil {
		return nil, err
	}
	var source domain.ContractSource
	path := fmt.Sprintf("/v2/contracts/source/%s/%s?proof=0", url.PathEscape(address), url.PathEscape(name))
	if err := c.getJSON(ctx, "contract_source", principal, path, &source); err != nil {
		return nil, err
	}
	return &source, nil
}

// ContractInterface returns the interface of a contract.
func (c *Client) ContractInterface(ctx context.Context, principal string) (*domain.ContractInterface, error) {
	address, name, err := domain.SplitPrincipal(principal)
	if err != nil {
		return nil, err
	}
	var iface domain.ContractInterface
	path := fmt.Sprintf("/v2/contracts/interface/%s/%s", url.PathEscape(address), url.PathEscape(name))
	if err := c.getJSON(ctx, "contract_interface", principal, path, &iface); err != nil {
		return nil, err
	}
	return &iface, nil
}

// ContractInfo returns the indexed contract record. The ABI is left undecoded.
func (c *Client) ContractInfo(ctx context.Context, principal string) (*domain.ContractInfo, error) {
	var info domain.ContractInfo
	if err := c.getJSON(ctx, "contract_info", principal, "/extended/v1/contract/"+url.PathEscape(principal), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// AccountBalances returns the STX and token balances of a principal.
func (c *Client) AccountBalances(ctx context.Context, principal string) (*domain.AccountBalances, error) {
	var balances domain.AccountBalances
	path := "/extended/v1/address/" + url.PathEscape(principal) + "/balances"
	if err := c.getJSON(ctx, "account_balances", principal, path, &balances); err != nil {
		return nil, err
	}
	return &balances, nil
}

// AccountInfo returns the node view of an account.
func (c *Client) AccountInfo(ctx context.Context, principal string) (*domain.AccountInfo, error) {
	var info domain.AccountInfo
	path := "/v2/accounts/" + url.PathEscape(principal) + "?proof=0"
	if err := c.getJSON(ctx, "account_info", principal, path, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// AccountStxBalance returns the detailed STX balance of a principal.
func (c *Client) AccountStxBalance(ctx context.Context, principal string) (*domain.StxBalance, error) {
	var balance domain.StxBalance
	path := "/extended/v1/address/" + url.PathEscape(principal) + "/stx"
	if err := c.getJSON(ctx, "account_stx_balance", principal, path, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

// AccountTransactions returns one page of the transactions of a principal.
func (c *Client) AccountTransactions(
	ctx context.Context,
	principal string,
	limit, offset int,
) (*domain.TransactionsPage, error) {
	if limit <= 0 {
		return nil, zerr.With(domain.ErrInvalidPageSize, "limit", limit)
	}
	path := fmt.Sprintf("/extended/v1/address/%s/transactions?limit=%d&offset=%d",
		url.PathEscape(principal), limit, offset)
	var page domain.TransactionsPage
	if err := c.getJSON(ctx, "account_transactions", principal, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) getJSON(ctx context.Context, kind, key, path string, out any) error {
	body, err := c.get(ctx, kind, key, path)
	if err != nil {
		return err
	}
	return decode(body, kind, key, out)
}

func (c *Client) get(ctx context.Context, kind, key, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrAPIRequestFailed.Error())
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, withKey(zerr.Wrap(err, domain.ErrAPIRequestFailed.Error()), kind, key)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, withKey(zerr.Wrap(err, domain.ErrAPIRequestFailed.Error()), kind, key)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, withKey(domain.ErrEntityNotFound, kind, key)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := zerr.With(domain.ErrAPIRequestFailed, "status_code", resp.StatusCode)
		if msg := gjson.GetBytes(body, "error"); msg.Exists() {
			apiErr = zerr.With(apiErr, "message", msg.String())
		}
		return nil, withKey(apiErr, kind, key)
	}

	return body, nil
}

func decode(body []byte, kind, key string, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return withKey(zerr.Wrap(err, domain.ErrAPIParseFailed.Error()), kind, key)
	}
	return nil
}

func withKey(err error, kind, key string) error {
	return zerr.With(zerr.With(err, "kind", kind), "key", key)
}
