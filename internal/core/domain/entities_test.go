package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/explorer/internal/core/domain"
)

func TestTransaction_ContractIDs(t *testing.T) {
	call := &domain.Transaction{
		TxType:       domain.TxTypeContractCall,
		ContractCall: &domain.ContractCall{ContractID: "SP1.amm", FunctionName: "swap"},
	}
	deploy := &domain.Transaction{
		TxType:        domain.TxTypeSmartContract,
		SmartContract: &domain.SmartContract{ContractID: "SP1.token"},
	}
	transfer := &domain.Transaction{TxType: domain.TxTypeTokenTransfer}

	assert.Equal(t, "SP1.amm", call.CalledContractID())
	assert.Empty(t, call.DeployedContractID())
	assert.Equal(t, "SP1.token", deploy.DeployedContractID())
	assert.Empty(t, deploy.CalledContractID())
	assert.Empty(t, transfer.CalledContractID())

	var missing *domain.Transaction
	assert.Empty(t, missing.CalledContractID())
	assert.Empty(t, missing.DeployedContractID())
}

func TestTransactionPages(t *testing.T) {
	var empty *domain.TransactionPages
	assert.Equal(t, 0, empty.NextOffset())
	assert.True(t, empty.HasMore())

	pages := &domain.TransactionPages{Pages: []domain.TransactionsPage{
		{Limit: 2, Offset: 0, Total: 3, Results: []domain.Transaction{{TxID: "a"}, {TxID: "b"}}},
	}}
	assert.Equal(t, 2, pages.NextOffset())
	assert.True(t, pages.HasMore())

	pages.Pages = append(pages.Pages, domain.TransactionsPage{
		Limit: 2, Offset: 2, Total: 3, Results: []domain.Transaction{{TxID: "c"}},
	})
	assert.Equal(t, 3, pages.NextOffset())
	assert.False(t, pages.HasMore())

	ids := make([]string, 0, 3)
	for _, tx := range pages.Transactions() {
		ids = append(ids, tx.TxID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestContractInfo_ParseDetails(t *testing.T) {
	info := &domain.ContractInfo{
		TxID:       "0x1",
		ContractID: "SP1.counter",
		ABI:        `{"functions":[{"name":"increment","access":"public","args":[],"outputs":{"type":"bool"}}],"variables":[],"maps":[],"fungible_tokens":[],"non_fungible_tokens":[]}`,
	}

	details, err := info.ParseDetails()
	require.NoError(t, err)
	assert.Equal(t, "0x1", details.TxID)
	require.Len(t, details.ABI.Functions, 1)
	assert.Equal(t, "increment", details.ABI.Functions[0].Name)
	assert.JSONEq(t, `"bool"`, string(details.ABI.Functions[0].Outputs.Type))
}

func TestContractInfo_ParseDetails_InvalidJSON(t *testing.T) {
	info := &domain.ContractInfo{ContractID: "SP1.broken", ABI: "{not json"}

	details, err := info.ParseDetails()
	require.Error(t, err)
	assert.Nil(t, details)
	assert.True(t, errors.Is(err, domain.ErrInvalidABI))
}

func TestSplitPrincipal(t *testing.T) {
	addr, name, err := domain.SplitPrincipal("SP000.pox-4")
	require.NoError(t, err)
	assert.Equal(t, "SP000", addr)
	assert.Equal(t, "pox-4", name)

	for _, bad := range []string{"SP000", ".pox", "SP000.", ""} {
		_, _, err := domain.SplitPrincipal(bad)
		require.Error(t, err, bad)
		assert.Contains(t, err.Error(), domain.ErrInvalidPrincipal.Error())
	}
}
