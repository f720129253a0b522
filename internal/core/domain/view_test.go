package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParseView(t *testing.T) {
	tests := []struct {
		kind    string
		payload string
		want    domain.View
	}{
		{kind: "home", payload: "ignored", want: domain.HomeView{}},
		{kind: "tx", payload: "0xabc", want: domain.TxView{TxID: "0xabc"}},
		{kind: "contract_id", payload: "SP1.pool", want: domain.ContractView{Principal: "SP1.pool"}},
		{kind: "address", payload: "SP2", want: domain.AddressView{Address: "SP2"}},
		{kind: "transactions", payload: "", want: domain.TransactionsView{}},
		{kind: "blocks", payload: "", want: domain.BlocksView{}},
		{kind: "block", payload: "0xdef", want: domain.BlockView{Hash: "0xdef"}},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			got, err := domain.ParseView(tt.kind, tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, domain.ViewKind(tt.kind), got.Kind())
		})
	}
}

func TestParseView_UnknownKind(t *testing.T) {
	_, err := domain.ParseView("mempool", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrUnknownViewKind.Error())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "mempool", zErr.Metadata()["kind"])
}

func TestView_PayloadRoundTrip(t *testing.T) {
	for _, kind := range domain.ViewKinds {
		v, err := domain.ParseView(string(kind), "payload")
		require.NoError(t, err)

		again, err := domain.ParseView(string(v.Kind()), v.Payload())
		require.NoError(t, err)
		assert.Equal(t, v, again, "kind %s", kind)
	}
}

func TestView_Comparable(t *testing.T) {
	var a, b domain.View = domain.TxView{TxID: "1"}, domain.TxView{TxID: "1"}
	assert.True(t, a == b)

	b = domain.BlockView{Hash: "1"}
	assert.False(t, a == b, "same payload on different kinds must differ")
}

func TestDebugLabel(t *testing.T) {
	assert.Equal(t, "[currently in view] block hash", domain.DebugLabel("block hash"))
}
