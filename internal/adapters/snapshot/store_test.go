package snapshot_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/explorer/internal/adapters/snapshot"
	"go.trai.ch/explorer/internal/core/domain"
)

func sampleState() domain.RootState {
	return domain.RootState{
		Transactions: domain.TransactionsState{Recent: []domain.ViewedTransaction{{
			TxID:     "0xabc",
			TxType:   domain.TxTypeContractCall,
			TxStatus: domain.TxStatusSuccess,
			ViewedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		}}},
		Accounts: domain.AccountsState{Watched: []domain.WatchedAccount{{
			Address: "SP3FBR2AGK5H9QBDH3EEN6DF8EK8JY7RX8QJ5SVTE",
			Label:   "treasury",
		}}},
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.ExplorerDirName, domain.StateFileName)
	store := snapshot.NewStore(path)

	require.NoError(t, store.Save(sampleState()))

	got, err := snapshot.NewStore(path).Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sampleState(), *got)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestStore_LoadMissing(t *testing.T) {
	store := snapshot.NewStore(filepath.Join(t.TempDir(), "missing.json"))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_LoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, nil, domain.PrivateFilePerm))

	got, err := snapshot.NewStore(path).Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_DetectsTampering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := snapshot.NewStore(path)
	require.NoError(t, store.Save(sampleState()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	tampered := strings.Replace(string(data), "treasury", "attacker", 1)
	require.NotEqual(t, string(data), tampered)
	require.NoError(t, os.WriteFile(path, []byte(tampered), domain.PrivateFilePerm))

	_, err = store.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrSnapshotCorrupt.Error())
}

func TestStore_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), domain.PrivateFilePerm))

	_, err := snapshot.NewStore(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrSnapshotCorrupt.Error())
}

func TestStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := snapshot.NewStore(path)
	require.NoError(t, store.Save(sampleState()))
	require.NoError(t, store.Save(domain.RootState{}))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got.Accounts.Watched)
	assert.Empty(t, got.Transactions.Recent)
	assert.Equal(t, path, store.Path())
}
