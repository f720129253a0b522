package domain

// Block is an anchored block record.
type Block struct {
	Hash            string   `json:"hash"`
	Height          uint64   `json:"height"`
	ParentBlockHash string   `json:"parent_block_hash"`
	BurnBlockTime   int64    `json:"burn_block_time"`
	Canonical       bool     `json:"canonical"`
	Txs             []string `json:"txs"`
}
