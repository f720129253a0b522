package domain

// AccountBalances groups the STX and token balances of a principal.
type AccountBalances struct {
	Stx               StxSummary            `json:"stx"`
	FungibleTokens    map[string]FTBalance  `json:"fungible_tokens"`
	NonFungibleTokens map[string]NFTBalance `json:"non_fungible_tokens"`
}

// StxSummary is the STX part of AccountBalances.
type StxSummary struct {
	Balance       string `json:"balance"`
	TotalSent     string `json:"total_sent"`
	TotalReceived string `json:"total_received"`
	Locked        string `json:"locked"`
}

// FTBalance is the balance of one fungible token.
type FTBalance struct {
	Balance       string `json:"balance"`
	TotalSent     string `json:"total_sent"`
	TotalReceived string `json:"total_received"`
}

// NFTBalance counts the units of one non-fungible token.
type NFTBalance struct {
	Count         string `json:"count"`
	TotalSent     string `json:"total_sent"`
	TotalReceived string `json:"total_received"`
}

// AccountInfo is the node view of an account. Balances are hex encoded.
type AccountInfo struct {
	Balance      string `json:"balance"`
	Locked       string `json:"locked"`
	UnlockHeight uint64 `json:"unlock_height"`
	Nonce        uint64 `json:"nonce"`
}

// StxBalance is the detailed STX balance of a principal.
type StxBalance struct {
	Balance                   string `json:"balance"`
	TotalSent                 string `json:"total_sent"`
	TotalReceived             string `json:"total_received"`
	TotalFeesSent             string `json:"total_fees_sent"`
	TotalMinerRewardsReceived string `json:"total_miner_rewards_received"`
	Locked                    string `json:"locked"`
	LockHeight                uint64 `json:"lock_height"`
	BurnchainLockHeight       uint64 `json:"burnchain_lock_height"`
	BurnchainUnlockHeight     uint64 `json:"burnchain_unlock_height"`
}
