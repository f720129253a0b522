package domain

// TxType is the kind of a transaction payload.
type TxType string

const (
	// TxTypeTokenTransfer moves STX between accounts.
	TxTypeTokenTransfer TxType = "token_transfer"
	// TxTypeSmartContract deploys a contract.
	TxTypeSmartContract TxType = "smart_contract"
	// TxTypeContractCall calls a public function of a contract.
	TxTypeContractCall TxType = "contract_call"
	// TxTypeCoinbase is a miner reward transaction.
	TxTypeCoinbase TxType = "coinbase"
	// TxTypePoisonMicroblock reports a conflicting microblock.
	TxTypePoisonMicroblock TxType = "poison_microblock"
)

// TxStatus is the settlement status of a transaction.
type TxStatus string

const (
	// TxStatusSuccess marks a transaction anchored in a block that executed successfully.
	TxStatusSuccess TxStatus = "success"
	// TxStatusPending marks a mempool transaction.
	TxStatusPending TxStatus = "pending"
	// TxStatusAbortByResponse marks a transaction whose contract call returned an error.
	TxStatusAbortByResponse TxStatus = "abort_by_response"
	// TxStatusAbortByPostCondition marks a transaction rejected by a post-condition.
	TxStatusAbortByPostCondition TxStatus = "abort_by_post_condition"
)

// Transaction is a confirmed or mempool transaction record.
type Transaction struct {
	TxID          string   `json:"tx_id"`
	TxType        TxType   `json:"tx_type"`
	TxStatus      TxStatus `json:"tx_status"`
	Nonce         uint64   `json:"nonce"`
	FeeRate       string   `json:"fee_rate"`
	SenderAddress string   `json:"sender_address"`

	BlockHash     string `json:"block_hash,omitempty"`
	BlockHeight   uint64 `json:"block_height,omitempty"`
	BurnBlockTime int64  `json:"burn_block_time,omitempty"`

	// ReceiptTime is only set on mempool transactions.
	ReceiptTime int64 `json:"receipt_time,omitempty"`
	// Mempool reports whether the record was returned as an unconfirmed transaction.
	Mempool bool `json:"-"`

	ContractCall  *ContractCall  `json:"contract_call,omitempty"`
	SmartContract *SmartContract `json:"smart_contract,omitempty"`
	TokenTransfer *TokenTransfer `json:"token_transfer,omitempty"`
}

// ContractCall is the payload of a contract_call transaction.
type ContractCall struct {
	ContractID   string `json:"contract_id"`
	FunctionName string `json:"function_name"`
}

// SmartContract is the payload of a smart_contract transaction.
type SmartContract struct {
	ContractID string `json:"contract_id"`
	SourceCode string `json:"source_code"`
}

// TokenTransfer is the payload of a token_transfer transaction.
type TokenTransfer struct {
	RecipientAddress string `json:"recipient_address"`
	Amount           string `json:"amount"`
	Memo             string `json:"memo"`
}

// CalledContractID returns the called contract for contract calls.
func (t *Transaction) CalledContractID() string {
	if t == nil || t.TxType != TxTypeContractCall || t.ContractCall == nil {
		return ""
	}
	return t.ContractCall.ContractID
}

// DeployedContractID returns the deployed contract for contract deploys.
func (t *Transaction) DeployedContractID() string {
	if t == nil || t.TxType != TxTypeSmartContract || t.SmartContract == nil {
		return ""
	}
	return t.SmartContract.ContractID
}

// TransactionsPage is one page of a cursor based transaction list.
type TransactionsPage struct {
	Limit   int           `json:"limit"`
	Offset  int           `json:"offset"`
	Total   int           `json:"total"`
	Results []Transaction `json:"results"`
}

// TransactionPages is an infinite list of transaction pages loaded so far.
type TransactionPages struct {
	Pages []TransactionsPage `json:"pages"`
}

// NextOffset returns the offset of the next page to load.
func (p *TransactionPages) NextOffset() int {
	if p == nil || len(p.Pages) == 0 {
		return 0
	}
	last := p.Pages[len(p.Pages)-1]
	return last.Offset + len(last.Results)
}

// HasMore reports whether more pages exist upstream.
func (p *TransactionPages) HasMore() bool {
	if p == nil || len(p.Pages) == 0 {
		return true
	}
	last := p.Pages[len(p.Pages)-1]
	return len(last.Results) > 0 && p.NextOffset() < last.Total
}

// Transactions flattens every loaded page in order.
func (p *TransactionPages) Transactions() []Transaction {
	if p == nil {
		return nil
	}
	var out []Transaction
	for _, page := range p.Pages {
		out = append(out, page.Results...)
	}
	return out
}
