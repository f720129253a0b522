package domain

import (
	"encoding/json"
	"errors"
	"strings"

	"go.trai.ch/zerr"
)

// ContractInfo is the indexed record of a deployed contract.
// ABI holds the contract interface as a raw JSON string.
type ContractInfo struct {
	TxID        string `json:"tx_id"`
	ContractID  string `json:"contract_id"`
	BlockHeight uint64 `json:"block_height"`
	Canonical   bool   `json:"canonical"`
	SourceCode  string `json:"source_code"`
	ABI         string `json:"abi"`
}

// ContractDetails is ContractInfo with its ABI decoded.
type ContractDetails struct {
	TxID        string            `json:"tx_id"`
	ContractID  string            `json:"contract_id"`
	BlockHeight uint64            `json:"block_height"`
	Canonical   bool              `json:"canonical"`
	SourceCode  string            `json:"source_code"`
	ABI         ContractInterface `json:"abi"`
}

// ParseDetails decodes the ABI of the contract info.
// Invalid JSON is reported as ErrInvalidABI; nothing partial is returned.
func (c *ContractInfo) ParseDetails() (*ContractDetails, error) {
	var abi ContractInterface
	if err := json.Unmarshal([]byte(c.ABI), &abi); err != nil {
		return nil, errors.Join(ErrInvalidABI, zerr.With(zerr.Wrap(err, "failed to decode contract abi"), "contract_id", c.ContractID))
	}
	return &ContractDetails{
		TxID:        c.TxID,
		ContractID:  c.ContractID,
		BlockHeight: c.BlockHeight,
		Canonical:   c.Canonical,
		SourceCode:  c.SourceCode,
		ABI:         abi,
	}, nil
}

// ContractSource is the Clarity source of a contract.
type ContractSource struct {
	Source        string `json:"source"`
	PublishHeight uint64 `json:"publish_height"`
	Proof         string `json:"proof,omitempty"`
}

// ContractInterface describes the public surface of a contract.
type ContractInterface struct {
	Functions         []ABIFunction `json:"functions"`
	Variables         []ABIVariable `json:"variables"`
	Maps              []ABIMap      `json:"maps"`
	FungibleTokens    []ABIToken    `json:"fungible_tokens"`
	NonFungibleTokens []ABIToken    `json:"non_fungible_tokens"`
}

// ABIFunction is a contract function signature. Clarity types are kept as raw JSON.
type ABIFunction struct {
	Name    string     `json:"name"`
	Access  string     `json:"access"`
	Args    []ABIArg   `json:"args"`
	Outputs ABIOutputs `json:"outputs"`
}

// ABIArg is a named function argument.
type ABIArg struct {
	Name string          `json:"name"`
	Type json.RawMessage `json:"type"`
}

// ABIOutputs is the return type of a function.
type ABIOutputs struct {
	Type json.RawMessage `json:"type"`
}

// ABIVariable is a data-var or constant.
type ABIVariable struct {
	Name   string          `json:"name"`
	Type   json.RawMessage `json:"type"`
	Access string          `json:"access"`
}

// ABIMap is a data map.
type ABIMap struct {
	Name  string          `json:"name"`
	Key   json.RawMessage `json:"key"`
	Value json.RawMessage `json:"value"`
}

// ABIToken is a fungible or non-fungible token definition.
type ABIToken struct {
	Name string          `json:"name"`
	Type json.RawMessage `json:"type,omitempty"`
}

// SplitPrincipal splits "ADDRESS.contract-name" into its address and name.
func SplitPrincipal(principal string) (address, name string, err error) {
	address, name, ok := strings.Cut(principal, ".")
	if !ok || address == "" || name == "" {
		return "", "", zerr.With(ErrInvalidPrincipal, "principal", principal)
	}
	return address, name, nil
}
