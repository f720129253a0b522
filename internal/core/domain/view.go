// Package domain contains the core domain models of the explorer: the view variant,
// chain entity records and the legacy store state.
package domain

import "go.trai.ch/zerr"

// ViewKind identifies which kind of page the user is looking at.
type ViewKind string

const (
	// KindHome is the landing page.
	KindHome ViewKind = "home"
	// KindTransaction is a single transaction page.
	KindTransaction ViewKind = "tx"
	// KindContract is a contract page keyed by its principal.
	KindContract ViewKind = "contract_id"
	// KindAddress is an account page.
	KindAddress ViewKind = "address"
	// KindTransactions is the transaction list page.
	KindTransactions ViewKind = "transactions"
	// KindBlocks is the block list page.
	KindBlocks ViewKind = "blocks"
	// KindBlock is a single block page.
	KindBlock ViewKind = "block"
)

// ViewKinds lists every kind in display order.
var ViewKinds = []ViewKind{
	KindHome,
	KindTransaction,
	KindContract,
	KindAddress,
	KindTransactions,
	KindBlocks,
	KindBlock,
}

// View is the sealed sum type of everything the selector can hold.
// A nil View means no view is active.
type View interface {
	// Kind returns the tag of the variant.
	Kind() ViewKind
	// Payload returns the untyped payload the variant was built from.
	Payload() string

	isView()
}

// HomeView is the landing page.
type HomeView struct{}

// TxView shows one transaction.
type TxView struct {
	TxID string
}

// ContractView shows one contract.
type ContractView struct {
	Principal string
}

// AddressView shows one account.
type AddressView struct {
	Address string
}

// TransactionsView shows the transaction list.
type TransactionsView struct {
	Query string
}

// BlocksView shows the block list.
type BlocksView struct {
	Query string
}

// BlockView shows one block.
type BlockView struct {
	Hash string
}

func (HomeView) Kind() ViewKind         { return KindHome }
func (TxView) Kind() ViewKind           { return KindTransaction }
func (ContractView) Kind() ViewKind     { return KindContract }
func (AddressView) Kind() ViewKind      { return KindAddress }
func (TransactionsView) Kind() ViewKind { return KindTransactions }
func (BlocksView) Kind() ViewKind       { return KindBlocks }
func (BlockView) Kind() ViewKind        { return KindBlock }

func (HomeView) Payload() string           { return "" }
func (v TxView) Payload() string           { return v.TxID }
func (v ContractView) Payload() string     { return v.Principal }
func (v AddressView) Payload() string      { return v.Address }
func (v TransactionsView) Payload() string { return v.Query }
func (v BlocksView) Payload() string       { return v.Query }
func (v BlockView) Payload() string        { return v.Hash }

func (HomeView) isView()         {}
func (TxView) isView()           {}
func (ContractView) isView()     {}
func (AddressView) isView()      {}
func (TransactionsView) isView() {}
func (BlocksView) isView()       {}
func (BlockView) isView()        {}

// ParseView builds the typed variant for a kind and its untyped payload.
// The payload is not validated; a malformed one surfaces later as a fetch failure.
func ParseView(kind, payload string) (View, error) {
	switch ViewKind(kind) {
	case KindHome:
		return HomeView{}, nil
	case KindTransaction:
		return TxView{TxID: payload}, nil
	case KindContract:
		return ContractView{Principal: payload}, nil
	case KindAddress:
		return AddressView{Address: payload}, nil
	case KindTransactions:
		return TransactionsView{Query: payload}, nil
	case KindBlocks:
		return BlocksView{Query: payload}, nil
	case KindBlock:
		return BlockView{Hash: payload}, nil
	default:
		return nil, zerr.With(ErrUnknownViewKind, "kind", kind)
	}
}
