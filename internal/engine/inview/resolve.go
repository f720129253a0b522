package inview

import (
	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/explorer/internal/engine/reactive"
)

// Resolvers are total: an absent or failed upstream resolves to the zero value.

func (s *State) resolveTransactionID(r *reactive.Reader) (string, error) {
	switch v := s.selector.Read(r).(type) {
	case domain.TxView:
		return v.TxID, nil
	case domain.ContractView:
		info, err := s.cache.ContractInfo(r, v.Principal)
		if err != nil || info == nil {
			return "", nil
		}
		return info.TxID, nil
	case domain.HomeView, domain.AddressView, domain.TransactionsView, domain.BlocksView, domain.BlockView, nil:
		return "", nil
	default:
		return "", nil
	}
}

func (s *State) resolveTransaction(r *reactive.Reader) (*domain.Transaction, error) {
	id, _ := s.txID.Read(r)
	if id == "" {
		return nil, nil
	}
	tx, err := s.cache.Transaction(r, id)
	if err != nil {
		return nil, nil
	}
	return tx, nil
}

func (s *State) resolveTransactionType(r *reactive.Reader) (domain.TxType, error) {
	tx, _ := s.tx.Read(r)
	if tx == nil {
		return "", nil
	}
	return tx.TxType, nil
}

func (s *State) resolveBlockHash(r *reactive.Reader) (string, error) {
	switch v := s.selector.Read(r).(type) {
	case domain.BlockView:
		return v.Hash, nil
	case domain.TxView, domain.ContractView:
		tx, _ := s.tx.Read(r)
		// Only a successful transaction points at a meaningful block.
		if tx == nil || tx.TxStatus != domain.TxStatusSuccess {
			return "", nil
		}
		return tx.BlockHash, nil
	case domain.HomeView, domain.AddressView, domain.TransactionsView, domain.BlocksView, nil:
		return "", nil
	default:
		return "", nil
	}
}

func (s *State) resolveContractPrincipal(r *reactive.Reader) (string, error) {
	switch v := s.selector.Read(r).(type) {
	case domain.ContractView:
		return v.Principal, nil
	case domain.TxView:
		return s.transactionContract(r), nil
	case domain.HomeView, domain.AddressView, domain.TransactionsView, domain.BlocksView, domain.BlockView, nil:
		return "", nil
	default:
		return "", nil
	}
}

func (s *State) resolveAddress(r *reactive.Reader) (string, error) {
	switch v := s.selector.Read(r).(type) {
	case domain.AddressView:
		return v.Address, nil
	case domain.TxView, domain.ContractView:
		// Contract related transactions alias the contract principal as the address.
		return s.transactionContract(r), nil
	case domain.HomeView, domain.TransactionsView, domain.BlocksView, domain.BlockView, nil:
		return "", nil
	default:
		return "", nil
	}
}

// transactionContract returns the contract a resolved transaction calls or deploys.
func (s *State) transactionContract(r *reactive.Reader) string {
	tx, _ := s.tx.Read(r)
	if tx == nil {
		return ""
	}
	switch tx.TxType {
	case domain.TxTypeContractCall:
		return tx.CalledContractID()
	case domain.TxTypeSmartContract:
		return tx.DeployedContractID()
	case domain.TxTypeTokenTransfer, domain.TxTypeCoinbase, domain.TxTypePoisonMicroblock:
		return ""
	default:
		return ""
	}
}
