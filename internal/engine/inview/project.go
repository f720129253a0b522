package inview

import (
	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/explorer/internal/engine/reactive"
)

// Projectors are absent while their key is absent and forward the cache's
// failure for their key unchanged.

func (s *State) projectBlock(r *reactive.Reader) (*domain.Block, error) {
	hash, _ := s.blockHash.Read(r)
	if hash == "" {
		return nil, nil
	}
	return s.cache.Block(r, hash)
}

func (s *State) projectBlockTransactions(r *reactive.Reader) ([]*domain.Transaction, error) {
	block, err := s.block.Read(r)
	if err != nil {
		return nil, err
	}
	if block == nil {
		return nil, nil
	}

	txs := make([]*domain.Transaction, len(block.Txs))
	complete := true
	// Read every id, even after a miss, so that all fetches start in one pass.
	for i, id := range block.Txs {
		tx, err := s.cache.Transaction(r, id)
		if err != nil {
			return nil, err
		}
		if tx == nil {
			complete = false
			continue
		}
		txs[i] = tx
	}
	if !complete {
		return nil, nil
	}
	return txs, nil
}

func (s *State) projectContractSource(r *reactive.Reader) (*domain.ContractSource, error) {
	principal, _ := s.principal.Read(r)
	if principal == "" {
		return nil, nil
	}
	return s.cache.ContractSource(r, principal)
}

func (s *State) projectContractInterface(r *reactive.Reader) (*domain.ContractInterface, error) {
	principal, _ := s.principal.Read(r)
	if principal == "" {
		return nil, nil
	}
	return s.cache.ContractInterface(r, principal)
}

func (s *State) projectContractInfo(r *reactive.Reader) (*domain.ContractDetails, error) {
	principal, _ := s.principal.Read(r)
	if principal == "" {
		return nil, nil
	}
	info, err := s.cache.ContractInfo(r, principal)
	if err != nil || info == nil {
		return nil, err
	}
	return info.ParseDetails()
}

func (s *State) projectAccountTransactions(r *reactive.Reader, pageSize int) (*domain.TransactionPages, error) {
	address, _ := s.address.Read(r)
	if address == "" {
		return nil, nil
	}
	return s.cache.AccountTransactions(r, address, pageSize)
}

func (s *State) projectAccountBalances(r *reactive.Reader) (*domain.AccountBalances, error) {
	address, _ := s.address.Read(r)
	if address == "" {
		return nil, nil
	}
	return s.cache.AccountBalances(r, address)
}

func (s *State) projectAccountInfo(r *reactive.Reader) (*domain.AccountInfo, error) {
	address, _ := s.address.Read(r)
	if address == "" {
		return nil, nil
	}
	return s.cache.AccountInfo(r, address)
}

func (s *State) projectAccountStxBalance(r *reactive.Reader) (*domain.StxBalance, error) {
	address, _ := s.address.Read(r)
	if address == "" {
		return nil, nil
	}
	return s.cache.AccountStxBalance(r, address)
}
