// Copyright 2017 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package core

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// HeaderBeneficiary is the identity BeneficiaryCalculator used on Mainnet
// PoW and PoS: the address crediting fees and block reward is always
// header.Coinbase.
type HeaderBeneficiary struct{}

func (HeaderBeneficiary) CalculateBeneficiary(header *types.Header) common.Address {
	return header.Coinbase
}

// SignerResolver recovers the address that sealed a header, used by PoA
// chains where the beneficiary is the recovered signer rather than
// whatever header.Coinbase happens to carry (a miner-settable vanity
// field under those engines).
type SignerResolver interface {
	Author(header *types.Header) (common.Address, error)
}

// DelegatingBeneficiary defers to a consensus engine's signer recovery,
// for PoA chains (e.g. Clique) where signer != header.Coinbase.
type DelegatingBeneficiary struct {
	Resolver SignerResolver
}

func (d DelegatingBeneficiary) CalculateBeneficiary(header *types.Header) common.Address {
	addr, err := d.Resolver.Author(header)
	if err != nil {
		// No signer could be recovered; fall back to the header's own
		// coinbase field rather than crediting the zero address.
		return header.Coinbase
	}
	return addr
}
