// Copyright 2015 The go-ethereum Authors
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

// Package reward holds the coinbase-reward policies that vary across fork
// families: given a header and its ommers, credit the beneficiary and any
// eligible ommer beneficiaries.
package reward

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/holiman/uint256"
)

// MaxOmmerGeneration is the oldest an ommer may be relative to the
// including block: ommer.Number + MaxOmmerGeneration must be >= header.Number.
const MaxOmmerGeneration = 6

// Balance is the minimal mutation surface a reward policy needs from a
// staged state updater. It is satisfied by core.StateUpdater
// implementations that also expose balance credits; kept as its own
// interface here so this package does not import core (which would be a
// cycle, since core wires reward.Policy back in).
type Balance interface {
	AddBalance(addr common.Address, amount *uint256.Int)
}

// Policy is the reward-policy variation point. It matches
// core.RewardPolicy's contract exactly but is expressed against the
// narrower Balance interface.
type Policy interface {
	RewardCoinbase(updater Balance, header *types.Header, ommers []*types.Header, skipZeroBlockRewards bool) (bool, error)
}

// EthashPolicy is the canonical Mainnet PoW reward: miner reward =
// baseReward + (ommerCount * baseReward/32); each ommer coinbase receives
// ((8 + ommerNumber - headerNumber) * baseReward) / 8.
type EthashPolicy struct {
	BaseReward *uint256.Int
}

// NewEthashPolicy returns a policy paying baseReward (in wei) per block,
// following the classical Ethereum Mainnet issuance schedule (e.g. 5e18,
// 3e18 or 2e18 wei depending on hard fork).
func NewEthashPolicy(baseReward *uint256.Int) *EthashPolicy {
	return &EthashPolicy{BaseReward: new(uint256.Int).Set(baseReward)}
}

func (p *EthashPolicy) RewardCoinbase(updater Balance, header *types.Header, ommers []*types.Header, skipZeroBlockRewards bool) (bool, error) {
	if skipZeroBlockRewards && p.BaseReward.IsZero() {
		return true, nil
	}

	seen := mapset.NewThreadUnsafeSet[common.Hash]()
	headerNumber := header.Number.Uint64()

	minerReward := new(uint256.Int).Set(p.BaseReward)
	ommerInclusionFraction := new(uint256.Int).Div(p.BaseReward, uint256.NewInt(32))

	for _, ommer := range ommers {
		ommerHash := ommer.Hash()
		if seen.Contains(ommerHash) {
			continue // duplicate ommer entry: already credited, skip re-crediting
		}
		seen.Add(ommerHash)

		ommerNumber := ommer.Number.Uint64()
		if ommerNumber+MaxOmmerGeneration < headerNumber {
			return false, nil
		}

		// (8 + ommerNumber - headerNumber) * baseReward / 8
		factor := uint256.NewInt(8 + ommerNumber - headerNumber)
		ommerReward := new(uint256.Int).Mul(factor, p.BaseReward)
		ommerReward.Div(ommerReward, uint256.NewInt(8))
		updater.AddBalance(ommer.Coinbase, ommerReward)

		minerReward.Add(minerReward, ommerInclusionFraction)
	}

	updater.AddBalance(header.Coinbase, minerReward)
	return true, nil
}

// NoRewardPolicy is the post-merge / PoS policy: execution-layer issuance
// is zero, so with skipZeroBlockRewards set no state writes occur at all.
// Ommer generation is still validated, since a post-merge header carrying
// stale ommers is still malformed.
type NoRewardPolicy struct{}

func (NoRewardPolicy) RewardCoinbase(updater Balance, header *types.Header, ommers []*types.Header, skipZeroBlockRewards bool) (bool, error) {
	headerNumber := header.Number.Uint64()
	for _, ommer := range ommers {
		ommerNumber := ommer.Number.Uint64()
		if ommerNumber+MaxOmmerGeneration < headerNumber {
			return false, nil
		}
	}
	if skipZeroBlockRewards {
		return true, nil
	}
	zero := new(uint256.Int)
	updater.AddBalance(header.Coinbase, zero)
	return true, nil
}
