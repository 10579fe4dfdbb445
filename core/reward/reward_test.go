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

package reward_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/naviechan/besu/core/reward"
)

// creditLedger is a minimal reward.Balance that just records credits, so
// these tests can assert exact reward amounts without a full world state.
type creditLedger map[common.Address]*uint256.Int

func (l creditLedger) AddBalance(addr common.Address, amount *uint256.Int) {
	cur, ok := l[addr]
	if !ok {
		cur = new(uint256.Int)
	}
	l[addr] = new(uint256.Int).Add(cur, amount)
}

func TestEthashPolicy_NoOmmers(t *testing.T) {
	policy := reward.NewEthashPolicy(uint256.MustFromBig(big.NewInt(5e18)))
	ledger := creditLedger{}
	coinbase := common.HexToAddress("0xc0ffee")
	header := &types.Header{Number: big.NewInt(100), Coinbase: coinbase}

	ok, err := policy.RewardCoinbase(ledger, header, nil, false)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint256.MustFromBig(big.NewInt(5e18)), ledger[coinbase])
}

func TestEthashPolicy_OmmerRewardsAndInclusionFraction(t *testing.T) {
	policy := reward.NewEthashPolicy(uint256.MustFromBig(big.NewInt(5e18)))
	ledger := creditLedger{}
	coinbase := common.HexToAddress("0xc0ffee")
	ommerCoinbase := common.HexToAddress("0xdead")
	header := &types.Header{Number: big.NewInt(100), Coinbase: coinbase}
	ommer := &types.Header{Number: big.NewInt(99), Coinbase: ommerCoinbase}

	ok, err := policy.RewardCoinbase(ledger, header, []*types.Header{ommer}, false)
	require.NoError(t, err)
	require.True(t, ok)

	// ommer reward = (8 + 99 - 100) * 5e18 / 8 = 7 * 5e18 / 8
	wantOmmer := new(uint256.Int).Mul(uint256.NewInt(7), uint256.MustFromBig(big.NewInt(5e18)))
	wantOmmer.Div(wantOmmer, uint256.NewInt(8))
	require.Equal(t, wantOmmer, ledger[ommerCoinbase])

	// miner reward = baseReward + baseReward/32
	wantMiner := new(uint256.Int).Add(
		uint256.MustFromBig(big.NewInt(5e18)),
		new(uint256.Int).Div(uint256.MustFromBig(big.NewInt(5e18)), uint256.NewInt(32)),
	)
	require.Equal(t, wantMiner, ledger[coinbase])
}

func TestEthashPolicy_DuplicateOmmerCreditedOnce(t *testing.T) {
	policy := reward.NewEthashPolicy(uint256.MustFromBig(big.NewInt(5e18)))
	ledger := creditLedger{}
	ommerCoinbase := common.HexToAddress("0xdead")
	header := &types.Header{Number: big.NewInt(10), Coinbase: common.HexToAddress("0xc0ffee")}
	ommer := &types.Header{Number: big.NewInt(9), Coinbase: ommerCoinbase}

	ok, err := policy.RewardCoinbase(ledger, header, []*types.Header{ommer, ommer}, false)
	require.NoError(t, err)
	require.True(t, ok)

	wantOmmer := new(uint256.Int).Mul(uint256.NewInt(7), uint256.MustFromBig(big.NewInt(5e18)))
	wantOmmer.Div(wantOmmer, uint256.NewInt(8))
	require.Equal(t, wantOmmer, ledger[ommerCoinbase])
}

func TestEthashPolicy_OmmerTooOldRejectsBlock(t *testing.T) {
	policy := reward.NewEthashPolicy(uint256.MustFromBig(big.NewInt(5e18)))
	ledger := creditLedger{}
	header := &types.Header{Number: big.NewInt(10), Coinbase: common.HexToAddress("0xc0ffee")}
	ommer := &types.Header{Number: big.NewInt(3)} // 10 - 3 = 7 > MaxOmmerGeneration(6)

	ok, err := policy.RewardCoinbase(ledger, header, []*types.Header{ommer}, false)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEthashPolicy_SkipZeroBlockRewardsShortCircuits(t *testing.T) {
	policy := reward.NewEthashPolicy(new(uint256.Int))
	ledger := creditLedger{}
	coinbase := common.HexToAddress("0xc0ffee")
	header := &types.Header{Number: big.NewInt(10), Coinbase: coinbase}

	ok, err := policy.RewardCoinbase(ledger, header, nil, true)
	require.NoError(t, err)
	require.True(t, ok)
	require.Nil(t, ledger[coinbase])
}

func TestNoRewardPolicy_ValidatesOmmerAgeButCreditsNothing(t *testing.T) {
	policy := reward.NoRewardPolicy{}
	ledger := creditLedger{}
	coinbase := common.HexToAddress("0xc0ffee")
	header := &types.Header{Number: big.NewInt(10), Coinbase: coinbase}

	ok, err := policy.RewardCoinbase(ledger, header, nil, true)
	require.NoError(t, err)
	require.True(t, ok)
	require.Nil(t, ledger[coinbase])

	tooOld := &types.Header{Number: big.NewInt(3)}
	ok, err = policy.RewardCoinbase(ledger, header, []*types.Header{tooOld}, true)
	require.NoError(t, err)
	require.False(t, ok)
}
