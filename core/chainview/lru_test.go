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

package chainview_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	"github.com/naviechan/besu/core/chainview"
)

func TestCached_HitsSourceOnceThenCaches(t *testing.T) {
	hash := common.HexToHash("0x01")
	header := &types.Header{Number: big.NewInt(1)}
	var calls int

	source := func(h common.Hash, number uint64) *types.Header {
		calls++
		require.Equal(t, hash, h)
		return header
	}

	cached := chainview.NewCached(source, 10)

	require.Same(t, header, cached.GetHeader(hash, 1))
	require.Same(t, header, cached.GetHeader(hash, 1))
	require.Equal(t, 1, calls)
}

func TestCached_MissPassesThroughAndIsNotCached(t *testing.T) {
	var calls int
	source := func(h common.Hash, number uint64) *types.Header {
		calls++
		return nil
	}

	cached := chainview.NewCached(source, 10)
	hash := common.HexToHash("0x02")

	require.Nil(t, cached.GetHeader(hash, 2))
	require.Nil(t, cached.GetHeader(hash, 2))
	require.Equal(t, 2, calls)
}

func TestCached_EvictsLeastRecentlyUsedPastSize(t *testing.T) {
	headers := map[common.Hash]*types.Header{
		common.HexToHash("0x01"): {Number: big.NewInt(1)},
		common.HexToHash("0x02"): {Number: big.NewInt(2)},
		common.HexToHash("0x03"): {Number: big.NewInt(3)},
	}
	var calls int
	source := func(h common.Hash, number uint64) *types.Header {
		calls++
		return headers[h]
	}

	cached := chainview.NewCached(source, 2)
	cached.GetHeader(common.HexToHash("0x01"), 1)
	cached.GetHeader(common.HexToHash("0x02"), 2)
	cached.GetHeader(common.HexToHash("0x03"), 3) // evicts 0x01

	calls = 0
	cached.GetHeader(common.HexToHash("0x01"), 1)
	require.Equal(t, 1, calls, "0x01 should have been evicted and re-fetched")
}
