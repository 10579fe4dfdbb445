// Copyright 2016 The go-ethereum Authors
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

package schedule_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	"github.com/naviechan/besu/core/schedule"
)

type stubWithdrawals struct{}

func (stubWithdrawals) ProcessWithdrawals(withdrawals []*types.Withdrawal, updater schedule.Updater) error {
	return nil
}

type stubDeposits struct{}

func (stubDeposits) ProcessDeposits(deposits []*types.Deposit, updater schedule.Updater) error {
	return nil
}

func TestByBlockHeader_UnmatchedHeaderGetsZeroCapabilities(t *testing.T) {
	table := schedule.NewTable().AddBlockMilestone(100, schedule.Capabilities{WithdrawalsProcessor: stubWithdrawals{}})
	header := &types.Header{Number: big.NewInt(1)}

	caps := table.ByBlockHeader(header)
	require.Nil(t, caps.WithdrawalsProcessor)
	require.Nil(t, caps.DepositsProcessor)
}

func TestByBlockHeader_LatestMatchingMilestoneWins(t *testing.T) {
	table := schedule.NewTable().
		AddBlockMilestone(0, schedule.Capabilities{}).
		AddBlockMilestone(10, schedule.Capabilities{WithdrawalsProcessor: stubWithdrawals{}}).
		AddBlockMilestone(20, schedule.Capabilities{WithdrawalsProcessor: stubWithdrawals{}, DepositsProcessor: stubDeposits{}})

	caps := table.ByBlockHeader(&types.Header{Number: big.NewInt(15)})
	require.NotNil(t, caps.WithdrawalsProcessor)
	require.Nil(t, caps.DepositsProcessor)

	caps = table.ByBlockHeader(&types.Header{Number: big.NewInt(25)})
	require.NotNil(t, caps.WithdrawalsProcessor)
	require.NotNil(t, caps.DepositsProcessor)
}

func TestByBlockHeader_TimeMilestone(t *testing.T) {
	table := schedule.NewTable().AddTimeMilestone(1700000000, schedule.Capabilities{WithdrawalsProcessor: stubWithdrawals{}})

	before := table.ByBlockHeader(&types.Header{Number: big.NewInt(1), Time: 1699999999})
	require.Nil(t, before.WithdrawalsProcessor)

	after := table.ByBlockHeader(&types.Header{Number: big.NewInt(2), Time: 1700000000})
	require.NotNil(t, after.WithdrawalsProcessor)
}

func TestByBlockHeader_LaterMilestoneReplacesRatherThanMerges(t *testing.T) {
	// Each milestone declares the full capability set active from that
	// point on; a later milestone that only names DepositsProcessor
	// silently drops WithdrawalsProcessor unless it repeats it. This is
	// why NewMainnetSchedule's Prague milestone re-lists
	// MainnetWithdrawalsProcessor alongside the new deposits processor.
	table := schedule.NewTable().
		AddBlockMilestone(0, schedule.Capabilities{WithdrawalsProcessor: stubWithdrawals{}}).
		AddTimeMilestone(1700000000, schedule.Capabilities{DepositsProcessor: stubDeposits{}})

	caps := table.ByBlockHeader(&types.Header{Number: big.NewInt(5), Time: 1700000001})
	require.Nil(t, caps.WithdrawalsProcessor)
	require.NotNil(t, caps.DepositsProcessor)
}
