// Copyright 2022 The go-ethereum Authors
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

import "github.com/naviechan/besu/core/schedule"

// NewMainnetSchedule builds the protocol schedule for Ethereum Mainnet:
// withdrawals active from shanghaiTime onward, deposits active from
// pragueTime onward (EIP-6110). Either may be 0 to activate from genesis,
// matching how a test chain config often pins every fork to timestamp 0.
func NewMainnetSchedule(shanghaiTime, pragueTime uint64) *schedule.Table {
	return schedule.NewTable().
		AddTimeMilestone(shanghaiTime, schedule.Capabilities{
			WithdrawalsProcessor: MainnetWithdrawalsProcessor{},
		}).
		AddTimeMilestone(pragueTime, schedule.Capabilities{
			WithdrawalsProcessor: MainnetWithdrawalsProcessor{},
			DepositsProcessor:    MainnetDepositsProcessor{},
		})
}
