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

import (
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
	"github.com/holiman/uint256"

	"github.com/naviechan/besu/core/schedule"
)

// MainnetWithdrawalsProcessor is the canonical post-Shanghai withdrawals
// processor: each withdrawal credits Amount Gwei (converted to wei) to
// Address. Withdrawals never fail validation at this layer; the list is
// assumed to have already been checked for monotonically increasing
// indices upstream (that check belongs to block validation, not this
// package).
//
// Its ProcessWithdrawals parameter is typed schedule.Updater, not the
// wider StateUpdater, so that this type literally satisfies
// schedule.WithdrawalsProcessor: Go requires identical parameter types
// for interface satisfaction, not merely structural compatibility. A
// StateUpdater argument is still assignable at the call site because its
// method set is a superset of schedule.Updater's.
type MainnetWithdrawalsProcessor struct{}

func (MainnetWithdrawalsProcessor) ProcessWithdrawals(withdrawals []*types.Withdrawal, updater schedule.Updater) error {
	for _, w := range withdrawals {
		amount := new(uint256.Int).Mul(uint256.NewInt(w.Amount), uint256.NewInt(params.GWei))
		updater.AddBalance(w.Address, amount)
	}
	return nil
}
