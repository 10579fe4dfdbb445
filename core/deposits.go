// Copyright 2024 The go-ethereum Authors
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

	"github.com/naviechan/besu/core/schedule"
)

// MainnetDepositsProcessor is the canonical post-EIP-6110 deposits
// processor. On the execution layer, a deposit receipt is purely
// inclusion-list data for the consensus layer: it carries no execution
// state mutation, so this processor is a no-op over the updater. It
// exists as a named type (rather than leaving the schedule's
// DepositsProcessor field nil) so the protocol schedule can still record
// "deposits are active as of this fork" distinctly from "this fork has
// never heard of deposits".
//
// Parameter typed schedule.Updater for the same interface-satisfaction
// reason documented on MainnetWithdrawalsProcessor.
type MainnetDepositsProcessor struct{}

func (MainnetDepositsProcessor) ProcessDeposits(deposits []*types.Deposit, updater schedule.Updater) error {
	return nil
}
