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

// Package schedule plays the role params.ChainConfig plays elsewhere in
// go-ethereum: a fork-indexed registry that, given a header, answers which
// optional sub-processors apply. Unlike ChainConfig it carries behavior
// (processor instances), not just activation numbers.
package schedule

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
)

// Capabilities bundles the fork-gated sub-processors applicable to a given
// header. A nil field means "this fork does not define that capability";
// the orchestrator treats that identically to a present processor that was
// simply handed an empty/absent list.
type Capabilities struct {
	WithdrawalsProcessor WithdrawalsProcessor
	DepositsProcessor    DepositsProcessor
}

// WithdrawalsProcessor mirrors core.WithdrawalsProcessor without importing
// core (core imports schedule, not the reverse).
type WithdrawalsProcessor interface {
	ProcessWithdrawals(withdrawals []*types.Withdrawal, updater Updater) error
}

// DepositsProcessor mirrors core.DepositsProcessor.
type DepositsProcessor interface {
	ProcessDeposits(deposits []*types.Deposit, updater Updater) error
}

// Updater is the narrow mutation surface withdrawals/deposits processors
// need; core.StateUpdater satisfies it structurally.
type Updater interface {
	AddBalance(addr common.Address, amount *uint256.Int)
	GetBalance(addr common.Address) *uint256.Int
}

// Schedule answers which fork a header belongs to and returns that fork's
// capabilities. Implementations never cache a lookup result across calls:
// the orchestrator re-queries on every ProcessBlock invocation.
type Schedule interface {
	ByBlockHeader(header *types.Header) Capabilities
}

// milestone is one activation entry: forks at or after Block (when set) or
// Time (when set, for post-merge time-based forks) get Capabilities.
type milestone struct {
	block        *big.Int
	time         *uint64
	capabilities Capabilities
}

// Table is a Schedule built from an ordered list of fork milestones, the
// same shape as params.ChainConfig's block/time-keyed activation fields
// collapsed into one ordered list instead of a struct of *big.Int fields.
type Table struct {
	milestones []milestone
}

// NewTable builds an empty schedule; use AddBlockMilestone/AddTimeMilestone
// to populate it in ascending activation order.
func NewTable() *Table {
	return &Table{}
}

// AddBlockMilestone registers capabilities active from block (inclusive)
// onward, until superseded by a later milestone.
func (t *Table) AddBlockMilestone(block uint64, capabilities Capabilities) *Table {
	b := new(big.Int).SetUint64(block)
	t.milestones = append(t.milestones, milestone{block: b, capabilities: capabilities})
	return t
}

// AddTimeMilestone registers capabilities active from the given header
// timestamp (inclusive) onward, for post-merge forks gated by time rather
// than block number.
func (t *Table) AddTimeMilestone(time uint64, capabilities Capabilities) *Table {
	tm := time
	t.milestones = append(t.milestones, milestone{time: &tm, capabilities: capabilities})
	return t
}

// ByBlockHeader returns the capabilities of the latest milestone whose
// activation condition the header satisfies. An unmatched header (earlier
// than every milestone) gets the zero Capabilities, i.e. no sub-processors.
func (t *Table) ByBlockHeader(header *types.Header) Capabilities {
	var active Capabilities
	for _, m := range t.milestones {
		switch {
		case m.block != nil:
			if header.Number.Cmp(m.block) >= 0 {
				active = m.capabilities
			}
		case m.time != nil:
			if header.Time >= *m.time {
				active = m.capabilities
			}
		}
	}
	return active
}
