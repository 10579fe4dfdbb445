// Copyright 2023 The go-ethereum Authors
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

// Package core implements the block processing orchestrator: given a
// header, its transactions and auxiliary post-Shanghai objects (ommers,
// withdrawals, deposits), it drives a world state through the fixed
// transaction -> withdrawal -> deposit -> reward -> persist pipeline and
// returns either the persisted state plus receipts, or a reason the block
// was rejected.
//
// The EVM/transaction executor and the trie-backed storage engine are
// external collaborators, reached only through the interfaces declared in
// this file.
package core

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"

	"github.com/naviechan/besu/core/reward"
	"github.com/naviechan/besu/core/schedule"
)

// ChainView gives read-only access to ancestor headers, needed only to
// resolve the BLOCKHASH opcode inside the EVM.
type ChainView interface {
	// GetHeader returns the header identified by hash and number, or nil
	// if it is not known to the view.
	GetHeader(hash common.Hash, number uint64) *types.Header
}

// BlockHashLookup resolves a block number to its hash for BLOCKHASH
// evaluation. It is built per call from a ChainView and a header (see
// newBlockHashLookup in chainview.go) and handed opaquely to the
// transaction processor.
type BlockHashLookup func(blockNumber uint64) common.Hash

// StateUpdater is a staged, transactional view over a WorldState. Exactly
// one updater may be live against a given WorldState at a time: it must be
// committed or discarded before the next one is obtained.
type StateUpdater interface {
	// Commit makes the staged mutations visible to subsequent updaters
	// obtained from the same WorldState.
	Commit()

	// Discard abandons the staged mutations.
	Discard()

	// AddBalance and GetBalance are the account mutation surface needed
	// by withdrawals, deposits and the reward policy. The transaction
	// processor itself may reach further into the updater through its
	// own, wider interface; this package only needs balance credits.
	AddBalance(addr common.Address, amount *uint256.Int)
	GetBalance(addr common.Address) *uint256.Int
}

// WorldState is the mutable, trie-backed account/storage state that a
// block is executed against. It is exclusively owned by the processBlock
// call for its duration (see internal/memstate for a reference in-memory
// implementation; a trie-backed engine is not part of this module).
type WorldState interface {
	// Updater returns a fresh staged view. The caller must Commit or
	// Discard it before requesting another.
	Updater() StateUpdater

	// Persist durably commits the world state under the given header's
	// identity (state root, number, hash).
	Persist(header *types.Header) error
}

// Resettable is an optional capability a WorldState may expose: reset the
// entire snapshot-backed diff layer to its entry state. The orchestrator
// queries for it rather than downcasting to a concrete type, since not
// every WorldState implementation can roll back cheaply.
type Resettable interface {
	Reset() error
}

// TransactionProcessingResult is what the transaction processor returns for
// a single transaction: either a validation failure (IsInvalid), or the
// gas/log/status data the receipt factory needs.
type TransactionProcessingResult struct {
	Invalid          bool
	ValidationError  string
	GasRemaining     uint64
	Status           uint64
	Logs             []*types.Log
	ContractAddress  *common.Address
	ReturnData       []byte
}

// IsInvalid reports whether the transaction processor rejected the
// transaction outright (as opposed to it executing and reverting, which is
// a valid, billable outcome carried in Status).
func (r *TransactionProcessingResult) IsInvalid() bool {
	return r != nil && r.Invalid
}

// TransactionProcessor executes one transaction against a staged updater.
// Its internals (the EVM interpreter, intrinsic gas, nonce/signature
// checks) are out of scope for this package; only the contract is defined
// here.
type TransactionProcessor interface {
	ProcessTransaction(
		chainView ChainView,
		updater StateUpdater,
		header *types.Header,
		tx *types.Transaction,
		beneficiary common.Address,
		blockHashLookup BlockHashLookup,
		isPersistingState bool,
		privateMetadata interface{},
	) (*TransactionProcessingResult, error)
}

// ReceiptFactory builds a receipt from a transaction's outcome. The core
// does not interpret receipt contents; it only guarantees cumulativeGas is
// the running total of gas used by every transaction up to and including
// this one.
type ReceiptFactory func(
	txType byte,
	result *TransactionProcessingResult,
	tx *types.Transaction,
	header *types.Header,
	cumulativeGas uint64,
) *types.Receipt

// BeneficiaryCalculator yields the address credited with fees and block
// reward for a header: identity for PoW/PoS mainnet, delegated for PoA
// chains where the signer differs from header.Coinbase.
type BeneficiaryCalculator interface {
	CalculateBeneficiary(header *types.Header) common.Address
}

// WithdrawalsProcessor applies a post-Shanghai withdrawals list to a staged
// updater. May return an error, which aborts the block. Aliased to
// core/schedule's definition, which is what ProtocolSchedule.ByBlockHeader
// actually hands back.
type WithdrawalsProcessor = schedule.WithdrawalsProcessor

// DepositsProcessor applies a post-EIP-6110 deposits list to a staged
// updater. May return an error, which aborts the block.
type DepositsProcessor = schedule.DepositsProcessor

// ProtocolSchedule maps a header to its fork-gated sub-processors.
type ProtocolSchedule = schedule.Schedule

// RewardPolicy credits the coinbase (and eligible ommer beneficiaries)
// according to fork rules: concrete policies differ per fork family (PoW
// mainnet vs. post-merge). A StateUpdater is always assignable to the
// reward.Balance parameter the policy actually asks for, since
// StateUpdater's method set is a superset of it.
type RewardPolicy = reward.Policy
