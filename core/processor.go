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

package core

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
)

// BlockProcessor orchestrates transaction execution, withdrawal/deposit
// application, coinbase reward and persistence for a single block. An
// instance is created once with immutable policy and is safe for
// concurrent calls, provided each call is given a world state not shared
// with another concurrent call.
type BlockProcessor struct {
	schedule        ProtocolSchedule
	txProcessor     TransactionProcessor
	receiptFactory  ReceiptFactory
	beneficiary     BeneficiaryCalculator
	rewardPolicy    RewardPolicy
	skipZeroRewards bool
}

// NewBlockProcessor wires together the collaborators a block needs. None
// of schedule, txProcessor, receiptFactory, beneficiary or rewardPolicy
// may be nil.
func NewBlockProcessor(
	schedule ProtocolSchedule,
	txProcessor TransactionProcessor,
	receiptFactory ReceiptFactory,
	beneficiary BeneficiaryCalculator,
	rewardPolicy RewardPolicy,
	skipZeroBlockRewards bool,
) *BlockProcessor {
	return &BlockProcessor{
		schedule:        schedule,
		txProcessor:     txProcessor,
		receiptFactory:  receiptFactory,
		beneficiary:     beneficiary,
		rewardPolicy:    rewardPolicy,
		skipZeroRewards: skipZeroBlockRewards,
	}
}

// ProcessBlock executes transactions, then sub-processors, then the reward
// policy, always in that order, and finally persists the world state.
//
// The returned error is non-nil only for StorageCorruptionError: every
// other sad path (insufficient gas, an invalid transaction, a failed
// sub-processor, a rejected reward, or any other persist failure) is
// reported through the returned result's Successful()/FailureReason(),
// never through the error return. StorageCorruption is the one class
// allowed to escape ProcessBlock as something other than a routine
// rejection verdict, since it signals the database itself is broken
// rather than that this block is invalid.
func (p *BlockProcessor) ProcessBlock(
	chainView ChainView,
	worldState WorldState,
	header *types.Header,
	transactions types.Transactions,
	ommers []*types.Header,
	withdrawals []*types.Withdrawal,
	deposits []*types.Deposit,
	privateMetadata interface{},
) (*BlockProcessingResult, error) {
	receipts := make(types.Receipts, 0, len(transactions))
	gp := new(GasPool).AddGas(header.GasLimit)
	var cumulativeGas uint64

	blockHashLookup := newBlockHashLookup(header, chainView)
	beneficiary := p.beneficiary.CalculateBeneficiary(header)

	for i, tx := range transactions {
		if tx.Gas() > gp.Gas() {
			return p.abort(worldState, fmt.Sprintf("%v: have %d, want %d", ErrGasLimitReached, gp.Gas(), tx.Gas())), nil
		}

		updater := worldState.Updater()

		result, err := p.txProcessor.ProcessTransaction(
			chainView, updater, header, tx, beneficiary, blockHashLookup, true, privateMetadata,
		)
		if err != nil {
			updater.Discard()
			return p.abort(worldState, fmt.Sprintf("could not apply tx %d [%s]: %v", i, tx.Hash(), err)), nil
		}

		if result.IsInvalid() {
			log.Debug("invalid transaction in block",
				"block", header.Number, "hash", header.Hash(),
				"txIndex", i, "txHash", tx.Hash(), "reason", result.ValidationError)
			updater.Discard()
			return p.abort(worldState, fmt.Sprintf(
				"Block processing error: transaction invalid at index %d (tx hash %s): %s",
				i, tx.Hash(), result.ValidationError,
			)), nil
		}

		updater.Commit()

		gasUsed := tx.Gas() - result.GasRemaining
		if err := gp.SubGas(gasUsed); err != nil {
			// Execution reported using more gas than fit the remaining
			// pool; this can only happen if the processor ignored the
			// budget it was handed. Treat it the same as the upfront
			// budget check.
			return p.abort(worldState, fmt.Sprintf("%v: have %d, want %d", ErrGasLimitReached, gp.Gas(), gasUsed)), nil
		}
		cumulativeGas += gasUsed

		receipts = append(receipts, p.receiptFactory(tx.Type(), result, tx, header, cumulativeGas))
	}

	capabilities := p.schedule.ByBlockHeader(header)

	if capabilities.WithdrawalsProcessor != nil && len(withdrawals) > 0 {
		updater := worldState.Updater()
		if err := capabilities.WithdrawalsProcessor.ProcessWithdrawals(withdrawals, updater); err != nil {
			updater.Discard()
			// A withdrawals/deposits failure does not reset the world
			// state's snapshot here, unlike a transaction or reward
			// failure: the caller is expected to discard the world-state
			// handle itself in that case.
			return failureResult(fmt.Sprintf("withdrawals processing error: %v", err), err), nil
		}
		updater.Commit()
	}

	if capabilities.DepositsProcessor != nil && len(deposits) > 0 {
		updater := worldState.Updater()
		if err := capabilities.DepositsProcessor.ProcessDeposits(deposits, updater); err != nil {
			updater.Discard()
			return failureResult(fmt.Sprintf("deposits processing error: %v", err), err), nil
		}
		updater.Commit()
	}

	rewardUpdater := worldState.Updater()
	ok, err := p.rewardPolicy.RewardCoinbase(rewardUpdater, header, ommers, p.skipZeroRewards)
	if err != nil {
		rewardUpdater.Discard()
		return p.abort(worldState, fmt.Sprintf("coinbase reward error: %v", err)), nil
	}
	if !ok {
		rewardUpdater.Discard()
		return p.abort(worldState, ErrOmmerTooOld.Error()), nil
	}
	rewardUpdater.Commit()

	if err := worldState.Persist(header); err != nil {
		var corrupt *StorageCorruptionError
		if errors.As(err, &corrupt) {
			resetIfPossible(worldState)
			return nil, corrupt
		}
		resetIfPossible(worldState)
		return failureResult(fmt.Sprintf("failed to persist world state: %v", err), err), nil
	}

	return successResult(worldState, receipts), nil
}

// abort resets a snapshot-backed world state if possible and returns a
// Failure carrying reason.
func (p *BlockProcessor) abort(worldState WorldState, reason string) *BlockProcessingResult {
	resetIfPossible(worldState)
	return failureResult(reason, nil)
}

func resetIfPossible(worldState WorldState) {
	if r, ok := worldState.(Resettable); ok {
		if err := r.Reset(); err != nil {
			log.Warn("failed to reset world state after aborted block", "err", err)
		}
	}
}
