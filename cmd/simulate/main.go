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

// Command simulate runs a single block through core.BlockProcessor against
// an in-memory world state and logs the outcome to stderr: the rejection
// reason, or the receipt count and the resulting balances.
// It exists to give the orchestrator a runnable demonstration, the way
// cmd/geth gives the full node one - scaled down to what this module
// actually implements (no EVM, no network, no storage engine).
package main

import (
	"flag"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/params"
	"github.com/holiman/uint256"

	"github.com/naviechan/besu/core"
	"github.com/naviechan/besu/core/reward"
	"github.com/naviechan/besu/internal/memstate"
)

// noopTxProcessor accepts every transaction without moving any balance. It
// stands in for the real EVM (out of scope, per the orchestrator's
// TransactionProcessor contract) just so simulate can drive a non-empty
// block through the pipeline.
type noopTxProcessor struct{}

func (noopTxProcessor) ProcessTransaction(
	chainView core.ChainView,
	updater core.StateUpdater,
	header *types.Header,
	tx *types.Transaction,
	beneficiary common.Address,
	blockHashLookup core.BlockHashLookup,
	isPersistingState bool,
	privateMetadata interface{},
) (*core.TransactionProcessingResult, error) {
	return &core.TransactionProcessingResult{
		GasRemaining: tx.Gas() - params.TxGas,
		Status:       types.ReceiptStatusSuccessful,
	}, nil
}

type noAncestors struct{}

func (noAncestors) GetHeader(hash common.Hash, number uint64) *types.Header { return nil }

func main() {
	var (
		blockNumber  = flag.Uint64("number", 19000000, "block number to simulate")
		withWithdraw = flag.Bool("withdrawals", true, "include a sample withdrawal")
		baseReward   = flag.Uint64("reward", 0, "coinbase base reward in wei (0 for post-merge)")
	)
	flag.Parse()

	log.SetDefault(log.NewLogger(log.NewTerminalHandler(os.Stderr, false)))

	coinbase := common.HexToAddress("0x00000000000000000000000000000000c0ffee")
	recipient := common.HexToAddress("0x000000000000000000000000000000000000aa")

	ws := memstate.NewWorldState(map[common.Address]*uint256.Int{
		coinbase: uint256.NewInt(0),
	})

	header := &types.Header{
		Number:   new(big.Int).SetUint64(*blockNumber),
		GasLimit: 30_000_000,
		Coinbase: coinbase,
	}

	tx := types.NewTransaction(0, recipient, big.NewInt(0), params.TxGas, big.NewInt(1), nil)

	var withdrawals []*types.Withdrawal
	if *withWithdraw {
		withdrawals = []*types.Withdrawal{{Index: 0, Validator: 0, Address: recipient, Amount: 32_000_000_000}}
	}

	schedule := core.NewMainnetSchedule(0, 0)

	var rewardPolicy core.RewardPolicy
	if *baseReward == 0 {
		rewardPolicy = reward.NoRewardPolicy{}
	} else {
		rewardPolicy = reward.NewEthashPolicy(uint256.NewInt(*baseReward))
	}

	processor := core.NewBlockProcessor(schedule, noopTxProcessor{}, core.DefaultReceiptFactory, core.HeaderBeneficiary{}, rewardPolicy, true)

	result, err := processor.ProcessBlock(noAncestors{}, ws, header, types.Transactions{tx}, nil, withdrawals, nil, nil)
	if err != nil {
		log.Error("block processing aborted with a storage error", "err", err)
		os.Exit(1)
	}

	if !result.Successful() {
		log.Error("block rejected", "reason", result.FailureReason())
		os.Exit(1)
	}

	log.Info("block accepted",
		"number", header.Number,
		"receipts", len(result.Receipts),
		"coinbaseBalance", ws.Balance(coinbase),
		"recipientBalance", ws.Balance(recipient),
	)
}
