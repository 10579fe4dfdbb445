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

import "github.com/ethereum/go-ethereum/core/types"

// BlockProcessingResult is the only externally visible output of
// ProcessBlock: a tagged variant of Success{WorldState, Receipts} or
// Failure{Reason, Err}.
type BlockProcessingResult struct {
	success bool

	WorldState WorldState
	Receipts   types.Receipts

	Reason string
	Err    error
}

// Successful reports whether the block was accepted.
func (r *BlockProcessingResult) Successful() bool {
	return r.success
}

// FailureReason returns a human-readable reason for a rejected block. It is
// empty on success.
func (r *BlockProcessingResult) FailureReason() string {
	if r.success {
		return ""
	}
	if r.Reason != "" {
		return r.Reason
	}
	if r.Err != nil {
		return r.Err.Error()
	}
	return "unknown failure"
}

func successResult(worldState WorldState, receipts types.Receipts) *BlockProcessingResult {
	return &BlockProcessingResult{success: true, WorldState: worldState, Receipts: receipts}
}

func failureResult(reason string, err error) *BlockProcessingResult {
	return &BlockProcessingResult{success: false, Reason: reason, Err: err}
}
