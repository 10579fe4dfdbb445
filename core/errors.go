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

import "errors"

var (
	// ErrGasLimitReached is returned when a transaction's gas limit does not
	// fit the gas remaining in the block's budget.
	ErrGasLimitReached = errors.New("provided gas insufficient")

	// ErrOmmerTooOld's message is the failure reason ProcessBlock reports
	// when the reward policy rejects the block (it returns false because an
	// ommer is older than reward.MaxOmmerGeneration).
	ErrOmmerTooOld = errors.New("ommer too old")
)

// StorageCorruptionError wraps an error raised by the world state during
// persist that indicates storage-layer corruption (a missing or malformed
// trie node) rather than a block-validity verdict. The block processor
// propagates it unchanged instead of folding it into a Failure result, so
// that callers can distinguish "this block is invalid" from "the database
// is broken".
type StorageCorruptionError struct {
	Err error
}

func (e *StorageCorruptionError) Error() string {
	return "storage corruption during persist: " + e.Err.Error()
}

func (e *StorageCorruptionError) Unwrap() error { return e.Err }
