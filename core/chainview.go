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
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// maxBlockHashLookback is the classical BLOCKHASH opcode window: only the
// 256 most recent ancestors are resolvable.
const maxBlockHashLookback = 256

// newBlockHashLookup builds a BlockHashLookup that walks header back from
// the parent of header through chainView, caching the walk so repeated
// BLOCKHASH calls by any transaction of the block don't re-walk from
// scratch. Mirrors the ancestor walk in go-ethereum's NewEVMBlockContext.
func newBlockHashLookup(header *types.Header, chainView ChainView) BlockHashLookup {
	var (
		cache    = make(map[uint64]common.Hash, maxBlockHashLookback)
		ancestor = header
	)
	return func(number uint64) common.Hash {
		if ancestor == nil || number >= header.Number.Uint64() {
			return common.Hash{}
		}
		if header.Number.Uint64()-number > maxBlockHashLookback {
			return common.Hash{}
		}
		if hash, ok := cache[number]; ok {
			return hash
		}
		for {
			parentHash := ancestor.ParentHash
			parentNumber := ancestor.Number.Uint64() - 1
			parent := chainView.GetHeader(parentHash, parentNumber)
			if parent == nil {
				return common.Hash{}
			}
			cache[parentNumber] = parentHash
			ancestor = parent
			if parentNumber == number {
				return parentHash
			}
			if header.Number.Uint64()-parentNumber >= maxBlockHashLookback {
				return common.Hash{}
			}
		}
	}
}
