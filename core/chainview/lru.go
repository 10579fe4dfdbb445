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

// Package chainview provides a caching decorator over a caller-supplied
// ancestor-header source, for use as core.ChainView. It mirrors the
// teacher's core.HeaderChain, which fronts its database lookups with an
// LRU of recently resolved headers (see chain_manager_test.go,
// headerchain_test.go: `bc.cache, _ = lru.New(100)`).
package chainview

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	lru "github.com/hashicorp/golang-lru"
)

// Source resolves a header from durable storage. It is the uncached
// collaborator this package wraps; a concrete implementation reads from
// whatever database backs the chain (out of scope for this module).
type Source func(hash common.Hash, number uint64) *types.Header

// Cached is a core.ChainView that keeps the most recently resolved
// ancestor headers in an LRU, so that repeated BLOCKHASH lookups across
// transactions in the same block (and across sibling blocks sharing
// ancestors) don't re-hit the underlying source.
type Cached struct {
	source Source
	cache  *lru.Cache
}

// NewCached wraps source with an LRU holding up to size headers.
func NewCached(source Source, size int) *Cached {
	cache, err := lru.New(size)
	if err != nil {
		// Only returned by lru.New for size <= 0; a programmer error.
		panic(err)
	}
	return &Cached{source: source, cache: cache}
}

// GetHeader implements core.ChainView.
func (c *Cached) GetHeader(hash common.Hash, number uint64) *types.Header {
	if v, ok := c.cache.Get(hash); ok {
		return v.(*types.Header)
	}
	header := c.source(hash, number)
	if header != nil {
		c.cache.Add(hash, header)
	}
	return header
}
