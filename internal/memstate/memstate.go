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

// Package memstate is a reference, in-memory implementation of
// core.WorldState/core.StateUpdater. A real world-state storage engine
// (trie, snapshot, account/storage codec) is well beyond what this package
// attempts; it exists so the block processor's commit/discard and snapshot
// behavior is actually exercised by tests, reduced to a map instead of a
// trie.
//
// It keeps the snapshot-discipline shape of go-ethereum's core/state
// package (journal_test.go, fork_boundary_test.go): a staged diff that is
// either folded into the committed set or dropped, plus a whole-snapshot
// Reset back to the state the call started from.
package memstate

import (
	"fmt"
	"sync"

	"github.com/VictoriaMetrics/fastcache"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/bloomfilter/v2"
	"github.com/holiman/uint256"

	"github.com/naviechan/besu/core"
)

// account is the RLP-encodable state this reference engine tracks per
// address. A real engine additionally tracks storage and code; this one
// tracks only balance and nonce.
type account struct {
	Balance *uint256.Int
	Nonce   uint64
}

// addrHash adapts a common.Address into holiman/bloomfilter's Hash64,
// using its first 8 bytes as the filter key.
type addrHash common.Address

func (h addrHash) Sum64() uint64 {
	return uint64(h[0])<<56 | uint64(h[1])<<48 | uint64(h[2])<<40 | uint64(h[3])<<32 |
		uint64(h[4])<<24 | uint64(h[5])<<16 | uint64(h[6])<<8 | uint64(h[7])
}

// WorldState is the reference core.WorldState. Exactly one Updater may be
// live at a time; obtaining a second before the first is committed or
// discarded panics, rather than silently corrupting state.
type WorldState struct {
	mu sync.Mutex

	accounts map[common.Address]account
	entry    map[common.Address]account // snapshot taken at NewWorldState / last successful Persist

	touched *bloomfilter.Filter       // fast negative membership test
	cache   *fastcache.Cache          // read-through cache of RLP-encoded accounts
	live    bool                      // an updater is currently staged
	root    common.Hash               // last persisted header's state root; recorded only, not exposed
}

// NewWorldState creates an empty world state, or one seeded from initial
// balances (e.g. a genesis allocation).
func NewWorldState(initial map[common.Address]*uint256.Int) *WorldState {
	filter, err := bloomfilter.New(1<<20, 4)
	if err != nil {
		panic(err) // only returns an error for a degenerate (m, k); never with these constants
	}
	accounts := make(map[common.Address]account, len(initial))
	for addr, balance := range initial {
		accounts[addr] = account{Balance: new(uint256.Int).Set(balance)}
		filter.Add(addrHash(addr))
	}
	ws := &WorldState{
		accounts: accounts,
		touched:  filter,
		cache:    fastcache.New(1 << 20),
	}
	ws.snapshotEntry()
	return ws
}

func (ws *WorldState) snapshotEntry() {
	ws.entry = make(map[common.Address]account, len(ws.accounts))
	for addr, acc := range ws.accounts {
		ws.entry[addr] = account{Balance: new(uint256.Int).Set(acc.Balance), Nonce: acc.Nonce}
	}
}

// Updater returns a fresh staged view. Panics if a previous updater from
// this WorldState has not yet been committed or discarded.
func (ws *WorldState) Updater() core.StateUpdater {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if ws.live {
		panic("memstate: updater already live; commit or discard it before requesting another")
	}
	ws.live = true
	return &Updater{
		ws:   ws,
		diff: make(map[common.Address]account),
	}
}

// Persist "durably" commits the world state under header's identity. This
// reference engine has nothing to flush to disk, so it simply records the
// header's state root and refreshes the reset snapshot.
func (ws *WorldState) Persist(header *types.Header) error {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.root = header.Root
	ws.snapshotEntry()
	return nil
}

// Reset restores the account set to the snapshot taken at construction or
// the last successful Persist, discarding every mutation made since. This
// is the capability core.Resettable queries for.
func (ws *WorldState) Reset() error {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	accounts := make(map[common.Address]account, len(ws.entry))
	for addr, acc := range ws.entry {
		accounts[addr] = account{Balance: new(uint256.Int).Set(acc.Balance), Nonce: acc.Nonce}
	}
	ws.accounts = accounts
	ws.cache.Reset()
	return nil
}

// Balance returns a read-only snapshot of addr's balance, for assertions
// in tests.
func (ws *WorldState) Balance(addr common.Address) *uint256.Int {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if acc, ok := ws.accounts[addr]; ok {
		return new(uint256.Int).Set(acc.Balance)
	}
	return new(uint256.Int)
}

// Exists reports whether addr holds an account that was seeded at
// construction or credited since (and not dropped by Reset), using
// the bloom filter as a fast (no false negative) existence check before
// falling back to the map. Mirrors the role core/state/snapshot gives a
// bloom filter in front of the real trie-backed account store.
func (ws *WorldState) Exists(addr common.Address) bool {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if !ws.touched.Contains(addrHash(addr)) {
		return false
	}
	_, ok := ws.accounts[addr]
	return ok
}

func (ws *WorldState) readAccount(addr common.Address) account {
	if blob, ok := ws.cache.HasGet(nil, addr[:]); ok {
		var acc account
		if err := rlp.DecodeBytes(blob, &acc); err == nil {
			return acc
		}
	}
	acc, ok := ws.accounts[addr]
	if !ok {
		return account{Balance: new(uint256.Int)}
	}
	if blob, err := rlp.EncodeToBytes(&acc); err == nil {
		ws.cache.Set(addr[:], blob)
	}
	return acc
}

// Updater is the reference core.StateUpdater: a staged diff over its
// parent WorldState's committed accounts.
type Updater struct {
	ws   *WorldState
	diff map[common.Address]account
}

func (u *Updater) resolve(addr common.Address) account {
	if acc, ok := u.diff[addr]; ok {
		return acc
	}
	u.ws.mu.Lock()
	acc := u.ws.readAccount(addr)
	u.ws.mu.Unlock()
	return acc
}

// AddBalance credits amount wei to addr, staged until Commit.
func (u *Updater) AddBalance(addr common.Address, amount *uint256.Int) {
	acc := u.resolve(addr)
	if acc.Balance == nil {
		acc.Balance = new(uint256.Int)
	}
	acc.Balance = new(uint256.Int).Add(acc.Balance, amount)
	u.diff[addr] = acc
	u.ws.touched.Add(addrHash(addr))
}

// SubBalance debits amount wei from addr, staged until Commit. Returns an
// error if the account's staged balance would go negative.
func (u *Updater) SubBalance(addr common.Address, amount *uint256.Int) error {
	acc := u.resolve(addr)
	if acc.Balance.Lt(amount) {
		return fmt.Errorf("insufficient balance for %x: have %s, want %s", addr, acc.Balance, amount)
	}
	acc.Balance = new(uint256.Int).Sub(acc.Balance, amount)
	u.diff[addr] = acc
	return nil
}

// GetBalance returns addr's balance including this updater's own staged
// mutations (but not mutations staged by a sibling updater not yet
// committed — only one updater is ever live at a time).
func (u *Updater) GetBalance(addr common.Address) *uint256.Int {
	acc := u.resolve(addr)
	if acc.Balance == nil {
		return new(uint256.Int)
	}
	return new(uint256.Int).Set(acc.Balance)
}

// SetNonce stages a nonce write, used by transaction processors that need
// to bump the sender's nonce through this same updater surface.
func (u *Updater) SetNonce(addr common.Address, nonce uint64) {
	acc := u.resolve(addr)
	acc.Nonce = nonce
	u.diff[addr] = acc
}

// GetNonce returns addr's nonce including staged mutations.
func (u *Updater) GetNonce(addr common.Address) uint64 {
	return u.resolve(addr).Nonce
}

// Commit folds the staged diff into the parent WorldState and releases
// the "one live updater" lock.
func (u *Updater) Commit() {
	u.ws.mu.Lock()
	defer u.ws.mu.Unlock()
	for addr, acc := range u.diff {
		u.ws.accounts[addr] = acc
		u.ws.cache.Del(addr[:])
	}
	u.ws.live = false
}

// Discard drops the staged diff and releases the "one live updater" lock.
func (u *Updater) Discard() {
	u.ws.mu.Lock()
	defer u.ws.mu.Unlock()
	u.diff = nil
	u.ws.live = false
}

var (
	_ core.WorldState  = (*WorldState)(nil)
	_ core.Resettable  = (*WorldState)(nil)
	_ core.StateUpdater = (*Updater)(nil)
)
