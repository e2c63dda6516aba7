// Copyright 2026 The diffcore Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package listpool implements a pool-backed small-list allocator used by
// internal/histogram to store per-token occurrence lists without a separate
// heap allocation per token.
//
// A Handle is 12 bytes (three uint32 fields): an index into the pool's
// backing array, a generation counter, and a length. Lists of length zero or
// one need no backing-array storage at all; longer lists are allocated in
// power-of-two-sized blocks from a small set of free lists, one per size
// class. Clearing the pool bumps a generation counter, invalidating every
// outstanding Handle in O(1) without walking them.
//
// A list grows to at most MaxChainLen+1 elements; further pushes are
// silently dropped. The extra element is the overflow mark: callers that
// observe Handle.Len() > MaxChainLen should treat the list as having
// overflowed and fall back to a different strategy.
package listpool

import "math/bits"

// MaxChainLen is the longest occurrence list that is not considered
// overflowed. A Handle stores one element past it, so its length can reach
// MaxChainLen+1; pushes beyond that are silently discarded.
const MaxChainLen = 63

// Handle references a list of up to MaxChainLen+1 uint32 elements stored in
// a Pool. The zero Handle is the empty list.
type Handle struct {
	index      uint32
	generation uint32
	len        uint32
}

// numSizeClasses is sclassForLength(MaxChainLen-1) + 1, written out as a
// literal because sclassForLength is not a constant expression. The largest
// class (4) holds 64 elements, enough for a list of MaxChainLen+1.
const numSizeClasses = 5

// sclassForLength returns the size class to use for a list of length len,
// always leaving room to grow within the class.
func sclassForLength(length uint32) uint8 {
	v := length | 3
	return uint8(30 - bits.LeadingZeros32(v))
}

func sclassSize(sclass uint8) int {
	return 4 << sclass
}

func isSclassMaxLength(length uint32) bool {
	return length > 3 && length&(length-1) == 0
}

// Pool is a LIFO-style memory pool for [Handle] occurrence lists.
type Pool struct {
	data       []uint32
	free       [numSizeClasses]uint32
	generation uint32
}

const noFree = ^uint32(0)

// New returns an empty Pool with room for capacity uint32s pre-reserved.
func New(capacity int) *Pool {
	p := &Pool{
		data:       make([]uint32, 0, capacity),
		generation: 1,
	}
	for i := range p.free {
		p.free[i] = noFree
	}
	return p
}

// Clear discards every list the Pool holds. Existing [Handle] values read
// against this Pool afterwards observe length zero; it does not corrupt
// memory to keep using them; the underlying array is not released.
func (p *Pool) Clear() {
	p.data = p.data[:0]
	for i := range p.free {
		p.free[i] = noFree
	}
	p.generation++
}

func (p *Pool) alloc(sclass uint8) int {
	head := p.free[sclass]
	if head == noFree {
		offset := len(p.data)
		size := sclassSize(sclass)
		for i := 0; i < size; i++ {
			p.data = append(p.data, noFree)
		}
		return offset
	}
	p.free[sclass] = p.data[head]
	return int(head)
}

func (p *Pool) freeBlock(block int, sclass uint8) {
	p.data[block] = p.free[sclass]
	p.free[sclass] = uint32(block)
}

func (p *Pool) mutSlices(block0, block1 int) (s0, s1 []uint32) {
	if block0 < block1 {
		a, b := p.data[:block1], p.data[block1:]
		return a[block0:], b
	}
	b, a := p.data[:block0], p.data[block0:]
	return a, b[block1:]
}

func (p *Pool) realloc(block int, fromSclass, toSclass uint8, elemsToCopy int) int {
	newBlock := p.alloc(toSclass)
	old, nw := p.mutSlices(block, newBlock)
	copy(nw[:elemsToCopy], old[:elemsToCopy])
	p.freeBlock(block, fromSclass)
	return newBlock
}

// Len returns the number of elements in the list h, backed by pool. It
// returns 0 if pool has been Cleared since h was last modified.
func (h Handle) Len(pool *Pool) uint32 {
	if h.generation == pool.generation {
		return h.len
	}
	return 0
}

// Slice returns the elements of h as a slice into pool's backing array. The
// returned slice is only valid until the next mutation of pool.
func (h Handle) Slice(pool *Pool) []uint32 {
	switch h.Len(pool) {
	case 0:
		return nil
	case 1:
		return []uint32{h.index}
	default:
		idx := h.index
		return pool.data[idx : idx+h.len]
	}
}

// Push appends element to the back of h. The push that takes the list from
// MaxChainLen to MaxChainLen+1 elements is still stored; every later push is
// silently dropped. Callers detect overflow by Len exceeding MaxChainLen.
func (h *Handle) Push(element uint32, pool *Pool) {
	length := h.Len(pool)
	switch {
	case length == 0:
		h.generation = pool.generation
		h.index = element
		h.len = 1
	case length == 1:
		block := pool.alloc(0)
		pool.data[block] = h.index
		pool.data[block+1] = element
		h.index = uint32(block)
		h.len = 2
	case length <= MaxChainLen:
		idx := int(h.index)
		block := idx
		if isSclassMaxLength(length) {
			sclass := sclassForLength(length)
			block = pool.realloc(idx, sclass-1, sclass, int(length))
			h.index = uint32(block)
		}
		pool.data[block+int(length)] = element
		h.len++
	default:
		// Longer than MaxChainLen: dropped. Callers treat this length
		// as an overflow signal and fall back to a different strategy.
	}
}
