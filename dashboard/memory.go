// This file is part of DebugDash.
//
// DebugDash is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// DebugDash is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with DebugDash.  If not, see <https://www.gnu.org/licenses/>.

package dashboard

import "fmt"

// memoryBlock is a watched region of host memory. size is in bytes and end
// is the first address past the region.
type memoryBlock struct {
	start uint64
	size  uint64
	end   uint64
}

func newMemoryBlock(start uint64, size uint64) memoryBlock {
	return memoryBlock{
		start: start,
		size:  size,
		end:   start + size,
	}
}

// memoryList is the set of watched memory blocks, in insertion order.
type memoryList struct {
	blocks []memoryBlock
}

func newMemoryList() *memoryList {
	return &memoryList{
		blocks: make([]memoryBlock, 0, 10),
	}
}

// overlaps is true if the candidate block cannot coexist with an existing
// block. the comparison is inclusive of the end address so two blocks that
// merely touch at a boundary are also rejected.
func (lst *memoryList) overlaps(blk memoryBlock) bool {
	for _, b := range lst.blocks {
		if blk.start <= b.end && blk.end >= b.start {
			return true
		}
	}
	return false
}

// add a block to the list. returns false, with no mutation, if the size is
// zero, if either the first or the last byte of the block is not readable
// through the host, or if the block overlaps an existing block.
func (lst *memoryList) add(hst Host, start uint64, size uint64) bool {
	if size == 0 {
		return false
	}

	// probe both ends of the range for readability. a block straddling a
	// region boundary can have a readable start and an unreadable end.
	if _, err := hst.Evaluate(fmt.Sprintf("*(unsigned char*)0x%x", start)); err != nil {
		return false
	}
	if _, err := hst.Evaluate(fmt.Sprintf("*(unsigned char*)0x%x", start+size-1)); err != nil {
		return false
	}

	blk := newMemoryBlock(start, size)

	if lst.overlaps(blk) {
		return false
	}

	lst.blocks = append(lst.blocks, blk)
	return true
}

// remove the block whose start address exactly matches. an address inside a
// block does not identify it. returns false if no block matches.
func (lst *memoryList) remove(start uint64) bool {
	for i, b := range lst.blocks {
		if b.start == start {
			lst.blocks = append(lst.blocks[:i], lst.blocks[i+1:]...)
			return true
		}
	}
	return false
}

func (lst *memoryList) len() int {
	return len(lst.blocks)
}
