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

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/debugdash/curated"
)

// error pattern returned by the reorder function.
const invalidOrder = "invalid order: %s"

// settings is the display policy for the dashboard: a visibility flag for
// every block and a total order over all blocks.
//
// the rank array is always a bijection onto [0, numBlocks). the reorder
// function preserves the invariant by rejecting any proposed order that is
// not an exact permutation of the canonical block names.
type settings struct {
	visible [numBlocks]bool
	rank    [numBlocks]int

	// whether the settings/order banner lines are printed at the top of the
	// display
	showSettings bool
	showOrder    bool
}

// newSettings is the preferred method of initialisation for the settings
// type. by default only the thread block is visible and the display order is
// the declaration order of the Block enumeration.
func newSettings() *settings {
	st := &settings{}
	st.visible[BlockThread] = true
	for i := range st.rank {
		st.rank[i] = i
	}
	return st
}

// toggle flips the visibility of the block. calling toggle twice returns the
// block to its original visibility.
func (st *settings) toggle(blk Block) {
	st.visible[blk] = !st.visible[blk]
}

// set the visibility of the block.
func (st *settings) set(blk Block, visible bool) {
	st.visible[blk] = visible
}

// setList sets the visibility of every block named in the comma-separated
// list. unknown names are skipped; known names in the same list still take
// effect. the names that were applied are returned.
func (st *settings) setList(list string, visible bool) []string {
	applied := make([]string, 0, numBlocks)
	for _, name := range strings.Split(list, ",") {
		if blk, ok := blockByName(name); ok {
			st.visible[blk] = visible
			applied = append(applied, blk.String())
		}
	}
	return applied
}

// reorder replaces the display order with the order given by the
// comma-separated list of block names. the list must be an exact permutation
// of the canonical block names. on any mismatch the entire call is rejected
// and the previous order is untouched.
func (st *settings) reorder(list string) error {
	names := strings.Split(list, ",")
	if len(names) != numBlocks {
		return curated.Errorf(invalidOrder, list)
	}

	var rank [numBlocks]int
	var seen [numBlocks]bool

	for i, name := range names {
		blk, ok := blockByName(name)
		if !ok || seen[blk] {
			return curated.Errorf(invalidOrder, list)
		}
		seen[blk] = true
		rank[blk] = i
	}

	st.rank = rank

	return nil
}

// orderedVisible returns the visible blocks sorted ascending by rank. this
// is the sequence the orchestrator executes on every stop event.
func (st *settings) orderedVisible() []Block {
	blocks := make([]Block, 0, numBlocks)
	for blk := Block(0); blk < numBlocks; blk++ {
		if st.visible[blk] {
			blocks = append(blocks, blk)
		}
	}
	sort.Slice(blocks, func(i, j int) bool {
		return st.rank[blocks[i]] < st.rank[blocks[j]]
	})
	return blocks
}

// orderString returns the current display order as a human readable string.
func (st *settings) orderString() string {
	ordered := make([]Block, numBlocks)
	for blk := Block(0); blk < numBlocks; blk++ {
		ordered[st.rank[blk]] = blk
	}

	names := make([]string, numBlocks)
	for i, blk := range ordered {
		names[i] = blk.String()
	}

	return strings.Join(names, " -> ")
}

// the order in which blocks appear in the status string. this is a fixed
// presentation order, independent of the display order.
var statusOrder = []Block{
	BlockThread, BlockRegisters, BlockBacktrace, BlockAssembly,
	BlockSource, BlockVariables, BlockMemory, BlockCommands,
}

// statusString returns the on/off state of every block as a human readable
// string.
func (st *settings) statusString() string {
	status := make([]string, 0, numBlocks)
	for _, blk := range statusOrder {
		e := "off"
		if st.visible[blk] {
			e = "on"
		}
		name := blk.String()
		if blk == BlockThread {
			name = "thread ID"
		}
		status = append(status, fmt.Sprintf("%s%s: %s", strings.ToUpper(name[:1]), name[1:], e))
	}
	return strings.Join(status, " | ")
}
