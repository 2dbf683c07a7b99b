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
	"strings"
)

// Block is one named category of debug information. Blocks can be shown,
// hidden and reordered independently of one another.
//
// The enumeration is closed. Declaration order is the default display order.
type Block int

// The canonical list of blocks.
const (
	BlockThread Block = iota
	BlockBacktrace
	BlockMemory
	BlockSource
	BlockAssembly
	BlockRegisters
	BlockVariables
	BlockCommands
)

// the number of blocks in the canonical list.
const numBlocks = 8

func (blk Block) String() string {
	switch blk {
	case BlockThread:
		return "thread"
	case BlockBacktrace:
		return "backtrace"
	case BlockMemory:
		return "memory"
	case BlockSource:
		return "source"
	case BlockAssembly:
		return "assembly"
	case BlockRegisters:
		return "registers"
	case BlockVariables:
		return "variables"
	case BlockCommands:
		return "commands"
	}
	return "unknown"
}

// blockByName returns the Block corresponding to the (case-insensitive)
// name. The second return value is false if the name is not a canonical
// block name.
func blockByName(name string) (Block, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for blk := Block(0); blk < numBlocks; blk++ {
		if blk.String() == name {
			return blk, true
		}
	}
	return Block(-1), false
}
