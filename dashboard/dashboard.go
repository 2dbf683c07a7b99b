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
	"github.com/jetsetilly/debugdash/terminal"
)

// Dashboard collates the tracked state of a debugging session and renders
// it, block by block, whenever the debuggee stops.
type Dashboard struct {
	hst  Host
	trm  terminal.Output
	styl formatter

	set       *settings
	registers *trackedList
	variables *trackedList
	memory    *memoryList
	commands  *commandList

	src sourceWindow

	// number of instructions shown either side of the program counter
	asmBefore int
	asmAfter  int
}

// NewDashboard is the preferred method of initialisation for the Dashboard
// type. the terminal is used for all dashboard output and its styling
// capability decides whether output fragments are colored.
func NewDashboard(hst Host, trm terminal.Output) *Dashboard {
	dsh := &Dashboard{
		hst:       hst,
		trm:       trm,
		styl:      formatter{enabled: trm.SupportsStyle()},
		set:       newSettings(),
		registers: newTrackedList("$"),
		variables: newTrackedList(""),
		memory:    newMemoryList(),
		commands:  newCommandList(),
		src:       newSourceWindow(),
		asmBefore: 5,
		asmAfter:  10,
	}
	return dsh
}

// OnStop renders every visible block, in display order, to the dashboard's
// terminal. it is called whenever the debuggee stops and also services the
// SHOW command.
//
// a failing tracked command aborts the remaining blocks and the error is
// returned to the caller. all other block failures are reported inline and
// rendering continues.
func (dsh *Dashboard) OnStop() error {
	if dsh.set.showSettings {
		dsh.print("%s%s", dsh.styl.heading("Display Settings: "), dsh.styl.info(dsh.set.statusString()))
	}
	if dsh.set.showOrder {
		dsh.print("%s%s", dsh.styl.heading("Display Order: "), dsh.styl.info(dsh.set.orderString()))
	}
	if dsh.set.showSettings || dsh.set.showOrder {
		dsh.rule()
	}

	for _, blk := range dsh.set.orderedVisible() {
		var err error

		switch blk {
		case BlockThread:
			dsh.renderThread()
		case BlockBacktrace:
			dsh.renderBacktrace()
		case BlockMemory:
			dsh.renderMemory()
		case BlockSource:
			dsh.renderSource()
		case BlockAssembly:
			dsh.renderAssembly()
		case BlockRegisters:
			dsh.renderRegisters()
		case BlockVariables:
			dsh.renderVariables()
		case BlockCommands:
			err = dsh.renderCommands()
		}

		if err != nil {
			return err
		}

		dsh.rule()
	}

	return nil
}
