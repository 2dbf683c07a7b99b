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
	"path/filepath"
	"testing"

	"github.com/jetsetilly/debugdash/commandline"
	"github.com/jetsetilly/debugdash/curated"
	"github.com/jetsetilly/debugdash/test"
)

func TestParseRejection(t *testing.T) {
	dsh, _, _ := newTestDashboard(t)

	err := dsh.ParseInput("XYZZY")
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, commandline.UnrecognisedCommand), true)

	err = dsh.ParseInput("")
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, commandline.InputEmpty), true)

	err = dsh.ParseInput("MEMORY GROW 0x100")
	test.ExpectedFailure(t, err)

	err = dsh.ParseInput("TOGGLE nonsuch")
	test.ExpectedFailure(t, err)
}

func TestParseRegisters(t *testing.T) {
	dsh, _, trm := newTestDashboard(t)

	err := dsh.ParseInput("REGISTER ADD pc sp")
	test.ExpectedSuccess(t, err)
	test.Equate(t, dsh.registers.len(), 2)
	test.Equate(t, trm.contains("Added 2 register(s) to display list"), true)

	// adding tracked registers makes the block visible
	test.Equate(t, dsh.set.visible[BlockRegisters], true)

	// a partial failure still adds the valid names
	err = dsh.ParseInput("REGISTER ADD ra nonsuch")
	test.ExpectedFailure(t, err)
	test.Equate(t, dsh.registers.len(), 3)

	// dropping the last register hides the block again
	err = dsh.ParseInput("REGISTER DROP pc sp ra")
	test.ExpectedSuccess(t, err)
	test.Equate(t, dsh.registers.len(), 0)
	test.Equate(t, dsh.set.visible[BlockRegisters], false)
}

func TestParseVariables(t *testing.T) {
	dsh, _, _ := newTestDashboard(t)

	err := dsh.ParseInput("VARIABLE ADD counter")
	test.ExpectedSuccess(t, err)
	test.Equate(t, dsh.set.visible[BlockVariables], true)

	err = dsh.ParseInput("VARIABLE DROP counter")
	test.ExpectedSuccess(t, err)
	test.Equate(t, dsh.set.visible[BlockVariables], false)
}

func TestParseMemory(t *testing.T) {
	dsh, _, trm := newTestDashboard(t)

	err := dsh.ParseInput("MEMORY ADD 0x80000000 16")
	test.ExpectedSuccess(t, err)
	test.Equate(t, trm.contains("Added memory block at 0x80000000 with size 16"), true)
	test.Equate(t, dsh.set.visible[BlockMemory], true)

	// size is required when adding
	err = dsh.ParseInput("MEMORY ADD 0x80000100")
	test.ExpectedFailure(t, err)

	// overlap rejection surfaces as an error
	err = dsh.ParseInput("MEMORY ADD 0x80000008 16")
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, blockRejected), true)

	err = dsh.ParseInput("MEMORY DROP 0x80000000")
	test.ExpectedSuccess(t, err)
	test.Equate(t, trm.contains("Removed memory block at 0x80000000"), true)

	err = dsh.ParseInput("MEMORY DROP 0x80000000")
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, blockNotFound), true)
}

func TestParseCommands(t *testing.T) {
	dsh, _, trm := newTestDashboard(t)

	// the remainder of the line is the command, spaces and all
	err := dsh.ParseInput("COMMAND ADD info registers")
	test.ExpectedSuccess(t, err)
	test.Equate(t, dsh.commands.commands[0], "info registers")
	test.Equate(t, trm.contains("Added command #0 to display list"), true)
	test.Equate(t, dsh.set.visible[BlockCommands], true)

	err = dsh.ParseInput("COMMAND ADD info registers")
	test.ExpectedFailure(t, err)

	err = dsh.ParseInput("COMMAND DROP 3")
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, commandNotFound), true)

	err = dsh.ParseInput("COMMAND DROP 0")
	test.ExpectedSuccess(t, err)
	test.Equate(t, dsh.commands.len(), 0)
}

func TestParseToggle(t *testing.T) {
	dsh, _, trm := newTestDashboard(t)

	err := dsh.ParseInput("TOGGLE backtrace")
	test.ExpectedSuccess(t, err)
	test.Equate(t, dsh.set.visible[BlockBacktrace], true)
	test.Equate(t, trm.contains("Backtrace display enabled"), true)

	err = dsh.ParseInput("TOGGLE backtrace")
	test.ExpectedSuccess(t, err)
	test.Equate(t, dsh.set.visible[BlockBacktrace], false)
	test.Equate(t, trm.contains("Backtrace display disabled"), true)
}

func TestParseEnableDisable(t *testing.T) {
	dsh, _, trm := newTestDashboard(t)

	err := dsh.ParseInput("ENABLE registers,settings")
	test.ExpectedSuccess(t, err)
	test.Equate(t, dsh.set.visible[BlockRegisters], true)
	test.Equate(t, dsh.set.showSettings, true)
	test.Equate(t, trm.contains("Display settings updated: settings, registers"), true)

	err = dsh.ParseInput("DISABLE registers,settings,thread")
	test.ExpectedSuccess(t, err)
	test.Equate(t, dsh.set.visible[BlockRegisters], false)
	test.Equate(t, dsh.set.visible[BlockThread], false)
	test.Equate(t, dsh.set.showSettings, false)

	err = dsh.ParseInput("ENABLE nonsuch")
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, invalidItemList), true)
}

func TestParseSourceLine(t *testing.T) {
	dsh, _, _ := newTestDashboard(t)

	// the offset to the top of the window is given as a negative number
	err := dsh.ParseInput("SOURCELINE -3 6")
	test.ExpectedSuccess(t, err)
	test.Equate(t, dsh.src.linesBefore, 3)
	test.Equate(t, dsh.src.linesAfter, 6)
}

func TestParseState(t *testing.T) {
	dsh, _, trm := newTestDashboard(t)

	filename := filepath.Join(t.TempDir(), "state.dot")
	err := dsh.ParseInput("STATE " + filename)
	test.ExpectedSuccess(t, err)
	test.Equate(t, trm.contains("Dashboard state written to "+filename), true)
}
